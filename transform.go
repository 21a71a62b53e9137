package ldtk

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular (determinant ~ 0).
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

func translateAffine(x, y float64) [6]float64 {
	return [6]float64{1, 0, 0, 1, x, y}
}

func scaleAffine(sx, sy float64) [6]float64 {
	return [6]float64{sx, 0, 0, sy, 0, 0}
}

// rotateAffine rotates counter-clockwise in a y-up space.
func rotateAffine(radians float64) [6]float64 {
	sin, cos := math.Sincos(radians)
	return [6]float64{cos, sin, -sin, cos, 0, 0}
}

// geoM converts an affine matrix to an ebiten.GeoM.
func geoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

// orthographic is a 2D orthographic projection looking down at a y-up world.
// It maps a viewportWidth x viewportHeight window of world units, scaled by
// zoom and centred on position, onto the full pixel window.
type orthographic struct {
	viewportWidth  float64
	viewportHeight float64
	position       Vec2
	up             Vec2
	zoom           float64
}

func newOrthographic() orthographic {
	return orthographic{up: Vec2{0, 1}, zoom: 1}
}

// setToOrtho resets the projection to the given viewport size, centred on
// the viewport's middle with up along +Y.
func (o *orthographic) setToOrtho(width, height float64) {
	o.viewportWidth = width
	o.viewportHeight = height
	o.position = Vec2{width / 2, height / 2}
	o.up = Vec2{0, 1}
	o.zoom = 1
}

// rotate turns the up vector counter-clockwise by degrees.
func (o *orthographic) rotate(degrees float64) {
	sin, cos := math.Sincos(degrees * math.Pi / 180)
	o.up = Vec2{
		X: o.up.X*cos - o.up.Y*sin,
		Y: o.up.X*sin + o.up.Y*cos,
	}
}

// angle returns the rotation of the up vector away from +Y, in radians.
func (o *orthographic) angle() float64 {
	return math.Atan2(-o.up.X, o.up.Y)
}

// combined returns the world-to-pixel matrix for a window of the given size:
//
//	Translate(pw/2, ph/2) * Scale(sx, -sy) * Rotate(-angle) * Translate(-pos)
func (o *orthographic) combined(pixelWidth, pixelHeight float64) [6]float64 {
	if o.viewportWidth <= 0 || o.viewportHeight <= 0 || o.zoom <= 0 {
		return identityTransform
	}
	sx := pixelWidth / (o.viewportWidth * o.zoom)
	sy := pixelHeight / (o.viewportHeight * o.zoom)

	m := translateAffine(-o.position.X, -o.position.Y)
	m = multiplyAffine(rotateAffine(-o.angle()), m)
	m = multiplyAffine(scaleAffine(sx, -sy), m)
	return multiplyAffine(translateAffine(pixelWidth/2, pixelHeight/2), m)
}
