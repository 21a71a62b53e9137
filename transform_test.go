package ldtk

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want [6]float64) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

// --- multiplyAffine ---

func TestMultiplyAffineIdentity(t *testing.T) {
	id := identityTransform
	m := [6]float64{2, 1, 3, 4, 5, 6}
	assertMatrix(t, "id*m", multiplyAffine(id, m), m)
	assertMatrix(t, "m*id", multiplyAffine(m, id), m)
}

func TestMultiplyAffineTranslations(t *testing.T) {
	got := multiplyAffine(translateAffine(10, 20), translateAffine(5, 3))
	assertMatrix(t, "translations", got, [6]float64{1, 0, 0, 1, 15, 23})
}

func TestRotateAffine90(t *testing.T) {
	x, y := transformPoint(rotateAffine(math.Pi/2), 1, 0)
	assertNear(t, "x", x, 0)
	assertNear(t, "y", y, 1)
}

// --- invertAffine ---

func TestInvertAffine(t *testing.T) {
	m := [6]float64{2, 0, 0, 3, 10, 20}
	inv := invertAffine(m)
	assertMatrix(t, "m*inv=id", multiplyAffine(m, inv), identityTransform)
}

func TestInvertAffineComplex(t *testing.T) {
	m := multiplyAffine(scaleAffine(2, -2), rotateAffine(math.Pi/3))
	m = multiplyAffine(translateAffine(320, 180), m)
	inv := invertAffine(m)
	assertMatrix(t, "m*inv=id", multiplyAffine(m, inv), identityTransform)
}

func TestInvertAffineSingular(t *testing.T) {
	assertMatrix(t, "singular", invertAffine([6]float64{0, 0, 0, 0, 1, 1}), identityTransform)
}

// --- geoM ---

func TestGeoMMatchesAffine(t *testing.T) {
	m := multiplyAffine(translateAffine(7, -3), rotateAffine(0.4))
	m = multiplyAffine(scaleAffine(1.5, -2), m)
	g := geoM(m)
	for _, p := range [][2]float64{{0, 0}, {1, 0}, {0, 1}, {-12.5, 40}} {
		wx, wy := transformPoint(m, p[0], p[1])
		gx, gy := g.Apply(p[0], p[1])
		assertNear(t, "x", gx, wx)
		assertNear(t, "y", gy, wy)
	}
}

// --- orthographic ---

func TestOrthographicCentresPosition(t *testing.T) {
	o := newOrthographic()
	o.setToOrtho(640, 360)
	o.position = Vec2{100, 50}
	m := o.combined(1280, 720)
	x, y := transformPoint(m, 100, 50)
	assertNear(t, "x", x, 640)
	assertNear(t, "y", y, 360)
}

func TestOrthographicFlipsY(t *testing.T) {
	o := newOrthographic()
	o.setToOrtho(640, 360)
	o.position = Vec2{}
	m := o.combined(640, 360)
	// World up is screen up.
	_, yTop := transformPoint(m, 0, 180)
	assertNear(t, "top", yTop, 0)
	xRight, _ := transformPoint(m, 320, 0)
	assertNear(t, "right", xRight, 640)
}

func TestOrthographicZoomFactor(t *testing.T) {
	o := newOrthographic()
	o.setToOrtho(640, 360)
	o.position = Vec2{}
	o.zoom = 0.5
	m := o.combined(640, 360)
	// Half the world visible: one unit spans two pixels.
	x0, _ := transformPoint(m, 0, 0)
	x1, _ := transformPoint(m, 1, 0)
	assertNear(t, "unit", x1-x0, 2)
}

func TestOrthographicRotateIsRelative(t *testing.T) {
	o := newOrthographic()
	o.rotate(30)
	o.rotate(60)
	assertNear(t, "angle", o.angle(), math.Pi/2)
	assertNear(t, "up.X", o.up.X, -1)
	assertNear(t, "up.Y", o.up.Y, 0)
}

func TestOrthographicDegenerate(t *testing.T) {
	o := newOrthographic()
	assertMatrix(t, "empty", o.combined(640, 360), identityTransform)
}
