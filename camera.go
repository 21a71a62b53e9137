package ldtk

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// dirtyFlags records which parts of a camera need recomputing.
type dirtyFlags uint8

const (
	dirtySize dirtyFlags = 1 << iota
	dirtyPosition
	dirtyAngle

	dirtyAll = dirtySize | dirtyPosition | dirtyAngle
)

// Camera is a named view into a y-up world. It letterboxes a virtual
// resolution into the window and pushes its projection and scissor rectangle
// to the shared Batch whenever it is the active camera of its Cameras.
//
// Changes made while the camera is inactive are recorded and applied the next
// time it is activated.
type Camera struct {
	name    string
	cameras *Cameras

	scaler   ViewportScaler
	viewport *VirtualViewport
	ortho    orthographic

	position  Vec2
	angle     float64
	zoom      float64
	scissored bool

	pixelWidth  float64
	pixelHeight float64
	scissor     image.Rectangle

	combined    [6]float64
	invCombined [6]float64

	dirty    dirtyFlags
	disposed bool
}

func newCamera(name string, cameras *Cameras, scaler ViewportScaler, pixelWidth, pixelHeight float64) *Camera {
	return &Camera{
		name:        name,
		cameras:     cameras,
		scaler:      scaler,
		viewport:    NewVirtualViewport(scaler.virtualWidth, scaler.virtualHeight),
		ortho:       newOrthographic(),
		zoom:        1,
		scissored:   true,
		pixelWidth:  pixelWidth,
		pixelHeight: pixelHeight,
		combined:    identityTransform,
		invCombined: identityTransform,
		dirty:       dirtyAll,
	}
}

// Name returns the name the camera was registered under.
func (c *Camera) Name() string { return c.name }

// MoveTo centres the camera on the world position (x, y).
func (c *Camera) MoveTo(x, y float64) {
	c.position = Vec2{x, y}
	c.dirty |= dirtyPosition
	c.update()
}

// SetAngle rotates the view counter-clockwise by degrees. The angle is stored
// modulo 360.
func (c *Camera) SetAngle(degrees float64) {
	c.angle = math.Mod(degrees, 360)
	c.dirty |= dirtyAngle
	c.update()
}

// SetZoom sets the magnification. 2 shows half as much of the world along each
// axis as 1. zoom must be positive.
func (c *Camera) SetZoom(zoom float64) {
	c.zoom = zoom
	c.update()
}

// Activate makes c the active camera of its registry and applies any pending
// changes.
func (c *Camera) Activate() {
	if c.cameras != nil {
		c.cameras.active = c
	}
	c.update()
}

// IsActive reports whether c is its registry's active camera.
func (c *Camera) IsActive() bool {
	return c.cameras != nil && c.cameras.active == c
}

// X returns the x-coordinate of the camera centre.
func (c *Camera) X() float64 { return c.position.X }

// Y returns the y-coordinate of the camera centre.
func (c *Camera) Y() float64 { return c.position.Y }

// Position returns the camera centre.
func (c *Camera) Position() Vec2 { return c.position }

// Angle returns the rotation in degrees.
func (c *Camera) Angle() float64 { return c.angle }

// Zoom returns the magnification.
func (c *Camera) Zoom() float64 { return c.zoom }

// Width returns the visible world width of the virtual viewport.
func (c *Camera) Width() float64 { return c.viewport.VirtualWidth() / c.zoom }

// Height returns the visible world height of the virtual viewport.
func (c *Camera) Height() float64 { return c.viewport.VirtualHeight() / c.zoom }

// WindowWidth returns the world width covered by the whole window, including
// the letterbox area.
func (c *Camera) WindowWidth() float64 {
	return c.viewport.Width(c.pixelWidth, c.pixelHeight) / c.zoom
}

// WindowHeight returns the world height covered by the whole window,
// including the letterbox area.
func (c *Camera) WindowHeight() float64 {
	return c.viewport.Height(c.pixelWidth, c.pixelHeight) / c.zoom
}

// IsScissored reports whether drawing is clipped to the scissor rectangle.
func (c *Camera) IsScissored() bool { return c.scissored }

// SetScissored enables or disables clipping to the scissor rectangle.
func (c *Camera) SetScissored(scissored bool) {
	c.scissored = scissored
	c.update()
}

// EnableScissoring clips drawing to the scissor rectangle.
func (c *Camera) EnableScissoring() { c.SetScissored(true) }

// DisableScissoring lets drawing cover the whole window.
func (c *Camera) DisableScissoring() { c.SetScissored(false) }

// ScissorRect returns the centred pixel rectangle with the virtual aspect
// that fits the window, as of the camera's last update.
func (c *Camera) ScissorRect() image.Rectangle { return c.scissor }

// Combined returns the world-to-pixel projection as of the camera's last
// update.
func (c *Camera) Combined() ebiten.GeoM { return geoM(c.combined) }

// WorldToScreen converts world coordinates to window pixel coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	return transformPoint(c.combined, wx, wy)
}

// ScreenToWorld converts window pixel coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	return transformPoint(c.invCombined, sx, sy)
}

// VisibleBounds returns the world rectangle covered by the window.
func (c *Camera) VisibleBounds() Rect {
	w, h := c.WindowWidth(), c.WindowHeight()
	if c.angle == 0 {
		return Rect{X: c.position.X - w/2, Y: c.position.Y - h/2, Width: w, Height: h}
	}
	inv := c.invCombined
	x0, y0 := transformPoint(inv, 0, 0)
	x1, y1 := transformPoint(inv, c.pixelWidth, 0)
	x2, y2 := transformPoint(inv, c.pixelWidth, c.pixelHeight)
	x3, y3 := transformPoint(inv, 0, c.pixelHeight)

	minX := math.Min(math.Min(x0, x1), math.Min(x2, x3))
	minY := math.Min(math.Min(y0, y1), math.Min(y2, y3))
	maxX := math.Max(math.Max(x0, x1), math.Max(x2, x3))
	maxY := math.Max(math.Max(y0, y1), math.Max(y2, y3))
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Dispose removes the camera from its registry. If it was the active camera
// the registry is left without one. A disposed camera must not be reused.
func (c *Camera) Dispose() {
	if c.disposed {
		return
	}
	if c.cameras != nil {
		c.cameras.remove(c)
	}
	c.disposed = true
}

// IsDisposed reports whether Dispose has been called.
func (c *Camera) IsDisposed() bool { return c.disposed }

// doResize records a new window size. The projection is recomputed on the
// next update.
func (c *Camera) doResize(pixelWidth, pixelHeight float64) {
	c.pixelWidth = pixelWidth
	c.pixelHeight = pixelHeight
	c.dirty |= dirtySize
}

// update recomputes whatever is dirty and pushes the result to the batch.
// It does nothing unless c is the active camera.
func (c *Camera) update() {
	if !c.IsActive() {
		return
	}
	if c.cameras.debug {
		debugCheckDisposed(c, "update")
	}

	var pending dirtyFlags
	if c.dirty&dirtySize != 0 {
		if c.pixelWidth > 0 && c.pixelHeight > 0 {
			c.rescale()
			c.dirty |= dirtyPosition | dirtyAngle
		} else {
			// Window size unknown yet.
			pending = dirtySize
		}
	}
	if c.dirty&dirtyPosition != 0 {
		c.ortho.position = c.position
	}
	if c.dirty&dirtyAngle != 0 {
		c.ortho.up = Vec2{0, 1}
		c.ortho.rotate(c.angle)
	}
	c.ortho.zoom = 1 / c.zoom

	c.combined = c.ortho.combined(c.pixelWidth, c.pixelHeight)
	c.invCombined = invertAffine(c.combined)

	if b := c.cameras.batch; b != nil {
		if c.scissored {
			b.SetScissor(c.scissor)
		} else {
			b.DisableScissor()
		}
		b.SetProjection(c.Combined())
	}
	c.dirty = pending
}

// rescale fits the virtual viewport into the current window and recomputes
// the scissor rectangle.
func (c *Camera) rescale() {
	w, h := c.scaler.Scale(c.pixelWidth, c.pixelHeight)
	c.viewport.SetSize(w, h)
	c.ortho.setToOrtho(
		c.viewport.Width(c.pixelWidth, c.pixelHeight),
		c.viewport.Height(c.pixelWidth, c.pixelHeight),
	)
	c.ortho.position = Vec2{}
	c.scissor = scissorRect(c.pixelWidth, c.pixelHeight, c.viewport.VirtualAspect())
}

// scissorRect returns the largest rectangle of the given aspect that fits a
// window of pixelWidth x pixelHeight, centred in it.
func scissorRect(pixelWidth, pixelHeight, aspect float64) image.Rectangle {
	h := pixelHeight
	w := h * aspect
	if w > pixelWidth {
		w = pixelWidth
		h = w / aspect
	}
	x := int((pixelWidth-w)/2 + 0.5)
	y := int((pixelHeight-h)/2 + 0.5)
	return image.Rect(x, y, x+int(w+0.5), y+int(h+0.5))
}
