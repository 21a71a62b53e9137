package ldtk

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 values together. Create one with the
// constructors below and call Update(dt) every tick. There is no global
// animation manager.
//
// A group bound to a Camera applies its values through the camera's setters
// and stops as soon as the camera is disposed.
type TweenGroup struct {
	tweens   [4]*gween.Tween
	from     [4]float32
	to       [4]float32
	count    int
	fields   [4]*float64
	values   [4]float64
	duration float32
	fn       ease.TweenFunc
	camera   *Camera
	apply    func(*TweenGroup)

	// Yoyo makes the group run back and forth forever instead of finishing.
	Yoyo bool
	Done bool
}

func newTweenGroup(count int, duration float32, fn ease.TweenFunc) *TweenGroup {
	return &TweenGroup{count: count, duration: duration, fn: fn}
}

// set installs the i-th tween from -> to writing into field.
func (g *TweenGroup) set(i int, field *float64, from, to float64) {
	g.fields[i] = field
	g.from[i] = float32(from)
	g.to[i] = float32(to)
	g.tweens[i] = gween.New(g.from[i], g.to[i], g.duration, g.fn)
}

// Update advances the group by dt seconds and writes the current values.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.camera != nil && g.camera.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	if g.apply != nil {
		g.apply(g)
	}
	if !allDone {
		return
	}
	if !g.Yoyo {
		g.Done = true
		return
	}
	for i := 0; i < g.count; i++ {
		g.from[i], g.to[i] = g.to[i], g.from[i]
		g.tweens[i] = gween.New(g.from[i], g.to[i], g.duration, g.fn)
	}
}

// TweenValue animates *field from its current value to to.
func TweenValue(field *float64, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := newTweenGroup(1, duration, fn)
	g.set(0, field, *field, to)
	return g
}

// TweenColor animates all four components of *c to to.
func TweenColor(c *Color, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := newTweenGroup(4, duration, fn)
	g.set(0, &c.R, c.R, to.R)
	g.set(1, &c.G, c.G, to.G)
	g.set(2, &c.B, c.B, to.B)
	g.set(3, &c.A, c.A, to.A)
	return g
}

// TweenZoom animates the zoom of cam to to.
func TweenZoom(cam *Camera, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := newTweenGroup(1, duration, fn)
	g.camera = cam
	g.set(0, &g.values[0], cam.Zoom(), to)
	g.apply = func(g *TweenGroup) { cam.SetZoom(g.values[0]) }
	return g
}

// TweenPosition scrolls cam to (x, y).
func TweenPosition(cam *Camera, x, y float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := newTweenGroup(2, duration, fn)
	g.camera = cam
	g.set(0, &g.values[0], cam.X(), x)
	g.set(1, &g.values[1], cam.Y(), y)
	g.apply = func(g *TweenGroup) { cam.MoveTo(g.values[0], g.values[1]) }
	return g
}
