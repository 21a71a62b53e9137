package ldtk

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenValueReachesTarget(t *testing.T) {
	v := 10.0
	g := TweenValue(&v, 100, 1.0, ease.Linear)

	// Exact halves avoid float32 accumulation drift.
	g.Update(0.5)
	if math.Abs(v-55) > 0.5 {
		t.Errorf("midpoint = %f, want ~55", v)
	}
	g.Update(0.5)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(v-100) > 0.01 {
		t.Errorf("v = %f, want ~100", v)
	}
}

func TestTweenColorAllComponents(t *testing.T) {
	c := Color{R: 1, G: 0, B: 0, A: 1}
	g := TweenColor(&c, Color{R: 0, G: 1, B: 0.5, A: 0.5}, 1.0, ease.Linear)
	g.Update(0.5)
	g.Update(0.5)

	want := Color{R: 0, G: 1, B: 0.5, A: 0.5}
	if math.Abs(c.R-want.R) > 0.01 || math.Abs(c.G-want.G) > 0.01 ||
		math.Abs(c.B-want.B) > 0.01 || math.Abs(c.A-want.A) > 0.01 {
		t.Errorf("color = %+v, want %+v", c, want)
	}
}

func TestTweenYoyoNeverFinishes(t *testing.T) {
	v := 1.0
	g := TweenValue(&v, 0, 0.5, ease.Linear)
	g.Yoyo = true

	g.Update(0.25)
	g.Update(0.25)
	if g.Done {
		t.Fatal("yoyo group finished")
	}
	if math.Abs(v) > 0.01 {
		t.Errorf("after first leg v = %f, want ~0", v)
	}
	g.Update(0.25)
	g.Update(0.25)
	if math.Abs(v-1) > 0.01 {
		t.Errorf("after second leg v = %f, want ~1", v)
	}
}

func TestTweenZoomAppliesToCamera(t *testing.T) {
	cs := newTestCameras(1280, 720)
	cam := cs.CreateFixed("cam", 640, 360)
	cam.SetZoom(0.8)
	cam.Activate()

	g := TweenZoom(cam, 1, 1.0, ease.OutCubic)
	g.Update(0.5)
	if z := cam.Zoom(); z <= 0.9 || z >= 1 {
		t.Errorf("OutCubic midpoint zoom = %f, want in (0.9, 1)", z)
	}
	g.Update(0.5)
	if !g.Done || math.Abs(cam.Zoom()-1) > 0.001 {
		t.Errorf("zoom = %f done=%v, want 1 done", cam.Zoom(), g.Done)
	}
	if !approxEqual(cam.Width(), 640, 0.5) {
		t.Errorf("Width = %f, want ~640", cam.Width())
	}
}

func TestTweenPositionScrollsCamera(t *testing.T) {
	cs := newTestCameras(800, 600)
	cam := cs.CreateFixed("cam", 800, 600)
	g := TweenPosition(cam, 100, -50, 1.0, ease.Linear)
	g.Update(0.5)
	g.Update(0.5)
	if math.Abs(cam.X()-100) > 0.01 || math.Abs(cam.Y()+50) > 0.01 {
		t.Errorf("position = (%f, %f), want (100, -50)", cam.X(), cam.Y())
	}
}

func TestTweenStopsOnDisposedCamera(t *testing.T) {
	cs := newTestCameras(800, 600)
	cam := cs.CreateFixed("cam", 800, 600)
	g := TweenZoom(cam, 2, 1.0, ease.Linear)
	g.Update(0.25)
	saved := cam.Zoom()
	cam.Dispose()

	g.Update(0.25)
	if !g.Done {
		t.Fatal("expected Done after camera disposed")
	}
	if cam.Zoom() != saved {
		t.Errorf("zoom changed after disposal: %f -> %f", saved, cam.Zoom())
	}
}

func TestTweenEasingCurvesDiffer(t *testing.T) {
	var l, c float64
	gL := TweenValue(&l, 100, 1.0, ease.Linear)
	gC := TweenValue(&c, 100, 1.0, ease.OutCubic)
	gL.Update(0.5)
	gC.Update(0.5)
	if c-l < 1 {
		t.Errorf("OutCubic should lead linear at midpoint: linear=%f cubic=%f", l, c)
	}
}
