package ldtk

import (
	"errors"
	"reflect"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// recordingState appends every call it receives to a shared log.
type recordingState struct {
	name string
	log  *[]string
}

func newRecordingState(name string, log *[]string) *recordingState {
	return &recordingState{name: name, log: log}
}

func (s *recordingState) Name() string    { return s.name }
func (s *recordingState) Enter(*Context)  { *s.log = append(*s.log, s.name+".enter") }
func (s *recordingState) Exit(*Context)   { *s.log = append(*s.log, s.name+".exit") }
func (s *recordingState) Update(*Context) { *s.log = append(*s.log, s.name+".update") }
func (s *recordingState) Draw(*Context)   { *s.log = append(*s.log, s.name+".draw") }

func TestKernelStepSwitchesStates(t *testing.T) {
	var calls []string
	a := newRecordingState("a", &calls)
	b := newRecordingState("b", &calls)
	var selected State = a
	k := NewKernel(NewContext(Options{}), SelectorFunc(func() State { return selected }))

	k.step(0.5)
	k.step(0.5)
	selected = b
	k.step(0.5)
	selected = nil
	k.step(0.5)

	want := []string{
		"a.enter", "a.update",
		"a.update",
		"a.exit", "b.enter", "b.update",
		"b.exit",
	}
	if !reflect.DeepEqual(calls, want) {
		t.Errorf("calls = %v, want %v", calls, want)
	}
	if k.Current() != nil {
		t.Errorf("Current = %v, want nil", k.Current())
	}
}

func TestKernelClock(t *testing.T) {
	k := NewKernel(NewContext(Options{}), SelectorFunc(func() State { return nil }))
	k.step(0.25)
	k.step(0.5)
	clock := k.Context().Clock
	if clock.Delta != 0.5 || clock.Time != 0.75 {
		t.Errorf("clock = %+v, want Delta 0.5 Time 0.75", *clock)
	}
}

func TestKernelStart(t *testing.T) {
	ctx := NewContext(Options{})
	k := NewKernel(ctx, SelectorFunc(func() State { return nil }))
	if err := k.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	cam, ok := ctx.Cameras.Get(DefaultCameraName)
	if !ok {
		t.Fatal("default camera not created")
	}
	if cam.Width() != 800 || cam.Height() != 600 {
		t.Errorf("default camera = %vx%v, want 800x600", cam.Width(), cam.Height())
	}
	if _, ok := ctx.Fonts.Get(DefaultFontName); !ok {
		t.Error("default font not loaded")
	}
	// Start is idempotent.
	if err := k.Start(); err != nil || ctx.Cameras.Len() != 1 {
		t.Errorf("second Start: err=%v cameras=%d", err, ctx.Cameras.Len())
	}
}

func TestKernelLayoutResizesCameras(t *testing.T) {
	ctx := NewContext(Options{})
	k := NewKernel(ctx, SelectorFunc(func() State { return nil }))
	cam := ctx.Cameras.CreateFixed("cam", 640, 360)

	w, h := k.Layout(1280, 480)
	if w != 1280 || h != 480 {
		t.Errorf("Layout = %dx%d, want 1280x480", w, h)
	}
	if gw, gh := ctx.Cameras.WindowSize(); gw != 1280 || gh != 480 {
		t.Errorf("WindowSize = %vx%v, want 1280x480", gw, gh)
	}
	cam.Activate()
	if got := cam.WindowWidth(); !approxEqual(got, 960, 1e-9) {
		t.Errorf("WindowWidth = %v, want 960", got)
	}
}

func TestKernelQuitExitsState(t *testing.T) {
	var calls []string
	a := newRecordingState("a", &calls)
	k := NewKernel(NewContext(Options{}), SelectorFunc(func() State { return a }))
	if err := k.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	k.Quit()
	if err := k.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update after Quit = %v, want ebiten.Termination", err)
	}
	if calls[len(calls)-1] != "a.exit" {
		t.Errorf("last call = %q, want a.exit", calls[len(calls)-1])
	}
}

func TestKernelDrawBracketsBatch(t *testing.T) {
	ctx := NewContext(Options{})
	var drawing bool
	s := &drawProbe{check: func(c *Context) { drawing = c.Batch.IsDrawing() }}
	k := NewKernel(ctx, SelectorFunc(func() State { return s }))
	k.step(1.0 / 60)
	ctx.Batch.SetScissor(ctx.Batch.scissor)

	k.Draw(ebiten.NewImage(32, 32))
	if !drawing {
		t.Error("state drawn outside Begin/End")
	}
	if ctx.Batch.IsDrawing() {
		t.Error("batch still drawing after Draw")
	}
	if _, on := ctx.Batch.Scissor(); on {
		t.Error("scissor left enabled from the previous frame")
	}
}

type drawProbe struct {
	BaseState
	check func(*Context)
}

func (p *drawProbe) Draw(ctx *Context) { p.check(ctx) }

func TestContextSetDebug(t *testing.T) {
	ctx := NewContext(Options{Debug: true})
	if !ctx.IsDebug() || !ctx.Batch.debug || !ctx.Cameras.debug {
		t.Error("debug not propagated")
	}
	ctx.SetDebug(false)
	if ctx.Batch.debug || ctx.Cameras.debug {
		t.Error("debug not cleared")
	}
}

func TestStateName(t *testing.T) {
	if got := stateName(newRecordingState("menu", nil)); got != "menu" {
		t.Errorf("stateName = %q, want menu", got)
	}
	if got := stateName(BaseState{}); got != "unnamed" {
		t.Errorf("stateName = %q, want unnamed", got)
	}
}
