package ldtk

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// DefaultCameraName is the camera every Kernel creates on start.
const DefaultCameraName = "default"

// State is one mode of a game, such as a menu or a level. The Kernel calls
// Enter when the state becomes current and Exit when it stops being current.
// While current, Update is called once per tick and Draw once per frame,
// between Begin and End of the Context's Batch.
type State interface {
	Enter(ctx *Context)
	Exit(ctx *Context)
	Update(ctx *Context)
	Draw(ctx *Context)
}

// BaseState implements State with no-ops. Embed it to implement only the
// methods a state needs.
type BaseState struct{}

func (BaseState) Enter(*Context)  {}
func (BaseState) Exit(*Context)   {}
func (BaseState) Update(*Context) {}
func (BaseState) Draw(*Context)   {}

// StateSelector chooses the state that runs from the start of the next tick.
// When the result differs from the current state the Kernel exits the current
// state and enters the new one. A nil State runs nothing.
type StateSelector interface {
	Select() State
}

// SelectorFunc adapts a function to a StateSelector.
type SelectorFunc func() State

// Select calls f.
func (f SelectorFunc) Select() State { return f() }

// Kernel runs a StateSelector as an ebiten.Game. It advances the clock,
// switches states, clears the frame and brackets drawing with the Batch.
type Kernel struct {
	ctx      *Context
	selector StateSelector
	current  State
	started  bool
	quit     bool

	outsideWidth  int
	outsideHeight int

	fps         *fpsOverlay
	screenshots *screenshotQueue

	frame uint64
	stats debugStats
}

// NewKernel creates a Kernel running the states chosen by selector.
func NewKernel(ctx *Context, selector StateSelector) *Kernel {
	return &Kernel{
		ctx:         ctx,
		selector:    selector,
		screenshots: newScreenshotQueue("screenshots", ctx.Log),
	}
}

// Context returns the Context passed to every state.
func (k *Kernel) Context() *Context { return k.ctx }

// Current returns the running state, or nil before the first tick.
func (k *Kernel) Current() State { return k.current }

// Start creates the default camera and loads the default assets. Update
// calls it on the first tick if it has not been called.
func (k *Kernel) Start() error {
	if k.started {
		return nil
	}
	k.started = true
	k.ctx.Cameras.CreateFixed(DefaultCameraName, 800, 600)
	return k.ctx.Assets.LoadDefaults()
}

// Quit makes the next Update end the game loop.
func (k *Kernel) Quit() { k.quit = true }

// SetShowFPS shows or hides the FPS and TPS overlay.
func (k *Kernel) SetShowFPS(show bool) {
	if !show {
		k.fps = nil
		return
	}
	if k.fps == nil {
		k.fps = newFPSOverlay()
	}
}

// SetScreenshotDir sets the directory Screenshot writes to.
func (k *Kernel) SetScreenshotDir(dir string) { k.screenshots.dir = dir }

// Screenshot queues a labeled capture of the next drawn frame.
func (k *Kernel) Screenshot(label string) { k.screenshots.add(label) }

// Update implements ebiten.Game.
func (k *Kernel) Update() error {
	if err := k.Start(); err != nil {
		return err
	}
	if k.quit {
		k.exitCurrent()
		return ebiten.Termination
	}
	var t0 time.Time
	if k.ctx.debug {
		t0 = time.Now()
	}
	k.step(1 / float64(ebiten.TPS()))
	if k.fps != nil {
		k.fps.update(k.ctx.Clock.Delta)
	}
	if k.ctx.debug {
		k.stats.updateTime = time.Since(t0)
	}
	return nil
}

// step advances the clock, switches states and updates the current state.
func (k *Kernel) step(dt float64) {
	k.ctx.Clock.advance(dt)

	next := k.selector.Select()
	if next != k.current {
		k.exitCurrent()
		if next != nil {
			k.ctx.Log.Debug("entering state", zap.String("state", stateName(next)))
			next.Enter(k.ctx)
		}
		k.current = next
	}
	if k.current != nil {
		k.current.Update(k.ctx)
	}
}

func (k *Kernel) exitCurrent() {
	if k.current == nil {
		return
	}
	k.ctx.Log.Debug("exiting state", zap.String("state", stateName(k.current)))
	k.current.Exit(k.ctx)
	k.current = nil
}

// Draw implements ebiten.Game.
func (k *Kernel) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if k.ctx.debug {
		t0 = time.Now()
	}

	b := k.ctx.Batch
	b.DisableScissor()
	screen.Fill(color.Black)

	b.Begin(screen)
	if k.current != nil {
		k.current.Draw(k.ctx)
	}
	b.End()

	if k.fps != nil {
		k.fps.draw(screen)
	}
	k.screenshots.flush(screen)

	if k.ctx.debug {
		k.stats.drawTime = time.Since(t0)
		k.stats.drawCallCount, k.stats.quadCount = b.stats()
		k.frame++
		debugLog(k.ctx.Log, k.frame, k.stats)
	}
}

// Layout implements ebiten.Game. The screen is always the size of the window
// and every camera is told when that size changes.
func (k *Kernel) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != k.outsideWidth || outsideHeight != k.outsideHeight {
		k.outsideWidth, k.outsideHeight = outsideWidth, outsideHeight
		k.ctx.Log.Debug("window resized", zap.Int("width", outsideWidth), zap.Int("height", outsideHeight))
		k.ctx.Cameras.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

// stateName returns a printable name for s.
func stateName(s State) string {
	if n, ok := s.(interface{ Name() string }); ok {
		return n.Name()
	}
	return "unnamed"
}
