package main

import (
	"runtime"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/phanxgames/ldtk"
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"
)

const (
	guiCamName = "guiCam"
	menuFont   = "fonts/consolas32"
	menuTune   = "music/theme"
)

// Menu is the title screen.
type Menu struct {
	ldtk.BaseState

	app    *App
	cam    *ldtk.Camera
	font   *ldtk.Font
	alpha  float64
	pulse  *ldtk.TweenGroup
	prompt string
}

// Name names the state in logs.
func (m *Menu) Name() string { return "menu" }

// Enter creates the gui camera at the window's size and starts the prompt
// pulsing.
func (m *Menu) Enter(ctx *ldtk.Context) {
	m.cam = ctx.Cameras.CreateDefault(guiCamName)
	m.font, _ = ctx.Fonts.GetOrDefault(menuFont)
	m.alpha = 1
	m.pulse = ldtk.TweenValue(&m.alpha, 0.35, 0.8, ease.InOutSine)
	m.pulse.Yoyo = true
	m.prompt = "Press [space] to start"
	if runtime.GOOS == "android" || runtime.GOOS == "ios" {
		m.prompt = "Tap to start"
	}
	if tune, ok := ctx.Tunes.Get(menuTune); ok && !tune.IsPlaying() {
		tune.SetLooping(true)
		tune.SetVolume(m.app.Settings.SoundVolume)
		if err := tune.Play(); err != nil {
			ctx.Log.Warn("cannot play menu tune", zap.Error(err))
		}
	}
}

// Exit stops the tune and disposes the gui camera.
func (m *Menu) Exit(ctx *ldtk.Context) {
	if tune, ok := ctx.Tunes.Get(menuTune); ok {
		tune.Stop()
	}
	m.cam.Dispose()
	m.cam = nil
}

// Update starts the game on space or a touch and quits on escape.
func (m *Menu) Update(ctx *ldtk.Context) {
	m.pulse.Update(float32(ctx.Clock.Delta))
	if inpututil.IsKeyJustReleased(ebiten.KeySpace) || justTouched() {
		m.app.RequestPlaying()
	}
	if inpututil.IsKeyJustReleased(ebiten.KeyEscape) {
		m.app.Quit()
	}
}

// Draw draws the prompt centred and a label in each corner.
func (m *Menu) Draw(ctx *ldtk.Context) {
	m.cam.Activate()
	if m.font == nil {
		return
	}
	b := ctx.Batch
	for _, l := range menuLabels(m.font, m.prompt, m.cam.Width(), m.cam.Height()) {
		clr := ldtk.ColorWhite
		if l.text == m.prompt {
			clr = clr.WithAlpha(m.alpha)
		}
		m.font.Draw(b, l.text, l.x, l.y, clr)
	}
}

// label is text placed by its bottom-left corner.
type label struct {
	text string
	x, y float64
}

// measurer is the part of a font menuLabels needs.
type measurer interface {
	Bounds(s string) ldtk.Rect
	Height() float64
}

// menuLabels places the prompt at the centre and the corner labels inside a
// w x h view centred on the origin.
func menuLabels(f measurer, prompt string, w, h float64) []label {
	hw, hh := w/2, h/2
	pb := f.Bounds(prompt)
	tr := f.Bounds("top right")
	br := f.Bounds("bottom right")
	return []label{
		{prompt, -pb.Width / 2, -pb.Height / 2},
		{"bottom left", -hw, -hh},
		{"top left", -hw, hh - f.Height()},
		{"top right", hw - tr.Width, hh - tr.Height},
		{"bottom right", hw - br.Width, -hh},
	}
}
