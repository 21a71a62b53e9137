package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/phanxgames/ldtk"
)

// Controls is one tick of player input.
type Controls struct {
	Left, Right, Up, Down bool
	Fire                  bool

	// TouchStarted is set on the tick a touch or left click begins; Touching
	// while it is held. TouchX and TouchY are the pointer in gui camera world
	// units.
	TouchStarted bool
	Touching     bool
	TouchX       float64
	TouchY       float64
}

// readControls polls the keyboard, mouse and touch screen. Pointer positions
// are unprojected through gui.
func readControls(gui *ldtk.Camera) Controls {
	c := Controls{
		Left:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Up:    ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Fire:  ebiten.IsKeyPressed(ebiten.KeySpace),
	}

	var px, py int
	switch touches := ebiten.AppendTouchIDs(nil); {
	case len(touches) > 0:
		px, py = ebiten.TouchPosition(touches[0])
		c.Touching = true
		c.TouchStarted = len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		px, py = ebiten.CursorPosition()
		c.Touching = true
		c.TouchStarted = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	}
	if c.Touching && gui != nil {
		c.TouchX, c.TouchY = gui.ScreenToWorld(float64(px), float64(py))
	}
	return c
}

// justTouched reports whether a touch or left click began this tick.
func justTouched() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
}
