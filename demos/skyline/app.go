package main

import (
	"math/rand/v2"

	"github.com/phanxgames/ldtk"
	"github.com/phanxgames/ldtk/internal/scores"
)

// App is the demo's state selector. It starts in the menu and moves between
// the menu and playing on request.
type App struct {
	Settings Settings

	menu    *Menu
	playing *Playing
	state   ldtk.State
	quit    func()
}

// Settings are the tunables the app reads when a state is entered.
type Settings struct {
	// ViewWidth and ViewHeight are the virtual size of the game camera.
	ViewWidth, ViewHeight float64
	SoundVolume           float64
}

// DefaultSettings returns the settings of a new App.
func DefaultSettings() Settings {
	return Settings{ViewWidth: virtualWidth, ViewHeight: virtualHeight, SoundVolume: 1}
}

// NewApp creates the app. store may be nil, in which case runs are not
// recorded. quit is called when the player leaves from the menu.
func NewApp(store *scores.Store, rng *rand.Rand, quit func()) *App {
	a := &App{Settings: DefaultSettings(), quit: quit}
	a.menu = &Menu{app: a}
	a.playing = &Playing{app: a, store: store, rng: rng}
	a.state = a.menu
	return a
}

// Select implements ldtk.StateSelector.
func (a *App) Select() ldtk.State { return a.state }

// RequestPlaying switches from the menu to playing.
func (a *App) RequestPlaying() {
	if a.state == a.menu {
		a.state = a.playing
	}
}

// RequestMenu switches from playing back to the menu.
func (a *App) RequestMenu() {
	if a.state == a.playing {
		a.state = a.menu
	}
}

// Quit ends the game.
func (a *App) Quit() {
	if a.quit != nil {
		a.quit()
	}
}
