package main

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/phanxgames/ldtk"
	"github.com/phanxgames/ldtk/internal/scores"
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"
)

const (
	gameCamName   = "gameCam"
	virtualWidth  = 640.0
	virtualHeight = 360.0
	startSound    = "sounds/pickup"
	hudFont       = "fonts/consolas16"
)

// Playing runs the game.
type Playing struct {
	ldtk.BaseState

	app   *App
	store *scores.Store
	rng   *rand.Rand

	guiCam   *ldtk.Camera
	gameCam  *ldtk.Camera
	world    *World
	renderer *WorldRenderer
	zoomIn   *ldtk.TweenGroup
	font     *ldtk.Font
}

// Name names the state in logs.
func (p *Playing) Name() string { return "playing" }

// Enter builds a fresh world and zooms the game camera in on it.
func (p *Playing) Enter(ctx *ldtk.Context) {
	view := p.app.Settings
	p.guiCam = ctx.Cameras.CreateFixed(guiCamName, view.ViewWidth, view.ViewHeight)
	p.gameCam = ctx.Cameras.CreateFixed(gameCamName, view.ViewWidth, view.ViewHeight)

	world, err := NewWorld(p.rng)
	if err != nil {
		ctx.Log.Error("cannot build world", zap.Error(err))
		p.app.RequestMenu()
		return
	}
	p.world = world
	p.renderer = NewWorldRenderer(ctx.Images, world, p.gameCam)
	p.font, _ = ctx.Fonts.GetOrDefault(hudFont)

	p.gameCam.SetZoom(0.8)
	p.zoomIn = ldtk.TweenZoom(p.gameCam, 1, 1.0, ease.OutCubic)

	if s, ok := ctx.Sounds.Get(startSound); ok {
		s.PlayVolume(p.app.Settings.SoundVolume)
	}
}

// Exit records the run and disposes both cameras.
func (p *Playing) Exit(ctx *ldtk.Context) {
	if p.world != nil {
		p.recordRun(ctx.Log)
	}
	p.gameCam.Dispose()
	p.guiCam.Dispose()
	p.world, p.renderer, p.zoomIn = nil, nil, nil
}

func (p *Playing) recordRun(log *zap.Logger) {
	if p.store == nil {
		return
	}
	distance, elapsed, fired, hits := p.world.Stats()
	id, err := p.store.Record(scores.Run{
		Distance:   distance,
		ShotsFired: fired,
		Hits:       hits,
		Duration:   time.Duration(elapsed * float64(time.Second)),
	})
	if err != nil {
		log.Error("cannot record run", zap.Error(err))
		return
	}
	log.Info("run recorded", zap.Int64("id", id), zap.Float64("distance", distance), zap.Int("hits", hits))
}

// Update returns to the menu on escape or back, otherwise advances the world.
func (p *Playing) Update(ctx *ldtk.Context) {
	if inpututil.IsKeyJustReleased(ebiten.KeyEscape) || inpututil.IsKeyJustReleased(ebiten.KeyBackspace) {
		p.app.RequestMenu()
		return
	}
	if p.world == nil {
		return
	}
	p.zoomIn.Update(float32(ctx.Clock.Delta))
	p.world.Update(ctx.Clock, readControls(p.guiCam))
}

// Draw draws the world and the score line.
func (p *Playing) Draw(ctx *ldtk.Context) {
	if p.world == nil {
		return
	}
	p.renderer.Draw(ctx.Batch)

	p.guiCam.Activate()
	if p.font != nil {
		distance, _, _, hits := p.world.Stats()
		p.font.Draw(ctx.Batch, hudText(distance, hits),
			-p.guiCam.Width()/2+8, p.guiCam.Height()/2-p.font.Height()-4, ldtk.ColorWhite)
	}
}

func hudText(distance float64, hits int) string {
	return fmt.Sprintf("distance %d  hits %d", int(distance/tileSize), hits)
}
