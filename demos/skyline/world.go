package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/phanxgames/ldtk"
)

// Landscape layers, back to front.
const (
	backgroundLayer = iota
	midgroundLayer
	foregroundLayer
	numLayers
)

const (
	scrollSpeed = 120.0
	worldBottom = -180.0
	worldTop    = 180.0
)

// World is the game simulation: a scrolling landscape, the player and the
// player's shots. Only the foreground landscape collides.
type World struct {
	landscapes [numLayers]*Landscape
	geometry   []*LandscapeGeometry
	landscapeX float64
	player     *Player
	shots      []*Shot
	rng        *rand.Rand

	elapsed    float64
	shotsFired int
	playerHits int
	colliding  bool
}

// NewWorld creates a world. rng drives the shot spread.
func NewWorld(rng *rand.Rand) (*World, error) {
	w := &World{rng: rng}
	for i := range w.landscapes {
		w.landscapes[i] = NewLandscape()
	}
	fg := w.landscapes[foregroundLayer]
	lower, err := NewLowerGeometry(fg.Lower(), tileSize, worldBottom)
	if err != nil {
		return nil, fmt.Errorf("skyline: ground geometry: %w", err)
	}
	upper, err := NewUpperGeometry(fg.Upper(), tileSize, worldTop)
	if err != nil {
		return nil, fmt.Errorf("skyline: ceiling geometry: %w", err)
	}
	w.geometry = []*LandscapeGeometry{lower, upper}
	w.player = newPlayer(w)
	return w, nil
}

// Update advances the world by one tick.
func (w *World) Update(clock *ldtk.Clock, c Controls) {
	w.elapsed += clock.Delta
	w.landscapeX += scrollSpeed * clock.Delta
	w.player.Update(clock, c)
	w.updateShots(clock)
	w.checkPlayerCollisions()
	w.checkShotCollisions()
}

func (w *World) updateShots(clock *ldtk.Clock) {
	for _, s := range w.shots {
		s.Update(clock)
	}
	w.removeInactiveShots()
}

// checkPlayerCollisions counts each new contact of the player with the
// terrain once.
func (w *World) checkPlayerCollisions() {
	bounds := w.player.Bounds()
	hit := false
	for _, g := range w.geometry {
		if g.HitAnyWithin(w.player.Polygons(), bounds) {
			hit = true
			break
		}
	}
	if hit && !w.colliding {
		w.playerHits++
	}
	w.colliding = hit
}

func (w *World) checkShotCollisions() {
	for _, s := range w.shots {
		bounds := s.Bounds()
		for _, g := range w.geometry {
			if g.HitAnyWithin(s.Polygons(), bounds) {
				s.Deactivate()
				break
			}
		}
	}
	w.removeInactiveShots()
}

func (w *World) removeInactiveShots() {
	live := w.shots[:0]
	for _, s := range w.shots {
		if s.IsActive() {
			live = append(live, s)
		}
	}
	clear(w.shots[len(live):])
	w.shots = live
}

// addShot fires a shot from the player's position.
func (w *World) addShot() {
	s := newShot(w, (w.rng.Float64()*2-1)*shotSpread)
	s.MoveTo(w.player.X(), w.player.Y())
	w.shots = append(w.shots, s)
	w.shotsFired++
}

// Landscapes returns the layers, back to front.
func (w *World) Landscapes() [numLayers]*Landscape { return w.landscapes }

// Geometry returns the ground and ceiling collision geometry.
func (w *World) Geometry() []*LandscapeGeometry { return w.geometry }

// LandscapeX returns how far the landscape has scrolled.
func (w *World) LandscapeX() float64 { return w.landscapeX }

// Player returns the player.
func (w *World) Player() *Player { return w.player }

// Shots returns the shots in flight.
func (w *World) Shots() []*Shot { return w.shots }

// Stats returns the figures recorded for a finished run.
func (w *World) Stats() (distance, elapsed float64, shotsFired, playerHits int) {
	return w.landscapeX, w.elapsed, w.shotsFired, w.playerHits
}
