package main

import (
	"math"

	"github.com/phanxgames/ldtk"
)

// cameraLerp is the fraction of the distance to the scroll position the
// camera covers each frame.
const cameraLerp = 1.0

// WorldRenderer draws a World through the game camera. Background layers
// scroll slower than the foreground.
type WorldRenderer struct {
	world      *World
	cam        *ldtk.Camera
	camX       float64
	landscapes [numLayers]*LandscapeRenderer
	shot       *ldtk.Image
	player     *ldtk.Image
}

// layerTints darken the layers further back.
var layerTints = [numLayers]ldtk.Color{
	backgroundLayer: ldtk.ColorDarkGray,
	midgroundLayer:  ldtk.ColorGray,
	foregroundLayer: ldtk.ColorWhite,
}

// NewWorldRenderer creates a renderer drawing world through cam with images
// from images, generating any that are missing.
func NewWorldRenderer(images *ldtk.Images, world *World, cam *ldtk.Camera) *WorldRenderer {
	textures := [numLayers]string{
		backgroundLayer: backgroundTexture,
		midgroundLayer:  midgroundTexture,
		foregroundLayer: foregroundTexture,
	}
	r := &WorldRenderer{
		world:  world,
		cam:    cam,
		shot:   imageOrFallback(images, shotImage),
		player: imageOrFallback(images, playerImage),
	}
	landscapes := world.Landscapes()
	for i := range r.landscapes {
		tex := imageOrFallback(images, textures[i])
		r.landscapes[i] = NewLandscapeRenderer(landscapes[i], tex.Src(), layerTints[i])
	}
	return r
}

// Draw activates the game camera and draws the world.
func (r *WorldRenderer) Draw(b *ldtk.Batch) {
	r.cam.Activate()
	r.camX += (r.world.LandscapeX() - r.camX) * cameraLerp

	// Layer i of the background scrolls at 1/2^(n-i) of the foreground speed.
	for i := 0; i < foregroundLayer; i++ {
		r.cam.MoveTo(r.camX/parallax(i), 0)
		r.landscapes[i].Draw(b, r.cam)
	}

	r.cam.MoveTo(r.camX, 0)
	for _, s := range r.world.Shots() {
		r.shot.Draw(b, s.X(), s.Y())
	}
	p := r.world.Player()
	r.player.Draw(b, p.X(), p.Y())
	r.landscapes[foregroundLayer].Draw(b, r.cam)
}

// parallax returns the scroll divisor of layer.
func parallax(layer int) float64 {
	return math.Exp2(float64(foregroundLayer - layer))
}
