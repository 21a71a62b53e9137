package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/ldtk"
)

// Image names the renderer looks up.
const (
	backgroundTexture = "textures/stones"
	midgroundTexture  = "textures/building"
	foregroundTexture = "textures/grass"
	shotImage         = "atlases/pack/PlayerShot01"
	playerImage       = "atlases/pack/RobotScan1"
)

// fallback describes the generated stand-in for a missing image.
type fallback struct {
	w, h   int
	fg, bg color.RGBA
	// cell is the checker size in pixels; zero fills with fg.
	cell int
}

var fallbacks = map[string]fallback{
	backgroundTexture: {w: 64, h: 64, fg: color.RGBA{110, 110, 120, 255}, bg: color.RGBA{80, 80, 90, 255}, cell: 16},
	midgroundTexture:  {w: 64, h: 64, fg: color.RGBA{150, 140, 120, 255}, bg: color.RGBA{60, 60, 70, 255}, cell: 8},
	foregroundTexture: {w: 64, h: 64, fg: color.RGBA{70, 160, 60, 255}, bg: color.RGBA{50, 120, 40, 255}, cell: 4},
	shotImage:         {w: 9, h: 9, fg: color.RGBA{255, 230, 90, 255}},
	playerImage:       {w: 30, h: 45, fg: color.RGBA{200, 210, 230, 255}, bg: color.RGBA{90, 140, 220, 255}, cell: 15},
}

// imageOrFallback returns the image registered under name, registering a
// generated one first if there is none.
func imageOrFallback(images *ldtk.Images, name string) *ldtk.Image {
	if img, ok := images.Get(name); ok {
		return img
	}
	f, ok := fallbacks[name]
	if !ok {
		f = fallback{w: 16, h: 16, fg: color.RGBA{255, 0, 255, 255}}
	}
	return images.Add(name, ebiten.NewImageFromImage(f.image()))
}

func (f fallback) image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.w, f.h))
	for y := 0; y < f.h; y++ {
		for x := 0; x < f.w; x++ {
			c := f.fg
			if f.cell > 0 && (x/f.cell+y/f.cell)%2 == 1 {
				c = f.bg
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
