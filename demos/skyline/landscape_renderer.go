package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/ldtk"
)

const (
	// textureScale is the number of tiles one texture repeat spans.
	textureScale = 4.0

	landscapeTop    = 180.0
	landscapeBottom = -180.0
)

// LandscapeRenderer draws one landscape layer as two textured quad strips,
// ground and ceiling, repeating the texture every textureScale tiles.
type LandscapeRenderer struct {
	texture *ebiten.Image
	lower   []float32
	upper   []float32
	tiles   int
}

// NewLandscapeRenderer builds the strips of l tinted with tint.
func NewLandscapeRenderer(l *Landscape, texture *ebiten.Image, tint ldtk.Color) *LandscapeRenderer {
	return &LandscapeRenderer{
		texture: texture,
		lower:   lowerStrip(l.Lower(), tint),
		upper:   upperStrip(l.Upper(), tint),
		tiles:   len(l.Lower()) - 1,
	}
}

// lowerStrip spans each height down to landscapeBottom. The texture's bottom
// edge sits on landscapeBottom.
func lowerStrip(heights []float64, tint ldtk.Color) []float32 {
	quads := make([]float32, 0, (len(heights)-1)*32)
	v := func(y float64) float64 {
		return 1 - (y-landscapeBottom)/tileSize/textureScale
	}
	for i := 0; i < len(heights)-1; i++ {
		x1, x2 := float64(i)*tileSize, float64(i+1)*tileSize
		u1, u2 := float64(i)/textureScale, float64(i+1)/textureScale
		y1, y2 := heights[i], heights[i+1]
		quads = ldtk.AppendQuad(quads,
			ldtk.QuadVertex{X: x1, Y: y1, U: u1, V: v(y1), Color: tint},
			ldtk.QuadVertex{X: x1, Y: landscapeBottom, U: u1, V: 1, Color: tint},
			ldtk.QuadVertex{X: x2, Y: landscapeBottom, U: u2, V: 1, Color: tint},
			ldtk.QuadVertex{X: x2, Y: y2, U: u2, V: v(y2), Color: tint},
		)
	}
	return quads
}

// upperStrip spans each height up to landscapeTop. The texture's top edge
// sits on landscapeTop.
func upperStrip(heights []float64, tint ldtk.Color) []float32 {
	quads := make([]float32, 0, (len(heights)-1)*32)
	v := func(y float64) float64 {
		return (landscapeTop - y) / tileSize / textureScale
	}
	for i := 0; i < len(heights)-1; i++ {
		x1, x2 := float64(i)*tileSize, float64(i+1)*tileSize
		u1, u2 := float64(i)/textureScale, float64(i+1)/textureScale
		y1, y2 := heights[i], heights[i+1]
		quads = ldtk.AppendQuad(quads,
			ldtk.QuadVertex{X: x1, Y: landscapeTop, U: u1, V: 0, Color: tint},
			ldtk.QuadVertex{X: x1, Y: y1, U: u1, V: v(y1), Color: tint},
			ldtk.QuadVertex{X: x2, Y: y2, U: u2, V: v(y2), Color: tint},
			ldtk.QuadVertex{X: x2, Y: landscapeTop, U: u2, V: 0, Color: tint},
		)
	}
	return quads
}

// VisibleRange returns the quads [start, end) that overlap [left, right].
func (r *LandscapeRenderer) VisibleRange(left, right float64) (start, end int) {
	return visibleRange(r.tiles, tileSize, left, right)
}

// Draw draws the quads cam can see.
func (r *LandscapeRenderer) Draw(b *ldtk.Batch, cam *ldtk.Camera) {
	half := cam.Width() / 2
	start, end := r.VisibleRange(cam.X()-half, cam.X()+half)
	if end <= start {
		return
	}
	b.DrawQuads(r.texture, r.lower, start, end-start, ebiten.AddressRepeat)
	b.DrawQuads(r.texture, r.upper, start, end-start, ebiten.AddressRepeat)
}
