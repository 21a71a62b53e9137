package main

import (
	"testing"

	"github.com/phanxgames/ldtk"
)

// vertex returns corner c of quad q in a raw strip as x, y, u, v.
func vertex(quads []float32, q, c int) [4]float32 {
	i := (q*4 + c) * 8
	return [4]float32{quads[i], quads[i+1], quads[i+2], quads[i+3]}
}

func TestLowerStrip(t *testing.T) {
	quads := lowerStrip([]float64{0, -64, -128}, ldtk.ColorWhite)
	if n := ldtk.QuadCount(quads); n != 2 {
		t.Fatalf("QuadCount = %d, want 2", n)
	}
	want := [][4]float32{
		{0, 0, 0, 0.296875},
		{0, -180, 0, 1},
		{64, -180, 0.25, 1},
		{64, -64, 0.25, 0.546875},
	}
	for c, w := range want {
		if got := vertex(quads, 0, c); got != w {
			t.Errorf("quad 0 corner %d = %v, want %v", c, got, w)
		}
	}
	if got := vertex(quads, 1, 3); got != [4]float32{128, -128, 0.5, 0.796875} {
		t.Errorf("quad 1 top right = %v", got)
	}
}

func TestUpperStrip(t *testing.T) {
	quads := upperStrip([]float64{116, 52}, ldtk.ColorGray)
	if n := ldtk.QuadCount(quads); n != 1 {
		t.Fatalf("QuadCount = %d, want 1", n)
	}
	want := [][4]float32{
		{0, 180, 0, 0},
		{0, 116, 0, 0.25},
		{64, 52, 0.25, 0.5},
		{64, 180, 0.25, 0},
	}
	for c, w := range want {
		if got := vertex(quads, 0, c); got != w {
			t.Errorf("corner %d = %v, want %v", c, got, w)
		}
	}
	if r := quads[4]; r != float32(ldtk.ColorGray.R) {
		t.Errorf("tint red = %v, want %v", r, ldtk.ColorGray.R)
	}
}

func TestLandscapeRendererVisibleRange(t *testing.T) {
	r := &LandscapeRenderer{tiles: landscapePoints - 1}
	if start, end := r.VisibleRange(-320, 320); start != 0 || end != 5 {
		t.Errorf("VisibleRange(-320, 320) = (%d, %d), want (0, 5)", start, end)
	}
	if start, end := r.VisibleRange(1000, 1640); start != 15 || end != 26 {
		t.Errorf("VisibleRange(1000, 1640) = (%d, %d), want (15, 26)", start, end)
	}
}

func TestParallax(t *testing.T) {
	want := [numLayers]float64{4, 2, 1}
	for i, w := range want {
		if got := parallax(i); got != w {
			t.Errorf("parallax(%d) = %v, want %v", i, got, w)
		}
	}
}

func TestFallbackImage(t *testing.T) {
	f := fallbacks[foregroundTexture]
	img := f.image()
	if img.Bounds().Dx() != f.w || img.Bounds().Dy() != f.h {
		t.Fatalf("size = %v", img.Bounds())
	}
	if img.RGBAAt(0, 0) != f.fg || img.RGBAAt(f.cell, 0) != f.bg {
		t.Error("checker cells are not alternating")
	}
	solid := fallbacks[shotImage].image()
	if solid.RGBAAt(8, 8) != fallbacks[shotImage].fg {
		t.Error("solid fallback is not filled")
	}
}
