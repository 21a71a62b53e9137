package main

import (
	"errors"
	"math"
	"sort"

	"github.com/phanxgames/ldtk"
)

const (
	landscapePoints = 1000
	tileSize        = 64

	lowerMax = 0.0
	lowerMin = -170.0
	upperMax = 180.0
	upperMin = lowerMax - 64
)

// ErrTooFewSamples is returned when a height profile has fewer than two
// samples and so spans no tile.
var ErrTooFewSamples = errors.New("skyline: height profile needs at least two samples")

// Landscape is a pair of height profiles sampled every tileSize units: the
// ground below the player and the ceiling above it.
type Landscape struct {
	lower []float64
	upper []float64
}

// NewLandscape generates the deterministic landscape all layers share.
func NewLandscape() *Landscape {
	lower := lowerProfile(landscapePoints)
	return &Landscape{lower: lower, upper: upperProfile(lower)}
}

// lowerProfile is a sine wave around the middle of the ground band, clamped
// to the band.
func lowerProfile(n int) []float64 {
	heights := make([]float64, n)
	mid := (lowerMax + lowerMin) / 2
	for i := range heights {
		h := mid + math.Sin(float64(i)*10*math.Pi/180)*tileSize
		heights[i] = clamp(h, lowerMin, lowerMax)
	}
	return heights
}

// upperProfile follows lower 100 units higher, clamped to the ceiling band.
func upperProfile(lower []float64) []float64 {
	heights := make([]float64, len(lower))
	for i, h := range lower {
		heights[i] = clamp(h+100, upperMin, upperMax)
	}
	return heights
}

// Lower returns the ground heights. The slice must not be modified.
func (l *Landscape) Lower() []float64 { return l.lower }

// Upper returns the ceiling heights. The slice must not be modified.
func (l *Landscape) Upper() []float64 { return l.upper }

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// LandscapeGeometry is the collision shape of one height profile: one convex
// quad per pair of adjacent samples, tile i spanning x in
// [i*tileWidth, (i+1)*tileWidth].
type LandscapeGeometry struct {
	tiles     []*ldtk.Polygon
	bounds    ldtk.Rect
	tileWidth float64
}

// NewLowerGeometry builds ground tiles reaching from each height down to
// bottom.
func NewLowerGeometry(heights []float64, tileWidth, bottom float64) (*LandscapeGeometry, error) {
	return newGeometry(heights, tileWidth, func(x1, y1, x2, y2 float64) []ldtk.Vec2 {
		return []ldtk.Vec2{{X: x1, Y: y1}, {X: x1, Y: bottom}, {X: x2, Y: bottom}, {X: x2, Y: y2}}
	})
}

// NewUpperGeometry builds ceiling tiles reaching from each height up to top.
func NewUpperGeometry(heights []float64, tileWidth, top float64) (*LandscapeGeometry, error) {
	return newGeometry(heights, tileWidth, func(x1, y1, x2, y2 float64) []ldtk.Vec2 {
		return []ldtk.Vec2{{X: x1, Y: top}, {X: x1, Y: y1}, {X: x2, Y: y2}, {X: x2, Y: top}}
	})
}

func newGeometry(heights []float64, tileWidth float64, quad func(x1, y1, x2, y2 float64) []ldtk.Vec2) (*LandscapeGeometry, error) {
	if len(heights) < 2 {
		return nil, ErrTooFewSamples
	}
	tiles := make([]*ldtk.Polygon, len(heights)-1)
	for i := range tiles {
		x1 := float64(i) * tileWidth
		x2 := float64(i+1) * tileWidth
		tiles[i] = ldtk.NewPolygon(quad(x1, heights[i], x2, heights[i+1]))
	}
	return &LandscapeGeometry{
		tiles:     tiles,
		bounds:    ldtk.Bounds(tiles),
		tileWidth: tileWidth,
	}, nil
}

// Tiles returns the tile polygons in x order.
func (g *LandscapeGeometry) Tiles() []*ldtk.Polygon { return g.tiles }

// Len returns the number of tiles.
func (g *LandscapeGeometry) Len() int { return len(g.tiles) }

// Bounds returns the bounding rectangle of all tiles.
func (g *LandscapeGeometry) Bounds() ldtk.Rect { return g.bounds }

// TileRange returns the tiles [start, end) whose x span can overlap
// something inside b. Tiles a box only touches at an edge are left out.
func (g *LandscapeGeometry) TileRange(b ldtk.Rect) (start, end int) {
	left := int(math.Floor(b.X / g.tileWidth))
	right := int(math.Ceil(b.Right() / g.tileWidth))
	if right <= 0 || left >= len(g.tiles) {
		return 0, 0
	}
	return max(left, 0), min(right, len(g.tiles))
}

// HitAny reports whether any tile overlaps any of others.
func (g *LandscapeGeometry) HitAny(others []*ldtk.Polygon) bool {
	return ldtk.HitAnyOf(g.tiles, others)
}

// HitAnyWithin is HitAny restricted to the tiles under otherBounds, which
// must bound others.
func (g *LandscapeGeometry) HitAnyWithin(others []*ldtk.Polygon, otherBounds ldtk.Rect) bool {
	start, end := g.TileRange(otherBounds)
	for i := start; i < end; i++ {
		if ldtk.HitAny(g.tiles[i], others) {
			return true
		}
	}
	return false
}

// visibleRange returns the tiles [start, end) of an n-tile strip that
// overlap [left, right]: the first tile whose right edge reaches left up to
// the first tile whose left edge reaches right.
func visibleRange(n int, tileWidth, left, right float64) (start, end int) {
	start = sort.Search(n, func(i int) bool {
		return float64(i+1)*tileWidth >= left
	})
	end = start + sort.Search(n-start, func(j int) bool {
		return float64(start+j)*tileWidth >= right
	})
	return start, end
}
