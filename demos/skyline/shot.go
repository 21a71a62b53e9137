package main

import "github.com/phanxgames/ldtk"

const (
	// shotMaxX is how far right of the scroll position a shot may travel.
	shotMaxX   = 320.0
	shotSpeed  = 480.0
	shotSpread = 25.0
	shotSize   = 9.0
)

// Shot is a bullet fired by the player. Like the player, its x offset is
// relative to the scrolling landscape.
type Shot struct {
	world  *World
	x, y   float64
	spread float64
	active bool
	polys  []*ldtk.Polygon
}

func newShot(w *World, spread float64) *Shot {
	s := &Shot{
		world:  w,
		spread: spread,
		active: true,
		polys:  []*ldtk.Polygon{ldtk.NewBoxPolygon(shotSize, shotSize)},
	}
	s.updatePolys()
	return s
}

// MoveTo places the shot at world (x, y).
func (s *Shot) MoveTo(x, y float64) {
	s.x = x - s.world.landscapeX
	s.y = y
	s.updatePolys()
}

// Update moves the shot right and drifts it by its spread.
func (s *Shot) Update(clock *ldtk.Clock) {
	s.x += shotSpeed * clock.Delta
	s.y += s.spread * clock.Delta
	s.updatePolys()
}

func (s *Shot) updatePolys() {
	for _, poly := range s.polys {
		poly.SetPosition(s.X(), s.Y())
	}
}

// X returns the world x.
func (s *Shot) X() float64 { return s.world.landscapeX + s.x }

// Y returns the world y.
func (s *Shot) Y() float64 { return s.y }

// IsActive reports whether the shot is still in flight.
func (s *Shot) IsActive() bool { return s.active && s.x <= shotMaxX }

// Deactivate removes the shot on the next update.
func (s *Shot) Deactivate() { s.active = false }

// Polygons returns the collision shape.
func (s *Shot) Polygons() []*ldtk.Polygon { return s.polys }

// Bounds returns the bounding rectangle of the collision shape.
func (s *Shot) Bounds() ldtk.Rect { return ldtk.Bounds(s.polys) }
