package main

import (
	"math"

	"github.com/phanxgames/ldtk"
)

const (
	playerMinX = -288.0
	playerMaxX = 208.0
	playerMinY = -180.0
	playerMaxY = 180.0

	playerWidth  = 30.0
	playerHeight = 45.0

	verticalSpeed   = 180.0
	horizontalSpeed = 240.0
	// touchSpeed is the speed of a drag of touchMaxDist or more.
	touchSpeed   = 240.0
	touchMaxDist = 45.0

	shotCooldown = 0.05
)

// Player is the ship. Its x offset is relative to the scrolling landscape, so
// it keeps pace with the scroll when no key is held.
type Player struct {
	world       *World
	x, y        float64
	mayFireTime float64
	polys       []*ldtk.Polygon
	touchStart  ldtk.Vec2
}

func newPlayer(w *World) *Player {
	p := &Player{
		world: w,
		polys: []*ldtk.Polygon{ldtk.NewBoxPolygon(playerWidth, playerHeight)},
	}
	p.updatePolys()
	return p
}

// Update moves the player and fires.
func (p *Player) Update(clock *ldtk.Clock, c Controls) {
	var dx, dy float64
	if c.Right {
		dx += horizontalSpeed
	}
	if c.Left {
		dx -= horizontalSpeed
	}
	if c.Up {
		dy += verticalSpeed
	}
	if c.Down {
		dy -= verticalSpeed
	}

	switch {
	case c.TouchStarted:
		p.touchStart = ldtk.Vec2{X: c.TouchX, Y: c.TouchY}
	case c.Touching:
		diffX, diffY := c.TouchX-p.touchStart.X, c.TouchY-p.touchStart.Y
		angle := math.Atan2(diffY, diffX)
		dist := math.Min(math.Hypot(diffX, diffY)/touchMaxDist, 1)
		dx = math.Cos(angle) * dist * touchSpeed
		dy = math.Sin(angle) * dist * touchSpeed
	}

	if c.Fire && clock.Time >= p.mayFireTime {
		p.world.addShot()
		p.mayFireTime = clock.Time + shotCooldown
	}

	p.x = clamp(p.x+dx*clock.Delta, playerMinX, playerMaxX)
	p.y = clamp(p.y+dy*clock.Delta, playerMinY, playerMaxY)
	p.updatePolys()
}

func (p *Player) updatePolys() {
	for _, poly := range p.polys {
		poly.SetPosition(p.X(), p.Y())
	}
}

// X returns the world x.
func (p *Player) X() float64 { return p.world.landscapeX + p.x }

// Y returns the world y.
func (p *Player) Y() float64 { return p.y }

// Polygons returns the collision shape.
func (p *Player) Polygons() []*ldtk.Polygon { return p.polys }

// Bounds returns the bounding rectangle of the collision shape.
func (p *Player) Bounds() ldtk.Rect { return ldtk.Bounds(p.polys) }
