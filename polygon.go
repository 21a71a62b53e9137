package ldtk

import "math"

// Polygon is a convex polygon with local vertices placed in the world by a
// position and a counter-clockwise rotation. Vertices may wind either way.
type Polygon struct {
	local    []Vec2
	x, y     float64
	rotation float64

	world []Vec2
	dirty bool
}

// NewPolygon creates a polygon from local vertices. The slice is copied.
func NewPolygon(vertices []Vec2) *Polygon {
	local := make([]Vec2, len(vertices))
	copy(local, vertices)
	return &Polygon{
		local: local,
		world: make([]Vec2, len(vertices)),
		dirty: true,
	}
}

// NewBoxPolygon creates a width x height rectangle centred on its position.
func NewBoxPolygon(width, height float64) *Polygon {
	hw, hh := width/2, height/2
	return NewPolygon([]Vec2{
		{-hw, hh},
		{-hw, -hh},
		{hw, -hh},
		{hw, hh},
	})
}

// SetPosition moves the polygon's origin to (x, y).
func (p *Polygon) SetPosition(x, y float64) {
	if p.x == x && p.y == y {
		return
	}
	p.x, p.y = x, y
	p.dirty = true
}

// Translate moves the polygon by (dx, dy).
func (p *Polygon) Translate(dx, dy float64) {
	p.SetPosition(p.x+dx, p.y+dy)
}

// Position returns the polygon's origin.
func (p *Polygon) Position() Vec2 { return Vec2{p.x, p.y} }

// SetRotation sets the counter-clockwise rotation about the origin in degrees.
func (p *Polygon) SetRotation(degrees float64) {
	if p.rotation == degrees {
		return
	}
	p.rotation = degrees
	p.dirty = true
}

// Rotation returns the rotation in degrees.
func (p *Polygon) Rotation() float64 { return p.rotation }

// LocalVertices returns the vertices relative to the origin. The returned
// slice must not be modified.
func (p *Polygon) LocalVertices() []Vec2 { return p.local }

// Vertices returns the vertices in world space. The returned slice is reused
// by later calls and must not be modified.
func (p *Polygon) Vertices() []Vec2 {
	if !p.dirty {
		return p.world
	}
	p.dirty = false
	sin, cos := 0.0, 1.0
	if p.rotation != 0 {
		sin, cos = math.Sincos(p.rotation * math.Pi / 180)
	}
	for i, v := range p.local {
		p.world[i] = Vec2{
			X: v.X*cos - v.Y*sin + p.x,
			Y: v.X*sin + v.Y*cos + p.y,
		}
	}
	return p.world
}

// BoundingRect returns the axis-aligned bounds of the world vertices.
func (p *Polygon) BoundingRect() Rect {
	vs := p.Vertices()
	if len(vs) == 0 {
		return Rect{X: p.x, Y: p.y}
	}
	minX, minY := vs[0].X, vs[0].Y
	maxX, maxY := minX, minY
	for _, v := range vs[1:] {
		minX = math.Min(minX, v.X)
		minY = math.Min(minY, v.Y)
		maxX = math.Max(maxX, v.X)
		maxY = math.Max(maxY, v.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Overlaps reports whether p and other share interior area, using the
// separating-axis test over the edge normals of both polygons. Polygons that
// only touch along an edge or at a corner do not overlap.
func (p *Polygon) Overlaps(other *Polygon) bool {
	a, b := p.Vertices(), other.Vertices()
	if len(a) < 3 || len(b) < 3 {
		return false
	}
	return !hasSeparatingAxis(a, b) && !hasSeparatingAxis(b, a)
}

// hasSeparatingAxis reports whether one of a's edge normals separates a from b.
func hasSeparatingAxis(a, b []Vec2) bool {
	n := len(a)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		// Edge normal; length does not matter for a separation test.
		nx := -(a[j].Y - a[i].Y)
		ny := a[j].X - a[i].X
		if nx == 0 && ny == 0 {
			continue
		}
		minA, maxA := project(a, nx, ny)
		minB, maxB := project(b, nx, ny)
		if maxA <= minB || maxB <= minA {
			return true
		}
	}
	return false
}

// project returns the extent of vs along the axis (nx, ny).
func project(vs []Vec2, nx, ny float64) (lo, hi float64) {
	lo = vs[0].X*nx + vs[0].Y*ny
	hi = lo
	for _, v := range vs[1:] {
		d := v.X*nx + v.Y*ny
		lo = math.Min(lo, d)
		hi = math.Max(hi, d)
	}
	return lo, hi
}

// HitAny reports whether p overlaps any polygon in set. The set is scanned
// from last to first.
func HitAny(p *Polygon, set []*Polygon) bool {
	for i := len(set) - 1; i >= 0; i-- {
		if p.Overlaps(set[i]) {
			return true
		}
	}
	return false
}

// HitAnyOf reports whether any polygon in a overlaps any polygon in b. a is
// scanned from last to first. There is no spatial pruning; callers with large
// sets should filter by bounds first.
func HitAnyOf(a, b []*Polygon) bool {
	for i := len(a) - 1; i >= 0; i-- {
		if HitAny(a[i], b) {
			return true
		}
	}
	return false
}

// Bounds returns the union of the bounding rectangles of set. It panics if
// set is empty.
func Bounds(set []*Polygon) Rect {
	if len(set) == 0 {
		panic("ldtk: Bounds of an empty polygon set")
	}
	r := set[0].BoundingRect()
	minX, minY, maxX, maxY := r.X, r.Y, r.Right(), r.Top()
	for _, p := range set[1:] {
		r = p.BoundingRect()
		minX = math.Min(minX, r.X)
		minY = math.Min(minY, r.Y)
		maxX = math.Max(maxX, r.Right())
		maxY = math.Max(maxY, r.Top())
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
