package ldtk

import (
	"math/rand"
	"testing"
)

func boxAt(w, h, x, y float64) *Polygon {
	p := NewBoxPolygon(w, h)
	p.SetPosition(x, y)
	return p
}

func TestPolygonVerticesFollowPosition(t *testing.T) {
	p := boxAt(30, 45, 100, 10)
	vs := p.Vertices()
	if vs[0] != (Vec2{85, 32.5}) || vs[2] != (Vec2{115, -12.5}) {
		t.Errorf("vertices = %v", vs)
	}
	p.Translate(-100, 0)
	if got := p.Vertices()[0]; got != (Vec2{-15, 32.5}) {
		t.Errorf("after Translate vertex 0 = %v, want (-15,32.5)", got)
	}
}

func TestPolygonRotation(t *testing.T) {
	p := NewPolygon([]Vec2{{0, 0}, {10, 0}, {10, 1}})
	p.SetRotation(90)
	v := p.Vertices()[1]
	if !approxEqual(v.X, 0, epsilon) || !approxEqual(v.Y, 10, epsilon) {
		t.Errorf("rotated vertex = %v, want (0,10)", v)
	}
	if p.Rotation() != 90 {
		t.Errorf("Rotation = %v, want 90", p.Rotation())
	}
}

func TestPolygonCopiesVertices(t *testing.T) {
	src := []Vec2{{0, 0}, {1, 0}, {0, 1}}
	p := NewPolygon(src)
	src[0] = Vec2{99, 99}
	if p.LocalVertices()[0] != (Vec2{}) {
		t.Error("NewPolygon did not copy its input")
	}
}

func TestPolygonBoundingRect(t *testing.T) {
	p := boxAt(9, 9, 4.5, -4.5)
	got := p.BoundingRect()
	want := Rect{X: 0, Y: -9, Width: 9, Height: 9}
	if got != want {
		t.Errorf("BoundingRect = %+v, want %+v", got, want)
	}
}

func TestPolygonOverlaps(t *testing.T) {
	tri := NewPolygon([]Vec2{{0, 0}, {10, 0}, {0, 10}})
	tests := []struct {
		name  string
		other *Polygon
		want  bool
	}{
		{"inside", boxAt(2, 2, 2, 2), true},
		{"crossing hypotenuse", boxAt(4, 4, 5, 5), true},
		{"beyond hypotenuse", boxAt(2, 2, 7, 7), false},
		{"far away", boxAt(2, 2, 100, 100), false},
		{"touching edge", boxAt(2, 2, -1, 5), false},
		{"touching corner", boxAt(2, 2, 11, -1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tri.Overlaps(tt.other); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPolygonOverlapsProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		a := boxAt(1+rng.Float64()*20, 1+rng.Float64()*20, rng.Float64()*40, rng.Float64()*40)
		a.SetRotation(rng.Float64() * 360)
		b := boxAt(1+rng.Float64()*20, 1+rng.Float64()*20, rng.Float64()*40, rng.Float64()*40)

		if !a.Overlaps(a) {
			t.Fatalf("polygon %d does not overlap itself", i)
		}
		ab := a.Overlaps(b)
		if ab != b.Overlaps(a) {
			t.Fatalf("case %d: overlap not symmetric", i)
		}
		dx, dy := rng.Float64()*100-50, rng.Float64()*100-50
		a.Translate(dx, dy)
		b.Translate(dx, dy)
		if a.Overlaps(b) != ab {
			t.Fatalf("case %d: overlap changed under translation", i)
		}
	}
}

func TestHitAny(t *testing.T) {
	set := []*Polygon{boxAt(10, 10, 0, 0), boxAt(10, 10, 50, 0), boxAt(10, 10, 100, 0)}
	if !HitAny(boxAt(4, 4, 52, 2), set) {
		t.Error("HitAny missed the middle polygon")
	}
	if HitAny(boxAt(4, 4, 25, 0), set) {
		t.Error("HitAny reported a hit in a gap")
	}
	if HitAny(boxAt(4, 4, 0, 0), nil) {
		t.Error("HitAny on an empty set reported a hit")
	}
}

func TestHitAnyOf(t *testing.T) {
	a := []*Polygon{boxAt(4, 4, -50, 0), boxAt(4, 4, 100, 3)}
	b := []*Polygon{boxAt(10, 10, 0, 0), boxAt(10, 10, 100, 0)}
	if !HitAnyOf(a, b) {
		t.Error("HitAnyOf missed an overlapping pair")
	}
	a[1].SetPosition(200, 0)
	if HitAnyOf(a, b) {
		t.Error("HitAnyOf reported a hit with no overlapping pair")
	}
}

func TestBoundsOrderIndependent(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	set := make([]*Polygon, 20)
	for i := range set {
		set[i] = boxAt(1+rng.Float64()*10, 1+rng.Float64()*10, rng.Float64()*200-100, rng.Float64()*200-100)
		set[i].SetRotation(rng.Float64() * 360)
	}
	want := Bounds(set)
	for trial := 0; trial < 10; trial++ {
		shuffled := append([]*Polygon(nil), set...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		if got := Bounds(shuffled); got != want {
			t.Fatalf("Bounds = %+v, want %+v", got, want)
		}
	}
}

func TestBoundsUnion(t *testing.T) {
	got := Bounds([]*Polygon{boxAt(2, 2, 0, 0), boxAt(2, 2, 10, 20)})
	want := Rect{X: -1, Y: -1, Width: 12, Height: 22}
	if got != want {
		t.Errorf("Bounds = %+v, want %+v", got, want)
	}
}

func TestBoundsEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for an empty set")
		}
	}()
	Bounds(nil)
}
