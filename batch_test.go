package ldtk

import (
	"image"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestAppendQuadLayout(t *testing.T) {
	var quads []float32
	red := Color{1, 0, 0, 0.5}
	quads = AppendQuad(quads,
		QuadVertex{X: 0, Y: 10, U: 0, V: 0, Color: red},
		QuadVertex{X: 0, Y: 0, U: 0, V: 1, Color: red},
		QuadVertex{X: 10, Y: 0, U: 1, V: 1, Color: red},
		QuadVertex{X: 10, Y: 10, U: 1, V: 0, Color: red},
	)
	if len(quads) != floatsPerQuad {
		t.Fatalf("len = %d, want %d", len(quads), floatsPerQuad)
	}
	if QuadCount(quads) != 1 {
		t.Errorf("QuadCount = %d, want 1", QuadCount(quads))
	}
	// Third vertex (bottom-right).
	br := quads[2*floatsPerVertex : 3*floatsPerVertex]
	want := []float32{10, 0, 1, 1, 1, 0, 0, 0.5}
	for i := range want {
		if br[i] != want[i] {
			t.Errorf("br[%d] = %v, want %v", i, br[i], want[i])
		}
	}
}

func TestAppendQuadVerticesRange(t *testing.T) {
	var quads []float32
	for i := 0; i < 3; i++ {
		x := float64(i * 10)
		quads = AppendQuad(quads,
			QuadVertex{X: x, Y: 10, Color: ColorWhite},
			QuadVertex{X: x, Y: 0, V: 1, Color: ColorWhite},
			QuadVertex{X: x + 10, Y: 0, U: 1, V: 1, Color: ColorWhite},
			QuadVertex{X: x + 10, Y: 10, U: 1, Color: ColorWhite},
		)
	}
	var proj ebiten.GeoM
	vs := appendQuadVertices(nil, quads, 1, 2, proj, image.Rect(0, 0, 64, 32))
	if len(vs) != 8 {
		t.Fatalf("vertices = %d, want 8", len(vs))
	}
	if vs[0].DstX != 10 || vs[0].DstY != 10 {
		t.Errorf("first vertex = (%v,%v), want (10,10)", vs[0].DstX, vs[0].DstY)
	}
	if vs[2].SrcX != 64 || vs[2].SrcY != 32 {
		t.Errorf("bottom-right src = (%v,%v), want (64,32)", vs[2].SrcX, vs[2].SrcY)
	}
}

func TestAppendQuadVerticesSubImageOffset(t *testing.T) {
	quads := AppendQuad(nil,
		QuadVertex{U: 0.5, V: 0.5, Color: ColorWhite},
		QuadVertex{Color: ColorWhite},
		QuadVertex{Color: ColorWhite},
		QuadVertex{Color: ColorWhite},
	)
	var proj ebiten.GeoM
	vs := appendQuadVertices(nil, quads, 0, 1, proj, image.Rect(100, 200, 120, 240))
	if vs[0].SrcX != 110 || vs[0].SrcY != 220 {
		t.Errorf("src = (%v,%v), want (110,220)", vs[0].SrcX, vs[0].SrcY)
	}
}

func TestAppendQuadVerticesPremultiplies(t *testing.T) {
	quads := AppendQuad(nil,
		QuadVertex{Color: Color{1, 0.5, 0, 0.5}},
		QuadVertex{Color: ColorWhite},
		QuadVertex{Color: ColorWhite},
		QuadVertex{Color: ColorWhite},
	)
	var proj ebiten.GeoM
	vs := appendQuadVertices(nil, quads, 0, 1, proj, image.Rect(0, 0, 1, 1))
	v := vs[0]
	if v.ColorR != 0.5 || v.ColorG != 0.25 || v.ColorB != 0 || v.ColorA != 0.5 {
		t.Errorf("color = (%v,%v,%v,%v), want (0.5,0.25,0,0.5)", v.ColorR, v.ColorG, v.ColorB, v.ColorA)
	}
}

func TestAppendQuadVerticesProjection(t *testing.T) {
	quads := AppendQuad(nil,
		QuadVertex{X: 1, Y: 1, Color: ColorWhite},
		QuadVertex{Color: ColorWhite},
		QuadVertex{Color: ColorWhite},
		QuadVertex{Color: ColorWhite},
	)
	var proj ebiten.GeoM
	proj.Scale(2, -2)
	proj.Translate(100, 50)
	vs := appendQuadVertices(nil, quads, 0, 1, proj, image.Rect(0, 0, 1, 1))
	if vs[0].DstX != 102 || vs[0].DstY != 48 {
		t.Errorf("projected = (%v,%v), want (102,48)", vs[0].DstX, vs[0].DstY)
	}
}

func TestAppendQuadIndices(t *testing.T) {
	is := appendQuadIndices(nil, 2)
	want := []uint32{0, 1, 2, 0, 2, 3, 4, 5, 6, 4, 6, 7}
	if len(is) != len(want) {
		t.Fatalf("indices = %d, want %d", len(is), len(want))
	}
	for i := range want {
		if is[i] != want[i] {
			t.Errorf("is[%d] = %d, want %d", i, is[i], want[i])
		}
	}
}

func TestSpriteGeoMCentresImage(t *testing.T) {
	g := spriteGeoM(image.Rect(0, 0, 30, 46), 100, 200, 0)
	// The image's top-left pixel lands at the top-left of the world box.
	x, y := g.Apply(0, 0)
	if !approxEqual(x, 85, epsilon) || !approxEqual(y, 223, epsilon) {
		t.Errorf("top-left = (%v,%v), want (85,223)", x, y)
	}
	x, y = g.Apply(15, 23)
	if !approxEqual(x, 100, epsilon) || !approxEqual(y, 200, epsilon) {
		t.Errorf("centre = (%v,%v), want (100,200)", x, y)
	}
}

func TestSpriteGeoMRotation(t *testing.T) {
	g := spriteGeoM(image.Rect(0, 0, 2, 2), 0, 0, 90)
	// Right-middle of the image rotates counter-clockwise to the top.
	x, y := g.Apply(2, 1)
	if !approxEqual(x, 0, epsilon) || !approxEqual(y, 1, epsilon) {
		t.Errorf("rotated = (%v,%v), want (0,1)", x, y)
	}
}

func TestTextGeoMBottomLeft(t *testing.T) {
	g := textGeoM(10, 20, 32)
	x, y := g.Apply(0, 0)
	if x != 10 || y != 52 {
		t.Errorf("layout top-left = (%v,%v), want (10,52)", x, y)
	}
	x, y = g.Apply(0, 32)
	if x != 10 || y != 20 {
		t.Errorf("layout bottom-left = (%v,%v), want (10,20)", x, y)
	}
}

func TestBatchScissorState(t *testing.T) {
	b := NewBatch()
	if _, on := b.Scissor(); on {
		t.Error("new batch has scissor enabled")
	}
	r := image.Rect(10, 20, 110, 220)
	b.SetScissor(r)
	got, on := b.Scissor()
	if !on || got != r {
		t.Errorf("Scissor = (%v,%v), want (%v,true)", got, on, r)
	}
	b.DisableScissor()
	if _, on := b.Scissor(); on {
		t.Error("scissor still enabled after DisableScissor")
	}
}

func TestBatchDropsDrawsOutsideBeginEnd(t *testing.T) {
	b := NewBatch()
	if b.IsDrawing() {
		t.Fatal("new batch is drawing")
	}
	quads := AppendQuad(nil, QuadVertex{}, QuadVertex{}, QuadVertex{}, QuadVertex{})
	// No target: must not panic or count anything.
	b.DrawQuads(nil, quads, 0, 1, ebiten.AddressRepeat)
	b.DrawImage(nil, 0, 0)
	if calls, n := b.stats(); calls != 0 || n != 0 {
		t.Errorf("stats = (%d,%d), want (0,0)", calls, n)
	}
}
