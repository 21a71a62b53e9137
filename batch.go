package ldtk

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Quad vertex layout in a raw vertex strip:
//
//	x, y, u, v, r, g, b, a
//
// Positions are in world units, u and v are normalized texture coordinates
// (1 spans the whole source image) and the colour is not premultiplied.
// Each quad holds four vertices in the order top-left, bottom-left,
// bottom-right, top-right.
const (
	floatsPerVertex = 8
	floatsPerQuad   = 4 * floatsPerVertex
)

// QuadVertex is one corner of a quad in a raw vertex strip.
type QuadVertex struct {
	X, Y  float64
	U, V  float64
	Color Color
}

// AppendQuad appends one quad, given as its four corners, to a raw vertex
// strip and returns the extended strip.
func AppendQuad(quads []float32, tl, bl, br, tr QuadVertex) []float32 {
	for _, v := range [4]QuadVertex{tl, bl, br, tr} {
		quads = append(quads,
			float32(v.X), float32(v.Y),
			float32(v.U), float32(v.V),
			float32(v.Color.R), float32(v.Color.G), float32(v.Color.B), float32(v.Color.A),
		)
	}
	return quads
}

// QuadCount returns the number of whole quads in a raw vertex strip.
func QuadCount(quads []float32) int {
	return len(quads) / floatsPerQuad
}

// Batch draws images, text and raw vertex strips onto a frame target through
// the projection and scissor rectangle of the active camera.
//
// Begin and End bracket the drawing of one frame. The projection and scissor
// may be changed between them; later draws use the new values.
type Batch struct {
	target *ebiten.Image
	dst    *ebiten.Image

	projection ebiten.GeoM
	scissor    image.Rectangle
	scissored  bool
	drawing    bool
	debug      bool

	op       ebiten.DrawImageOptions
	textOp   text.DrawOptions
	triOp    ebiten.DrawTrianglesOptions
	vertices []ebiten.Vertex
	indices  []uint32

	drawCalls int
	quads     int
}

// NewBatch creates a Batch with an identity projection and no scissor.
func NewBatch() *Batch {
	b := &Batch{}
	b.triOp.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	return b
}

// Begin starts drawing onto target.
func (b *Batch) Begin(target *ebiten.Image) {
	b.target = target
	b.drawing = true
	b.drawCalls = 0
	b.quads = 0
	b.applyScissor()
}

// End finishes the frame. Draw calls between End and the next Begin are
// dropped.
func (b *Batch) End() {
	b.drawing = false
	b.target = nil
	b.dst = nil
}

// IsDrawing reports whether the batch is between Begin and End.
func (b *Batch) IsDrawing() bool { return b.drawing }

// SetProjection sets the world-to-pixel transform used by later draws.
func (b *Batch) SetProjection(m ebiten.GeoM) {
	b.projection = m
}

// Projection returns the current world-to-pixel transform.
func (b *Batch) Projection() ebiten.GeoM { return b.projection }

// SetScissor clips later draws to the pixel rectangle r.
func (b *Batch) SetScissor(r image.Rectangle) {
	b.scissor = r
	b.scissored = true
	b.applyScissor()
}

// DisableScissor lets later draws cover the whole target.
func (b *Batch) DisableScissor() {
	b.scissored = false
	b.applyScissor()
}

// Scissor returns the scissor rectangle and whether it is enabled.
func (b *Batch) Scissor() (image.Rectangle, bool) {
	return b.scissor, b.scissored
}

// applyScissor selects the sub-image of the target that later draws go to.
// Sub-images keep the parent's coordinate space.
func (b *Batch) applyScissor() {
	if b.target == nil {
		b.dst = nil
		return
	}
	if !b.scissored {
		b.dst = b.target
		return
	}
	r := b.scissor.Intersect(b.target.Bounds())
	b.dst = b.target.SubImage(r).(*ebiten.Image)
}

// DrawQuads draws count quads of a raw vertex strip, starting at quad first,
// textured with img. address controls how texture coordinates outside [0, 1]
// are sampled.
func (b *Batch) DrawQuads(img *ebiten.Image, quads []float32, first, count int, address ebiten.Address) {
	if b.debug {
		debugCheckQuadRange(quads, first, count)
	}
	if !b.drawing || img == nil || count <= 0 {
		return
	}
	bounds := img.Bounds()
	b.vertices = appendQuadVertices(b.vertices[:0], quads, first, count, b.projection, bounds)
	b.indices = appendQuadIndices(b.indices[:0], count)

	b.triOp.Address = address
	b.dst.DrawTriangles32(b.vertices, b.indices, img, &b.triOp)
	b.drawCalls++
	b.quads += count
}

// appendQuadVertices converts quads [first, first+count) of a raw vertex
// strip into projected Ebitengine vertices with source coordinates inside
// src and premultiplied colours.
func appendQuadVertices(vs []ebiten.Vertex, quads []float32, first, count int, proj ebiten.GeoM, src image.Rectangle) []ebiten.Vertex {
	sw := float32(src.Dx())
	sh := float32(src.Dy())
	ox := float32(src.Min.X)
	oy := float32(src.Min.Y)

	start := first * floatsPerQuad
	end := (first + count) * floatsPerQuad
	for i := start; i < end; i += floatsPerVertex {
		v := quads[i : i+floatsPerVertex]
		dx, dy := proj.Apply(float64(v[0]), float64(v[1]))
		a := v[7]
		vs = append(vs, ebiten.Vertex{
			DstX:   float32(dx),
			DstY:   float32(dy),
			SrcX:   ox + v[2]*sw,
			SrcY:   oy + v[3]*sh,
			ColorR: v[4] * a,
			ColorG: v[5] * a,
			ColorB: v[6] * a,
			ColorA: a,
		})
	}
	return vs
}

// appendQuadIndices appends two triangles per quad: TL-BL-BR, TL-BR-TR.
func appendQuadIndices(is []uint32, count int) []uint32 {
	for q := 0; q < count; q++ {
		base := uint32(q * 4)
		is = append(is,
			base+0, base+1, base+2,
			base+0, base+2, base+3,
		)
	}
	return is
}

// DrawImage draws img centred on the world position (x, y).
func (b *Batch) DrawImage(img *ebiten.Image, x, y float64) {
	b.DrawImageRotated(img, x, y, 0)
}

// DrawImageRotated draws img centred on the world position (x, y), rotated
// counter-clockwise about its centre by ccwDegrees.
func (b *Batch) DrawImageRotated(img *ebiten.Image, x, y, ccwDegrees float64) {
	if !b.drawing || img == nil {
		return
	}
	b.op.GeoM = spriteGeoM(img.Bounds(), x, y, ccwDegrees)
	b.op.GeoM.Concat(b.projection)
	b.dst.DrawImage(img, &b.op)
	b.drawCalls++
	b.quads++
}

// spriteGeoM places an image of the given bounds centred on the world
// position (x, y) of a y-up world. The image is flipped once here and once
// more by the projection, so it ends up upright.
func spriteGeoM(bounds image.Rectangle, x, y, ccwDegrees float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.Translate(-float64(bounds.Dx())/2, -float64(bounds.Dy())/2)
	g.Scale(1, -1)
	if ccwDegrees != 0 {
		g.Rotate(ccwDegrees * math.Pi / 180)
	}
	g.Translate(x, y)
	return g
}

// DrawText draws s with its bottom-left corner at the world position (x, y).
func (b *Batch) DrawText(face text.Face, s string, x, y float64, clr Color) {
	if !b.drawing || face == nil {
		return
	}
	m := face.Metrics()
	lineHeight := m.HAscent + m.HDescent + m.HLineGap

	b.textOp.GeoM = textGeoM(x, y, lineHeight)
	b.textOp.GeoM.Concat(b.projection)
	b.textOp.ColorScale.Reset()
	b.textOp.ColorScale.Scale(
		float32(clr.R*clr.A),
		float32(clr.G*clr.A),
		float32(clr.B*clr.A),
		float32(clr.A),
	)
	b.textOp.LineSpacing = lineHeight
	text.Draw(b.dst, s, face, &b.textOp)
	b.drawCalls++
}

// textGeoM maps y-down text layout onto a y-up world with the layout's top
// edge at y + lineHeight.
func textGeoM(x, y, lineHeight float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.Scale(1, -1)
	g.Translate(x, y+lineHeight)
	return g
}

// stats returns the draw calls and quads submitted since Begin.
func (b *Batch) stats() (drawCalls, quads int) {
	return b.drawCalls, b.quads
}
