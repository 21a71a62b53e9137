package ldtk

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// Image is a named image owned by an Images registry.
type Image struct {
	images *Images
	name   string
	src    *ebiten.Image
	width  float64
	height float64
}

// Name returns the name the image was registered under.
func (img *Image) Name() string { return img.name }

// Src returns the underlying Ebitengine image.
func (img *Image) Src() *ebiten.Image { return img.src }

// Width returns the image width in pixels.
func (img *Image) Width() float64 { return img.width }

// Height returns the image height in pixels.
func (img *Image) Height() float64 { return img.height }

// Draw draws the image centred on (x, y).
func (img *Image) Draw(b *Batch, x, y float64) {
	b.DrawImage(img.src, x, y)
}

// DrawRotated draws the image centred on (x, y), rotated counter-clockwise
// about its centre by ccwDegrees.
func (img *Image) DrawRotated(b *Batch, x, y, ccwDegrees float64) {
	b.DrawImageRotated(img.src, x, y, ccwDegrees)
}

// Dispose removes the image from its registry.
func (img *Image) Dispose() {
	img.images.Dispose(img.name)
}

// Images is a registry of named images.
type Images struct {
	images map[string]*Image
	log    *zap.Logger
}

// NewImages creates an empty registry.
func NewImages(log *zap.Logger) *Images {
	if log == nil {
		log = zap.NewNop()
	}
	return &Images{images: make(map[string]*Image), log: log}
}

// Add registers src under name, replacing any image with the same name.
func (is *Images) Add(name string, src *ebiten.Image) *Image {
	b := src.Bounds()
	img := &Image{
		images: is,
		name:   name,
		src:    src,
		width:  float64(b.Dx()),
		height: float64(b.Dy()),
	}
	is.images[name] = img
	is.log.Debug("image registered", zap.String("name", name), zap.Int("w", b.Dx()), zap.Int("h", b.Dy()))
	return img
}

// Get returns the image registered under name.
func (is *Images) Get(name string) (*Image, bool) {
	img, ok := is.images[name]
	return img, ok
}

// Dispose removes the image registered under name.
func (is *Images) Dispose(name string) {
	delete(is.images, name)
}

// Len returns the number of registered images.
func (is *Images) Len() int { return len(is.images) }

// Names returns the registered names in sorted order.
func (is *Images) Names() []string {
	return sortedKeys(is.images)
}

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
