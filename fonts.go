package ldtk

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"go.uber.org/zap"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFontName is the name LoadDefaults registers Go Regular under.
const DefaultFontName = "fonts/default"

// DefaultFontSize is the size used for fonts whose name carries no size.
const DefaultFontSize = 32

// Font is a named TrueType face owned by a Fonts registry.
type Font struct {
	fonts  *Fonts
	name   string
	face   *text.GoTextFace
	height float64
}

// Name returns the name the font was registered under.
func (f *Font) Name() string { return f.name }

// Face returns the underlying GoTextFace for direct text/v2 rendering.
func (f *Font) Face() *text.GoTextFace { return f.face }

// Height returns the line height.
func (f *Font) Height() float64 { return f.height }

// Bounds returns the size of s drawn in this font. X and Y are zero.
func (f *Font) Bounds(s string) Rect {
	w, h := text.Measure(s, f.face, f.height)
	return Rect{Width: w, Height: h}
}

// Draw draws s with its bottom-left corner at (x, y).
func (f *Font) Draw(b *Batch, s string, x, y float64, clr Color) {
	b.DrawText(f.face, s, x, y, clr)
}

// Dispose removes the font from its registry.
func (f *Font) Dispose() {
	f.fonts.Dispose(f.name)
}

// Fonts is a registry of named fonts.
type Fonts struct {
	fonts map[string]*Font
	log   *zap.Logger
}

// NewFonts creates an empty registry.
func NewFonts(log *zap.Logger) *Fonts {
	if log == nil {
		log = zap.NewNop()
	}
	return &Fonts{fonts: make(map[string]*Font), log: log}
}

// Add registers face under name, replacing any font with the same name.
func (fs *Fonts) Add(name string, face *text.GoTextFace) *Font {
	m := face.Metrics()
	f := &Font{
		fonts:  fs,
		name:   name,
		face:   face,
		height: m.HAscent + m.HDescent + m.HLineGap,
	}
	fs.fonts[name] = f
	fs.log.Debug("font registered", zap.String("name", name), zap.Float64("size", face.Size))
	return f
}

// AddTTF parses TrueType or OpenType data and registers it at the given size.
func (fs *Fonts) AddTTF(name string, ttfData []byte, size float64) (*Font, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("ldtk: failed to parse font %s: %w", name, err)
	}
	return fs.Add(name, &text.GoTextFace{Source: source, Size: size}), nil
}

// AddDefault registers Go Regular at DefaultFontSize as DefaultFontName.
func (fs *Fonts) AddDefault() (*Font, error) {
	return fs.AddTTF(DefaultFontName, goregular.TTF, DefaultFontSize)
}

// Get returns the font registered under name.
func (fs *Fonts) Get(name string) (*Font, bool) {
	f, ok := fs.fonts[name]
	return f, ok
}

// GetOrDefault returns the font registered under name, falling back to
// DefaultFontName.
func (fs *Fonts) GetOrDefault(name string) (*Font, bool) {
	if f, ok := fs.fonts[name]; ok {
		return f, true
	}
	return fs.Get(DefaultFontName)
}

// Dispose removes the font registered under name.
func (fs *Fonts) Dispose(name string) {
	delete(fs.fonts, name)
}

// Len returns the number of registered fonts.
func (fs *Fonts) Len() int { return len(fs.fonts) }

// Names returns the registered names in sorted order.
func (fs *Fonts) Names() []string {
	return sortedKeys(fs.fonts)
}
