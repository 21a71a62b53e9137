package ldtk

import (
	"github.com/hajimehoshi/ebiten/v2/audio"
	"go.uber.org/zap"
)

// Options configures NewContext.
type Options struct {
	// Audio plays sounds and tunes. When nil, audio is decoded but silent.
	Audio *audio.Context
	// Logger receives the kit's log output. When nil, nothing is logged.
	Logger *zap.Logger
	// Debug enables invariant checks and per-frame stats.
	Debug bool
}

// Context owns the services a game shares: the drawing batch, the clock, the
// camera registry and the asset registries. One Context is passed to every
// state the Kernel runs.
type Context struct {
	Batch   *Batch
	Clock   *Clock
	Cameras *Cameras
	Images  *Images
	Fonts   *Fonts
	Sounds  *Sounds
	Tunes   *Tunes
	Assets  *Assets
	Log     *zap.Logger

	debug bool
}

// NewContext creates a Context with empty registries.
func NewContext(opts Options) *Context {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	batch := NewBatch()
	ctx := &Context{
		Batch:   batch,
		Clock:   &Clock{},
		Cameras: NewCameras(batch, log.Named("cameras")),
		Images:  NewImages(log.Named("images")),
		Fonts:   NewFonts(log.Named("fonts")),
		Sounds:  NewSounds(opts.Audio, log.Named("sounds")),
		Tunes:   NewTunes(opts.Audio, log.Named("tunes")),
		Log:     log,
	}
	ctx.Assets = NewAssets(ctx.Images, ctx.Fonts, ctx.Sounds, ctx.Tunes, log.Named("assets"))
	ctx.SetDebug(opts.Debug)
	return ctx
}

// SetDebug enables or disables debug checks across the kit.
func (c *Context) SetDebug(enabled bool) {
	c.debug = enabled
	c.Batch.debug = enabled
	c.Cameras.debug = enabled
}

// IsDebug reports whether debug checks are enabled.
func (c *Context) IsDebug() bool { return c.debug }
