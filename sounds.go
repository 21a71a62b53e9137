package ldtk

import (
	"bytes"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"go.uber.org/zap"
)

// DefaultSampleRate is the sample rate sounds and tunes are decoded at.
const DefaultSampleRate = 44100

// audioStream is a decoded PCM stream of known length.
type audioStream interface {
	io.ReadSeeker
	Length() int64
}

// decodeAudio decodes Ogg Vorbis or WAV data, chosen by the file extension
// of name, to 16-bit stereo PCM at sampleRate.
func decodeAudio(sampleRate int, name string, data []byte) (audioStream, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("ldtk: failed to decode %s: %w", name, err)
		}
		return s, nil
	case ".wav":
		s, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("ldtk: failed to decode %s: %w", name, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("ldtk: unsupported audio format %q", name)
	}
}

// Sound is a short named clip held fully decoded in memory. Each Play starts
// a new voice.
type Sound struct {
	sounds *Sounds
	name   string
	pcm    []byte
	voices []*audio.Player
}

// Name returns the name the sound was registered under.
func (s *Sound) Name() string { return s.name }

// Duration returns the length of the clip.
func (s *Sound) Duration() time.Duration {
	// 16-bit stereo: four bytes per frame.
	frames := len(s.pcm) / 4
	return time.Duration(frames) * time.Second / time.Duration(s.sounds.sampleRate)
}

// Play starts a new voice at full volume.
func (s *Sound) Play() { s.PlayVolume(1) }

// PlayVolume starts a new voice at volume in [0, 1]. It does nothing when
// the registry has no audio context.
func (s *Sound) PlayVolume(volume float64) {
	ctx := s.sounds.ctx
	if ctx == nil {
		return
	}
	s.prune()
	p := ctx.NewPlayerFromBytes(s.pcm)
	p.SetVolume(volume)
	p.Play()
	s.voices = append(s.voices, p)
}

// Stop silences every voice of this sound.
func (s *Sound) Stop() {
	for _, p := range s.voices {
		p.Pause()
		_ = p.Close()
	}
	s.voices = s.voices[:0]
}

// prune drops voices that have finished.
func (s *Sound) prune() {
	live := s.voices[:0]
	for _, p := range s.voices {
		if p.IsPlaying() {
			live = append(live, p)
		} else {
			_ = p.Close()
		}
	}
	clear(s.voices[len(live):])
	s.voices = live
}

// Dispose stops the sound and removes it from its registry.
func (s *Sound) Dispose() {
	s.Stop()
	s.sounds.Dispose(s.name)
}

// Sounds is a registry of named sound clips.
type Sounds struct {
	sounds     map[string]*Sound
	ctx        *audio.Context
	sampleRate int
	log        *zap.Logger
}

// NewSounds creates an empty registry playing through ctx. ctx may be nil, in
// which case sounds are decoded at DefaultSampleRate but never heard.
func NewSounds(ctx *audio.Context, log *zap.Logger) *Sounds {
	if log == nil {
		log = zap.NewNop()
	}
	return &Sounds{
		sounds:     make(map[string]*Sound),
		ctx:        ctx,
		sampleRate: sampleRateOf(ctx),
		log:        log,
	}
}

func sampleRateOf(ctx *audio.Context) int {
	if ctx == nil {
		return DefaultSampleRate
	}
	return ctx.SampleRate()
}

// Add decodes an Ogg Vorbis or WAV file and registers it under name. file is
// only used to pick the decoder.
func (ss *Sounds) Add(name, file string, data []byte) (*Sound, error) {
	stream, err := decodeAudio(ss.sampleRate, file, data)
	if err != nil {
		return nil, err
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("ldtk: failed to read %s: %w", file, err)
	}
	s := &Sound{sounds: ss, name: name, pcm: pcm}
	if old, ok := ss.sounds[name]; ok {
		old.Stop()
	}
	ss.sounds[name] = s
	ss.log.Debug("sound registered", zap.String("name", name), zap.Duration("duration", s.Duration()))
	return s, nil
}

// Get returns the sound registered under name.
func (ss *Sounds) Get(name string) (*Sound, bool) {
	s, ok := ss.sounds[name]
	return s, ok
}

// Dispose removes the sound registered under name.
func (ss *Sounds) Dispose(name string) {
	delete(ss.sounds, name)
}

// Len returns the number of registered sounds.
func (ss *Sounds) Len() int { return len(ss.sounds) }

// Names returns the registered names in sorted order.
func (ss *Sounds) Names() []string {
	return sortedKeys(ss.sounds)
}

// Tune is named music, kept encoded in memory and decoded while it plays.
type Tune struct {
	tunes   *Tunes
	name    string
	file    string
	data    []byte
	player  *audio.Player
	looping bool
	volume  float64
}

// Name returns the name the tune was registered under.
func (t *Tune) Name() string { return t.name }

// Play starts or resumes the tune. It does nothing when the registry has no
// audio context.
func (t *Tune) Play() error {
	if t.tunes.ctx == nil {
		return nil
	}
	if t.player == nil {
		if err := t.open(); err != nil {
			return err
		}
	}
	t.player.Play()
	return nil
}

// open creates the player, wrapping the stream in an infinite loop when
// looping is set.
func (t *Tune) open() error {
	stream, err := decodeAudio(t.tunes.sampleRate, t.file, t.data)
	if err != nil {
		return err
	}
	var src io.Reader = stream
	if t.looping {
		src = audio.NewInfiniteLoop(stream, stream.Length())
	}
	p, err := t.tunes.ctx.NewPlayer(src)
	if err != nil {
		return fmt.Errorf("ldtk: failed to create player for %s: %w", t.name, err)
	}
	p.SetVolume(t.volume)
	t.player = p
	return nil
}

// Pause pauses the tune, keeping its position.
func (t *Tune) Pause() {
	if t.player != nil {
		t.player.Pause()
	}
}

// Stop stops the tune and rewinds it.
func (t *Tune) Stop() {
	if t.player == nil {
		return
	}
	t.player.Pause()
	_ = t.player.Close()
	t.player = nil
}

// IsPlaying reports whether the tune is playing.
func (t *Tune) IsPlaying() bool {
	return t.player != nil && t.player.IsPlaying()
}

// SetLooping sets whether the tune restarts when it ends. It takes effect
// the next time the tune starts from the beginning.
func (t *Tune) SetLooping(looping bool) { t.looping = looping }

// IsLooping reports whether the tune loops.
func (t *Tune) IsLooping() bool { return t.looping }

// SetVolume sets the volume in [0, 1].
func (t *Tune) SetVolume(volume float64) {
	t.volume = volume
	if t.player != nil {
		t.player.SetVolume(volume)
	}
}

// Volume returns the volume.
func (t *Tune) Volume() float64 { return t.volume }

// Position returns the playback position.
func (t *Tune) Position() time.Duration {
	if t.player == nil {
		return 0
	}
	return t.player.Position()
}

// Dispose stops the tune and removes it from its registry.
func (t *Tune) Dispose() {
	t.Stop()
	t.tunes.Dispose(t.name)
}

// Tunes is a registry of named music.
type Tunes struct {
	tunes      map[string]*Tune
	ctx        *audio.Context
	sampleRate int
	log        *zap.Logger
}

// NewTunes creates an empty registry playing through ctx, which may be nil.
func NewTunes(ctx *audio.Context, log *zap.Logger) *Tunes {
	if log == nil {
		log = zap.NewNop()
	}
	return &Tunes{
		tunes:      make(map[string]*Tune),
		ctx:        ctx,
		sampleRate: sampleRateOf(ctx),
		log:        log,
	}
}

// Add registers encoded Ogg Vorbis or WAV data under name. The data is
// checked by decoding its header.
func (ts *Tunes) Add(name, file string, data []byte) (*Tune, error) {
	if _, err := decodeAudio(ts.sampleRate, file, data); err != nil {
		return nil, err
	}
	t := &Tune{tunes: ts, name: name, file: file, data: data, volume: 1}
	if old, ok := ts.tunes[name]; ok {
		old.Stop()
	}
	ts.tunes[name] = t
	ts.log.Debug("tune registered", zap.String("name", name))
	return t, nil
}

// Get returns the tune registered under name.
func (ts *Tunes) Get(name string) (*Tune, bool) {
	t, ok := ts.tunes[name]
	return t, ok
}

// Dispose removes the tune registered under name.
func (ts *Tunes) Dispose(name string) {
	delete(ts.tunes, name)
}

// Len returns the number of registered tunes.
func (ts *Tunes) Len() int { return len(ts.tunes) }

// Names returns the registered names in sorted order.
func (ts *Tunes) Names() []string {
	return sortedKeys(ts.tunes)
}
