// Package generator provides the public surface of the test signal
// generator: construct one with New, call Update once per frame to render
// into the planes, and Close to stop the tone player and release buffers.
//
// The generator exists to exercise encoders and capture pipelines over
// long runs without external media assets. The video signal carries a
// running mm:ss overlay derived from the frame counter; the optional audio
// signal is a repeating four second ring with two embedded sine bursts
// whose delivery is reflected in the overlay color.
package generator

import (
	"errors"

	"github.com/savid/avsiggen/internal/compositor"
	"github.com/savid/avsiggen/internal/pixfmt"
	"github.com/savid/avsiggen/internal/tone"
	"github.com/sirupsen/logrus"
)

var (
	// ErrNilConfig is returned when New is called without a configuration.
	ErrNilConfig = errors.New("config is required")
	// ErrAudioCallbackRequired is returned when audio is configured
	// without a delivery callback.
	ErrAudioCallbackRequired = errors.New("audio callback is required")
	// ErrBipFrequencyRequired is returned when audio is configured without
	// a bip frequency. Use e.g. 500.
	ErrBipFrequencyRequired = errors.New("bip frequency is required")
	// ErrBopFrequencyRequired is returned when audio is configured without
	// a bop frequency. Use e.g. 1500.
	ErrBopFrequencyRequired = errors.New("bop frequency is required")
	// ErrNotInitialized is returned by Update on a closed or never
	// initialized generator.
	ErrNotInitialized = compositor.ErrNotInitialized
)

// Defaults applied by New for zero-valued fields.
const (
	DefaultWidth    = 640
	DefaultHeight   = 480
	DefaultFPS      = 3
	DefaultFormat   = pixfmt.Chroma420
	DefaultBitDepth = pixfmt.Depth8
)

// AudioConfig enables the tone stream. Both frequencies are required.
type AudioConfig struct {
	// BipFrequency is the sine frequency in Hz of the burst at the one
	// second mark of the ring.
	BipFrequency float64
	// BopFrequency is the sine frequency in Hz of the burst at the three
	// second mark of the ring.
	BopFrequency float64
	// Callback receives each PCM chunk. It runs on the player goroutine
	// and must not block or perform expensive work.
	Callback tone.Callback
}

// Config describes the signal to generate. It is not modified after New.
type Config struct {
	Width     int
	Height    int
	FPS       int
	Format    pixfmt.ChromaFormat
	BitDepth  pixfmt.BitDepth
	ByteOrder pixfmt.ByteOrder
	// OneColor replaces the seven background bands with a single white
	// field.
	OneColor bool
	// Audio, when non-nil, starts the tone player.
	Audio *AudioConfig
}

// Generator produces the test signal. Update must be driven from a single
// goroutine; only the tone marker flags are shared with the player.
type Generator struct {
	comp   *compositor.Compositor
	buf    *tone.Buffer
	state  *tone.State
	player *tone.Player
	logger *logrus.Logger
}

// New validates and defaults the configuration, allocates the plane and
// tone buffers and starts the tone player when audio is configured.
// Allocation failure is a runtime panic, as everywhere in Go.
func New(cfg *Config, logger *logrus.Logger) (*Generator, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	width := cfg.Width
	if width == 0 {
		width = DefaultWidth
	}
	height := cfg.Height
	if height == 0 {
		height = DefaultHeight
	}
	fps := cfg.FPS
	if fps == 0 {
		fps = DefaultFPS
	}
	format := cfg.Format
	if format == 0 {
		format = DefaultFormat
	}
	depth := cfg.BitDepth
	if depth == 0 {
		depth = DefaultBitDepth
	}

	if cfg.Audio != nil {
		if cfg.Audio.Callback == nil {
			return nil, ErrAudioCallbackRequired
		}
		if cfg.Audio.BipFrequency == 0 {
			return nil, ErrBipFrequencyRequired
		}
		if cfg.Audio.BopFrequency == 0 {
			return nil, ErrBopFrequencyRequired
		}
	}

	layout := pixfmt.Resolve(format, depth)
	g := &Generator{
		comp:   compositor.New(width, height, fps, layout, cfg.ByteOrder, cfg.OneColor, logger),
		logger: logger,
	}

	if cfg.Audio != nil {
		g.buf = tone.NewBuffer(cfg.Audio.BipFrequency, cfg.Audio.BopFrequency)
		g.state = &tone.State{}
		g.player = tone.NewPlayer(g.buf, g.state, cfg.Audio.Callback, logger)
		g.player.Start()
	}

	return g, nil
}

// Update renders the next frame into the planes. The marker flags are read
// in one lock acquisition before drawing starts.
func (g *Generator) Update() error {
	if g == nil || g.comp == nil {
		return ErrNotInitialized
	}

	var bip, bop bool
	if g.state != nil {
		bip, bop = g.state.Markers()
	}
	return g.comp.Update(bip, bop)
}

// Close stops and joins the tone player if it is running and releases all
// buffers. It is idempotent and safe on a partially initialized generator.
func (g *Generator) Close() error {
	if g == nil {
		return nil
	}

	if g.player != nil {
		g.player.Stop()
		g.player = nil
		g.buf = nil
		g.state = nil
	}

	g.comp = nil
	return nil
}

// Frame returns the number of frames generated so far.
func (g *Generator) Frame() uint64 {
	if g.comp == nil {
		return 0
	}
	return g.comp.Frame()
}

// Y returns the luma plane. Valid until the next Update.
func (g *Generator) Y() []byte {
	if g.comp == nil {
		return nil
	}
	return g.comp.Y()
}

// U returns the first chroma plane. Empty for luma-only formats.
func (g *Generator) U() []byte {
	if g.comp == nil {
		return nil
	}
	return g.comp.U()
}

// V returns the second chroma plane. Empty for luma-only formats.
func (g *Generator) V() []byte {
	if g.comp == nil {
		return nil
	}
	return g.comp.V()
}

// AudioSamples returns the raw tone ring, e.g. for writing a PCM reference
// file. Nil when audio is not configured.
func (g *Generator) AudioSamples() []int16 {
	if g.buf == nil {
		return nil
	}
	return g.buf.Samples()
}
