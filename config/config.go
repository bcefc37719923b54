// Package config provides configuration management for the signal
// generator CLI.
package config

import (
	"errors"
	"flag"
	"fmt"
)

var (
	// ErrInvalidWidth is returned when the width is not positive.
	ErrInvalidWidth = errors.New("width must be positive")
	// ErrInvalidHeight is returned when the height is not positive.
	ErrInvalidHeight = errors.New("height must be positive")
	// ErrInvalidFPS is returned when the framerate is not positive.
	ErrInvalidFPS = errors.New("fps must be positive")
	// ErrInvalidFormat is returned when the chroma format is unknown.
	ErrInvalidFormat = errors.New("invalid chroma format")
	// ErrInvalidBitDepth is returned when the bit depth is unknown.
	ErrInvalidBitDepth = errors.New("invalid bit depth")
	// ErrInvalidFrames is returned when the frame count is not positive.
	ErrInvalidFrames = errors.New("frame count must be positive")
	// ErrToneFrequenciesRequired is returned when only one of the two tone
	// frequencies is set.
	ErrToneFrequenciesRequired = errors.New("bip and bop frequencies must be set together")
	// ErrInvalidLogLevel is returned when the log level is invalid.
	ErrInvalidLogLevel = errors.New("invalid log level")
)

// Config holds the application configuration.
type Config struct {
	Width        int
	Height       int
	FPS          int
	Format       int
	BitDepth     int
	BigEndian    bool
	OneColor     bool
	Frames       int
	Output       string
	AudioOutput  string
	BipFrequency float64
	BopFrequency float64
	LogLevel     string
}

// New creates a new configuration instance by parsing command-line flags.
func New() (*Config, error) {
	cfg := &Config{}

	flag.IntVar(&cfg.Width, "width", 720, "Frame width in pixels")
	flag.IntVar(&cfg.Height, "height", 480, "Frame height in pixels")
	flag.IntVar(&cfg.FPS, "fps", 25, "Frames per second")
	flag.IntVar(&cfg.Format, "format", 420, "Chroma format (400, 420, 422 or 444)")
	flag.IntVar(&cfg.BitDepth, "bitdepth", 8, "Bit depth (8, 10 or 12)")
	flag.BoolVar(&cfg.BigEndian, "big-endian", false, "Pack 16-bit samples big-endian")
	flag.BoolVar(&cfg.OneColor, "one-color", false, "Single color background instead of bands")
	flag.IntVar(&cfg.Frames, "frames", 250, "Number of frames to generate")
	flag.StringVar(&cfg.Output, "output", "output.yuv", "Raw YUV output file")
	flag.StringVar(&cfg.AudioOutput, "audio-output", "", "Raw PCM output file for the tone ring (optional)")
	flag.Float64Var(&cfg.BipFrequency, "bip", 0, "Bip tone frequency in Hz (e.g. 500)")
	flag.Float64Var(&cfg.BopFrequency, "bop", 0, "Bop tone frequency in Hz (e.g. 1500)")
	flag.StringVar(&cfg.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	flag.Parse()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Width <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWidth, c.Width)
	}

	if c.Height <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidHeight, c.Height)
	}

	if c.FPS <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidFPS, c.FPS)
	}

	validFormats := map[int]bool{
		400: true,
		420: true,
		422: true,
		444: true,
	}
	if !validFormats[c.Format] {
		return fmt.Errorf("%w: %d (must be 400, 420, 422 or 444)", ErrInvalidFormat, c.Format)
	}

	validDepths := map[int]bool{
		8:  true,
		10: true,
		12: true,
	}
	if !validDepths[c.BitDepth] {
		return fmt.Errorf("%w: %d (must be 8, 10 or 12)", ErrInvalidBitDepth, c.BitDepth)
	}

	if c.Frames <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidFrames, c.Frames)
	}

	if (c.BipFrequency == 0) != (c.BopFrequency == 0) {
		return ErrToneFrequenciesRequired
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("%w: %s (must be debug, info, warn, or error)", ErrInvalidLogLevel, c.LogLevel)
	}

	return nil
}

// ToneEnabled reports whether the tone stream is configured.
func (c *Config) ToneEnabled() bool {
	return c.BipFrequency != 0 && c.BopFrequency != 0
}
