// Package main implements the signal generator CLI: it renders a fixed
// number of test frames to a raw YUV file and, when tones are configured,
// writes the PCM tone ring alongside it.
package main

import (
	"bufio"
	"encoding/binary"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/savid/avsiggen/config"
	"github.com/savid/avsiggen/internal/pixfmt"
	"github.com/savid/avsiggen/pkg/generator"
	"github.com/sirupsen/logrus"
)

func main() {
	// Configure logrus
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	cfg, err := config.New()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to parse log level")
	}
	logrus.SetLevel(level)

	logger := logrus.StandardLogger()

	order := pixfmt.LittleEndian
	if cfg.BigEndian {
		order = pixfmt.BigEndian
	}

	gcfg := &generator.Config{
		Width:     cfg.Width,
		Height:    cfg.Height,
		FPS:       cfg.FPS,
		Format:    pixfmt.ChromaFormat(cfg.Format),
		BitDepth:  pixfmt.BitDepth(cfg.BitDepth),
		ByteOrder: order,
		OneColor:  cfg.OneColor,
	}

	// The callback runs on the tone player goroutine; it only counts what
	// was delivered.
	var audioFrames, audioBytes uint64
	if cfg.ToneEnabled() {
		gcfg.Audio = &generator.AudioConfig{
			BipFrequency: cfg.BipFrequency,
			BopFrequency: cfg.BopFrequency,
			Callback: func(_ []int16, nbytes, nframes int) {
				atomic.AddUint64(&audioFrames, uint64(nframes))
				atomic.AddUint64(&audioBytes, uint64(nbytes))
			},
		}
	}

	gen, err := generator.New(gcfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize the generator")
	}

	if cfg.AudioOutput != "" && cfg.ToneEnabled() {
		if err := writePCM(cfg.AudioOutput, gen.AudioSamples()); err != nil {
			logger.WithError(err).Fatal("Failed to write the tone ring")
		}
		logger.WithField("file", cfg.AudioOutput).Info("Tone ring written")
	}

	out, err := os.Create(cfg.Output)
	if err != nil {
		logger.WithError(err).Fatal("Failed to create the output file")
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	logger.WithFields(logrus.Fields{
		"file":     cfg.Output,
		"width":    cfg.Width,
		"height":   cfg.Height,
		"fps":      cfg.FPS,
		"format":   cfg.Format,
		"bitdepth": cfg.BitDepth,
		"frames":   cfg.Frames,
	}).Info("Generating")

	w := bufio.NewWriter(out)
loop:
	for gen.Frame() < uint64(cfg.Frames) {
		select {
		case <-sigChan:
			logger.Info("Interrupted, stopping")
			break loop
		default:
		}

		if err := gen.Update(); err != nil {
			logger.WithError(err).Fatal("Failed to generate a frame")
		}

		for _, plane := range [][]byte{gen.Y(), gen.U(), gen.V()} {
			if _, err := w.Write(plane); err != nil {
				logger.WithError(err).Fatal("Failed to write a frame")
			}
		}
	}

	frames := gen.Frame()

	if err := gen.Close(); err != nil {
		logger.WithError(err).Error("Failed to close the generator")
	}

	if err := w.Flush(); err != nil {
		logger.WithError(err).Fatal("Failed to flush the output file")
	}
	if err := out.Close(); err != nil {
		logger.WithError(err).Fatal("Failed to close the output file")
	}

	logger.WithFields(logrus.Fields{
		"frames":      frames,
		"audioFrames": atomic.LoadUint64(&audioFrames),
		"audioBytes":  atomic.LoadUint64(&audioBytes),
	}).Info("Done")
}

// writePCM writes the interleaved samples as little-endian 16-bit PCM.
func writePCM(path string, samples []int16) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	if err := binary.Write(w, binary.LittleEndian, samples); err != nil {
		_ = f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
