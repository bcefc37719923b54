package tone

import (
	"time"

	"github.com/sirupsen/logrus"
)

// ChunkFrames is the number of PCM frames delivered per callback.
const ChunkFrames = 1024

// Callback receives one chunk of interleaved samples together with its
// byte length and frame count. It is invoked synchronously from the player
// goroutine and must not block or perform expensive work.
type Callback func(samples []int16, nbytes, nframes int)

// Player delivers the tone ring to a callback on its own schedule. The
// scratch chunk buffer and the ring read offset are owned exclusively by
// the player goroutine; only the State flags are shared.
type Player struct {
	buf      *Buffer
	state    *State
	callback Callback
	logger   *logrus.Logger

	chunk    []int16
	interval time.Duration
	done     chan struct{}
	started  bool
}

// NewPlayer creates a player over the given ring. Start must be called to
// begin delivery.
func NewPlayer(buf *Buffer, state *State, callback Callback, logger *logrus.Logger) *Player {
	chunkSeconds := float64(ChunkFrames) / SampleRate
	return &Player{
		buf:      buf,
		state:    state,
		callback: callback,
		logger:   logger,
		chunk:    make([]int16, ChunkFrames*Channels),
		interval: time.Duration(chunkSeconds * float64(time.Second)),
		done:     make(chan struct{}),
	}
}

// Start spawns the delivery loop.
func (p *Player) Start() {
	if p.started {
		return
	}
	p.started = true
	go p.run()
}

// Stop requests a cooperative shutdown and blocks until the loop has
// exited. Worst-case latency is one delivery interval. Safe to call on a
// player that was never started, and idempotent.
func (p *Player) Stop() {
	if !p.started {
		return
	}
	p.state.RequestStop()
	<-p.done
}

func (p *Player) run() {
	defer close(p.done)

	var (
		off              int
		prevBip, prevBop bool
	)
	deadline := time.Now()

	for {
		if p.state.Stopping() {
			p.logger.Debug("Tone player shutting down")
			return
		}

		now := time.Now()
		if now.Before(deadline) {
			// Cancellable timed wait in place of the reference busy-poll;
			// shutdown latency stays bounded by one chunk interval.
			time.Sleep(deadline.Sub(now))
			continue
		}

		bip, bop := p.buf.MarkerAt(off)
		off = p.buf.ReadAt(p.chunk, off)
		p.callback(p.chunk, len(p.chunk)*bytesPerSample, ChunkFrames)

		// Flags are published individually, each under its own critical
		// section, and only on transitions.
		if bip != prevBip {
			p.state.SetBip(bip)
		}
		if bop != prevBop {
			p.state.SetBop(bop)
		}
		prevBip, prevBop = bip, bop

		deadline = now.Add(p.interval)
	}
}
