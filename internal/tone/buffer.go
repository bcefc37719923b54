// Package tone synthesizes the audio side of the test signal: a fixed
// silent ring buffer with two embedded sine bursts (the "bip" and the
// "bop") and a background player that delivers chunks of it to a user
// callback while publishing which burst is currently audible.
package tone

import "math"

// Fixed parameters of the tone ring. The ring always spans four seconds of
// interleaved stereo 16-bit PCM at 44100 Hz, with a 100 ms bip at the one
// second mark and a 100 ms bop at the three second mark.
const (
	SampleRate  = 44100
	Channels    = 2
	RingSeconds = 4
	BurstMillis = 100

	bytesPerSample = 2
	amplitude      = 10000
)

// Buffer is the precomputed tone ring. It is immutable after NewBuffer and
// safe for concurrent readers.
type Buffer struct {
	samples []int16

	bipStart int // byte offset of the first bip byte
	bopStart int
	burst    int // burst length in bytes
}

// NewBuffer builds the ring: silence everywhere except the two bursts of a
// pure sine at bipFreq and bopFreq, written identically into both channels.
func NewBuffer(bipFreq, bopFreq float64) *Buffer {
	total := SampleRate * Channels * RingSeconds
	b := &Buffer{
		samples:  make([]int16, total),
		bipStart: total * bytesPerSample / RingSeconds,
		bopStart: total * bytesPerSample / RingSeconds * 3,
		burst:    bytesPerSample * Channels * SampleRate * BurstMillis / 1000,
	}

	burstFrames := SampleRate * BurstMillis / 1000
	writeBurst(b.samples, SampleRate, burstFrames, bipFreq)
	writeBurst(b.samples, SampleRate*3, burstFrames, bopFreq)

	return b
}

func writeBurst(samples []int16, startFrame, frames int, freq float64) {
	for n := startFrame; n < startFrame+frames; n++ {
		v := int16(amplitude * math.Sin((2*math.Pi/SampleRate)*freq*float64(n)))
		samples[n*Channels] = v
		samples[n*Channels+1] = v
	}
}

// TotalBytes returns the ring length in bytes.
func (b *Buffer) TotalBytes() int {
	return len(b.samples) * bytesPerSample
}

// Samples exposes the raw interleaved ring, e.g. for writing a PCM
// reference file. Callers must not modify it.
func (b *Buffer) Samples() []int16 {
	return b.samples
}

// BipOffset returns the byte offset where the bip burst starts.
func (b *Buffer) BipOffset() int { return b.bipStart }

// BopOffset returns the byte offset where the bop burst starts.
func (b *Buffer) BopOffset() int { return b.bopStart }

// BurstBytes returns the length of one burst in bytes.
func (b *Buffer) BurstBytes() int { return b.burst }

// ReadAt fills dst with ring content starting at the byte offset off and
// returns the next offset. A read crossing the ring end is split into the
// tail up to the end and the head from the start, concatenated in order,
// and the returned offset is the wrapped remainder. off must be an even
// byte offset below TotalBytes.
func (b *Buffer) ReadAt(dst []int16, off int) int {
	total := b.TotalBytes()
	needed := len(dst) * bytesPerSample

	toEnd := total - off
	if toEnd == 0 {
		off = 0
		toEnd = total
	}

	if toEnd < needed {
		tail := toEnd / bytesPerSample
		copy(dst[:tail], b.samples[off/bytesPerSample:])
		copy(dst[tail:], b.samples)
		return needed - toEnd
	}

	copy(dst, b.samples[off/bytesPerSample:off/bytesPerSample+len(dst)])
	off += needed
	if off == total {
		off = 0
	}
	return off
}

// MarkerAt reports whether the byte offset off lies inside the bip or bop
// burst window. Both bounds are inclusive.
func (b *Buffer) MarkerAt(off int) (bip, bop bool) {
	bip = off >= b.bipStart && off <= b.bipStart+b.burst
	bop = off >= b.bopStart && off <= b.bopStart+b.burst
	return bip, bop
}
