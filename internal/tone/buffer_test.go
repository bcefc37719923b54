package tone

import "testing"

func TestBufferGeometry(t *testing.T) {
	b := NewBuffer(500, 1500)

	total := SampleRate * Channels * RingSeconds * 2
	if b.TotalBytes() != total {
		t.Errorf("Expected %d total bytes, got %d", total, b.TotalBytes())
	}
	if b.BipOffset() != total/RingSeconds {
		t.Errorf("Expected bip offset %d, got %d", total/RingSeconds, b.BipOffset())
	}
	if b.BopOffset() != total/RingSeconds*3 {
		t.Errorf("Expected bop offset %d, got %d", total/RingSeconds*3, b.BopOffset())
	}

	burst := 2 * Channels * SampleRate * BurstMillis / 1000
	if b.BurstBytes() != burst {
		t.Errorf("Expected burst of %d bytes, got %d", burst, b.BurstBytes())
	}

	// The two windows never overlap.
	if b.BipOffset()+b.BurstBytes() >= b.BopOffset() {
		t.Error("Bip and bop windows overlap")
	}
}

func TestBufferContent(t *testing.T) {
	b := NewBuffer(500, 1500)
	samples := b.Samples()

	burstFrames := SampleRate * BurstMillis / 1000
	inBurst := func(frame int) bool {
		return (frame >= SampleRate && frame < SampleRate+burstFrames) ||
			(frame >= 3*SampleRate && frame < 3*SampleRate+burstFrames)
	}

	for frame := 0; frame < len(samples)/Channels; frame++ {
		left := samples[frame*Channels]
		right := samples[frame*Channels+1]
		if left != right {
			t.Fatalf("Frame %d: channels differ (%d vs %d)", frame, left, right)
		}
		if !inBurst(frame) && left != 0 {
			t.Fatalf("Frame %d: expected silence, got %d", frame, left)
		}
	}

	// The bursts must carry actual signal.
	var energy int64
	for frame := SampleRate; frame < SampleRate+burstFrames; frame++ {
		v := int64(samples[frame*Channels])
		energy += v * v
	}
	if energy == 0 {
		t.Error("Bip burst is silent")
	}
}

func TestReadAtContiguous(t *testing.T) {
	b := NewBuffer(500, 1500)

	chunk := make([]int16, ChunkFrames*Channels)
	next := b.ReadAt(chunk, 0)
	if next != len(chunk)*2 {
		t.Errorf("Expected next offset %d, got %d", len(chunk)*2, next)
	}

	for i, v := range chunk {
		if v != b.Samples()[i] {
			t.Fatalf("Sample %d: expected %d, got %d", i, b.Samples()[i], v)
		}
	}
}

func TestReadAtWrap(t *testing.T) {
	b := NewBuffer(500, 1500)
	total := b.TotalBytes()

	// Start close enough to the end that the read splits into a tail and
	// a head segment.
	chunk := make([]int16, ChunkFrames*Channels)
	off := total - 100
	next := b.ReadAt(chunk, off)

	want := len(chunk)*2 - 100
	if next != want {
		t.Errorf("Expected wrapped offset %d, got %d", want, next)
	}

	for i := 0; i < 50; i++ {
		if chunk[i] != b.Samples()[off/2+i] {
			t.Fatalf("Tail sample %d does not match the ring", i)
		}
	}
	for i := 50; i < len(chunk); i++ {
		if chunk[i] != b.Samples()[i-50] {
			t.Fatalf("Head sample %d does not match the ring start", i)
		}
	}
}

func TestReadAtModulo(t *testing.T) {
	b := NewBuffer(500, 1500)
	total := b.TotalBytes()

	chunk := make([]int16, ChunkFrames*Channels)
	chunkBytes := len(chunk) * 2

	// The offset always stays below the ring size and tracks delivered
	// bytes modulo the ring size, wrap splits included.
	off := 0
	for i := 1; i <= 3*total/chunkBytes; i++ {
		off = b.ReadAt(chunk, off)
		if off >= total {
			t.Fatalf("Read %d: offset %d outside the ring", i, off)
		}
		if off != i*chunkBytes%total {
			t.Fatalf("Read %d: expected offset %d, got %d", i, i*chunkBytes%total, off)
		}
	}
}

func TestMarkerAt(t *testing.T) {
	b := NewBuffer(500, 1500)

	tests := []struct {
		name string
		off  int
		bip  bool
		bop  bool
	}{
		{"ring start", 0, false, false},
		{"bip window start", b.BipOffset(), true, false},
		{"bip window middle", b.BipOffset() + b.BurstBytes()/2, true, false},
		{"bip window end inclusive", b.BipOffset() + b.BurstBytes(), true, false},
		{"past bip window", b.BipOffset() + b.BurstBytes() + 2, false, false},
		{"bop window start", b.BopOffset(), false, true},
		{"bop window end inclusive", b.BopOffset() + b.BurstBytes(), false, true},
		{"past bop window", b.BopOffset() + b.BurstBytes() + 2, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bip, bop := b.MarkerAt(tt.off)
			if bip != tt.bip || bop != tt.bop {
				t.Errorf("MarkerAt(%d): expected (%v, %v), got (%v, %v)", tt.off, tt.bip, tt.bop, bip, bop)
			}
		})
	}
}
