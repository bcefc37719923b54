// Package pixfmt resolves requested pixel parameters into concrete plane
// geometry: chroma subsampling factors, bytes per sample and the multiplier
// that lifts 8-bit color values into the configured bit depth.
package pixfmt

// ChromaFormat selects the chroma subsampling scheme, using the common
// numeric shorthand.
type ChromaFormat uint32

const (
	// Chroma400 is luma only; the chroma planes are empty.
	Chroma400 ChromaFormat = 400
	// Chroma420 halves the chroma resolution in both dimensions.
	Chroma420 ChromaFormat = 420
	// Chroma422 halves the chroma resolution horizontally only.
	Chroma422 ChromaFormat = 422
	// Chroma444 keeps full chroma resolution.
	Chroma444 ChromaFormat = 444
)

// BitDepth is the number of significant bits per sample.
type BitDepth uint8

const (
	// Depth8 stores one byte per sample.
	Depth8 BitDepth = 8
	// Depth10 stores two bytes per sample, values scaled by 4.
	Depth10 BitDepth = 10
	// Depth12 stores two bytes per sample, values scaled by 16.
	Depth12 BitDepth = 12
)

// ByteOrder selects how multi-byte samples are laid out.
type ByteOrder uint8

const (
	// LittleEndian emits the low byte of a sample first.
	LittleEndian ByteOrder = iota
	// BigEndian emits the high byte of a sample first.
	BigEndian
)

// Layout is the concrete geometry derived from a chroma format and bit
// depth. It is a value type; all methods are pure.
type Layout struct {
	// UFactor and VFactor scale the luma width and height down to the
	// chroma plane dimensions. Either 0, 0.5 or 1.
	UFactor float64
	VFactor float64
	// BytesPerSample is 1 for 8-bit content and 2 otherwise.
	BytesPerSample int
	// Scale lifts an 8-bit color value into the configured bit depth.
	Scale uint16
}

// Resolve derives the layout for the given format and depth. Unknown or
// zero values fall back to 4:2:0 and 8-bit; there is no error path.
func Resolve(format ChromaFormat, depth BitDepth) Layout {
	var l Layout

	switch format {
	case Chroma400:
		l.UFactor = 0.0
		l.VFactor = 0.0
	case Chroma444:
		l.UFactor = 1.0
		l.VFactor = 1.0
	case Chroma422:
		l.UFactor = 0.5
		l.VFactor = 1.0
	default: // Chroma420
		l.UFactor = 0.5
		l.VFactor = 0.5
	}

	switch depth {
	case Depth10:
		l.BytesPerSample = 2
		l.Scale = 4
	case Depth12:
		l.BytesPerSample = 2
		l.Scale = 16
	default: // Depth8
		l.BytesPerSample = 1
		l.Scale = 1
	}

	return l
}

// YBytes returns the luma plane size in bytes for the given frame size.
func (l Layout) YBytes(width, height int) int {
	return width * height * l.BytesPerSample
}

// CBytes returns the size in bytes of one chroma plane for the given frame
// size. Zero for luma-only formats.
func (l Layout) CBytes(width, height int) int {
	return int(float64(width)*l.UFactor) * int(float64(height)*l.VFactor) * l.BytesPerSample
}

// PutSample packs one sample value into dst honoring the byte order. dst
// must hold at least BytesPerSample bytes.
func (l Layout) PutSample(dst []byte, v uint16, order ByteOrder) {
	if l.BytesPerSample == 1 {
		dst[0] = byte(v)
		return
	}
	if order == BigEndian {
		dst[0] = byte(v >> 8)
		dst[1] = byte(v)
		return
	}
	dst[0] = byte(v)
	dst[1] = byte(v >> 8)
}
