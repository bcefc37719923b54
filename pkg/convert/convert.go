// Package convert provides layout conversion helpers for already
// composited planes: widening between byte and 16-bit sample storage and
// repacking between I420 (three planes) and NV12 (interleaved chroma) for
// high bit depth content.
package convert

// WordsToBytes splits 16-bit samples into byte pairs, high byte first.
func WordsToBytes(src []uint16) []byte {
	dst := make([]byte, len(src)*2)
	for i, v := range src {
		dst[i*2] = byte(v >> 8)
		dst[i*2+1] = byte(v)
	}
	return dst
}

// BytesToWords joins byte pairs into 16-bit samples, high byte first. The
// source length must be even.
func BytesToWords(src []byte) []uint16 {
	dst := make([]uint16, len(src)/2)
	for i := range dst {
		dst[i] = uint16(src[i*2])<<8 | uint16(src[i*2+1])
	}
	return dst
}

// I420ToNV12 interleaves the chroma planes of a high bit depth 4:2:0 frame
// into the semi-planar NV12 layout. The luma plane is copied unchanged.
func I420ToNV12(srcY, srcU, srcV []uint16, width, height int) (dstY, dstUV []uint16) {
	chromaSize := (width / 2) * (height / 2)

	dstY = make([]uint16, width*height)
	copy(dstY, srcY)

	dstUV = make([]uint16, 2*chromaSize)
	for i := 0; i < chromaSize; i++ {
		dstUV[2*i] = srcU[i]
		dstUV[2*i+1] = srcV[i]
	}
	return dstY, dstUV
}

// NV12ToI420 de-interleaves the semi-planar chroma of a high bit depth
// 4:2:0 frame back into separate U and V planes.
func NV12ToI420(srcY, srcUV []uint16, width, height int) (dstY, dstU, dstV []uint16) {
	chromaSize := (width / 2) * (height / 2)

	dstY = make([]uint16, width*height)
	copy(dstY, srcY)

	dstU = make([]uint16, chromaSize)
	dstV = make([]uint16, chromaSize)
	for i := 0; i < chromaSize; i++ {
		dstU[i] = srcUV[2*i]
		dstV[i] = srcUV[2*i+1]
	}
	return dstY, dstU, dstV
}
