package compositor

// Integer BT.601 approximation of the RGB to YCbCr conversion, matching
// the classic fixed-point formulation.

func clip(v int) uint8 {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return uint8(v)
}

func rgbToY(r, g, b uint8) uint8 {
	return clip(((66*int(r)+129*int(g)+25*int(b)+128)>>8)+16)
}

func rgbToU(r, g, b uint8) uint8 {
	return clip(((-38*int(r)-74*int(g)+112*int(b)+128)>>8)+128)
}

func rgbToV(r, g, b uint8) uint8 {
	return clip(((112*int(r)-94*int(g)-18*int(b)+128)>>8)+128)
}
