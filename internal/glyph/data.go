package glyph

// Packed 264x50 8-bpp atlas covering the digits and the colon, stored as
// little-endian 64-bit words. Decoded once at package init.
var atlasWords = [...]uint64{
	0x0, 0x0, 0xffffffff0000, 0x0, 0xffffff0000000000, 0xffffffffffff, 0x0, 0x0,
	0xffffffffffffff00, 0xff, 0xffffffffffff0000, 0xffffffffffffffff, 0xffffffffffffffff,
	0xffffffff, 0xffff000000000000, 0xffffffffff, 0x0, 0xff00000000000000, 0xffffffffffff, 0x0,
	0xffff000000000000, 0xffffffffffffffff, 0xffffffffffffffff, 0x0, 0xffffffffff000000,
	0xffffff, 0x0, 0xffffff0000000000, 0xffffffff, 0x0, 0x0, 0xff00ffffff000000, 0xffffffff,
	0x0, 0x0, 0xffffffffff00, 0x0, 0xffffffffff000000, 0xffffffffffffffff, 0x0,
	0xff00000000000000, 0xffffffffffffffff, 0xffffff, 0xffffffffffff0000, 0xffffffffffffffff,
	0xffffffffffffffff, 0xffffffff, 0xffffffffff000000, 0xffffffffffffffff, 0x0,
	0xffffff0000000000, 0xffffffffffffffff, 0xff, 0xffff000000000000, 0xffffffffffffffff,
	0xffffffffffffffff, 0x0, 0xffffffffffffff00, 0xffffffffffff, 0x0, 0xffffffffff000000,
	0xffffffffffffff, 0x0, 0x0, 0xff00ffffffff0000, 0xffffffff, 0x0, 0x0, 0xffffffffffff, 0x0,
	0xffffffffffffff00, 0xffffffffffffffff, 0xffff, 0xffffff0000000000, 0xffffffffffffffff,
	0xffffffff, 0xffffffffffff0000, 0xffffffffffffffff, 0xffffffffffffffff, 0xffffffff,
	0xffffffffffff0000, 0xffffffffffffffff, 0xff, 0xffffffffff000000, 0xffffffffffffffff,
	0xffff, 0xffffff0000000000, 0xffffffffffffffff, 0xffffffffffffffff, 0xff00000000000000,
	0xffffffffffffffff, 0xffffffffffffff, 0x0, 0xffffffffffff0000, 0xffffffffffffffff, 0x0,
	0x0, 0xff00ffffffffff00, 0xffffffff, 0x0, 0xff00000000000000, 0xffffffffffff, 0x0,
	0xffffffffffffffff, 0xffffffffffffffff, 0xffffff, 0xffffffff00000000, 0xffffffffffffffff,
	0xffffffffff, 0xffffffffffff0000, 0xffffffffffffffff, 0xffffffffffffffff, 0xffffffff,
	0xffffffffffffff00, 0xffffffffffffffff, 0xffff, 0xffffffffffff0000, 0xffffffffffffffff,
	0xffffffff, 0xffffff0000000000, 0xffffffffffffffff, 0xffffffffffffffff, 0xffff000000000000,
	0xffffffffffffffff, 0xffffffffffffffff, 0x0, 0xffffffffffffffff, 0xffffffffffffffff,
	0xffff, 0x0, 0xff00ffffffffffff, 0xffffffff, 0x0, 0xff00000000000000, 0xffffffffffff,
	0xff00000000000000, 0xffffffffffffffff, 0xffffffffffffffff, 0xffffffff, 0xffffffffff000000,
	0xffffffffffffffff, 0xffffffffffff, 0xffffffffffff0000, 0xffffffffffffffff,
	0xffffffffffffffff, 0xffffffff, 0xffffffffffffffff, 0xffffffffffffffff, 0xffffff,
	0xffffffffffffff00, 0xffffffffffffffff, 0xffffffff, 0xffffff0000000000, 0xffffffffffffffff,
	0xffffffffffffffff, 0xffff000000000000, 0xffffffffffffffff, 0xffffffffffffffff, 0xff,
	0xffffffffffffffff, 0xffffffffffffffff, 0xffff, 0xff00000000000000, 0xff00ffffffffffff,
	0xffffffff, 0x0, 0xffff000000000000, 0xffffffffffff, 0xff00000000000000, 0xffffffffffff,
	0xffffff0000000000, 0xffffffffff, 0xffffffffffff0000, 0xff0000000000ffff, 0xffffffffffffff,
	0x0, 0x0, 0xff00000000000000, 0xffffff, 0xffffffffffffff, 0xffffffff00000000, 0xffffff,
	0xffffffffffffff00, 0xffff000000000000, 0xffffffffff, 0xffffff0000000000, 0xffff, 0x0,
	0xffffff0000000000, 0xffffffff, 0xffffffffff000000, 0xff0000000000ffff, 0xffffffffffffff,
	0xffffff0000000000, 0xffffff, 0xffff000000000000, 0xffffffffffff, 0x0, 0x0,
	0xffffff0000000000, 0xffffffffffff, 0xffff000000000000, 0xffffffffff, 0xff00000000000000,
	0xffffffffff, 0xffffffffffff0000, 0x0, 0xffffffffffff00, 0x0, 0x0, 0xffff000000000000,
	0xff0000000000ffff, 0xffffffffff, 0xffff000000000000, 0xffffffff, 0xffffffffffff,
	0xff00000000000000, 0xffffffffff, 0xffffff0000000000, 0xffff, 0x0, 0xffffff0000000000,
	0xffffff, 0xffffffff00000000, 0xffff00000000ffff, 0xffffffffff, 0xff00000000000000,
	0xffffffff, 0xffffff0000000000, 0xffffffffffff, 0x0, 0x0, 0xffffff0000000000,
	0xffffffffffff, 0xffff000000000000, 0xffffff, 0x0, 0xffffffffffff, 0xffffffffffff00, 0x0,
	0xffffffffff0000, 0x0, 0x0, 0xffffff0000000000, 0xff000000000000ff, 0xffffffff,
	0xff00000000000000, 0xffffffff, 0xffffffffff, 0x0, 0xffffffffffff, 0xffffffff00000000,
	0xffff, 0x0, 0xffffffff00000000, 0xffff, 0xffffff0000000000, 0xffff000000ffffff,
	0xffffffff, 0xff00000000000000, 0xffffffff, 0xffffffffff000000, 0xffffffffffff, 0x0, 0x0,
	0xffffffff00000000, 0xffffffffffff, 0xffffff0000000000, 0xffffff, 0x0, 0xffffffffffff,
	0xffffffffff00, 0x0, 0xffffffffffff0000, 0x0, 0x0, 0xffffffff00000000, 0xffff000000000000,
	0xffffffff, 0xff00000000000000, 0xff0000ffffffffff, 0xffffffffff, 0x0, 0xffffffffff00,
	0xffffffff00000000, 0xff, 0x0, 0xffffffff00000000, 0xff, 0xffff000000000000,
	0xffff000000ffffff, 0xffffff, 0x0, 0xffffffffff, 0xffffffffffff0000, 0xffffffffffff, 0x0,
	0x0, 0xffffffffff000000, 0xffffffffffff, 0xffffff0000000000, 0xffff, 0x0, 0xffffffffff00,
	0xffffffffffff, 0x0, 0xffffffffff000000, 0x0, 0x0, 0xffffffffff000000, 0xffff000000000000,
	0xffffff, 0x0, 0xff0000ffffffffff, 0xffffffff, 0x0, 0xffffffffff00, 0xffffffff00000000,
	0xff, 0x0, 0xffffffff00000000, 0xff, 0xffff000000000000, 0xffffff0000ffffff, 0xffffff, 0x0,
	0xffffffff00, 0xffffffffffffffff, 0xffffffffff00, 0x0, 0x0, 0xffffffffffff0000,
	0xffffffffff00, 0xffffff0000000000, 0xffff, 0x0, 0xffffffffff00, 0xffffffffff, 0x0, 0x0,
	0x0, 0x0, 0xffffffffff0000, 0xffff000000000000, 0xffffff, 0x0, 0xffffffffff, 0xffffff00,
	0x0, 0xffffffffff00, 0xffffffff00000000, 0xff, 0x0, 0xffffffff00000000, 0xff,
	0xffff000000000000, 0xffffff0000ffffff, 0xffff, 0x0, 0xff0000ffffffff00, 0xffffffffffffff,
	0xffffffffff00, 0x0, 0x0, 0xffffffffffff0000, 0xffffffffff00, 0xff00000000000000, 0xffff,
	0x0, 0xffffffffff00, 0xffffffffff, 0x0, 0x0, 0x0, 0x0, 0xffffffff0000, 0xffff000000000000,
	0xffffff, 0x0, 0xffffffffff, 0x0, 0x0, 0xffffffffff00, 0xffffffff00000000, 0xff, 0x0,
	0xffffffff00000000, 0xff, 0xffff000000000000, 0xffffff0000ffffff, 0xffff, 0x0,
	0xff0000ffffffff00, 0xffffffffff, 0xffffffffff00, 0x0, 0x0, 0xffffffffffff00,
	0xffffffffff00, 0x0, 0x0, 0x0, 0xffffffffff00, 0xffffffffff, 0x0, 0x0, 0x0, 0x0,
	0xffffffffff00, 0xffffff0000000000, 0xffff, 0x0, 0xffffffffff00, 0x0, 0x0, 0xffffffffff,
	0xffffffffff000000, 0xff, 0x0, 0xffffffff00000000, 0xffff, 0xffffff0000000000,
	0xffffff0000ffffff, 0xffff, 0x0, 0xff00ffffffffff00, 0xffffff, 0xffffffffff00, 0x0, 0x0,
	0xffffffffffff, 0xffffffffff00, 0x0, 0x0, 0x0, 0xffffffffff00, 0xffffffff, 0x0, 0x0, 0x0,
	0x0, 0xffffffffff, 0xffffff0000000000, 0xffff, 0x0, 0xffffffffff00, 0x0,
	0xff00000000000000, 0xffffffffff, 0xffffffffff000000, 0xffffffff000000ff, 0xffff,
	0xffffff0000000000, 0xffffff, 0xffffff0000000000, 0xffffff000000ffff, 0xffff, 0x0,
	0xff00ffffffffff00, 0xff, 0xffffffffff00, 0x0, 0x0, 0xffffffffff, 0xffffffffff00, 0x0, 0x0,
	0x0, 0xff0000ffffffffff, 0xffffffff, 0xffffffffffff0000, 0xff, 0x0, 0x0, 0xffffffffff,
	0xffffff0000000000, 0xffff, 0x0, 0xffffffffff00, 0x0, 0xffffff0000000000, 0xffffffff,
	0xffffffffff000000, 0xffffffffffff0000, 0xffffffff, 0xffff000000000000, 0xffffffff,
	0xffffffffff000000, 0xffffff00000000ff, 0xffff, 0x0, 0xffffffffff00, 0x0, 0xffffffffff00,
	0x0, 0xff00000000000000, 0xffffffffff, 0xffffffffff00, 0x0, 0x0, 0x0, 0xff0000ffffffffff,
	0xffffffff, 0xffffffffffffffff, 0xffffff, 0x0, 0xff00000000000000, 0xffffffff,
	0xffffff0000000000, 0xffff, 0x0, 0xffffffffff00, 0x0, 0xffffffffffffff00, 0xffffff,
	0xffffffffff000000, 0xffffffffffffff00, 0xffffffffffff, 0xff00000000000000,
	0xffffffffffffffff, 0xffffffffffffffff, 0xffffff0000000000, 0xffff, 0x0, 0xffffffffff00,
	0x0, 0xffffffffff00, 0x0, 0xffff000000000000, 0xffffffff, 0xffffffffff00, 0x0, 0x0,
	0xff00000000000000, 0xff0000ffffffffff, 0xffff0000ffffffff, 0xffffffffffffffff,
	0xffffffffff, 0x0, 0xff00000000000000, 0xffffffff, 0xffffff0000000000, 0xffff, 0x0,
	0xffffffffff00, 0x0, 0xffffffffffffff00, 0xff, 0xffffffffff000000, 0xffffffffffffffff,
	0xffffffffffffff, 0x0, 0xffffffffffffffff, 0xffffffffffffff, 0xffffff0000000000, 0xffffff,
	0x0, 0xffffffffffff, 0x0, 0xffffffffff00, 0x0, 0xffffff0000000000, 0xffffff,
	0xffffffffff00, 0x0, 0x0, 0xffff000000000000, 0xff000000ffffffff, 0xffffff00ffffffff,
	0xffffffffffffffff, 0xffffffffffff, 0x0, 0xffff000000000000, 0xffffff, 0xffffff0000000000,
	0xffff, 0x0, 0xffffffffff00, 0x0, 0xffffffffffffff00, 0xffffff, 0xffffffffffff0000,
	0xffffffffffffffff, 0xffffffffffffffff, 0x0, 0xffffffffffffff00, 0xffffffffffff,
	0xffff000000000000, 0xffffff, 0xff00000000000000, 0xffffffffffff, 0x0, 0xffffffffff00, 0x0,
	0xffffff0000000000, 0xffffff, 0xffffffffff00, 0x0, 0x0, 0xffffff0000000000,
	0xff00000000ffffff, 0xffffff00ffffffff, 0xffffffffffffffff, 0xffffffffffffff, 0x0,
	0xffff000000000000, 0xffffff, 0xffffff0000000000, 0xffff, 0x0, 0xffffffffff00, 0x0,
	0xffffffffffffff00, 0xffffffff, 0xffffffffffff0000, 0xffff, 0xffffffffffffff00,
	0xff00000000000000, 0xffffffffffffffff, 0xffffffffffffffff, 0xffff000000000000, 0xffffffff,
	0xffff000000000000, 0xffffffffffff, 0x0, 0xffffffffff00, 0x0, 0xffffffff00000000, 0xffff,
	0xffffffffff00, 0x0, 0x0, 0xffffffff00000000, 0xff0000000000ffff, 0xffffffffffffffff, 0xff,
	0xffffffffffffff, 0x0, 0xffffff0000000000, 0xffff, 0xffffff0000000000, 0xffff, 0x0,
	0xffffffffff00, 0x0, 0xffffffff00ffff00, 0xffffffffff, 0xffffffffffff0000, 0x0,
	0xffffffffff000000, 0xffff0000000000ff, 0xffffffffffffffff, 0xffffffffffffffff,
	0xff000000000000ff, 0xffffffffffff, 0xffffff0000000000, 0xffffffffffff, 0x0,
	0xffffffffff00, 0x0, 0xffffffffff000000, 0xff, 0xffffffffff00, 0x0, 0x0,
	0xffffffffff000000, 0xff0000000000ffff, 0xffffffffffffff, 0x0, 0xffffffffffffff00, 0x0,
	0xffffff0000000000, 0xffff, 0xffffff0000000000, 0xffff, 0x0, 0xffffffffff00, 0x0, 0x0,
	0xffffffffffff, 0xffffff00000000, 0x0, 0xffffffff00000000, 0xffffff00000000ff, 0xffffffff,
	0xffffffffff000000, 0xff0000000000ffff, 0xffffffffffffffff, 0xffffffffffffffff,
	0xffffffffffff, 0x0, 0xffffffffff00, 0x0, 0xffffffffff000000, 0x0, 0xffffffffff00, 0x0,
	0x0, 0xffffffffffff0000, 0xff000000000000ff, 0xffffffffffff, 0x0, 0xffffffffffff0000, 0x0,
	0xffffffff00000000, 0xff, 0xffffff0000000000, 0xffff, 0x0, 0xffffffffff00, 0x0, 0x0,
	0xffffffffffff00, 0x0, 0x0, 0xffffffff00000000, 0xffffffff0000ffff, 0xffff,
	0xffffff0000000000, 0xffffff, 0xffffffffffffffff, 0xffffffffffffffff, 0xffffffffff00, 0x0,
	0xffffffffff00, 0x0, 0xffffffffffff0000, 0x0, 0xffffffffff00, 0x0, 0x0, 0xffffffffffffff00,
	0xff00000000000000, 0xffffffffff, 0x0, 0xffffffffff000000, 0xff, 0xffffffff00000000, 0xff,
	0xffffff0000000000, 0xffff, 0x0, 0xffffffffff00, 0x0, 0x0, 0xffffffffff0000, 0x0, 0x0,
	0xffffff0000000000, 0xffffffff0000ffff, 0xff, 0xffff000000000000, 0xffffff,
	0xffffffffffffff00, 0xffffffffffffff, 0xffffffffff00, 0x0, 0xffffffffff00, 0x0,
	0xffffffffffff00, 0x0, 0xffffffffff00, 0x0, 0xff00000000000000, 0xffffffffffff,
	0xff00000000000000, 0xffffffff, 0x0, 0xffffffff00000000, 0xff, 0xffffffffff000000, 0x0,
	0xffffff0000000000, 0xffff, 0x0, 0xffffffffff00, 0x0, 0x0, 0xffffffffffff0000, 0x0, 0x0,
	0xffffff0000000000, 0xffffffff0000ffff, 0xff, 0xffff000000000000, 0xffffff,
	0xffffffffff000000, 0xffffffffff, 0xffffffffff00, 0x0, 0xffffffffff00, 0x0, 0xffffffffffff,
	0x0, 0xffffffffff00, 0x0, 0xffff000000000000, 0xffffffffff, 0xff00000000000000, 0xffffffff,
	0x0, 0xffffffff00000000, 0xff, 0xffffffffff000000, 0x0, 0xffffff0000000000, 0xffff, 0x0,
	0xffffffffff00, 0x0, 0x0, 0xffffffffff000000, 0x0, 0x0, 0xffffff0000000000,
	0xffffffffff00ffff, 0x0, 0xff00000000000000, 0xffffffff, 0xffffff0000000000, 0xffffff,
	0xffffffffff00, 0x0, 0xff00ffffffffff00, 0xffffffff, 0xffffffffffffffff,
	0xffffffffffffffff, 0xffffffffffffffff, 0xffffff, 0xffffff0000000000, 0xffffffff,
	0xff00000000000000, 0xffffffff, 0x0, 0xffffffff00000000, 0xff, 0xffffffffff000000, 0x0,
	0xffffff0000000000, 0xffff, 0x0, 0xffffffffff00, 0x0, 0x0, 0xffffffffff000000, 0x0, 0x0,
	0xffffff0000000000, 0xffffffffff00ffff, 0x0, 0xff00000000000000, 0xffffffff, 0x0, 0x0,
	0xffffffffff00, 0x0, 0xff00ffffffffff00, 0xffffffff, 0xffffffffffffffff,
	0xffffffffffffffff, 0xffffffffffffffff, 0xffffff, 0xffffffff00000000, 0xffffff,
	0xff00000000000000, 0xffffffff, 0x0, 0xffffffff00000000, 0xff, 0xffffffffff0000, 0x0,
	0xffffff0000000000, 0xffff, 0x0, 0xffffffffff00, 0x0, 0x0, 0xffffffffff000000, 0x0, 0x0,
	0xffffff0000000000, 0xffffffffff00ffff, 0x0, 0xff00000000000000, 0xffffffff, 0x0, 0x0,
	0xffffffffff, 0x0, 0xff00ffffffffff00, 0xffffffff, 0xffffffffffffffff, 0xffffffffffffffff,
	0xffffffffffffffff, 0xffffff, 0xffffffffffff0000, 0xffff, 0x0, 0xffffffff, 0x0,
	0xffffffff00000000, 0xff, 0xffffffffff0000, 0x0, 0xffff000000000000, 0xffffff, 0x0,
	0xffffffffff, 0xffffff00, 0x0, 0xffffffffff000000, 0x0, 0x0, 0xffffff0000000000,
	0xffffffffff00ffff, 0x0, 0xff00000000000000, 0xffffffff, 0x0, 0x0, 0xffffffffff, 0x0,
	0xff00ffffffffff00, 0xffffffff, 0xffffffffffffffff, 0xffffffffffffffff, 0xffffffffffffffff,
	0xffffff, 0xffffffffffffff00, 0xff, 0x0, 0xffffffff, 0x0, 0xffffffff00000000, 0xff,
	0xffffffffff0000, 0x0, 0xffff000000000000, 0xffffff, 0x0, 0xff0000ffffffffff, 0xffffffff,
	0x0, 0xffffffffff000000, 0xffffffffff00, 0x0, 0xffffff0000000000, 0xffffffffff00ffff, 0x0,
	0xff00000000000000, 0xffffffff, 0x0, 0x0, 0xffffffffff, 0x0, 0xff00ffffffffff00,
	0xffffffff, 0xffffffffffffffff, 0xffffffffffffffff, 0xffffffffffffffff, 0xffffff,
	0xffffffffffffff, 0x0, 0x0, 0xffffffffff, 0x0, 0xffffffffff000000, 0xff, 0xffffffffff0000,
	0x0, 0xffff000000000000, 0xffffff, 0x0, 0xff0000ffffffffff, 0xffffffffff, 0x0,
	0xffffffffffff0000, 0xffffffffff00, 0x0, 0xffffffff00000000, 0xffffffffff0000ff, 0x0,
	0xff00000000000000, 0xffff0000ffffffff, 0xffffff, 0xff00000000000000, 0xffffffffff, 0x0,
	0xffffffffff00, 0x0, 0x0, 0x0, 0xffffffffff00, 0xff00000000000000, 0xffffffffffff, 0x0,
	0x0, 0xffffffffff, 0x0, 0xffffffffff000000, 0x0, 0xffffffffff00, 0x0, 0xffff000000000000,
	0xffffffff, 0xff00000000000000, 0xff0000ffffffffff, 0xffffffffff, 0x0, 0xffffffffff0000,
	0xffffffffffff00, 0x0, 0xffffffff00000000, 0xffffffffff0000ff, 0xff, 0xffff000000000000,
	0xffff0000ffffffff, 0xffffff, 0xff00000000000000, 0xffffffff, 0x0, 0xffffffffff00, 0x0,
	0x0, 0x0, 0xffffffffff00, 0xff00000000000000, 0xffffffffff, 0x0, 0x0, 0xffffffffff00, 0x0,
	0xffffffffffff0000, 0x0, 0xffffffffff00, 0x0, 0xff00000000000000, 0xffffffff,
	0xff00000000000000, 0xffffffff, 0xffffffffffff, 0x0, 0xffffffffffff00, 0xffffffffff0000,
	0x0, 0xffffffffff000000, 0xffffffff000000ff, 0xff, 0xffff000000000000, 0xffff000000ffffff,
	0xffffffff, 0xff00000000000000, 0xffffffff, 0x0, 0xffffffffff00, 0x0, 0x0, 0x0,
	0xffffffffff00, 0xffff000000000000, 0xffffffff, 0x0, 0x0, 0xffffffffffff00, 0x0,
	0xffffffffffffff00, 0x0, 0xffffffffff00, 0x0, 0xff00000000000000, 0xffffffffff,
	0xffff000000000000, 0xffffffff, 0xffffffffffffff, 0x0, 0xffffffffffffff,
	0xffffffffffff0000, 0x0, 0xffffffffffff0000, 0xffffffff00000000, 0xffff,
	0xffffff0000000000, 0xff00000000ffffff, 0xffffffffff, 0xffffff0000000000, 0xffffff, 0x0,
	0xffffffffff00, 0x0, 0x0, 0x0, 0xffffffffff00, 0xffffff0000000000, 0xffffff, 0x0, 0x0,
	0xffffffffffff0000, 0xff, 0xffffffffffffff, 0x0, 0xffffffffff00, 0x0, 0x0,
	0xffffffffffffff, 0xffffffff00000000, 0xffffff, 0xffffffffffffff00, 0xff00000000000000,
	0xffffffffffff, 0xffffffffff000000, 0xffff, 0xffffffffffffffff, 0xffffff0000000000,
	0xffffffffff, 0xffffffffff000000, 0xff0000000000ffff, 0xffffffffffff, 0xffffffff00000000,
	0xffffff, 0x0, 0xffffffffff00, 0x0, 0x0, 0x0, 0xffffffffff00, 0xffffff0000000000,
	0xffffffffffffffff, 0xffffffffffffffff, 0xffffffffffff, 0xffffffffff000000,
	0xffffffffffffffff, 0xffffffffffff, 0x0, 0xffffffffff, 0x0, 0x0, 0xffffffffffffffff,
	0xffffffffffffffff, 0xffffff, 0xffffffffffffff00, 0xffffffffffffffff, 0xffffffffff,
	0xffffffffff000000, 0xffffffffffffffff, 0xffffffffffffff, 0xffffff0000000000,
	0xffffffffffffffff, 0xffffffffffffffff, 0xffff, 0xffffffffffffffff, 0xffffffffffffffff,
	0xffff, 0x0, 0xffffffffff00, 0x0, 0x0, 0x0, 0xffffffffff00, 0xffffff0000000000,
	0xffffffffffffffff, 0xffffffffffffffff, 0xffffffffffff, 0xffffffff00000000,
	0xffffffffffffffff, 0xffffffffff, 0x0, 0xffffffffff, 0x0, 0x0, 0xffffffffffffff00,
	0xffffffffffffffff, 0xffff, 0xffffffffffff0000, 0xffffffffffffffff, 0xffffffff,
	0xffffffff00000000, 0xffffffffffffffff, 0xffffffffffff, 0xffff000000000000,
	0xffffffffffffffff, 0xffffffffffffffff, 0xff, 0xffffffffffffff00, 0xffffffffffffffff, 0xff,
	0x0, 0xffffffffff00, 0x0, 0x0, 0x0, 0xffffffffff00, 0xffffffff00000000, 0xffffffffffffffff,
	0xffffffffffffffff, 0xffffffffffff, 0xffffff0000000000, 0xffffffffffffffff, 0xffffffff,
	0x0, 0xffffffffff, 0x0, 0x0, 0xffffffffffff0000, 0xffffffffffffffff, 0xff,
	0xffffffffff000000, 0xffffffffffffffff, 0xffffff, 0xffffff0000000000, 0xffffffffffffffff,
	0xffffffffff, 0xff00000000000000, 0xffffffffffffffff, 0xffffffffffffffff, 0x0,
	0xffffffffffffff00, 0xffffffffffffffff, 0x0, 0x0, 0xffffffffff00, 0x0, 0x0, 0x0,
	0xffffffffff00, 0xffffffff00000000, 0xffffffffffffffff, 0xffffffffffffffff, 0xffffffffffff,
	0xffff000000000000, 0xffffffffffffffff, 0xffffff, 0x0, 0xffffffffff, 0x0, 0x0,
	0xffffffffff000000, 0xffffffffffffffff, 0x0, 0xffffff0000000000, 0xffffffffffffffff,
	0xffff, 0xff00000000000000, 0xffffffffffffffff, 0xffffff, 0x0, 0xffffffffffffff00,
	0xffffffffffff, 0x0, 0xffffffffff000000, 0xffffffffffffff, 0x0, 0x0, 0xffffffffff00, 0x0,
	0x0, 0x0, 0xffffffffff00, 0xffffffff00000000, 0xffffffffffffffff, 0xffffffffffffffff,
	0xffffffffffff, 0x0, 0xffffffffffffff00, 0x0, 0x0, 0xffffffffff, 0x0, 0x0,
	0xffff000000000000, 0xffffffffff, 0x0, 0xff00000000000000, 0xffffffffffffff, 0x0, 0x0,
	0xffffffffffffff00, 0xff, 0x0, 0xffffffff00000000, 0xffffff, 0x0, 0xffffff0000000000,
	0xffffffff, 0x0, 0x0, 0xffffffffff00, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0,
	0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0,
	0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0,
	0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0,
	0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0,
	0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0,
	0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0,
	0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0,
	0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0,
	0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0,
	0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0,
	0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0,
	0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0,
	0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0,
	0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0,
	0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0,
	0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0,
	0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0,
	0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0,
	0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0,
	0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0,
}

// id, x, y, width, height, xoffset, yoffset, xadvance per glyph.
var glyphData = [...]int{
	48, 109, 0, 25, 39, 3, 12, 31,
	49, 239, 0, 15, 39, 6, 12, 31,
	50, 28, 0, 26, 39, 2, 12, 31,
	51, 135, 0, 25, 39, 3, 12, 31,
	52, 0, 0, 27, 39, 1, 12, 31,
	53, 161, 0, 25, 39, 3, 12, 31,
	54, 55, 0, 26, 39, 2, 12, 31,
	55, 82, 0, 26, 39, 2, 12, 31,
	56, 187, 0, 25, 39, 3, 12, 31,
	57, 213, 0, 25, 39, 3, 12, 31,
	58, 255, 0, 5, 29, 5, 22, 15,
}
