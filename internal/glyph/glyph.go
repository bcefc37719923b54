// Package glyph holds the bitmap font asset used for the running-time
// overlay: the digits 0-9 and the colon, packed into a single 8-bpp atlas.
// The atlas is a read-only asset; this package only exposes lookups into it.
package glyph

import "encoding/binary"

// Atlas dimensions in pixels.
const (
	AtlasWidth  = 264
	AtlasHeight = 50
	// LineHeight is the nominal line height of the source font.
	LineHeight = 63
)

// Glyph describes one character: its rectangle inside the atlas, the render
// offset to apply at the destination and the horizontal advance to the next
// character.
type Glyph struct {
	ID       byte
	X        int
	Y        int
	Width    int
	Height   int
	XOffset  int
	YOffset  int
	XAdvance int
}

var (
	atlas  []byte
	glyphs map[byte]Glyph
)

func init() {
	atlas = make([]byte, len(atlasWords)*8)
	for i, w := range atlasWords {
		binary.LittleEndian.PutUint64(atlas[i*8:], w)
	}

	glyphs = make(map[byte]Glyph, len(glyphData)/8)
	for i := 0; i+8 <= len(glyphData); i += 8 {
		g := Glyph{
			ID:       byte(glyphData[i]),
			X:        glyphData[i+1],
			Y:        glyphData[i+2],
			Width:    glyphData[i+3],
			Height:   glyphData[i+4],
			XOffset:  glyphData[i+5],
			YOffset:  glyphData[i+6],
			XAdvance: glyphData[i+7],
		}
		glyphs[g.ID] = g
	}
}

// Lookup returns the glyph for the given character. The second return value
// is false when the character is not part of the atlas.
func Lookup(ch byte) (Glyph, bool) {
	g, ok := glyphs[ch]
	return g, ok
}

// Atlas returns the decoded 8-bpp pixel data, AtlasWidth bytes per row.
func Atlas() []byte {
	return atlas
}
