// Package compositor owns the Y/U/V plane buffers and renders each frame
// of the test signal: the colored background bands, the animated sweep bar
// and the centered timestamp box with its glyph-rendered running time.
package compositor

import (
	"errors"
	"fmt"

	"github.com/savid/avsiggen/internal/glyph"
	"github.com/savid/avsiggen/internal/pixfmt"
	"github.com/sirupsen/logrus"
)

var (
	// ErrNotInitialized is returned by Update when the compositor has no
	// geometry to draw into.
	ErrNotInitialized = errors.New("compositor is not initialized")
	// ErrBarGeometry is returned when the sweep bar window arithmetic
	// produces out-of-bounds rows. This indicates a broken internal
	// invariant and never occurs for valid geometry.
	ErrBarGeometry = errors.New("sweep bar window out of bounds")
)

// The timestamp box dimensions, measured from the rendered glyph string.
const (
	timeBoxWidth  = 170
	timeBoxHeight = 100
	timeBoxInset  = 20
)

// The seven background bands, left to right.
var bands = [7][3]uint8{
	{255, 255, 255}, // white
	{255, 255, 0},   // yellow
	{0, 255, 255},   // cyan
	{0, 255, 0},     // green
	{255, 0, 255},   // magenta
	{255, 0, 0},     // red
	{0, 0, 255},     // blue
}

// Compositor renders frames into one contiguous allocation holding the
// three planes as offset views. It is driven by a single goroutine; Update
// must not be called concurrently with itself.
type Compositor struct {
	width    int
	height   int
	fps      int
	layout   pixfmt.Layout
	order    pixfmt.ByteOrder
	oneColor bool
	logger   *logrus.Logger

	frame uint64
	step  float64
	perc  float64

	buf     []byte
	y, u, v []byte
}

// New allocates the plane buffers for the given geometry. The backing
// buffer is one allocation; the planes are length-checked views into it.
func New(width, height, fps int, layout pixfmt.Layout, order pixfmt.ByteOrder, oneColor bool, logger *logrus.Logger) *Compositor {
	ybytes := layout.YBytes(width, height)
	cbytes := layout.CBytes(width, height)

	buf := make([]byte, ybytes+2*cbytes)
	return &Compositor{
		width:    width,
		height:   height,
		fps:      fps,
		layout:   layout,
		order:    order,
		oneColor: oneColor,
		logger:   logger,
		// one full top-to-bottom sweep takes 5 seconds
		step: 1.0 / float64(5*fps),
		buf:  buf,
		y:    buf[:ybytes],
		u:    buf[ybytes : ybytes+cbytes],
		v:    buf[ybytes+cbytes:],
	}
}

// Frame returns the number of completed Update calls.
func (c *Compositor) Frame() uint64 { return c.frame }

// Perc returns the current sweep bar phase in [0,1).
func (c *Compositor) Perc() float64 { return c.perc }

// Step returns the per-frame sweep phase increment.
func (c *Compositor) Step() float64 { return c.step }

// Y returns the luma plane view.
func (c *Compositor) Y() []byte { return c.y }

// U returns the first chroma plane view. Empty for luma-only formats.
func (c *Compositor) U() []byte { return c.u }

// V returns the second chroma plane view. Empty for luma-only formats.
func (c *Compositor) V() []byte { return c.v }

// Update renders the next frame in place and increments the frame counter.
// The bip/bop flags select the timestamp box color.
func (c *Compositor) Update(bip, bop bool) error {
	if c == nil || c.width == 0 || c.height == 0 {
		return ErrNotInitialized
	}

	c.perc += c.step
	if c.perc >= 1.0 {
		c.perc = 0.0
	}

	h := c.height - 1
	barH := c.height / 5
	startY := -barH + int(c.perc*float64(h+barH))

	// Clip the bar to the visible window so it slides smoothly across the
	// top and bottom edges.
	var nlines int
	switch {
	case startY < 0:
		nlines = barH + startY
		startY = 0
	case startY+barH > h:
		nlines = h - startY
	default:
		nlines = barH
	}

	if nlines+startY > c.height || nlines < 0 || startY < 0 || startY >= c.height {
		c.logger.WithFields(logrus.Fields{
			"startY": startY,
			"nlines": nlines,
			"height": c.height,
		}).Error("Sweep bar window outside the frame")
		return ErrBarGeometry
	}

	for i := range c.buf {
		c.buf[i] = 0
	}

	if c.oneColor {
		c.fill(0, 0, c.width, c.height, 255, 255, 255)
	} else {
		bandW := c.width / 7
		for i, rgb := range bands {
			c.fill(i*bandW, 0, bandW, c.height, rgb[0], rgb[1], rgb[2])
		}
	}

	// The bar color ramps with the sweep phase.
	rc := 255 - uint8(c.perc*255)
	gc := 30 + uint8(c.perc*235)
	bc := 150 + uint8(c.perc*205)
	c.fill(0, startY, c.width, nlines, rc, gc, bc)

	if c.width > timeBoxWidth && c.height > timeBoxHeight {
		var br, bg, bb uint8
		if bip {
			bb = 255
		}
		if bop {
			br = 255
			bb = 0
		}
		boxX := c.width/2 - timeBoxWidth/2
		boxY := c.height/2 - timeBoxHeight/2
		c.fill(boxX, boxY, timeBoxWidth, timeBoxHeight, br, bg, bb)

		// The displayed time is frame-count based, not wall-clock based.
		seconds := c.frame / uint64(c.fps)
		minutes := (seconds / 60) % 60
		seconds %= 60
		c.drawString(fmt.Sprintf("%02d:%02d", minutes, seconds), boxX+timeBoxInset, boxY+timeBoxInset)
	}

	c.frame++
	return nil
}

// fill paints a rectangle of the given RGB color into all planes, scaling
// the rectangle into chroma coordinates by the subsampling factors.
func (c *Compositor) fill(x, y, w, h int, r, g, b uint8) {
	yc := uint16(rgbToY(r, g, b)) * c.layout.Scale
	uc := uint16(rgbToU(r, g, b)) * c.layout.Scale
	vc := uint16(rgbToV(r, g, b)) * c.layout.Scale

	bps := c.layout.BytesPerSample
	for row := y; row < y+h; row++ {
		base := (row*c.width + x) * bps
		for col := 0; col < w; col++ {
			c.layout.PutSample(c.y[base+col*bps:], yc, c.order)
		}
	}

	cx := int(float64(x) * c.layout.UFactor)
	cw := int(float64(w) * c.layout.UFactor)
	cy := int(float64(y) * c.layout.VFactor)
	ch := int(float64(h) * c.layout.VFactor)
	cstride := int(float64(c.width) * c.layout.UFactor)
	for row := cy; row < cy+ch; row++ {
		base := (row*cstride + cx) * bps
		for col := 0; col < cw; col++ {
			c.layout.PutSample(c.u[base+col*bps:], uc, c.order)
			c.layout.PutSample(c.v[base+col*bps:], vc, c.order)
		}
	}
}

// drawString renders s into the luma plane at the pixel position (x, y),
// advancing per glyph. Characters missing from the atlas are skipped with
// a diagnostic.
func (c *Compositor) drawString(s string, x, y int) {
	for i := 0; i < len(s); i++ {
		g, ok := glyph.Lookup(s[i])
		if !ok {
			c.logger.WithField("char", string(s[i])).Warn("No glyph for character")
			continue
		}
		c.drawGlyph(g, x, y)
		x += g.XAdvance
	}
}

func (c *Compositor) drawGlyph(g glyph.Glyph, x, y int) {
	atlas := glyph.Atlas()
	bps := c.layout.BytesPerSample
	for sy := 0; sy < g.Height; sy++ {
		destRow := y + g.YOffset + sy
		for sx := 0; sx < g.Width; sx++ {
			v := uint16(atlas[(g.Y+sy)*glyph.AtlasWidth+g.X+sx]) * c.layout.Scale
			c.layout.PutSample(c.y[(destRow*c.width+x+sx)*bps:], v, c.order)
		}
	}
}
