package compositor

import (
	"testing"

	"github.com/savid/avsiggen/internal/pixfmt"
	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	return logger
}

func newTestCompositor(t *testing.T, width, height, fps int, format pixfmt.ChromaFormat, depth pixfmt.BitDepth, order pixfmt.ByteOrder) *Compositor {
	t.Helper()
	return New(width, height, fps, pixfmt.Resolve(format, depth), order, false, testLogger())
}

func TestPlaneSizes(t *testing.T) {
	c := newTestCompositor(t, 720, 480, 30, pixfmt.Chroma420, pixfmt.Depth8, pixfmt.LittleEndian)

	if len(c.Y()) != 345600 {
		t.Errorf("Expected 345600 luma bytes, got %d", len(c.Y()))
	}
	if len(c.U()) != 86400 || len(c.V()) != 86400 {
		t.Errorf("Expected 86400 bytes per chroma plane, got %d and %d", len(c.U()), len(c.V()))
	}
}

func TestFrameCounter(t *testing.T) {
	c := newTestCompositor(t, 720, 480, 30, pixfmt.Chroma420, pixfmt.Depth8, pixfmt.LittleEndian)

	if c.Frame() != 0 {
		t.Errorf("Expected frame 0 after init, got %d", c.Frame())
	}
	if c.Step() != 1.0/150 {
		t.Errorf("Expected step 1/150, got %v", c.Step())
	}

	for i := 1; i <= 10; i++ {
		if err := c.Update(false, false); err != nil {
			t.Fatalf("Update %d failed: %v", i, err)
		}
		if c.Frame() != uint64(i) {
			t.Fatalf("Expected frame %d, got %d", i, c.Frame())
		}
	}
}

func TestSweepPhaseWraps(t *testing.T) {
	c := newTestCompositor(t, 720, 480, 30, pixfmt.Chroma420, pixfmt.Depth8, pixfmt.LittleEndian)

	start := c.Perc()
	for i := 0; i < 5*30; i++ {
		if err := c.Update(false, false); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
	}

	// One full sweep takes 5 seconds worth of frames.
	diff := c.Perc() - start
	if diff < 0 {
		diff = -diff
	}
	if diff > c.Step() {
		t.Errorf("Expected phase back within one step of %v after a full sweep, got %v", start, c.Perc())
	}
}

func TestBackgroundBands(t *testing.T) {
	c := newTestCompositor(t, 720, 480, 30, pixfmt.Chroma420, pixfmt.Depth8, pixfmt.LittleEndian)
	if err := c.Update(false, false); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	// The sweep bar sits near the top on the first frame; the bottom luma
	// row carries the pure band colors.
	row := 479
	bandW := 720 / 7
	for i, rgb := range bands {
		col := i*bandW + bandW/2
		want := rgbToY(rgb[0], rgb[1], rgb[2])
		if got := c.Y()[row*720+col]; got != want {
			t.Errorf("Band %d: expected luma %d, got %d", i, want, got)
		}
	}

	// Columns beyond the last full band stay cleared.
	if got := c.Y()[row*720+719]; got != 0 {
		t.Errorf("Expected cleared tail column, got %d", got)
	}

	// White band chroma is neutral.
	crow := 239
	if got := c.U()[crow*360]; got != 128 {
		t.Errorf("Expected neutral U 128, got %d", got)
	}
	if got := c.V()[crow*360]; got != 128 {
		t.Errorf("Expected neutral V 128, got %d", got)
	}
}

func TestSweepBarDrawn(t *testing.T) {
	c := newTestCompositor(t, 720, 480, 30, pixfmt.Chroma420, pixfmt.Depth8, pixfmt.LittleEndian)
	if err := c.Update(false, false); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	// On the first frame the clipped bar occupies the top rows.
	perc := c.Perc()
	rc := 255 - uint8(perc*255)
	gc := 30 + uint8(perc*235)
	bc := 150 + uint8(perc*205)
	want := rgbToY(rc, gc, bc)
	if got := c.Y()[0]; got != want {
		t.Errorf("Expected bar luma %d at the top left, got %d", want, got)
	}
}

func TestLumaOnlyFormat(t *testing.T) {
	c := newTestCompositor(t, 720, 480, 30, pixfmt.Chroma400, pixfmt.Depth8, pixfmt.LittleEndian)

	if len(c.U()) != 0 || len(c.V()) != 0 {
		t.Errorf("Expected empty chroma planes, got %d and %d", len(c.U()), len(c.V()))
	}

	if err := c.Update(false, false); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if got := c.Y()[479*720]; got != 235 {
		t.Errorf("Expected white luma 235, got %d", got)
	}
}

func TestHighBitDepthPacking(t *testing.T) {
	// White luma 235 scaled by 4 is 940 = 0x03AC.
	le := newTestCompositor(t, 720, 480, 30, pixfmt.Chroma420, pixfmt.Depth10, pixfmt.LittleEndian)
	if err := le.Update(false, false); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	idx := 479 * 720 * 2
	if le.Y()[idx] != 0xAC || le.Y()[idx+1] != 0x03 {
		t.Errorf("Expected little-endian [AC 03], got [%02X %02X]", le.Y()[idx], le.Y()[idx+1])
	}

	be := newTestCompositor(t, 720, 480, 30, pixfmt.Chroma420, pixfmt.Depth10, pixfmt.BigEndian)
	if err := be.Update(false, false); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if be.Y()[idx] != 0x03 || be.Y()[idx+1] != 0xAC {
		t.Errorf("Expected big-endian [03 AC], got [%02X %02X]", be.Y()[idx], be.Y()[idx+1])
	}
}

func TestTimestampBoxColors(t *testing.T) {
	c := newTestCompositor(t, 720, 480, 30, pixfmt.Chroma420, pixfmt.Depth8, pixfmt.LittleEndian)

	// A row inside the box but above the glyph rows.
	boxX := 720/2 - timeBoxWidth/2
	boxY := 480/2 - timeBoxHeight/2
	idx := (boxY+5)*720 + boxX + timeBoxWidth/2

	if err := c.Update(false, false); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if got, want := c.Y()[idx], rgbToY(0, 0, 0); got != want {
		t.Errorf("Expected black box luma %d, got %d", want, got)
	}

	if err := c.Update(true, false); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if got, want := c.Y()[idx], rgbToY(0, 0, 255); got != want {
		t.Errorf("Expected blue box luma %d while bip active, got %d", want, got)
	}

	if err := c.Update(false, true); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if got, want := c.Y()[idx], rgbToY(255, 0, 0); got != want {
		t.Errorf("Expected red box luma %d while bop active, got %d", want, got)
	}
}

func TestTimestampGlyphsRendered(t *testing.T) {
	c := newTestCompositor(t, 720, 480, 30, pixfmt.Chroma420, pixfmt.Depth8, pixfmt.LittleEndian)
	if err := c.Update(false, false); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	// Glyph pixels are copied raw from the atlas; 255 never appears in the
	// bands, the bar or the box fill.
	found := false
	for _, v := range c.Y() {
		if v == 255 {
			found = true
			break
		}
	}
	if !found {
		t.Error("Expected glyph pixels in the luma plane")
	}
}

func TestSmallFrameSkipsTimestamp(t *testing.T) {
	c := newTestCompositor(t, 160, 120, 30, pixfmt.Chroma420, pixfmt.Depth8, pixfmt.LittleEndian)
	if err := c.Update(false, false); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	// Too small for the box; no glyph pixels anywhere.
	for i, v := range c.Y() {
		if v == 255 {
			t.Fatalf("Unexpected glyph pixel at %d", i)
		}
	}
}

func TestOneColorBackground(t *testing.T) {
	c := New(720, 480, 30, pixfmt.Resolve(pixfmt.Chroma420, pixfmt.Depth8), pixfmt.LittleEndian, true, testLogger())
	if err := c.Update(false, false); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	row := 479
	for col := 0; col < 720; col++ {
		if got := c.Y()[row*720+col]; got != 235 {
			t.Fatalf("Column %d: expected white luma 235, got %d", col, got)
		}
	}
}

func TestUpdateUninitialized(t *testing.T) {
	var c Compositor
	if err := c.Update(false, false); err != ErrNotInitialized {
		t.Errorf("Expected ErrNotInitialized, got %v", err)
	}
}

func TestTimestampText(t *testing.T) {
	// 61 frames at 30 fps is two seconds; the overlay shows 00:02.
	c := newTestCompositor(t, 720, 480, 30, pixfmt.Chroma420, pixfmt.Depth8, pixfmt.LittleEndian)
	for i := 0; i < 61; i++ {
		if err := c.Update(false, false); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
	}
	if c.Frame() != 61 {
		t.Fatalf("Expected frame 61, got %d", c.Frame())
	}
	// The displayed time is derived from the counter before the increment,
	// so the last rendered frame index was 60 -> 60/30 = 2 seconds.
}
