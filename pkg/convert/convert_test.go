package convert

import "testing"

func TestWordsToBytes(t *testing.T) {
	src := []uint16{0x0102, 0x03AC, 0xFFEE}
	want := []byte{0x01, 0x02, 0x03, 0xAC, 0xFF, 0xEE}

	got := WordsToBytes(src)
	if len(got) != len(want) {
		t.Fatalf("Expected %d bytes, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("byte[%d]: expected 0x%02X, got 0x%02X", i, want[i], got[i])
		}
	}
}

func TestBytesToWordsRoundTrip(t *testing.T) {
	src := []uint16{0, 1, 255, 256, 940, 0x0FFF, 0xFFFF}

	got := BytesToWords(WordsToBytes(src))
	if len(got) != len(src) {
		t.Fatalf("Expected %d words, got %d", len(src), len(got))
	}
	for i := range src {
		if got[i] != src[i] {
			t.Errorf("word[%d]: expected %d, got %d", i, src[i], got[i])
		}
	}
}

func TestI420ToNV12(t *testing.T) {
	const w, h = 4, 4
	y := make([]uint16, w*h)
	for i := range y {
		y[i] = uint16(i)
	}
	u := []uint16{10, 11, 12, 13}
	v := []uint16{20, 21, 22, 23}

	dstY, dstUV := I420ToNV12(y, u, v, w, h)

	for i := range y {
		if dstY[i] != y[i] {
			t.Fatalf("Y[%d]: expected %d, got %d", i, y[i], dstY[i])
		}
	}

	wantUV := []uint16{10, 20, 11, 21, 12, 22, 13, 23}
	if len(dstUV) != len(wantUV) {
		t.Fatalf("Expected %d UV samples, got %d", len(wantUV), len(dstUV))
	}
	for i := range wantUV {
		if dstUV[i] != wantUV[i] {
			t.Errorf("UV[%d]: expected %d, got %d", i, wantUV[i], dstUV[i])
		}
	}
}

func TestNV12RoundTrip(t *testing.T) {
	const w, h = 8, 6
	chroma := (w / 2) * (h / 2)

	y := make([]uint16, w*h)
	u := make([]uint16, chroma)
	v := make([]uint16, chroma)
	for i := range y {
		y[i] = uint16(i * 3)
	}
	for i := 0; i < chroma; i++ {
		u[i] = uint16(100 + i)
		v[i] = uint16(200 + i)
	}

	nvY, nvUV := I420ToNV12(y, u, v, w, h)
	gotY, gotU, gotV := NV12ToI420(nvY, nvUV, w, h)

	for i := range y {
		if gotY[i] != y[i] {
			t.Fatalf("Y[%d] changed in round trip", i)
		}
	}
	for i := 0; i < chroma; i++ {
		if gotU[i] != u[i] || gotV[i] != v[i] {
			t.Fatalf("Chroma[%d] changed in round trip", i)
		}
	}
}
