package blit

import "testing"

func TestTextFallbackFillRect(t *testing.T) {
	dst := NewFrameBuffer(MakeArea(0, 0, 6, 6))
	tf := NewTextFallback(dst)

	tf.FillRect(MakeArea(1, 1, 4, 4), MakeArea(0, 0, 3, 3), ColorWhite, OpaCover)

	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			inside := x >= 1 && x <= 2 && y >= 1 && y <= 2
			if got := dst.PxAt(x, y); (got == ColorWhite) != inside {
				t.Fatalf("pixel (%d,%d) = %#04x, inside=%v", x, y, uint16(got), inside)
			}
		}
	}
}

func TestTextFallbackFillRectOpacity(t *testing.T) {
	dst := NewFrameBuffer(MakeArea(0, 0, 2, 2))
	tf := NewTextFallback(dst)

	tf.FillRect(dst.Area(), dst.Area(), ColorWhite, 128)
	got := dst.PxAt(0, 0)
	if got == ColorWhite || got == ColorBlack {
		t.Errorf("half opacity fill = %#04x, want a mix", uint16(got))
	}

	dst2 := NewFrameBuffer(MakeArea(0, 0, 2, 2))
	NewTextFallback(dst2).FillRect(dst2.Area(), dst2.Area(), ColorWhite, 1)
	if got := dst2.PxAt(0, 0); got != ColorBlack {
		t.Errorf("sub-minimum fill wrote %#04x", uint16(got))
	}
}

func TestTextFallbackLabel(t *testing.T) {
	dst := NewFrameBuffer(MakeArea(0, 0, 40, 30))
	dst.Fill(ColorWhite)
	tf := NewTextFallback(dst)

	tf.Label(dst.Area(), dst.Area(), "No\ndata")

	touched := 0
	for _, px := range dst.Px() {
		if px != ColorWhite {
			touched++
		}
	}
	if touched == 0 {
		t.Error("label drew no glyph pixels")
	}
}

func TestTextFallbackLabelClipped(t *testing.T) {
	dst := NewFrameBuffer(MakeArea(0, 0, 40, 30))
	dst.Fill(ColorWhite)
	tf := NewTextFallback(dst)

	// Clip that excludes the whole label area.
	tf.Label(MakeArea(0, 0, 40, 30), MakeArea(39, 29, 1, 1), "No\ndata")

	for i, px := range dst.Px() {
		if px != ColorWhite && i != 29*40+39 {
			t.Fatalf("pixel %d drawn outside the clip", i)
		}
	}
}
