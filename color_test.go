package blit

import "testing"

func TestRGBChannels(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    Color
	}{
		{"black", 0, 0, 0, 0x0000},
		{"white", 0xFF, 0xFF, 0xFF, 0xFFFF},
		{"pure red", 0xFF, 0, 0, 0xF800},
		{"pure green", 0, 0xFF, 0, 0x07E0},
		{"pure blue", 0, 0, 0xFF, 0x001F},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := RGB(tt.r, tt.g, tt.b)
			if c != tt.want {
				t.Fatalf("RGB = %#04x, want %#04x", uint16(c), uint16(tt.want))
			}
			// Channel round trip within 5/6-bit truncation.
			if c.R() != tt.r&0xF8 || c.G() != tt.g&0xFC || c.B() != tt.b&0xF8 {
				t.Errorf("channels = %d/%d/%d", c.R(), c.G(), c.B())
			}
		})
	}
}

func TestTranspColorIsPureGreen(t *testing.T) {
	if TranspColor != RGB(0, 0xFF, 0) {
		t.Errorf("TranspColor = %#04x", uint16(TranspColor))
	}
}

func TestColor32RoundTrip(t *testing.T) {
	c := RGB(0x30, 0x88, 0xD0)
	if got := ColorFrom32(c.To32()); got != c {
		t.Errorf("ColorFrom32(To32()) = %#04x, want %#04x", uint16(got), uint16(c))
	}
	if c.To32()>>24 != 0xFF {
		t.Errorf("To32 alpha byte = %#02x, want 0xFF", c.To32()>>24)
	}
}

func TestColorMix(t *testing.T) {
	c1 := RGB(0xFF, 0, 0)
	c2 := RGB(0, 0, 0xFF)

	if got := ColorMix(c1, c2, OpaCover); got != c1 {
		t.Errorf("full ratio = %#04x, want c1", uint16(got))
	}
	if got := ColorMix(c1, c2, OpaTransp); got != c2 {
		t.Errorf("zero ratio = %#04x, want c2", uint16(got))
	}
	// Values past the treat-as-extreme bounds snap to the endpoints.
	if got := ColorMix(c1, c2, OpaMax); got != c1 {
		t.Errorf("OpaMax ratio = %#04x, want c1", uint16(got))
	}
	if got := ColorMix(c1, c2, OpaMin); got != c2 {
		t.Errorf("OpaMin ratio = %#04x, want c2", uint16(got))
	}

	mid := ColorMix(c1, c2, 128)
	if mid.R() == 0 || mid.B() == 0 {
		t.Errorf("midpoint lost a channel: %d/%d/%d", mid.R(), mid.G(), mid.B())
	}
	if mid.R() > c1.R() || mid.B() > c2.B() {
		t.Errorf("midpoint out of range: %d/%d/%d", mid.R(), mid.G(), mid.B())
	}
}

func TestColorRGBAInterface(t *testing.T) {
	c := RGB(0xF8, 0x80, 0x08)
	r, g, b, a := c.RGBA()
	if a != 0xFFFF {
		t.Errorf("alpha = %#04x, want 0xFFFF", a)
	}
	if uint8(r>>8) != c.R() || uint8(g>>8) != c.G() || uint8(b>>8) != c.B() {
		t.Errorf("RGBA() = %d/%d/%d", r>>8, g>>8, b>>8)
	}
	rgba := c.ToRGBA()
	if rgba.R != c.R() || rgba.G != c.G() || rgba.B != c.B() || rgba.A != 0xFF {
		t.Errorf("ToRGBA() = %+v", rgba)
	}
}
