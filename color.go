package blit

import "image/color"

// Color is a 16-bit RGB565 pixel value, the native depth of the
// destination buffer and of all TrueColor image formats.
type Color uint16

// TranspColor is the dedicated chroma-key color. Decoded pixels equal to
// this value are treated as fully transparent in chroma-keyed formats.
// Pure green is sacrificed because it is the least likely color in real
// artwork at 5-6-5 precision.
const TranspColor Color = 0x07E0

// Common colors.
const (
	ColorBlack Color = 0x0000
	ColorWhite Color = 0xFFFF
)

// RGB packs 8-bit channels into an RGB565 color, truncating to 5-6-5.
func RGB(r, g, b uint8) Color {
	return Color(uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3))
}

// R returns the red channel expanded back to 8 bits.
func (c Color) R() uint8 { return uint8(c>>11) << 3 }

// G returns the green channel expanded back to 8 bits.
func (c Color) G() uint8 { return uint8(c>>5&0x3F) << 2 }

// B returns the blue channel expanded back to 8 bits.
func (c Color) B() uint8 { return uint8(c&0x1F) << 3 }

// RGBA implements the color.Color interface. Returned components are
// alpha-premultiplied as required, with full alpha.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R())
	r |= r << 8
	g = uint32(c.G())
	g |= g << 8
	b = uint32(c.B())
	b |= b << 8
	return r, g, b, 0xFFFF
}

// ToRGBA converts to the standard 8-bit RGBA color with full alpha.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{R: c.R(), G: c.G(), B: c.B(), A: 0xFF}
}

// To32 returns the color as 0xAARRGGBB with full alpha, the layout of a
// four-byte palette entry.
func (c Color) To32() uint32 {
	return 0xFF000000 | uint32(c.R())<<16 | uint32(c.G())<<8 | uint32(c.B())
}

// ColorFrom32 converts a four-byte palette entry (0xAARRGGBB) back to
// the native depth. The alpha byte is dropped.
func ColorFrom32(v uint32) Color {
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v))
}

// FromRGBA converts a standard color to the native depth, discarding alpha.
func FromRGBA(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// ColorMix mixes c1 into c2 by ratio: OpaCover yields c1, OpaTransp
// yields c2. The mix runs per channel in 8-bit fixed point.
func ColorMix(c1, c2 Color, ratio Opacity) Color {
	if ratio >= OpaMax {
		return c1
	}
	if ratio <= OpaMin {
		return c2
	}
	inv := 255 - uint32(ratio)
	r := (uint32(c1>>11)*uint32(ratio) + uint32(c2>>11)*inv) >> 8
	g := (uint32(c1>>5&0x3F)*uint32(ratio) + uint32(c2>>5&0x3F)*inv) >> 8
	b := (uint32(c1&0x1F)*uint32(ratio) + uint32(c2&0x1F)*inv) >> 8
	return Color(r<<11 | g<<5 | b)
}

// Opacity is an 8-bit coverage value: 0 is fully transparent, 255 fully
// opaque.
type Opacity = uint8

// Opacity bounds. Values below OpaMin render nothing; values above
// OpaMax are treated as full coverage.
const (
	OpaTransp Opacity = 0
	OpaMin    Opacity = 2
	OpaMax    Opacity = 253
	OpaCover  Opacity = 255
)
