package blit

import "errors"

// Common errors for image buffer operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("blit: invalid dimensions")

	// ErrInvalidFormat is returned when the color format is not recognized.
	ErrInvalidFormat = errors.New("blit: invalid color format")

	// ErrDataTooSmall is returned when provided data is smaller than the
	// format requires.
	ErrDataTooSmall = errors.New("blit: data buffer too small")

	// ErrInvalidPaletteIndex is returned when a palette write addresses an
	// entry the format does not have.
	ErrInvalidPaletteIndex = errors.New("blit: invalid palette index")
)

// Flag bits of an image header.
const (
	// FlagTranspColor marks an image that declares a dedicated
	// transparent color.
	FlagTranspColor uint8 = 0x01
)

// ImageHeader describes the geometry and encoding of an image. Width,
// height and format are set once at decode time and are immutable
// afterwards.
type ImageHeader struct {
	W     int
	H     int
	CF    ColorFormat
	Flags uint8
}

// ImageBuf is an image descriptor: a header plus a pixel buffer laid out
// as [palette bytes][pixel rows]. Indexed formats carry a leading
// palette of 2, 4, 16 or 256 four-byte color entries; rows of sub-byte
// formats are byte-aligned.
type ImageBuf struct {
	header ImageHeader
	data   []byte
	codec  pixelCodec
}

// paletteBytes returns the size of the leading palette segment for the
// format. It is a pure function of the format: only indexed formats
// store a palette in front of the pixel rows.
func paletteBytes(cf ColorFormat) int {
	switch cf {
	case FormatIndexed1, FormatIndexed2, FormatIndexed4, FormatIndexed8:
		return cf.PaletteSize() * 4
	default:
		return 0
	}
}

// bufBytes returns the total byte size of an image buffer with the given
// geometry, palette segment included.
func bufBytes(w, h int, cf ColorFormat) int {
	return paletteBytes(cf) + cf.RowBytes(w)*h
}

// NewImageBuf allocates a zeroed image buffer for the given geometry.
func NewImageBuf(w, h int, cf ColorFormat) (*ImageBuf, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !cf.IsValid() || cf.PxSize() == 0 {
		return nil, ErrInvalidFormat
	}
	return &ImageBuf{
		header: ImageHeader{W: w, H: h, CF: cf},
		data:   make([]byte, bufBytes(w, h, cf)),
		codec:  codecFor(cf),
	}, nil
}

// FromData wraps existing pixel data without copying. The data must hold
// the palette segment (if any) followed by the byte-aligned pixel rows.
func FromData(data []byte, w, h int, cf ColorFormat, flags uint8) (*ImageBuf, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !cf.IsValid() || cf.PxSize() == 0 {
		return nil, ErrInvalidFormat
	}
	need := bufBytes(w, h, cf)
	if len(data) < need {
		return nil, ErrDataTooSmall
	}
	return &ImageBuf{
		header: ImageHeader{W: w, H: h, CF: cf, Flags: flags},
		data:   data[:need],
		codec:  codecFor(cf),
	}, nil
}

// Header returns a copy of the image header.
func (b *ImageBuf) Header() ImageHeader { return b.header }

// Width returns the image width in pixels.
func (b *ImageBuf) Width() int { return b.header.W }

// Height returns the image height in pixels.
func (b *ImageBuf) Height() int { return b.header.H }

// Format returns the color format.
func (b *ImageBuf) Format() ColorFormat { return b.header.CF }

// SetFlags replaces the header flag bits.
func (b *ImageBuf) SetFlags(flags uint8) { b.header.Flags = flags }

// Data returns the raw buffer, palette segment included.
func (b *ImageBuf) Data() []byte { return b.data }

// PixelData returns the pixel rows with the palette segment skipped.
func (b *ImageBuf) PixelData() []byte { return b.data[paletteBytes(b.header.CF):] }

// Stride returns the byte stride of one pixel row.
func (b *ImageBuf) Stride() int { return b.header.CF.RowBytes(b.header.W) }

// clamp forces a coordinate into [0, limit). Out-of-range pixel access
// degrades to the nearest valid pixel instead of failing.
func (b *ImageBuf) clamp(v, limit int, axis string) int {
	if v >= limit {
		Logger().Warn("pixel coordinate clamped", "axis", axis, "value", v, "limit", limit)
		return limit - 1
	}
	if v < 0 {
		Logger().Warn("pixel coordinate clamped", "axis", axis, "value", v, "limit", limit)
		return 0
	}
	return v
}

// ColorAt returns the color of the pixel at (x, y). Coordinates are
// clamped to the nearest valid value. For indexed formats the raw
// palette index is returned without resolving through the palette; for
// alpha-only formats the style's AlphaColor (black if style is nil) is
// returned, since those formats carry no per-pixel color.
func (b *ImageBuf) ColorAt(x, y int, style *Style) Color {
	x = b.clamp(x, b.header.W, "x")
	y = b.clamp(y, b.header.H, "y")
	return b.codec.colorAt(b, x, y, style)
}

// AlphaAt returns the coverage of the pixel at (x, y). Coordinates are
// clamped. Formats without per-pixel coverage report OpaCover.
func (b *ImageBuf) AlphaAt(x, y int) Opacity {
	x = b.clamp(x, b.header.W, "x")
	y = b.clamp(y, b.header.H, "y")
	return b.codec.alphaAt(b, x, y)
}

// SetColorAt sets the color of the pixel at (x, y). The trailing
// coverage byte of TrueColorAlpha pixels is preserved. Writes to
// alpha-only and raw formats are ignored.
func (b *ImageBuf) SetColorAt(x, y int, c Color) {
	x = b.clamp(x, b.header.W, "x")
	y = b.clamp(y, b.header.H, "y")
	b.codec.setColor(b, x, y, c)
}

// SetAlphaAt sets the coverage of the pixel at (x, y), quantized down to
// the format's bit depth by truncating shift. The color bytes are not
// affected. Writes to formats without per-pixel coverage are ignored.
func (b *ImageBuf) SetAlphaAt(x, y int, opa Opacity) {
	x = b.clamp(x, b.header.W, "x")
	y = b.clamp(y, b.header.H, "y")
	b.codec.setAlpha(b, x, y, opa)
}

// SetPalette writes a palette entry as a four-byte 0xAARRGGBB value.
// Valid only for indexed and 1/2/4-bit alpha formats; the entry index is
// bounded by the format's palette size. On error the buffer is left
// unmodified.
func (b *ImageBuf) SetPalette(id int, c Color) error {
	size := b.header.CF.PaletteSize()
	if size == 0 || id < 0 || id >= size {
		return ErrInvalidPaletteIndex
	}
	ofs := id * 4
	if ofs+4 > len(b.data) {
		return ErrInvalidPaletteIndex
	}
	putLE32(b.data[ofs:], c.To32())
	return nil
}

// PaletteEntry reads back a palette entry at the native color depth.
func (b *ImageBuf) PaletteEntry(id int) (Color, error) {
	size := b.header.CF.PaletteSize()
	if size == 0 || id < 0 || id >= size {
		return 0, ErrInvalidPaletteIndex
	}
	ofs := id * 4
	if ofs+4 > len(b.data) {
		return 0, ErrInvalidPaletteIndex
	}
	return ColorFrom32(getLE32(b.data[ofs:])), nil
}

func putLE32(p []byte, v uint32) {
	p[0] = byte(v)
	p[1] = byte(v >> 8)
	p[2] = byte(v >> 16)
	p[3] = byte(v >> 24)
}

func getLE32(p []byte) uint32 {
	return uint32(p[0]) | uint32(p[1])<<8 | uint32(p[2])<<16 | uint32(p[3])<<24
}
