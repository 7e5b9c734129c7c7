package blit

// pixelCodec reads and writes pixels of one color format family. Every
// format is handled by its own strategy, selected once per buffer by the
// format tag; capability queries stay in the static format table.
//
// Codecs assume coordinates already clamped into the image bounds.
type pixelCodec interface {
	colorAt(b *ImageBuf, x, y int, style *Style) Color
	alphaAt(b *ImageBuf, x, y int) Opacity
	setColor(b *ImageBuf, x, y int, c Color)
	setAlpha(b *ImageBuf, x, y int, opa Opacity)
}

// alpha2Map and alpha4Map span the full opacity range over the raw 2-bit
// and 4-bit values. The tables are part of the on-wire format and are
// non-uniform at the low end on purpose.
var (
	alpha2Map = [4]Opacity{0, 85, 170, 255}
	alpha4Map = [16]Opacity{
		0, 17, 34, 51, 68, 85, 102, 119,
		136, 153, 170, 187, 204, 221, 238, 255,
	}
)

var codecTable = [formatCount]pixelCodec{
	FormatUnknown:              rawCodec{},
	FormatRaw:                  rawCodec{},
	FormatRawAlpha:             rawCodec{},
	FormatRawChromaKeyed:       rawCodec{},
	FormatTrueColor:            trueColorCodec{},
	FormatTrueColorChromaKeyed: trueColorCodec{},
	FormatTrueColorAlpha:       trueColorCodec{alphaByte: true},
	FormatIndexed1:             indexedCodec{bpp: 1},
	FormatIndexed2:             indexedCodec{bpp: 2},
	FormatIndexed4:             indexedCodec{bpp: 4},
	FormatIndexed8:             indexedCodec{bpp: 8},
	FormatAlpha1:               alphaCodec{bpp: 1},
	FormatAlpha2:               alphaCodec{bpp: 2},
	FormatAlpha4:               alphaCodec{bpp: 4},
	FormatAlpha8:               alphaCodec{bpp: 8},
}

func codecFor(cf ColorFormat) pixelCodec {
	if cf >= formatCount {
		return rawCodec{}
	}
	return codecTable[cf]
}

// rawCodec covers formats whose pixels this core cannot address: raw
// streams belong to an external decoder.
type rawCodec struct{}

func (rawCodec) colorAt(*ImageBuf, int, int, *Style) Color { return ColorBlack }
func (rawCodec) alphaAt(*ImageBuf, int, int) Opacity       { return OpaCover }
func (rawCodec) setColor(*ImageBuf, int, int, Color)       {}
func (rawCodec) setAlpha(*ImageBuf, int, int, Opacity)     {}

// trueColorCodec addresses whole-byte truecolor pixels, optionally with
// a trailing coverage byte.
type trueColorCodec struct {
	alphaByte bool
}

func (c trueColorCodec) pxBytes() int {
	if c.alphaByte {
		return pxSizeAlphaByte
	}
	return colorBytes
}

func (c trueColorCodec) offset(b *ImageBuf, x, y int) int {
	return (y*b.header.W + x) * c.pxBytes()
}

func (c trueColorCodec) colorAt(b *ImageBuf, x, y int, _ *Style) Color {
	ofs := c.offset(b, x, y)
	// The trailing byte is coverage, not part of the color, so the
	// returned value is the bare color either way.
	return Color(uint16(b.data[ofs]) | uint16(b.data[ofs+1])<<8)
}

func (c trueColorCodec) alphaAt(b *ImageBuf, x, y int) Opacity {
	if !c.alphaByte {
		return OpaCover
	}
	return b.data[c.offset(b, x, y)+pxSizeAlphaByte-1]
}

func (c trueColorCodec) setColor(b *ImageBuf, x, y int, col Color) {
	// Writes only the color bytes, never the coverage byte.
	ofs := c.offset(b, x, y)
	b.data[ofs] = byte(col)
	b.data[ofs+1] = byte(col >> 8)
}

func (c trueColorCodec) setAlpha(b *ImageBuf, x, y int, opa Opacity) {
	if !c.alphaByte {
		return
	}
	b.data[c.offset(b, x, y)+pxSizeAlphaByte-1] = opa
}

// bitAt extracts the raw bpp-bit value of pixel x from a byte-aligned,
// MSB-first packed row.
func bitAt(row []byte, x int, bpp uint8) uint8 {
	pxPerByte := 8 / int(bpp)
	shift := 8 - bpp - uint8(x%pxPerByte)*bpp
	mask := uint8(1)<<bpp - 1
	return (row[x/pxPerByte] >> shift) & mask
}

// setBitAt stores the low bpp bits of val as pixel x in a packed row.
func setBitAt(row []byte, x int, bpp, val uint8) {
	pxPerByte := 8 / int(bpp)
	shift := 8 - bpp - uint8(x%pxPerByte)*bpp
	mask := uint8(1)<<bpp - 1
	idx := x / pxPerByte
	row[idx] = row[idx]&^(mask<<shift) | (val&mask)<<shift
}

// indexedCodec addresses bit-packed palette indices behind the leading
// palette segment.
type indexedCodec struct {
	bpp uint8
}

func (c indexedCodec) row(b *ImageBuf, y int) []byte {
	stride := b.header.CF.RowBytes(b.header.W)
	start := paletteBytes(b.header.CF) + y*stride
	return b.data[start : start+stride]
}

func (c indexedCodec) colorAt(b *ImageBuf, x, y int, _ *Style) Color {
	// Index passthrough: the raw palette index is returned, not the
	// palette color. Callers resolve the palette themselves.
	if c.bpp == 8 {
		return Color(c.row(b, y)[x])
	}
	return Color(bitAt(c.row(b, y), x, c.bpp))
}

func (indexedCodec) alphaAt(*ImageBuf, int, int) Opacity { return OpaCover }

func (c indexedCodec) setColor(b *ImageBuf, x, y int, col Color) {
	if c.bpp == 8 {
		c.row(b, y)[x] = byte(col)
		return
	}
	setBitAt(c.row(b, y), x, c.bpp, uint8(col))
}

func (indexedCodec) setAlpha(*ImageBuf, int, int, Opacity) {}

// alphaCodec addresses bit-packed coverage values of alpha-only formats.
type alphaCodec struct {
	bpp uint8
}

func (c alphaCodec) row(b *ImageBuf, y int) []byte {
	stride := b.header.CF.RowBytes(b.header.W)
	start := y * stride
	return b.data[start : start+stride]
}

func (alphaCodec) colorAt(_ *ImageBuf, _, _ int, style *Style) Color {
	// Alpha formats carry no per-pixel color; the style designates one.
	if style != nil {
		return style.AlphaColor
	}
	return ColorBlack
}

func (c alphaCodec) alphaAt(b *ImageBuf, x, y int) Opacity {
	switch c.bpp {
	case 1:
		// A set bit marks a transparent pixel.
		if bitAt(c.row(b, y), x, 1) != 0 {
			return OpaTransp
		}
		return OpaCover
	case 2:
		return alpha2Map[bitAt(c.row(b, y), x, 2)]
	case 4:
		return alpha4Map[bitAt(c.row(b, y), x, 4)]
	default:
		return c.row(b, y)[x]
	}
}

func (alphaCodec) setColor(*ImageBuf, int, int, Color) {}

func (c alphaCodec) setAlpha(b *ImageBuf, x, y int, opa Opacity) {
	switch c.bpp {
	case 1:
		setBitAt(c.row(b, y), x, 1, opa>>7)
	case 2:
		setBitAt(c.row(b, y), x, 2, opa>>6)
	case 4:
		setBitAt(c.row(b, y), x, 4, opa>>4)
	default:
		c.row(b, y)[x] = opa
	}
}
