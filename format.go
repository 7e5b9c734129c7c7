package blit

// ColorFormat identifies the pixel encoding of an image buffer.
type ColorFormat uint8

const (
	// FormatUnknown is an unrecognized encoding.
	FormatUnknown ColorFormat = iota

	// FormatRaw is an opaque byte stream handed to an external decoder.
	FormatRaw

	// FormatRawAlpha is a raw stream whose decoded pixels carry alpha.
	FormatRawAlpha

	// FormatRawChromaKeyed is a raw stream with chroma-key transparency.
	FormatRawChromaKeyed

	// FormatTrueColor stores one native color per pixel.
	FormatTrueColor

	// FormatTrueColorChromaKeyed is truecolor where pixels equal to
	// TranspColor are fully transparent.
	FormatTrueColorChromaKeyed

	// FormatTrueColorAlpha is truecolor with a trailing coverage byte
	// appended to every pixel.
	FormatTrueColorAlpha

	// FormatIndexed1 .. FormatIndexed8 store bit-packed palette indices
	// with a leading palette of 2, 4, 16 or 256 four-byte entries.
	FormatIndexed1
	FormatIndexed2
	FormatIndexed4
	FormatIndexed8

	// FormatAlpha1 .. FormatAlpha8 store only per-pixel coverage; the
	// color comes from the style's AlphaColor.
	FormatAlpha1
	FormatAlpha2
	FormatAlpha4
	FormatAlpha8

	formatCount
)

// colorBytes is the size of one native truecolor pixel.
const colorBytes = 2

// pxSizeAlphaByte is the size of one truecolor pixel with its trailing
// coverage byte.
const pxSizeAlphaByte = colorBytes + 1

// formatInfo describes the static capabilities of a color format.
type formatInfo struct {
	pxSize      uint8 // bits per pixel
	paletteSize int   // four-byte palette entries allowed for SetPalette
	chromaKeyed bool
	hasAlpha    bool
}

// formatInfoTable is the capability table. Capability queries are pure
// lookups, never dispatch calls.
var formatInfoTable = [formatCount]formatInfo{
	FormatUnknown:              {},
	FormatRaw:                  {},
	FormatRawAlpha:             {hasAlpha: true},
	FormatRawChromaKeyed:       {chromaKeyed: true},
	FormatTrueColor:            {pxSize: colorBytes * 8},
	FormatTrueColorChromaKeyed: {pxSize: colorBytes * 8, chromaKeyed: true},
	FormatTrueColorAlpha:       {pxSize: pxSizeAlphaByte * 8, hasAlpha: true},
	FormatIndexed1:             {pxSize: 1, paletteSize: 2, chromaKeyed: true},
	FormatIndexed2:             {pxSize: 2, paletteSize: 4, chromaKeyed: true},
	FormatIndexed4:             {pxSize: 4, paletteSize: 16, chromaKeyed: true},
	FormatIndexed8:             {pxSize: 8, paletteSize: 256, chromaKeyed: true},
	FormatAlpha1:               {pxSize: 1, paletteSize: 2, hasAlpha: true},
	FormatAlpha2:               {pxSize: 2, paletteSize: 4, hasAlpha: true},
	FormatAlpha4:               {pxSize: 4, paletteSize: 16, hasAlpha: true},
	FormatAlpha8:               {pxSize: 8, hasAlpha: true},
}

func (f ColorFormat) info() formatInfo {
	if f >= formatCount {
		return formatInfo{}
	}
	return formatInfoTable[f]
}

// PxSize returns the pixel size of the format in bits. Raw and unknown
// formats report zero.
func (f ColorFormat) PxSize() uint8 { return f.info().pxSize }

// IsChromaKeyed reports whether pixels equal to TranspColor are
// transparent in this format.
func (f ColorFormat) IsChromaKeyed() bool { return f.info().chromaKeyed }

// HasAlpha reports whether the format carries per-pixel coverage.
func (f ColorFormat) HasAlpha() bool { return f.info().hasAlpha }

// PaletteSize returns the number of four-byte palette entries writable
// through SetPalette, or zero when the format accepts none.
func (f ColorFormat) PaletteSize() int { return f.info().paletteSize }

// IsValid reports whether the format is a known encoding.
func (f ColorFormat) IsValid() bool { return f > FormatUnknown && f < formatCount }

// RowBytes returns the byte stride of one pixel row at the given width.
// Rows of sub-byte formats are byte-aligned, so the stride rounds up.
func (f ColorFormat) RowBytes(width int) int {
	return (width*int(f.info().pxSize) + 7) >> 3
}

// String returns a short name for the format.
func (f ColorFormat) String() string {
	switch f {
	case FormatRaw:
		return "Raw"
	case FormatRawAlpha:
		return "RawAlpha"
	case FormatRawChromaKeyed:
		return "RawChromaKeyed"
	case FormatTrueColor:
		return "TrueColor"
	case FormatTrueColorChromaKeyed:
		return "TrueColorChromaKeyed"
	case FormatTrueColorAlpha:
		return "TrueColorAlpha"
	case FormatIndexed1:
		return "Indexed1"
	case FormatIndexed2:
		return "Indexed2"
	case FormatIndexed4:
		return "Indexed4"
	case FormatIndexed8:
		return "Indexed8"
	case FormatAlpha1:
		return "Alpha1"
	case FormatAlpha2:
		return "Alpha2"
	case FormatAlpha4:
		return "Alpha4"
	case FormatAlpha8:
		return "Alpha8"
	default:
		return "Unknown"
	}
}
