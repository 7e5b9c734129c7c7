package blit

import (
	"errors"
	"fmt"
)

// ErrResourceTruncated is returned when a compiled resource does not
// hold the pixel data its header declares.
var ErrResourceTruncated = errors.New("blit: compiled resource truncated")

// Compiled image resources are flat word sequences burned into firmware:
//
//	word 0: width in pixels
//	word 1: height in pixels
//	word 2: color bit-depth
//	word 3: flags (bit 0: image declares a dedicated transparent color)
//	then width*height words of row-major pixel values at that depth
//
// The layout is bit-exact for interoperability with existing resource
// converters and on-device assets.
const resourceHeaderWords = 4

// DecodeResource builds an image buffer from a compiled resource. Only
// the native 16-bit depth is supported; the flags word decides between
// the plain and chroma-keyed truecolor formats.
func DecodeResource(words []uint16) (*ImageBuf, error) {
	if len(words) < resourceHeaderWords {
		return nil, ErrResourceTruncated
	}
	w := int(words[0])
	h := int(words[1])
	depth := int(words[2])
	flags := uint8(words[3])

	if depth != colorBytes*8 {
		return nil, fmt.Errorf("%w: unsupported color depth %d", ErrInvalidFormat, depth)
	}
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(words) < resourceHeaderWords+w*h {
		return nil, ErrResourceTruncated
	}

	cf := FormatTrueColor
	if flags&FlagTranspColor != 0 {
		cf = FormatTrueColorChromaKeyed
	}

	buf, err := NewImageBuf(w, h, cf)
	if err != nil {
		return nil, err
	}
	buf.SetFlags(flags)

	data := buf.PixelData()
	for i, px := range words[resourceHeaderWords : resourceHeaderWords+w*h] {
		data[i*2] = byte(px)
		data[i*2+1] = byte(px >> 8)
	}
	return buf, nil
}

// EncodeResource flattens a truecolor image buffer into the compiled
// resource word layout.
func EncodeResource(buf *ImageBuf) ([]uint16, error) {
	switch buf.Format() {
	case FormatTrueColor, FormatTrueColorChromaKeyed:
	default:
		return nil, fmt.Errorf("%w: %s not representable as a compiled resource",
			ErrInvalidFormat, buf.Format())
	}

	w, h := buf.Width(), buf.Height()
	words := make([]uint16, resourceHeaderWords, resourceHeaderWords+w*h)
	words[0] = uint16(w)
	words[1] = uint16(h)
	words[2] = colorBytes * 8
	words[3] = uint16(buf.Header().Flags)

	data := buf.PixelData()
	for i := 0; i < w*h; i++ {
		words = append(words, uint16(data[i*2])|uint16(data[i*2+1])<<8)
	}
	return words, nil
}
