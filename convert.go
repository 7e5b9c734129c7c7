package blit

import (
	"fmt"
	"image"
	stdcolor "image/color"

	"github.com/ericpauley/go-quantize/quantize"
	xdraw "golang.org/x/image/draw"
)

// FromImage converts a standard image into an image buffer of the given
// format.
//
// Truecolor targets copy the pixels at the native depth; the alpha
// variant keeps per-pixel coverage and the chroma-keyed variant maps
// fully transparent pixels to TranspColor. Indexed targets quantize the
// picture to the format's palette size with a median-cut quantizer.
// Alpha-only targets keep just the coverage channel.
func FromImage(img image.Image, cf ColorFormat) (*ImageBuf, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	// Normalize the source so every target reads plain 8-bit RGBA.
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.Copy(rgba, image.Point{}, img, bounds, xdraw.Src, nil)

	switch cf {
	case FormatTrueColor, FormatTrueColorChromaKeyed, FormatTrueColorAlpha:
		return trueColorFromRGBA(rgba, cf)
	case FormatIndexed1, FormatIndexed2, FormatIndexed4, FormatIndexed8:
		return indexedFromRGBA(rgba, cf)
	case FormatAlpha1, FormatAlpha2, FormatAlpha4, FormatAlpha8:
		return alphaFromRGBA(rgba, cf)
	default:
		return nil, fmt.Errorf("%w: cannot convert to %s", ErrInvalidFormat, cf)
	}
}

func trueColorFromRGBA(rgba *image.RGBA, cf ColorFormat) (*ImageBuf, error) {
	w, h := rgba.Rect.Dx(), rgba.Rect.Dy()
	buf, err := NewImageBuf(w, h, cf)
	if err != nil {
		return nil, err
	}
	if cf == FormatTrueColorChromaKeyed {
		buf.SetFlags(FlagTranspColor)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := rgba.RGBAAt(x, y)
			px := RGB(c.R, c.G, c.B)
			switch cf {
			case FormatTrueColorAlpha:
				buf.SetColorAt(x, y, px)
				buf.SetAlphaAt(x, y, c.A)
			case FormatTrueColorChromaKeyed:
				if c.A == 0 {
					px = TranspColor
				} else if px == TranspColor {
					// Nudge visible pure green off the key color.
					px = RGB(0, 0xF8, 0)
				}
				buf.SetColorAt(x, y, px)
			default:
				buf.SetColorAt(x, y, px)
			}
		}
	}
	return buf, nil
}

func indexedFromRGBA(rgba *image.RGBA, cf ColorFormat) (*ImageBuf, error) {
	w, h := rgba.Rect.Dx(), rgba.Rect.Dy()
	buf, err := NewImageBuf(w, h, cf)
	if err != nil {
		return nil, err
	}

	q := quantize.MedianCutQuantizer{}
	palette := q.Quantize(make(stdcolor.Palette, 0, cf.PaletteSize()), rgba)

	for i, entry := range palette {
		r, g, b, a := entry.RGBA()
		v := uint32(a>>8)<<24 | uint32(r>>8)<<16 | uint32(g>>8)<<8 | uint32(b>>8)
		putLE32(buf.Data()[i*4:], v)
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := palette.Index(rgba.RGBAAt(x, y))
			buf.SetColorAt(x, y, Color(idx))
		}
	}
	return buf, nil
}

func alphaFromRGBA(rgba *image.RGBA, cf ColorFormat) (*ImageBuf, error) {
	w, h := rgba.Rect.Dx(), rgba.Rect.Dy()
	buf, err := NewImageBuf(w, h, cf)
	if err != nil {
		return nil, err
	}
	stride := cf.RowBytes(w)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a := rgba.RGBAAt(x, y).A
			if cf == FormatAlpha1 {
				// The 1-bit encoding stores transparency, not coverage:
				// a set bit marks a transparent pixel.
				var bit uint8
				if a < 0x80 {
					bit = 1
				}
				row := buf.PixelData()[y*stride : (y+1)*stride]
				setBitAt(row, x, 1, bit)
				continue
			}
			buf.SetAlphaAt(x, y, a)
		}
	}
	return buf, nil
}
