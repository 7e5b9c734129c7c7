package blit

import (
	"errors"
	"fmt"
)

// ErrNoDecoder is returned when no decoder can open an image source.
var ErrNoDecoder = errors.New("blit: no decoder for image source")

// LineReader streams decoded scan-lines when a full decoded buffer is
// not resident. ReadLine decodes width pixels starting at (x, y) of the
// source image into buf, using the pixel layout declared by the owning
// cache entry's header.
type LineReader interface {
	ReadLine(x, y, width int, buf []byte) error
}

// CacheEntry is one decode session. Either Data holds the fully decoded
// pixel buffer, or Reader streams scan-lines on demand. ErrMsg carries a
// decoder failure to be rendered as a visual fallback.
//
// The Header describes the decoded layout, which may differ from the
// source encoding: a decoder that resolves palettes reports the decoded
// format here.
type CacheEntry struct {
	Header ImageHeader
	Data   []byte
	ErrMsg string
	Reader LineReader
}

// Cache opens decode sessions for image sources. Exactly one entry is
// opened per draw call and closed on every exit path.
type Cache interface {
	Open(src any, style *Style) (*CacheEntry, error)
	Close(entry *CacheEntry)
}

// MemCache is a Cache for in-memory (Variable) sources. Truecolor
// buffers expose their pixel data directly; indexed and alpha-only
// buffers are streamed through a scan-line reader that resolves the
// palette or coverage into TrueColorAlpha rows. File and symbol sources
// need an external decoder and fail to open.
//
// MemCache holds no decoded state of its own, so there is nothing to
// evict; it only counts outstanding entries.
type MemCache struct {
	outstanding int
}

// Open implements the Cache interface.
func (c *MemCache) Open(src any, style *Style) (*CacheEntry, error) {
	buf, ok := src.(*ImageBuf)
	if !ok || buf == nil {
		return nil, fmt.Errorf("%w: %s source", ErrNoDecoder, SourceKindOf(src))
	}

	var entry *CacheEntry
	switch cf := buf.Format(); cf {
	case FormatTrueColor, FormatTrueColorChromaKeyed, FormatTrueColorAlpha:
		entry = &CacheEntry{Header: buf.Header(), Data: buf.PixelData()}
	case FormatIndexed1, FormatIndexed2, FormatIndexed4, FormatIndexed8:
		hdr := buf.Header()
		hdr.CF = FormatTrueColorAlpha
		entry = &CacheEntry{Header: hdr, Reader: &paletteLineReader{src: buf}}
	case FormatAlpha1, FormatAlpha2, FormatAlpha4, FormatAlpha8:
		hdr := buf.Header()
		hdr.CF = FormatTrueColorAlpha
		entry = &CacheEntry{Header: hdr, Reader: &alphaLineReader{src: buf, style: style}}
	default:
		return nil, fmt.Errorf("%w: %s format", ErrNoDecoder, cf)
	}

	c.outstanding++
	return entry, nil
}

// Close implements the Cache interface.
func (c *MemCache) Close(entry *CacheEntry) {
	if entry != nil {
		c.outstanding--
	}
}

// Outstanding returns the number of opened but not yet closed entries.
func (c *MemCache) Outstanding() int { return c.outstanding }

// paletteLineReader resolves bit-packed palette indices into
// TrueColorAlpha rows. The palette entry's alpha byte becomes the
// pixel's coverage.
type paletteLineReader struct {
	src *ImageBuf
}

func (r *paletteLineReader) ReadLine(x, y, width int, buf []byte) error {
	if y < 0 || y >= r.src.Height() || x < 0 || x+width > r.src.Width() {
		return fmt.Errorf("blit: scan-line %d out of source bounds", y)
	}
	for i := 0; i < width; i++ {
		idx := int(r.src.ColorAt(x+i, y, nil))
		ofs := idx * 4
		entry := getLE32(r.src.Data()[ofs : ofs+4])
		c := ColorFrom32(entry)
		buf[i*pxSizeAlphaByte] = byte(c)
		buf[i*pxSizeAlphaByte+1] = byte(c >> 8)
		buf[i*pxSizeAlphaByte+2] = byte(entry >> 24)
	}
	return nil
}

// alphaLineReader expands alpha-only pixels into TrueColorAlpha rows
// using the style's designated foreground color.
type alphaLineReader struct {
	src   *ImageBuf
	style *Style
}

func (r *alphaLineReader) ReadLine(x, y, width int, buf []byte) error {
	if y < 0 || y >= r.src.Height() || x < 0 || x+width > r.src.Width() {
		return fmt.Errorf("blit: scan-line %d out of source bounds", y)
	}
	for i := 0; i < width; i++ {
		c := r.src.ColorAt(x+i, y, r.style)
		buf[i*pxSizeAlphaByte] = byte(c)
		buf[i*pxSizeAlphaByte+1] = byte(c >> 8)
		buf[i*pxSizeAlphaByte+2] = r.src.AlphaAt(x+i, y)
	}
	return nil
}
