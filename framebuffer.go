package blit

import (
	"image"
	"image/color"

	"tinygo.org/x/drivers"
)

var (
	_ image.Image       = (*FrameBuffer)(nil)
	_ drivers.Displayer = (*FrameBuffer)(nil)
)

// FrameBuffer is a destination pixel region at the native color depth.
// Its area carries the absolute device coordinates the region covers, so
// a FrameBuffer can buffer any window of a larger display.
//
// FrameBuffer implements image.Image for inspection and the
// tinygo.org/x/drivers Displayer contract (Size, SetPixel, Display) so
// font and widget tooling written for embedded displays can draw on it
// directly.
type FrameBuffer struct {
	area Area
	px   []Color
}

// NewFrameBuffer allocates a zeroed buffer covering the given absolute
// area.
func NewFrameBuffer(area Area) *FrameBuffer {
	return &FrameBuffer{
		area: area,
		px:   make([]Color, area.Size()),
	}
}

// Area returns the absolute device area the buffer covers.
func (f *FrameBuffer) Area() Area { return f.area }

// Width returns the buffer width in pixels.
func (f *FrameBuffer) Width() int { return f.area.W() }

// Height returns the buffer height in pixels.
func (f *FrameBuffer) Height() int { return f.area.H() }

// Px returns the raw pixel slice in row-major order.
func (f *FrameBuffer) Px() []Color { return f.px }

// PxAt returns the pixel at buffer-relative coordinates. Out-of-range
// reads return black.
func (f *FrameBuffer) PxAt(x, y int) Color {
	if x < 0 || x >= f.area.W() || y < 0 || y >= f.area.H() {
		return ColorBlack
	}
	return f.px[y*f.area.W()+x]
}

// SetPx sets the pixel at buffer-relative coordinates. Out-of-range
// writes are ignored.
func (f *FrameBuffer) SetPx(x, y int, c Color) {
	if x < 0 || x >= f.area.W() || y < 0 || y >= f.area.H() {
		return
	}
	f.px[y*f.area.W()+x] = c
}

// Fill sets every pixel to the given color.
func (f *FrameBuffer) Fill(c Color) {
	for i := range f.px {
		f.px[i] = c
	}
}

// At implements the image.Image interface.
func (f *FrameBuffer) At(x, y int) color.Color {
	return f.PxAt(x, y).ToRGBA()
}

// Bounds implements the image.Image interface.
func (f *FrameBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.area.W(), f.area.H())
}

// ColorModel implements the image.Image interface.
func (f *FrameBuffer) ColorModel() color.Model {
	return color.RGBAModel
}

// ToImage copies the buffer into a standard RGBA image.
func (f *FrameBuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(f.Bounds())
	for y := 0; y < f.area.H(); y++ {
		for x := 0; x < f.area.W(); x++ {
			img.SetRGBA(x, y, f.PxAt(x, y).ToRGBA())
		}
	}
	return img
}

// Size implements the drivers Displayer contract.
func (f *FrameBuffer) Size() (x, y int16) {
	return int16(f.area.W()), int16(f.area.H())
}

// SetPixel implements the drivers Displayer contract. The color is
// truncated to the native depth; fully transparent writes are dropped.
func (f *FrameBuffer) SetPixel(x, y int16, c color.RGBA) {
	if c.A == 0 {
		return
	}
	f.SetPx(int(x), int(y), RGB(c.R, c.G, c.B))
}

// Display implements the drivers Displayer contract. The buffer is
// memory-backed, so there is nothing to flush.
func (f *FrameBuffer) Display() error { return nil }
