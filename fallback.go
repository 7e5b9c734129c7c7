package blit

import (
	"image/color"
	"strings"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// FallbackDrawer renders the placeholder visual shown when an image
// cannot be drawn: a filled rectangle carrying a short message label.
type FallbackDrawer interface {
	FillRect(coords, clip Area, c Color, opa Opacity)
	Label(coords, clip Area, text string)
}

// TextFallback is a FallbackDrawer rendering into a FrameBuffer with a
// small built-in font.
type TextFallback struct {
	Dst *FrameBuffer

	// Background and Foreground default to white and black.
	Background Color
	Foreground Color

	// Font defaults to a compact 7pt face.
	Font tinyfont.Fonter
}

// NewTextFallback creates a fallback drawer with default colors and font.
func NewTextFallback(dst *FrameBuffer) *TextFallback {
	return &TextFallback{
		Dst:        dst,
		Background: ColorWhite,
		Foreground: ColorBlack,
		Font:       &proggy.TinySZ8pt7b,
	}
}

// FillRect implements the FallbackDrawer interface.
func (t *TextFallback) FillRect(coords, clip Area, c Color, opa Opacity) {
	if opa < OpaMin {
		return
	}
	draw, ok := coords.Intersect(clip)
	if !ok {
		return
	}
	draw, ok = draw.Intersect(t.Dst.Area())
	if !ok {
		return
	}
	for y := draw.Y1; y <= draw.Y2; y++ {
		for x := draw.X1; x <= draw.X2; x++ {
			dx := x - t.Dst.Area().X1
			dy := y - t.Dst.Area().Y1
			if opa >= OpaMax {
				t.Dst.SetPx(dx, dy, c)
			} else {
				t.Dst.SetPx(dx, dy, ColorMix(c, t.Dst.PxAt(dx, dy), opa))
			}
		}
	}
}

// Label implements the FallbackDrawer interface. The text is drawn line
// by line from the top-left of coords; glyph pixels falling outside the
// clip area are dropped.
func (t *TextFallback) Label(coords, clip Area, text string) {
	if _, ok := coords.Intersect(clip); !ok {
		return
	}
	font := t.Font
	if font == nil {
		font = &proggy.TinySZ8pt7b
	}
	lineH := int(font.GetYAdvance())
	fg := t.Foreground.ToRGBA()

	disp := &clippedDisplayer{fb: t.Dst, clip: clip}
	y := coords.Y1 + lineH
	for _, line := range strings.Split(text, "\n") {
		tinyfont.WriteLine(disp, font,
			int16(coords.X1-t.Dst.Area().X1), int16(y-t.Dst.Area().Y1), line, fg)
		y += lineH
	}
}

// clippedDisplayer confines glyph pixels to a clip area given in
// absolute device coordinates.
type clippedDisplayer struct {
	fb   *FrameBuffer
	clip Area
}

func (d *clippedDisplayer) Size() (int16, int16) { return d.fb.Size() }

func (d *clippedDisplayer) SetPixel(x, y int16, c color.RGBA) {
	absX := int(x) + d.fb.Area().X1
	absY := int(y) + d.fb.Area().Y1
	if !d.clip.Contains(absX, absY) {
		return
	}
	d.fb.SetPixel(x, y, c)
}

func (d *clippedDisplayer) Display() error { return nil }
