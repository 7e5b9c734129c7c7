package blit

import "fmt"

// noDataLabel is the message rendered when an image cannot be drawn.
const noDataLabel = "No\ndata"

// composeBlockRows bounds how many decoded rows accumulate in the
// compose scratch before they are flushed through the blend primitive.
// The scratch is sized to the draw rectangle's width per call, so the
// per-call allocation stays proportional to the draw, not the display.
const composeBlockRows = 32

// DrawContext carries the rendering state threaded through every
// compositor call: the destination buffer and the collaborator
// implementations. Nil collaborators fall back to defaults (software
// blender, in-memory cache, no masks, no fallback visuals).
//
// A DrawContext is not safe for concurrent draws into the same
// destination; the surrounding system serializes them.
type DrawContext struct {
	Dst      *FrameBuffer
	Blender  Blender
	Masks    MaskStack
	Cache    Cache
	Fallback FallbackDrawer
}

// NewDrawContext builds a context rendering into dst with the software
// blender, an in-memory source cache and text fallback visuals.
func NewDrawContext(dst *FrameBuffer) *DrawContext {
	return &DrawContext{
		Dst:      dst,
		Blender:  &SoftBlender{Dst: dst},
		Cache:    &MemCache{},
		Fallback: NewTextFallback(dst),
	}
}

func (ctx *DrawContext) blender() Blender {
	if ctx.Blender == nil {
		ctx.Blender = &SoftBlender{Dst: ctx.Dst}
	}
	return ctx.Blender
}

func (ctx *DrawContext) cache() Cache {
	if ctx.Cache == nil {
		ctx.Cache = &MemCache{}
	}
	return ctx.Cache
}

func (ctx *DrawContext) maskCount() int {
	if ctx.Masks == nil {
		return 0
	}
	return ctx.Masks.Count()
}

// drawFallback renders the placeholder rectangle and label.
func (ctx *DrawContext) drawFallback(coords, clip Area, text string) {
	if ctx.Fallback == nil {
		return
	}
	ctx.Fallback.FillRect(coords, clip, ColorWhite, OpaCover)
	ctx.Fallback.Label(coords, clip, text)
}

// DrawImage composites an image source into coords, clipped to clip.
// opaScale scales the style's image opacity; pass OpaCover for none.
//
// A nil source is not a failure: the fallback visual is rendered and the
// draw reports success. A failing draw (unopenable source, scan-line
// read error) renders the same fallback and returns the error.
func (ctx *DrawContext) DrawImage(coords, clip Area, src any, style *Style, opaScale Opacity) error {
	if style == nil {
		style = &DefaultStyle
	}
	if src == nil {
		Logger().Warn("image draw: source is nil")
		ctx.drawFallback(coords, clip, noDataLabel)
		return nil
	}

	if err := ctx.drawCore(coords, clip, src, style, opaScale); err != nil {
		Logger().Warn("image draw failed", "err", err)
		ctx.drawFallback(coords, clip, noDataLabel)
		return err
	}
	return nil
}

// drawCore opens the decode session and drives either the one-pass
// composite over a fully decoded buffer or the row-streamed composite.
func (ctx *DrawContext) drawCore(coords, clip Area, src any, style *Style, opaScale Opacity) error {
	inter, ok := coords.Intersect(clip)
	if !ok {
		// Fully clipped: nothing to draw, the image is drawn successfully.
		return nil
	}

	opa := style.ImageOpa
	if opaScale != OpaCover {
		opa = Opacity(uint16(style.ImageOpa) * uint16(opaScale) >> 8)
	}

	entry, err := ctx.cache().Open(src, style)
	if err != nil {
		return fmt.Errorf("open image source: %w", err)
	}
	defer ctx.cache().Close(entry)

	chromaKeyed := entry.Header.CF.IsChromaKeyed()
	alphaByte := entry.Header.CF.HasAlpha()

	switch {
	case entry.ErrMsg != "":
		// The decoder failed; the error message becomes the visual.
		Logger().Warn("image draw: decoder error", "msg", entry.ErrMsg)
		ctx.drawFallback(coords, clip, entry.ErrMsg)

	case entry.Data != nil:
		// The whole decoded image is resident: compose it in one pass.
		ctx.composeLineBlock(coords, clip, entry.Data, opa,
			chromaKeyed, alphaByte, style.Recolor, style.RecolorOpa)

	case entry.Reader != nil:
		// No full buffer: stream the visible rows one scan-line at a time.
		width := inter.W()
		rowBuf := make([]byte, width*(colorBytes+1)) // +1 for a possible alpha byte

		line := Area{X1: inter.X1, Y1: inter.Y1, X2: inter.X2, Y2: inter.Y1}
		x := inter.X1 - coords.X1
		y := inter.Y1 - coords.Y1
		for row := inter.Y1; row <= inter.Y2; row++ {
			if err := entry.Reader.ReadLine(x, y, width, rowBuf); err != nil {
				return fmt.Errorf("read scan-line %d: %w", y, err)
			}
			ctx.composeLineBlock(line, clip, rowBuf, opa,
				chromaKeyed, alphaByte, style.Recolor, style.RecolorOpa)
			line.Y1++
			line.Y2++
			y++
		}

	default:
		return fmt.Errorf("open image source: %w", ErrNoDecoder)
	}

	return nil
}

// composeLineBlock blends a block of decoded pixel bytes positioned at
// mapArea into the destination, honoring opacity, chroma key, trailing
// alpha bytes, recolor and the external mask stack.
//
// mapBytes is row-major over mapArea: colorBytes per pixel, plus one
// coverage byte when alphaByte is set.
func (ctx *DrawContext) composeLineBlock(mapArea, clip Area, mapBytes []byte, opa Opacity,
	chromaKeyed, alphaByte bool, recolor Color, recolorOpa Opacity) {

	if opa < OpaMin {
		return
	}
	if opa > OpaMax {
		opa = OpaCover
	}

	draw, ok := mapArea.Intersect(clip)
	if !ok {
		return
	}
	draw, ok = draw.Intersect(ctx.Dst.Area())
	if !ok {
		return
	}

	maskCnt := ctx.maskCount()

	// The simplest case: bulk-copy the pixels through the blend
	// primitive with full coverage. This is the dominant opaque
	// truecolor blit and exists purely for throughput.
	if maskCnt == 0 && !chromaKeyed && !alphaByte && opa == OpaCover && recolorOpa == OpaTransp {
		ctx.blender().BlendMap(clip, mapArea, colorsFromBytes(mapBytes), nil,
			MaskResFullCover, OpaCover, BlendModeNormal)
		return
	}

	// Every other combination checks pixels one by one.
	pxBytes := colorBytes
	if alphaByte {
		pxBytes = pxSizeAlphaByte
	}

	drawW := draw.W()
	drawH := draw.H()
	blockRows := min(drawH, composeBlockRows)

	// Scratch bounded to the draw rectangle: decoded colors and two
	// distinct coverage buffers, one holding the format's decoded
	// coverage and one holding the mask-attenuated coverage handed to
	// the blender.
	colorBuf := make([]Color, drawW*blockRows)
	decodedAlpha := make([]Opacity, drawW)
	attenuatedAlpha := make([]Opacity, drawW*blockRows)

	mapW := mapArea.W()
	mapOfs := ((draw.Y1-mapArea.Y1)*mapW + (draw.X1 - mapArea.X1)) * pxBytes

	blendY1 := draw.Y1
	rowsInBlock := 0
	blockRes := MaskResFullCover

	flush := func() {
		if rowsInBlock == 0 {
			return
		}
		n := rowsInBlock * drawW
		blk := Area{X1: draw.X1, Y1: blendY1, X2: draw.X2, Y2: blendY1 + rowsInBlock - 1}
		ctx.blender().BlendMap(clip, blk, colorBuf[:n], attenuatedAlpha[:n],
			blockRes, opa, BlendModeNormal)
		blendY1 += rowsInBlock
		rowsInBlock = 0
		blockRes = MaskResFullCover
	}

	for y := 0; y < drawH; y++ {
		rowStart := rowsInBlock * drawW
		rowRes := MaskResFullCover
		if alphaByte || chromaKeyed {
			rowRes = MaskResChanged
		}

		mp := mapOfs
		for x := 0; x < drawW; x++ {
			px := mapBytes[mp : mp+pxBytes]
			mp += pxBytes

			if alphaByte {
				pxOpa := px[pxSizeAlphaByte-1]
				decodedAlpha[x] = pxOpa
				if pxOpa < OpaMin {
					// Invisible pixel: not decoded any further.
					continue
				}
			} else {
				decodedAlpha[x] = OpaCover
			}

			c := Color(uint16(px[0]) | uint16(px[1])<<8)

			if chromaKeyed && c == TranspColor {
				decodedAlpha[x] = OpaTransp
				continue
			}

			if recolorOpa != OpaTransp {
				c = ColorMix(recolor, c, recolorOpa)
			}

			colorBuf[rowStart+x] = c
		}

		attRow := attenuatedAlpha[rowStart : rowStart+drawW]
		copy(attRow, decodedAlpha)

		if maskCnt != 0 {
			switch ctx.Masks.Apply(attRow, draw.X1, draw.Y1+y, drawW) {
			case MaskResFullTransp:
				clear(attRow)
				rowRes = MaskResChanged
			case MaskResChanged:
				rowRes = MaskResChanged
			}
		}
		if rowRes == MaskResChanged {
			blockRes = MaskResChanged
		}

		mapOfs += mapW * pxBytes
		rowsInBlock++
		if (rowsInBlock+1)*drawW > len(colorBuf) {
			flush()
		}
	}
	flush()
}

// colorsFromBytes decodes a little-endian pixel byte stream into native
// colors.
func colorsFromBytes(p []byte) []Color {
	colors := make([]Color, len(p)/colorBytes)
	for i := range colors {
		colors[i] = Color(uint16(p[i*colorBytes]) | uint16(p[i*colorBytes+1])<<8)
	}
	return colors
}
