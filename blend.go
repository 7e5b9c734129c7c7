package blit

// MaskRes describes how a mask pass changed a row of coverage values.
type MaskRes uint8

const (
	// MaskResFullCover means the coverage is untouched and uniform.
	MaskResFullCover MaskRes = iota

	// MaskResChanged means per-pixel coverage varies and must be honored.
	MaskResChanged

	// MaskResFullTransp means nothing in the row is visible.
	MaskResFullTransp
)

// BlendMode selects how source pixels combine with the destination.
type BlendMode uint8

const (
	// BlendModeNormal is standard source-over blending.
	BlendModeNormal BlendMode = iota

	// BlendModeAdditive saturating-adds source to destination.
	BlendModeAdditive

	// BlendModeSubtractive saturating-subtracts source from destination.
	BlendModeSubtractive
)

// Blender is the low-level blend primitive. BlendMap writes a block of
// source colors into the destination buffer.
//
//   - clip bounds the write in absolute device coordinates.
//   - block positions the colors slice: colors is row-major over block.
//   - alphas carries per-pixel coverage aligned with colors; nil means
//     full coverage everywhere.
//   - res summarizes alphas so uniform blocks can skip per-pixel work.
//   - opa scales the whole block on top of per-pixel coverage.
type Blender interface {
	BlendMap(clip, block Area, colors []Color, alphas []Opacity, res MaskRes, opa Opacity, mode BlendMode)
}

// SoftBlender is the software Blender writing into a FrameBuffer.
type SoftBlender struct {
	Dst *FrameBuffer
}

// BlendMap implements the Blender interface.
func (s *SoftBlender) BlendMap(clip, block Area, colors []Color, alphas []Opacity, res MaskRes, opa Opacity, mode BlendMode) {
	if opa < OpaMin || res == MaskResFullTransp {
		return
	}

	draw, ok := block.Intersect(clip)
	if !ok {
		return
	}
	draw, ok = draw.Intersect(s.Dst.area)
	if !ok {
		return
	}

	blockW := block.W()
	dstW := s.Dst.area.W()

	for y := draw.Y1; y <= draw.Y2; y++ {
		srcRow := (y - block.Y1) * blockW
		dstRow := (y - s.Dst.area.Y1) * dstW
		for x := draw.X1; x <= draw.X2; x++ {
			si := srcRow + x - block.X1
			cover := OpaCover
			if alphas != nil && res != MaskResFullCover {
				cover = alphas[si]
				if cover < OpaMin {
					continue
				}
			}
			if opa < OpaMax {
				cover = Opacity(uint16(cover) * uint16(opa) >> 8)
				if cover < OpaMin {
					continue
				}
			}
			di := dstRow + x - s.Dst.area.X1
			s.Dst.px[di] = blendPx(colors[si], s.Dst.px[di], cover, mode)
		}
	}
}

// blendPx combines one source pixel with the destination at the given
// coverage.
func blendPx(src, dst Color, cover Opacity, mode BlendMode) Color {
	switch mode {
	case BlendModeAdditive:
		mixed := addSat(src, dst)
		if cover >= OpaMax {
			return mixed
		}
		return ColorMix(mixed, dst, cover)
	case BlendModeSubtractive:
		mixed := subSat(dst, src)
		if cover >= OpaMax {
			return mixed
		}
		return ColorMix(mixed, dst, cover)
	default:
		if cover >= OpaMax {
			return src
		}
		return ColorMix(src, dst, cover)
	}
}

func addSat(a, b Color) Color {
	r := min(uint16(a>>11)+uint16(b>>11), 0x1F)
	g := min(uint16(a>>5&0x3F)+uint16(b>>5&0x3F), 0x3F)
	bl := min(uint16(a&0x1F)+uint16(b&0x1F), 0x1F)
	return Color(r<<11 | g<<5 | bl)
}

func subSat(a, b Color) Color {
	r := uint16(a >> 11)
	g := uint16(a >> 5 & 0x3F)
	bl := uint16(a & 0x1F)
	r -= min(r, uint16(b>>11))
	g -= min(g, uint16(b>>5&0x3F))
	bl -= min(bl, uint16(b&0x1F))
	return Color(r<<11 | g<<5 | bl)
}
