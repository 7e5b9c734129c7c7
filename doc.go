// Package blit is an embedded image-rasterization core.
//
// It decodes pixel data stored in compact, memory-frugal color encodings
// (truecolor with optional chroma key or coverage byte, bit-packed indexed
// and alpha-only formats) and composites it onto an RGB565 destination
// buffer under clipping, scalar opacity, chroma-key transparency, recolor
// tinting and an externally supplied stack of per-pixel masks.
//
// The compositor never allocates a second full-size frame buffer: when a
// source cannot be fully decoded at once it streams scan-lines through a
// bounded scratch buffer. The dominant case (opaque, untinted truecolor)
// takes a bulk fast path.
//
// Decoding, mask evaluation and low-level blending are pluggable through
// the Cache, MaskStack, Blender and FallbackDrawer contracts. Default
// implementations (MemCache, MaskList, SoftBlender, TextFallback) cover
// in-memory sources and software rendering into a FrameBuffer.
package blit
