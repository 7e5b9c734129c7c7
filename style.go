package blit

// Style carries the only style fields the compositor consumes.
type Style struct {
	// ImageOpa is the base opacity of the whole image.
	ImageOpa Opacity

	// Recolor is the tint mixed into decoded pixels when RecolorOpa is
	// nonzero.
	Recolor Color

	// RecolorOpa is the intensity of the recolor mix.
	RecolorOpa Opacity

	// AlphaColor substitutes the pixel color for alpha-only formats,
	// which carry no color of their own.
	AlphaColor Color
}

// DefaultStyle is a fully opaque, untinted style drawing alpha-only
// formats in black.
var DefaultStyle = Style{
	ImageOpa:   OpaCover,
	Recolor:    ColorBlack,
	RecolorOpa: OpaTransp,
	AlphaColor: ColorBlack,
}
