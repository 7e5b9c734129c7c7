package blit

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(x * 60), G: uint8(y * 100), B: 0x80, A: 0xFF,
			})
		}
	}
	return img
}

func TestFromImageTrueColor(t *testing.T) {
	src := testImage()
	buf, err := FromImage(src, FormatTrueColor)
	require.NoError(t, err)

	assert.Equal(t, 4, buf.Width())
	assert.Equal(t, 2, buf.Height())
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			c := src.RGBAAt(x, y)
			assert.Equal(t, RGB(c.R, c.G, c.B), buf.ColorAt(x, y, nil),
				"pixel (%d,%d)", x, y)
		}
	}
}

func TestFromImageTrueColorAlpha(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.SetRGBA(0, 0, color.RGBA{R: 0xF8, A: 0xF8})
	src.SetRGBA(1, 0, color.RGBA{})

	buf, err := FromImage(src, FormatTrueColorAlpha)
	require.NoError(t, err)
	assert.Equal(t, Opacity(0xF8), buf.AlphaAt(0, 0))
	assert.Equal(t, OpaTransp, buf.AlphaAt(1, 0))
}

func TestFromImageChromaKeyed(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 1))
	src.SetRGBA(0, 0, color.RGBA{R: 0xFF, A: 0xFF})
	src.SetRGBA(1, 0, color.RGBA{}) // transparent
	src.SetRGBA(2, 0, color.RGBA{G: 0xFF, A: 0xFF}) // visible pure green

	buf, err := FromImage(src, FormatTrueColorChromaKeyed)
	require.NoError(t, err)
	assert.Equal(t, FlagTranspColor, buf.Header().Flags)

	assert.Equal(t, RGB(0xFF, 0, 0), buf.ColorAt(0, 0, nil))
	assert.Equal(t, TranspColor, buf.ColorAt(1, 0, nil))
	// Visible pure green must not collide with the key color.
	assert.NotEqual(t, TranspColor, buf.ColorAt(2, 0, nil))
}

func TestFromImageIndexed(t *testing.T) {
	for _, cf := range []ColorFormat{FormatIndexed1, FormatIndexed2, FormatIndexed4, FormatIndexed8} {
		t.Run(cf.String(), func(t *testing.T) {
			buf, err := FromImage(testImage(), cf)
			require.NoError(t, err)

			// Every stored index must address the palette.
			limit := Color(cf.PaletteSize())
			for y := 0; y < buf.Height(); y++ {
				for x := 0; x < buf.Width(); x++ {
					assert.Less(t, buf.ColorAt(x, y, nil), limit)
				}
			}
		})
	}
}

func TestFromImageAlpha(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 1))
	src.SetRGBA(0, 0, color.RGBA{A: 0xFF})
	src.SetRGBA(1, 0, color.RGBA{A: 0x40})
	src.SetRGBA(2, 0, color.RGBA{})

	t.Run("Alpha8", func(t *testing.T) {
		buf, err := FromImage(src, FormatAlpha8)
		require.NoError(t, err)
		assert.Equal(t, Opacity(0xFF), buf.AlphaAt(0, 0))
		assert.Equal(t, Opacity(0x40), buf.AlphaAt(1, 0))
		assert.Equal(t, OpaTransp, buf.AlphaAt(2, 0))
	})

	t.Run("Alpha1", func(t *testing.T) {
		buf, err := FromImage(src, FormatAlpha1)
		require.NoError(t, err)
		assert.Equal(t, OpaCover, buf.AlphaAt(0, 0))
		assert.Equal(t, OpaTransp, buf.AlphaAt(1, 0))
		assert.Equal(t, OpaTransp, buf.AlphaAt(2, 0))
	})

	t.Run("Alpha2", func(t *testing.T) {
		buf, err := FromImage(src, FormatAlpha2)
		require.NoError(t, err)
		assert.Equal(t, Opacity(255), buf.AlphaAt(0, 0))
		assert.Equal(t, Opacity(85), buf.AlphaAt(1, 0)) // 0x40 quantizes to raw 1
	})
}

func TestFromImageInvalidTarget(t *testing.T) {
	_, err := FromImage(testImage(), FormatRaw)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
