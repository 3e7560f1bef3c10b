package resample_test

import (
	"image"
	"image/color"
	"math"
	"testing"

	"imgchars/resample"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checker(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			v := uint8(((x + y) % 2) * 255)
			img.SetRGBA(x, y, color.RGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return img
}

func TestResampleNoneIsIdentity(t *testing.T) {
	src := checker(7, 5)
	out, err := resample.Resample(nil, src, resample.None, 3)
	require.NoError(t, err)
	assert.Same(t, src, out)
	assert.Equal(t, src.Bounds(), out.Bounds())
	for y := range 5 {
		for x := range 7 {
			assert.Equal(t, src.At(x, y), out.At(x, y))
		}
	}
}

func TestResampleDimensions(t *testing.T) {
	cases := []struct {
		name   string
		w, h   int
		mode   resample.Mode
		scale  float64
		expect image.Point
	}{
		{"width doubled", 10, 10, resample.MatchWidth, 2.0, image.Pt(20, 10)},
		{"height doubled", 10, 10, resample.MatchHeight, 2.0, image.Pt(10, 20)},
		{"height halved", 10, 9, resample.MatchHeight, 0.5, image.Pt(10, 5)},
		{"width rounds half up", 3, 4, resample.MatchWidth, 1.5, image.Pt(5, 4)},
		{"width rounds down", 10, 4, resample.MatchWidth, 1.84, image.Pt(18, 4)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src := checker(tc.w, tc.h)
			out, err := resample.Resample(nil, src, tc.mode, tc.scale)
			require.NoError(t, err)
			assert.Equal(t, tc.expect, out.Bounds().Size())
			assert.Equal(t, image.Point{}, out.Bounds().Min)
		})
	}
}

func TestResampleDoesNotAlias(t *testing.T) {
	src := checker(4, 4)
	out, err := resample.Resample(nil, src, resample.MatchWidth, 1)
	require.NoError(t, err)
	dest, ok := out.(*image.RGBA64)
	require.True(t, ok)

	dest.SetRGBA64(0, 0, color.RGBA64{R: 1, G: 2, B: 3, A: 0xffff})
	assert.Equal(t, color.RGBA{A: 255}, src.RGBAAt(0, 0))
}

func TestResampleUniformStaysUniform(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 6, 6))
	fill := color.RGBA{R: 200, G: 100, B: 50, A: 255}
	for y := range 6 {
		for x := range 6 {
			src.SetRGBA(x, y, fill)
		}
	}

	out, err := resample.Resample(nil, src, resample.MatchHeight, 1.7)
	require.NoError(t, err)
	b := out.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.RGBAModel.Convert(out.At(x, y)).(color.RGBA)
			assert.InDelta(t, fill.R, c.R, 1)
			assert.InDelta(t, fill.G, c.G, 1)
			assert.InDelta(t, fill.B, c.B, 1)
		}
	}
}

func TestResampleIgnoresAlpha(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	alphas := []uint8{0, 1, 128}
	for y := range 3 {
		for x := range 3 {
			src.SetNRGBA(x, y, color.NRGBA{R: 200, G: 150, B: 100, A: alphas[(x+y)%3]})
		}
	}

	for _, mode := range []resample.Mode{resample.MatchWidth, resample.MatchHeight} {
		out, err := resample.Resample(nil, src, mode, 1.5)
		require.NoError(t, err)
		b := out.Bounds()
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				c := color.NRGBAModel.Convert(out.At(x, y)).(color.NRGBA)
				assert.InDelta(t, 200, c.R, 1, "mode %s at %d,%d", mode, x, y)
				assert.InDelta(t, 150, c.G, 1)
				assert.InDelta(t, 100, c.B, 1)
			}
		}
	}

	// the source is left alone
	assert.Equal(t, uint8(0), src.NRGBAAt(0, 0).A)
}

func TestResampleOffsetSource(t *testing.T) {
	src := checker(8, 8).SubImage(image.Rect(2, 2, 6, 5))
	out, err := resample.Resample(nil, src, resample.MatchWidth, 2)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 8, 3), out.Bounds())
}

func TestResampleInvalid(t *testing.T) {
	cases := []struct {
		name  string
		img   image.Image
		mode  resample.Mode
		scale float64
	}{
		{"underflow width", checker(2, 2), resample.MatchWidth, 0.1},
		{"underflow height", checker(2, 2), resample.MatchHeight, 0.2},
		{"zero scale", checker(2, 2), resample.MatchWidth, 0},
		{"negative scale", checker(2, 2), resample.MatchHeight, -1},
		{"nan scale", checker(2, 2), resample.MatchWidth, math.NaN()},
		{"inf scale", checker(2, 2), resample.MatchWidth, math.Inf(1)},
		{"empty image", image.NewRGBA(image.Rect(0, 0, 0, 3)), resample.None, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := resample.Resample(nil, tc.img, tc.mode, tc.scale)
			assert.ErrorIs(t, err, resample.ErrInvalidDimension)
		})
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range []resample.Mode{resample.None, resample.MatchWidth, resample.MatchHeight} {
		parsed, err := resample.ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}

	_, err := resample.ParseMode("diagonal")
	assert.Error(t, err)
}
