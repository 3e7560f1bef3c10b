package glyph_test

import (
	"image/color"
	"testing"

	"imgchars/glyph"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLuminance(t *testing.T) {
	cases := []struct {
		name string
		c    color.Color
		want float64
	}{
		{"black", color.Black, 0},
		{"white", color.White, 255},
		{"red", color.RGBA{R: 255, A: 255}, 53.55},
		{"green", color.RGBA{G: 255, A: 255}, 183.6},
		{"blue", color.RGBA{B: 255, A: 255}, 17.85},
		{"alpha ignored", color.NRGBA{R: 100, G: 100, B: 100, A: 10}, 100},
		{"alpha ignored 16 bit", color.NRGBA64{R: 0x6400, G: 0x6400, B: 0x6400}, 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, glyph.Luminance(tc.c), 1e-9)
		})
	}
}

func TestMapPixelEnds(t *testing.T) {
	for _, r := range []glyph.Ramp{glyph.Symbols, glyph.All} {
		t.Run(r.Name(), func(t *testing.T) {
			assert.Equal(t, r.At(0), glyph.MapPixel(color.Black, r))
			assert.Equal(t, r.At(r.Len()-1), glyph.MapPixel(color.White, r))
		})
	}
}

func TestMapPixelRed(t *testing.T) {
	// 53.55 / 255 * 12 = 2.52
	assert.Equal(t, 3, glyph.Symbols.Index(glyph.Luminance(color.RGBA{R: 255, A: 255})))
	assert.Equal(t, '*', glyph.MapPixel(color.RGBA{R: 255, A: 255}, glyph.Symbols))
}

func TestIndexMonotonic(t *testing.T) {
	for _, r := range []glyph.Ramp{glyph.Symbols, glyph.All} {
		prev := 0
		for step := 0; step <= 2550; step++ {
			idx := r.Index(float64(step) / 10)
			require.GreaterOrEqual(t, idx, prev, "ramp %s at %v", r.Name(), float64(step)/10)
			require.Less(t, idx, r.Len())
			prev = idx
		}
		assert.Equal(t, r.Len()-1, prev)
	}
}

func TestIndexClamped(t *testing.T) {
	r := glyph.Symbols
	assert.Equal(t, 0, r.Index(-10))
	assert.Equal(t, r.Len()-1, r.Index(300))
	assert.Equal(t, r.Len()-1, r.Index(255.0000001))
}

func TestIndexHalfAwayFromZero(t *testing.T) {
	r, err := glyph.NewRamp("two", "@ ")
	require.NoError(t, err)
	assert.Equal(t, 1, r.Index(127.5))
	assert.Equal(t, 0, r.Index(127.4))
}

func TestSingleGlyphRamp(t *testing.T) {
	r, err := glyph.NewRamp("one", "#")
	require.NoError(t, err)
	assert.Equal(t, '#', r.Map(color.Black))
	assert.Equal(t, '#', r.Map(color.White))
}

func TestNewRampEmpty(t *testing.T) {
	_, err := glyph.NewRamp("none", "")
	assert.ErrorIs(t, err, glyph.ErrEmptyRamp)
}

func TestBuiltinLengths(t *testing.T) {
	assert.Equal(t, 13, glyph.Symbols.Len())
	assert.Equal(t, 70, glyph.All.Len())
	assert.Equal(t, ' ', glyph.All.At(glyph.All.Len()-1))
}
