// Package glyph maps pixel luminance onto ordered character ramps.
package glyph

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

var ErrEmptyRamp = errors.New("empty character ramp")

// Ramp is an ordered character sequence. Index 0 is the darkest glyph, the
// last index the lightest.
type Ramp struct {
	name  string
	chars []rune
}

func NewRamp(name, chars string) (Ramp, error) {
	r := []rune(chars)
	if len(r) == 0 {
		return Ramp{}, fmt.Errorf("ramp %q: %w", name, ErrEmptyRamp)
	}
	return Ramp{name: name, chars: r}, nil
}

func mustRamp(name, chars string) Ramp {
	r, err := NewRamp(name, chars)
	if err != nil {
		panic(err)
	}
	return r
}

func (r Ramp) Name() string { return r.name }

func (r Ramp) Len() int { return len(r.chars) }

// At returns the glyph at index i. It panics when i is out of range.
func (r Ramp) At(i int) rune { return r.chars[i] }

func (r Ramp) String() string { return string(r.chars) }

// Luminance returns the weighted brightness 0.21R + 0.72G + 0.07B of c on
// 8-bit non-premultiplied channels. Alpha is ignored.
func Luminance(c color.Color) float64 {
	var n color.NRGBA
	switch v := c.(type) {
	case color.NRGBA64:
		n = color.NRGBA{R: uint8(v.R >> 8), G: uint8(v.G >> 8), B: uint8(v.B >> 8)}
	default:
		n = color.NRGBAModel.Convert(c).(color.NRGBA)
	}
	return 0.21*float64(n.R) + 0.72*float64(n.G) + 0.07*float64(n.B)
}

// Index quantizes a luminance in [0, 255] onto the ramp. Values outside the
// range, and float overshoot at the ends, are clamped.
func (r Ramp) Index(lum float64) int {
	last := len(r.chars) - 1
	if last <= 0 || math.IsNaN(lum) {
		return 0
	}
	idx := int(math.Round(lum / 255 * float64(last)))
	return min(max(idx, 0), last)
}

// Map returns the glyph representing the color c.
func (r Ramp) Map(c color.Color) rune {
	return r.chars[r.Index(Luminance(c))]
}

// MapPixel is Map in function form.
func MapPixel(c color.Color, r Ramp) rune {
	return r.Map(c)
}
