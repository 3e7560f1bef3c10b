// Package fontmetric measures monospace font cells to derive the aspect
// correction applied before an image is turned into text.
package fontmetric

import (
	"errors"
	"fmt"

	"imgchars/resample"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// SampleSize is the point size faces are measured at. Cell proportions do not
// depend on it.
const SampleSize = 16

var ErrNoGlyph = errors.New("font has no usable glyph")

// Metrics describes one character cell of a font.
type Metrics struct {
	Font       string
	CellWidth  float64
	CellHeight float64
	// Monospace is set when "i" and "m" advance by the same width.
	Monospace bool
}

// Aspect is the cell height divided by the cell width.
func (m Metrics) Aspect() float64 {
	return m.CellHeight / m.CellWidth
}

// ScaleFor returns the stretch factor for mode: height/width when matching
// the width, width/height when matching the height and 1 otherwise.
func (m Metrics) ScaleFor(mode resample.Mode) float64 {
	switch mode {
	case resample.MatchWidth:
		return m.CellHeight / m.CellWidth
	case resample.MatchHeight:
		return m.CellWidth / m.CellHeight
	default:
		return 1
	}
}

// Measure reads the cell of face: the advance of "@" and the line height.
func Measure(name string, face font.Face) (Metrics, error) {
	adv, ok := face.GlyphAdvance('@')
	if !ok || adv <= 0 {
		return Metrics{}, fmt.Errorf("%w: %q in %s", ErrNoGlyph, '@', name)
	}
	height := face.Metrics().Height
	if height <= 0 {
		return Metrics{}, fmt.Errorf("%w: %s reports no line height", ErrNoGlyph, name)
	}

	iAdv, iok := face.GlyphAdvance('i')
	mAdv, mok := face.GlyphAdvance('m')

	return Metrics{
		Font:       name,
		CellWidth:  toFloat(adv),
		CellHeight: toFloat(height),
		Monospace:  iok && mok && iAdv == mAdv,
	}, nil
}

func toFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
