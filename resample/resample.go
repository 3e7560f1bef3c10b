// Package resample stretches images along one axis to compensate for
// non-square character cells.
package resample

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"math"
	"strings"

	"golang.org/x/image/draw"
)

var ErrInvalidDimension = errors.New("invalid image dimension")

// Mode selects which axis is stretched. Exactly one mode is active per run.
type Mode int

const (
	None Mode = iota
	MatchWidth
	MatchHeight
)

func (m Mode) String() string {
	switch m {
	case None:
		return "none"
	case MatchWidth:
		return "width"
	case MatchHeight:
		return "height"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "":
		return None, nil
	case "width":
		return MatchWidth, nil
	case "height":
		return MatchHeight, nil
	default:
		return None, fmt.Errorf("unsupported scaling mode %q, should be none, width or height", s)
	}
}

// Size returns the dimensions img would have after Resample.
func Size(src image.Rectangle, mode Mode, scale float64) (image.Point, error) {
	w, h := src.Dx(), src.Dy()
	if w < 1 || h < 1 {
		return image.Point{}, fmt.Errorf("%w: source is %dx%d", ErrInvalidDimension, w, h)
	}

	switch mode {
	case None:
		return image.Pt(w, h), nil
	case MatchWidth, MatchHeight:
	default:
		return image.Point{}, fmt.Errorf("unsupported scaling mode: %s", mode)
	}

	if !(scale > 0) || math.IsInf(scale, 0) {
		return image.Point{}, fmt.Errorf("%w: scale factor %v", ErrInvalidDimension, scale)
	}

	if mode == MatchWidth {
		w = int(math.Round(float64(w) * scale))
	} else {
		h = int(math.Round(float64(h) * scale))
	}
	if w < 1 || h < 1 {
		return image.Point{}, fmt.Errorf("%w: %dx%d after scaling %s by %v", ErrInvalidDimension, w, h, mode, scale)
	}
	return image.Pt(w, h), nil
}

// Resample returns img stretched by scale along the axis chosen by mode,
// using Catmull-Rom interpolation. With mode None img is returned as is.
// Any other result is a new image that does not share memory with img.
// Alpha does not take part in the interpolation: the source is flattened to
// its straight RGB first, so transparent pixels keep their color.
func Resample(logger *slog.Logger, img image.Image, mode Mode, scale float64) (image.Image, error) {
	srcBounds := img.Bounds()
	size, err := Size(srcBounds, mode, scale)
	if err != nil {
		return nil, err
	}
	if mode == None {
		return img, nil
	}

	if logger != nil {
		logger.Debug("resampling", "mode", mode, "scale", scale,
			"from", srcBounds.Size(), "to", size)
	}
	src := opaque(img)
	dest := image.NewRGBA64(image.Rectangle{Max: size})
	draw.CatmullRom.Scale(dest, dest.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dest, nil
}

// opaque copies img into a zero based NRGBA image with every alpha set to
// 255. The scaler premultiplies, which would otherwise blacken pixels with
// low alpha.
func opaque(img image.Image) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			var c color.NRGBA
			switch v := img.At(x, y).(type) {
			case color.NRGBA64:
				c = color.NRGBA{R: uint8(v.R >> 8), G: uint8(v.G >> 8), B: uint8(v.B >> 8)}
			default:
				c = color.NRGBAModel.Convert(v).(color.NRGBA)
			}
			c.A = 255
			out.SetNRGBA(x-b.Min.X, y-b.Min.Y, c)
		}
	}
	return out
}
