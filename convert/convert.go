// Package convert turns a decoded image into rows of ramp glyphs.
//
// A run resamples the image for the character cell aspect, then scans it in
// raster order (top to bottom, left to right), mapping every pixel to one
// glyph and ending every row with a newline. The run is synchronous; callers
// that need it off their own goroutine dispatch it themselves.
package convert

import (
	"fmt"
	"image"
	"log/slog"
	"math"
	"strings"
	"time"

	"imgchars/glyph"
	"imgchars/resample"
)

// ProgressFunc receives the completed percentage after every pixel. Values
// never decrease and the last call reports 100.
type ProgressFunc func(percent int)

// Result is the outcome of one conversion. It is not modified after Convert
// returns.
type Result struct {
	Text    string
	RawSize image.Point
	// ScaledSize is the size of the grid, one glyph per pixel.
	ScaledSize image.Point
	Elapsed    time.Duration
}

type Option func(*Converter)

func WithRamp(r glyph.Ramp) Option {
	return func(c *Converter) {
		c.ramp = r
	}
}

// WithScaling sets the stretch mode and the factor passed to the resampler.
func WithScaling(mode resample.Mode, scale float64) Option {
	return func(c *Converter) {
		c.mode = mode
		c.scale = scale
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		c.logger = logger
	}
}

// Converter holds the configuration of a run. It is immutable after New and
// may be shared between goroutines converting different images.
type Converter struct {
	ramp   glyph.Ramp
	mode   resample.Mode
	scale  float64
	logger *slog.Logger
}

// New returns a converter using the "symbols" ramp without scaling unless
// options say otherwise.
func New(opts ...Option) *Converter {
	c := &Converter{
		ramp:  glyph.Symbols,
		mode:  resample.None,
		scale: 1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Converter) Ramp() glyph.Ramp { return c.ramp }

func (c *Converter) Mode() resample.Mode { return c.mode }

// Convert runs the pipeline with the given ramp and scaling.
func Convert(img image.Image, ramp glyph.Ramp, mode resample.Mode, scale float64, onProgress ProgressFunc) (*Result, error) {
	return New(WithRamp(ramp), WithScaling(mode, scale)).Convert(img, onProgress)
}

func (c *Converter) Convert(img image.Image, onProgress ProgressFunc) (*Result, error) {
	if c.ramp.Len() == 0 {
		return nil, fmt.Errorf("convert: %w", glyph.ErrEmptyRamp)
	}
	start := time.Now()

	scaled, err := resample.Resample(c.logger, img, c.mode, c.scale)
	if err != nil {
		return nil, fmt.Errorf("could not scale image: %w", err)
	}

	b := scaled.Bounds()
	width, height := b.Dx(), b.Dy()
	total := float64(width * height)

	var sb strings.Builder
	sb.Grow((width + 1) * height)
	for y := range height {
		for x := range width {
			sb.WriteRune(c.ramp.Map(scaled.At(b.Min.X+x, b.Min.Y+y)))

			if onProgress != nil {
				onProgress(int(math.Round(float64(x+y*width+1) / total * 100)))
			}
		}
		sb.WriteByte('\n')
	}

	return &Result{
		Text:       sb.String(),
		RawSize:    img.Bounds().Size(),
		ScaledSize: image.Pt(width, height),
		Elapsed:    time.Since(start),
	}, nil
}
