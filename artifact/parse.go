package artifact

import (
	"errors"
	"fmt"
	"image"
	"math"
	"strconv"
	"strings"
	"time"

	"imgchars/resample"
)

var ErrMalformed = errors.New("malformed document")

// Footer is a parsed document: the glyph grid and the key/value pairs of
// each footer section.
type Footer struct {
	Body          string
	InfoFields    map[string]string
	SettingFields map[string]string
	SpecFields    map[string]string
}

// Specs is the content of the processing specs section.
type Specs struct {
	RawSize    image.Point
	ScaledSize image.Point
	Elapsed    time.Duration
}

// Parse splits a rendered document into its grid and footer sections.
func Parse(text string) (*Footer, error) {
	marker := "\n" + SectionInfo + "\n"
	idx := strings.LastIndex(text, marker)
	if idx < 0 {
		return nil, fmt.Errorf("%w: missing %s section", ErrMalformed, SectionInfo)
	}

	f := &Footer{
		Body:          text[:idx],
		InfoFields:    map[string]string{},
		SettingFields: map[string]string{},
		SpecFields:    map[string]string{},
	}

	var cur map[string]string
	for n, line := range strings.Split(text[idx+1:], "\n") {
		line = strings.TrimRight(line, "\r")
		switch line {
		case "":
			continue
		case SectionInfo:
			cur = f.InfoFields
			continue
		case SectionSettings:
			cur = f.SettingFields
			continue
		case SectionSpecs:
			cur = f.SpecFields
			continue
		}

		key, value, ok := strings.Cut(line, ": ")
		if !ok || cur == nil {
			return nil, fmt.Errorf("%w: footer line %d: %q", ErrMalformed, n+1, line)
		}
		cur[key] = value
	}

	if len(f.SpecFields) == 0 {
		return nil, fmt.Errorf("%w: missing %s section", ErrMalformed, SectionSpecs)
	}
	return f, nil
}

// Specs decodes the processing specs section.
func (f *Footer) Specs() (Specs, error) {
	var s Specs
	var err error
	fields := []struct {
		key string
		dst *int
	}{
		{"rawImgWidth", &s.RawSize.X},
		{"rawImgHeight", &s.RawSize.Y},
		{"scaledImgWidth", &s.ScaledSize.X},
		{"scaledImgHeight", &s.ScaledSize.Y},
	}
	for _, field := range fields {
		if *field.dst, err = f.pixels(field.key); err != nil {
			return Specs{}, err
		}
	}

	raw, ok := f.SpecFields["processingTime"]
	if !ok {
		return Specs{}, fmt.Errorf("%w: missing processingTime", ErrMalformed)
	}
	ms, err := strconv.ParseFloat(strings.TrimSuffix(raw, "ms"), 64)
	if err != nil || !strings.HasSuffix(raw, "ms") {
		return Specs{}, fmt.Errorf("%w: processingTime %q", ErrMalformed, raw)
	}
	s.Elapsed = time.Duration(math.Round(ms * 1e6))

	return s, nil
}

func (f *Footer) pixels(key string) (int, error) {
	raw, ok := f.SpecFields[key]
	if !ok {
		return 0, fmt.Errorf("%w: missing %s", ErrMalformed, key)
	}
	num, found := strings.CutSuffix(raw, "px")
	v, err := strconv.Atoi(num)
	if err != nil || !found {
		return 0, fmt.Errorf("%w: %s %q", ErrMalformed, key, raw)
	}
	return v, nil
}

// Settings decodes the settings section.
func (f *Footer) Settings() (Settings, error) {
	s := Settings{
		SourcePath:      f.SettingFields["filePathTextField"],
		DestinationPath: f.SettingFields["destinationPathTextField"],
		FontName:        f.SettingFields["fontNameComboBox"],
		RampName:        f.SettingFields["charsetComboBox"],
	}

	selected := 0
	for key, mode := range map[string]resample.Mode{
		"widthScalingRadioButton":  resample.MatchWidth,
		"heightScalingRadioButton": resample.MatchHeight,
		"noneScalingRadioButton":   resample.None,
	} {
		raw, ok := f.SettingFields[key]
		if !ok {
			continue
		}
		on, err := strconv.ParseBool(raw)
		if err != nil {
			return Settings{}, fmt.Errorf("%w: %s %q", ErrMalformed, key, raw)
		}
		if on {
			s.Mode = mode
			selected++
		}
	}
	if selected != 1 {
		return Settings{}, fmt.Errorf("%w: %d scaling modes selected", ErrMalformed, selected)
	}
	return s, nil
}
