package fontmetric

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/inconsolata"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

const DefaultFont = "Go Mono"

var (
	ErrUnknownFont   = errors.New("unknown font")
	ErrDuplicateFont = errors.New("duplicate font")
)

// Source opens a named font face at a given size.
type Source struct {
	Name string
	open func(size float64) (font.Face, error)
}

func (s Source) Open(size float64) (font.Face, error) {
	return s.open(size)
}

// Probe opens s at SampleSize and measures its cell.
func (s Source) Probe() (Metrics, error) {
	face, err := s.Open(SampleSize)
	if err != nil {
		return Metrics{}, fmt.Errorf("could not open font %q: %w", s.Name, err)
	}
	defer face.Close()

	return Measure(s.Name, face)
}

// OpenType returns a source for a parsed TrueType or OpenType font.
func OpenType(name string, f *opentype.Font) Source {
	return Source{
		Name: name,
		open: func(size float64) (font.Face, error) {
			return opentype.NewFace(f, &opentype.FaceOptions{
				Size:    size,
				DPI:     72,
				Hinting: font.HintingNone,
			})
		},
	}
}

// Fixed returns a source for a face that only exists at one size.
func Fixed(name string, face font.Face) Source {
	return Source{
		Name: name,
		open: func(float64) (font.Face, error) {
			return face, nil
		},
	}
}

func mustOpenType(name string, data []byte) Source {
	f, err := opentype.Parse(data)
	if err != nil {
		panic(fmt.Sprintf("embedded font %q: %v", name, err))
	}
	return OpenType(name, f)
}

// FromFile loads a .ttf, .otf or .ttc file. Collections contribute their
// first font. The source is named after the font family.
func FromFile(path string) (Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Source{}, fmt.Errorf("could not read font file %q: %w", path, err)
	}

	var f *opentype.Font
	if strings.EqualFold(filepath.Ext(path), ".ttc") {
		coll, err := opentype.ParseCollection(data)
		if err != nil {
			return Source{}, fmt.Errorf("could not parse font collection %q: %w", path, err)
		}
		if coll.NumFonts() == 0 {
			return Source{}, fmt.Errorf("font collection %q is empty", path)
		}
		if f, err = coll.Font(0); err != nil {
			return Source{}, fmt.Errorf("could not read font collection %q: %w", path, err)
		}
	} else if f, err = opentype.Parse(data); err != nil {
		return Source{}, fmt.Errorf("could not parse font %q: %w", path, err)
	}

	name, err := f.Name(nil, sfnt.NameIDFamily)
	if err != nil || name == "" {
		base := filepath.Base(path)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return OpenType(name, f), nil
}

// Registry is a read-only set of font sources.
type Registry struct {
	sources map[string]Source
	names   []string
}

var builtin = func() *Registry {
	reg, err := NewRegistry(
		mustOpenType("Go Mono", gomono.TTF),
		mustOpenType("Go Mono Bold", gomonobold.TTF),
		mustOpenType("Go Mono Italic", gomonoitalic.TTF),
		mustOpenType("Go Mono Bold Italic", gomonobolditalic.TTF),
		mustOpenType("Go Regular", goregular.TTF),
		Fixed("Inconsolata", inconsolata.Regular8x16),
		Fixed("Inconsolata Bold", inconsolata.Bold8x16),
		Fixed("Fixed 7x13", basicfont.Face7x13),
	)
	if err != nil {
		panic(err)
	}
	return reg
}()

// Builtin returns the fonts bundled with the program.
func Builtin() *Registry {
	return builtin
}

func NewRegistry(sources ...Source) (*Registry, error) {
	return (&Registry{}).With(sources...)
}

// With returns a new registry holding the sources of reg plus sources.
func (reg *Registry) With(sources ...Source) (*Registry, error) {
	out := &Registry{
		sources: make(map[string]Source, len(reg.sources)+len(sources)),
		names:   slices.Clone(reg.names),
	}
	for name, s := range reg.sources {
		out.sources[name] = s
	}
	for _, s := range sources {
		if _, ok := out.sources[s.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateFont, s.Name)
		}
		out.sources[s.Name] = s
		out.names = append(out.names, s.Name)
	}
	slices.Sort(out.names)
	return out, nil
}

func (reg *Registry) Lookup(name string) (Source, error) {
	s, ok := reg.sources[name]
	if !ok {
		return Source{}, fmt.Errorf("%w: %q", ErrUnknownFont, name)
	}
	return s, nil
}

func (reg *Registry) Names() []string {
	return slices.Clone(reg.names)
}

func (reg *Registry) Probe(name string) (Metrics, error) {
	s, err := reg.Lookup(name)
	if err != nil {
		return Metrics{}, err
	}
	return s.Probe()
}

// Monospace measures every font and keeps the monospace ones, sorted by name.
func (reg *Registry) Monospace() ([]Metrics, error) {
	all, err := reg.Measure()
	if err != nil {
		return nil, err
	}
	return slices.DeleteFunc(all, func(m Metrics) bool { return !m.Monospace }), nil
}

// Measure probes every registered font, sorted by name.
func (reg *Registry) Measure() ([]Metrics, error) {
	res := make([]Metrics, 0, len(reg.names))
	for _, name := range reg.names {
		m, err := reg.sources[name].Probe()
		if err != nil {
			return nil, err
		}
		res = append(res, m)
	}
	return res, nil
}
