package glyph

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

const (
	SymbolsName = "symbols"
	AllName     = "all"
)

var (
	ErrUnknownRamp   = errors.New("unknown character ramp")
	ErrDuplicateRamp = errors.New("duplicate character ramp")
)

var (
	Symbols = mustRamp(SymbolsName, "@&#*!=;:~-,. ")
	All     = mustRamp(AllName, "$@B%8&WM#*oahkbdpqwmZO0QLCJUYXzcvunxrjft/\\|()1{}[]?-_+~<>i!lI;:,\"^`'. ")
)

// Registry is a read-only name to ramp mapping. It is never modified after
// construction and is safe for concurrent use.
type Registry struct {
	ramps map[string]Ramp
	names []string
}

var builtin = func() *Registry {
	reg, err := NewRegistry(Symbols, All)
	if err != nil {
		panic(err)
	}
	return reg
}()

// Builtin returns the registry holding the "symbols" and "all" ramps.
func Builtin() *Registry {
	return builtin
}

func NewRegistry(ramps ...Ramp) (*Registry, error) {
	reg := &Registry{ramps: make(map[string]Ramp, len(ramps))}
	for _, r := range ramps {
		if r.Len() == 0 {
			return nil, fmt.Errorf("ramp %q: %w", r.Name(), ErrEmptyRamp)
		}
		if _, ok := reg.ramps[r.Name()]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateRamp, r.Name())
		}
		reg.ramps[r.Name()] = r
		reg.names = append(reg.names, r.Name())
	}
	slices.Sort(reg.names)
	return reg, nil
}

func (reg *Registry) Lookup(name string) (Ramp, error) {
	r, ok := reg.ramps[name]
	if !ok {
		return Ramp{}, fmt.Errorf("%w: %q (known: %s)", ErrUnknownRamp, name, strings.Join(reg.names, ", "))
	}
	return r, nil
}

// Names returns the registered ramp names in sorted order.
func (reg *Registry) Names() []string {
	return slices.Clone(reg.names)
}

type rampFile struct {
	Ramps []struct {
		Name  string `yaml:"name" toml:"name"`
		Chars string `yaml:"chars" toml:"chars"`
	} `yaml:"ramps" toml:"ramps"`
}

// LoadRegistry returns a registry with the built-in ramps plus the ramps
// defined in a YAML (.yaml, .yml) or TOML (.toml) file:
//
//	ramps:
//	  - name: blocks
//	    chars: "█▓▒░ "
func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read ramp file %q: %w", path, err)
	}

	var file rampFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &file)
	case ".toml":
		err = toml.Unmarshal(data, &file)
	default:
		return nil, fmt.Errorf("unsupported ramp file format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("could not parse ramp file %q: %w", path, err)
	}

	ramps := []Ramp{Symbols, All}
	for _, def := range file.Ramps {
		r, err := NewRamp(def.Name, def.Chars)
		if err != nil {
			return nil, fmt.Errorf("invalid ramp in %q: %w", path, err)
		}
		ramps = append(ramps, r)
	}
	return NewRegistry(ramps...)
}
