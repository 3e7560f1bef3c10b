package fontmetric_test

import (
	"os"
	"path/filepath"
	"testing"

	"imgchars/fontmetric"
	"imgchars/resample"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gomono"
)

func TestProbeBuiltinMonospace(t *testing.T) {
	for _, name := range []string{"Go Mono", "Go Mono Bold", "Go Mono Italic", "Go Mono Bold Italic"} {
		t.Run(name, func(t *testing.T) {
			m, err := fontmetric.Builtin().Probe(name)
			require.NoError(t, err)
			assert.True(t, m.Monospace)
			assert.Equal(t, name, m.Font)
			assert.Greater(t, m.Aspect(), 1.0)
			assert.Less(t, m.Aspect(), 3.0)
		})
	}
}

func TestProbeFixedFaces(t *testing.T) {
	m, err := fontmetric.Builtin().Probe("Inconsolata")
	require.NoError(t, err)
	assert.True(t, m.Monospace)
	assert.InDelta(t, 2.0, m.Aspect(), 1e-9)

	m, err = fontmetric.Builtin().Probe("Fixed 7x13")
	require.NoError(t, err)
	assert.InDelta(t, 13.0/7.0, m.Aspect(), 1e-9)
}

func TestProportionalFontIsNotMonospace(t *testing.T) {
	m, err := fontmetric.Builtin().Probe("Go Regular")
	require.NoError(t, err)
	assert.False(t, m.Monospace)

	mono, err := fontmetric.Builtin().Monospace()
	require.NoError(t, err)
	for _, m := range mono {
		assert.NotEqual(t, "Go Regular", m.Font)
	}
	assert.Len(t, mono, 7)
}

func TestAspectScaleInvariant(t *testing.T) {
	src, err := fontmetric.Builtin().Lookup("Go Mono")
	require.NoError(t, err)

	var aspects []float64
	for _, size := range []float64{11, 16, 100} {
		face, err := src.Open(size)
		require.NoError(t, err)
		m, err := fontmetric.Measure(src.Name, face)
		require.NoError(t, err)
		require.NoError(t, face.Close())
		aspects = append(aspects, m.Aspect())
	}
	assert.InDelta(t, aspects[2], aspects[0], 0.05)
	assert.InDelta(t, aspects[2], aspects[1], 0.05)
}

func TestScaleFor(t *testing.T) {
	m := fontmetric.Metrics{CellWidth: 8, CellHeight: 16}
	assert.Equal(t, 2.0, m.ScaleFor(resample.MatchWidth))
	assert.Equal(t, 0.5, m.ScaleFor(resample.MatchHeight))
	assert.Equal(t, 1.0, m.ScaleFor(resample.None))
	assert.Equal(t, 2.0, m.Aspect())
}

func TestRegistryLookupAndWith(t *testing.T) {
	_, err := fontmetric.Builtin().Lookup("Comic Mono")
	assert.ErrorIs(t, err, fontmetric.ErrUnknownFont)

	src, err := fontmetric.Builtin().Lookup(fontmetric.DefaultFont)
	require.NoError(t, err)
	_, err = fontmetric.Builtin().With(src)
	assert.ErrorIs(t, err, fontmetric.ErrDuplicateFont)

	extra := fontmetric.Fixed("Other", nil)
	reg, err := fontmetric.Builtin().With(extra)
	require.NoError(t, err)
	assert.Contains(t, reg.Names(), "Other")
	assert.NotContains(t, fontmetric.Builtin().Names(), "Other")
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mono.ttf")
	require.NoError(t, os.WriteFile(path, gomono.TTF, 0o644))

	src, err := fontmetric.FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Go Mono", src.Name)

	m, err := src.Probe()
	require.NoError(t, err)
	assert.True(t, m.Monospace)
}

func TestFromFileInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.ttf")
	require.NoError(t, os.WriteFile(path, []byte("not a font"), 0o644))

	_, err := fontmetric.FromFile(path)
	assert.Error(t, err)

	_, err = fontmetric.FromFile(filepath.Join(dir, "missing.otf"))
	assert.Error(t, err)
}
