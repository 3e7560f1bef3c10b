package render

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"imgchars/fontmetric"
	"imgchars/glyph"
)

type FontsCmd struct {
	All      bool     `help:"Include fonts that are not monospace"`
	FontFile []string `help:"Additional font files to measure" env:"IMGCHARS_FONT_FILE"`

	out io.Writer `kong:"-"`
}

func (c *FontsCmd) Run() error {
	fonts := fontmetric.Builtin()
	for _, path := range c.FontFile {
		src, err := fontmetric.FromFile(path)
		if err != nil {
			return err
		}
		if fonts, err = fonts.With(src); err != nil {
			return err
		}
	}

	var list []fontmetric.Metrics
	var err error
	if c.All {
		list, err = fonts.Measure()
	} else {
		list, err = fonts.Monospace()
	}
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(output(c.out), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FONT\tCELL\tASPECT\tMONOSPACE")
	for _, m := range list {
		fmt.Fprintf(w, "%s\t%.2fx%.2f\t%.4f\t%t\n", m.Font, m.CellWidth, m.CellHeight, m.Aspect(), m.Monospace)
	}
	return w.Flush()
}

type RampsCmd struct {
	RampsFile string `help:"YAML or TOML file with additional ramps" env:"IMGCHARS_RAMPS_FILE"`

	out io.Writer `kong:"-"`
}

func (c *RampsCmd) Run() error {
	ramps := glyph.Builtin()
	if c.RampsFile != "" {
		var err error
		if ramps, err = glyph.LoadRegistry(c.RampsFile); err != nil {
			return err
		}
	}

	w := tabwriter.NewWriter(output(c.out), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RAMP\tLENGTH\tCHARACTERS")
	for _, name := range ramps.Names() {
		r, err := ramps.Lookup(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%d\t%s\n", name, r.Len(), strconv.Quote(r.String()))
	}
	return w.Flush()
}

func output(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}
