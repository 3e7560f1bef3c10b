// Package render holds the command line shell around the conversion
// pipeline.
package render

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"

	"imgchars/artifact"
	"imgchars/convert"
	"imgchars/fontmetric"
	"imgchars/glyph"
	"imgchars/parallel"
	"imgchars/resample"

	"github.com/alecthomas/kong"
)

// Version is the program version written to documents.
type Version string

type CLICmd struct {
	Source    string `help:"Image file, or folder of images, to convert" short:"s" env:"IMGCHARS_SOURCE"`
	Dest      string `help:"Existing destination folder for text documents. Defaults to the folder of the source." short:"d" env:"IMGCHARS_DEST"`
	Ramp      string `help:"Character ramp name" default:"symbols" env:"IMGCHARS_RAMP"`
	RampsFile string `help:"YAML or TOML file with additional ramps" env:"IMGCHARS_RAMPS_FILE"`
	Scaling   string `help:"Axis to stretch for the font's cell aspect" enum:"none,width,height" default:"none" env:"IMGCHARS_SCALING"`
	Font      string `help:"Monospace font measured for scaling. Defaults to the font file's family or Go Mono." env:"IMGCHARS_FONT"`
	FontFile  string `help:"TrueType/OpenType font file to measure" env:"IMGCHARS_FONT_FILE"`
	Progress  string `help:"Progress output for single images" enum:"auto,log,term,dialog,none" default:"auto"`
	Pick      bool   `help:"Choose source and destination with native dialogs"`
	Stdout    bool   `help:"Also print the converted text of a single image to stdout"`

	isDir     bool               `kong:"-"`
	mode      resample.Mode      `kong:"-"`
	ramp      glyph.Ramp         `kong:"-"`
	metrics   fontmetric.Metrics `kong:"-"`
	converter *convert.Converter `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	var err error
	if c.Pick && c.Source == "" {
		if c.Source, err = pickSource(); err != nil {
			return err
		}
	}

	if c.Source == "" {
		return fmt.Errorf("%w: no source given", convert.ErrInputMissing)
	}
	if c.Source, err = filepath.Abs(c.Source); err != nil {
		return fmt.Errorf("%w: invalid source path: %w", convert.ErrInputMissing, err)
	}
	info, err := os.Stat(c.Source)
	if err != nil {
		return fmt.Errorf("%w: %w", convert.ErrInputMissing, err)
	}
	c.isDir = info.IsDir()

	if c.Dest == "" {
		c.Dest = c.Source
		if !c.isDir {
			c.Dest = filepath.Dir(c.Source)
		}
		if c.Pick {
			if c.Dest, err = pickDestination(c.Dest); err != nil {
				return err
			}
		}
	}
	if c.Dest, err = filepath.Abs(c.Dest); err != nil {
		return fmt.Errorf("%w: invalid destination path: %w", convert.ErrDestinationMissing, err)
	}
	if info, err := os.Stat(c.Dest); err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %q", convert.ErrDestinationMissing, c.Dest)
	}

	if c.mode, err = resample.ParseMode(c.Scaling); err != nil {
		return err
	}

	ramps := glyph.Builtin()
	if c.RampsFile != "" {
		if ramps, err = glyph.LoadRegistry(c.RampsFile); err != nil {
			return err
		}
	}
	if c.ramp, err = ramps.Lookup(c.Ramp); err != nil {
		return err
	}

	if c.metrics, err = c.probeFont(); err != nil {
		return err
	}
	c.Font = c.metrics.Font
	if c.mode != resample.None && !c.metrics.Monospace {
		return fmt.Errorf("font %q is not monospace", c.Font)
	}

	return nil
}

func (c *CLICmd) probeFont() (fontmetric.Metrics, error) {
	fonts := fontmetric.Builtin()
	name := c.Font
	if c.FontFile != "" {
		src, err := fontmetric.FromFile(c.FontFile)
		if err != nil {
			return fontmetric.Metrics{}, err
		}
		if fonts, err = fonts.With(src); err != nil {
			return fontmetric.Metrics{}, err
		}
		if name == "" {
			name = src.Name
		}
	}
	if name == "" {
		name = fontmetric.DefaultFont
	}
	return fonts.Probe(name)
}

func (c *CLICmd) Run(logger *slog.Logger, pool *parallel.Pool, version Version) error {
	c.converter = convert.New(
		convert.WithRamp(c.ramp),
		convert.WithScaling(c.mode, c.metrics.ScaleFor(c.mode)),
		convert.WithLogger(logger),
	)
	logger.Info("converting", "source", c.Source, "dest", c.Dest, "ramp", c.ramp.Name(),
		"scaling", c.mode, "font", c.Font, "aspect", c.metrics.Aspect())

	if c.isDir {
		return c.runFolder(logger, pool, version)
	}

	err := c.runFile(logger, version)
	if err != nil && c.Progress == "dialog" {
		showError(err)
	}
	return err
}

func (c *CLICmd) job(source string, version Version) Job {
	return Job{
		Source:    source,
		DestDir:   c.Dest,
		FontName:  c.Font,
		Converter: c.converter,
		Version:   string(version),
	}
}

func (c *CLICmd) runFile(logger *slog.Logger, version Version) error {
	logger = logger.With("file", c.Source)

	sink, err := newProgressSink(c.Progress, logger, c.Source)
	if err != nil {
		return err
	}
	path, res, err := c.job(c.Source, version).Run(sink.Report)
	sink.Close()
	if err != nil {
		return err
	}

	ms := artifact.FormatMillis(res.Elapsed)
	logger.Info("done", "output", path, "width", res.ScaledSize.X, "height", res.ScaledSize.Y, "ms", ms)
	if c.Stdout {
		fmt.Print(res.Text)
	}
	if c.Progress == "dialog" {
		showDone(path, ms)
	}
	return nil
}

func (c *CLICmd) runFolder(logger *slog.Logger, pool *parallel.Pool, version Version) error {
	files, err := os.ReadDir(c.Source)
	if err != nil {
		return fmt.Errorf("%w: unable to read folder %q: %w", convert.ErrInputMissing, c.Source, err)
	}

	var processedCount, errCount atomic.Uint64
	for _, file := range files {
		if file.IsDir() || !isImageFile(file.Name()) {
			continue
		}

		pool.Do(func() {
			source := filepath.Join(c.Source, file.Name())
			fileLog := logger.With("file", source)

			path, res, err := c.job(source, version).Run(nil)
			if err != nil {
				errCount.Add(1)
				fileLog.Error("could not convert image", "error", err)
				return
			}
			processedCount.Add(1)
			fileLog.Info("done", "output", path, "ms", artifact.FormatMillis(res.Elapsed))
		})
	}

	pool.Wait()

	processed := processedCount.Load()
	errors := errCount.Load()
	logger.Info("stats", "processed", processed, "errors", errors, "total", processed+errors)

	if errors > 0 {
		return fmt.Errorf("error processing %d files", errors)
	}
	return nil
}
