package render

import (
	"fmt"
	"os"

	"imgchars/artifact"
	"imgchars/convert"
)

// Job converts one image file into a text document in DestDir.
type Job struct {
	Source    string
	DestDir   string
	FontName  string
	Converter *convert.Converter
	Version   string
}

// Run loads, converts and stores the image. Nothing is written unless the
// whole document could be assembled.
func (j Job) Run(onProgress convert.ProgressFunc) (string, *convert.Result, error) {
	if info, err := os.Stat(j.DestDir); err != nil || !info.IsDir() {
		return "", nil, fmt.Errorf("%w: %q", convert.ErrDestinationMissing, j.DestDir)
	}

	img, _, err := convert.LoadImage(j.Source)
	if err != nil {
		return "", nil, err
	}

	res, err := j.Converter.Convert(img, onProgress)
	if err != nil {
		return "", nil, fmt.Errorf("could not convert %q: %w", j.Source, err)
	}

	doc := artifact.Document{
		Result: res,
		Settings: artifact.Settings{
			SourcePath:      j.Source,
			DestinationPath: j.DestDir,
			FontName:        j.FontName,
			RampName:        j.Converter.Ramp().Name(),
			Mode:            j.Converter.Mode(),
		},
		Version: j.Version,
	}

	path, err := artifact.Write(j.DestDir, artifact.FileName(j.Source), doc.String())
	if err != nil {
		return "", nil, err
	}
	return path, res, nil
}
