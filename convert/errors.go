package convert

import (
	"errors"

	"imgchars/resample"
)

// Failures of a conversion run. None are retried; callers match them with
// errors.Is.
var (
	ErrInputMissing       = errors.New("no valid source image")
	ErrDestinationMissing = errors.New("no valid destination folder")
	ErrImageRead          = errors.New("could not read image")
	ErrInvalidDimension   = resample.ErrInvalidDimension
	ErrFileCreate         = errors.New("could not create output file")
	ErrFileWrite          = errors.New("could not write output file")
)
