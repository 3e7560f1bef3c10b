package render

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"imgchars/convert"

	"github.com/ncruces/zenity"
)

// imageExtensions are the file types offered by the picker and picked up
// when converting a folder.
var imageExtensions = []string{"jpg", "jpeg", "jfif", "pjpeg", "pjp", "png", "gif", "bmp", "tif", "tiff", "webp", "ico", "cur"}

func isImageFile(name string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	return slices.Contains(imageExtensions, ext)
}

func pickSource() (string, error) {
	patterns := make([]string, 0, len(imageExtensions))
	for _, e := range imageExtensions {
		patterns = append(patterns, "*."+e)
	}

	path, err := zenity.SelectFile(
		zenity.Title("Select Image"),
		zenity.FileFilters{{Name: "Image", Patterns: patterns}},
	)
	if errors.Is(err, zenity.ErrCanceled) {
		return "", fmt.Errorf("%w: no image selected", convert.ErrInputMissing)
	} else if err != nil {
		return "", fmt.Errorf("could not open image picker: %w", err)
	}
	return path, nil
}

func pickDestination(start string) (string, error) {
	path, err := zenity.SelectFile(
		zenity.Title("Select Destination Folder"),
		zenity.Directory(),
		zenity.Filename(start),
	)
	if errors.Is(err, zenity.ErrCanceled) {
		return "", fmt.Errorf("%w: no folder selected", convert.ErrDestinationMissing)
	} else if err != nil {
		return "", fmt.Errorf("could not open folder picker: %w", err)
	}
	return path, nil
}

func showError(err error) {
	_ = zenity.Error(fmt.Sprintf("Error: %s", err), zenity.Title("Error"), zenity.ErrorIcon)
}

func showDone(path, ms string) {
	_ = zenity.Info(fmt.Sprintf("%s\nDone! %sms", path, ms), zenity.Title("imgchars"), zenity.InfoIcon)
}
