package convert

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"

	_ "github.com/sergeymakinen/go-ico"
	_ "github.com/sergeymakinen/go-ico/cur"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// LoadImage opens and decodes the image at path. It returns the decoded
// image and its format name.
func LoadImage(path string) (image.Image, string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, "", fmt.Errorf("%w: %q does not exist", ErrInputMissing, path)
		}
		return nil, "", fmt.Errorf("%w: cannot stat %q: %v", ErrInputMissing, path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, "", fmt.Errorf("%w: %q is not a regular file", ErrInputMissing, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("%w %q: %w", ErrImageRead, path, err)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("%w %q: %w", ErrImageRead, path, err)
	}
	return img, format, nil
}
