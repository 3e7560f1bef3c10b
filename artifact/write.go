package artifact

import (
	"fmt"
	"os"
	"path/filepath"

	"imgchars/convert"
)

// FileName returns the document name for a source image: its base name with
// ".txt" appended.
func FileName(sourcePath string) string {
	return filepath.Base(sourcePath) + ".txt"
}

// Write stores content as destDir/name and returns the full path. The content
// goes to a temporary file first, so an existing document is replaced only
// once the new one is complete.
func Write(destDir, name, content string) (path string, err error) {
	path = filepath.Join(destDir, name)

	outFile, err := os.CreateTemp(destDir, name+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", convert.ErrFileCreate, path, err)
	}
	tmpName := outFile.Name()
	canRename := false
	defer func() {
		if defErr := outFile.Close(); defErr != nil && err == nil {
			err = fmt.Errorf("%w: could not close %q: %w", convert.ErrFileWrite, tmpName, defErr)
		}

		if canRename && err == nil {
			if defErr := os.Rename(tmpName, path); defErr != nil {
				err = fmt.Errorf("%w: could not rename %q: %w", convert.ErrFileWrite, path, defErr)
			}
		}
		if err != nil {
			_ = os.Remove(tmpName)
			path = ""
		}
	}()

	if err = outFile.Chmod(0o644); err != nil {
		return "", fmt.Errorf("%w %q: %w", convert.ErrFileCreate, path, err)
	}
	if _, err = outFile.WriteString(content); err != nil {
		return "", fmt.Errorf("%w %q: %w", convert.ErrFileWrite, path, err)
	}
	if err = outFile.Sync(); err != nil {
		return "", fmt.Errorf("%w: could not flush %q: %w", convert.ErrFileWrite, path, err)
	}

	canRename = true
	return path, nil
}
