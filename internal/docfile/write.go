// Package docfile writes generated documents next to the project manifest.
package docfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ReadmeName is the document written into the project directory.
const ReadmeName = "README.md"

// ErrExists is returned when the destination exists and overwriting was not
// allowed.
var ErrExists = errors.New("README.md already exists")

// ReadmePath returns the README destination for dir.
func ReadmePath(dir string) string {
	return filepath.Join(dir, ReadmeName)
}

// CheckWritable fails with ErrExists when path exists and overwrite is false.
func CheckWritable(path string, overwrite bool) error {
	if overwrite {
		return nil
	}
	if _, err := os.Lstat(path); err == nil {
		return fmt.Errorf("%w: %s (use --force to overwrite)", ErrExists, path)
	}
	return nil
}

// Write stores data at path. Without overwrite the file is created
// exclusively, so a file appearing after CheckWritable is never clobbered.
func Write(path string, data []byte, overwrite bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w: %s (use --force to overwrite)", ErrExists, path)
		}
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return f.Close()
}
