package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"candleStickPlotter/internal/ports"
)

// EnsureDir makes sure path is a usable directory, creating it and any missing
// parents. created reports whether anything was created. Failures wrap
// ports.ErrOutputLocation.
func EnsureDir(path string) (created bool, err error) {
	info, err := os.Stat(path)
	if err == nil {
		if !info.IsDir() {
			return false, fmt.Errorf("%s exists and is not a directory: %w", path, ports.ErrOutputLocation)
		}
		return false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("stat %s: %w: %w", path, ports.ErrOutputLocation, err)
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return false, fmt.Errorf("create directory %s: %w: %w", path, ports.ErrOutputLocation, err)
	}
	return true, nil
}

// FileExists reports whether anything exists at path.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
