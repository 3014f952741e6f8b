package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/zeebo/xxh3"
)

// WriteOutput writes content to path through a temp file and rename, so the
// output is never observable partially written. It compares xxh3
// fingerprints against any previous version and reports whether the file
// content actually changed.
func WriteOutput(path string, content []byte) (bool, error) {
	if prev, err := os.ReadFile(path); err == nil {
		if xxh3.Hash(prev) == xxh3.Hash(content) {
			return false, nil
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return false, fmt.Errorf("failed to create temp file for %s: %w", path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return false, fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return false, fmt.Errorf("failed to write %s: %w", path, err)
	}
	// CreateTemp files are 0600; published outputs should be world-readable.
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return false, fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return false, fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return true, nil
}

// FileExists reports whether path exists as a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
