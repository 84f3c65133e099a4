// Package fileutil provides shared file operation helpers.
package fileutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// OwnerReadWrite is the permission applied to every file this tool writes.
const OwnerReadWrite = 0o600

// WriteAtomic writes the content produced by write to a temp file next to path
// and renames it into place once write succeeds. It returns the final size.
func WriteAtomic(path string, write func(io.Writer) error) (size int64, err error) {
	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return 0, fmt.Errorf("creating temporary file: %w", err)
	}

	tmpName := tmpFile.Name()

	defer func() {
		tmpFile.Close() //nolint:errcheck,gosec // best-effort cleanup

		if err != nil {
			os.Remove(tmpName) //nolint:errcheck,gosec // best-effort cleanup
		}
	}()

	if err := write(tmpFile); err != nil {
		return 0, err
	}

	if err := tmpFile.Chmod(OwnerReadWrite); err != nil {
		return 0, fmt.Errorf("setting file permissions: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return 0, fmt.Errorf("closing temporary file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return 0, fmt.Errorf("renaming output file: %w", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("stat output %q: %w", path, err)
	}

	return info.Size(), nil
}
