package logging

import (
	"os"
	"path/filepath"
)

// OpenFile opens (creating directories as needed) an append-only log file.
// The caller owns closing it.
func OpenFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
}
