package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var (
	// ErrNotFound signals a missing artifact.
	ErrNotFound = errors.New("not found")
	// ErrCouldNotLoad signals an unreadable or corrupt artifact.
	ErrCouldNotLoad = errors.New("could not load")
	// ErrNoData signals an empty table or dataset where the pipeline
	// needs rows to proceed.
	ErrNoData = errors.New("no data")
)

// MakePath makes sure the parent directory exists and returns the full
// path for the given file name.
func MakePath(parentPath string, fileName string) (string, error) {
	if err := os.MkdirAll(parentPath, os.ModePerm); err != nil {
		return "", fmt.Errorf("could not make dir %s: %w", parentPath, err)
	}
	return filepath.Join(parentPath, fileName), nil
}
