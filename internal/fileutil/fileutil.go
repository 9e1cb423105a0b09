// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Sentinel errors for file utility operations.
var (
	ErrNotTexFile  = errors.New("not a .tex file")
	ErrEmptyFile   = errors.New("file is empty")
	ErrInvalidUTF8 = errors.New("file is not valid UTF-8")
)

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than
// a name. A string containing path separators (/, \) is treated as a path.
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// ValidateTexFile checks that the path points to a usable LaTeX fragment:
// it exists, has a .tex extension, is non-empty, and decodes as UTF-8.
// The content is returned so callers read the file once.
func ValidateTexFile(path string) (string, error) {
	if !strings.EqualFold(filepath.Ext(path), ".tex") {
		return "", fmt.Errorf("%w: %s", ErrNotTexFile, path)
	}
	data, err := os.ReadFile(path) // #nosec G304 -- caller-chosen input file
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return "", fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s", ErrInvalidUTF8, path)
	}
	return string(data), nil
}
