package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Sentinel errors for file discovery.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrNoTexFiles         = errors.New("no .tex files found")
	ErrInvalidExtension   = errors.New("file must have .tex extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// discoverTexFiles finds the fragment files to compile. A file input is
// taken as-is after extension validation; a directory input is scanned
// for .tex files, descending into subdirectories only when recursive is
// set. Files whose stem already ends with the output suffix are previous
// outputs and are skipped. Results are sorted for deterministic runs.
func discoverTexFiles(inputPath, suffix string, recursive bool) ([]string, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if !strings.EqualFold(filepath.Ext(inputPath), ".tex") {
			return nil, fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(inputPath))
		}
		return []string{inputPath}, nil
	}

	var files []string
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() {
			if !recursive && path != inputPath {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), ".tex") {
			return nil
		}
		stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if suffix != "" && strings.HasSuffix(stem, suffix) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	return nil
}
