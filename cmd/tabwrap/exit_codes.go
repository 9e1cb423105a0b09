package main

import (
	"errors"
	"os"

	tabwrap "github.com/tabwrap/go-tabwrap"
	"github.com/tabwrap/go-tabwrap/internal/config"
)

// Exit codes for the tabwrap CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // All files compiled
	ExitGeneral = 1 // General/unexpected error, or every file failed
	ExitUsage   = 2 // Invalid flags, config, or options
	ExitIO      = 3 // File not found, permission denied, bad input file
	ExitTooling = 4 // Missing external tools (pdflatex, poppler)
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Missing tools (exit 4)
	if errors.Is(err, tabwrap.ErrEngineNotFound) ||
		errors.Is(err, tabwrap.ErrRasterizerNotFound) ||
		errors.Is(err, tabwrap.ErrSVGToolNotFound) {
		return ExitTooling
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrNoTexFiles) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, tabwrap.ErrInvalidFormat) ||
		errors.Is(err, tabwrap.ErrInvalidSuffix) ||
		errors.Is(err, tabwrap.ErrCombineWithImage) ||
		errors.Is(err, tabwrap.ErrInvalidDPI) ||
		errors.Is(err, ErrInvalidWorkerCount) {
		return ExitUsage
	}

	return ExitGeneral
}
