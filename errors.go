package tabwrap

import "errors"

// Sentinel errors for library operations.
var (
	// Pre-engine failures: the fragment never reaches pdflatex.
	ErrValidation = errors.New("invalid table content")
	ErrSyntax     = errors.New("syntax issues in table content")

	// Engine and artifact failures.
	ErrCompilation     = errors.New("latex compilation failed")
	ErrArtifactMissing = errors.New("artifact not generated")
	ErrRasterization   = errors.New("image conversion failed")
	ErrCombine         = errors.New("combined PDF compilation failed")
	ErrAllFailed       = errors.New("all files failed to compile")
	ErrNoUnits         = errors.New("no compilation units")

	// Missing external tools.
	ErrEngineNotFound     = errors.New("pdflatex not found")
	ErrRasterizerNotFound = errors.New("pdftoppm not found")
	ErrSVGToolNotFound    = errors.New("pdftocairo not found")

	// Options validation errors.
	ErrInvalidFormat    = errors.New("invalid output format")
	ErrInvalidSuffix    = errors.New("invalid suffix")
	ErrCombineWithImage = errors.New("combine requires PDF output")
	ErrInvalidDPI       = errors.New("invalid DPI")
)
