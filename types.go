package tabwrap

import (
	"fmt"
	"strings"
	"time"
)

// Output format constants.
const (
	FormatPDF = "pdf"
	FormatPNG = "png"
	FormatSVG = "svg"
)

// DefaultSuffix is appended to the fragment's base name for all build and
// output files. Fragments already carrying the suffix are treated as
// previous outputs and skipped during discovery.
const DefaultSuffix = "_compiled"

// Options holds the resolved compile options for one unit.
// The zero value is not usable; start from DefaultOptions.
type Options struct {
	Suffix         string   // output/build file suffix (default "_compiled")
	Packages       []string // user packages, always included verbatim
	Landscape      bool     // landscape geometry
	NoRescale      bool     // disable the \resizebox auto-rescale wrapper
	ShowFilename   bool     // render the source file name above the table
	KeepBuildFiles bool     // keep intermediate .tex/.aux/.log files
	Format         string   // "pdf", "png", "svg"
	Combine        bool     // merge successful PDFs into one document
	DPI            int      // rasterization resolution for PNG output
}

// DefaultOptions returns options with documented defaults: PDF output,
// auto-rescale on, "_compiled" suffix, 300 DPI.
func DefaultOptions() Options {
	return Options{
		Suffix: DefaultSuffix,
		Format: FormatPDF,
		DPI:    defaultDPI,
	}
}

// Validate checks option consistency. It is called once at the
// orchestration boundary; the compile stages assume valid options.
func (o *Options) Validate() error {
	switch o.Format {
	case FormatPDF, FormatPNG, FormatSVG:
	default:
		return fmt.Errorf("%w: %q (must be pdf, png, or svg)", ErrInvalidFormat, o.Format)
	}
	if o.Suffix == "" || strings.ContainsAny(o.Suffix, "/\\\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidSuffix, o.Suffix)
	}
	if o.Combine && o.Format != FormatPDF {
		return fmt.Errorf("%w: got %q", ErrCombineWithImage, o.Format)
	}
	if o.DPI < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDPI, o.DPI)
	}
	return nil
}

// Unit is one fragment plus its resolved options. Units are created at
// orchestration start and consumed exactly once; they share no state.
type Unit struct {
	SourcePath string  // fragment identity; build/output names derive from it
	Content    string  // fragment text; read from SourcePath when empty
	OutputDir  string  // where build and output files are written
	Options    Options // resolved per-unit options
}

// Outcome is the result of compiling one unit. Exactly one outcome is
// produced per unit; failures are captured in Err, never raised.
type Outcome struct {
	Unit       Unit
	OutputPath string // set on success
	Err        error  // nil on success
	Duration   time.Duration
}

// Success reports whether the unit produced an artifact.
func (o Outcome) Success() bool { return o.Err == nil }

// BatchResult aggregates outcomes for a batch. Successes and Failures
// together cover every unit exactly once, in original input order.
type BatchResult struct {
	Successes []Outcome
	Failures  []Outcome
}

// SuccessCount returns the number of units that produced an artifact.
func (r BatchResult) SuccessCount() int { return len(r.Successes) }

// FailureCount returns the number of units that failed.
func (r BatchResult) FailureCount() int { return len(r.Failures) }

// HasFailures reports whether any unit failed.
func (r BatchResult) HasFailures() bool { return len(r.Failures) > 0 }

// AllFailed reports whether every unit failed. False for an empty batch.
func (r BatchResult) AllFailed() bool {
	return len(r.Failures) > 0 && len(r.Successes) == 0
}

// BatchOptions controls batch scheduling.
type BatchOptions struct {
	Parallel   bool
	MaxWorkers int // 0 = auto (GOMAXPROCS-based, clamped to [1,8])
}

// RunResult is the caller-visible result of a full orchestration run:
// the usable artifact plus the per-unit batch outcome for reporting.
type RunResult struct {
	OutputPath string
	Batch      BatchResult
}
