package tabwrap

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// Service orchestrates fragment compilation. The engine, rasterizer, and
// SVG converter are explicit dependencies; there is no ambient state, so
// a Service is safe for concurrent use across units.
type Service struct {
	engine     Engine
	rasterizer Rasterizer
	svg        SVGConverter
}

// Option configures a Service.
type Option func(*Service)

// WithEngine replaces the default pdflatex engine (e.g. by tests).
// Panics on nil (programmer error).
func WithEngine(e Engine) Option {
	if e == nil {
		panic("tabwrap: WithEngine requires a non-nil engine")
	}
	return func(s *Service) { s.engine = e }
}

// WithRasterizer replaces the default pdftoppm rasterizer.
func WithRasterizer(r Rasterizer) Option {
	if r == nil {
		panic("tabwrap: WithRasterizer requires a non-nil rasterizer")
	}
	return func(s *Service) { s.rasterizer = r }
}

// WithSVGConverter replaces the default pdftocairo converter.
func WithSVGConverter(c SVGConverter) Option {
	if c == nil {
		panic("tabwrap: WithSVGConverter requires a non-nil converter")
	}
	return func(s *Service) { s.svg = c }
}

// New creates a Service with the default external collaborators.
func New(opts ...Option) *Service {
	s := &Service{
		engine:     NewPDFLatex(),
		rasterizer: NewPDFToPPM(),
		svg:        NewPDFToCairo(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run compiles all units and resolves the caller-visible result. Options
// are validated once, up front. Every unit is attempted; if all fail the
// run is a total failure carrying the aggregated report. With combining
// requested and more than one success, the successful PDFs are merged;
// otherwise the first successful artifact (in input order) is returned
// and remaining failures are reported through the batch result.
func (s *Service) Run(ctx context.Context, units []Unit, opts BatchOptions) (*RunResult, error) {
	if len(units) == 0 {
		return nil, ErrNoUnits
	}
	for i := range units {
		if err := units[i].Options.Validate(); err != nil {
			return nil, fmt.Errorf("unit %s: %w", units[i].SourcePath, err)
		}
	}

	batch := s.RunBatch(ctx, units, opts)
	if batch.AllFailed() {
		return nil, fmt.Errorf("%w\n%s", ErrAllFailed, FormatBatchReport(batch))
	}

	paths := make([]string, len(batch.Successes))
	for i, o := range batch.Successes {
		paths[i] = o.OutputPath
	}

	// Combining is a no-op for a single artifact regardless of the flag.
	if units[0].Options.Combine && len(paths) > 1 {
		combined, err := s.Combine(ctx, paths, units[0].OutputDir, units[0].Options)
		if err != nil {
			return nil, err
		}
		return &RunResult{OutputPath: combined, Batch: batch}, nil
	}

	return &RunResult{OutputPath: paths[0], Batch: batch}, nil
}

// sortByStem orders artifact paths by base file name for a stable
// combined table of contents.
func sortByStem(paths []string) []string {
	sorted := append([]string(nil), paths...)
	sort.Slice(sorted, func(i, j int) bool {
		return artifactStem(sorted[i]) < artifactStem(sorted[j])
	})
	return sorted
}

func artifactStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
