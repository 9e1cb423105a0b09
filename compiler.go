package tabwrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Compile runs the full pipeline for one unit: validate, syntax-check,
// detect packages, wrap, invoke the engine, and convert the artifact to
// the requested format. Failures are captured in the returned Outcome,
// never raised; build files are removed on every exit path unless the
// unit opts out.
func (s *Service) Compile(ctx context.Context, unit Unit) (out Outcome) {
	start := time.Now()
	out.Unit = unit
	defer func() { out.Duration = time.Since(start) }()

	content := unit.Content
	if content == "" {
		data, err := os.ReadFile(unit.SourcePath) // #nosec G304 -- caller-chosen input file
		if err != nil {
			out.Err = fmt.Errorf("reading %s: %w", unit.SourcePath, err)
			return out
		}
		content = string(data)
	}

	if v := Validate(content); !v.Valid {
		out.Err = fmt.Errorf("%w: %s", ErrValidation, v.Reason)
		return out
	}
	if issues := CheckSyntax(content); len(issues) > 0 {
		out.Err = fmt.Errorf("%w: %s", ErrSyntax, strings.Join(issues, "; "))
		return out
	}

	opts := unit.Options
	sourceName := filepath.Base(unit.SourcePath)
	detected := DetectPackages(content)
	document := buildDocument(content, sourceName, opts, detected)

	stem := strings.TrimSuffix(sourceName, filepath.Ext(sourceName)) + opts.Suffix
	if err := os.MkdirAll(unit.OutputDir, 0o750); err != nil {
		out.Err = fmt.Errorf("creating output directory: %w", err)
		return out
	}

	texPath := filepath.Join(unit.OutputDir, stem+".tex")
	if err := os.WriteFile(texPath, []byte(document), 0o644); err != nil { // #nosec G306 -- build file, not a secret
		out.Err = fmt.Errorf("writing document: %w", err)
		return out
	}
	if !opts.KeepBuildFiles {
		defer removeBuildFiles(unit.OutputDir, stem, buildExtensions)
	}

	res, err := s.engine.Run(ctx, texPath, unit.OutputDir)
	if err != nil {
		out.Err = err
		return out
	}
	if res.ExitCode != 0 {
		out.Err = engineFailure(unit.OutputDir, stem, unit.SourcePath, res.Stderr)
		return out
	}

	pdfPath := filepath.Join(unit.OutputDir, stem+".pdf")
	if _, err := os.Stat(pdfPath); err != nil {
		out.Err = fmt.Errorf("%w: %s", ErrArtifactMissing, pdfPath)
		return out
	}

	switch opts.Format {
	case FormatPNG:
		dpi := opts.DPI
		if dpi == 0 {
			dpi = defaultDPI
		}
		img, err := s.rasterizer.Render(ctx, pdfPath, dpi)
		if err != nil {
			out.Err = fmt.Errorf("%w: %v", ErrRasterization, err)
			return out
		}
		pngPath := filepath.Join(unit.OutputDir, stem+".png")
		if err := writePNG(cropToContent(img, cropPadding), pngPath); err != nil {
			out.Err = fmt.Errorf("%w: %v", ErrRasterization, err)
			return out
		}
		// The PDF was an intermediate; the PNG replaces it.
		_ = os.Remove(pdfPath)
		out.OutputPath = pngPath
	case FormatSVG:
		svgPath := filepath.Join(unit.OutputDir, stem+".svg")
		if err := s.svg.Convert(ctx, pdfPath, svgPath); err != nil {
			out.Err = fmt.Errorf("%w: %v", ErrRasterization, err)
			return out
		}
		_ = os.Remove(pdfPath)
		out.OutputPath = svgPath
	default:
		out.OutputPath = pdfPath
	}
	return out
}

// buildExtensions are the engine's intermediate siblings for a standalone
// document; the combined document adds TOC and hyperref byproducts.
var (
	buildExtensions    = []string{".tex", ".aux", ".log"}
	combinedExtensions = []string{".tex", ".aux", ".log", ".toc", ".out"}
)

// removeBuildFiles deletes intermediate files by extension. Missing files
// are fine; an engine crash may leave only a subset behind.
func removeBuildFiles(dir, stem string, exts []string) {
	for _, ext := range exts {
		_ = os.Remove(filepath.Join(dir, stem+ext))
	}
}

// engineFailure turns an engine rejection into a CompileFailure. The log
// file beside the document carries the diagnostics; stderr is the
// fallback when the log is unreadable or matches no known signature.
func engineFailure(dir, stem, sourcePath, stderr string) error {
	logPath := filepath.Join(dir, stem+".log")
	data, err := os.ReadFile(logPath) // #nosec G304 -- path derived from unit output naming
	if err != nil {
		return &CompileFailure{Stderr: stderr}
	}
	parsed := ParseLog(string(data), filepath.Base(sourcePath))
	if len(parsed) == 0 {
		return &CompileFailure{Stderr: stderr}
	}
	return &CompileFailure{Errors: parsed}
}
