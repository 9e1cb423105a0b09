package tabwrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Combine merges compiled PDFs into one document with a table of contents
// and per-table running headers. Artifacts are ordered by base file name
// so the output is stable across scheduling. The document is compiled
// twice: the first pass records TOC entries, the second typesets them.
func (s *Service) Combine(ctx context.Context, pdfPaths []string, outputDir string, opts Options) (string, error) {
	if len(pdfPaths) == 0 {
		return "", fmt.Errorf("%w: nothing to combine", ErrCombine)
	}

	document := buildCombinedDocument(sortByStem(pdfPaths), opts.Suffix)
	texPath := filepath.Join(outputDir, combinedDocName+".tex")
	if err := os.WriteFile(texPath, []byte(document), 0o644); err != nil { // #nosec G306 -- build file, not a secret
		return "", fmt.Errorf("writing combined document: %w", err)
	}
	if !opts.KeepBuildFiles {
		defer removeBuildFiles(outputDir, combinedDocName, combinedExtensions)
	}

	for pass := 0; pass < 2; pass++ {
		res, err := s.engine.Run(ctx, texPath, outputDir)
		if err != nil {
			return "", err
		}
		if res.ExitCode != 0 {
			return "", fmt.Errorf("%w: %v", ErrCombine,
				engineFailure(outputDir, combinedDocName, texPath, res.Stderr))
		}
	}

	pdfPath := filepath.Join(outputDir, combinedDocName+".pdf")
	if _, err := os.Stat(pdfPath); err != nil {
		return "", fmt.Errorf("%w: %s", ErrArtifactMissing, pdfPath)
	}
	return pdfPath, nil
}
