package tabwrap

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/tabwrap/go-tabwrap/internal/process"
)

// EngineResult is the observable outcome of one engine invocation. A
// non-zero ExitCode means the engine rejected the document; the log file
// next to the document holds the diagnostics.
type EngineResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Engine abstracts the LaTeX typesetting engine. Given a document path
// and an output directory it runs one compilation pass, leaving the log
// and (on success) the PDF artifact beside the document.
type Engine interface {
	Run(ctx context.Context, texPath, outputDir string) (EngineResult, error)
}

// CommandRunner abstracts subprocess execution to enable testing without
// real external tools.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr string, exitCode int, err error)
}

// execRunner implements CommandRunner using os/exec. The child runs in
// its own process group so cancellation kills helpers the engine spawns
// (mktexfmt and friends), not just the engine itself.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) (string, string, int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	process.SetGroup(cmd)
	cmd.Cancel = func() error {
		if cmd.Process != nil {
			process.KillProcessGroup(cmd.Process.Pid)
		}
		return nil
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return stdout.String(), stderr.String(), exitErr.ExitCode(), nil
	}
	if err != nil {
		return "", "", -1, fmt.Errorf("running %s: %w", name, err)
	}
	return stdout.String(), stderr.String(), 0, nil
}

// PDFLatex runs pdflatex in nonstop mode.
type PDFLatex struct {
	runner CommandRunner
}

// NewPDFLatex creates an engine backed by the pdflatex binary on PATH.
func NewPDFLatex() *PDFLatex {
	return &PDFLatex{runner: execRunner{}}
}

// Run compiles texPath into outputDir. Invocation failures (binary
// missing, context canceled) are returned as errors; a rejected document
// is reported through EngineResult.ExitCode.
func (e *PDFLatex) Run(ctx context.Context, texPath, outputDir string) (EngineResult, error) {
	stdout, stderr, code, err := e.runner.Run(ctx, "pdflatex",
		"-interaction=nonstopmode", "-output-directory", outputDir, texPath)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return EngineResult{}, fmt.Errorf("%w: %v", ErrEngineNotFound, err)
		}
		return EngineResult{}, err
	}
	return EngineResult{ExitCode: code, Stdout: stdout, Stderr: stderr}, nil
}
