package tabwrap_test

import (
	"context"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"sync"

	tabwrap "github.com/tabwrap/go-tabwrap"
)

// fakeEngine simulates pdflatex: it drops a PDF next to the document on
// success and a log file on failure. Safe for concurrent use.
type fakeEngine struct {
	mu       sync.Mutex
	calls    int
	perStem  map[string]int
	failFor  map[string]bool // stems that should be rejected
	failLog  string          // log content written on rejection
	noOutput bool            // succeed without producing a PDF
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{
		perStem: make(map[string]int),
		failFor: make(map[string]bool),
		failLog: "! Misplaced alignment tab character &.\nl.2 a & b",
	}
}

func (e *fakeEngine) Run(_ context.Context, texPath, outputDir string) (tabwrap.EngineResult, error) {
	stem := strings.TrimSuffix(filepath.Base(texPath), ".tex")

	e.mu.Lock()
	e.calls++
	e.perStem[stem]++
	fail := e.failFor[stem]
	e.mu.Unlock()

	if fail {
		logPath := filepath.Join(outputDir, stem+".log")
		if err := os.WriteFile(logPath, []byte(e.failLog), 0o644); err != nil {
			return tabwrap.EngineResult{}, err
		}
		return tabwrap.EngineResult{ExitCode: 1, Stderr: "engine rejected document"}, nil
	}
	if e.noOutput {
		return tabwrap.EngineResult{}, nil
	}

	pdfPath := filepath.Join(outputDir, stem+".pdf")
	if err := os.WriteFile(pdfPath, []byte("%PDF-1.5 fake"), 0o644); err != nil {
		return tabwrap.EngineResult{}, err
	}
	return tabwrap.EngineResult{}, nil
}

func (e *fakeEngine) totalCalls() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.calls
}

func (e *fakeEngine) callsFor(stem string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.perStem[stem]
}

// fakeRasterizer returns a fixed white image with a dark center pixel so
// cropping has content to find.
type fakeRasterizer struct {
	err error
}

func (r *fakeRasterizer) Render(context.Context, string, int) (image.Image, error) {
	if r.err != nil {
		return nil, r.err
	}
	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			img.Set(x, y, color.RGBA{255, 255, 255, 255})
		}
	}
	img.Set(20, 20, color.RGBA{0, 0, 0, 255})
	return img, nil
}

// fakeSVG writes a minimal SVG file.
type fakeSVG struct {
	err error
}

func (s *fakeSVG) Convert(_ context.Context, _, svgPath string) error {
	if s.err != nil {
		return s.err
	}
	return os.WriteFile(svgPath, []byte("<svg/>"), 0o644)
}

const validFragment = "\\begin{tabular}{ll}\na & b \\\\\n\\end{tabular}"

// writeFragment creates a .tex fragment on disk and returns its path.
func writeFragment(dir, name, content string) (string, error) {
	path := filepath.Join(dir, name)
	return path, os.WriteFile(path, []byte(content), 0o644)
}
