package tabwrap

import (
	"fmt"
	"os/exec"
	"strings"
)

// lookPath is swapped in tests to simulate missing tools.
var lookPath = exec.LookPath

// Dependencies reports which external tools are installed.
type Dependencies struct {
	PDFLatex   bool // LaTeX engine
	PDFToPPM   bool // PNG rasterization
	PDFToCairo bool // SVG conversion
}

// CheckDependencies probes PATH for the external tools.
func CheckDependencies() Dependencies {
	probe := func(name string) bool {
		_, err := lookPath(name)
		return err == nil
	}
	return Dependencies{
		PDFLatex:   probe("pdflatex"),
		PDFToPPM:   probe("pdftoppm"),
		PDFToCairo: probe("pdftocairo"),
	}
}

// Check returns an error when a tool required for the given output format
// is missing. pdflatex is required for every format.
func (d Dependencies) Check(format string) error {
	if !d.PDFLatex {
		return fmt.Errorf("%w: install a LaTeX distribution (TeX Live, MiKTeX)", ErrEngineNotFound)
	}
	if format == FormatPNG && !d.PDFToPPM {
		return fmt.Errorf("%w: install poppler-utils for PNG output", ErrRasterizerNotFound)
	}
	if format == FormatSVG && !d.PDFToCairo {
		return fmt.Errorf("%w: install poppler-utils for SVG output", ErrSVGToolNotFound)
	}
	return nil
}

// FormatDependencyReport renders a per-tool status listing.
func FormatDependencyReport(d Dependencies) string {
	status := func(ok bool) string {
		if ok {
			return "found"
		}
		return "MISSING"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "pdflatex (compilation): %s\n", status(d.PDFLatex))
	fmt.Fprintf(&b, "pdftoppm (PNG output): %s\n", status(d.PDFToPPM))
	fmt.Fprintf(&b, "pdftocairo (SVG output): %s", status(d.PDFToCairo))
	return b.String()
}
