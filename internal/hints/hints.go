// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import "strings"

// ForMissingEngine returns hints for a missing pdflatex binary.
func ForMissingEngine() string {
	return format("install TeX Live (apt install texlive-latex-base) or MiKTeX")
}

// ForMissingRasterizer returns hints for missing poppler tools (pdftoppm,
// pdftocairo).
func ForMissingRasterizer() string {
	return format("install poppler-utils (apt install poppler-utils)")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"
	for _, p := range searchedPaths {
		if strings.Contains(p, "go-tabwrap") {
			hint += " or create " + p
			break
		}
	}
	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForNoInputFiles returns hints when discovery finds nothing to compile.
func ForNoInputFiles(recursive bool) string {
	if recursive {
		return format("files already carrying the output suffix are skipped")
	}
	return format("use --recursive to search subdirectories")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
