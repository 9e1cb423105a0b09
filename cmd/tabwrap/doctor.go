package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	tabwrap "github.com/tabwrap/go-tabwrap"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string     `json:"status"` // "ready", "warnings", "errors"
	Tools    toolsInfo  `json:"tools"`
	Env      envInfo    `json:"environment"`
	System   systemInfo `json:"system"`
	Warnings []string   `json:"warnings,omitempty"`
	Errors   []string   `json:"errors,omitempty"`
}

// toolsInfo holds external tool detection results.
type toolsInfo struct {
	PDFLatex        bool   `json:"pdflatex"`
	PDFLatexVersion string `json:"pdflatex_version,omitempty"`
	PDFToPPM        bool   `json:"pdftoppm"`
	PDFToCairo      bool   `json:"pdftocairo"`
}

// envInfo holds platform information.
type envInfo struct {
	OS   string `json:"os"`
	Arch string `json:"arch"`
}

// systemInfo holds system check results.
type systemInfo struct {
	TempWritable bool `json:"temp_writable"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runDoctorCmd(args []string, env *Environment) int {
	jsonOutput := false
	for _, arg := range args {
		if arg == "--json" {
			jsonOutput = true
		}
	}

	result := runDoctor()

	if jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor() *doctorResult {
	result := &doctorResult{
		Status: "ready",
		Env:    envInfo{OS: runtime.GOOS, Arch: runtime.GOARCH},
	}

	checkTools(result)
	checkSystem(result)

	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}

	return result
}

// checkTools probes PATH for the external tools. A missing engine is an
// error; missing poppler tools only degrade PNG/SVG output, so they are
// warnings.
func checkTools(result *doctorResult) {
	deps := tabwrap.CheckDependencies()
	result.Tools.PDFLatex = deps.PDFLatex
	result.Tools.PDFToPPM = deps.PDFToPPM
	result.Tools.PDFToCairo = deps.PDFToCairo

	if !deps.PDFLatex {
		result.Errors = append(result.Errors,
			"pdflatex not found. Install TeX Live or MiKTeX")
	} else {
		out, err := exec.Command("pdflatex", "--version").Output()
		if err == nil {
			if line, _, ok := strings.Cut(string(out), "\n"); ok {
				result.Tools.PDFLatexVersion = strings.TrimSpace(line)
			}
		} else {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Could not get pdflatex version: %v", err))
		}
	}

	if !deps.PDFToPPM {
		result.Warnings = append(result.Warnings,
			"pdftoppm not found. PNG output unavailable; install poppler-utils")
	}
	if !deps.PDFToCairo {
		result.Warnings = append(result.Warnings,
			"pdftocairo not found. SVG output unavailable; install poppler-utils")
	}
}

// checkSystem verifies system requirements.
func checkSystem(result *doctorResult) {
	tmpDir := os.TempDir()
	testFile := filepath.Join(tmpDir, "tabwrap-doctor-test")
	if err := os.WriteFile(testFile, []byte("test"), 0600); err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Temp directory not writable: %s", tmpDir))
	} else {
		_ = os.Remove(testFile)
		result.System.TempWritable = true
	}
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "tabwrap doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "External tools")
	if r.Tools.PDFLatex {
		fmt.Fprintln(w, "  [OK] pdflatex: found")
		if r.Tools.PDFLatexVersion != "" {
			fmt.Fprintf(w, "  [OK] Version: %s\n", r.Tools.PDFLatexVersion)
		}
	} else {
		fmt.Fprintln(w, "  [ERROR] pdflatex: not found")
	}
	if r.Tools.PDFToPPM {
		fmt.Fprintln(w, "  [OK] pdftoppm: found")
	} else {
		fmt.Fprintln(w, "  [WARN] pdftoppm: not found (PNG output unavailable)")
	}
	if r.Tools.PDFToCairo {
		fmt.Fprintln(w, "  [OK] pdftocairo: found")
	} else {
		fmt.Fprintln(w, "  [WARN] pdftocairo: not found (SVG output unavailable)")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.Env.OS, r.Env.Arch)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "System")
	if r.System.TempWritable {
		fmt.Fprintln(w, "  [OK] Temp directory: writable")
	} else {
		fmt.Fprintln(w, "  [ERROR] Temp directory: not writable")
	}
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case "ready":
		fmt.Fprintln(w, "Status: Ready to compile")
	case "warnings":
		fmt.Fprintln(w, "Status: Ready with warnings")
	case "errors":
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
