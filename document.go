package tabwrap

import (
	"fmt"
	"path/filepath"
	"strings"
)

// combinedDocName is the base name for the combined document and its
// build siblings.
const combinedDocName = "tex_tables_combined"

// buildDocument assembles a complete compilable document around one
// fragment. User packages come first, verbatim and unfiltered; detected
// packages follow. The rescale wrapper keeps wide tables inside the line
// width unless disabled.
func buildDocument(content, sourceName string, opts Options, detected []string) string {
	var b strings.Builder
	b.WriteString("\\documentclass{article}\n")

	geometry := []string{"margin=1cm"}
	if opts.Landscape {
		geometry = append(geometry, "landscape")
	}
	fmt.Fprintf(&b, "\\usepackage[%s]{geometry}\n", strings.Join(geometry, ","))

	// The underscore package makes raw underscores printable in the
	// header line; only needed when the name actually carries one.
	if opts.ShowFilename && strings.Contains(sourceName, "_") {
		b.WriteString("\\usepackage{underscore}\n")
	}

	for _, pkg := range opts.Packages {
		fmt.Fprintf(&b, "\\usepackage{%s}\n", pkg)
	}
	for _, pkg := range detected {
		fmt.Fprintf(&b, "\\usepackage{%s}\n", pkg)
	}

	if !opts.NoRescale {
		b.WriteString("\\usepackage{graphicx}\n")
		content = `\resizebox{\linewidth}{!}{` + content + `}`
	}

	// Page numbers feed the combined document's table of contents;
	// standalone output stays unnumbered.
	pagestyle := "empty"
	if opts.Combine {
		pagestyle = "plain"
	}
	fmt.Fprintf(&b, "\\pagestyle{%s}\n", pagestyle)

	b.WriteString("\\begin{document}\n")
	if opts.ShowFilename {
		fmt.Fprintf(&b, "\\texttt{%s}\n\n", displayName(sourceName, opts.Suffix))
	}
	b.WriteString("\\begin{center}\n")
	b.WriteString(content)
	b.WriteString("\n\\end{center}\n")
	b.WriteString("\\end{document}\n")
	return b.String()
}

// displayName makes a file name safe for typeset display: the compiled
// suffix is stripped and markup-unsafe underscores are escaped.
func displayName(name, suffix string) string {
	if suffix != "" {
		name = strings.ReplaceAll(name, suffix, "")
	}
	return strings.ReplaceAll(name, "_", `\_`)
}

// combinedPreamble sets up pdfpages inclusion with a per-table running
// header and centered page numbers. \currentSection holds the display
// name of the table on the current page.
const combinedPreamble = `\documentclass{article}
\usepackage[margin=2.5cm]{geometry}
\usepackage{underscore}
\usepackage{pdfpages}
\usepackage{hyperref}
\usepackage{bookmark}
\usepackage{fancyhdr}

\pagestyle{fancy}
\fancyhf{}
\renewcommand{\headrulewidth}{0pt}
\fancyhead[C]{\currentSection}
\fancyfoot[C]{\thepage}

\newcommand{\currentSection}{}
\newcommand{\setCurrentSection}[1]{\renewcommand{\currentSection}{#1}}

\setlength{\headheight}{14pt}
\setlength{\topmargin}{-0.5in}
\setlength{\headsep}{25pt}

\begin{document}
\tableofcontents
\newpage

`

// buildCombinedDocument assembles the wrapper that merges the given PDFs,
// one full page range each, with a table-of-contents entry and running
// header per artifact. Page one is the table of contents, so the first
// included artifact starts at page two.
func buildCombinedDocument(pdfPaths []string, suffix string) string {
	var b strings.Builder
	b.WriteString(combinedPreamble)
	for i, pdf := range pdfPaths {
		stem := strings.TrimSuffix(filepath.Base(pdf), filepath.Ext(pdf))
		name := displayName(stem, suffix)
		b.WriteString("\\phantomsection\n")
		fmt.Fprintf(&b, "\\setCurrentSection{\\texttt{%s}}\n", name)
		fmt.Fprintf(&b, "\\addcontentsline{toc}{section}{\\texttt{%s}}\n", name)
		fmt.Fprintf(&b, "\\includepdf[pages=-,pagecommand={\\thispagestyle{fancy}\\setcounter{page}{%d}},offset=0 -1cm]{%s}\n",
			i+2, pdf)
	}
	b.WriteString("\\end{document}\n")
	return b.String()
}
