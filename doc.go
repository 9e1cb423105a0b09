// Package tabwrap wraps LaTeX table fragments into compilable documents
// and turns them into PDFs or images using an external LaTeX engine.
//
// # Quick Start
//
// Create a service and compile a fragment:
//
//	svc := tabwrap.New()
//
//	outcome := svc.Compile(ctx, tabwrap.Unit{
//	    SourcePath: "results.tex",
//	    OutputDir:  "out",
//	    Options:    tabwrap.DefaultOptions(),
//	})
//	if outcome.Err != nil {
//	    log.Fatal(outcome.Err)
//	}
//	fmt.Println(outcome.OutputPath)
//
// The fragment is validated structurally, required packages are detected,
// a complete document is assembled, and pdflatex is invoked. Intermediate
// build files (.tex, .aux, .log) are removed unless Options.KeepBuildFiles
// is set.
//
// # Compilation Pipeline
//
// Each unit goes through these stages:
//
//  1. Structural validation (environment tree, balanced begin/end tags)
//  2. Syntax sanity checks (unmatched braces, unterminated rows)
//  3. Package detection (booktabs, siunitx, longtable, ...)
//  4. Document assembly (geometry, rescale wrapper, optional header)
//  5. Engine invocation, with log classification on failure
//  6. Optional rasterization to PNG or conversion to SVG
//
// # Batch Processing
//
// Many independent fragments compile in one call; failures never abort the
// rest, and outcome order always matches input order:
//
//	result, err := svc.Run(ctx, units, tabwrap.BatchOptions{
//	    Parallel:   true,
//	    MaxWorkers: 4,
//	})
//
// With Options.Combine set and more than one success, the individual PDFs
// are merged into a single document with a generated table of contents.
//
// # Engine Requirements
//
// Compilation requires pdflatex on PATH (TeX Live, MiKTeX). PNG output
// additionally requires pdftoppm and SVG output pdftocairo (poppler-utils).
// Use CheckDependencies to probe for them.
package tabwrap
