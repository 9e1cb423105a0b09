package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"

	tabwrap "github.com/tabwrap/go-tabwrap"
	"github.com/tabwrap/go-tabwrap/internal/config"
	"github.com/tabwrap/go-tabwrap/internal/fileutil"
	"github.com/tabwrap/go-tabwrap/internal/hints"
)

var (
	successMark = color.New(color.FgGreen).SprintFunc()
	failureMark = color.New(color.FgRed).SprintFunc()
	warnMark    = color.New(color.FgYellow).SprintFunc()
)

// runCompile orchestrates a compile run: load config, merge flags,
// discover fragments, check tooling, compile, and report.
func runCompile(ctx context.Context, positionalArgs []string, flags *wrapFlags, env *Environment) error {
	if err := validateWorkers(flags.batch.workers); err != nil {
		return err
	}

	cfg := env.Config
	if flags.common.config != "" {
		loaded, err := config.LoadConfig(flags.common.config)
		if err != nil {
			return fmt.Errorf("loading config: %w%s", err,
				hints.ForConfigNotFound(config.SearchedPaths(flags.common.config)))
		}
		cfg = loaded
	}
	mergeFlags(flags, cfg)

	opts, err := buildOptions(cfg)
	if err != nil {
		return err
	}

	if len(positionalArgs) == 0 {
		return fmt.Errorf("%w: provide a .tex file or a directory", ErrNoInput)
	}
	inputPath := positionalArgs[0]

	files, err := discoverTexFiles(inputPath, opts.Suffix, flags.batch.recursive)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w in %s%s", ErrNoTexFiles, inputPath,
			hints.ForNoInputFiles(flags.batch.recursive))
	}

	if err := tabwrap.CheckDependencies().Check(opts.Format); err != nil {
		hint := hints.ForMissingEngine()
		if opts.Format != tabwrap.FormatPDF {
			hint = hints.ForMissingRasterizer()
		}
		return fmt.Errorf("%w%s", err, hint)
	}

	if cfg.Output.DefaultDir != "" {
		if err := os.MkdirAll(cfg.Output.DefaultDir, 0o750); err != nil {
			return fmt.Errorf("creating output directory: %w%s", err, hints.ForOutputDirectory())
		}
	}

	units := make([]tabwrap.Unit, len(files))
	for i, f := range files {
		content, err := fileutil.ValidateTexFile(f)
		if err != nil {
			return err
		}
		outDir := cfg.Output.DefaultDir
		if outDir == "" {
			outDir = filepath.Dir(f)
		}
		units[i] = tabwrap.Unit{SourcePath: f, Content: content, OutputDir: outDir, Options: opts}
	}

	svc := tabwrap.New()
	start := env.Now()
	result, err := svc.Run(ctx, units, tabwrap.BatchOptions{
		Parallel:   cfg.Batch.Parallel,
		MaxWorkers: cfg.Batch.MaxWorkers,
	})
	if err != nil {
		return err
	}

	printResults(result, flags.common.quiet, flags.common.verbose, env)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Total: %v\n", env.Now().Sub(start).Round(time.Millisecond))
	}
	return nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *wrapFlags, cfg *config.Config) {
	if flags.output.dir != "" {
		cfg.Output.DefaultDir = flags.output.dir
	}
	if flags.output.suffix != "" {
		cfg.Output.Suffix = flags.output.suffix
	}
	if flags.output.png {
		cfg.Output.Format = tabwrap.FormatPNG
	}
	if flags.output.svg {
		cfg.Output.Format = tabwrap.FormatSVG
	}
	if flags.output.dpi > 0 {
		cfg.Output.DPI = flags.output.dpi
	}

	if len(flags.compile.packages) > 0 {
		cfg.Compile.Packages = append(cfg.Compile.Packages, flags.compile.packages...)
	}
	if flags.compile.landscape {
		cfg.Compile.Landscape = true
	}
	if flags.compile.noResize {
		cfg.Compile.NoRescale = true
	}
	if flags.compile.header {
		cfg.Compile.ShowFilename = true
	}
	if flags.compile.keepTex {
		cfg.Compile.KeepTex = true
	}

	if flags.batch.workers > 0 {
		cfg.Batch.MaxWorkers = flags.batch.workers
		cfg.Batch.Parallel = true
	}
	if flags.batch.parallel {
		cfg.Batch.Parallel = true
	}
	if flags.batch.combine {
		cfg.Compile.Combine = true
	}
}

// buildOptions maps merged config onto library options and validates them
// so option errors surface before any file is touched.
func buildOptions(cfg *config.Config) (tabwrap.Options, error) {
	opts := tabwrap.DefaultOptions()
	if cfg.Output.Suffix != "" {
		opts.Suffix = cfg.Output.Suffix
	}
	if cfg.Output.Format != "" {
		opts.Format = cfg.Output.Format
	}
	if cfg.Output.DPI > 0 {
		opts.DPI = cfg.Output.DPI
	}
	opts.Packages = cfg.Compile.Packages
	opts.Landscape = cfg.Compile.Landscape
	opts.NoRescale = cfg.Compile.NoRescale
	opts.ShowFilename = cfg.Compile.ShowFilename
	opts.KeepBuildFiles = cfg.Compile.KeepTex
	opts.Combine = cfg.Compile.Combine

	if err := opts.Validate(); err != nil {
		return tabwrap.Options{}, err
	}
	return opts, nil
}

// printResults reports per-file outcomes and the aggregate line. Failures
// always go to stderr; quiet suppresses success output only.
func printResults(result *tabwrap.RunResult, quiet, verbose bool, env *Environment) {
	for _, o := range result.Batch.Failures {
		fmt.Fprintf(env.Stderr, "%s %s: %v\n", failureMark("FAILED"), o.Unit.SourcePath, o.Err)
	}

	if !quiet {
		for _, o := range result.Batch.Successes {
			if verbose {
				fmt.Fprintf(env.Stdout, "%s %s -> %s (%v)\n", successMark("OK"),
					o.Unit.SourcePath, o.OutputPath, o.Duration.Round(time.Millisecond))
			} else {
				fmt.Fprintf(env.Stdout, "%s Created %s\n", successMark("OK"), o.OutputPath)
			}
		}
		if result.OutputPath != "" && len(result.Batch.Successes) > 1 {
			fmt.Fprintf(env.Stdout, "Output: %s\n", result.OutputPath)
		}
	}

	if result.Batch.HasFailures() {
		fmt.Fprintf(env.Stderr, "%s %d of %d file(s) failed\n", warnMark("WARNING"),
			result.Batch.FailureCount(),
			result.Batch.SuccessCount()+result.Batch.FailureCount())
	} else if !quiet && len(result.Batch.Successes) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded\n", result.Batch.SuccessCount())
	}
}
