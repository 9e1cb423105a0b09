package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// outputFlags holds output destination and format flags.
type outputFlags struct {
	dir    string
	suffix string
	png    bool
	svg    bool
	dpi    int
}

// compileFlags holds document assembly flags.
type compileFlags struct {
	packages  []string
	landscape bool
	noResize  bool
	header    bool
	keepTex   bool
}

// batchFlags holds batch scheduling and merge flags.
type batchFlags struct {
	workers   int
	parallel  bool
	combine   bool
	recursive bool
}

// wrapFlags holds all flags for the compile command.
type wrapFlags struct {
	common  commonFlags
	output  outputFlags
	compile compileFlags
	batch   batchFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addOutputFlags adds output destination and format flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVarP(&f.dir, "output", "o", "", "output directory (default: next to source)")
	fs.StringVar(&f.suffix, "suffix", "", "output file suffix (default: _compiled)")
	fs.BoolVar(&f.png, "png", false, "produce a cropped PNG instead of a PDF")
	fs.BoolVar(&f.svg, "svg", false, "produce an SVG instead of a PDF")
	fs.IntVar(&f.dpi, "dpi", 0, "PNG resolution (default: 300)")
}

// addCompileFlags adds document assembly flags to a FlagSet.
func addCompileFlags(fs *flag.FlagSet, f *compileFlags) {
	fs.StringSliceVarP(&f.packages, "packages", "p", nil, "extra LaTeX packages (comma-separated or repeated)")
	fs.BoolVarP(&f.landscape, "landscape", "l", false, "landscape page orientation")
	fs.BoolVar(&f.noResize, "no-resize", false, "disable width auto-rescale")
	fs.BoolVar(&f.header, "header", false, "print the source file name above the table")
	fs.BoolVar(&f.keepTex, "keep-tex", false, "keep intermediate .tex/.aux/.log files")
}

// addBatchFlags adds batch scheduling and merge flags to a FlagSet.
func addBatchFlags(fs *flag.FlagSet, f *batchFlags) {
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.parallel, "parallel", false, "compile files concurrently")
	fs.BoolVar(&f.combine, "combine", false, "merge results into one PDF with a table of contents")
	fs.BoolVarP(&f.recursive, "recursive", "r", false, "search subdirectories for .tex files")
}

// parseCompileFlags parses compile command flags and returns positional args.
func parseCompileFlags(args []string) (*wrapFlags, []string, error) {
	fs := flag.NewFlagSet("compile", flag.ContinueOnError)
	f := &wrapFlags{}

	addCommonFlags(fs, &f.common)
	addOutputFlags(fs, &f.output)
	addCompileFlags(fs, &f.compile)
	addBatchFlags(fs, &f.batch)

	fs.Usage = func() { printCompileUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
