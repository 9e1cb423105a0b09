package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: tabwrap <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  compile    Wrap LaTeX table fragments and compile them")
	fmt.Fprintln(w, "  doctor     Check external tool availability")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'tabwrap help <command>' for details on a specific command.")
}

// printCompileUsage prints usage for the compile command.
func printCompileUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: tabwrap compile <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Wrap LaTeX table fragments into compilable documents and produce")
	fmt.Fprintln(w, "PDF, PNG, or SVG output.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    A .tex fragment file or a directory of fragments")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default: next to source)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --suffix <s>          Output file suffix (default: _compiled)")
	fmt.Fprintln(w, "      --png                 Produce a cropped PNG instead of a PDF")
	fmt.Fprintln(w, "      --svg                 Produce an SVG instead of a PDF")
	fmt.Fprintln(w, "      --dpi <n>             PNG resolution (default: 300)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "  -p, --packages <list>     Extra LaTeX packages, comma-separated")
	fmt.Fprintln(w, "  -l, --landscape           Landscape page orientation")
	fmt.Fprintln(w, "      --no-resize           Disable width auto-rescale")
	fmt.Fprintln(w, "      --header              Print the source file name above the table")
	fmt.Fprintln(w, "      --keep-tex            Keep intermediate .tex/.aux/.log files")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Batch:")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto, implies --parallel)")
	fmt.Fprintln(w, "      --parallel            Compile files concurrently")
	fmt.Fprintln(w, "      --combine             Merge results into one PDF with a TOC")
	fmt.Fprintln(w, "  -r, --recursive           Search subdirectories for .tex files")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "compile":
		printCompileUsage(env.Stdout)
	case "doctor":
		fmt.Fprintln(env.Stdout, "Usage: tabwrap doctor [--json]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Check that pdflatex and the poppler tools are installed.")
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: tabwrap version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: tabwrap help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
