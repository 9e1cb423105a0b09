package tabwrap

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// ErrorKind classifies an engine diagnostic.
type ErrorKind string

// Recognized diagnostic kinds.
const (
	KindMissingPackage      ErrorKind = "missing_package"
	KindMisplacedAlignment  ErrorKind = "misplaced_alignment"
	KindUndefinedControl    ErrorKind = "undefined_control_sequence"
	KindEnvironmentMismatch ErrorKind = "environment_mismatch"
	KindRunawayArgument     ErrorKind = "runaway_argument"
)

// CompileError is one classified engine diagnostic.
type CompileError struct {
	SourceFile string
	Line       int // 0 when the log carries no line number
	Kind       ErrorKind
	Suggestion string
	RawMatch   string
}

// logPattern pairs a detection pattern with a suggestion template. The
// table is data, not a conditional chain: new engine diagnostics are
// supported by appending a row.
type logPattern struct {
	kind    ErrorKind
	re      *regexp.Regexp
	suggest func(groups []string) string
}

var logPatterns = []logPattern{
	{
		kind: KindMissingPackage,
		re:   regexp.MustCompile("! LaTeX Error: File `([^']+)\\.sty' not found"),
		suggest: func(g []string) string {
			return fmt.Sprintf("Install missing package: %[1]s. Try: tlmgr install %[1]s", g[1])
		},
	},
	{
		kind: KindMisplacedAlignment,
		re:   regexp.MustCompile(`! Misplaced alignment tab character &`),
		suggest: func([]string) string {
			return `Check & placement in tabular environment and ensure lines end with \\`
		},
	},
	{
		kind: KindUndefinedControl,
		re:   regexp.MustCompile(`! Undefined control sequence.*\n.*\\([a-zA-Z]+)`),
		suggest: func(g []string) string {
			return fmt.Sprintf(`Unknown command: \%s. Check spelling or add required package`, g[1])
		},
	},
	{
		kind: KindEnvironmentMismatch,
		re:   regexp.MustCompile(`! LaTeX Error: \\begin\{([^}]+)\} on input line (\d+) ended by \\end\{([^}]+)\}`),
		suggest: func(g []string) string {
			return fmt.Sprintf(`Environment mismatch: \begin{%s} ended by \end{%s} on line %s`, g[1], g[3], g[2])
		},
	},
	{
		kind: KindRunawayArgument,
		re:   regexp.MustCompile(`! Runaway argument\?`),
		suggest: func([]string) string {
			return "Missing closing brace or unexpected line break in command argument"
		},
	},
}

// lineRefPattern matches TeX's "l.<n>" line reference emitted shortly
// after an error message.
var lineRefPattern = regexp.MustCompile(`l\.(\d+)`)

// lineRefWindow bounds how far past a match the line reference is sought.
const lineRefWindow = 200

// ParseLog extracts structured errors from engine log text. Errors are
// returned in order of appearance in the log. An empty result means no
// known signature matched; callers fall back to the raw engine stderr.
func ParseLog(logContent, sourceFile string) []CompileError {
	type located struct {
		offset int
		err    CompileError
	}
	var found []located

	for _, p := range logPatterns {
		for _, idx := range p.re.FindAllStringSubmatchIndex(logContent, -1) {
			groups := submatches(logContent, idx)
			found = append(found, located{
				offset: idx[0],
				err: CompileError{
					SourceFile: sourceFile,
					Line:       lookupLine(logContent, idx[0]),
					Kind:       p.kind,
					Suggestion: p.suggest(groups),
					RawMatch:   logContent[idx[0]:idx[1]],
				},
			})
		}
	}

	sort.SliceStable(found, func(i, j int) bool { return found[i].offset < found[j].offset })

	errs := make([]CompileError, len(found))
	for i, f := range found {
		errs[i] = f.err
	}
	return errs
}

// submatches converts a SubmatchIndex slice into group strings, with ""
// for groups that did not participate.
func submatches(s string, idx []int) []string {
	groups := make([]string, len(idx)/2)
	for i := range groups {
		lo, hi := idx[2*i], idx[2*i+1]
		if lo >= 0 {
			groups[i] = s[lo:hi]
		}
	}
	return groups
}

// lookupLine finds the "l.<n>" reference within the window following an
// error match. Returns 0 when absent.
func lookupLine(logContent string, from int) int {
	to := from + lineRefWindow
	if to > len(logContent) {
		to = len(logContent)
	}
	m := lineRefPattern.FindStringSubmatch(logContent[from:to])
	if m == nil {
		return 0
	}
	var n int
	fmt.Sscanf(m[1], "%d", &n)
	return n
}

// FormatErrorReport renders errors into a readable report: file name,
// optional line number, the raw engine text, then the suggestion, one
// block per error.
func FormatErrorReport(errs []CompileError) string {
	if len(errs) == 0 {
		return "Compilation failed with unknown error."
	}

	var b strings.Builder
	for _, e := range errs {
		b.WriteString(e.SourceFile)
		if e.Line > 0 {
			fmt.Fprintf(&b, " (line %d)", e.Line)
		}
		b.WriteString(":\n")
		fmt.Fprintf(&b, "  error: %s\n", strings.TrimSpace(e.RawMatch))
		fmt.Fprintf(&b, "  fix: %s\n", e.Suggestion)
	}
	return strings.TrimRight(b.String(), "\n")
}

// CompileFailure is the error captured in an Outcome when the engine
// rejected a document. Errors holds the classified diagnostics; when
// classification found nothing it is empty and Stderr carries the raw
// engine output.
type CompileFailure struct {
	Errors []CompileError
	Stderr string
}

func (f *CompileFailure) Error() string {
	if len(f.Errors) > 0 {
		return fmt.Sprintf("%v:\n%s", ErrCompilation, FormatErrorReport(f.Errors))
	}
	msg := strings.TrimSpace(f.Stderr)
	if msg == "" {
		msg = "unknown compilation error"
	}
	return fmt.Sprintf("%v: %s", ErrCompilation, msg)
}

// Unwrap lets errors.Is(err, ErrCompilation) succeed on failures captured
// in outcomes.
func (f *CompileFailure) Unwrap() error { return ErrCompilation }

// FormatBatchReport lists every failed unit with its error, for the
// aggregated failure report and for partial-success warnings.
func FormatBatchReport(result BatchResult) string {
	if !result.HasFailures() {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d of %d file(s) failed to compile:\n",
		result.FailureCount(), result.SuccessCount()+result.FailureCount())
	for _, o := range result.Failures {
		fmt.Fprintf(&b, "  %s: %v\n", o.Unit.SourcePath, o.Err)
	}
	return strings.TrimRight(b.String(), "\n")
}
