package tabwrap

import (
	"fmt"
	"strings"
)

// Verdict is the result of structural validation. Reason is empty exactly
// when Valid is true. Reason substrings ("mismatched", "must contain a
// table environment", "No supported table environment found", ...) are part
// of the contract; callers match on them programmatically.
type Verdict struct {
	Valid  bool
	Reason string
}

// Environment names recognized at the top level of a fragment, in
// validation order.
var supportedEnvs = []string{"tabular", "tabularx", "longtable", "table", "threeparttable"}

// Environments that satisfy a wrapper's "contains a table" requirement.
var innerTableEnvs = []string{"tabular", "tabularx", "longtable"}

// envSpan is a begin/end marker pair for one environment occurrence.
// Spans exist only during validation.
type envSpan struct {
	name  string
	start int // offset of the begin marker
	end   int // offset of the matching end marker
}

func beginMarker(name string) string { return `\begin{` + name + `}` }
func endMarker(name string) string   { return `\end{` + name + `}` }

// Validate classifies content as a well-formed table-environment tree
// without parsing LaTeX generally. It is a pure function and always
// returns a verdict, never an error.
//
// All matching is case-sensitive: lowercase environment names only, so a
// stray capital letter in prose cannot satisfy any rule.
func Validate(content string) Verdict {
	if strings.TrimSpace(content) == "" {
		return invalid("empty content")
	}

	if !anyEnvPresent(content) {
		return invalid("No supported table environment found. Supported environments: " +
			strings.Join(supportedEnvs, ", "))
	}

	for _, name := range supportedEnvs {
		begins := strings.Count(content, beginMarker(name))
		ends := strings.Count(content, endMarker(name))
		if begins != ends {
			return invalid(fmt.Sprintf("mismatched %s environment tags", name))
		}
	}

	// Composition rules. Tag counts are balanced at this point, so each
	// begin marker pairs with the next end marker of the same name.
	for _, span := range findSpans(content, "threeparttable") {
		if !containsAnyEnv(body(content, span), innerTableEnvs) {
			return invalid("threeparttable must contain a table environment")
		}
	}
	for _, span := range findSpans(content, "table") {
		inner := body(content, span)
		if strings.Contains(inner, beginMarker("longtable")) {
			return invalid("longtable cannot be used inside table")
		}
		if !containsAnyEnv(inner, []string{"tabular", "tabularx", "threeparttable"}) {
			return invalid("table must contain a table environment")
		}
	}

	if needsColumnSpec(content) && !hasColumnSpecToken(content) {
		return invalid("missing or invalid column specification")
	}

	return Verdict{Valid: true}
}

func invalid(reason string) Verdict {
	return Verdict{Valid: false, Reason: reason}
}

func anyEnvPresent(content string) bool {
	for _, name := range supportedEnvs {
		if strings.Contains(content, beginMarker(name)) || strings.Contains(content, endMarker(name)) {
			return true
		}
	}
	return false
}

// findSpans pairs the i-th begin marker with the i-th end marker. Nested
// occurrences of the same table environment do not occur in practice, so
// positional pairing is sufficient.
func findSpans(content, name string) []envSpan {
	var spans []envSpan
	begin, end := beginMarker(name), endMarker(name)
	searchFrom, endFrom := 0, 0
	for {
		b := strings.Index(content[searchFrom:], begin)
		if b < 0 {
			return spans
		}
		b += searchFrom
		e := strings.Index(content[endFrom:], end)
		if e < 0 {
			return spans
		}
		e += endFrom
		spans = append(spans, envSpan{name: name, start: b, end: e})
		searchFrom = b + len(begin)
		endFrom = e + len(end)
	}
}

// body returns the text between a span's markers; empty when the pairing
// is inverted (an end marker preceding its begin).
func body(content string, span envSpan) string {
	from := span.start + len(beginMarker(span.name))
	if from >= span.end {
		return ""
	}
	return content[from:span.end]
}

func containsAnyEnv(content string, names []string) bool {
	for _, name := range names {
		if strings.Contains(content, beginMarker(name)) {
			return true
		}
	}
	return false
}

// needsColumnSpec reports whether the fragment holds an environment that
// takes a column specification argument.
func needsColumnSpec(content string) bool {
	return containsAnyEnv(content, innerTableEnvs)
}

// hasColumnSpecToken scans for anything resembling a column specification:
// an alignment letter, an @{...} decoration, or a vertical rule opening a
// brace group. This is a best-effort guard, not a column-spec grammar; it
// can miss exotic specs and accept brace groups that are not specs at all
// (e.g. the "{l" inside "\begin{longtable}" already satisfies it).
func hasColumnSpecToken(content string) bool {
	for _, tok := range []string{"{@", "{|", "{l", "{c", "{r", "{p", "{S", "{X"} {
		if strings.Contains(content, tok) {
			return true
		}
	}
	return false
}
