package tabwrap

import (
	"regexp"
	"sort"
	"strings"
)

// detectionRule maps content markers to the package they imply. Any rule
// may fire independently; the result is the union.
type detectionRule struct {
	markers []string
	pkg     string
}

// The environment-shaped markers list both the command token and the
// begin form: \begin{tabularx} does not contain the substring \tabularx.
var detectionRules = []detectionRule{
	{markers: []string{`\toprule`, `\midrule`, `\bottomrule`, `\cmidrule`}, pkg: "booktabs"},
	{markers: []string{`\tabularx`, `\begin{tabularx}`}, pkg: "tabularx"},
	{markers: []string{`\longtable`, `\begin{longtable}`}, pkg: "longtable"},
	{markers: []string{`\threeparttable`, `\tablenotes`, `\begin{threeparttable}`, `\begin{tablenotes}`}, pkg: "threeparttable"},
	{markers: []string{`\multirow`}, pkg: "multirow"},
	{markers: []string{`\SI`, `\num`, `\sisetup`}, pkg: "siunitx"},
	{markers: []string{`\checkmark`}, pkg: "amssymb"},
}

// sColumnPattern matches a capital-S column letter, optionally followed by
// a bracketed option list (S[table-format=1.3]). Applied only to extracted
// column-spec arguments, so a capital S in prose never matches.
var sColumnPattern = regexp.MustCompile(`S(\[[^\]]*\])?`)

// DetectPackages infers the document packages a fragment needs from the
// commands and column specifiers it uses. The result is deduplicated and
// sorted; plain fragments yield an empty set. Pure function of content.
func DetectPackages(content string) []string {
	set := make(map[string]struct{})

	for _, rule := range detectionRules {
		for _, marker := range rule.markers {
			if strings.Contains(content, marker) {
				set[rule.pkg] = struct{}{}
				break
			}
		}
	}

	// siunitx S columns live inside the column-spec argument, never in
	// table body text.
	for _, spec := range columnSpecs(content) {
		if sColumnPattern.MatchString(spec) {
			set["siunitx"] = struct{}{}
			break
		}
	}

	pkgs := make([]string, 0, len(set))
	for pkg := range set {
		pkgs = append(pkgs, pkg)
	}
	sort.Strings(pkgs)
	return pkgs
}

// Environments whose begin marker takes a column-spec argument. tabularx
// and longtable-in-tabularx style take a width argument first.
var specEnvs = []struct {
	marker    string
	skipWidth bool
}{
	{marker: `\begin{tabular}`},
	{marker: `\begin{longtable}`},
	{marker: `\begin{tabularx}`, skipWidth: true},
}

// columnSpecs extracts the column-spec argument of every table environment
// in the fragment: the brace group following the begin marker, after an
// optional [placement] and, for tabularx, the width group.
func columnSpecs(content string) []string {
	var specs []string
	for _, env := range specEnvs {
		rest := content
		for {
			i := strings.Index(rest, env.marker)
			if i < 0 {
				break
			}
			rest = rest[i+len(env.marker):]

			after := skipOptionalArg(rest)
			if env.skipWidth {
				_, after = braceGroup(after)
			}
			spec, _ := braceGroup(after)
			if spec != "" {
				specs = append(specs, spec)
			}
		}
	}
	return specs
}

// skipOptionalArg advances past a leading [...] argument, if present.
func skipOptionalArg(s string) string {
	if !strings.HasPrefix(s, "[") {
		return s
	}
	if end := strings.IndexByte(s, ']'); end >= 0 {
		return s[end+1:]
	}
	return s
}

// braceGroup returns the contents of a leading balanced {...} group and
// the text after it. Column specs nest braces (@{...}, *{n}{...}), so a
// depth counter is required rather than an IndexByte scan.
func braceGroup(s string) (group, rest string) {
	if !strings.HasPrefix(s, "{") {
		return "", s
	}
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[1:i], s[i+1:]
			}
		}
	}
	return "", s
}
