package tabwrap

import (
	"fmt"
	"strings"
)

// Rule-drawing commands are exempt from the row-terminator check: they are
// legal mid-table lines that never end in \\.
var ruleCommands = []string{`\toprule`, `\midrule`, `\bottomrule`, `\cmidrule`}

// CheckSyntax runs lightweight sanity checks that catch common mistakes
// before the engine sees the document: unmatched braces, and rows that
// contain an alignment tab but no row terminator. It is a heuristic pass;
// an empty result does not guarantee the engine will accept the fragment.
func CheckSyntax(content string) []string {
	var issues []string

	if diff := strings.Count(content, "{") - strings.Count(content, "}"); diff != 0 {
		if diff > 0 {
			issues = append(issues, fmt.Sprintf("unmatched braces: %d extra {", diff))
		} else {
			issues = append(issues, fmt.Sprintf("unmatched braces: %d missing }", -diff))
		}
	}

	if containsAnyEnv(content, innerTableEnvs) {
		for i, line := range strings.Split(content, "\n") {
			line = strings.TrimSpace(line)
			if line == "" || !strings.Contains(line, "&") {
				continue
			}
			if strings.HasSuffix(line, `\\`) || strings.HasSuffix(line, `\`) {
				continue
			}
			if containsRuleCommand(line) {
				continue
			}
			issues = append(issues, fmt.Sprintf(`line %d contains & but does not end with \\`, i+1))
		}
	}

	return issues
}

func containsRuleCommand(line string) bool {
	for _, cmd := range ruleCommands {
		if strings.Contains(line, cmd) {
			return true
		}
	}
	return false
}
