package tabwrap_test

import (
	"strings"
	"testing"

	tabwrap "github.com/tabwrap/go-tabwrap"
)

// ---------------------------------------------------------------------------
// TestValidate - Structural validation verdicts
// ---------------------------------------------------------------------------

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		content    string
		wantValid  bool
		wantReason string // substring match; empty means don't care
	}{
		{
			name:      "minimal tabular",
			content:   "\\begin{tabular}{ll}\na & b \\\\\n\\end{tabular}",
			wantValid: true,
		},
		{
			name:      "tabularx with width",
			content:   "\\begin{tabularx}{\\textwidth}{lX}\na & b \\\\\n\\end{tabularx}",
			wantValid: true,
		},
		{
			name:      "longtable",
			content:   "\\begin{longtable}{lcr}\na & b & c \\\\\n\\end{longtable}",
			wantValid: true,
		},
		{
			name: "table wrapping tabular",
			content: "\\begin{table}\n\\begin{tabular}{ll}\na & b \\\\\n" +
				"\\end{tabular}\n\\end{table}",
			wantValid: true,
		},
		{
			name: "threeparttable wrapping tabular",
			content: "\\begin{threeparttable}\n\\begin{tabular}{ll}\na & b \\\\\n" +
				"\\end{tabular}\n\\end{threeparttable}",
			wantValid: true,
		},
		{
			name:       "empty content",
			content:    "",
			wantValid:  false,
			wantReason: "empty content",
		},
		{
			name:       "whitespace only",
			content:    "   \n\t  ",
			wantValid:  false,
			wantReason: "empty content",
		},
		{
			name:       "no table environment",
			content:    "just some prose about tables",
			wantValid:  false,
			wantReason: "No supported table environment found",
		},
		{
			name:       "unsupported environment only",
			content:    "\\begin{matrix}1 & 2\\end{matrix}",
			wantValid:  false,
			wantReason: "No supported table environment found",
		},
		{
			name:       "missing end tabular",
			content:    "\\begin{tabular}{ll}\na & b \\\\\n",
			wantValid:  false,
			wantReason: "mismatched tabular environment tags",
		},
		{
			name:       "missing begin longtable",
			content:    "a & b \\\\\n\\end{longtable}",
			wantValid:  false,
			wantReason: "mismatched longtable environment tags",
		},
		{
			name: "longtable inside table",
			content: "\\begin{table}\n\\begin{longtable}{ll}\na & b \\\\\n" +
				"\\end{longtable}\n\\end{table}",
			wantValid:  false,
			wantReason: "longtable cannot be used inside table",
		},
		{
			name:       "table without inner environment",
			content:    "\\begin{table}\nsome caption text\n\\end{table}",
			wantValid:  false,
			wantReason: "table must contain a table environment",
		},
		{
			name:       "threeparttable without inner environment",
			content:    "\\begin{threeparttable}\nnotes only\n\\end{threeparttable}",
			wantValid:  false,
			wantReason: "threeparttable must contain a table environment",
		},
		{
			name:       "tabular without column spec",
			content:    "\\begin{tabular}\na & b \\\\\n\\end{tabular}",
			wantValid:  false,
			wantReason: "missing or invalid column specification",
		},
		{
			name:      "column spec with decorations",
			content:   "\\begin{tabular}{@{}l|r@{}}\na & b \\\\\n\\end{tabular}",
			wantValid: true,
		},
		{
			name:      "siunitx S column",
			content:   "\\begin{tabular}{S[table-format=1.3]}\n1.234 \\\\\n\\end{tabular}",
			wantValid: true,
		},
		{
			name:       "uppercase environment not recognized",
			content:    "\\begin{Tabular}{ll}\na & b \\\\\n\\end{Tabular}",
			wantValid:  false,
			wantReason: "No supported table environment found",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v := tabwrap.Validate(tt.content)
			if v.Valid != tt.wantValid {
				t.Fatalf("Validate() valid = %v, want %v (reason %q)", v.Valid, tt.wantValid, v.Reason)
			}
			if tt.wantReason != "" && !strings.Contains(v.Reason, tt.wantReason) {
				t.Errorf("Validate() reason = %q, want substring %q", v.Reason, tt.wantReason)
			}
			if v.Valid && v.Reason != "" {
				t.Errorf("valid verdict carries reason %q", v.Reason)
			}
		})
	}
}

// Two sequential table environments must both satisfy the composition
// rules independently.
func TestValidateMultipleSpans(t *testing.T) {
	t.Parallel()

	content := "\\begin{table}\n\\begin{tabular}{ll}\na & b \\\\\n\\end{tabular}\n\\end{table}\n" +
		"\\begin{table}\nonly a caption\n\\end{table}"

	v := tabwrap.Validate(content)
	if v.Valid {
		t.Fatal("expected invalid verdict for second empty table span")
	}
	if !strings.Contains(v.Reason, "table must contain a table environment") {
		t.Errorf("reason = %q", v.Reason)
	}
}
