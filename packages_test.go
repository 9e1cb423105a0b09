package tabwrap_test

import (
	"reflect"
	"testing"

	tabwrap "github.com/tabwrap/go-tabwrap"
)

// ---------------------------------------------------------------------------
// TestDetectPackages - Package inference from fragment content
// ---------------------------------------------------------------------------

func TestDetectPackages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "plain tabular needs nothing",
			content: "\\begin{tabular}{ll}\na & b \\\\\n\\end{tabular}",
			want:    []string{},
		},
		{
			name:    "booktabs rules",
			content: "\\begin{tabular}{ll}\n\\toprule\na & b \\\\\n\\bottomrule\n\\end{tabular}",
			want:    []string{"booktabs"},
		},
		{
			name:    "cmidrule alone",
			content: "\\begin{tabular}{ll}\n\\cmidrule(lr){1-2}\na & b \\\\\n\\end{tabular}",
			want:    []string{"booktabs"},
		},
		{
			name:    "tabularx environment form",
			content: "\\begin{tabularx}{\\textwidth}{lX}\na & b \\\\\n\\end{tabularx}",
			want:    []string{"tabularx"},
		},
		{
			name:    "longtable environment form",
			content: "\\begin{longtable}{ll}\na & b \\\\\n\\end{longtable}",
			want:    []string{"longtable"},
		},
		{
			name: "threeparttable with tablenotes",
			content: "\\begin{threeparttable}\n\\begin{tabular}{ll}\na & b \\\\\n\\end{tabular}\n" +
				"\\begin{tablenotes}\n\\item note\n\\end{tablenotes}\n\\end{threeparttable}",
			want: []string{"threeparttable"},
		},
		{
			name:    "multirow command",
			content: "\\begin{tabular}{ll}\n\\multirow{2}{*}{a} & b \\\\\n\\end{tabular}",
			want:    []string{"multirow"},
		},
		{
			name:    "siunitx commands",
			content: "\\begin{tabular}{ll}\n\\SI{5}{\\meter} & \\num{1000} \\\\\n\\end{tabular}",
			want:    []string{"siunitx"},
		},
		{
			name:    "siunitx S column in spec",
			content: "\\begin{tabular}{lS[table-format=2.1]}\na & 1.2 \\\\\n\\end{tabular}",
			want:    []string{"siunitx"},
		},
		{
			name:    "bare S column in spec",
			content: "\\begin{tabular}{S}\n1.2 \\\\\n\\end{tabular}",
			want:    []string{"siunitx"},
		},
		{
			name:    "capital S in body is not siunitx",
			content: "\\begin{tabular}{ll}\nSOMETHING & {SPECIAL} \\\\\n\\end{tabular}",
			want:    []string{},
		},
		{
			name:    "checkmark needs amssymb",
			content: "\\begin{tabular}{ll}\n\\checkmark & b \\\\\n\\end{tabular}",
			want:    []string{"amssymb"},
		},
		{
			name: "combined detection is sorted",
			content: "\\begin{tabularx}{\\textwidth}{lS}\n\\toprule\n" +
				"\\SI{1}{\\meter} & b \\\\\n\\bottomrule\n\\end{tabularx}",
			want: []string{"booktabs", "siunitx", "tabularx"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tabwrap.DetectPackages(tt.content)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DetectPackages() = %v, want %v", got, tt.want)
			}
		})
	}
}

// Detection is a pure function; repeated calls must agree exactly.
func TestDetectPackagesDeterministic(t *testing.T) {
	t.Parallel()

	content := "\\begin{tabularx}{\\textwidth}{lS}\n\\toprule\n" +
		"\\multirow{2}{*}{a} & \\num{1} \\\\\n\\end{tabularx}"

	first := tabwrap.DetectPackages(content)
	for i := 0; i < 10; i++ {
		if got := tabwrap.DetectPackages(content); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d: got %v, want %v", i, got, first)
		}
	}
}
