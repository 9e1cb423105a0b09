package tabwrap_test

import (
	"errors"
	"testing"

	tabwrap "github.com/tabwrap/go-tabwrap"
)

// ---------------------------------------------------------------------------
// TestOptionsValidate - Option consistency
// ---------------------------------------------------------------------------

func TestOptionsValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*tabwrap.Options)
		wantErr error
	}{
		{
			name:    "defaults are valid",
			mutate:  func(*tabwrap.Options) {},
			wantErr: nil,
		},
		{
			name:    "png format",
			mutate:  func(o *tabwrap.Options) { o.Format = tabwrap.FormatPNG },
			wantErr: nil,
		},
		{
			name:    "svg format",
			mutate:  func(o *tabwrap.Options) { o.Format = tabwrap.FormatSVG },
			wantErr: nil,
		},
		{
			name:    "unknown format",
			mutate:  func(o *tabwrap.Options) { o.Format = "docx" },
			wantErr: tabwrap.ErrInvalidFormat,
		},
		{
			name:    "empty format",
			mutate:  func(o *tabwrap.Options) { o.Format = "" },
			wantErr: tabwrap.ErrInvalidFormat,
		},
		{
			name:    "empty suffix",
			mutate:  func(o *tabwrap.Options) { o.Suffix = "" },
			wantErr: tabwrap.ErrInvalidSuffix,
		},
		{
			name:    "suffix with path separator",
			mutate:  func(o *tabwrap.Options) { o.Suffix = "a/b" },
			wantErr: tabwrap.ErrInvalidSuffix,
		},
		{
			name:    "combine with pdf is fine",
			mutate:  func(o *tabwrap.Options) { o.Combine = true },
			wantErr: nil,
		},
		{
			name: "combine with png rejected",
			mutate: func(o *tabwrap.Options) {
				o.Combine = true
				o.Format = tabwrap.FormatPNG
			},
			wantErr: tabwrap.ErrCombineWithImage,
		},
		{
			name:    "negative dpi",
			mutate:  func(o *tabwrap.Options) { o.DPI = -72 },
			wantErr: tabwrap.ErrInvalidDPI,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := tabwrap.DefaultOptions()
			tt.mutate(&opts)

			err := opts.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultOptions(t *testing.T) {
	t.Parallel()

	opts := tabwrap.DefaultOptions()
	if opts.Suffix != tabwrap.DefaultSuffix {
		t.Errorf("suffix = %q, want %q", opts.Suffix, tabwrap.DefaultSuffix)
	}
	if opts.Format != tabwrap.FormatPDF {
		t.Errorf("format = %q, want %q", opts.Format, tabwrap.FormatPDF)
	}
	if opts.DPI != 300 {
		t.Errorf("dpi = %d, want 300", opts.DPI)
	}
}

// ---------------------------------------------------------------------------
// TestBatchResult - Aggregate accounting
// ---------------------------------------------------------------------------

func TestBatchResultAccounting(t *testing.T) {
	t.Parallel()

	ok := tabwrap.Outcome{OutputPath: "a.pdf"}
	bad := tabwrap.Outcome{Err: errors.New("boom")}

	tests := []struct {
		name      string
		result    tabwrap.BatchResult
		allFailed bool
		failures  bool
	}{
		{
			name:      "mixed",
			result:    tabwrap.BatchResult{Successes: []tabwrap.Outcome{ok}, Failures: []tabwrap.Outcome{bad}},
			allFailed: false,
			failures:  true,
		},
		{
			name:      "all failed",
			result:    tabwrap.BatchResult{Failures: []tabwrap.Outcome{bad, bad}},
			allFailed: true,
			failures:  true,
		},
		{
			name:      "all succeeded",
			result:    tabwrap.BatchResult{Successes: []tabwrap.Outcome{ok, ok}},
			allFailed: false,
			failures:  false,
		},
		{
			name:      "empty",
			result:    tabwrap.BatchResult{},
			allFailed: false,
			failures:  false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.result.AllFailed(); got != tt.allFailed {
				t.Errorf("AllFailed() = %v, want %v", got, tt.allFailed)
			}
			if got := tt.result.HasFailures(); got != tt.failures {
				t.Errorf("HasFailures() = %v, want %v", got, tt.failures)
			}
		})
	}

	if !ok.Success() || bad.Success() {
		t.Error("Outcome.Success() disagrees with Err")
	}
}
