package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/tabwrap/go-tabwrap/internal/yamlutil"
)

type sample struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

// ---------------------------------------------------------------------------
// TestUnmarshalStrict - Parsing, strict mode, and input guards
// ---------------------------------------------------------------------------

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	var s sample
	if err := yamlutil.UnmarshalStrict([]byte("name: x\ncount: 3\n"), &s); err != nil {
		t.Fatal(err)
	}
	if s.Name != "x" || s.Count != 3 {
		t.Errorf("got %+v", s)
	}

	if err := yamlutil.UnmarshalStrict([]byte("name: x\nbogus: 1\n"), &s); err == nil {
		t.Error("UnmarshalStrict accepted an unknown field")
	}
}

func TestUnmarshalStrictErrors(t *testing.T) {
	t.Parallel()

	var s sample
	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
	}{
		{name: "nil data", data: nil, dest: &s, wantErr: yamlutil.ErrNilData},
		{name: "nil destination", data: []byte("a: 1"), dest: nil, wantErr: yamlutil.ErrNilDestination},
		{
			name:    "oversized input",
			data:    []byte(strings.Repeat("x", yamlutil.MaxInputSize+1)),
			dest:    &s,
			wantErr: yamlutil.ErrInputTooLarge,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if err := yamlutil.UnmarshalStrict(tt.data, tt.dest); !errors.Is(err, tt.wantErr) {
				t.Errorf("UnmarshalStrict() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
