package main

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

// ---------------------------------------------------------------------------
// TestDiscoverTexFiles - Fragment discovery
// ---------------------------------------------------------------------------

func TestDiscoverTexFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	touch(t, filepath.Join(dir, "beta.tex"))
	touch(t, filepath.Join(dir, "alpha.tex"))
	touch(t, filepath.Join(dir, "readme.md"))
	touch(t, filepath.Join(dir, "alpha_compiled.tex")) // previous output
	touch(t, filepath.Join(dir, "sub", "gamma.tex"))

	t.Run("flat directory", func(t *testing.T) {
		t.Parallel()

		got, err := discoverTexFiles(dir, "_compiled", false)
		if err != nil {
			t.Fatal(err)
		}
		want := []string{
			filepath.Join(dir, "alpha.tex"),
			filepath.Join(dir, "beta.tex"),
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("discoverTexFiles() = %v, want %v", got, want)
		}
	})

	t.Run("recursive", func(t *testing.T) {
		t.Parallel()

		got, err := discoverTexFiles(dir, "_compiled", true)
		if err != nil {
			t.Fatal(err)
		}
		want := []string{
			filepath.Join(dir, "alpha.tex"),
			filepath.Join(dir, "beta.tex"),
			filepath.Join(dir, "sub", "gamma.tex"),
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("discoverTexFiles() = %v, want %v", got, want)
		}
	})

	t.Run("single file", func(t *testing.T) {
		t.Parallel()

		got, err := discoverTexFiles(filepath.Join(dir, "beta.tex"), "_compiled", false)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 1 || got[0] != filepath.Join(dir, "beta.tex") {
			t.Errorf("discoverTexFiles() = %v", got)
		}
	})

	t.Run("single file wrong extension", func(t *testing.T) {
		t.Parallel()

		_, err := discoverTexFiles(filepath.Join(dir, "readme.md"), "_compiled", false)
		if !errors.Is(err, ErrInvalidExtension) {
			t.Errorf("err = %v, want ErrInvalidExtension", err)
		}
	})

	t.Run("missing input", func(t *testing.T) {
		t.Parallel()

		_, err := discoverTexFiles(filepath.Join(dir, "nope"), "_compiled", false)
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("err = %v, want not-exist", err)
		}
	})

	t.Run("suffixed file given explicitly is accepted", func(t *testing.T) {
		t.Parallel()

		// The skip rule applies to directory scans only; an explicit path
		// is the user's decision.
		got, err := discoverTexFiles(filepath.Join(dir, "alpha_compiled.tex"), "_compiled", false)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 1 {
			t.Errorf("discoverTexFiles() = %v", got)
		}
	})
}

func TestValidateWorkers(t *testing.T) {
	t.Parallel()

	if err := validateWorkers(0); err != nil {
		t.Errorf("validateWorkers(0) = %v", err)
	}
	if err := validateWorkers(8); err != nil {
		t.Errorf("validateWorkers(8) = %v", err)
	}
	if err := validateWorkers(-1); !errors.Is(err, ErrInvalidWorkerCount) {
		t.Errorf("validateWorkers(-1) = %v, want ErrInvalidWorkerCount", err)
	}
}
