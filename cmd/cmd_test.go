package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/spiffcs/tstamp/internal/timespec"
)

func TestNew(t *testing.T) {
	cmd := New()
	if cmd == nil {
		t.Fatal("New() returned nil")
	}
	if cmd.Use != "tstamp [expression]..." {
		t.Errorf("expected Use to be 'tstamp [expression]...', got %q", cmd.Use)
	}

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	for _, want := range []string{"resolve", "config", "version"} {
		found := false
		for _, name := range names {
			if name == want {
				found = true
			}
		}
		if !found {
			t.Errorf("expected subcommand %q, have %v", want, names)
		}
	}
}

func TestNewCmdResolve(t *testing.T) {
	opts := NewOptions()
	cmd := NewCmdResolve(opts)
	if cmd == nil {
		t.Fatal("NewCmdResolve() returned nil")
	}
	if cmd.Name() != "resolve" {
		t.Errorf("expected name 'resolve', got %q", cmd.Name())
	}
	for _, flag := range []string{"output", "zone", "at", "file", "until", "workers"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("expected flag --%s", flag)
		}
	}
}

func TestNewCmdConfig(t *testing.T) {
	cmd := NewCmdConfig()
	if cmd == nil {
		t.Fatal("NewCmdConfig() returned nil")
	}
	if cmd.Use != "config" {
		t.Errorf("expected Use to be 'config', got %q", cmd.Use)
	}
}

func TestNewCmdVersion(t *testing.T) {
	cmd := NewCmdVersion()
	if cmd == nil {
		t.Fatal("NewCmdVersion() returned nil")
	}
	if cmd.Use != "version" {
		t.Errorf("expected Use to be 'version', got %q", cmd.Use)
	}
}

func TestSetVersionInfo(t *testing.T) {
	SetVersionInfo("1.0.0", "abc123", "2024-01-01")
	// Just verify it doesn't panic - version info is in package vars
}

func TestNewOptions(t *testing.T) {
	opts := NewOptions(
		WithFormat("json"),
		WithZone("UTC"),
		WithUntil(true),
		WithWorkers(4),
		WithVerbosity(2),
	)
	if opts.Format != "json" {
		t.Errorf("expected Format 'json', got %q", opts.Format)
	}
	if opts.Zone != "UTC" {
		t.Errorf("expected Zone 'UTC', got %q", opts.Zone)
	}
	if !opts.Until {
		t.Error("expected Until to be set")
	}
	if opts.Workers != 4 {
		t.Errorf("expected Workers 4, got %d", opts.Workers)
	}

	defaults := NewOptions()
	if defaults.Workers == 0 {
		t.Error("expected a non-zero default worker count")
	}
}

func TestResolveZone(t *testing.T) {
	loc, err := resolveZone("")
	if err != nil {
		t.Fatalf("resolveZone(\"\"): %v", err)
	}
	if loc != time.Local {
		t.Errorf("resolveZone(\"\") = %v, want Local", loc)
	}

	loc, err = resolveZone("UTC")
	if err != nil {
		t.Fatalf("resolveZone(\"UTC\"): %v", err)
	}
	if loc != time.UTC {
		t.Errorf("resolveZone(\"UTC\") = %v, want UTC", loc)
	}

	_, err = resolveZone("Not/AZone")
	if !errors.Is(err, timespec.ErrDelegated) {
		t.Errorf("resolveZone(\"Not/AZone\") error = %v, want ErrDelegated", err)
	}
}

func TestReadExpressions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expressions.txt")
	content := "now\n\n# a comment\nyesterday -2days\n  3s ago  \n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	got, err := readExpressions(path)
	if err != nil {
		t.Fatalf("readExpressions: %v", err)
	}
	want := []string{"now", "yesterday -2days", "3s ago"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("readExpressions = %v, want %v", got, want)
	}
}

func TestReadExpressionsMissingFile(t *testing.T) {
	if _, err := readExpressions(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestResolveAll(t *testing.T) {
	reference := time.Date(2018, 6, 21, 1, 2, 3, 0, time.UTC)

	expressions := []string{"now", "3s ago", "tomorrow"}
	results, err := resolveAll(expressions, reference, time.UTC, 2)
	if err != nil {
		t.Fatalf("resolveAll: %v", err)
	}
	if len(results) != len(expressions) {
		t.Fatalf("got %d results, want %d", len(results), len(expressions))
	}

	// order follows the input
	for i, expr := range expressions {
		if results[i].Expression != expr {
			t.Errorf("results[%d].Expression = %q, want %q", i, results[i].Expression, expr)
		}
	}
	if !results[1].Resolved.Equal(reference.Add(-3 * time.Second)) {
		t.Errorf("results[1].Resolved = %v", results[1].Resolved)
	}
}

func TestResolveAllError(t *testing.T) {
	reference := time.Date(2018, 6, 21, 1, 2, 3, 0, time.UTC)

	_, err := resolveAll([]string{"now", "-3s ago"}, reference, time.UTC, 1)
	if !errors.Is(err, timespec.ErrGrammar) {
		t.Errorf("resolveAll error = %v, want ErrGrammar", err)
	}
}
