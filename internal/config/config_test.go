package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gridsim.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_defaults(t *testing.T) {
	for _, path := range []string{"", filepath.Join(t.TempDir(), "missing.yaml")} {
		c, err := Load(path)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(Default(), c); diff != "" {
			t.Errorf("Load(%q) mismatch (-want +got):\n%s", path, diff)
		}
	}
}

func TestLoad_file(t *testing.T) {
	path := writeFile(t, "engine:\n  max_rows: 1024\nlogging:\n  level: debug\n")
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	exp := Default()
	exp.Engine.MaxRows = 1024
	exp.Logging.Level = "debug"
	if diff := cmp.Diff(exp, c); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_env(t *testing.T) {
	path := writeFile(t, "engine:\n  max_rows: 1024\n")
	t.Setenv("GRIDSIM_MAX_ROWS", "64")
	t.Setenv("GRIDSIM_LOG_FORMAT", "json")
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Engine.MaxRows != 64 || c.Logging.Format != "json" {
		t.Errorf("env overrides not applied: %+v", c)
	}

	t.Setenv("GRIDSIM_MAX_ROWS", "many")
	if _, err = Load(path); err == nil {
		t.Error("expected an error for GRIDSIM_MAX_ROWS=many")
	}
}

func TestLoad_invalid(t *testing.T) {
	td := []struct {
		name    string
		content string
	}{
		{"syntax", "engine: [\n"},
		{"max_rows", "engine:\n  max_rows: 0\n"},
		{"level", "logging:\n  level: trace\n"},
		{"format", "logging:\n  format: xml\n"},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			if _, err := Load(writeFile(t, d.content)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
