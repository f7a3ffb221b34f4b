package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/db47h/gridsim/gridlib"
)

func writeGrid(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "grid.txt")
	if err := os.WriteFile(path, []byte(text), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestTableCmd(t *testing.T) {
	path := writeGrid(t, gridlib.Nand.Text)
	out, _, err := run(t, "table", "--format", "csv", path)
	if err != nil {
		t.Fatal(err)
	}
	exp := "Quelle #1,Quelle #2,L #1\n" +
		"false,false,true\n" +
		"false,true,true\n" +
		"true,false,true\n" +
		"true,true,false\n"
	if out != exp {
		t.Errorf("got:\n%s\nexpected:\n%s", out, exp)
	}

	out, _, err = run(t, "table", path)
	if err != nil {
		t.Fatal(err)
	}
	if lines := strings.Split(strings.TrimSpace(out), "\n"); len(lines) != 5 || !strings.HasPrefix(lines[0], "Quelle #1") {
		t.Errorf("unexpected text table:\n%s", out)
	}

	if _, _, err = run(t, "table", "--format", "xml", path); err == nil {
		t.Error("expected an error for format xml")
	}
}

func TestTableCmd_truncated(t *testing.T) {
	path := writeGrid(t, "header\nQ1 Q2 Q3 Q4\n")
	out, errOut, err := run(t, "table", "--max-rows", "10", "--format", "csv", path)
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(out, "\n"); n != 11 {
		t.Errorf("expected 11 lines, got %d", n)
	}
	if !strings.Contains(errOut, "truncated to 10 of 16 rows") {
		t.Errorf("missing truncation warning in %q", errOut)
	}
}

func TestEvalCmd(t *testing.T) {
	path := writeGrid(t, gridlib.And.Text)
	out, _, err := run(t, "eval", path, "--set", "1=true", "--set", "2 = 1")
	if err != nil {
		t.Fatal(err)
	}
	fields := strings.Fields(out)
	exp := []string{"Quelle", "#1", "true", "Quelle", "#2", "true", "L", "#1", "true"}
	if strings.Join(fields, " ") != strings.Join(exp, " ") {
		t.Errorf("got %q", out)
	}

	for _, set := range []string{"3=true", "1", "x=true", "1=maybe"} {
		if _, _, err = run(t, "eval", path, "--set", set); err == nil {
			t.Errorf("expected an error for --set %s", set)
		}
	}
}

func TestListCmd(t *testing.T) {
	path := writeGrid(t, "h\nQ1\nR\nL1 Z\n")
	out, errOut, err := run(t, "list", path)
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range []string{"KIND", "Source", "RedBottom", "true/true", "L #1"} {
		if !strings.Contains(out, s) {
			t.Errorf("%q not found in:\n%s", s, out)
		}
	}
	if !strings.Contains(errOut, "unknown token") {
		t.Errorf("missing parse warning in %q", errOut)
	}
}

func TestRootCmd_config(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "gridsim.yaml")
	if err := os.WriteFile(cfg, []byte("engine:\n  max_rows: 2\n"), 0600); err != nil {
		t.Fatal(err)
	}
	path := writeGrid(t, gridlib.Nand.Text)
	out, errOut, err := run(t, "table", "--config", cfg, "--format", "csv", path)
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(out, "\n"); n != 3 || !strings.Contains(errOut, "truncated") {
		t.Errorf("config not applied: %q, %q", out, errOut)
	}

	if _, _, err = run(t, "table", "--log-level", "loud", path); err == nil {
		t.Error("expected an error for --log-level loud")
	}
	if _, _, err = run(t, "table", filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestVersionCmd(t *testing.T) {
	out, _, err := run(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, version) {
		t.Errorf("got %q", out)
	}
}
