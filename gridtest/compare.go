// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package gridtest provides utility functions for testing grid circuits.
//
package gridtest

import (
	"strconv"
	"strings"
	"testing"

	"github.com/db47h/gridsim"
	"github.com/google/go-cmp/cmp"
)

// Load returns a new grid loaded from the given text description. It fails
// the test on read errors or unknown tokens.
//
func Load(t testing.TB, text string, opts ...gridsim.Option) *gridsim.Grid {
	t.Helper()
	g := gridsim.NewGrid(opts...)
	warns, err := g.Load(strings.NewReader(text))
	if err != nil {
		t.Fatal(err)
	}
	for _, w := range warns {
		t.Error(w)
	}
	return g
}

func rowString(t *gridsim.Table, r int) string {
	var b strings.Builder
	for i := 0; i < t.Inputs; i++ {
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		b.WriteString(t.Header[i])
		b.WriteRune('=')
		b.WriteString(strconv.FormatBool(t.Rows[r][i]))
	}
	return b.String()
}

// CheckTable builds the truth table of g and compares its sink columns to
// result. result holds one slice per sink, indexed by row.
//
func CheckTable(t testing.TB, g *gridsim.Grid, result [][]bool) {
	t.Helper()
	tbl, err := g.TruthTable()
	if err != nil {
		t.Fatal(err)
	}
	if len(result) != tbl.Outputs {
		t.Fatalf("expected %d sinks, got %d", len(result), tbl.Outputs)
	}
	for o, exp := range result {
		if len(exp) != len(tbl.Rows) {
			t.Fatalf("%s: expected %d rows, got %d", tbl.Header[tbl.Inputs+o], len(exp), len(tbl.Rows))
		}
		for r, row := range tbl.Rows {
			if got := row[tbl.Inputs+o]; got != exp[r] {
				t.Errorf("%s => %s = %v, got %v", rowString(tbl, r), tbl.Header[tbl.Inputs+o], exp[r], got)
			}
		}
	}
}

// CompareGrids compares the truth tables of two grids. Both grids must have
// the same number of sources and sinks; labels are not compared.
//
func CompareGrids(t testing.TB, g1, g2 *gridsim.Grid) {
	t.Helper()
	t1, err := g1.TruthTable()
	if err != nil {
		t.Fatal(err)
	}
	t2, err := g2.TruthTable()
	if err != nil {
		t.Fatal(err)
	}
	if t1.Inputs != t2.Inputs {
		t.Fatalf("source count mismatch: %d != %d", t1.Inputs, t2.Inputs)
	}
	if t1.Outputs != t2.Outputs {
		t.Fatalf("sink count mismatch: %d != %d", t1.Outputs, t2.Outputs)
	}
	if diff := cmp.Diff(t1.Rows, t2.Rows); diff != "" {
		t.Errorf("truth tables differ (-first +second):\n%s", diff)
	}
}
