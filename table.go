// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gridsim

import (
	"math"

	"github.com/pkg/errors"
)

// ErrTruncated is returned by TruthTable along with a partial table when
// the number of source combinations exceeds the grid's row cap.
//
var ErrTruncated = errors.New("truth table truncated")

// A Table is a truth table.
//
// Each row lists the values of all sources followed by the values of all
// sinks, in column order. Rows enumerate source values as a binary counter
// where the first source is the most significant bit.
//
type Table struct {
	Header    []string // "name #id" labels, sources first
	Rows      [][]bool
	Inputs    int    // number of source columns
	Outputs   int    // number of sink columns
	Total     uint64 // number of rows of the full table, saturated at math.MaxUint64
	Truncated bool
}

// Column returns the values of column i across all rows.
//
func (t *Table) Column(i int) []bool {
	c := make([]bool, len(t.Rows))
	for r, row := range t.Rows {
		c[r] = row[i]
	}
	return c
}

// Outs returns the sink columns of the table, one slice per sink.
//
func (t *Table) Outs() [][]bool {
	out := make([][]bool, t.Outputs)
	for i := range out {
		out[i] = t.Column(t.Inputs + i)
	}
	return out
}

// TruthTable enumerates all combinations of source values and records the
// resulting sink values.
//
// Enumeration runs on a private copy of the circuit; the live circuit is
// left as it was. If the table would exceed MaxRows rows, it is cut short
// and returned together with ErrTruncated.
//
func (g *Grid) TruthTable() (*Table, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	sortEntities(g.ents)
	work := cloneEntities(g.ents)

	var srcs, sinks []*Entity
	for _, e := range work {
		switch e.Kind {
		case Source:
			srcs = append(srcs, e)
		case Sink:
			sinks = append(sinks, e)
		}
	}

	t := &Table{
		Header:  make([]string, 0, len(srcs)+len(sinks)),
		Inputs:  len(srcs),
		Outputs: len(sinks),
		Total:   math.MaxUint64,
	}
	if len(srcs) < 64 {
		t.Total = 1 << uint(len(srcs))
	}
	for _, s := range srcs {
		t.Header = append(t.Header, s.Label())
		s.Value = false
	}
	for _, s := range sinks {
		t.Header = append(t.Header, s.Label())
		s.Received = false
	}

	for done := false; !done; {
		if len(t.Rows) >= g.maxRows {
			t.Truncated = true
			break
		}
		row := make([]bool, 0, len(srcs)+len(sinks))
		for _, s := range srcs {
			row = append(row, s.Value)
		}
		propagate(work)
		for _, s := range sinks {
			row = append(row, s.Received)
		}
		t.Rows = append(t.Rows, row)
		done = increment(srcs)
	}

	// leave the live circuit consistent with its own source values.
	g.propagate()

	if t.Truncated {
		g.log.Warn("truth table truncated", "sources", len(srcs), "rows", len(t.Rows), "total", t.Total)
		return t, ErrTruncated
	}
	return t, nil
}

// increment advances the source values as a binary counter with the last
// source as the least significant bit. It returns true on overflow, i.e.
// when all sources wrapped back to false.
//
func increment(srcs []*Entity) bool {
	for i := len(srcs) - 1; i >= 0; i-- {
		if !srcs[i].Value {
			srcs[i].Value = true
			return false
		}
		srcs[i].Value = false
	}
	return true
}
