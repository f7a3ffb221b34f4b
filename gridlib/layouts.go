// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package gridlib provides a library of ready made grid layouts.
//
// Layouts are written in the text grid format. In all layouts, sources sit
// in column 1 and are numbered from 1 in table order. The single sink has
// id 1.
//
package gridlib

import (
	"strings"

	"github.com/db47h/gridsim"
)

// A Layout is a named grid description.
//
type Layout struct {
	Name string
	Text string
}

// Load replaces the contents of g with the layout.
//
func (l *Layout) Load(g *gridsim.Grid) ([]gridsim.ParseWarning, error) {
	return g.Load(strings.NewReader(l.Text))
}

// Grid returns a new grid loaded with the layout.
//
func (l *Layout) Grid(opts ...gridsim.Option) (*gridsim.Grid, error) {
	g := gridsim.NewGrid(opts...)
	if _, err := l.Load(g); err != nil {
		return nil, err
	}
	return g, nil
}

func layout(name string, lines ...string) *Layout {
	return &Layout{Name: name, Text: name + "\n" + strings.Join(lines, "\n") + "\n"}
}

var (
	// Buffer passes its input through a Blue gate.
	//
	//	Function: out = in
	//
	Buffer = layout("BUFFER",
		"Q1",
		"B",
		"L1")

	// Not returns the negation of its input.
	//
	//	Function: out = !in
	//
	Not = layout("NOT",
		"Q1",
		"R",
		"L1")

	// Nand is a single White gate.
	//
	//	Function: out = !(a && b)
	//
	Nand = layout("NAND",
		"Q1 Q2",
		"W",
		"L1")

	// And is a White gate followed by an inverter.
	//
	//	Function: out = a && b
	//
	And = layout("AND",
		"Q1 Q2",
		"W",
		"R",
		"L1")

	// Or inverts both inputs then feeds them to a White gate.
	//
	//	Function: out = a || b
	//
	Or = layout("OR",
		"Q1 X X Q2",
		"R X r",
		"X W",
		"X L1")

	// Nor is an Or followed by an inverter.
	//
	//	Function: out = !(a || b)
	//
	Nor = layout("NOR",
		"Q1 X X Q2",
		"R X r",
		"X W",
		"X R",
		"X L1")
)

// All lists all layouts in the library.
//
var All = []*Layout{Buffer, Not, Nand, And, Or, Nor}
