/*
Package gridsim provides a simulator for combinational logic circuits laid
out on a 2D grid.

Entities (sources, sinks and two-row gates) are placed at integer grid
coordinates. There are no explicit wires: an entity in column x drives the
entities of column x+1 whose input ports sit on the rows it outputs to. A
Grid evaluates the whole circuit in a single left to right pass and can
enumerate its truth table.

Circuits can be built programmatically:

	g := gridsim.NewGrid()
	g.Insert(*gridsim.NewSource("a", 1, 0, 1))
	g.Insert(*gridsim.NewSource("b", 2, 0, 0))
	g.Add(gridsim.White, 1, 0)
	g.Add(gridsim.Sink, 2, 0)
	t, err := g.TruthTable()

or loaded from the text grid format with Grid.Load.

*/
package gridsim
