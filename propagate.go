// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gridsim

// propagate runs a single left to right evaluation pass over ents.
//
// The circuit is assumed to be feed-forward with a one column lookahead:
// entities only drive entities at x+1. Signals aimed at any other column
// are never delivered. Entities sharing a column are visited in their
// original relative order; if two of them drive the same port, the last
// one wins.
//
// ents is sorted in place.
//
func propagate(ents []*Entity) {
	sortEntities(ents)
	if len(ents) == 0 {
		return
	}
	for _, e := range ents {
		e.reset()
	}

	lastX := ents[0].X - 1
	var next []*Entity
	for i, e := range ents {
		if e.X != lastX {
			next = column(ents, i, e.X+1)
			lastX = e.X
		}
		if e.Kind.IsGate() {
			e.eval()
		}
		for _, n := range next {
			if n.Kind == Source {
				continue
			}
			e.emit(n.recv)
		}
	}
}

// column returns the entities at column x, scanning forward from index
// start. ents must be sorted by column.
//
func column(ents []*Entity, start, x int) []*Entity {
	var col []*Entity
	for _, e := range ents[start:] {
		if e.X > x {
			break
		}
		if e.X == x {
			col = append(col, e)
		}
	}
	return col
}
