// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gridsim

import "math"

// Held is an entity owned by a placement collaborator, typically while it is
// being dragged. It is not part of any grid and takes no part in
// propagation. Its position may be fractional.
//
type Held struct {
	X, Y float64
	e    *Entity
}

// Entity returns a copy of the held entity. Its position is the one it had
// when it was picked up or taken from the palette.
//
func (h *Held) Entity() Entity { return *h.e }

// Kind returns the kind of the held entity.
//
func (h *Held) Kind() Kind { return h.e.Kind }

// Move translates the held entity by (dx, dy).
//
func (h *Held) Move(dx, dy float64) {
	h.X += dx
	h.Y += dy
}

// Take returns a new entity of kind k from the palette, held at the origin.
// Sources and sinks get the next palette id for their kind. It returns nil
// if k is not a valid kind.
//
func (g *Grid) Take(k Kind) *Held {
	g.mu.Lock()
	defer g.mu.Unlock()
	e := g.template(k)
	if e == nil {
		return nil
	}
	return &Held{e: e}
}

// PickUp removes the first entity covering cell (x, y) from the grid and
// returns it as held. The circuit is updated.
//
func (g *Grid) PickUp(x, y int) (*Held, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	e := g.take(x, y)
	if e == nil {
		return nil, false
	}
	e.reset()
	g.propagate()
	return &Held{X: float64(e.X), Y: float64(e.Y), e: e}, true
}

// Drop snaps h to the nearest cell and places it in the grid. If the snapped
// cell is outside the drop region, the entity is discarded and Drop returns
// false. In either case h must not be used afterwards.
//
func (g *Grid) Drop(h *Held) bool {
	if h == nil || h.e == nil {
		return false
	}
	e := h.e
	h.e = nil
	e.X, e.Y = snap(h.X), snap(h.Y)

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.canDrop != nil && !g.canDrop(e.X, e.Y) {
		return false
	}
	g.ents = append(g.ents, e)
	g.propagate()
	return true
}

// snap rounds v to the nearest integer, halves rounding up.
//
func snap(v float64) int {
	return int(math.Floor(v + 0.5))
}
