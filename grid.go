// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gridsim

import (
	"log/slog"
	"sort"
	"sync"
)

// DefaultMaxRows is the default truth table row cap.
//
const DefaultMaxRows = 200

// Grid is a circuit of entities placed on a 2D grid.
//
// Entities are connected implicitly: an entity at column x drives entities
// at column x+1 whose ports sit on the rows it outputs to.
//
// All methods are safe for concurrent use; calls are serialized.
//
type Grid struct {
	mu   sync.Mutex
	ents []*Entity

	// next palette ids for sources and sinks
	srcID  int
	sinkID int

	log     *slog.Logger
	maxRows int
	canDrop func(x, y int) bool
}

// An Option configures a Grid.
//
type Option func(g *Grid)

// WithLogger sets the logger used by the grid. The default is slog.Default().
//
func WithLogger(l *slog.Logger) Option {
	return func(g *Grid) {
		if l != nil {
			g.log = l
		}
	}
}

// WithMaxRows sets the maximum number of rows generated by TruthTable. Values
// less or equal to 0 select DefaultMaxRows.
//
func WithMaxRows(n int) Option {
	return func(g *Grid) {
		if n <= 0 {
			n = DefaultMaxRows
		}
		g.maxRows = n
	}
}

// WithDropRegion restricts the cells where held entities can be dropped.
// Drop calls for snapped positions outside the region are no-ops.
//
func WithDropRegion(fn func(x, y int) bool) Option {
	return func(g *Grid) {
		g.canDrop = fn
	}
}

// NewGrid returns a new, empty grid.
//
func NewGrid(opts ...Option) *Grid {
	g := &Grid{
		log:     slog.Default(),
		maxRows: DefaultMaxRows,
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Len returns the number of placed entities.
//
func (g *Grid) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.ents)
}

// MaxRows returns the truth table row cap.
//
func (g *Grid) MaxRows() int { return g.maxRows }

// Entities returns a snapshot of the placed entities sorted by column.
//
func (g *Grid) Entities() []Entity {
	g.mu.Lock()
	defer g.mu.Unlock()
	sortEntities(g.ents)
	return snapshot(g.ents, func(*Entity) bool { return true })
}

// Sources returns a snapshot of the sources in column order.
//
func (g *Grid) Sources() []Entity {
	g.mu.Lock()
	defer g.mu.Unlock()
	sortEntities(g.ents)
	return snapshot(g.ents, func(e *Entity) bool { return e.Kind == Source })
}

// Sinks returns a snapshot of the sinks in column order.
//
func (g *Grid) Sinks() []Entity {
	g.mu.Lock()
	defer g.mu.Unlock()
	sortEntities(g.ents)
	return snapshot(g.ents, func(e *Entity) bool { return e.Kind == Sink })
}

// At returns a copy of the first entity covering cell (x, y).
//
func (g *Grid) At(x, y int) (Entity, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if i := g.find(x, y); i >= 0 {
		return *g.ents[i], true
	}
	return Entity{}, false
}

// Add places a new entity of kind k at (x, y) and updates the circuit.
// Sources and sinks get the next palette id for their kind.
// It returns false if k is not a valid kind.
//
func (g *Grid) Add(k Kind, x, y int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	e := g.template(k)
	if e == nil {
		return false
	}
	e.X, e.Y = x, y
	g.ents = append(g.ents, e)
	g.propagate()
	return true
}

// Insert places a copy of e in the grid and updates the circuit. Use it to
// place sources and sinks with caller assigned ids.
//
func (g *Grid) Insert(e Entity) bool {
	if !e.Kind.Valid() {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ents = append(g.ents, e.Clone())
	g.propagate()
	return true
}

// RemoveAt removes the first entity covering cell (x, y) and updates the
// circuit. It returns false if there is no such entity.
//
func (g *Grid) RemoveAt(x, y int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.take(x, y) == nil {
		return false
	}
	g.propagate()
	return true
}

// ToggleAt toggles the value of the source covering cell (x, y) and updates
// the circuit. It returns false if there is no source there.
//
func (g *Grid) ToggleAt(x, y int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, e := range g.ents {
		if e.Kind == Source && e.Covers(x, y) {
			e.Value = !e.Value
			g.propagate()
			return true
		}
	}
	return false
}

// SetSource sets the value of every source with the given id and updates
// the circuit. It returns the number of sources updated.
//
func (g *Grid) SetSource(id int, v bool) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	n := 0
	for _, e := range g.ents {
		if e.Kind == Source && e.ID == id {
			e.Value = v
			n++
		}
	}
	if n > 0 {
		g.propagate()
	}
	return n
}

// Wipe removes all entities. It does not reset palette ids.
//
func (g *Grid) Wipe() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ents = nil
}

// Propagate recomputes all signals in the grid.
//
func (g *Grid) Propagate() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.propagate()
}

func (g *Grid) propagate() {
	g.log.Debug("propagate", "entities", len(g.ents))
	propagate(g.ents)
}

// template returns a new entity from the palette.
//
func (g *Grid) template(k Kind) *Entity {
	switch {
	case k.IsGate():
		return NewGate(k, 0, 0)
	case k == Source:
		e := NewSource(SourceName, g.srcID, 0, 0)
		g.srcID++
		return e
	case k == Sink:
		e := NewSink(SinkName, g.sinkID, 0, 0)
		g.sinkID++
		return e
	}
	return nil
}

func (g *Grid) find(x, y int) int {
	for i, e := range g.ents {
		if e.Covers(x, y) {
			return i
		}
	}
	return -1
}

// take removes and returns the first entity covering (x, y).
//
func (g *Grid) take(x, y int) *Entity {
	i := g.find(x, y)
	if i < 0 {
		return nil
	}
	e := g.ents[i]
	g.ents = append(g.ents[:i], g.ents[i+1:]...)
	return e
}

func sortEntities(ents []*Entity) {
	sort.SliceStable(ents, func(i, j int) bool { return ents[i].X < ents[j].X })
}

func snapshot(ents []*Entity, keep func(*Entity) bool) []Entity {
	out := make([]Entity, 0, len(ents))
	for _, e := range ents {
		if keep(e) {
			out = append(out, *e)
		}
	}
	return out
}

func cloneEntities(ents []*Entity) []*Entity {
	c := make([]*Entity, len(ents))
	for i, e := range ents {
		c[i] = e.Clone()
	}
	return c
}
