// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gridsim

import (
	"strconv"
)

// Kind identifies the variant of a placed entity.
//
// The numeric values double as palette indices for Grid.Add.
//
type Kind int

// Entity kinds.
//
const (
	White     Kind = iota // out = !(top && bottom) on both ports
	RedTop                // out = !top on both ports
	RedBottom             // out = !bottom on both ports
	Blue                  // top -> top, bottom -> bottom
	Source                // user toggled input
	Sink                  // output display (LED)
	kindCount
)

// Default entity names.
//
const (
	SourceName = "Quelle"
	SinkName   = "LED"
)

var kindNames = [...]string{
	White:     "White",
	RedTop:    "RedTop",
	RedBottom: "RedBottom",
	Blue:      "Blue",
	Source:    "Source",
	Sink:      "Sink",
}

func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Valid returns true if k is a known entity kind.
//
func (k Kind) Valid() bool { return k >= 0 && k < kindCount }

// IsGate returns true for the four two-row gate variants.
//
func (k Kind) IsGate() bool { return k >= White && k <= Blue }

// Size returns the footprint of an entity of kind k in grid cells.
//
func (k Kind) Size() (w, h int) {
	if k.IsGate() {
		return 1, 2
	}
	return 1, 1
}

// A GateSpec describes the behavior of a gate variant.
//
//	Inputs: top (row y+1), bottom (row y)
//	Outputs: top (row y+1), bottom (row y)
//
// Eval is only ever called with the values of the ports flagged as present;
// absent ports are passed as false.
//
type GateSpec struct {
	Name           string
	HasTopInput    bool
	HasBottomInput bool
	Eval           func(top, bottom bool) (outTop, outBottom bool)
}

func newGate(name string, top, bottom bool, fn func(top, bottom bool) bool) *GateSpec {
	return &GateSpec{
		Name:           name,
		HasTopInput:    top,
		HasBottomInput: bottom,
		Eval: func(t, b bool) (bool, bool) {
			o := fn(t, b)
			return o, o
		},
	}
}

var gates = [...]*GateSpec{
	White:     newGate("White", true, true, func(t, b bool) bool { return !(t && b) }),
	RedTop:    newGate("RedTop", true, false, func(t, _ bool) bool { return !t }),
	RedBottom: newGate("RedBottom", false, true, func(_, b bool) bool { return !b }),
	Blue: {
		Name:           "Blue",
		HasTopInput:    true,
		HasBottomInput: true,
		Eval:           func(t, b bool) (bool, bool) { return t, b },
	},
}

// Gate returns the gate specification for kind k or nil if k is not a gate.
//
func Gate(k Kind) *GateSpec {
	if !k.IsGate() {
		return nil
	}
	return gates[k]
}

// An Entity is an element placed on the grid.
//
// Position is always integral. Only the signal fields are touched by
// propagation.
//
type Entity struct {
	Kind Kind
	X, Y int

	// Source and Sink identity.
	Name string
	ID   int

	Value    bool // Source: persistent output value
	Received bool // Sink: value received during the last propagation

	InTop, InBottom   bool // Gate input ports
	OutTop, OutBottom bool // Gate output ports
}

// NewSource returns a new Source entity.
//
func NewSource(name string, id, x, y int) *Entity {
	return &Entity{Kind: Source, Name: name, ID: id, X: x, Y: y}
}

// NewSink returns a new Sink entity.
//
func NewSink(name string, id, x, y int) *Entity {
	return &Entity{Kind: Sink, Name: name, ID: id, X: x, Y: y}
}

// NewGate returns a new gate entity of kind k. It panics if k is not a gate.
//
func NewGate(k Kind, x, y int) *Entity {
	if !k.IsGate() {
		panic("gridsim: " + k.String() + " is not a gate")
	}
	return &Entity{Kind: k, X: x, Y: y}
}

// Size returns the entity's footprint.
//
func (e *Entity) Size() (w, h int) { return e.Kind.Size() }

// Covers returns true if the cell (x, y) lies within the entity's footprint.
//
func (e *Entity) Covers(x, y int) bool {
	w, h := e.Size()
	return x >= e.X && y >= e.Y && x < e.X+w && y < e.Y+h
}

// Signal returns the single boolean state renderers use for simple
// entities: the Source value, the Sink received value or a gate's top
// output.
//
func (e *Entity) Signal() bool {
	switch e.Kind {
	case Source:
		return e.Value
	case Sink:
		return e.Received
	default:
		return e.OutTop
	}
}

// Label returns the "name #id" column label of a Source or Sink.
//
func (e *Entity) Label() string {
	return e.Name + " #" + strconv.Itoa(e.ID)
}

// Clone returns a copy of e that shares no state with it.
//
func (e *Entity) Clone() *Entity {
	c := *e
	return &c
}

func (e *Entity) String() string {
	s := e.Kind.String() + "@" + strconv.Itoa(e.X) + "," + strconv.Itoa(e.Y)
	if e.Kind == Source || e.Kind == Sink {
		s += "(" + e.Label() + ")"
	}
	return s
}

// reset clears transient state. Sources keep their value.
//
func (e *Entity) reset() {
	e.Received = false
	e.InTop, e.InBottom = false, false
	e.OutTop, e.OutBottom = false, false
}

// eval updates a gate's outputs from its inputs.
//
func (e *Entity) eval() {
	g := gates[e.Kind]
	var t, b bool
	if g.HasTopInput {
		t = e.InTop
	}
	if g.HasBottomInput {
		b = e.InBottom
	}
	e.OutTop, e.OutBottom = g.Eval(t, b)
}

// recv delivers value v arriving on grid row row. Rows that do not land on
// a port are dropped.
//
func (e *Entity) recv(v bool, row int) {
	switch {
	case e.Kind.IsGate():
		switch row {
		case e.Y:
			e.InBottom = v
		case e.Y + 1:
			e.InTop = v
		}
	case e.Kind == Sink:
		if row == e.Y {
			e.Received = v
		}
	}
}

// emit calls fn for every value e drives into the next column, along with
// the row it is driven on.
//
func (e *Entity) emit(fn func(v bool, row int)) {
	switch {
	case e.Kind.IsGate():
		fn(e.OutTop, e.Y+1)
		fn(e.OutBottom, e.Y)
	case e.Kind == Source:
		fn(e.Value, e.Y)
	}
}
