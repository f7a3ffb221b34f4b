package gridtext

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLex(t *testing.T) {
	td := []struct {
		in  string
		out []Item
	}{
		{"", nil},
		{"   ", nil},
		{"Q1 X L2", []Item{
			{Type: Source, Pos: 0, ID: 1, Raw: "Q1"},
			{Type: Sink, Pos: 2, ID: 2, Raw: "L2"},
		}},
		{"W X L1", []Item{
			{Type: White, Pos: 0, Raw: "W"},
			{Type: Sink, Pos: 2, ID: 1, Raw: "L1"},
		}},
		// the token after a gate is its second row, whatever it is.
		{"r Q7 B L3 L4", []Item{
			{Type: RedTop, Pos: 0, Raw: "r"},
			{Type: Blue, Pos: 2, Raw: "B"},
			{Type: Sink, Pos: 4, ID: 4, Raw: "L4"},
		}},
		{"  R\tX  Q12\r", []Item{
			{Type: RedBottom, Pos: 0, Raw: "R"},
			{Type: Source, Pos: 2, ID: 12, Raw: "Q12"},
		}},
		{"Q L Qx L1a Z x Q007", []Item{
			{Type: Unknown, Pos: 0, Raw: "Q"},
			{Type: Unknown, Pos: 1, Raw: "L"},
			{Type: Unknown, Pos: 2, Raw: "Qx"},
			{Type: Unknown, Pos: 3, Raw: "L1a"},
			{Type: Unknown, Pos: 4, Raw: "Z"},
			{Type: Unknown, Pos: 5, Raw: "x"},
			{Type: Source, Pos: 6, ID: 7, Raw: "Q007"},
		}},
		{"Q99999999999999999999999", []Item{
			{Type: Unknown, Pos: 0, Raw: "Q99999999999999999999999"},
		}},
	}
	for _, d := range td {
		t.Run(d.in, func(t *testing.T) {
			if diff := cmp.Diff(d.out, Lex(d.in)); diff != "" {
				t.Errorf("Lex(%q) mismatch (-want +got):\n%s", d.in, diff)
			}
		})
	}
}

func TestType_IsGate(t *testing.T) {
	for typ := Empty; typ <= Unknown; typ++ {
		exp := typ == White || typ == RedTop || typ == RedBottom || typ == Blue
		if typ.IsGate() != exp {
			t.Errorf("%v.IsGate() = %v, expected %v", typ, typ.IsGate(), exp)
		}
	}
}
