// Package gridtext implements a lexer for the text grid format.
//
// Each line of the format describes one grid column. Whitespace separated
// tokens describe consecutive rows, starting at row 0:
//
//	X        empty cell
//	Q<n>     source with id n
//	L<n>     sink with id n
//	W r R B  gates (White, RedTop, RedBottom, Blue)
//
// A gate spans two rows: the token following a gate token is its second row
// and is skipped regardless of its contents.
//
package gridtext

import (
	"strconv"
	"strings"
)

// Type is the type of a lexed item.
//
type Type int

// Item types.
//
const (
	Empty Type = iota
	Source
	Sink
	White
	RedTop
	RedBottom
	Blue
	Unknown
)

var typeNames = [...]string{
	Empty:     "Empty",
	Source:    "Source",
	Sink:      "Sink",
	White:     "White",
	RedTop:    "RedTop",
	RedBottom: "RedBottom",
	Blue:      "Blue",
	Unknown:   "Unknown",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "Type(" + strconv.Itoa(int(t)) + ")"
	}
	return typeNames[t]
}

// IsGate returns true for gate item types.
//
func (t Type) IsGate() bool { return t >= White && t <= Blue }

// Item is a lexed token.
//
type Item struct {
	Type Type
	Pos  int    // row
	ID   int    // Source and Sink id
	Raw  string // token text
}

var gateTokens = map[string]Type{
	"W": White,
	"r": RedTop,
	"R": RedBottom,
	"B": Blue,
}

// Lex returns the items of a single line. Empty cells are not returned.
//
func Lex(line string) []Item {
	var items []Item
	toks := strings.Fields(line)
	for pos := 0; pos < len(toks); pos++ {
		tok := toks[pos]
		if tok == "X" {
			continue
		}
		if t, ok := gateTokens[tok]; ok {
			items = append(items, Item{Type: t, Pos: pos, Raw: tok})
			pos++
			continue
		}
		items = append(items, lexID(tok, pos))
	}
	return items
}

func lexID(tok string, pos int) Item {
	it := Item{Type: Unknown, Pos: pos, Raw: tok}
	var t Type
	switch tok[0] {
	case 'Q':
		t = Source
	case 'L':
		t = Sink
	default:
		return it
	}
	digits := tok[1:]
	if digits == "" {
		return it
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return it
		}
	}
	id, err := strconv.Atoi(digits)
	if err != nil {
		return it
	}
	it.Type, it.ID = t, id
	return it
}
