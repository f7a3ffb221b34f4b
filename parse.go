// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gridsim

import (
	"io"
	"strconv"
	"strings"

	"github.com/db47h/gridsim/internal/gridtext"
	"github.com/pkg/errors"
)

// Entity name given to imported sinks.
//
const importedSinkName = "L"

// A ParseWarning reports an unrecognized token in a grid description. The
// token is ignored.
//
type ParseWarning struct {
	Line  int // line number (0-based, equals the column)
	Pos   int // row
	Token string
}

func (w ParseWarning) Error() string {
	return "line " + strconv.Itoa(w.Line) + ", row " + strconv.Itoa(w.Pos) + ": unknown token " + strconv.Quote(w.Token)
}

var itemKinds = map[gridtext.Type]Kind{
	gridtext.White:     White,
	gridtext.RedTop:    RedTop,
	gridtext.RedBottom: RedBottom,
	gridtext.Blue:      Blue,
}

// ParseString parses a text grid description. See Parse.
//
func ParseString(s string) ([]*Entity, []ParseWarning) {
	var ents []*Entity
	var warns []ParseWarning

	lines := strings.Split(s, "\n")
	// line 0 is a header
	for x := 1; x < len(lines); x++ {
		for _, it := range gridtext.Lex(lines[x]) {
			switch {
			case it.Type == gridtext.Source:
				ents = append(ents, NewSource(SourceName, it.ID, x, it.Pos))
			case it.Type == gridtext.Sink:
				ents = append(ents, NewSink(importedSinkName, it.ID, x, it.Pos))
			case it.Type.IsGate():
				ents = append(ents, NewGate(itemKinds[it.Type], x, it.Pos))
			default:
				warns = append(warns, ParseWarning{Line: x, Pos: it.Pos, Token: it.Raw})
			}
		}
	}
	return ents, warns
}

// Parse reads a text grid description from r and returns the entities it
// describes.
//
// The first line is ignored. Every following line describes the column
// whose x coordinate is the line number. See package
// github.com/db47h/gridsim/internal/gridtext for the token syntax.
//
// Unknown tokens are reported as warnings and skipped. The returned error is
// only non-nil if reading from r fails.
//
func Parse(r io.Reader) ([]*Entity, []ParseWarning, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, errors.Wrap(err, "read grid")
	}
	ents, warns := ParseString(string(b))
	return ents, warns, nil
}

// Load replaces the grid's contents with the entities described by r and
// updates the circuit. Unknown tokens are logged and returned as warnings.
//
// If reading fails, the grid is left untouched.
//
func (g *Grid) Load(r io.Reader) ([]ParseWarning, error) {
	ents, warns, err := Parse(r)
	if err != nil {
		return nil, err
	}
	for _, w := range warns {
		g.log.Warn("unknown token", "line", w.Line, "row", w.Pos, "token", w.Token)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.ents = ents
	g.propagate()
	g.log.Debug("grid loaded", "entities", len(ents), "warnings", len(warns))
	return warns, nil
}
