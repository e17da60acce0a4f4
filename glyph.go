// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tunic

// Kind tells how a glyph is displayed.
type Kind uint8

const (
	// KindEmpty is a glyph with neither a sequence nor a literal string.
	KindEmpty Kind = iota
	// KindStrokes is a glyph composed from catalog strokes.
	KindStrokes
	// KindLiteral is a literal character such as punctuation.
	KindLiteral
)

func (k Kind) String() string {
	switch k {
	case KindStrokes:
		return "strokes"
	case KindLiteral:
		return "literal"
	default:
		return "empty"
	}
}

// Glyph is one symbol of a collection. A well-formed glyph carries either a
// Sequence or a non-empty Str; both or neither is tolerated.
//
// ID is assigned by whoever creates the glyph and is never changed here.
type Glyph struct {
	ID       string
	Sequence *Sequence
	Str      string
}

// NewStrokeGlyph returns a glyph composed from seq.
func NewStrokeGlyph(id string, seq Sequence) Glyph {
	return Glyph{ID: id, Sequence: &seq}
}

// NewLiteralGlyph returns a glyph displaying s verbatim.
func NewLiteralGlyph(id, s string) Glyph {
	return Glyph{ID: id, Str: s}
}

// HasSequence reports whether the glyph carries a sequence.
func (g Glyph) HasSequence() bool {
	return g.Sequence != nil
}

// HasStr reports whether the glyph carries a literal string.
func (g Glyph) HasStr() bool {
	return g.Str != ""
}

// Kind resolves what the glyph displays. A non-empty sequence wins over a
// literal string; an empty sequence yields to a literal string.
func (g Glyph) Kind() Kind {
	switch {
	case g.Sequence != nil && !g.Sequence.IsEmpty():
		return KindStrokes
	case g.Str != "":
		return KindLiteral
	case g.Sequence != nil:
		return KindStrokes
	default:
		return KindEmpty
	}
}

// Strokes returns the glyph's sequence, or the empty sequence when absent.
func (g Glyph) Strokes() Sequence {
	if g.Sequence == nil {
		return Sequence{}
	}
	return *g.Sequence
}
