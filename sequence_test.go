// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tunic

import (
	"slices"
	"testing"
)

func TestStrokeSetDedup(t *testing.T) {
	s := NewStrokeSet(3, 1, 3, 2, 1)
	if got := s.IDs(); !slices.Equal(got, []StrokeID{1, 2, 3}) {
		t.Errorf("IDs() = %v, want [1 2 3]", got)
	}
	if s.String() != "{1 2 3}" {
		t.Errorf("String() = %q", s.String())
	}
}

func TestDoubleToggleIsNoop(t *testing.T) {
	for _, r := range Registers() {
		for _, id := range StrokeIDs(r) {
			seq := Sequence{}.WithToggled(r, id).WithToggled(r, id)
			if !seq.IsEmpty() {
				t.Errorf("double toggle of %v/%d left %v", r, id, seq)
			}
		}
	}
}

func TestWithToggledDoesNotMutate(t *testing.T) {
	orig := NewSequence([]StrokeID{1, 2}, []StrokeID{7})

	added := orig.WithToggled(Top, 5)
	removed := orig.WithToggled(Top, 1)
	bottom := orig.WithToggled(Bottom, 7)

	if !orig.Equal(NewSequence([]StrokeID{1, 2}, []StrokeID{7})) {
		t.Fatalf("receiver mutated: %v", orig)
	}
	if !added.Has(Top, 5) || added.Len() != 4 {
		t.Errorf("added = %v", added)
	}
	if removed.Has(Top, 1) || !removed.Has(Top, 2) {
		t.Errorf("removed = %v", removed)
	}
	if bottom.Has(Bottom, 7) || !bottom.Top().Equal(orig.Top()) {
		t.Errorf("bottom toggle = %v", bottom)
	}
}

func TestToggleKeepsOrder(t *testing.T) {
	seq := Sequence{}
	for _, id := range []StrokeID{6, 2, 7, 1} {
		seq = seq.WithToggled(Top, id)
	}
	if got := seq.Top().IDs(); !slices.Equal(got, []StrokeID{1, 2, 6, 7}) {
		t.Errorf("Top().IDs() = %v, want ascending", got)
	}
}

func TestSequenceString(t *testing.T) {
	seq := NewSequence([]StrokeID{2, 1}, []StrokeID{7})
	if got := seq.String(); got != "top{1 2} bottom{7}" {
		t.Errorf("String() = %q", got)
	}
}

func TestGlyphKind(t *testing.T) {
	empty := Sequence{}
	full := NewSequence([]StrokeID{1}, nil)
	tests := []struct {
		name string
		g    Glyph
		want Kind
	}{
		{"strokes", Glyph{ID: "a", Sequence: &full}, KindStrokes},
		{"literal", Glyph{ID: "b", Str: "!"}, KindLiteral},
		{"neither", Glyph{ID: "c"}, KindEmpty},
		{"both, sequence wins", Glyph{ID: "d", Sequence: &full, Str: "?"}, KindStrokes},
		{"empty sequence yields to str", Glyph{ID: "e", Sequence: &empty, Str: ","}, KindLiteral},
		{"empty sequence only", Glyph{ID: "f", Sequence: &empty}, KindStrokes},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.g.Kind(); got != tt.want {
				t.Errorf("Kind() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGlyphStrokes(t *testing.T) {
	if !(Glyph{ID: "x", Str: "•"}).Strokes().IsEmpty() {
		t.Error("literal glyph should have no strokes")
	}
	g := NewStrokeGlyph("y", NewSequence(nil, []StrokeID{7}))
	if !g.Strokes().Has(Bottom, 7) {
		t.Error("stroke glyph lost its sequence")
	}
}
