// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tunic

import (
	"slices"
	"strconv"
	"strings"
)

// StrokeSet is an immutable set of stroke ids kept in ascending order.
// The zero value is the empty set.
type StrokeSet struct {
	ids []StrokeID
}

// NewStrokeSet builds a set from ids. Duplicates collapse.
func NewStrokeSet(ids ...StrokeID) StrokeSet {
	if len(ids) == 0 {
		return StrokeSet{}
	}
	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	return StrokeSet{ids: slices.Compact(sorted)}
}

// Has reports whether id is a member.
func (s StrokeSet) Has(id StrokeID) bool {
	_, ok := slices.BinarySearch(s.ids, id)
	return ok
}

// Len returns the number of members.
func (s StrokeSet) Len() int {
	return len(s.ids)
}

// IDs returns the members in ascending order. The slice is a copy.
func (s StrokeSet) IDs() []StrokeID {
	return slices.Clone(s.ids)
}

// Equal reports set equality.
func (s StrokeSet) Equal(o StrokeSet) bool {
	return slices.Equal(s.ids, o.ids)
}

// WithToggled returns a new set with id added if absent or removed if present.
func (s StrokeSet) WithToggled(id StrokeID) StrokeSet {
	i, found := slices.BinarySearch(s.ids, id)
	if found {
		out := make([]StrokeID, 0, len(s.ids)-1)
		out = append(out, s.ids[:i]...)
		return StrokeSet{ids: append(out, s.ids[i+1:]...)}
	}
	out := make([]StrokeID, 0, len(s.ids)+1)
	out = append(out, s.ids[:i]...)
	out = append(out, id)
	return StrokeSet{ids: append(out, s.ids[i:]...)}
}

// String formats the set as "{1 2 6}".
func (s StrokeSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, id := range s.ids {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(int(id)))
	}
	b.WriteByte('}')
	return b.String()
}

// Sequence is the pair of stroke selections that defines a composed glyph.
// Sequence values are immutable; toggling returns a new value.
type Sequence struct {
	top    StrokeSet
	bottom StrokeSet
}

// NewSequence builds a sequence from the active ids of each register.
func NewSequence(top, bottom []StrokeID) Sequence {
	return Sequence{top: NewStrokeSet(top...), bottom: NewStrokeSet(bottom...)}
}

// Strokes returns the selection of register r.
func (s Sequence) Strokes(r Register) StrokeSet {
	if r == Bottom {
		return s.bottom
	}
	return s.top
}

// Top returns the top selection.
func (s Sequence) Top() StrokeSet { return s.top }

// Bottom returns the bottom selection.
func (s Sequence) Bottom() StrokeSet { return s.bottom }

// Has reports whether id is active in register r.
func (s Sequence) Has(r Register, id StrokeID) bool {
	return s.Strokes(r).Has(id)
}

// Len returns the number of active strokes across both registers.
func (s Sequence) Len() int {
	return s.top.Len() + s.bottom.Len()
}

// IsEmpty reports whether no stroke is active in either register.
func (s Sequence) IsEmpty() bool {
	return s.Len() == 0
}

// Equal compares set membership of both registers.
func (s Sequence) Equal(o Sequence) bool {
	return s.top.Equal(o.top) && s.bottom.Equal(o.bottom)
}

// WithToggled returns a copy of s with id toggled in register r.
// Toggling the same id twice yields a sequence equal to s.
func (s Sequence) WithToggled(r Register, id StrokeID) Sequence {
	if r == Bottom {
		return Sequence{top: s.top, bottom: s.bottom.WithToggled(id)}
	}
	return Sequence{top: s.top.WithToggled(id), bottom: s.bottom}
}

// String formats the sequence as "top{1 2} bottom{7}".
func (s Sequence) String() string {
	return "top" + s.top.String() + " bottom" + s.bottom.String()
}
