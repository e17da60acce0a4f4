// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tunic

import (
	"fmt"
	"slices"
)

// Geometry constants shared by the catalog and every surface.
const (
	// Size is the side length of the square coordinate space of one register.
	Size = 200.0

	// StrokeWidth is the line width of every primitive. All primitives are
	// drawn with round line caps.
	StrokeWidth = 15.0

	// CatalogVersion identifies the stroke table below. Bump it whenever a
	// stroke is added or its geometry changes.
	CatalogVersion = 1
)

const (
	halfWidth  = StrokeWidth / 2
	center     = Size / 2
	anchorDiff = 40.0
	anchorTop  = anchorDiff
	anchorBot  = Size - anchorDiff
	dotRadius  = anchorDiff / 2
)

// Register selects one of the two stacked zones of a glyph.
type Register uint8

const (
	// Top is the upper register.
	Top Register = iota
	// Bottom is the lower register.
	Bottom
)

var registerNames = [...]string{
	Top:    "top",
	Bottom: "bottom",
}

// String returns "top" or "bottom".
func (r Register) String() string {
	if int(r) < len(registerNames) {
		return registerNames[r]
	}
	return fmt.Sprintf("Register(%d)", uint8(r))
}

// ParseRegister converts "top" or "bottom" into a Register.
func ParseRegister(s string) (Register, error) {
	for i, name := range registerNames {
		if name == s {
			return Register(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRegister, s)
}

// Registers returns both registers, top first.
func Registers() []Register {
	return []Register{Top, Bottom}
}

// StrokeID identifies a stroke within one register.
type StrokeID int

// Point is a position in the register coordinate space.
type Point struct {
	X, Y float64
}

// Segment is a straight line between two points.
type Segment struct {
	From, To Point
}

// Circle is an outlined circle.
type Circle struct {
	Center Point
	Radius float64
}

// Stroke is one catalog entry: a display label and the primitives drawn
// when the stroke is active. Segments are drawn before circles.
type Stroke struct {
	Label    string
	Segments []Segment
	Circles  []Circle
}

// Primitives returns the number of primitives the stroke draws.
func (s Stroke) Primitives() int {
	return len(s.Segments) + len(s.Circles)
}

func (s Stroke) clone() Stroke {
	return Stroke{
		Label:    s.Label,
		Segments: slices.Clone(s.Segments),
		Circles:  slices.Clone(s.Circles),
	}
}

var (
	ptTop         = Point{center, anchorTop}
	ptBottom      = Point{center, anchorBot}
	ptLeft        = Point{0, center}
	ptRight       = Point{Size, center}
	ptLeftTop     = Point{halfWidth, anchorTop}
	ptLeftBottom  = Point{halfWidth, Size}
	ptBottomFloor = Point{center, Size}
)

type strokeTable map[StrokeID]Stroke

// rhombus holds the four diamond edges shared by both registers.
var rhombus = strokeTable{
	1: {Label: "Top - Left", Segments: []Segment{{ptTop, ptLeft}}},
	2: {Label: "Top - Right", Segments: []Segment{{ptTop, ptRight}}},
	3: {Label: "Bottom - Right", Segments: []Segment{{ptBottom, ptRight}}},
	4: {Label: "Bottom - Left", Segments: []Segment{{ptBottom, ptLeft}}},
}

var catalog = [...]strokeTable{
	Top: merge(rhombus, strokeTable{
		5: {Label: "Left line", Segments: []Segment{{Point{halfWidth, center + halfWidth}, ptLeftBottom}}},
		6: {Label: "Center line", Segments: []Segment{{ptTop, ptBottom}, {ptBottom, ptBottomFloor}}},
		7: {Label: "Small line", Segments: []Segment{{ptBottom, ptBottomFloor}}},
	}),
	Bottom: merge(rhombus, strokeTable{
		5: {Label: "Left line", Segments: []Segment{{Point{halfWidth, center - halfWidth}, ptLeftTop}}},
		6: {Label: "Center line", Segments: []Segment{{ptTop, ptBottom}}},
		7: {Label: "Bottom Circle", Circles: []Circle{{Point{center, anchorBot + dotRadius}, dotRadius}}},
	}),
}

// merge returns base with overrides applied on top of it.
func merge(base, overrides strokeTable) strokeTable {
	out := make(strokeTable, len(base)+len(overrides))
	for id, s := range base {
		out[id] = s
	}
	for id, s := range overrides {
		out[id] = s
	}
	return out
}

func table(r Register) strokeTable {
	if int(r) < len(catalog) {
		return catalog[r]
	}
	return nil
}

// Lookup returns the stroke registered under id in register r.
// The second result is false for ids outside the catalog.
func Lookup(r Register, id StrokeID) (Stroke, bool) {
	s, ok := table(r)[id]
	if !ok {
		return Stroke{}, false
	}
	return s.clone(), true
}

// Label returns the display label of a stroke.
func Label(r Register, id StrokeID) (string, bool) {
	s, ok := table(r)[id]
	return s.Label, ok
}

// StrokeIDs returns the ids defined for register r in ascending order.
func StrokeIDs(r Register) []StrokeID {
	t := table(r)
	ids := make([]StrokeID, 0, len(t))
	for id := range t {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Known reports whether id is defined in register r.
func Known(r Register, id StrokeID) bool {
	_, ok := table(r)[id]
	return ok
}

// baseline is the separator drawn near the bottom edge of the top register
// whenever the glyph has any active stroke.
var baseline = Segment{Point{0, Size - halfWidth}, Point{Size, Size - halfWidth}}
