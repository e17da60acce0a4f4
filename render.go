// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tunic

// Surface is the drawing target of one register.
//
// Coordinates are in the register space of side Size. Every primitive is
// stroked with round line caps using the given width. Implementations that
// draw into a differently sized target scale both coordinates and width.
type Surface interface {
	// StrokeLine strokes a straight line.
	StrokeLine(from, to Point, width float64)

	// StrokeCircle strokes the outline of a circle.
	StrokeCircle(center Point, radius, width float64)
}

// Clearer is implemented by surfaces that can erase their content.
type Clearer interface {
	Clear()
}

// RenderRegister draws register r of seq onto s and returns the number of
// primitives issued.
//
// On the top register a baseline is drawn first whenever the glyph has any
// active stroke in either register. Strokes follow in ascending id order;
// ids missing from the catalog are skipped. The surface is not cleared.
func RenderRegister(s Surface, seq Sequence, r Register) int {
	n := 0
	if r == Top && !seq.IsEmpty() {
		s.StrokeLine(baseline.From, baseline.To, StrokeWidth)
		n++
	}
	t := table(r)
	for _, id := range seq.Strokes(r).ids {
		stroke, ok := t[id]
		if !ok {
			Logger().Debug("tunic: skipping unknown stroke", "register", r, "id", int(id))
			continue
		}
		n += drawStroke(s, stroke)
	}
	return n
}

// Render draws both registers of seq onto their surfaces.
func Render(top, bottom Surface, seq Sequence) int {
	return RenderRegister(top, seq, Top) + RenderRegister(bottom, seq, Bottom)
}

// Redraw clears s when it implements Clearer and then renders register r.
func Redraw(s Surface, seq Sequence, r Register) int {
	if c, ok := s.(Clearer); ok {
		c.Clear()
	}
	return RenderRegister(s, seq, r)
}

func drawStroke(s Surface, stroke Stroke) int {
	for _, seg := range stroke.Segments {
		s.StrokeLine(seg.From, seg.To, StrokeWidth)
	}
	for _, c := range stroke.Circles {
		s.StrokeCircle(c.Center, c.Radius, StrokeWidth)
	}
	return stroke.Primitives()
}
