// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package tunic encodes and renders glyphs of a constructed script.
//
// # Overview
//
// A glyph is composed by toggling stroke primitives in two stacked
// registers, [Top] and [Bottom]. The strokes come from a fixed catalog of
// line segments and circles laid out in a square coordinate space of side
// [Size]. Every primitive is stroked with width [StrokeWidth] and round caps.
//
// # Quick Start
//
//	seq := tunic.Sequence{}.
//	    WithToggled(tunic.Top, 1).
//	    WithToggled(tunic.Top, 6).
//	    WithToggled(tunic.Bottom, 7)
//
//	rec := recording.NewRecorder(tunic.Size, tunic.Size)
//	tunic.RenderRegister(rec, seq, tunic.Top)
//
//	data, _ := tunic.Marshal([]tunic.Glyph{tunic.NewStrokeGlyph("a", seq)})
//
// # Storable Form
//
// Collections are exchanged as a JSON array:
//
//	[
//	  {"id": "a", "sequence": {"top": [1, 6], "bottom": [7]}},
//	  {"id": "b", "str": "•"}
//	]
//
// Stroke id arrays describe set membership only. Ids unknown to the catalog
// survive decoding and are skipped when rendering, so data written against a
// larger catalog still renders the strokes this catalog knows.
//
// # Architecture
//
//   - Core: catalog, Sequence, Glyph, renderer, codec (this package)
//   - recording: draw command capture and named backends
//   - recording/backends/raster, recording/backends/svg: output formats
//   - sheet: collection layout in reading order
//   - editor: headless editing session
//   - store: named records for session restore
//   - cmd/tunic: command line front end
//
// # Concurrency
//
// Everything in this package is synchronous and keeps no state; Sequence
// and Glyph values may be shared between goroutines.
package tunic

// Version is the current version of the module.
const Version = "0.1.0"
