// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package sheet lays out a glyph collection on a single page in reading
// order, left to right and top to bottom.
//
// Each glyph occupies a cell of two stacked squares: the top register above
// the bottom register. Literal glyphs are drawn as centered text spanning the
// cell.
//
//	s := sheet.New(sheet.WithColumns(10), sheet.WithCellSize(48))
//	r := s.Record(glyphs)
//	_ = r.Playback(backend)
package sheet

import (
	"github.com/gogpu/tunic"
	"github.com/gogpu/tunic/recording"
)

// Option configures a Sheet.
type Option func(*options)

type options struct {
	columns  int
	cellSize float64
	gap      float64
	margin   float64
}

func defaultOptions() options {
	return options{
		columns:  8,
		cellSize: 48,
		gap:      8,
		margin:   16,
	}
}

// WithColumns sets the number of glyphs per row. Values below 1 are ignored.
func WithColumns(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.columns = n
		}
	}
}

// WithCellSize sets the side of one register square in pixels.
// Values not above zero are ignored.
func WithCellSize(px float64) Option {
	return func(o *options) {
		if px > 0 {
			o.cellSize = px
		}
	}
}

// WithGap sets the space between cells.
func WithGap(px float64) Option {
	return func(o *options) {
		if px >= 0 {
			o.gap = px
		}
	}
}

// WithMargin sets the space around the page edge.
func WithMargin(px float64) Option {
	return func(o *options) {
		if px >= 0 {
			o.margin = px
		}
	}
}

// Sheet computes page geometry and records collections.
// A Sheet holds only its configuration and may be shared.
type Sheet struct {
	opts options
}

// New creates a Sheet.
func New(opts ...Option) *Sheet {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Sheet{opts: o}
}

// Single returns a sheet that draws one glyph at catalog scale with no
// margin: a page of Size by 2*Size.
func Single() *Sheet {
	return New(WithColumns(1), WithCellSize(tunic.Size), WithGap(0), WithMargin(0))
}

// Cell returns the top-left corner of the cell of glyph i.
func (s *Sheet) Cell(i int) tunic.Point {
	col := i % s.opts.columns
	row := i / s.opts.columns
	return tunic.Point{
		X: s.opts.margin + float64(col)*(s.opts.cellSize+s.opts.gap),
		Y: s.opts.margin + float64(row)*(2*s.opts.cellSize+s.opts.gap),
	}
}

// PageSize returns the page dimensions for n glyphs. An empty collection
// still gets a page of one blank cell.
func (s *Sheet) PageSize(n int) (width, height int) {
	cols := min(max(n, 1), s.opts.columns)
	rows := max((n+s.opts.columns-1)/s.opts.columns, 1)

	w := 2*s.opts.margin + float64(cols)*s.opts.cellSize + float64(cols-1)*s.opts.gap
	h := 2*s.opts.margin + float64(rows)*2*s.opts.cellSize + float64(rows-1)*s.opts.gap
	return int(w + 0.5), int(h + 0.5)
}

// Record draws glyphs into a new recording sized with PageSize.
func (s *Sheet) Record(glyphs []tunic.Glyph) *recording.Recording {
	w, h := s.PageSize(len(glyphs))
	rec := recording.NewRecorder(w, h)
	for i, g := range glyphs {
		s.draw(rec, g, s.Cell(i))
	}
	tunic.Logger().Debug("sheet: recorded glyphs", "glyphs", len(glyphs), "width", w, "height", h)
	return rec.FinishRecording()
}

// Render records glyphs and plays them back to backend.
func (s *Sheet) Render(glyphs []tunic.Glyph, backend recording.Backend) error {
	return s.Record(glyphs).Playback(backend)
}

func (s *Sheet) draw(rec *recording.Recorder, g tunic.Glyph, at tunic.Point) {
	cell := s.opts.cellSize
	switch g.Kind() {
	case tunic.KindStrokes:
		rec.Save()
		rec.Translate(at.X, at.Y)
		rec.Scale(cell / tunic.Size)
		seq := g.Strokes()
		tunic.RenderRegister(rec, seq, tunic.Top)
		rec.Translate(0, tunic.Size)
		tunic.RenderRegister(rec, seq, tunic.Bottom)
		rec.Restore()
	case tunic.KindLiteral:
		rec.DrawText(g.Str, tunic.Point{X: at.X + cell/2, Y: at.Y + cell}, cell)
	}
}
