// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"golang.org/x/text/unicode/runenames"

	"github.com/gogpu/tunic"
	"github.com/gogpu/tunic/sheet"
)

func (a *app) catalog(args []string) error {
	fs := a.flagSet("catalog", "")
	if err := fs.Parse(args); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "catalog v%d (size %g, stroke width %g)\n", tunic.CatalogVersion, tunic.Size, tunic.StrokeWidth)
	for _, r := range tunic.Registers() {
		fmt.Fprintf(tw, "%s\n", r)
		for _, id := range tunic.StrokeIDs(r) {
			s, _ := tunic.Lookup(r, id)
			fmt.Fprintf(tw, "  %d\t%s\t%s\n", id, s.Label, describeStroke(s))
		}
	}
	return tw.Flush()
}

func describeStroke(s tunic.Stroke) string {
	var parts []string
	for _, seg := range s.Segments {
		parts = append(parts, fmt.Sprintf("line (%g,%g)-(%g,%g)", seg.From.X, seg.From.Y, seg.To.X, seg.To.Y))
	}
	for _, c := range s.Circles {
		parts = append(parts, fmt.Sprintf("circle (%g,%g) r=%g", c.Center.X, c.Center.Y, c.Radius))
	}
	return strings.Join(parts, ", ")
}

func (a *app) glyph(args []string) error {
	fs := a.flagSet("glyph", "[-top ids] [-bottom ids] [-out file|-] [-format png|svg]")
	top := fs.String("top", "", "comma separated top stroke ids")
	bottom := fs.String("bottom", "", "comma separated bottom stroke ids")
	out := fs.String("out", "glyph.png", "output file, or - for stdout")
	format := fs.String("format", "", "output format (png, svg or a backend name); default from -out")
	if err := fs.Parse(args); err != nil {
		return err
	}

	seq, err := parseSequence(*top, *bottom)
	if err != nil {
		return err
	}
	tunic.Logger().Debug("glyph", "sequence", seq.String())
	rec := sheet.Single().Record([]tunic.Glyph{tunic.NewStrokeGlyph("", seq)})
	return a.output(rec, *out, *format)
}

func (a *app) render(args []string) error {
	fs := a.flagSet("render", "[-in file|-] [-out file|-] [-format png|svg] [-cols n] [-cell px]")
	in := fs.String("in", pipeName, "collection file, or - for stdin")
	out := fs.String("out", "sheet.png", "output file, or - for stdout")
	format := fs.String("format", "", "output format (png, svg or a backend name); default from -out")
	cols := fs.Int("cols", 8, "glyphs per row")
	cell := fs.Float64("cell", 48, "side of one register in pixels")
	gap := fs.Float64("gap", 8, "space between glyphs in pixels")
	margin := fs.Float64("margin", 16, "page margin in pixels")
	if err := fs.Parse(args); err != nil {
		return err
	}

	glyphs, err := a.readGlyphs(*in)
	if err != nil {
		return err
	}
	s := sheet.New(sheet.WithColumns(*cols), sheet.WithCellSize(*cell), sheet.WithGap(*gap), sheet.WithMargin(*margin))
	return a.output(s.Record(glyphs), *out, *format)
}

func (a *app) inspect(args []string) error {
	fs := a.flagSet("inspect", "[-in file|-]")
	in := fs.String("in", pipeName, "collection file, or - for stdin")
	if err := fs.Parse(args); err != nil {
		return err
	}

	glyphs, err := a.readGlyphs(*in)
	if err != nil {
		return err
	}
	return writeListing(a.stdout, glyphs)
}

// writeListing prints one line per glyph: position, id, kind and contents.
func writeListing(w io.Writer, glyphs []tunic.Glyph) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, g := range glyphs {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", i, g.ID, g.Kind(), describeGlyph(g))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d glyphs\n", len(glyphs))
	return err
}

func describeGlyph(g tunic.Glyph) string {
	switch g.Kind() {
	case tunic.KindStrokes:
		seq := g.Strokes()
		var parts []string
		for _, r := range tunic.Registers() {
			parts = append(parts, fmt.Sprintf("%s: %s", r, describeStrokes(r, seq.Strokes(r))))
		}
		return strings.Join(parts, " | ")
	case tunic.KindLiteral:
		return describeLiteral(g.Str)
	default:
		return ""
	}
}

func describeStrokes(r tunic.Register, set tunic.StrokeSet) string {
	if set.Len() == 0 {
		return "-"
	}
	parts := make([]string, 0, set.Len())
	for _, id := range set.IDs() {
		label, ok := tunic.Label(r, id)
		if !ok {
			label = "unknown"
		}
		parts = append(parts, fmt.Sprintf("%d %s", id, label))
	}
	return strings.Join(parts, ", ")
}

// describeLiteral quotes s and names each of its runes.
func describeLiteral(s string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%q", s)
	for _, r := range s {
		if r == utf8.RuneError {
			b.WriteString(" invalid")
			continue
		}
		name := runenames.Name(r)
		if name == "" {
			name = "?"
		}
		fmt.Fprintf(&b, " %U %s", r, name)
	}
	return b.String()
}

func (a *app) convert(args []string) error {
	fs := a.flagSet("convert", "-in file|- -out file|- [-gzip]")
	in := fs.String("in", pipeName, "collection file, or - for stdin")
	out := fs.String("out", "", "output file (compressed when it ends in .gz), or - for stdout")
	gz := fs.Bool("gzip", false, "compress output written to stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *out == "" {
		fs.Usage()
		return fmt.Errorf("%w: -out is required", errUsage)
	}

	glyphs, err := a.readGlyphs(*in)
	if err != nil {
		return err
	}
	if err := a.writeGlyphs(*out, glyphs, *gz); err != nil {
		return err
	}
	tunic.Logger().Info("converted", "in", *in, "out", *out, "glyphs", len(glyphs))
	return nil
}
