// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package svg renders recordings to SVG documents.
//
// Each StrokeLine becomes a <line>, each StrokeCircle a <circle> and each
// DrawText a centered <text>. All strokes share round line caps.
//
//	import _ "github.com/gogpu/tunic/recording/backends/svg"
//
//	b, _ := recording.NewBackend("svg")
//	_ = r.Playback(b)
//	_, _ = b.(recording.WriterBackend).WriteTo(os.Stdout)
package svg

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"

	"github.com/gogpu/tunic"
	"github.com/gogpu/tunic/recording"
)

func init() {
	recording.Register("svg", func() recording.Backend {
		return NewBackend()
	}, ".svg")
}

// Option configures a Backend.
type Option func(*options)

type options struct {
	ink        color.Color
	background color.Color
	fontFamily string
}

// WithInk sets the stroke and text color. Default black.
func WithInk(c color.Color) Option {
	return func(o *options) { o.ink = c }
}

// WithBackground paints the page with c. Default none.
func WithBackground(c color.Color) Option {
	return func(o *options) { o.background = c }
}

// WithFontFamily sets the font-family of literal glyphs. Default "sans-serif".
func WithFontFamily(family string) Option {
	return func(o *options) { o.fontFamily = family }
}

// Backend builds an SVG document in memory.
type Backend struct {
	opts   options
	width  int
	height int
	begun  bool
	body   bytes.Buffer
	doc    []byte
}

var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
)

// NewBackend creates an SVG backend.
func NewBackend(opts ...Option) *Backend {
	o := options{ink: color.Black, background: color.Transparent, fontFamily: "sans-serif"}
	for _, opt := range opts {
		opt(&o)
	}
	return &Backend{opts: o}
}

// Begin starts a new document.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("svg: invalid page size %dx%d", width, height)
	}
	b.width, b.height = width, height
	b.body.Reset()
	b.doc = nil
	b.begun = true
	return nil
}

// Clear drops every element drawn so far.
func (b *Backend) Clear() {
	b.body.Reset()
}

// StrokeLine implements tunic.Surface.
func (b *Backend) StrokeLine(from, to tunic.Point, width float64) {
	fmt.Fprintf(&b.body, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke-width="%s"/>`+"\n",
		num(from.X), num(from.Y), num(to.X), num(to.Y), num(width))
}

// StrokeCircle implements tunic.Surface.
func (b *Backend) StrokeCircle(center tunic.Point, radius, width float64) {
	fmt.Fprintf(&b.body, `<circle cx="%s" cy="%s" r="%s" stroke-width="%s"/>`+"\n",
		num(center.X), num(center.Y), num(radius), num(width))
}

// DrawText draws s centered on at.
func (b *Backend) DrawText(s string, at tunic.Point, size float64) {
	if s == "" {
		return
	}
	fmt.Fprintf(&b.body, `<text x="%s" y="%s" font-size="%s" stroke="none" fill="%s" font-family="%s" text-anchor="middle" dominant-baseline="central">`,
		num(at.X), num(at.Y), num(size), hex(b.opts.ink), attr(b.opts.fontFamily))
	_ = xml.EscapeText(&b.body, []byte(s))
	b.body.WriteString("</text>\n")
}

// End assembles the document.
func (b *Backend) End() error {
	if !b.begun {
		return recording.ErrNotBegun
	}
	var doc bytes.Buffer
	fmt.Fprintf(&doc, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		b.width, b.height, b.width, b.height)
	if _, _, _, a := b.opts.background.RGBA(); a != 0 {
		fmt.Fprintf(&doc, `<rect width="100%%" height="100%%" fill="%s"%s/>`+"\n",
			hex(b.opts.background), opacity("fill-opacity", b.opts.background))
	}
	fmt.Fprintf(&doc, `<g fill="none" stroke="%s"%s stroke-linecap="round">`+"\n",
		hex(b.opts.ink), opacity("stroke-opacity", b.opts.ink))
	doc.Write(b.body.Bytes())
	doc.WriteString("</g>\n</svg>\n")
	b.doc = doc.Bytes()
	return nil
}

// Bytes returns the document assembled by End.
func (b *Backend) Bytes() []byte {
	return b.doc
}

// WriteTo writes the document assembled by End.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.doc == nil {
		return 0, recording.ErrNotBegun
	}
	n, err := w.Write(b.doc)
	return int64(n), err
}

// SaveToFile writes the document to path.
func (b *Backend) SaveToFile(path string) error {
	if b.doc == nil {
		return recording.ErrNotBegun
	}
	if err := os.WriteFile(path, b.doc, 0o644); err != nil {
		return fmt.Errorf("svg: save %s: %w", path, err)
	}
	return nil
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func hex(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

// opacity returns an opacity attribute for translucent colors, or "".
func opacity(name string, c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0xff {
		return ""
	}
	return fmt.Sprintf(` %s="%s"`, name, num(float64(n.A)/255))
}

func attr(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
