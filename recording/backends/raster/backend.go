// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster renders recordings to PNG images using gg.Context.
//
// Strokes are drawn with gg's software rasterizer using round caps. Literal
// glyphs are drawn with the Go Regular font unless another font is supplied
// with WithFont.
//
// # Example
//
//	import _ "github.com/gogpu/tunic/recording/backends/raster"
//
//	b, _ := recording.NewBackend("raster")
//	_ = r.Playback(b)
//	_ = b.(recording.FileBackend).SaveToFile("sheet.png")
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/tunic"
	"github.com/gogpu/tunic/recording"
)

func init() {
	recording.Register("raster", func() recording.Backend {
		return NewBackend()
	}, ".png")
}

// Option configures a Backend.
type Option func(*options)

type options struct {
	ink        color.Color
	background color.Color
	font       []byte
}

func defaultOptions() options {
	return options{
		ink:        color.Black,
		background: color.Transparent,
	}
}

// WithInk sets the stroke and text color. Default black.
func WithInk(c color.Color) Option {
	return func(o *options) { o.ink = c }
}

// WithBackground sets the color the page is cleared to. Default transparent.
func WithBackground(c color.Color) Option {
	return func(o *options) { o.background = c }
}

// WithFont sets TrueType/OpenType data used for literal glyphs.
func WithFont(data []byte) Option {
	return func(o *options) { o.font = data }
}

var defaultSource = sync.OnceValues(func() (*text.FontSource, error) {
	return text.NewFontSource(goregular.TTF)
})

// Backend rasterizes commands into a gg.Context.
type Backend struct {
	opts   options
	ctx    *gg.Context
	source *text.FontSource
	width  int
	height int
}

var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
	_ recording.ImageBackend  = (*Backend)(nil)
)

// NewBackend creates a raster backend. Call Begin before drawing.
func NewBackend(opts ...Option) *Backend {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Backend{opts: o}
}

// Begin allocates a cleared page of the given dimensions.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("raster: invalid page size %dx%d", width, height)
	}
	if b.ctx != nil {
		_ = b.ctx.Close()
	}
	b.width, b.height = width, height
	b.ctx = gg.NewContext(width, height)
	b.Clear()
	return nil
}

// End finalizes the page, flushing any accelerated drawing into the pixels.
func (b *Backend) End() error {
	if b.ctx == nil {
		return recording.ErrNotBegun
	}
	if err := b.ctx.FlushGPU(); err != nil {
		return fmt.Errorf("raster: flush: %w", err)
	}
	return nil
}

// Clear fills the page with the background color.
func (b *Backend) Clear() {
	if b.ctx == nil {
		return
	}
	b.ctx.ClearWithColor(gg.FromColor(b.opts.background))
}

func (b *Backend) stroke(width float64) {
	b.ctx.SetColor(b.opts.ink)
	b.ctx.SetLineWidth(width)
	b.ctx.SetLineCap(gg.LineCapRound)
	_ = b.ctx.Stroke()
}

// StrokeLine implements tunic.Surface.
func (b *Backend) StrokeLine(from, to tunic.Point, width float64) {
	if b.ctx == nil {
		return
	}
	b.ctx.ClearPath()
	b.ctx.DrawLine(from.X, from.Y, to.X, to.Y)
	b.stroke(width)
}

// StrokeCircle implements tunic.Surface.
func (b *Backend) StrokeCircle(center tunic.Point, radius, width float64) {
	if b.ctx == nil {
		return
	}
	b.ctx.ClearPath()
	b.ctx.DrawCircle(center.X, center.Y, radius)
	b.stroke(width)
}

// DrawText draws s centered on at.
func (b *Backend) DrawText(s string, at tunic.Point, size float64) {
	if b.ctx == nil || s == "" {
		return
	}
	src, err := b.fontSource()
	if err != nil {
		tunic.Logger().Warn("raster: no font for literal glyph", "text", s, "err", err)
		return
	}
	face := src.Face(size)
	for _, r := range s {
		if !face.HasGlyph(r) {
			tunic.Logger().Warn("raster: font has no glyph", "rune", string(r))
		}
	}
	b.ctx.SetFont(face)
	b.ctx.SetColor(b.opts.ink)
	b.ctx.DrawStringAnchored(s, at.X, at.Y, 0.5, 0.5)
}

func (b *Backend) fontSource() (*text.FontSource, error) {
	if b.source != nil {
		return b.source, nil
	}
	if b.opts.font == nil {
		return defaultSource()
	}
	src, err := text.NewFontSource(b.opts.font)
	if err != nil {
		return nil, err
	}
	b.source = src
	return src, nil
}

// Image returns the rendered page, or nil before Begin.
func (b *Backend) Image() image.Image {
	if b.ctx == nil {
		return nil
	}
	return b.ctx.Image()
}

// WriteTo encodes the page as PNG.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.ctx == nil {
		return 0, recording.ErrNotBegun
	}
	cw := &countingWriter{w: w}
	err := png.Encode(cw, b.ctx.Image())
	return cw.n, err
}

// SaveToFile saves the page as a PNG file.
func (b *Backend) SaveToFile(path string) error {
	if b.ctx == nil {
		return recording.ErrNotBegun
	}
	return b.ctx.SavePNG(path)
}

// Width returns the page width.
func (b *Backend) Width() int { return b.width }

// Height returns the page height.
func (b *Backend) Height() int { return b.height }

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
