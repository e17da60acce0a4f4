// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

import (
	"errors"
	"image"
	"io"

	"github.com/gogpu/tunic"
)

// ErrNotBegun is returned by output methods of a backend that has not been
// through Begin.
var ErrNotBegun = errors.New("recording: backend not begun")

// Backend is implemented by every output format. A Backend is itself a
// tunic.Surface, so glyphs can also be rendered into it directly between
// Begin and End.
//
// # Implementation Contract
//
//  1. Register in init() using recording.Register()
//  2. Stroke every primitive with round caps
//  3. Keep output available after End until the next Begin
type Backend interface {
	tunic.Surface
	tunic.Clearer

	// Begin prepares an empty page of the given dimensions.
	Begin(width, height int) error

	// End finalizes the page.
	End() error

	// DrawText draws s centered on at, with size as the font size.
	DrawText(s string, at tunic.Point, size float64)
}

// WriterBackend can write its output to an io.Writer after End.
type WriterBackend interface {
	Backend

	// WriteTo writes the rendered page.
	WriteTo(w io.Writer) (int64, error)
}

// FileBackend can save its output to a file after End.
type FileBackend interface {
	Backend

	// SaveToFile writes the rendered page to path.
	SaveToFile(path string) error
}

// ImageBackend exposes a rasterized page after End.
type ImageBackend interface {
	Backend

	// Image returns the rendered page, or nil before Begin.
	Image() image.Image
}
