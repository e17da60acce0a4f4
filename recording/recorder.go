// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

import (
	"fmt"
	"slices"

	"github.com/gogpu/tunic"
)

// transform is a uniform scale followed by a translation.
type transform struct {
	scale  float64
	tx, ty float64
}

var identity = transform{scale: 1}

func (t transform) point(p tunic.Point) tunic.Point {
	return tunic.Point{X: p.X*t.scale + t.tx, Y: p.Y*t.scale + t.ty}
}

// Recorder captures drawing operations as commands. It implements
// tunic.Surface and tunic.Clearer, so the renderer can draw into it directly.
// Use FinishRecording to obtain an immutable Recording that can be replayed
// to different backends.
//
// Example:
//
//	rec := recording.NewRecorder(tunic.Size, tunic.Size)
//	tunic.RenderRegister(rec, seq, tunic.Top)
//	r := rec.FinishRecording()
//	r.Playback(svgBackend)
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
	current       transform
	stack         []transform
}

var (
	_ tunic.Surface = (*Recorder)(nil)
	_ tunic.Clearer = (*Recorder)(nil)
)

// NewRecorder creates a Recorder for a page of the given dimensions.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:    width,
		height:   height,
		commands: make([]Command, 0, 16),
		current:  identity,
	}
}

// Width returns the page width.
func (r *Recorder) Width() int { return r.width }

// Height returns the page height.
func (r *Recorder) Height() int { return r.height }

// Save pushes the current transform.
func (r *Recorder) Save() {
	r.stack = append(r.stack, r.current)
}

// Restore pops the transform pushed by Save. With an empty stack it is a no-op.
func (r *Recorder) Restore() {
	if len(r.stack) == 0 {
		return
	}
	r.current = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
}

// Translate moves the origin of subsequent commands.
func (r *Recorder) Translate(x, y float64) {
	r.current.tx += x * r.current.scale
	r.current.ty += y * r.current.scale
}

// Scale scales subsequent coordinates, radii, widths and text sizes.
func (r *Recorder) Scale(s float64) {
	r.current.scale *= s
}

// Clear drops every command recorded so far and records a ClearCommand, so
// that a replay starts from an erased page.
func (r *Recorder) Clear() {
	r.commands = append(r.commands[:0], ClearCommand{})
}

// StrokeLine implements tunic.Surface.
func (r *Recorder) StrokeLine(from, to tunic.Point, width float64) {
	r.commands = append(r.commands, StrokeLineCommand{
		From:  r.current.point(from),
		To:    r.current.point(to),
		Width: width * r.current.scale,
	})
}

// StrokeCircle implements tunic.Surface.
func (r *Recorder) StrokeCircle(center tunic.Point, radius, width float64) {
	r.commands = append(r.commands, StrokeCircleCommand{
		Center: r.current.point(center),
		Radius: radius * r.current.scale,
		Width:  width * r.current.scale,
	})
}

// DrawText records s centered on at.
func (r *Recorder) DrawText(s string, at tunic.Point, size float64) {
	r.commands = append(r.commands, DrawTextCommand{
		Text: s,
		At:   r.current.point(at),
		Size: size * r.current.scale,
	})
}

// FinishRecording returns an immutable Recording of all commands.
// The Recorder may keep recording afterwards without affecting it.
func (r *Recorder) FinishRecording() *Recording {
	return &Recording{
		width:    r.width,
		height:   r.height,
		commands: slices.Clone(r.commands),
	}
}

// Recording is an immutable list of drawing commands. It can be replayed
// to any Backend and shared between goroutines.
type Recording struct {
	width, height int
	commands      []Command
}

// Width returns the page width.
func (r *Recording) Width() int { return r.width }

// Height returns the page height.
func (r *Recording) Height() int { return r.height }

// Commands returns a copy of the recorded commands.
func (r *Recording) Commands() []Command {
	return slices.Clone(r.commands)
}

// Count returns the number of commands of type t.
func (r *Recording) Count(t CommandType) int {
	n := 0
	for _, c := range r.commands {
		if c.Type() == t {
			n++
		}
	}
	return n
}

// Playback replays the recording to backend, bracketed by Begin and End.
func (r *Recording) Playback(backend Backend) error {
	if err := backend.Begin(r.width, r.height); err != nil {
		return fmt.Errorf("recording: begin playback: %w", err)
	}
	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case ClearCommand:
			backend.Clear()
		case StrokeLineCommand:
			backend.StrokeLine(c.From, c.To, c.Width)
		case StrokeCircleCommand:
			backend.StrokeCircle(c.Center, c.Radius, c.Width)
		case DrawTextCommand:
			backend.DrawText(c.Text, c.At, c.Size)
		}
	}
	tunic.Logger().Debug("recording: playback", "commands", len(r.commands),
		"width", r.width, "height", r.height)
	if err := backend.End(); err != nil {
		return fmt.Errorf("recording: end playback: %w", err)
	}
	return nil
}
