// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package editor implements a headless glyph editing session.
//
// A Session holds a glyph collection and a draft sequence. Toggling strokes
// edits the draft; Commit turns the draft into a glyph, either appending it
// to the collection or replacing the glyph selected with Edit. Punctuation
// glyphs are appended directly.
//
//	s := editor.New(nil, editor.WithOnChange(st.SaveSession))
//	_ = s.Toggle(tunic.Top, 1)
//	_ = s.Toggle(tunic.Bottom, 7)
//	g, err := s.Commit()
package editor

import (
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/gogpu/tunic"
)

var (
	// ErrNotFound is returned when no glyph has the requested id.
	ErrNotFound = errors.New("editor: glyph not found")

	// ErrIndex is returned for positions outside the collection.
	ErrIndex = errors.New("editor: index out of range")

	// ErrUnknownStroke is returned when toggling a stroke the catalog lacks.
	ErrUnknownStroke = errors.New("editor: unknown stroke")

	// ErrEmptyLiteral is returned when adding a literal glyph without text.
	ErrEmptyLiteral = errors.New("editor: empty literal")
)

// Punctuation lists the literal glyphs offered next to the stroke glyphs.
var Punctuation = []string{"•", ",", "!", "?"}

// IDFunc generates glyph ids.
type IDFunc func() string

// Option configures a Session.
type Option func(*options)

type options struct {
	newID    IDFunc
	onChange func([]tunic.Glyph) error
}

// WithIDFunc replaces the id generator. Default: time-based UUIDs (version 1).
func WithIDFunc(fn IDFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.newID = fn
		}
	}
}

// WithOnChange registers fn to receive a copy of the collection after every
// change. An error from fn is returned by the mutating call; the change
// itself is kept.
func WithOnChange(fn func([]tunic.Glyph) error) Option {
	return func(o *options) { o.onChange = fn }
}

func newTimeID() string {
	id, err := uuid.NewUUID()
	if err != nil {
		tunic.Logger().Warn("editor: time-based uuid unavailable, using random", "error", err)
		return uuid.NewString()
	}
	return id.String()
}

// Session is an editing session. It is not safe for concurrent use.
type Session struct {
	opts    options
	glyphs  []tunic.Glyph
	draft   tunic.Sequence
	editing string
}

// New starts a session over a copy of glyphs.
func New(glyphs []tunic.Glyph, opts ...Option) *Session {
	o := options{newID: newTimeID}
	for _, opt := range opts {
		opt(&o)
	}
	return &Session{opts: o, glyphs: slices.Clone(glyphs)}
}

// Glyphs returns a copy of the collection in reading order.
func (s *Session) Glyphs() []tunic.Glyph {
	return slices.Clone(s.glyphs)
}

// Len returns the number of glyphs in the collection.
func (s *Session) Len() int { return len(s.glyphs) }

// Draft returns the sequence being composed.
func (s *Session) Draft() tunic.Sequence { return s.draft }

// Editing returns the id of the glyph selected for update.
func (s *Session) Editing() (string, bool) {
	return s.editing, s.editing != ""
}

// Find returns the position of the glyph with the given id.
func (s *Session) Find(id string) (int, bool) {
	i := slices.IndexFunc(s.glyphs, func(g tunic.Glyph) bool { return g.ID == id })
	return i, i >= 0
}

// Toggle flips stroke id of register r in the draft.
func (s *Session) Toggle(r tunic.Register, id tunic.StrokeID) error {
	if !tunic.Known(r, id) {
		return fmt.Errorf("%w: %s %d", ErrUnknownStroke, r, id)
	}
	s.draft = s.draft.WithToggled(r, id)
	return nil
}

// ClearDraft empties the draft without touching the selection.
func (s *Session) ClearDraft() {
	s.draft = tunic.Sequence{}
}

// Edit selects the glyph with the given id for update. When the glyph has a
// sequence, the draft is replaced by it; a literal glyph keeps the current
// draft.
func (s *Session) Edit(id string) error {
	i, ok := s.Find(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	s.editing = id
	if g := s.glyphs[i]; g.HasSequence() {
		s.draft = *g.Sequence
	}
	return nil
}

// CancelEdit drops the selection. The draft is kept.
func (s *Session) CancelEdit() {
	s.editing = ""
}

// Commit turns the draft into a glyph with a fresh id. Without a selection
// the glyph is appended; with one it replaces the selected glyph at the same
// position. If the selected glyph is gone, the new glyph is appended.
// Commit clears both the draft and the selection.
func (s *Session) Commit() (tunic.Glyph, error) {
	g := tunic.NewStrokeGlyph(s.opts.newID(), s.draft)

	if i, ok := s.Find(s.editing); ok && s.editing != "" {
		s.glyphs = slices.Clone(s.glyphs)
		s.glyphs[i] = g
		tunic.Logger().Debug("editor: glyph updated", "index", i, "id", g.ID)
	} else {
		s.glyphs = append(slices.Clip(s.glyphs), g)
		tunic.Logger().Debug("editor: glyph added", "index", len(s.glyphs)-1, "id", g.ID)
	}
	s.editing = ""
	s.draft = tunic.Sequence{}
	return g, s.changed()
}

// AddLiteral appends a literal glyph displaying str.
// The draft and selection are left alone.
func (s *Session) AddLiteral(str string) (tunic.Glyph, error) {
	if str == "" {
		return tunic.Glyph{}, ErrEmptyLiteral
	}
	g := tunic.NewLiteralGlyph(s.opts.newID(), str)
	s.glyphs = append(slices.Clip(s.glyphs), g)
	return g, s.changed()
}

// Move takes the glyph at position from out of the collection and inserts
// it at position to.
func (s *Session) Move(from, to int) error {
	n := len(s.glyphs)
	if from < 0 || from >= n || to < 0 || to >= n {
		return fmt.Errorf("%w: move %d to %d of %d", ErrIndex, from, to, n)
	}
	if from == to {
		return nil
	}
	g := s.glyphs[from]
	glyphs := slices.Delete(slices.Clone(s.glyphs), from, from+1)
	s.glyphs = slices.Insert(glyphs, to, g)
	return s.changed()
}

// Remove deletes the glyph at index. Removing the selected glyph drops the
// selection.
func (s *Session) Remove(index int) error {
	if index < 0 || index >= len(s.glyphs) {
		return fmt.Errorf("%w: remove %d of %d", ErrIndex, index, len(s.glyphs))
	}
	if s.glyphs[index].ID == s.editing {
		s.editing = ""
	}
	s.glyphs = slices.Delete(slices.Clone(s.glyphs), index, index+1)
	return s.changed()
}

// Reset empties the collection and drops the selection. The draft is kept.
func (s *Session) Reset() error {
	s.glyphs = nil
	s.editing = ""
	return s.changed()
}

// Replace swaps in a new collection, as when loading an exported file.
func (s *Session) Replace(glyphs []tunic.Glyph) error {
	s.glyphs = slices.Clone(glyphs)
	if _, ok := s.Find(s.editing); !ok {
		s.editing = ""
	}
	return s.changed()
}

func (s *Session) changed() error {
	if s.opts.onChange == nil {
		return nil
	}
	if err := s.opts.onChange(s.Glyphs()); err != nil {
		return fmt.Errorf("editor: on change: %w", err)
	}
	return nil
}
