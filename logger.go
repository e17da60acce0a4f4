// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tunic

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard is a slog.Handler that is never enabled.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (d discard) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discard) WithGroup(string) slog.Handler           { return d }

var (
	silent  = slog.New(discard{})
	current atomic.Pointer[slog.Logger]
)

// SetLogger installs l as the logger shared by tunic and its sub-packages.
// Nothing is logged until it is called; nil switches logging off again.
//
// Levels:
//   - [slog.LevelDebug]: skipped strokes, codec sizes, playback counts
//   - [slog.LevelInfo]: records saved and loaded by the store
//   - [slog.LevelWarn]: recoverable problems such as a missing font glyph
//
//	tunic.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
//	    &slog.HandlerOptions{Level: slog.LevelDebug})))
func SetLogger(l *slog.Logger) {
	current.Store(l)
}

// Logger returns the installed logger, or a disabled one. It never returns nil.
func Logger() *slog.Logger {
	if l := current.Load(); l != nil {
		return l
	}
	return silent
}
