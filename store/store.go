// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package store persists glyph collections as named records in a directory.
//
// Each record is one file holding the JSON collection format, optionally
// gzip-compressed. A record that was never saved loads as an empty
// collection, which is how a fresh session starts.
//
//	st, err := store.Open(dir)
//	glyphs, err := st.LoadSession()
//	...
//	err = st.SaveSession(glyphs)
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/gogpu/tunic"
)

// SessionRecord is the record holding the working collection.
const SessionRecord = "characters"

const recordExt = ".json"

// ErrInvalidName is returned for record names that are empty or would
// escape the store directory.
var ErrInvalidName = errors.New("store: invalid record name")

// Option configures a Store.
type Option func(*options)

type options struct {
	compress bool
}

// WithCompression stores records gzip-compressed. Records written either way
// remain readable.
func WithCompression(enabled bool) Option {
	return func(o *options) { o.compress = enabled }
}

// Store is a directory of named records. It is safe for concurrent use;
// writes are serialized and atomic.
type Store struct {
	dir  string
	opts options
	mu   sync.Mutex
}

// Open returns a store rooted at dir, creating the directory if needed.
func Open(dir string, opts ...Option) (*Store, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: open %s: %w", dir, err)
	}
	return &Store{dir: dir, opts: o}, nil
}

// Dir returns the store directory.
func (s *Store) Dir() string { return s.dir }

func validName(name string) error {
	if name == "" || name == "." || name == ".." || strings.HasPrefix(name, ".") ||
		strings.ContainsAny(name, `/\:`) || name != filepath.Clean(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

func (s *Store) path(name string, compressed bool) string {
	p := filepath.Join(s.dir, name+recordExt)
	if compressed {
		p += CompressedExt
	}
	return p
}

// find returns the existing file of record name, preferring the configured
// encoding, or "" when the record does not exist.
func (s *Store) find(name string) (string, error) {
	for _, compressed := range []bool{s.opts.compress, !s.opts.compress} {
		p := s.path(name, compressed)
		_, err := os.Stat(p)
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("store: %w", err)
		}
	}
	return "", nil
}

// Load returns the collection saved under name. A missing record yields an
// empty collection and no error.
func (s *Store) Load(name string) ([]tunic.Glyph, error) {
	if err := validName(name); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.find(name)
	if err != nil || p == "" {
		return nil, err
	}
	glyphs, err := ReadFile(p)
	if err != nil {
		return nil, err
	}
	tunic.Logger().Info("store: loaded", "record", name, "glyphs", len(glyphs))
	return glyphs, nil
}

// Save replaces the record name with glyphs. A copy in the other encoding
// is removed so Load never sees stale data.
func (s *Store) Save(name string, glyphs []tunic.Glyph) error {
	if err := validName(name); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.path(name, s.opts.compress)
	if err := WriteFile(p, glyphs); err != nil {
		return err
	}
	if err := os.Remove(s.path(name, !s.opts.compress)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		tunic.Logger().Warn("store: stale record left behind", "record", name, "error", err)
	}
	tunic.Logger().Info("store: saved", "record", name, "glyphs", len(glyphs), "compressed", s.opts.compress)
	return nil
}

// Delete removes the record name. Deleting a missing record is not an error.
func (s *Store) Delete(name string) error {
	if err := validName(name); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, compressed := range []bool{false, true} {
		if err := os.Remove(s.path(name, compressed)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("store: delete %s: %w", name, err)
		}
	}
	return nil
}

// Names lists the saved records in sorted order.
func (s *Store) Names() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		n := strings.TrimSuffix(e.Name(), CompressedExt)
		n, ok := strings.CutSuffix(n, recordExt)
		if !ok || validName(n) != nil {
			continue
		}
		names = append(names, n)
	}
	slices.Sort(names)
	return slices.Compact(names), nil
}

// LoadSession loads the working collection.
func (s *Store) LoadSession() ([]tunic.Glyph, error) {
	return s.Load(SessionRecord)
}

// SaveSession saves the working collection. Its signature fits
// editor.WithOnChange.
func (s *Store) SaveSession(glyphs []tunic.Glyph) error {
	return s.Save(SessionRecord, glyphs)
}
