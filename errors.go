// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tunic

import (
	"errors"
	"fmt"
)

// Sentinel errors for the tunic package.
var (
	// ErrParse is matched by every error returned from decoding the
	// storable form.
	ErrParse = errors.New("tunic: malformed glyph data")

	// ErrUnknownRegister is returned by ParseRegister.
	ErrUnknownRegister = errors.New("tunic: unknown register")
)

// ParseError describes structurally invalid glyph data.
// Index is the offending entry, or -1 when the document itself is invalid.
type ParseError struct {
	Index int
	Err   error
}

func (e *ParseError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("tunic: parse glyphs: %v", e.Err)
	}
	return fmt.Sprintf("tunic: parse glyph %d: %v", e.Index, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports ErrParse as a match so callers need not know the concrete type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
