// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package store

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/gogpu/tunic"
)

// CompressedExt marks gzip-compressed collections.
const CompressedExt = ".gz"

var gzipMagic = []byte{0x1f, 0x8b}

// IsCompressed reports whether path names a compressed collection.
func IsCompressed(path string) bool {
	return strings.EqualFold(filepath.Ext(path), CompressedExt)
}

// Encode writes glyphs to w, gzip-compressed when compress is set.
func Encode(w io.Writer, glyphs []tunic.Glyph, compress bool) error {
	if !compress {
		return tunic.WriteTo(w, glyphs)
	}
	zw := gzip.NewWriter(w)
	if err := tunic.WriteTo(zw, glyphs); err != nil {
		_ = zw.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("store: compress: %w", err)
	}
	return nil
}

// Decode reads a collection from r. Gzip input is recognized by its magic
// bytes, so callers need not know how the data was written.
func Decode(r io.Reader) ([]tunic.Glyph, error) {
	br := bufio.NewReader(r)
	head, _ := br.Peek(len(gzipMagic))
	if !bytes.Equal(head, gzipMagic) {
		return tunic.ReadFrom(br)
	}
	zr, err := gzip.NewReader(br)
	if err != nil {
		return nil, fmt.Errorf("store: decompress: %w", err)
	}
	defer zr.Close()
	return tunic.ReadFrom(zr)
}

// ReadFile loads a collection from path.
func ReadFile(path string) ([]tunic.Glyph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}
	defer f.Close()

	glyphs, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", path, err)
	}
	return glyphs, nil
}

// WriteFile saves a collection to path, compressing when the name ends in
// CompressedExt. The file is replaced atomically.
func WriteFile(path string, glyphs []tunic.Glyph) error {
	var buf bytes.Buffer
	if err := Encode(&buf, glyphs, IsCompressed(path)); err != nil {
		return fmt.Errorf("store: write %s: %w", path, err)
	}
	return writeAtomic(path, buf.Bytes())
}

// writeAtomic writes data to a temporary file next to path and renames it
// into place.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("store: %w", err)
	}
	name := tmp.Name()
	defer func() {
		if name != "" {
			_ = os.Remove(name)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("store: write %s: %w", path, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("store: sync %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("store: close %s: %w", path, err)
	}
	if err := os.Rename(name, path); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	name = ""
	return nil
}
