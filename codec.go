// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tunic

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Record is the storable form of one glyph.
// Absent fields are omitted from the JSON encoding.
type Record struct {
	ID       string          `json:"id"`
	Sequence *SequenceRecord `json:"sequence,omitempty"`
	Str      string          `json:"str,omitempty"`
}

// SequenceRecord is the storable form of a Sequence. The arrays describe set
// membership only; their order carries no meaning.
type SequenceRecord struct {
	Top    []int `json:"top"`
	Bottom []int `json:"bottom"`
}

// EncodeSequence converts seq into its storable form. Ids are emitted in
// ascending order.
func EncodeSequence(seq Sequence) SequenceRecord {
	return SequenceRecord{
		Top:    encodeSet(seq.top),
		Bottom: encodeSet(seq.bottom),
	}
}

// DecodeSequence rebuilds a Sequence. Duplicate ids collapse and ids outside
// the catalog are kept as they are.
func DecodeSequence(rec SequenceRecord) Sequence {
	return Sequence{top: decodeSet(rec.Top), bottom: decodeSet(rec.Bottom)}
}

func encodeSet(s StrokeSet) []int {
	out := make([]int, 0, s.Len())
	for _, id := range s.ids {
		out = append(out, int(id))
	}
	return out
}

func decodeSet(ids []int) StrokeSet {
	if len(ids) == 0 {
		return StrokeSet{}
	}
	conv := make([]StrokeID, len(ids))
	for i, id := range ids {
		conv[i] = StrokeID(id)
	}
	return NewStrokeSet(conv...)
}

// Encode converts glyphs into their storable form, preserving order.
func Encode(glyphs []Glyph) []Record {
	out := make([]Record, 0, len(glyphs))
	for _, g := range glyphs {
		rec := Record{ID: g.ID, Str: g.Str}
		if g.Sequence != nil {
			seq := EncodeSequence(*g.Sequence)
			rec.Sequence = &seq
		}
		out = append(out, rec)
	}
	return out
}

// Decode rebuilds glyphs from their storable form, preserving order.
func Decode(recs []Record) []Glyph {
	out := make([]Glyph, 0, len(recs))
	for _, rec := range recs {
		g := Glyph{ID: rec.ID, Str: rec.Str}
		if rec.Sequence != nil {
			seq := DecodeSequence(*rec.Sequence)
			g.Sequence = &seq
		}
		out = append(out, g)
	}
	return out
}

// Marshal encodes glyphs as a JSON array.
func Marshal(glyphs []Glyph) ([]byte, error) {
	data, err := json.Marshal(Encode(glyphs))
	if err != nil {
		return nil, fmt.Errorf("tunic: marshal glyphs: %w", err)
	}
	return data, nil
}

// WriteTo writes glyphs as a JSON array to w.
func WriteTo(w io.Writer, glyphs []Glyph) error {
	data, err := Marshal(glyphs)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("tunic: write glyphs: %w", err)
	}
	return nil
}

// wireRecord mirrors Record with pointer fields so that missing keys can be
// told apart from zero values.
type wireRecord struct {
	ID       *string         `json:"id"`
	Sequence *SequenceRecord `json:"sequence"`
	Str      *string         `json:"str"`
}

var (
	errNotArray  = errors.New("document is not an array")
	errNotObject = errors.New("entry is not an object")
	errMissingID = errors.New("missing id")
)

// Unmarshal decodes a JSON array of glyph records.
//
// Structurally invalid input fails as a whole with a *ParseError; no partial
// result is returned. Stroke ids are not checked against the catalog.
func Unmarshal(data []byte) ([]Glyph, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '[' {
		return nil, &ParseError{Index: -1, Err: errNotArray}
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &ParseError{Index: -1, Err: err}
	}

	recs := make([]Record, 0, len(raw))
	for i, msg := range raw {
		msg = bytes.TrimSpace(msg)
		if len(msg) == 0 || msg[0] != '{' {
			return nil, &ParseError{Index: i, Err: errNotObject}
		}
		var w wireRecord
		if err := json.Unmarshal(msg, &w); err != nil {
			return nil, &ParseError{Index: i, Err: err}
		}
		if w.ID == nil {
			return nil, &ParseError{Index: i, Err: errMissingID}
		}
		rec := Record{ID: *w.ID, Sequence: w.Sequence}
		if w.Str != nil {
			rec.Str = *w.Str
		}
		recs = append(recs, rec)
	}

	Logger().Debug("tunic: decoded glyphs", "count", len(recs), "bytes", len(data))
	return Decode(recs), nil
}

// ReadFrom reads and decodes a JSON array of glyph records from r.
func ReadFrom(r io.Reader) ([]Glyph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("tunic: read glyphs: %w", err)
	}
	return Unmarshal(data)
}
