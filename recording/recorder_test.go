// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

import (
	"errors"
	"testing"

	"github.com/gogpu/tunic"
)

// mockBackend records the calls it receives.
type mockBackend struct {
	begun    bool
	ended    bool
	width    int
	height   int
	calls    []string
	lines    []StrokeLineCommand
	circles  []StrokeCircleCommand
	texts    []DrawTextCommand
	beginErr error
}

func (m *mockBackend) Begin(w, h int) error {
	if m.beginErr != nil {
		return m.beginErr
	}
	m.begun, m.width, m.height = true, w, h
	return nil
}

func (m *mockBackend) End() error { m.ended = true; return nil }

func (m *mockBackend) Clear() { m.calls = append(m.calls, "Clear") }

func (m *mockBackend) StrokeLine(from, to tunic.Point, width float64) {
	m.calls = append(m.calls, "StrokeLine")
	m.lines = append(m.lines, StrokeLineCommand{From: from, To: to, Width: width})
}

func (m *mockBackend) StrokeCircle(c tunic.Point, r, width float64) {
	m.calls = append(m.calls, "StrokeCircle")
	m.circles = append(m.circles, StrokeCircleCommand{Center: c, Radius: r, Width: width})
}

func (m *mockBackend) DrawText(s string, at tunic.Point, size float64) {
	m.calls = append(m.calls, "DrawText")
	m.texts = append(m.texts, DrawTextCommand{Text: s, At: at, Size: size})
}

func TestNewRecorder(t *testing.T) {
	rec := NewRecorder(200, 400)
	if rec.Width() != 200 || rec.Height() != 400 {
		t.Errorf("size = %dx%d, want 200x400", rec.Width(), rec.Height())
	}
	if n := len(rec.FinishRecording().Commands()); n != 0 {
		t.Errorf("new recorder has %d commands", n)
	}
}

func TestRecorderCapturesRender(t *testing.T) {
	rec := NewRecorder(tunic.Size, tunic.Size)
	seq := tunic.NewSequence([]tunic.StrokeID{6, 1}, []tunic.StrokeID{7})

	tunic.RenderRegister(rec, seq, tunic.Top)
	r := rec.FinishRecording()

	cmds := r.Commands()
	if len(cmds) != 4 {
		t.Fatalf("commands = %d, want 4 (baseline, stroke 1, stroke 6 x2)", len(cmds))
	}
	base := cmds[0].(StrokeLineCommand)
	if base.From.Y != tunic.Size-tunic.StrokeWidth/2 || base.To.X != tunic.Size {
		t.Errorf("first command = %+v, want baseline", base)
	}
	first := cmds[1].(StrokeLineCommand)
	if first.To != (tunic.Point{X: 0, Y: 100}) {
		t.Errorf("stroke 1 = %+v, want top-left edge", first)
	}
	if r.Count(CmdStrokeCircle) != 0 {
		t.Error("top register should not record circles")
	}
}

func TestRecorderTransform(t *testing.T) {
	rec := NewRecorder(100, 200)
	rec.Save()
	rec.Translate(0, 100)
	rec.Scale(0.5)
	tunic.RenderRegister(rec, tunic.NewSequence(nil, []tunic.StrokeID{7}), tunic.Bottom)
	rec.Restore()
	rec.StrokeLine(tunic.Point{X: 1, Y: 1}, tunic.Point{X: 2, Y: 2}, 3)

	cmds := rec.FinishRecording().Commands()
	if len(cmds) != 2 {
		t.Fatalf("commands = %d, want 2", len(cmds))
	}
	c := cmds[0].(StrokeCircleCommand)
	want := StrokeCircleCommand{Center: tunic.Point{X: 50, Y: 190}, Radius: 10, Width: tunic.StrokeWidth / 2}
	if c != want {
		t.Errorf("circle = %+v, want %+v", c, want)
	}
	l := cmds[1].(StrokeLineCommand)
	if l.From != (tunic.Point{X: 1, Y: 1}) || l.Width != 3 {
		t.Errorf("line after Restore = %+v, want untransformed", l)
	}
}

func TestRecorderRestoreEmptyStack(t *testing.T) {
	rec := NewRecorder(10, 10)
	rec.Restore()
	rec.StrokeLine(tunic.Point{}, tunic.Point{X: 1}, 1)
	if got := rec.FinishRecording().Commands()[0].(StrokeLineCommand); got.To.X != 1 {
		t.Errorf("Restore on empty stack changed transform: %+v", got)
	}
}

func TestRecorderClear(t *testing.T) {
	rec := NewRecorder(10, 10)
	rec.StrokeLine(tunic.Point{}, tunic.Point{X: 5}, 1)
	rec.Clear()
	rec.StrokeCircle(tunic.Point{X: 5, Y: 5}, 2, 1)

	r := rec.FinishRecording()
	if got := len(r.Commands()); got != 2 {
		t.Fatalf("commands = %d, want 2", got)
	}
	if r.Commands()[0].Type() != CmdClear {
		t.Errorf("first command = %v, want Clear", r.Commands()[0].Type())
	}
}

func TestRecordingIsImmutable(t *testing.T) {
	rec := NewRecorder(10, 10)
	rec.DrawText("!", tunic.Point{X: 5, Y: 5}, 8)
	r := rec.FinishRecording()

	rec.DrawText("?", tunic.Point{}, 8)
	if len(r.Commands()) != 1 {
		t.Error("recording changed after FinishRecording")
	}
	cmds := r.Commands()
	cmds[0] = ClearCommand{}
	if r.Commands()[0].Type() != CmdDrawText {
		t.Error("Commands() exposed internal slice")
	}
}

func TestPlayback(t *testing.T) {
	rec := NewRecorder(300, 150)
	rec.Clear()
	rec.StrokeLine(tunic.Point{}, tunic.Point{X: 10}, 2)
	rec.StrokeCircle(tunic.Point{X: 5, Y: 5}, 3, 2)
	rec.DrawText("•", tunic.Point{X: 20, Y: 20}, 12)

	m := &mockBackend{}
	if err := rec.FinishRecording().Playback(m); err != nil {
		t.Fatalf("Playback() error = %v", err)
	}
	if !m.begun || !m.ended {
		t.Error("Playback should call Begin and End")
	}
	if m.width != 300 || m.height != 150 {
		t.Errorf("Begin(%d, %d), want 300x150", m.width, m.height)
	}
	want := []string{"Clear", "StrokeLine", "StrokeCircle", "DrawText"}
	if len(m.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", m.calls, want)
	}
	for i := range want {
		if m.calls[i] != want[i] {
			t.Errorf("call %d = %s, want %s", i, m.calls[i], want[i])
		}
	}
	if m.texts[0].Text != "•" {
		t.Errorf("text = %q", m.texts[0].Text)
	}
}

func TestPlaybackBeginError(t *testing.T) {
	boom := errors.New("boom")
	m := &mockBackend{beginErr: boom}
	err := NewRecorder(1, 1).FinishRecording().Playback(m)
	if !errors.Is(err, boom) {
		t.Errorf("Playback() error = %v, want wrapped boom", err)
	}
	if m.ended {
		t.Error("End should not be called after a failed Begin")
	}
}
