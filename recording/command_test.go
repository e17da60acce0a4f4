// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

import (
	"testing"

	"github.com/gogpu/tunic"
)

func TestCommandType_String(t *testing.T) {
	tests := []struct {
		ct   CommandType
		want string
	}{
		{CmdClear, "Clear"},
		{CmdStrokeLine, "StrokeLine"},
		{CmdStrokeCircle, "StrokeCircle"},
		{CmdDrawText, "DrawText"},
		{CommandType(254), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.ct.String(); got != tt.want {
				t.Errorf("CommandType.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCommandInterface(t *testing.T) {
	commands := []Command{
		ClearCommand{},
		StrokeLineCommand{From: tunic.Point{}, To: tunic.Point{X: 1}, Width: tunic.StrokeWidth},
		StrokeCircleCommand{Center: tunic.Point{X: 100, Y: 180}, Radius: 20, Width: tunic.StrokeWidth},
		DrawTextCommand{Text: "•", At: tunic.Point{X: 10, Y: 20}, Size: 12},
	}
	expectedTypes := []CommandType{CmdClear, CmdStrokeLine, CmdStrokeCircle, CmdDrawText}

	for i, cmd := range commands {
		if got := cmd.Type(); got != expectedTypes[i] {
			t.Errorf("command[%d].Type() = %v, want %v", i, got, expectedTypes[i])
		}
	}
}
