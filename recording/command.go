// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

import "github.com/gogpu/tunic"

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdClear        CommandType = iota // Erase the page
	CmdStrokeLine                      // Stroke a straight line
	CmdStrokeCircle                    // Stroke a circle outline
	CmdDrawText                        // Draw a literal string
)

var commandTypeNames = [...]string{
	CmdClear:        "Clear",
	CmdStrokeLine:   "StrokeLine",
	CmdStrokeCircle: "StrokeCircle",
	CmdDrawText:     "DrawText",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is implemented by all command types.
// Coordinates of recorded commands are in page space: any transform that was
// active on the Recorder has already been applied.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// ClearCommand erases everything drawn so far.
type ClearCommand struct{}

// Type implements Command.
func (ClearCommand) Type() CommandType { return CmdClear }

// StrokeLineCommand strokes a line with round caps.
type StrokeLineCommand struct {
	From, To tunic.Point
	Width    float64
}

// Type implements Command.
func (StrokeLineCommand) Type() CommandType { return CmdStrokeLine }

// StrokeCircleCommand strokes the outline of a circle.
type StrokeCircleCommand struct {
	Center tunic.Point
	Radius float64
	Width  float64
}

// Type implements Command.
func (StrokeCircleCommand) Type() CommandType { return CmdStrokeCircle }

// DrawTextCommand draws s centered on At with the given font size.
type DrawTextCommand struct {
	Text string
	At   tunic.Point
	Size float64
}

// Type implements Command.
func (DrawTextCommand) Type() CommandType { return CmdDrawText }
