// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command tunic renders, inspects and edits glyph collections.
//
// Usage:
//
//	tunic [-v] <command> [flags]
//
// Commands:
//
//	catalog   list the strokes of both registers
//	glyph     render one glyph from stroke ids
//	render    render a collection as a sheet
//	inspect   describe every glyph of a collection
//	convert   re-encode a collection, compressing .gz outputs
//	session   edit the saved working collection
//
// A file name of "-" reads stdin or writes stdout and must be used with a
// pipe.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/gogpu/tunic"
	"github.com/gogpu/tunic/recording"
	_ "github.com/gogpu/tunic/recording/backends/raster"
	_ "github.com/gogpu/tunic/recording/backends/svg"
	"github.com/gogpu/tunic/store"
)

// pipeName is the file name that selects stdin or stdout.
const pipeName = "-"

var errUsage = errors.New("invalid usage")

type command struct {
	summary string
	run     func(a *app, args []string) error
}

var commands = map[string]command{
	"catalog": {"list the strokes of both registers", (*app).catalog},
	"glyph":   {"render one glyph from stroke ids", (*app).glyph},
	"render":  {"render a collection as a sheet", (*app).render},
	"inspect": {"describe every glyph of a collection", (*app).inspect},
	"convert": {"re-encode a collection, compressing .gz outputs", (*app).convert},
	"session": {"edit the saved working collection", (*app).session},
}

var commandOrder = []string{"catalog", "glyph", "render", "inspect", "convert", "session"}

// app carries the process streams so commands can run against buffers.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func main() {
	a := &app{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}
	if err := a.run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "tunic: %v\n", err)
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func (a *app) run(args []string) error {
	fs := flag.NewFlagSet("tunic", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	verbose := fs.Bool("v", false, "log debug messages")
	fs.Usage = func() {
		fmt.Fprintf(a.stderr, "Usage: tunic [-v] <command> [flags]\n\nCommands:\n")
		for _, name := range commandOrder {
			fmt.Fprintf(a.stderr, "  %-9s %s\n", name, commands[name].summary)
		}
		fmt.Fprintf(a.stderr, "\nFlags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	a.setupLogging(*verbose)

	if fs.NArg() == 0 {
		fs.Usage()
		return errUsage
	}
	cmd, ok := commands[fs.Arg(0)]
	if !ok {
		fs.Usage()
		return fmt.Errorf("%w: unknown command %q", errUsage, fs.Arg(0))
	}
	return cmd.run(a, fs.Args()[1:])
}

func (a *app) setupLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	tunic.SetLogger(slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level})))
}

// flagSet creates the flag set of a sub-command.
func (a *app) flagSet(name, usage string) *flag.FlagSet {
	fs := flag.NewFlagSet("tunic "+name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	fs.Usage = func() {
		fmt.Fprintf(a.stderr, "Usage: tunic %s %s\n\nFlags:\n", name, usage)
		fs.PrintDefaults()
	}
	return fs
}

// isTerminal reports whether v is a file attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

func (a *app) pipeIn() (io.Reader, error) {
	if isTerminal(a.stdin) {
		return nil, errors.New("`-` should be used with a pipe for stdin")
	}
	return a.stdin, nil
}

func (a *app) pipeOut() (io.Writer, error) {
	if isTerminal(a.stdout) {
		return nil, errors.New("`-` should be used with a pipe for stdout")
	}
	return a.stdout, nil
}

// readGlyphs loads a collection from a file or from stdin.
func (a *app) readGlyphs(path string) ([]tunic.Glyph, error) {
	if path != pipeName {
		return store.ReadFile(path)
	}
	r, err := a.pipeIn()
	if err != nil {
		return nil, err
	}
	return store.Decode(r)
}

// writeGlyphs saves a collection to a file, or to stdout compressed when
// compress is set.
func (a *app) writeGlyphs(path string, glyphs []tunic.Glyph, compress bool) error {
	if path != pipeName {
		return store.WriteFile(path, glyphs)
	}
	w, err := a.pipeOut()
	if err != nil {
		return err
	}
	return store.Encode(w, glyphs, compress)
}

// backendFor picks the backend from an explicit format, falling back to the
// output file extension.
func backendFor(out, format string) (string, error) {
	switch {
	case format != "" && recording.IsRegistered(format):
		return format, nil
	case format != "":
		return recording.ForFile("." + strings.ToLower(format))
	case out == pipeName:
		return "", fmt.Errorf("%w: -format is required when writing to stdout", errUsage)
	default:
		return recording.ForFile(out)
	}
}

// output plays rec back into the selected backend and writes the result.
func (a *app) output(rec *recording.Recording, out, format string) error {
	name, err := backendFor(out, format)
	if err != nil {
		return err
	}
	var w io.Writer
	if out == pipeName {
		if w, err = a.pipeOut(); err != nil {
			return err
		}
	}
	b, err := recording.NewBackend(name)
	if err != nil {
		return err
	}
	if err := rec.Playback(b); err != nil {
		return err
	}

	if w != nil {
		wb, ok := b.(recording.WriterBackend)
		if !ok {
			return fmt.Errorf("backend %s cannot write to a stream", name)
		}
		_, err := wb.WriteTo(w)
		return err
	}
	fb, ok := b.(recording.FileBackend)
	if !ok {
		return fmt.Errorf("backend %s cannot write files", name)
	}
	if err := fb.SaveToFile(out); err != nil {
		return err
	}
	tunic.Logger().Info("wrote", "path", out, "backend", name, "width", rec.Width(), "height", rec.Height())
	return nil
}

// parseStrokes parses a comma separated list of stroke ids of register r.
func parseStrokes(r tunic.Register, list string) ([]tunic.StrokeID, error) {
	var ids []tunic.StrokeID
	for _, f := range strings.Split(list, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %s stroke %q is not a number", errUsage, r, f)
		}
		id := tunic.StrokeID(n)
		if !tunic.Known(r, id) {
			return nil, fmt.Errorf("%w: no %s stroke %d (see tunic catalog)", errUsage, r, n)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// parseSequence builds a sequence from -top and -bottom flag values.
func parseSequence(top, bottom string) (tunic.Sequence, error) {
	t, err := parseStrokes(tunic.Top, top)
	if err != nil {
		return tunic.Sequence{}, err
	}
	b, err := parseStrokes(tunic.Bottom, bottom)
	if err != nil {
		return tunic.Sequence{}, err
	}
	return tunic.NewSequence(t, b), nil
}
