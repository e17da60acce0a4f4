// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/gogpu/tunic"
	"github.com/gogpu/tunic/editor"
	"github.com/gogpu/tunic/store"
)

const sessionUsage = `[-dir path] [-gzip] <action> [args]

Actions:
  list                          list the collection
  add [-top ids] [-bottom ids]  append a glyph
  update -id id [-top ids] [-bottom ids]
                                replace a glyph in place
  punct <char>                  append one of • , ! ?
  move <from> <to>              move the glyph at position from
  remove <index>                remove the glyph at index
  reset                         empty the collection
  import <file|->               replace the collection
  export <file|->               write the collection`

func defaultSessionDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".tunic"
	}
	return filepath.Join(dir, "tunic")
}

func (a *app) session(args []string) error {
	fs := a.flagSet("session", sessionUsage)
	dir := fs.String("dir", defaultSessionDir(), "session directory")
	gz := fs.Bool("gzip", false, "store the session compressed")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("%w: missing session action", errUsage)
	}

	st, err := store.Open(*dir, store.WithCompression(*gz))
	if err != nil {
		return err
	}
	glyphs, err := st.LoadSession()
	if err != nil {
		return err
	}
	s := editor.New(glyphs, editor.WithOnChange(st.SaveSession))

	action, rest := fs.Arg(0), fs.Args()[1:]
	switch action {
	case "list":
		return writeListing(a.stdout, s.Glyphs())
	case "add", "update":
		return a.commitGlyph(s, action, rest)
	case "punct":
		if len(rest) != 1 {
			return fmt.Errorf("%w: punct takes one character", errUsage)
		}
		if !slices.Contains(editor.Punctuation, rest[0]) {
			return fmt.Errorf("%w: unsupported punctuation %q (want one of %s)",
				errUsage, rest[0], strings.Join(editor.Punctuation, " "))
		}
		g, err := s.AddLiteral(rest[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(a.stdout, g.ID)
		return nil
	case "move":
		pos, err := positions(rest, 2)
		if err != nil {
			return err
		}
		return s.Move(pos[0], pos[1])
	case "remove":
		pos, err := positions(rest, 1)
		if err != nil {
			return err
		}
		return s.Remove(pos[0])
	case "reset":
		return s.Reset()
	case "import":
		if len(rest) != 1 {
			return fmt.Errorf("%w: import takes a file", errUsage)
		}
		imported, err := a.readGlyphs(rest[0])
		if err != nil {
			return err
		}
		return s.Replace(imported)
	case "export":
		if len(rest) != 1 {
			return fmt.Errorf("%w: export takes a file", errUsage)
		}
		return a.writeGlyphs(rest[0], s.Glyphs(), false)
	default:
		fs.Usage()
		return fmt.Errorf("%w: unknown session action %q", errUsage, action)
	}
}

// commitGlyph composes a draft from flags and commits it, either appending
// (add) or replacing the glyph named by -id (update).
func (a *app) commitGlyph(s *editor.Session, action string, args []string) error {
	fs := a.flagSet("session "+action, "[-id id] [-top ids] [-bottom ids]")
	id := fs.String("id", "", "glyph to replace (update only)")
	top := fs.String("top", "", "comma separated top stroke ids")
	bottom := fs.String("bottom", "", "comma separated bottom stroke ids")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if action == "update" {
		if *id == "" {
			return fmt.Errorf("%w: update requires -id", errUsage)
		}
		if err := s.Edit(*id); err != nil {
			return err
		}
		s.ClearDraft()
	}
	seq, err := parseSequence(*top, *bottom)
	if err != nil {
		return err
	}
	for _, reg := range tunic.Registers() {
		for _, sid := range seq.Strokes(reg).IDs() {
			if err := s.Toggle(reg, sid); err != nil {
				return err
			}
		}
	}
	g, err := s.Commit()
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, g.ID)
	return nil
}

// positions parses exactly n integer arguments.
func positions(args []string, n int) ([]int, error) {
	if len(args) != n {
		return nil, fmt.Errorf("%w: want %d positions, got %d", errUsage, n, len(args))
	}
	out := make([]int, n)
	for i, s := range args {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("%w: position %q is not a number", errUsage, s)
		}
		out[i] = v
	}
	return out, nil
}
