// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/tunic"
	"github.com/gogpu/tunic/store"
)

const sampleJSON = `[{"id":"g1","sequence":{"top":[1,6],"bottom":[7]}},{"id":"p1","str":"•"},{"id":"e"}]`

// runCLI runs the command line with stdin and returns stdout and stderr.
func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(func() { tunic.SetLogger(nil) })
	var stdout, stderr bytes.Buffer
	a := &app{stdin: strings.NewReader(stdin), stdout: &stdout, stderr: &stderr}
	err := a.run(args)
	return stdout.String(), stderr.String(), err
}

func TestUsage(t *testing.T) {
	_, stderr, err := runCLI(t, "")
	if !errors.Is(err, errUsage) {
		t.Errorf("run() = %v, want errUsage", err)
	}
	for _, name := range commandOrder {
		if !strings.Contains(stderr, name) {
			t.Errorf("usage does not mention %q", name)
		}
	}
	if _, _, err := runCLI(t, "", "frobnicate"); !errors.Is(err, errUsage) {
		t.Errorf("unknown command = %v, want errUsage", err)
	}
}

func TestCatalog(t *testing.T) {
	out, _, err := runCLI(t, "", "catalog")
	if err != nil {
		t.Fatalf("catalog error = %v", err)
	}
	for _, want := range []string{"top", "bottom", "Top - Left", "Small line", "Bottom Circle", "circle (100,180) r=20"} {
		if !strings.Contains(out, want) {
			t.Errorf("catalog output missing %q:\n%s", want, out)
		}
	}
}

func TestGlyphToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.png")
	if _, _, err := runCLI(t, "", "glyph", "-top", "1,6", "-bottom", "7", "-out", path); err != nil {
		t.Fatalf("glyph error = %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 400 {
		t.Errorf("glyph image = %dx%d, want 200x400", b.Dx(), b.Dy())
	}
}

func TestGlyphToStdout(t *testing.T) {
	out, _, err := runCLI(t, "", "glyph", "-top", "6", "-out", "-", "-format", "svg")
	if err != nil {
		t.Fatalf("glyph error = %v", err)
	}
	// baseline + two center line segments
	if got := strings.Count(out, "<line "); got != 3 {
		t.Errorf("<line> count = %d, want 3", got)
	}
}

func TestGlyphRejectsBadStrokes(t *testing.T) {
	for _, args := range [][]string{
		{"glyph", "-top", "9", "-out", "-", "-format", "svg"},
		{"glyph", "-bottom", "x", "-out", "-", "-format", "svg"},
	} {
		if _, _, err := runCLI(t, "", args...); !errors.Is(err, errUsage) {
			t.Errorf("%v = %v, want errUsage", args, err)
		}
	}
}

func TestRenderFromStdin(t *testing.T) {
	out, _, err := runCLI(t, sampleJSON, "render", "-out", "-", "-format", "svg", "-cols", "3")
	if err != nil {
		t.Fatalf("render error = %v", err)
	}
	if !strings.HasPrefix(out, "<svg ") {
		t.Fatalf("output is not SVG: %.40q", out)
	}
	if !strings.Contains(out, "•") {
		t.Error("literal glyph missing from sheet")
	}
	if got := strings.Count(out, "<circle "); got != 1 {
		t.Errorf("<circle> count = %d, want 1", got)
	}
}

func TestRenderNeedsFormatForStdout(t *testing.T) {
	if _, _, err := runCLI(t, sampleJSON, "render", "-out", "-"); !errors.Is(err, errUsage) {
		t.Errorf("render to stdout without -format = %v, want errUsage", err)
	}
}

func TestRenderMalformedInput(t *testing.T) {
	_, _, err := runCLI(t, `{"id":"x"}`, "render", "-out", "-", "-format", "svg")
	if !errors.Is(err, tunic.ErrParse) {
		t.Errorf("render malformed = %v, want ErrParse", err)
	}
}

func TestInspect(t *testing.T) {
	out, _, err := runCLI(t, sampleJSON, "inspect")
	if err != nil {
		t.Fatalf("inspect error = %v", err)
	}
	for _, want := range []string{
		"top: 1 Top - Left, 6 Center line",
		"bottom: 7 Bottom Circle",
		"U+2022 BULLET",
		"empty",
		"3 glyphs",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("inspect output missing %q:\n%s", want, out)
		}
	}
}

func TestConvertCompresses(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.json")
	dst := filepath.Join(dir, "out.json.gz")
	if err := os.WriteFile(src, []byte(sampleJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := runCLI(t, "", "convert", "-in", src, "-out", dst); err != nil {
		t.Fatalf("convert error = %v", err)
	}
	glyphs, err := store.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if len(glyphs) != 3 || glyphs[1].Str != "•" {
		t.Errorf("converted = %+v", glyphs)
	}

	out, _, err := runCLI(t, "", "convert", "-in", dst, "-out", "-")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `"sequence":{"top":[1,6],"bottom":[7]}`) {
		t.Errorf("decompressed output = %s", out)
	}
	if _, _, err := runCLI(t, "", "convert", "-in", src); !errors.Is(err, errUsage) {
		t.Errorf("convert without -out = %v, want errUsage", err)
	}
}

func TestSessionFlow(t *testing.T) {
	dir := t.TempDir()
	session := func(args ...string) string {
		t.Helper()
		out, _, err := runCLI(t, "", append([]string{"session", "-dir", dir}, args...)...)
		if err != nil {
			t.Fatalf("session %v error = %v", args, err)
		}
		return strings.TrimSpace(out)
	}

	first := session("add", "-top", "1,2")
	session("punct", "?")
	session("add", "-bottom", "7")
	session("move", "2", "0")
	session("remove", "2")
	updated := session("update", "-id", first, "-top", "5")
	if updated == first {
		t.Error("update should assign a fresh id")
	}

	st, err := store.Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	glyphs, err := st.LoadSession()
	if err != nil {
		t.Fatal(err)
	}
	if len(glyphs) != 2 {
		t.Fatalf("session holds %d glyphs, want 2", len(glyphs))
	}
	if !glyphs[0].Strokes().Has(tunic.Bottom, 7) {
		t.Errorf("glyph 0 = %v, want the moved bottom dot", glyphs[0].Strokes())
	}
	if glyphs[1].ID != updated || !glyphs[1].Strokes().Equal(tunic.NewSequence([]tunic.StrokeID{5}, nil)) {
		t.Errorf("glyph 1 = %+v, want updated top 5", glyphs[1])
	}

	list := session("list")
	if !strings.Contains(list, "2 glyphs") {
		t.Errorf("list = %s", list)
	}

	session("reset")
	if glyphs, _ := st.LoadSession(); len(glyphs) != 0 {
		t.Errorf("after reset session holds %d glyphs", len(glyphs))
	}
}

func TestSessionImportExport(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "import.json")
	if err := os.WriteFile(src, []byte(sampleJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := runCLI(t, "", "session", "-dir", dir, "-gzip", "import", src); err != nil {
		t.Fatalf("import error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "characters.json.gz")); err != nil {
		t.Errorf("compressed session not written: %v", err)
	}
	out, _, err := runCLI(t, "", "session", "-dir", dir, "export", "-")
	if err != nil {
		t.Fatalf("export error = %v", err)
	}
	if !strings.Contains(out, `"id":"p1"`) {
		t.Errorf("export = %s", out)
	}
}

func TestSessionErrors(t *testing.T) {
	dir := t.TempDir()
	for _, args := range [][]string{
		{"session", "-dir", dir},
		{"session", "-dir", dir, "punct", ";"},
		{"session", "-dir", dir, "move", "1"},
		{"session", "-dir", dir, "update", "-top", "1"},
		{"session", "-dir", dir, "shuffle"},
	} {
		if _, _, err := runCLI(t, "", args...); !errors.Is(err, errUsage) {
			t.Errorf("%v = %v, want errUsage", args, err)
		}
	}
	if _, _, err := runCLI(t, "", "session", "-dir", dir, "remove", "0"); err == nil {
		t.Error("remove from an empty session should fail")
	}
}

func TestVerboseLogging(t *testing.T) {
	_, stderr, err := runCLI(t, "", "-v", "glyph", "-top", "1", "-out", "-", "-format", "svg")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stderr, "level=DEBUG") {
		t.Errorf("-v produced no debug output:\n%s", stderr)
	}
}
