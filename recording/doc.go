// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package recording captures glyph drawing as commands and replays them to
// output backends.
//
// # Architecture
//
//   - Recorder: a tunic.Surface that stores commands instead of drawing
//   - Recording: an immutable command list
//   - Backend: renders commands to an output format
//
// Recorder bakes its transform (Translate, Scale, Save, Restore) into the
// recorded coordinates, so backends only ever see page space.
//
// # Basic Usage
//
//	rec := recording.NewRecorder(tunic.Size, 2*tunic.Size)
//	tunic.RenderRegister(rec, seq, tunic.Top)
//	rec.Translate(0, tunic.Size)
//	tunic.RenderRegister(rec, seq, tunic.Bottom)
//	r := rec.FinishRecording()
//
//	b, _ := recording.NewBackend("svg")
//	_ = r.Playback(b)
//	_, _ = b.(recording.WriterBackend).WriteTo(os.Stdout)
//
// # Backend Registration
//
// Backends register themselves in init(), database/sql style:
//
//	import (
//	    "github.com/gogpu/tunic/recording"
//	    _ "github.com/gogpu/tunic/recording/backends/raster" // "raster", .png
//	    _ "github.com/gogpu/tunic/recording/backends/svg"    // "svg", .svg
//	)
//
// # Thread Safety
//
// Recorder and backends are NOT safe for concurrent use. Recording values
// are immutable and may be played back from several goroutines, each into
// its own backend.
package recording
