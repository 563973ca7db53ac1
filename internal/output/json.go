// Copyright 2026 The Panorama Authors
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/narrativelab/panorama/internal/dataset"
)

func init() {
	RegisterFormatter(NewJSONFormatter())
}

// JSONEnvelope wraps the summary document with run metadata.
type JSONEnvelope struct {
	Summary  *dataset.Summary `json:"summary"`
	Metadata JSONMetadata     `json:"metadata"`
}

// JSONMetadata describes the run that produced this report.
type JSONMetadata struct {
	RecordCount int    `json:"record_count"`
	RunID       string `json:"run_id"`
	GeneratedAt string `json:"generated_at"`
}

// JSONFormatter writes the summary as a JSON document with a metadata envelope.
type JSONFormatter struct {
	// Compact controls whether output is compact (single line) or pretty-printed.
	// When false (default), output is auto-detected from the writer.
	Compact bool

	// nowFunc is used for testing to override the current time.
	nowFunc func() time.Time
	idFunc  func() string
}

// Compile-time interface check.
var _ Formatter = (*JSONFormatter)(nil)

// NewJSONFormatter returns a new JSONFormatter with default settings.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// Format writes the summary and run metadata to w. If Compact is true,
// output is a single line; otherwise pretty-printing is auto-detected
// (TTY gets indented output, pipes and files get compact).
func (f *JSONFormatter) Format(snap *dataset.Snapshot, w io.Writer) error {
	if snap == nil {
		snap = &dataset.Snapshot{}
	}

	now := time.Now()
	if f.nowFunc != nil {
		now = f.nowFunc()
	}
	runID := uuid.NewString()
	if f.idFunc != nil {
		runID = f.idFunc()
	}

	envelope := JSONEnvelope{
		Summary: snap.Summary,
		Metadata: JSONMetadata{
			RecordCount: len(snap.Records),
			RunID:       runID,
			GeneratedAt: now.UTC().Format("2006-01-02T15:04:05Z"),
		},
	}

	compact := f.shouldCompact(w)

	var data []byte
	var err error
	if compact {
		data, err = json.Marshal(envelope)
	} else {
		data, err = json.MarshalIndent(envelope, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	if _, err := w.Write([]byte("\n")); err != nil {
		return fmt.Errorf("write json trailing newline: %w", err)
	}

	return nil
}

// shouldCompact determines whether to use compact mode.
// If Compact is explicitly set, use that value.
// Otherwise, auto-detect: pretty-print for TTYs, compact for pipes.
func (f *JSONFormatter) shouldCompact(w io.Writer) bool {
	if f.Compact {
		return true
	}

	// Auto-detect: if the writer is an *os.File, check if it's a terminal.
	if file, ok := w.(*os.File); ok {
		fi, err := file.Stat()
		if err != nil {
			return false // default to pretty on error
		}
		if fi.Mode()&os.ModeCharDevice != 0 {
			return false // TTY -> pretty
		}
		return true // pipe/file -> compact
	}

	// For non-file writers (e.g., bytes.Buffer in tests), default to pretty.
	return false
}