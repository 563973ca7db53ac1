// Copyright 2026 The Panorama Authors
// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"

	"github.com/narrativelab/panorama/internal/dataset"
)

func init() {
	RegisterFormatter(NewTextFormatter())
}

// Shared color printers for terminal summaries.
var (
	colorGreen  = color.New(color.FgGreen)
	colorYellow = color.New(color.FgYellow)
	colorRed    = color.New(color.FgRed)
	colorBold   = color.New(color.Bold)
)

// TextFormatter writes a colored terminal summary of the analysis.
type TextFormatter struct{}

// Compile-time interface check.
var _ Formatter = (*TextFormatter)(nil)

// NewTextFormatter returns a new TextFormatter.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Name returns the format name.
func (t *TextFormatter) Name() string {
	return "text"
}

// Format writes a terminal summary to w: the overview line, one table per
// counted dimension, and the engagement block when present.
func (t *TextFormatter) Format(snap *dataset.Snapshot, w io.Writer) error {
	if snap == nil || snap.Summary == nil {
		_, err := fmt.Fprintln(w, "no analysis data available")
		return err
	}
	sum := snap.Summary

	if _, err := fmt.Fprintf(w, "%s\n\n  %s messages analyzed, %s relevant (%s)\n\n",
		colorBold.Sprint("Content Analysis Summary"),
		FormatCount(sum.Overview.TotalMessages),
		FormatCount(sum.Overview.RelevantMessages),
		colorRate(sum.Overview.RelevanceRate)); err != nil {
		return fmt.Errorf("write text summary: %w", err)
	}

	sections := []struct {
		title  string
		counts *dataset.Counts
		limit  int
	}{
		{"Categories", sum.Categories, 0},
		{"Subcategories", sum.Subcategories, 10},
		{"Intensity Levels", sum.Intensity, 0},
		{"Top Markers", sum.Markers, markerTableLimit},
		{"Media Types", sum.Media, 0},
	}
	for _, s := range sections {
		if err := renderCountTable(w, s.title, s.counts, s.limit); err != nil {
			return err
		}
	}

	return renderEngagement(w, sum.Engagement)
}

func renderCountTable(w io.Writer, title string, counts *dataset.Counts, limit int) error {
	if counts == nil || counts.Len() == 0 {
		return nil
	}
	entries := dataset.Entries(counts)
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	if _, err := fmt.Fprintf(w, "%s\n", colorBold.Sprint(title)); err != nil {
		return fmt.Errorf("write text section: %w", err)
	}

	tbl := NewTable(
		Column{Header: "Label"},
		Column{Header: "Count", Align: AlignRight, Color: colorCount},
	)
	for _, e := range entries {
		tbl.AddRow(e.Label, FormatCount(e.Count))
	}
	if err := tbl.Render(w); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

func renderEngagement(w io.Writer, eng *dataset.Engagement) error {
	if eng == nil {
		return nil
	}

	if _, err := fmt.Fprintf(w, "%s\n", colorBold.Sprint("Engagement")); err != nil {
		return fmt.Errorf("write engagement section: %w", err)
	}

	tbl := NewTable(
		Column{Header: "Metric"},
		Column{Header: "Value", Align: AlignRight},
	)
	tbl.AddRow("Viral messages", FormatCount(eng.ViralMessages))
	tbl.AddRow("Average views", FormatCount(int(eng.AverageViews)))
	tbl.AddRow("Average forwards", strconv.FormatFloat(eng.AverageForwards, 'f', 1, 64))
	tbl.AddRow("Max views", FormatCount(eng.MaxViews))
	tbl.AddRow("High engagement", FormatCount(eng.HighEngagementMessages))
	return tbl.Render(w)
}

// colorRate colors the relevance rate: low rates are the expected shape for
// a filtered corpus, so anything above 50% gets flagged yellow.
func colorRate(rate float64) string {
	s := fmt.Sprintf("%.2f%%", rate)
	if rate > 50 {
		return colorYellow.Sprint(s)
	}
	return colorGreen.Sprint(s)
}

// colorCount colors a count cell: zero is dimmed to green.
func colorCount(val string) string {
	if val == "0" {
		return colorGreen.Sprint(val)
	}
	return val
}
