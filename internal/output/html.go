// Copyright 2026 The Panorama Authors
// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"html/template"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/narrativelab/panorama/internal/charts"
	"github.com/narrativelab/panorama/internal/dataset"
	"github.com/narrativelab/panorama/internal/insights"
)

func init() {
	RegisterFormatter(NewHTMLFormatter())
}

// HTMLFormatter writes the report as a self-contained HTML page: metric
// cards, inline SVG figures, and the key findings. No external assets.
type HTMLFormatter struct {
	nowFunc func() time.Time
	idFunc  func() string
}

// Compile-time interface check.
var _ Formatter = (*HTMLFormatter)(nil)

// NewHTMLFormatter returns a new HTMLFormatter.
func NewHTMLFormatter() *HTMLFormatter {
	return &HTMLFormatter{}
}

// Name returns the format name.
func (h *HTMLFormatter) Name() string {
	return "html"
}

var (
	htmlTmplOnce sync.Once
	htmlTmpl     *template.Template
)

// Format writes the full dashboard page to w.
func (h *HTMLFormatter) Format(snap *dataset.Snapshot, w io.Writer) error {
	if snap == nil || snap.Summary == nil {
		return h.writeEmpty(w)
	}

	htmlTmplOnce.Do(func() {
		htmlTmpl = template.Must(template.New("report").Parse(htmlTemplate))
	})

	now := time.Now()
	if h.nowFunc != nil {
		now = h.nowFunc()
	}
	runID := uuid.NewString()
	if h.idFunc != nil {
		runID = h.idFunc()
	}

	data := buildHTMLData(snap, now, runID)

	if err := htmlTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("execute html template: %w", err)
	}
	return nil
}

// htmlData holds all template data for the HTML report.
type htmlData struct {
	GeneratedAt string
	RunID       string
	Cards       []metricCard
	Figures     []charts.Figure
	Findings    []insights.Finding
}

type metricCard struct {
	Label string
	Value string
}

func buildHTMLData(snap *dataset.Snapshot, now time.Time, runID string) htmlData {
	return htmlData{
		GeneratedAt: now.UTC().Format("2006-01-02 15:04 UTC"),
		RunID:       runID,
		Cards:       buildMetricCards(snap.Summary),
		Figures:     charts.BuildAll(snap),
		Findings:    insights.Static(),
	}
}

func buildMetricCards(sum *dataset.Summary) []metricCard {
	cards := []metricCard{
		{Label: "Messages Analyzed", Value: FormatCount(sum.Overview.TotalMessages)},
		{Label: "Relevant Messages", Value: FormatCount(sum.Overview.RelevantMessages)},
		{Label: "Relevance Rate", Value: fmt.Sprintf("%.2f%%", sum.Overview.RelevanceRate)},
	}
	if sum.Engagement != nil {
		cards = append(cards,
			metricCard{Label: "Viral Messages", Value: FormatCount(sum.Engagement.ViralMessages)},
			metricCard{Label: "Average Views", Value: FormatCount(int(sum.Engagement.AverageViews))},
		)
	}
	return cards
}

func (h *HTMLFormatter) writeEmpty(w io.Writer) error {
	const emptyHTML = `<!DOCTYPE html>
<html lang="en"><head><meta charset="utf-8"><title>Panorama Report</title>
<style>body{font-family:sans-serif;display:flex;justify-content:center;align-items:center;height:100vh;color:#6c757d;}</style>
</head><body><p>No analysis data available.</p></body></html>`
	if _, err := io.WriteString(w, emptyHTML); err != nil {
		return fmt.Errorf("write empty html: %w", err)
	}
	return nil
}
