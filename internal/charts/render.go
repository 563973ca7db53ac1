// Copyright 2026 The Panorama Authors
// SPDX-License-Identifier: MIT

package charts

import (
	"bytes"
	"html/template"
	"io"
	"log/slog"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/narrativelab/panorama/internal/dataset"
)

// palette matches the theme the upstream analyzer's notebooks use, so static
// reports and the analyst's own plots stay visually consistent.
var palette = []drawing.Color{
	drawing.ColorFromHex("1f77b4"),
	drawing.ColorFromHex("ff7f0e"),
	drawing.ColorFromHex("2ca02c"),
	drawing.ColorFromHex("d62728"),
	drawing.ColorFromHex("9467bd"),
	drawing.ColorFromHex("8c564b"),
	drawing.ColorFromHex("e377c2"),
	drawing.ColorFromHex("7f7f7f"),
}

func paletteColor(i int) drawing.Color {
	return palette[i%len(palette)]
}

// renderable is satisfied by chart.Chart, chart.BarChart and chart.PieChart.
type renderable interface {
	Render(rp chart.RendererProvider, w io.Writer) error
}

// renderSVG renders c to inline SVG markup. Render failures degrade to an
// empty string, which callers treat as "nothing to draw".
func renderSVG(name string, c renderable) template.HTML {
	var buf bytes.Buffer
	if err := c.Render(chart.SVG, &buf); err != nil {
		slog.Warn("chart render failed", "chart", name, "error", err)
		return ""
	}
	return template.HTML(buf.String()) //nolint:gosec // SVG produced locally by go-chart
}

// barStyle fills a bar with the i-th palette color.
func barStyle(i int) chart.Style {
	col := paletteColor(i)
	return chart.Style{
		FillColor:   col,
		StrokeColor: col,
		StrokeWidth: 0,
	}
}

// pointStyle returns a style that renders points only (no connecting line).
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: 0,
		DotWidth:    4,
		DotColor:    col,
	}
}

// barValues converts count entries into bars, one palette color per bar.
func barValues(entries []dataset.Entry) []chart.Value {
	bars := make([]chart.Value, 0, len(entries))
	for i, e := range entries {
		bars = append(bars, chart.Value{
			Label: e.Label,
			Value: float64(e.Count),
			Style: barStyle(i),
		})
	}
	return bars
}

// truncateLabel keeps axis labels readable on dense bar charts.
func truncateLabel(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}