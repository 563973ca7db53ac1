// Copyright 2026 The Panorama Authors
// SPDX-License-Identifier: MIT

package charts

import (
	"sort"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/narrativelab/panorama/internal/dataset"
)

func init() {
	Register(timelineBuilder{})
}

// timelineBuilder draws daily message counts as a line chart. Records
// without a usable date are skipped; if none remain the figure is empty.
type timelineBuilder struct{}

func (timelineBuilder) Name() string { return "timeline" }

func (timelineBuilder) Build(snap *dataset.Snapshot) Figure {
	if snap == nil || len(snap.Records) == 0 {
		return Figure{}
	}

	daily := make(map[time.Time]int)
	for _, rec := range snap.Records {
		if rec.Date.IsZero() {
			continue
		}
		day := time.Date(rec.Date.Year(), rec.Date.Month(), rec.Date.Day(), 0, 0, 0, 0, time.UTC)
		daily[day]++
	}
	if len(daily) == 0 {
		return Figure{}
	}

	days := make([]time.Time, 0, len(daily))
	for day := range daily {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	counts := make([]float64, len(days))
	for i, day := range days {
		counts[i] = float64(daily[day])
	}
	// Pad to at least two X values for go-chart.
	if len(days) == 1 {
		days = append(days, days[0].AddDate(0, 0, 1))
		counts = append(counts, counts[0])
	}

	ch := chart.Chart{
		Title:  "Daily Message Volume",
		Height: 400,
		XAxis: chart.XAxis{
			Name:           "Date",
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		YAxis: chart.YAxis{
			Name: "Messages",
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Messages",
				XValues: days,
				YValues: counts,
				Style: chart.Style{
					StrokeColor: paletteColor(0),
					StrokeWidth: 3,
				},
			},
		},
	}

	return Figure{
		ID:    "timeline",
		Title: "Daily Message Volume",
		SVG:   renderSVG("timeline", ch),
	}
}