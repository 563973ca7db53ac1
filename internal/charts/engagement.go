// Copyright 2026 The Panorama Authors
// SPDX-License-Identifier: MIT

package charts

import (
	"fmt"
	"sort"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/narrativelab/panorama/internal/dataset"
)

func init() {
	Register(engagementBuilder{})
}

// engagementBuilder draws the Views×Forwards scatter from the record
// collection, one dot series per intensity level.
type engagementBuilder struct{}

func (engagementBuilder) Name() string { return "engagement" }

func (engagementBuilder) Build(snap *dataset.Snapshot) Figure {
	if snap == nil || len(snap.Records) == 0 {
		return Figure{}
	}

	byLevel := make(map[int][]dataset.Record)
	for _, rec := range snap.Records {
		byLevel[rec.Intensity] = append(byLevel[rec.Intensity], rec)
	}
	levels := make([]int, 0, len(byLevel))
	for lvl := range byLevel {
		levels = append(levels, lvl)
	}
	sort.Ints(levels)

	series := make([]chart.Series, 0, len(levels))
	for i, lvl := range levels {
		recs := byLevel[lvl]
		xs := make([]float64, len(recs))
		ys := make([]float64, len(recs))
		for j, rec := range recs {
			xs[j] = float64(rec.Views)
			ys[j] = float64(rec.Forwards)
		}
		// Pad to at least two X values for go-chart.
		if len(xs) == 1 {
			xs = append(xs, xs[0]+1)
			ys = append(ys, ys[0])
		}
		series = append(series, chart.ContinuousSeries{
			Name:    fmt.Sprintf("Level %d", lvl),
			XValues: xs,
			YValues: ys,
			Style:   pointStyle(paletteColor(i)),
		})
	}

	ch := chart.Chart{
		Title:  "Views vs Forwards",
		Height: 420,
		XAxis: chart.XAxis{
			Name: "Views",
		},
		YAxis: chart.YAxis{
			Name: "Forwards",
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	return Figure{
		ID:    "engagement",
		Title: "Views vs Forwards",
		SVG:   renderSVG("engagement", ch),
	}
}