package charts

import (
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/narrativelab/panorama/internal/dataset"
)

// viewsBinCount is the fixed histogram bin count.
const viewsBinCount = 30

func init() {
	Register(viewsBuilder{})
}

// viewsBuilder draws the view-count distribution as a fixed-bin histogram
// over the record collection.
type viewsBuilder struct{}

func (viewsBuilder) Name() string { return "views" }

func (viewsBuilder) Build(snap *dataset.Snapshot) Figure {
	if snap == nil || len(snap.Records) == 0 {
		return Figure{}
	}

	minViews, maxViews := snap.Records[0].Views, snap.Records[0].Views
	for _, rec := range snap.Records {
		if rec.Views < minViews {
			minViews = rec.Views
		}
		if rec.Views > maxViews {
			maxViews = rec.Views
		}
	}

	bins := make([]int, viewsBinCount)
	width := float64(maxViews-minViews) / viewsBinCount
	for _, rec := range snap.Records {
		idx := 0
		if width > 0 {
			idx = int(float64(rec.Views-minViews) / width)
		}
		if idx >= viewsBinCount {
			idx = viewsBinCount - 1
		}
		bins[idx]++
	}

	bars := make([]chart.Value, viewsBinCount)
	for i, count := range bins {
		// Label every fifth bin with its lower bound to keep the axis legible.
		label := ""
		if i%5 == 0 {
			label = strconv.Itoa(minViews + int(float64(i)*width))
		}
		bars[i] = chart.Value{
			Label: label,
			Value: float64(count),
			Style: barStyle(2),
		}
	}

	ch := chart.BarChart{
		Title:      "Views Distribution",
		Width:      920,
		Height:     400,
		BarWidth:   22,
		BarSpacing: 4,
		YAxis: chart.YAxis{
			Name: "Messages",
		},
		Bars: bars,
	}

	return Figure{
		ID:    "views",
		Title: "Views Distribution",
		SVG:   renderSVG("views", ch),
	}
}
