package charts

import (
	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/narrativelab/panorama/internal/dataset"
)

func init() {
	Register(overviewBuilder{})
}

// overviewBuilder draws the four headline counts as a bar chart. Viral and
// high-engagement counts come from the optional engagement block and fall
// back to zero when it is absent, matching the analyzer's own report.
type overviewBuilder struct{}

func (overviewBuilder) Name() string { return "overview" }

func (overviewBuilder) Build(snap *dataset.Snapshot) Figure {
	if snap == nil || snap.Summary == nil {
		return Figure{}
	}
	sum := snap.Summary

	var eng dataset.Engagement
	if sum.Engagement != nil {
		eng = *sum.Engagement
	}

	bars := []chart.Value{
		{Label: "Total Messages", Value: float64(sum.Overview.TotalMessages), Style: barStyle(0)},
		{Label: "Relevant Messages", Value: float64(sum.Overview.RelevantMessages), Style: barStyle(1)},
		{Label: "Viral Messages", Value: float64(eng.ViralMessages), Style: barStyle(2)},
		{Label: "High Engagement", Value: float64(eng.HighEngagementMessages), Style: barStyle(3)},
	}

	ch := chart.BarChart{
		Title:    "Analysis Overview Metrics",
		Height:   400,
		BarWidth: 80,
		YAxis: chart.YAxis{
			Name: "Count",
		},
		Bars: bars,
	}

	return Figure{
		ID:    "overview",
		Title: "Analysis Overview Metrics",
		SVG:   renderSVG("overview", ch),
	}
}
