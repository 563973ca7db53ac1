package charts

import (
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/narrativelab/panorama/internal/dataset"
)

func init() {
	Register(intensityBuilder{})
}

// intensityBuilder draws message counts per intensity level, levels sorted
// ascending. The scale is treated as an open-ended ordinal: whatever levels
// the document contains are rendered, nothing assumes a 1-5 range.
type intensityBuilder struct{}

func (intensityBuilder) Name() string { return "intensity" }

func (intensityBuilder) Build(snap *dataset.Snapshot) Figure {
	if snap == nil || snap.Summary == nil {
		return Figure{}
	}
	entries := dataset.SortedByLabelValue(snap.Summary.Intensity)
	if len(entries) == 0 {
		return Figure{}
	}

	bars := make([]chart.Value, 0, len(entries))
	for i, e := range entries {
		bars = append(bars, chart.Value{
			Label: fmt.Sprintf("Level %s", e.Label),
			Value: float64(e.Count),
			Style: barStyle(i + 3), // start at red: intensity reads as severity
		})
	}

	ch := chart.BarChart{
		Title:    "Message Intensity Distribution",
		Height:   400,
		BarWidth: 72,
		YAxis: chart.YAxis{
			Name: "Messages",
		},
		Bars: bars,
	}

	return Figure{
		ID:    "intensity",
		Title: "Message Intensity Distribution",
		SVG:   renderSVG("intensity", ch),
	}
}
