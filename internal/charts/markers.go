package charts

import (
	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/narrativelab/panorama/internal/dataset"
)

// markerTopN caps the ranked linguistic-marker chart at the first N entries
// in document order.
const markerTopN = 15

func init() {
	Register(markersBuilder{})
}

type markersBuilder struct{}

func (markersBuilder) Name() string { return "markers" }

func (markersBuilder) Build(snap *dataset.Snapshot) Figure {
	if snap == nil || snap.Summary == nil {
		return Figure{}
	}
	entries := dataset.FirstN(snap.Summary.Markers, markerTopN)
	if len(entries) == 0 {
		return Figure{}
	}

	for i := range entries {
		entries[i].Label = truncateLabel(entries[i].Label, 18)
	}

	ch := chart.BarChart{
		Title:    "Top 15 Linguistic Markers",
		Width:    900,
		Height:   520,
		BarWidth: 40,
		XAxis: chart.Style{
			TextRotationDegrees: 45,
		},
		YAxis: chart.YAxis{
			Name: "Occurrences",
		},
		Bars: barValues(entries),
	}

	return Figure{
		ID:    "markers",
		Title: "Top 15 Linguistic Markers",
		SVG:   renderSVG("markers", ch),
	}
}
