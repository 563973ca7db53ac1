package charts

import (
	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/narrativelab/panorama/internal/dataset"
)

// subcategoryTopN caps the ranked subcategory chart. "Top" means the first
// entries in document order; the analyzer pre-sorts its distributions.
const subcategoryTopN = 10

func init() {
	Register(subcategoriesBuilder{})
}

type subcategoriesBuilder struct{}

func (subcategoriesBuilder) Name() string { return "subcategories" }

func (subcategoriesBuilder) Build(snap *dataset.Snapshot) Figure {
	if snap == nil || snap.Summary == nil {
		return Figure{}
	}
	entries := dataset.FirstN(snap.Summary.Subcategories, subcategoryTopN)
	if len(entries) == 0 {
		return Figure{}
	}

	for i := range entries {
		entries[i].Label = truncateLabel(entries[i].Label, 24)
	}

	ch := chart.BarChart{
		Title:    "Top 10 Subcategories",
		Height:   480,
		BarWidth: 48,
		XAxis: chart.Style{
			TextRotationDegrees: 45,
		},
		YAxis: chart.YAxis{
			Name: "Messages",
		},
		Bars: barValues(entries),
	}

	return Figure{
		ID:    "subcategories",
		Title: "Top 10 Subcategories",
		SVG:   renderSVG("subcategories", ch),
	}
}
