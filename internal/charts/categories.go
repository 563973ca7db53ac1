package charts

import (
	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/narrativelab/panorama/internal/dataset"
)

func init() {
	Register(categoriesBuilder{})
}

// categoriesBuilder draws the category distribution as a pie chart.
type categoriesBuilder struct{}

func (categoriesBuilder) Name() string { return "categories" }

func (categoriesBuilder) Build(snap *dataset.Snapshot) Figure {
	if snap == nil || snap.Summary == nil {
		return Figure{}
	}
	entries := dataset.Entries(snap.Summary.Categories)
	if len(entries) == 0 || dataset.Total(snap.Summary.Categories) == 0 {
		return Figure{}
	}

	values := make([]chart.Value, 0, len(entries))
	for i, e := range entries {
		values = append(values, chart.Value{
			Label: truncateLabel(e.Label, 32),
			Value: float64(e.Count),
			Style: chart.Style{FillColor: paletteColor(i)},
		})
	}

	ch := chart.PieChart{
		Title:  "Content Category Distribution",
		Width:  560,
		Height: 420,
		Values: values,
	}

	return Figure{
		ID:    "categories",
		Title: "Content Category Distribution",
		SVG:   renderSVG("categories", ch),
	}
}
