package charts

import (
	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/narrativelab/panorama/internal/dataset"
)

func init() {
	Register(mediaBuilder{})
}

// mediaBuilder splits relevant messages into with-media and text-only. The
// text-only slice is derived: relevant_messages_found − content_with_media.
// This is the only derived number in any builder, and it comes straight from
// two fields of the same document.
type mediaBuilder struct{}

func (mediaBuilder) Name() string { return "media" }

func (mediaBuilder) Build(snap *dataset.Snapshot) Figure {
	if snap == nil || snap.Summary == nil {
		return Figure{}
	}
	withMedia, textOnly := mediaSplit(snap.Summary)
	if withMedia <= 0 {
		return Figure{}
	}

	ch := chart.PieChart{
		Title:  "Media Content Distribution",
		Width:  560,
		Height: 420,
		Values: []chart.Value{
			{Label: "With Media", Value: float64(withMedia), Style: chart.Style{FillColor: paletteColor(1)}},
			{Label: "Text Only", Value: float64(textOnly), Style: chart.Style{FillColor: paletteColor(0)}},
		},
	}

	return Figure{
		ID:    "media",
		Title: "Media Content Distribution",
		SVG:   renderSVG("media", ch),
	}
}

// mediaSplit returns the with-media count and the derived text-only count,
// clamped at zero when the document is inconsistent.
func mediaSplit(sum *dataset.Summary) (withMedia, textOnly int) {
	withMedia = sum.ContentWithMedia
	textOnly = sum.Overview.RelevantMessages - withMedia
	if textOnly < 0 {
		textOnly = 0
	}
	return withMedia, textOnly
}
