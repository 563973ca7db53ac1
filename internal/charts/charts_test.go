// Copyright 2026 The Panorama Authors
// SPDX-License-Identifier: MIT

package charts

import (
	"fmt"
	"strings"
	"testing"
	"time"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narrativelab/panorama/internal/dataset"
)

// minimalSummary returns a summary holding only the required block.
func minimalSummary() *dataset.Summary {
	return &dataset.Summary{
		Overview: dataset.Overview{
			TotalMessages:    12000,
			RelevantMessages: 1315,
			RelevanceRate:    10.96,
		},
	}
}

func countsOf(pairs ...dataset.Entry) *dataset.Counts {
	m := orderedmap.New[string, int]()
	for _, p := range pairs {
		m.Set(p.Label, p.Count)
	}
	return m
}

func TestRegistry_AllBuildersRegistered(t *testing.T) {
	for _, name := range Order {
		assert.NotNil(t, Get(name), "builder %q must be registered", name)
	}
	assert.Len(t, List(), len(Order))
}

func TestBuildAll_SampleDataRendersEverything(t *testing.T) {
	figures := BuildAll(dataset.Sample())
	require.Len(t, figures, len(Order), "sample data exercises every builder")

	for i, fig := range figures {
		assert.Equal(t, Order[i], fig.ID, "figures come back in report order")
		assert.False(t, fig.Empty())
		assert.Contains(t, string(fig.SVG), "<svg")
	}
}

func TestBuildAll_NilSnapshot(t *testing.T) {
	assert.Empty(t, BuildAll(nil))
}

func TestOverview_MissingEngagementDegradesToZero(t *testing.T) {
	snap := &dataset.Snapshot{Summary: minimalSummary()}

	fig := Get("overview").Build(snap)
	assert.False(t, fig.Empty(), "overview needs only the required block")
	assert.Contains(t, string(fig.SVG), "Viral Messages")
}

func TestCategories_TwoSlices(t *testing.T) {
	sum := minimalSummary()
	sum.Categories = countsOf(
		dataset.Entry{Label: "A", Count: 3},
		dataset.Entry{Label: "B", Count: 1},
	)
	snap := &dataset.Snapshot{Summary: sum}

	require.Equal(t, 4, dataset.Total(sum.Categories))

	fig := Get("categories").Build(snap)
	require.False(t, fig.Empty())
	svg := string(fig.SVG)
	assert.Contains(t, svg, ">A<")
	assert.Contains(t, svg, ">B<")
}

func TestCategories_MissingKeyIsEmpty(t *testing.T) {
	snap := &dataset.Snapshot{Summary: minimalSummary()}
	assert.True(t, Get("categories").Build(snap).Empty())
}

func TestSubcategories_TopTenInDocumentOrder(t *testing.T) {
	sum := minimalSummary()
	var pairs []dataset.Entry
	for i := 1; i <= 12; i++ {
		pairs = append(pairs, dataset.Entry{Label: fmt.Sprintf("sub_%02d", i), Count: 100 - i})
	}
	sum.Subcategories = countsOf(pairs...)
	snap := &dataset.Snapshot{Summary: sum}

	fig := Get("subcategories").Build(snap)
	require.False(t, fig.Empty())
	svg := string(fig.SVG)
	assert.Contains(t, svg, "sub_10")
	assert.NotContains(t, svg, "sub_11", "only the first ten entries are drawn")
}

func TestMarkers_TopFifteenInInputOrder(t *testing.T) {
	sum := minimalSummary()
	var pairs []dataset.Entry
	for i := 1; i <= 20; i++ {
		pairs = append(pairs, dataset.Entry{Label: fmt.Sprintf("marker_%02d", i), Count: i})
	}
	sum.Markers = countsOf(pairs...)
	snap := &dataset.Snapshot{Summary: sum}

	fig := Get("markers").Build(snap)
	require.False(t, fig.Empty())
	svg := string(fig.SVG)
	assert.Contains(t, svg, "marker_15")
	assert.NotContains(t, svg, "marker_16", "a 20-entry map yields exactly the first 15")
}

func TestIntensity_LevelsSortedAscending(t *testing.T) {
	sum := minimalSummary()
	sum.Intensity = countsOf(
		dataset.Entry{Label: "2", Count: 3},
		dataset.Entry{Label: "1", Count: 1312},
	)
	snap := &dataset.Snapshot{Summary: sum}

	fig := Get("intensity").Build(snap)
	require.False(t, fig.Empty())
	svg := string(fig.SVG)
	assert.Less(t, strings.Index(svg, "Level 1"), strings.Index(svg, "Level 2"))
}

func TestMediaSplit_DerivedTextOnly(t *testing.T) {
	sum := minimalSummary()
	sum.ContentWithMedia = 700

	withMedia, textOnly := mediaSplit(sum)
	assert.Equal(t, 700, withMedia)
	assert.Equal(t, 615, textOnly)
}

func TestMedia_ZeroCountIsEmpty(t *testing.T) {
	snap := &dataset.Snapshot{Summary: minimalSummary()}
	assert.True(t, Get("media").Build(snap).Empty())
}

func TestTimeline_NoUsableDatesIsEmpty(t *testing.T) {
	snap := &dataset.Snapshot{
		Records: []dataset.Record{
			{MessageID: "msg_0001", Views: 100},
			{MessageID: "msg_0002", Views: 200},
		},
		Summary: minimalSummary(),
	}

	fig := Get("timeline").Build(snap)
	assert.True(t, fig.Empty(), "records without dates must not raise")
}

func TestTimeline_SingleDay(t *testing.T) {
	day := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	snap := &dataset.Snapshot{
		Records: []dataset.Record{
			{MessageID: "msg_0001", Views: 100, Date: day},
			{MessageID: "msg_0002", Views: 200, Date: day.Add(2 * time.Hour)},
		},
	}

	fig := Get("timeline").Build(snap)
	assert.False(t, fig.Empty(), "a single day still renders via padding")
}

func TestEngagement_GroupsByIntensityLevel(t *testing.T) {
	snap := &dataset.Snapshot{
		Records: []dataset.Record{
			{Views: 100, Forwards: 1, Intensity: 1},
			{Views: 5000, Forwards: 8, Intensity: 1},
			{Views: 900, Forwards: 2, Intensity: 2},
		},
	}

	fig := Get("engagement").Build(snap)
	require.False(t, fig.Empty())
	svg := string(fig.SVG)
	assert.Contains(t, svg, "Level 1")
	assert.Contains(t, svg, "Level 2")
}

func TestEngagement_NoRecordsIsEmpty(t *testing.T) {
	assert.True(t, Get("engagement").Build(&dataset.Snapshot{Summary: minimalSummary()}).Empty())
}

func TestViews_HistogramRenders(t *testing.T) {
	recs := make([]dataset.Record, 100)
	for i := range recs {
		recs[i] = dataset.Record{Views: 100 + i*137}
	}

	fig := Get("views").Build(&dataset.Snapshot{Records: recs})
	require.False(t, fig.Empty())
	assert.Contains(t, string(fig.SVG), "<svg")
}

func TestViews_IdenticalValuesDoNotPanic(t *testing.T) {
	recs := []dataset.Record{{Views: 500}, {Views: 500}, {Views: 500}}
	// All-equal values collapse to a single bin; rendering may degrade to an
	// empty figure but must not panic.
	assert.NotPanics(t, func() {
		Get("views").Build(&dataset.Snapshot{Records: recs})
	})
}