// Copyright 2026 The Panorama Authors
// SPDX-License-Identifier: MIT

// Package dataset loads and models pre-computed content-analysis results:
// a CSV of per-message records and a nested JSON summary document. The
// package is strictly a reader: no statistic is computed here that is not
// already present in the analyzer's output.
package dataset

import (
	"sort"
	"strconv"
	"time"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Record is one analyzed message from the detailed CSV export. Records are
// immutable once loaded; the collection preserves file order and enforces
// no uniqueness.
type Record struct {
	MessageID   string
	TextPreview string
	Category    string
	Subcategory string
	Intensity   int
	Views       int
	Forwards    int
	Date        time.Time
	HasMedia    bool
}

// Counts is an insertion-ordered label→count mapping. The upstream analyzer
// emits distribution maps pre-sorted by count, so key order is meaningful
// and must survive the JSON round trip: "top N" always means the first N
// entries in document order.
type Counts = orderedmap.OrderedMap[string, int]

// Entry is one label/count pair from a Counts map.
type Entry struct {
	Label string
	Count int
}

// Entries returns the pairs of c in document order. A nil map yields nil.
func Entries(c *Counts) []Entry {
	if c == nil {
		return nil
	}
	out := make([]Entry, 0, c.Len())
	for pair := c.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, Entry{Label: pair.Key, Count: pair.Value})
	}
	return out
}

// FirstN returns at most n leading entries of c in document order.
func FirstN(c *Counts, n int) []Entry {
	entries := Entries(c)
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// Total sums all counts in c.
func Total(c *Counts) int {
	sum := 0
	for _, e := range Entries(c) {
		sum += e.Count
	}
	return sum
}

// SortedByLabelValue returns the entries of c ordered by the numeric value
// of their labels, ascending. Labels that do not parse as integers sort
// after numeric ones, lexically. Used for intensity levels ("1", "2", ...).
func SortedByLabelValue(c *Counts) []Entry {
	entries := Entries(c)
	sort.SliceStable(entries, func(i, j int) bool {
		a, aerr := strconv.Atoi(entries[i].Label)
		b, berr := strconv.Atoi(entries[j].Label)
		switch {
		case aerr == nil && berr == nil:
			return a < b
		case aerr == nil:
			return true
		case berr == nil:
			return false
		default:
			return entries[i].Label < entries[j].Label
		}
	})
	return entries
}

// Overview holds the required top-level aggregates of the summary document.
type Overview struct {
	TotalMessages    int     `json:"total_messages_analyzed"`
	RelevantMessages int     `json:"relevant_messages_found"`
	RelevanceRate    float64 `json:"relevance_rate"`
}

// Engagement holds the engagement aggregates computed upstream. Viral and
// high-engagement thresholds are defined by the analyzer, not recomputed
// here.
type Engagement struct {
	ViralMessages          int     `json:"viral_messages"`
	AverageViews           float64 `json:"average_views"`
	AverageForwards        float64 `json:"average_forwards"`
	MaxViews               int     `json:"max_views"`
	HighEngagementMessages int     `json:"high_engagement_messages"`
}

// Summary is the nested summary-statistics document. Only analysis_summary
// is required; every other field is optional and may be nil/zero. The
// document is read-only after load.
type Summary struct {
	Overview         Overview    `json:"analysis_summary"`
	Categories       *Counts     `json:"category_distribution,omitempty"`
	Subcategories    *Counts     `json:"subcategory_distribution,omitempty"`
	Intensity        *Counts     `json:"intensity_distribution,omitempty"`
	Engagement       *Engagement `json:"engagement_analysis,omitempty"`
	Markers          *Counts     `json:"top_linguistic_markers,omitempty"`
	ContentWithMedia int         `json:"content_with_media,omitempty"`
	Media            *Counts     `json:"media_distribution,omitempty"`
}

// Snapshot bundles the two loaded inputs for the rest of a run. Both parts
// are constructed once and treated as immutable afterwards.
type Snapshot struct {
	Records []Record
	Summary *Summary
}