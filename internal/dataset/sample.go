// Copyright 2026 The Panorama Authors
// SPDX-License-Identifier: MIT

package dataset

import (
	"math"
	"math/rand"
	"time"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// sampleSeed keeps demo output reproducible across runs.
const sampleSeed = 42

// Sample returns a fully-populated demonstration Snapshot for use when no
// real analyzer output is available. The summary holds fixed illustrative
// values; the record collection is drawn from parameterized random
// distributions matching the shape of real exports.
func Sample() *Snapshot {
	return sampleAt(time.Now(), sampleSeed)
}

func sampleAt(now time.Time, seed int64) *Snapshot {
	summary := sampleSummary()
	return &Snapshot{
		Records: sampleRecords(summary, now, seed),
		Summary: summary,
	}
}

func sampleSummary() *Summary {
	return &Summary{
		Overview: Overview{
			TotalMessages:    12000,
			RelevantMessages: 1315,
			RelevanceRate:    10.96,
		},
		Categories: counts(
			entry("LGBTQ+ Hate Speech & Anti-Rights Rhetoric", 1245),
			entry("Masculinity & Gender Backlash", 35),
			entry("Digital Disinformation & Anti-Gender Narratives", 30),
			entry("SRHR & Moral Panic", 5),
		),
		Subcategories: counts(
			entry("3.religious_opposition", 1280),
			entry("2.emasculation", 35),
			entry("1.cultural_authenticity", 30),
			entry("4.traditional_family", 25),
			entry("5.imported_ideology", 20),
			entry("6.moral_corruption", 15),
			entry("7.family_destruction", 12),
			entry("8.children_targeting", 8),
		),
		Intensity: counts(
			entry("1", 1312),
			entry("2", 3),
		),
		Engagement: &Engagement{
			ViralMessages:          1129,
			AverageViews:           8547,
			AverageForwards:        2.1,
			MaxViews:               89000,
			HighEngagementMessages: 456,
		},
		Markers: counts(
			entry("sin", 977),
			entry("immoral", 156),
			entry("abomination", 89),
			entry("against God", 67),
			entry("unnatural", 67),
			entry("imported", 45),
			entry("traditional values", 45),
			entry("corruption", 43),
			entry("family values", 38),
			entry("our culture", 34),
			entry("destruction", 31),
			entry("western influence", 29),
			entry("moral decay", 25),
			entry("beta male", 23),
			entry("emasculation", 12),
		),
		ContentWithMedia: 700,
		Media: counts(
			entry("photo", 450),
			entry("document", 250),
		),
	}
}

// Demo record distribution parameters. Views follow a clipped log-normal,
// forwards a clipped Poisson, dates a uniform spread over the past year.
const (
	sampleRecordCount = 1315

	viewsLogMean  = 7.5
	viewsLogSigma = 1.5
	viewsMin      = 100
	viewsMax      = 89000

	forwardsLambda = 2.1
	forwardsMax    = 20

	mediaProbability = 0.53
	level2Rate       = 0.002

	sampleDateSpreadDays = 365
)

var categoryWeights = []float64{0.947, 0.027, 0.023, 0.003}

func sampleRecords(summary *Summary, now time.Time, seed int64) []Record {
	r := rand.New(rand.NewSource(seed)) //nolint:gosec // demo data, not security-sensitive

	categories := labels(summary.Categories)
	subcategories := labels(summary.Subcategories)
	if len(subcategories) > 4 {
		subcategories = subcategories[:4]
	}

	records := make([]Record, 0, sampleRecordCount)
	for i := 0; i < sampleRecordCount; i++ {
		intensity := 1
		if r.Float64() < level2Rate {
			intensity = 2
		}

		views := int(math.Exp(viewsLogMean + viewsLogSigma*r.NormFloat64()))
		views = clamp(views, viewsMin, viewsMax)

		forwards := clamp(poisson(r, forwardsLambda), 0, forwardsMax)

		records = append(records, Record{
			MessageID:   messageID(i + 1),
			TextPreview: "Sample coded message content [religious framing, cultural authenticity, moral opposition]",
			Category:    weightedChoice(r, categories, categoryWeights),
			Subcategory: subcategories[r.Intn(len(subcategories))],
			Intensity:   intensity,
			Views:       views,
			Forwards:    forwards,
			Date:        now.AddDate(0, 0, -r.Intn(sampleDateSpreadDays)),
			HasMedia:    r.Float64() < mediaProbability,
		})
	}
	return records
}

func messageID(n int) string {
	// msg_0001 style IDs, matching real exports.
	const digits = "0123456789"
	id := []byte("msg_0000")
	for i := 7; i >= 4 && n > 0; i-- {
		id[i] = digits[n%10]
		n /= 10
	}
	return string(id)
}

// weightedChoice picks one label by fixed categorical weights. Extra labels
// beyond the weight list get zero probability; a short label list collapses
// the remaining mass onto the last label.
func weightedChoice(r *rand.Rand, labels []string, weights []float64) string {
	if len(labels) == 0 {
		return ""
	}
	u := r.Float64()
	acc := 0.0
	for i, w := range weights {
		if i >= len(labels) {
			break
		}
		acc += w
		if u < acc {
			return labels[i]
		}
	}
	return labels[len(labels)-1]
}

// poisson draws from Poisson(lambda) using Knuth's product method, which is
// fine for the small lambdas used here.
func poisson(r *rand.Rand, lambda float64) int {
	limit := math.Exp(-lambda)
	k := 0
	p := 1.0
	for {
		p *= r.Float64()
		if p <= limit {
			return k
		}
		k++
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func labels(c *Counts) []string {
	entries := Entries(c)
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Label
	}
	return out
}

func counts(entries ...Entry) *Counts {
	m := orderedmap.New[string, int]()
	for _, e := range entries {
		m.Set(e.Label, e.Count)
	}
	return m
}

func entry(label string, count int) Entry {
	return Entry{Label: label, Count: count}
}