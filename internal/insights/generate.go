package insights

import (
	"context"
	"fmt"
	"strings"

	"github.com/narrativelab/panorama/internal/dataset"
	"github.com/narrativelab/panorama/internal/llm"
)

const systemPrompt = `You are an analyst summarizing a content-analysis run
over a message corpus. Given aggregate statistics, produce 3 to 5 key
findings. Each finding is one line in the form "Title: detail sentence".
Do not invent numbers that are not in the input.`

// maxFindings caps how many findings we keep from a model response.
const maxFindings = 5

// Generate asks the provider for findings derived from the summary
// document. The summary is serialized into the prompt; records never
// leave the process.
func Generate(ctx context.Context, provider llm.Provider, sum *dataset.Summary) ([]Finding, error) {
	if sum == nil {
		return nil, fmt.Errorf("insights: nil summary")
	}

	resp, err := provider.Complete(ctx, llm.Request{
		Prompt:       buildPrompt(sum),
		SystemPrompt: systemPrompt,
	})
	if err != nil {
		return nil, fmt.Errorf("insights: %w", err)
	}

	findings := parseFindings(resp.Content)
	if len(findings) == 0 {
		return nil, fmt.Errorf("insights: model returned no parseable findings")
	}
	return findings, nil
}

// buildPrompt flattens the summary into a compact plain-text block.
func buildPrompt(sum *dataset.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Messages analyzed: %d\n", sum.Overview.TotalMessages)
	fmt.Fprintf(&b, "Relevant messages: %d (%.2f%%)\n", sum.Overview.RelevantMessages, sum.Overview.RelevanceRate)

	writeCounts(&b, "Categories", sum.Categories, 0)
	writeCounts(&b, "Subcategories", sum.Subcategories, 10)
	writeCounts(&b, "Intensity levels", sum.Intensity, 0)
	writeCounts(&b, "Top markers", sum.Markers, 15)
	writeCounts(&b, "Media types", sum.Media, 0)

	if eng := sum.Engagement; eng != nil {
		fmt.Fprintf(&b, "Engagement: viral=%d avg_views=%.0f avg_forwards=%.1f max_views=%d high_engagement=%d\n",
			eng.ViralMessages, eng.AverageViews, eng.AverageForwards, eng.MaxViews, eng.HighEngagementMessages)
	}
	if sum.ContentWithMedia > 0 {
		fmt.Fprintf(&b, "Messages with media: %d\n", sum.ContentWithMedia)
	}
	return b.String()
}

func writeCounts(b *strings.Builder, label string, counts *dataset.Counts, limit int) {
	if counts == nil || counts.Len() == 0 {
		return
	}
	entries := dataset.Entries(counts)
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	fmt.Fprintf(b, "%s:", label)
	for _, e := range entries {
		fmt.Fprintf(b, " %s=%d", e.Label, e.Count)
	}
	b.WriteString("\n")
}

// parseFindings splits a model response into findings, one per non-empty
// line. List prefixes ("-", "*", "1.") are stripped; a leading "Title:"
// segment becomes the title, otherwise the whole line is the detail.
func parseFindings(content string) []Finding {
	var out []Finding
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*0123456789.) ")
		if line == "" {
			continue
		}
		var f Finding
		if title, detail, ok := strings.Cut(line, ":"); ok && len(title) < 80 {
			f = Finding{Title: strings.TrimSpace(title), Detail: strings.TrimSpace(detail)}
		} else {
			f = Finding{Detail: line}
		}
		out = append(out, f)
		if len(out) == maxFindings {
			break
		}
	}
	return out
}
