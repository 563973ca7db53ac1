package output

import (
	"fmt"
	"io"

	"github.com/narrativelab/panorama/internal/dataset"
	"github.com/narrativelab/panorama/internal/insights"
)

func init() {
	RegisterFormatter(NewMarkdownFormatter())
}

// markerTableLimit caps the marker table at the same depth the charts use.
const markerTableLimit = 15

// MarkdownFormatter writes the report as a human-readable Markdown summary.
type MarkdownFormatter struct{}

// Compile-time interface check.
var _ Formatter = (*MarkdownFormatter)(nil)

// NewMarkdownFormatter returns a new MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Name returns the format name.
func (m *MarkdownFormatter) Name() string {
	return "markdown"
}

// Format writes the report as a Markdown document to w.
//
// The output includes:
//   - A title heading and overview line
//   - Count tables per dimension (categories, subcategories, intensity, markers)
//   - The engagement block when present
//   - The key findings
func (m *MarkdownFormatter) Format(snap *dataset.Snapshot, w io.Writer) error {
	if snap == nil || snap.Summary == nil {
		return nil
	}
	sum := snap.Summary

	if err := writeMarkdownHeader(w, sum); err != nil {
		return err
	}

	sections := []struct {
		title  string
		counts *dataset.Counts
		limit  int
	}{
		{"Categories", sum.Categories, 0},
		{"Subcategories", sum.Subcategories, 10},
		{"Intensity Levels", sum.Intensity, 0},
		{"Top Markers", sum.Markers, markerTableLimit},
		{"Media Types", sum.Media, 0},
	}
	for _, s := range sections {
		if err := writeCountTable(w, s.title, s.counts, s.limit); err != nil {
			return err
		}
	}

	if err := writeEngagementSection(w, sum.Engagement); err != nil {
		return err
	}

	return writeFindingsSection(w, insights.Static())
}

func writeMarkdownHeader(w io.Writer, sum *dataset.Summary) error {
	_, err := fmt.Fprintf(w,
		"# Content Analysis Report\n\n**%s** messages analyzed, **%s** relevant (%.2f%%).\n\n",
		FormatCount(sum.Overview.TotalMessages),
		FormatCount(sum.Overview.RelevantMessages),
		sum.Overview.RelevanceRate)
	if err != nil {
		return fmt.Errorf("write markdown header: %w", err)
	}
	return nil
}

// writeCountTable renders one labeled-count dimension as a Markdown table,
// keeping document key order. A zero limit means all entries.
func writeCountTable(w io.Writer, title string, counts *dataset.Counts, limit int) error {
	if counts == nil || counts.Len() == 0 {
		return nil
	}
	entries := dataset.Entries(counts)
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	if _, err := fmt.Fprintf(w, "## %s\n\n| Label | Count |\n|---|---:|\n", title); err != nil {
		return fmt.Errorf("write markdown section: %w", err)
	}
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "| %s | %s |\n", e.Label, FormatCount(e.Count)); err != nil {
			return fmt.Errorf("write markdown section: %w", err)
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return fmt.Errorf("write markdown section: %w", err)
	}
	return nil
}

func writeEngagementSection(w io.Writer, eng *dataset.Engagement) error {
	if eng == nil {
		return nil
	}
	_, err := fmt.Fprintf(w,
		"## Engagement\n\n- Viral messages: %s\n- Average views: %s\n- Average forwards: %.1f\n- Max views: %s\n- High engagement messages: %s\n\n",
		FormatCount(eng.ViralMessages),
		FormatCount(int(eng.AverageViews)),
		eng.AverageForwards,
		FormatCount(eng.MaxViews),
		FormatCount(eng.HighEngagementMessages))
	if err != nil {
		return fmt.Errorf("write engagement section: %w", err)
	}
	return nil
}

func writeFindingsSection(w io.Writer, findings []insights.Finding) error {
	if len(findings) == 0 {
		return nil
	}
	if _, err := fmt.Fprint(w, "## Key Findings\n\n"); err != nil {
		return fmt.Errorf("write findings section: %w", err)
	}
	for i, f := range findings {
		if _, err := fmt.Fprintf(w, "%d. **%s**: %s\n", i+1, f.Title, f.Detail); err != nil {
			return fmt.Errorf("write findings section: %w", err)
		}
	}
	return nil
}
