// Copyright 2026 The Panorama Authors
// SPDX-License-Identifier: MIT

package dashboard

import (
	"fmt"
	"html/template"
	"io"
	"sync"

	"github.com/narrativelab/panorama/internal/charts"
	"github.com/narrativelab/panorama/internal/dataset"
	"github.com/narrativelab/panorama/internal/insights"
	"github.com/narrativelab/panorama/internal/output"
)

// page describes one dashboard view: which figures it shows and whether it
// carries the metric cards or the findings list.
type page struct {
	Path         string
	Title        string
	Figures      []string
	ShowCards    bool
	ShowFindings bool
}

// pages defines the dashboard navigation. Figure names refer to registered
// chart builders.
var pages = []page{
	{Path: "/", Title: "Overview", Figures: []string{"overview"}, ShowCards: true},
	{Path: "/categories", Title: "Categories", Figures: []string{"categories", "subcategories", "intensity", "markers"}},
	{Path: "/engagement", Title: "Engagement", Figures: []string{"engagement", "views"}},
	{Path: "/content", Title: "Content", Figures: []string{"media", "timeline"}},
	{Path: "/insights", Title: "Insights", ShowFindings: true},
}

var (
	pageTmplOnce sync.Once
	pageTmpl     *template.Template
)

// pageData is the template payload for a single dashboard page.
type pageData struct {
	Title    string
	Active   string
	Nav      []page
	RunID    string
	Cards    []card
	Figures  []charts.Figure
	Findings []insights.Finding
}

type card struct {
	Label string
	Value string
}

func renderPage(w io.Writer, p page, snap *dataset.Snapshot, runID string) error {
	pageTmplOnce.Do(func() {
		pageTmpl = template.Must(template.New("page").Parse(pageTemplate))
	})

	data := pageData{
		Title:  p.Title,
		Active: p.Path,
		Nav:    pages,
		RunID:  runID,
	}
	if len(p.Figures) > 0 {
		data.Figures = charts.Build(snap, p.Figures...)
	}
	if p.ShowCards && snap != nil && snap.Summary != nil {
		data.Cards = buildCards(snap.Summary)
	}
	if p.ShowFindings {
		data.Findings = insights.Static()
	}

	if err := pageTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("execute page template: %w", err)
	}
	return nil
}

func buildCards(sum *dataset.Summary) []card {
	cards := []card{
		{Label: "Messages Analyzed", Value: output.FormatCount(sum.Overview.TotalMessages)},
		{Label: "Relevant Messages", Value: output.FormatCount(sum.Overview.RelevantMessages)},
		{Label: "Relevance Rate", Value: fmt.Sprintf("%.2f%%", sum.Overview.RelevanceRate)},
	}
	if eng := sum.Engagement; eng != nil {
		cards = append(cards,
			card{Label: "Viral Messages", Value: output.FormatCount(eng.ViralMessages)},
			card{Label: "Average Views", Value: output.FormatCount(int(eng.AverageViews))},
			card{Label: "Max Views", Value: output.FormatCount(eng.MaxViews)},
		)
	}
	return cards
}

// pageTemplate is the shared shell for every dashboard page.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}} - Panorama</title>
<style>
  :root { --ink: #212529; --muted: #6c757d; --card: #ffffff; --bg: #f4f5f7; --accent: #1f77b4; }
  * { box-sizing: border-box; }
  body { margin: 0; background: var(--bg); color: var(--ink); font-family: -apple-system, "Segoe UI", Roboto, sans-serif; }
  nav { background: var(--card); border-bottom: 1px solid #dee2e6; padding: 0 32px; display: flex; gap: 4px; align-items: center; }
  nav .brand { font-weight: 700; margin-right: 20px; padding: 14px 0; }
  nav a { color: var(--muted); text-decoration: none; padding: 14px 12px; display: inline-block; border-bottom: 2px solid transparent; }
  nav a.active { color: var(--accent); border-bottom-color: var(--accent); }
  main { max-width: 1100px; margin: 0 auto; padding: 24px 32px 48px; }
  .cards { display: flex; flex-wrap: wrap; gap: 16px; margin-bottom: 28px; }
  .card { background: var(--card); border: 1px solid #dee2e6; border-radius: 8px; padding: 16px 22px; min-width: 170px; }
  .card .value { font-size: 26px; font-weight: 600; color: var(--accent); }
  .card .label { color: var(--muted); font-size: 13px; margin-top: 2px; }
  section.figure { background: var(--card); border: 1px solid #dee2e6; border-radius: 8px; padding: 18px; margin-bottom: 24px; overflow-x: auto; }
  section.figure h2 { margin: 0 0 12px; font-size: 16px; }
  section.findings { background: var(--card); border: 1px solid #dee2e6; border-radius: 8px; padding: 18px 22px; }
  section.findings li { margin-bottom: 10px; }
  section.findings .title { font-weight: 600; }
  .empty { color: var(--muted); padding: 40px 0; text-align: center; }
  footer { text-align: center; color: var(--muted); font-size: 12px; padding: 12px; }
</style>
</head>
<body>
<nav>
  <span class="brand">Panorama</span>
  {{$active := .Active}}
  {{range .Nav}}<a href="{{.Path}}"{{if eq .Path $active}} class="active"{{end}}>{{.Title}}</a>{{end}}
</nav>
<main>
  {{if .Cards}}
  <div class="cards">
  {{range .Cards}}
    <div class="card"><div class="value">{{.Value}}</div><div class="label">{{.Label}}</div></div>
  {{end}}
  </div>
  {{end}}

  {{range .Figures}}
  <section class="figure" id="{{.ID}}">
    <h2>{{.Title}}</h2>
    {{.SVG}}
  </section>
  {{else}}{{if not .Findings}}{{if not .Cards}}
  <p class="empty">No data available for this view.</p>
  {{end}}{{end}}{{end}}

  {{if .Findings}}
  <section class="findings">
    <h2>Key Findings</h2>
    <ol>
    {{range .Findings}}
      <li><span class="title">{{.Title}}</span>: {{.Detail}}</li>
    {{end}}
    </ol>
  </section>
  {{end}}
</main>
<footer>run {{.RunID}}</footer>
</body>
</html>
`