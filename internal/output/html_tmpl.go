package output

// htmlTemplate is the self-contained report page. Figures arrive as inline
// SVG so the file has no external asset or script dependencies.
const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Panorama Report</title>
<style>
  :root { --ink: #212529; --muted: #6c757d; --card: #ffffff; --bg: #f4f5f7; --accent: #1f77b4; }
  * { box-sizing: border-box; }
  body { margin: 0; background: var(--bg); color: var(--ink); font-family: -apple-system, "Segoe UI", Roboto, sans-serif; }
  header { background: var(--card); border-bottom: 1px solid #dee2e6; padding: 20px 32px; }
  header h1 { margin: 0 0 4px; font-size: 22px; }
  header .meta { color: var(--muted); font-size: 13px; }
  main { max-width: 1100px; margin: 0 auto; padding: 24px 32px 48px; }
  .cards { display: flex; flex-wrap: wrap; gap: 16px; margin-bottom: 28px; }
  .card { background: var(--card); border: 1px solid #dee2e6; border-radius: 8px; padding: 16px 22px; min-width: 180px; }
  .card .value { font-size: 26px; font-weight: 600; color: var(--accent); }
  .card .label { color: var(--muted); font-size: 13px; margin-top: 2px; }
  section.figure { background: var(--card); border: 1px solid #dee2e6; border-radius: 8px; padding: 18px; margin-bottom: 24px; overflow-x: auto; }
  section.figure h2 { margin: 0 0 12px; font-size: 16px; }
  section.findings { background: var(--card); border: 1px solid #dee2e6; border-radius: 8px; padding: 18px 22px; }
  section.findings h2 { margin: 0 0 12px; font-size: 16px; }
  section.findings li { margin-bottom: 10px; }
  section.findings .title { font-weight: 600; }
  footer { text-align: center; color: var(--muted); font-size: 12px; padding: 12px; }
</style>
</head>
<body>
<header>
  <h1>Content Analysis Report</h1>
  <div class="meta">Generated {{.GeneratedAt}} &middot; run {{.RunID}}</div>
</header>
<main>
  <div class="cards">
  {{range .Cards}}
    <div class="card"><div class="value">{{.Value}}</div><div class="label">{{.Label}}</div></div>
  {{end}}
  </div>

  {{range .Figures}}
  <section class="figure" id="{{.ID}}">
    <h2>{{.Title}}</h2>
    {{.SVG}}
  </section>
  {{end}}

  {{if .Findings}}
  <section class="findings">
    <h2>Key Findings</h2>
    <ol>
    {{range .Findings}}
      <li><span class="title">{{.Title}}</span> &mdash; {{.Detail}}</li>
    {{end}}
    </ol>
  </section>
  {{end}}
</main>
<footer>panorama</footer>
</body>
</html>
`
