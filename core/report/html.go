package report

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"sort"

	"drift-detector/core/compare"
	"drift-detector/core/utils"
)

// htmlPage is the single-page report template. It lists the summary table
// first, then per-category drill-down sections for anything drifted.
const htmlPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Drift report {{.RunID}}</title>
<style>
body { font-family: sans-serif; margin: 2em; color: #222; }
table { border-collapse: collapse; margin-bottom: 2em; }
th, td { border: 1px solid #ccc; padding: 4px 10px; text-align: left; }
th { background: #f0f0f0; }
.ok { color: #2a7a2a; }
.drift { color: #b00020; font-weight: bold; }
.error { color: #9a6700; font-weight: bold; }
h2 { margin-top: 1.5em; }
caption { text-align: left; font-weight: bold; padding: 4px 0; }
</style>
</head>
<body>
<h1>Schema drift report</h1>
<p>Run <code>{{.RunID}}</code>, generated {{.GeneratedAt.Format "2006-01-02 15:04:05 MST"}}</p>
<p>Source: <b>{{.Source.Label}}</b> ({{.Source.Address}}{{with .Source.Version}}, {{.}}{{end}})<br>
Target: <b>{{.Target.Label}}</b> ({{.Target.Address}}{{with .Target.Version}}, {{.}}{{end}})</p>

<table>
<caption>Summary</caption>
<tr><th>Category</th><th>Matches</th><th>Differences</th><th>Source only</th><th>Target only</th><th>Total</th><th>Status</th></tr>
{{range .Summaries}}
<tr>
  <td>{{.Category}}</td>
  <td>{{.Matches}}</td><td>{{.Differences}}</td><td>{{.SourceOnly}}</td><td>{{.TargetOnly}}</td><td>{{.Total}}</td>
  {{if .Error}}<td class="error">ERROR</td>
  {{else if .HasDrift}}<td class="drift">DRIFT</td>
  {{else}}<td class="ok">OK</td>{{end}}
</tr>
{{end}}
</table>

{{range .Sections}}
<h2>{{.Category}}</h2>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
{{if .Differences}}
<table>
<caption>Differences</caption>
<tr><th>Identity</th><th>Column</th><th>Source</th><th>Target</th></tr>
{{range .Differences}}{{$identity := .Identity}}{{range .Changes}}
<tr><td>{{$identity}}</td><td>{{.Column}}</td><td>{{.Source}}</td><td>{{.Target}}</td></tr>
{{end}}{{end}}
</table>
{{end}}
{{if .SourceOnly}}
<table>
<caption>Source only</caption>
<tr><th>Identity</th></tr>
{{range .SourceOnly}}<tr><td>{{.}}</td></tr>{{end}}
</table>
{{end}}
{{if .TargetOnly}}
<table>
<caption>Target only</caption>
<tr><th>Identity</th></tr>
{{range .TargetOnly}}<tr><td>{{.}}</td></tr>{{end}}
</table>
{{end}}
{{end}}
</body>
</html>
`

var htmlTemplate = template.Must(template.New("report").Parse(htmlPage))

// htmlChange is one changed column, flattened for the template.
type htmlChange struct {
	Column string
	Source string
	Target string
}

type htmlDiff struct {
	Identity string
	Changes  []htmlChange
}

// htmlSection is the drill-down view of one drifted or errored category.
type htmlSection struct {
	Category    string
	Error       string
	Differences []htmlDiff
	SourceOnly  []string
	TargetOnly  []string
}

type htmlSummary struct {
	compare.CategorySummary
	HasDrift bool
}

type htmlData struct {
	*Report
	Summaries []htmlSummary
	Sections  []htmlSection
}

// WriteHTML renders the report as a standalone HTML page.
func (r *Report) WriteHTML(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create html report: %w", err)
	}
	defer f.Close()
	return r.RenderHTML(f)
}

// RenderHTML renders the report page to the given writer.
func (r *Report) RenderHTML(w io.Writer) error {
	data := htmlData{Report: r}

	for _, s := range r.Summaries {
		data.Summaries = append(data.Summaries, htmlSummary{
			CategorySummary: s,
			HasDrift:        s.Differences > 0 || s.SourceOnly > 0 || s.TargetOnly > 0,
		})
	}

	for _, s := range r.Summaries {
		section := buildSection(s, r.Results[s.Category])
		if section != nil {
			data.Sections = append(data.Sections, *section)
		}
	}

	if err := htmlTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render html report: %w", err)
	}
	return nil
}

// buildSection flattens one category's drift into template rows.
// Clean categories get no section.
func buildSection(s compare.CategorySummary, result *compare.Result) *htmlSection {
	if s.Error != "" {
		return &htmlSection{Category: s.Category, Error: s.Error}
	}
	if result == nil || !result.HasDrift() {
		return nil
	}

	cfg, _ := compare.CategoryByName(s.Category)
	section := &htmlSection{Category: s.Category}

	for _, d := range result.Differences {
		diff := htmlDiff{Identity: identityLabel(d.Identity)}
		columns := make([]string, 0, len(d.Changed))
		for col := range d.Changed {
			columns = append(columns, col)
		}
		sort.Strings(columns)
		for _, col := range columns {
			pair := d.Changed[col]
			diff.Changes = append(diff.Changes, htmlChange{Column: col, Source: pair.Source, Target: pair.Target})
		}
		section.Differences = append(section.Differences, diff)
	}
	for _, rec := range result.SourceOnly {
		section.SourceOnly = append(section.SourceOnly, recordLabel(cfg, rec))
	}
	for _, rec := range result.TargetOnly {
		section.TargetOnly = append(section.TargetOnly, recordLabel(cfg, rec))
	}
	return section
}

func identityLabel(identity []string) string {
	label := ""
	for i, part := range identity {
		if i > 0 {
			label += "."
		}
		label += part
	}
	return label
}

func recordLabel(cfg compare.CategoryConfig, rec compare.Record) string {
	label := ""
	for i, col := range cfg.KeyColumns {
		if i > 0 {
			label += "."
		}
		label += utils.Canonical(rec[col])
	}
	return label
}
