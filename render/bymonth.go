package render

import (
	"bytes"
	"html/template"
	"sort"

	"github.com/tooldex/tooldex/catalog/models"
)

// MonthSection is one month bucket of the archive, keyed by YYYY-MM.
type MonthSection struct {
	Key   string
	Label string
	Tools []models.Tool
}

const byMonthPage = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Tools by Month</title>
    <style>
` + baseCSS + `
        body { max-width: 800px; }
        h1 { border-bottom: 2px solid var(--border); padding-bottom: 0.5em; }
        h2 {
            margin-top: 2em;
            padding-bottom: 0.3em;
            border-bottom: 1px solid var(--border);
        }
        .month-section { margin-bottom: 2em; }
        .tool-item {
            margin: 0.75em 0;
            padding: 0.5em 0;
        }
        .tool-item a { font-weight: 500; }
        .tool-description {
            color: #666;
            font-size: 0.9em;
            margin-left: 1em;
        }
        .tool-links {
            font-size: 0.85em;
            margin-left: 1em;
        }
        .nav { margin-bottom: 2em; }
        .nav a { margin-right: 1em; }
        .toc {
            background: var(--code-bg);
            padding: 1em;
            border-radius: 8px;
            margin-bottom: 2em;
        }
        .toc ul {
            margin: 0;
            padding-left: 1.5em;
            columns: 2;
        }
    </style>
</head>
<body>
    <nav class="nav">
        <a href="index.html">Home</a>
        <a href="colophon.html">Colophon</a>
    </nav>
    <h1>Tools by Month</h1>
    <div class="toc">
        <strong>Jump to:</strong>
        <ul>
{{- range .Sections}}
            <li><a href="#month-{{.Key}}">{{.Label}}</a> ({{len .Tools}})</li>
{{- end}}
        </ul>
    </div>
{{- range .Sections}}
    <div class="month-section">
        <h2 id="month-{{.Key}}">{{.Label}}</h2>
{{- range .Tools}}
        <div class="tool-item">
            <a href="{{.URL}}">{{.Title}}</a>
{{- if .Description}}
            <span class="tool-description">{{truncate .Description}}</span>
{{- end}}
            <span class="tool-links"><a href="colophon.html#{{.Slug}}">history</a></span>
        </div>
{{- end}}
    </div>
{{- end}}
</body>
</html>
`

var byMonthTmpl = template.Must(template.New("by-month").Funcs(pageFuncs).Parse(byMonthPage))

// BucketByMonth partitions records by the year-month of their creation date.
// Buckets are ordered newest month first; tools within a bucket are ordered
// oldest first so each month reads chronologically. Records with an empty
// creation date are left out.
func BucketByMonth(tools []models.Tool) []MonthSection {
	buckets := make(map[string][]models.Tool)
	for _, t := range tools {
		if t.Created == "" {
			continue
		}
		key := t.Created
		if len(key) > 7 {
			key = key[:7]
		}
		buckets[key] = append(buckets[key], t)
	}

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	sections := make([]MonthSection, 0, len(keys))
	for _, key := range keys {
		monthTools := buckets[key]
		sort.SliceStable(monthTools, func(i, j int) bool {
			return monthTools[i].Created < monthTools[j].Created
		})
		sections = append(sections, MonthSection{
			Key:   key,
			Label: FormatMonth(key),
			Tools: monthTools,
		})
	}
	return sections
}

// RenderByMonth builds the by-month archive page. It also returns the number
// of month sections for operator reporting.
func RenderByMonth(tools []models.Tool) ([]byte, int, error) {
	sections := BucketByMonth(tools)
	var buf bytes.Buffer
	if err := byMonthTmpl.Execute(&buf, struct{ Sections []MonthSection }{sections}); err != nil {
		return nil, 0, err
	}
	return buf.Bytes(), len(sections), nil
}
