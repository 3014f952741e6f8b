package render

import (
	"bytes"
	"html/template"
	"sort"

	"github.com/tooldex/tooldex/catalog/models"
)

// ColophonEntry is one tool section of the colophon page.
type ColophonEntry struct {
	Slug        string
	Title       string
	URL         string
	Description string
	Commits     []models.Commit
}

const colophonPage = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Colophon - Development History</title>
    <style>
` + baseCSS + `
        body { max-width: 900px; }
        h1 { border-bottom: 2px solid var(--border); padding-bottom: 0.5em; }
        .tool {
            margin: 2em 0;
            padding: 1em;
            border: 1px solid var(--border);
            border-radius: 8px;
        }
        .tool h2 { margin-top: 0; }
        .tool-meta {
            color: #666;
            font-size: 0.9em;
            margin-bottom: 1em;
        }
        .description {
            margin: 1em 0;
            padding: 0.5em 1em;
            background: var(--code-bg);
            border-radius: 4px;
        }
        details { margin-top: 1em; }
        summary {
            cursor: pointer;
            font-weight: 500;
        }
        .commit {
            margin: 0.5em 0;
            padding: 0.5em;
            border-left: 3px solid var(--border);
            font-size: 0.9em;
        }
        .commit-date {
            color: #666;
            font-family: monospace;
        }
        .commit-hash {
            font-family: monospace;
            font-size: 0.85em;
        }
        .commit-urls { margin-top: 0.25em; }
        .commit-urls a { font-size: 0.85em; }
        .nav { margin-bottom: 2em; }
        .nav a { margin-right: 1em; }
    </style>
</head>
<body>
    <nav class="nav">
        <a href="./">Home</a>
        <a href="by-month">By Month</a>
    </nav>
    <h1>Colophon</h1>
    <p>Development history of all tools, sorted by most recent activity.</p>
{{- range .Entries}}
    <div class="tool" id="{{.Slug}}">
        <h2><a href="{{.URL}}">{{.Title}}</a></h2>
        <div class="tool-meta">Created: {{day .Created}} | Updated: {{day .Updated}} | {{len .Commits}} commits</div>
{{- if .Description}}
        <div class="description">{{.Description}}</div>
{{- end}}
        <details>
            <summary>Commit history ({{len .Commits}})</summary>
{{- range .Commits}}
            <div class="commit">
                <span class="commit-date">{{day .Date}}</span> <span class="commit-hash">{{.ShortHash}}</span> {{.Message}}
{{- if .URLs}}
                <div class="commit-urls">{{range .URLs}}<a href="{{.}}" target="_blank">Transcript</a> {{end}}</div>
{{- end}}
            </div>
{{- end}}
        </details>
    </div>
{{- end}}
</body>
</html>
`

var colophonTmpl = template.Must(template.New("colophon").Funcs(pageFuncs).Parse(colophonPage))

// Created is the date of the oldest recorded commit.
func (e ColophonEntry) Created() string {
	return e.Commits[len(e.Commits)-1].Date
}

// Updated is the date of the newest recorded commit.
func (e ColophonEntry) Updated() string {
	return e.Commits[0].Date
}

// ColophonEntries orders the gathered histories by most recent change,
// newest first, joining in titles and descriptions from the catalog records.
// A history without a matching record falls back to its slug as the title.
func ColophonEntries(histories map[string]models.PageHistory, tools []models.Tool) []ColophonEntry {
	toolsBySlug := make(map[string]models.Tool, len(tools))
	for _, t := range tools {
		toolsBySlug[t.Slug] = t
	}

	slugs := make([]string, 0, len(histories))
	for slug, h := range histories {
		if len(h.Commits) == 0 {
			continue
		}
		slugs = append(slugs, slug)
	}
	sort.SliceStable(slugs, func(i, j int) bool {
		a := histories[slugs[i]].Commits[0].Date
		b := histories[slugs[j]].Commits[0].Date
		if a != b {
			return a > b
		}
		return slugs[i] < slugs[j]
	})

	entries := make([]ColophonEntry, 0, len(slugs))
	for _, slug := range slugs {
		h := histories[slug]
		entry := ColophonEntry{
			Slug:    slug,
			Title:   slug,
			URL:     h.File,
			Commits: h.Commits,
		}
		if t, ok := toolsBySlug[slug]; ok {
			entry.Title = t.Title
			entry.Description = t.Description
		}
		entries = append(entries, entry)
	}
	return entries
}

// RenderColophon builds the colophon page. It also returns the number of
// tool sections for operator reporting.
func RenderColophon(histories map[string]models.PageHistory, tools []models.Tool) ([]byte, int, error) {
	entries := ColophonEntries(histories, tools)
	var buf bytes.Buffer
	if err := colophonTmpl.Execute(&buf, struct{ Entries []ColophonEntry }{entries}); err != nil {
		return nil, 0, err
	}
	return buf.Bytes(), len(entries), nil
}
