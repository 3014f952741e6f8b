package render

import (
	"bytes"
	"fmt"
	"html/template"
	"sort"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	ghtml "github.com/yuin/goldmark/renderer/html"

	highlighting "github.com/yuin/goldmark-highlighting/v2"

	"github.com/tooldex/tooldex/catalog/models"
)

// DefaultRecentLimit is how many tools each digest list shows.
const DefaultRecentLimit = 5

// DefaultIndexTitle is used when the source document has no level-1 heading.
const DefaultIndexTitle = "Tools"

// Digest injection markers looked up in the converted homepage body.
const (
	recentStartMarker = "<!-- recently starts -->"
	recentStopMarker  = "<!-- recently stops -->"
)

// Converter renders a markup document to HTML. The homepage body conversion
// is delegated to it.
type Converter interface {
	Convert(src []byte) ([]byte, error)
}

// MarkdownConverter converts GitHub-flavored markdown with highlighted code
// fences. Raw HTML passes through so the digest markers survive conversion.
type MarkdownConverter struct {
	md goldmark.Markdown
}

// NewMarkdownConverter creates the homepage markdown converter.
func NewMarkdownConverter() *MarkdownConverter {
	return &MarkdownConverter{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				highlighting.NewHighlighting(
					highlighting.WithStyle("github"),
					highlighting.WithFormatOptions(chromahtml.TabWidth(4)),
				),
			),
			goldmark.WithRendererOptions(ghtml.WithUnsafe()),
		),
	}
}

func (c *MarkdownConverter) Convert(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.md.Convert(src, &buf); err != nil {
		return nil, fmt.Errorf("markdown conversion failed: %w", err)
	}
	return buf.Bytes(), nil
}

const indexPage = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <style>
` + baseCSS + `
        body { max-width: 800px; }
        h1, h2, h3 { margin-top: 1.5em; }
        code {
            background: var(--code-bg);
            padding: 0.2em 0.4em;
            border-radius: 3px;
            font-size: 0.9em;
        }
        pre {
            background: var(--code-bg);
            padding: 1em;
            border-radius: 5px;
            overflow-x: auto;
        }
        pre code {
            background: none;
            padding: 0;
        }
        ul { padding-left: 1.5em; }
        .recent-section {
            background: var(--code-bg);
            padding: 1em 1.5em;
            border-radius: 8px;
            margin: 1.5em 0;
        }
        .recent-section h2 { margin-top: 0; }
        .recent-section ul { margin-bottom: 0; }
        .recent-date {
            color: #666;
            font-size: 0.85em;
        }
    </style>
</head>
<body>
{{.Body}}
<script type="module" src="homepage-search.js" data-tool-search></script>
</body>
</html>
`

const digestSection = `<div class="recent-section">
<h2>Recently Added</h2>
<ul>
{{- range .Added}}
<li><a href="{{.URL}}">{{.Title}}</a>{{if .Created}} <span class="recent-date">({{day .Created}})</span>{{end}}</li>
{{- end}}
</ul>
{{- if .Updated}}
<h2>Recently Updated</h2>
<ul>
{{- range .Updated}}
<li><a href="{{.URL}}">{{.Title}}</a>{{if .Updated}} <span class="recent-date">({{day .Updated}})</span>{{end}}</li>
{{- end}}
</ul>
{{- end}}
</div>`

var (
	indexTmpl  = template.Must(template.New("index").Parse(indexPage))
	digestTmpl = template.Must(template.New("digest").Funcs(pageFuncs).Parse(digestSection))
)

// Digest holds the recently added and recently updated lists shown on the
// homepage.
type Digest struct {
	Added   []models.Tool
	Updated []models.Tool
}

func sortByDesc(tools []models.Tool, key func(models.Tool) string) {
	sort.SliceStable(tools, func(i, j int) bool {
		return key(tools[i]) > key(tools[j])
	})
}

// BuildDigest computes the homepage digest: the limit newest-created tools,
// then up to limit recently-updated tools that are not already in the added
// list, until limit are collected or the pool runs out.
func BuildDigest(tools []models.Tool, limit int) Digest {
	byCreated := make([]models.Tool, len(tools))
	copy(byCreated, tools)
	sortByDesc(byCreated, func(t models.Tool) string { return t.Created })
	if len(byCreated) > limit {
		byCreated = byCreated[:limit]
	}

	addedSlugs := make(map[string]bool, len(byCreated))
	for _, t := range byCreated {
		addedSlugs[t.Slug] = true
	}

	byUpdated := make([]models.Tool, len(tools))
	copy(byUpdated, tools)
	sortByDesc(byUpdated, func(t models.Tool) string { return t.Updated })

	var updated []models.Tool
	for _, t := range byUpdated {
		if addedSlugs[t.Slug] {
			continue
		}
		updated = append(updated, t)
		if len(updated) >= limit {
			break
		}
	}
	return Digest{Added: byCreated, Updated: updated}
}

// RenderDigest renders the digest block, or "" when there are no tools.
func RenderDigest(tools []models.Tool, limit int) (string, error) {
	if len(tools) == 0 {
		return "", nil
	}
	var buf bytes.Buffer
	if err := digestTmpl.Execute(&buf, BuildDigest(tools, limit)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ExtractHeading returns the text of the first level-1 markdown heading in
// src, or DefaultIndexTitle when none exists.
func ExtractHeading(src []byte) string {
	for _, line := range strings.Split(string(src), "\n") {
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(line[2:])
		}
	}
	return DefaultIndexTitle
}

// InjectDigest places the digest HTML into body: between the two literal
// marker comments when both are present, otherwise directly after the first
// closing h1 tag. When neither anchor exists the digest is dropped; partial
// placement would be worse than none.
func InjectDigest(body, digest string) string {
	start := strings.Index(body, recentStartMarker)
	stop := strings.Index(body, recentStopMarker)
	if start != -1 && stop != -1 {
		start += len(recentStartMarker)
		return body[:start] + "\n" + digest + "\n" + body[stop:]
	}
	if digest == "" {
		return body
	}
	if at := strings.Index(body, "</h1>"); at != -1 {
		at += len("</h1>")
		return body[:at] + "\n" + digest + body[at:]
	}
	return body
}

// RenderIndex builds the homepage: the source document converted by conv,
// with the recent-tools digest injected and the page title taken from the
// document's first level-1 heading.
func RenderIndex(source []byte, tools []models.Tool, conv Converter, recentLimit int) ([]byte, error) {
	converted, err := conv.Convert(source)
	if err != nil {
		return nil, err
	}

	digest, err := RenderDigest(tools, recentLimit)
	if err != nil {
		return nil, err
	}
	body := InjectDigest(string(converted), digest)

	var buf bytes.Buffer
	err = indexTmpl.Execute(&buf, struct {
		Title string
		Body  template.HTML
	}{
		Title: ExtractHeading(source),
		Body:  template.HTML(body),
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
