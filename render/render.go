// Package render turns the gathered catalog into the generated site pages:
// the by-month archive, the colophon, the homepage, and the dates lookup.
// Every renderer is a pure function of its inputs so repeated runs produce
// byte-identical output.
package render

import (
	"html/template"
	"time"
)

// DescriptionLimit is the longest description shown in list views before
// truncation.
const DescriptionLimit = 150

// baseCSS is the shared stylesheet of the generated pages, including the
// dark color scheme.
const baseCSS = `        :root {
            --bg: #ffffff;
            --fg: #1a1a1a;
            --link: #0066cc;
            --link-visited: #551a8b;
            --border: #e0e0e0;
            --code-bg: #f5f5f5;
        }
        @media (prefers-color-scheme: dark) {
            :root {
                --bg: #1a1a1a;
                --fg: #e0e0e0;
                --link: #6db3f2;
                --link-visited: #b794f4;
                --border: #333;
                --code-bg: #2d2d2d;
            }
        }
        body {
            font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
            line-height: 1.6;
            margin: 0 auto;
            padding: 2rem;
            background: var(--bg);
            color: var(--fg);
        }
        a { color: var(--link); }
        a:visited { color: var(--link-visited); }`

// FormatDate reduces an ISO-8601 timestamp to its YYYY-MM-DD prefix.
func FormatDate(iso string) string {
	if len(iso) > 10 {
		return iso[:10]
	}
	return iso
}

// FormatMonth converts a YYYY-MM key to a readable month name, passing
// unparseable keys through unchanged.
func FormatMonth(yearMonth string) string {
	t, err := time.Parse("2006-01", yearMonth)
	if err != nil {
		return yearMonth
	}
	return t.Format("January 2006")
}

// Truncate shortens s to at most DescriptionLimit characters, appending an
// ellipsis marker when anything was cut. The limit counts runes, not bytes,
// so multibyte text is never split mid-character.
func Truncate(s string) string {
	runes := []rune(s)
	if len(runes) > DescriptionLimit {
		return string(runes[:DescriptionLimit]) + "..."
	}
	return s
}

// pageFuncs are the helpers available inside the page templates.
var pageFuncs = template.FuncMap{
	"day":      FormatDate,
	"truncate": Truncate,
}
