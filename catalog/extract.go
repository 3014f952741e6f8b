package catalog

import (
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractTitle returns the trimmed text of the first <title> element in the
// HTML file at path. Unreadable or title-less documents fall back to
// fallback.
func ExtractTitle(path, fallback string) string {
	f, err := os.Open(path)
	if err != nil {
		return fallback
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return fallback
	}
	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		return fallback
	}
	return title
}

// ExtractDescription returns the first paragraph of the companion document
// at path, or "" when the document is absent, unreadable, or has no
// paragraph.
func ExtractDescription(path string) string {
	content, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return FirstParagraph(string(content))
}

// FirstParagraph extracts the first prose paragraph from markdown text.
// Grammar: heading lines ("#"-prefixed) are skipped wherever they appear;
// consecutive non-blank lines accumulate into the paragraph; the first blank
// line after any accumulated content ends it. Accumulated lines are trimmed
// and joined with single spaces.
func FirstParagraph(text string) string {
	var paragraph []string
	inParagraph := false
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		stripped := strings.TrimSpace(line)
		if strings.HasPrefix(stripped, "#") {
			continue
		}
		if stripped != "" {
			inParagraph = true
			paragraph = append(paragraph, stripped)
		} else if inParagraph {
			break
		}
	}
	return strings.Join(paragraph, " ")
}
