package render

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tooldex/tooldex/catalog/models"
)

// passthroughConverter returns the source unchanged, standing in for the
// external markup converter.
type passthroughConverter struct{}

func (passthroughConverter) Convert(src []byte) ([]byte, error) {
	return src, nil
}

func digestFixture(n int) []models.Tool {
	var tools []models.Tool
	for i := 0; i < n; i++ {
		tools = append(tools, models.Tool{
			Slug:    fmt.Sprintf("tool-%02d", i),
			Title:   fmt.Sprintf("Tool %02d", i),
			URL:     fmt.Sprintf("tool-%02d.html", i),
			Created: fmt.Sprintf("2024-01-%02dT00:00:00+00:00", i+1),
			Updated: fmt.Sprintf("2024-02-%02dT00:00:00+00:00", i+1),
		})
	}
	return tools
}

func TestBuildDigest_AddedIsTopNByCreated(t *testing.T) {
	d := BuildDigest(digestFixture(8), 5)

	require.Len(t, d.Added, 5)
	// Newest created first: tool-07 down to tool-03.
	assert.Equal(t, "tool-07", d.Added[0].Slug)
	assert.Equal(t, "tool-03", d.Added[4].Slug)
}

func TestBuildDigest_UpdatedExcludesRecentlyAdded(t *testing.T) {
	d := BuildDigest(digestFixture(8), 5)

	require.Len(t, d.Updated, 3)
	added := map[string]bool{}
	for _, tl := range d.Added {
		added[tl.Slug] = true
	}
	for _, tl := range d.Updated {
		assert.False(t, added[tl.Slug], "tool %s appears in both lists", tl.Slug)
	}
	// Newest updated among the remainder first.
	assert.Equal(t, "tool-02", d.Updated[0].Slug)
}

func TestBuildDigest_PoolSmallerThanLimit(t *testing.T) {
	d := BuildDigest(digestFixture(3), 5)
	assert.Len(t, d.Added, 3)
	assert.Empty(t, d.Updated)
}

func TestExtractHeading(t *testing.T) {
	assert.Equal(t, "My Tools", ExtractHeading([]byte("intro\n\n# My Tools\n\nbody\n")))
	assert.Equal(t, DefaultIndexTitle, ExtractHeading([]byte("no heading here\n")))
}

func TestInjectDigest_BetweenMarkers(t *testing.T) {
	body := "<h1>Tools</h1>\n<!-- recently starts -->\nold\n<!-- recently stops -->\n<p>rest</p>"
	out := InjectDigest(body, "<div>digest</div>")

	assert.Contains(t, out, "<!-- recently starts -->\n<div>digest</div>\n<!-- recently stops -->")
	assert.NotContains(t, out, "old")
	assert.Contains(t, out, "<p>rest</p>")
}

func TestInjectDigest_AfterFirstHeadingWhenMarkersAbsent(t *testing.T) {
	body := "<h1>Tools</h1>\n<p>rest</p>"
	out := InjectDigest(body, "<div>digest</div>")

	assert.True(t, strings.HasPrefix(out, "<h1>Tools</h1>\n<div>digest</div>"))
}

func TestInjectDigest_OmittedWithoutAnchor(t *testing.T) {
	body := "<p>no heading</p>"
	assert.Equal(t, body, InjectDigest(body, "<div>digest</div>"))
}

func TestRenderIndex_TitleAndDigest(t *testing.T) {
	source := []byte("# My Tools\n\n<!-- recently starts -->\n<!-- recently stops -->\n")
	tools := digestFixture(2)

	page, err := RenderIndex(source, tools, passthroughConverter{}, 5)
	require.NoError(t, err)

	html := string(page)
	assert.Contains(t, html, "<title>My Tools</title>")
	assert.Contains(t, html, "Recently Added")
	assert.Contains(t, html, `<a href="tool-01.html">Tool 01</a>`)
	assert.Contains(t, html, "(2024-01-02)")
	assert.Contains(t, html, `src="homepage-search.js"`)
}

func TestRenderIndex_NoToolsNoDigest(t *testing.T) {
	source := []byte("# My Tools\n\nHello.\n")

	page, err := RenderIndex(source, nil, passthroughConverter{}, 5)
	require.NoError(t, err)
	assert.NotContains(t, string(page), "Recently Added")
}

func TestRenderIndex_MarkdownConverterKeepsMarkers(t *testing.T) {
	source := []byte("# My Tools\n\n<!-- recently starts -->\n<!-- recently stops -->\n\nSome *prose*.\n")

	conv := NewMarkdownConverter()
	converted, err := conv.Convert(source)
	require.NoError(t, err)
	assert.Contains(t, string(converted), "<!-- recently starts -->")
	assert.Contains(t, string(converted), "<!-- recently stops -->")
	assert.Contains(t, string(converted), "<em>prose</em>")

	page, err := RenderIndex(source, digestFixture(1), conv, 5)
	require.NoError(t, err)
	assert.Contains(t, string(page), "Recently Added")
}

func TestRenderIndex_DigestAfterHeadingWhenMarkersMissing(t *testing.T) {
	source := []byte("# My Tools\n\nHello.\n")

	page, err := RenderIndex(source, digestFixture(1), NewMarkdownConverter(), 5)
	require.NoError(t, err)

	html := string(page)
	h1End := strings.Index(html, "</h1>")
	require.NotEqual(t, -1, h1End)
	digestAt := strings.Index(html, `<div class="recent-section">`)
	require.NotEqual(t, -1, digestAt)
	assert.Greater(t, digestAt, h1End)
	// Digest sits directly after the heading, before the prose.
	assert.Less(t, digestAt, strings.Index(html, "Hello."))
}

func TestRenderIndex_Idempotent(t *testing.T) {
	source := []byte("# My Tools\n\n<!-- recently starts -->\n<!-- recently stops -->\n")
	tools := digestFixture(6)

	first, err := RenderIndex(source, tools, NewMarkdownConverter(), 5)
	require.NoError(t, err)
	second, err := RenderIndex(source, tools, NewMarkdownConverter(), 5)
	require.NoError(t, err)

	assert.True(t, bytes.Equal(first, second))
}
