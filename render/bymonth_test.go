package render

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tooldex/tooldex/catalog/models"
)

func tool(slug, created, updated string) models.Tool {
	return models.Tool{
		Slug:    slug,
		Title:   strings.ToUpper(slug[:1]) + slug[1:],
		URL:     slug + ".html",
		Created: created,
		Updated: updated,
	}
}

func TestBucketByMonth_PartitionsByCreationMonth(t *testing.T) {
	tools := []models.Tool{
		tool("march", "2024-03-05T00:00:00+00:00", "2024-03-05T00:00:00+00:00"),
		tool("jan-late", "2024-01-20T00:00:00+00:00", "2024-02-01T00:00:00+00:00"),
		tool("jan-early", "2024-01-03T00:00:00+00:00", "2024-01-03T00:00:00+00:00"),
	}

	sections := BucketByMonth(tools)
	require.Len(t, sections, 2)

	// Buckets strictly decreasing by key.
	assert.Equal(t, "2024-03", sections[0].Key)
	assert.Equal(t, "2024-01", sections[1].Key)

	// Within a bucket, oldest first.
	require.Len(t, sections[1].Tools, 2)
	assert.Equal(t, "jan-early", sections[1].Tools[0].Slug)
	assert.Equal(t, "jan-late", sections[1].Tools[1].Slug)

	// Every tool lands in exactly one bucket.
	seen := map[string]int{}
	for _, s := range sections {
		for _, tl := range s.Tools {
			seen[tl.Slug]++
			assert.Equal(t, s.Key, tl.Created[:7])
		}
	}
	assert.Len(t, seen, 3)
	for slug, n := range seen {
		assert.Equal(t, 1, n, "tool %s bucketed %d times", slug, n)
	}
}

func TestBucketByMonth_DropsEmptyCreated(t *testing.T) {
	sections := BucketByMonth([]models.Tool{tool("ghost", "", "")})
	assert.Empty(t, sections)
}

func TestFormatMonth(t *testing.T) {
	assert.Equal(t, "March 2024", FormatMonth("2024-03"))
	assert.Equal(t, "not-a-month", FormatMonth("not-a-month"))
}

func TestTruncate(t *testing.T) {
	short := strings.Repeat("a", DescriptionLimit)
	assert.Equal(t, short, Truncate(short))

	long := strings.Repeat("b", DescriptionLimit+25)
	got := Truncate(long)
	assert.Equal(t, long[:DescriptionLimit]+"...", got)
	assert.Len(t, got, DescriptionLimit+3)
}

func TestTruncate_CountsRunesNotBytes(t *testing.T) {
	// 100 characters but 200 bytes; short enough to pass through verbatim.
	short := strings.Repeat("é", 100)
	assert.Equal(t, short, Truncate(short))

	long := strings.Repeat("é", DescriptionLimit+10)
	got := Truncate(long)
	assert.Equal(t, strings.Repeat("é", DescriptionLimit)+"...", got)
	assert.True(t, utf8.ValidString(got))
}

func TestRenderByMonth_PageContents(t *testing.T) {
	widget := tool("widget", "2024-01-10T09:00:00+00:00", "2024-03-02T10:00:00+00:00")
	widget.Description = "Makes widgets."

	page, months, err := RenderByMonth([]models.Tool{widget})
	require.NoError(t, err)
	assert.Equal(t, 1, months)

	html := string(page)
	// Buckets by creation month, not update month.
	assert.Contains(t, html, `id="month-2024-01"`)
	assert.NotContains(t, html, `id="month-2024-03"`)
	assert.Contains(t, html, "January 2024")
	assert.Contains(t, html, `<a href="widget.html">Widget</a>`)
	assert.Contains(t, html, `Makes widgets.`)
	assert.Contains(t, html, `<a href="colophon.html#widget">history</a>`)
}

func TestRenderByMonth_TruncatesLongDescriptions(t *testing.T) {
	long := strings.Repeat("x", DescriptionLimit+40)
	tl := tool("wordy", "2024-01-01T00:00:00+00:00", "2024-01-01T00:00:00+00:00")
	tl.Description = long

	page, _, err := RenderByMonth([]models.Tool{tl})
	require.NoError(t, err)

	assert.Contains(t, string(page), long[:DescriptionLimit]+"...")
	assert.NotContains(t, string(page), long)
}

func TestRenderByMonth_Idempotent(t *testing.T) {
	tools := []models.Tool{
		tool("a", "2024-01-01T00:00:00+00:00", "2024-01-02T00:00:00+00:00"),
		tool("b", "2024-02-01T00:00:00+00:00", "2024-02-02T00:00:00+00:00"),
	}

	first, _, err := RenderByMonth(tools)
	require.NoError(t, err)
	second, _, err := RenderByMonth(tools)
	require.NoError(t, err)

	assert.True(t, bytes.Equal(first, second))
}
