package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestExtractTitle(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "widget.html",
		`<!DOCTYPE html><html><head><title>  Widget Maker </title></head><body></body></html>`)

	assert.Equal(t, "Widget Maker", ExtractTitle(path, "widget"))
}

func TestExtractTitle_MissingFileFallsBack(t *testing.T) {
	assert.Equal(t, "widget", ExtractTitle(filepath.Join(t.TempDir(), "nope.html"), "widget"))
}

func TestExtractTitle_NoTitleElementFallsBack(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "widget.html", `<html><body><h1>hello</h1></body></html>`)

	assert.Equal(t, "widget", ExtractTitle(path, "widget"))
}

func TestExtractTitle_FirstTitleWins(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "widget.html",
		`<html><head><title>First</title><title>Second</title></head></html>`)

	assert.Equal(t, "First", ExtractTitle(path, "widget"))
}

func TestFirstParagraph_SkipsHeaders(t *testing.T) {
	text := "# Widget\n\nMakes widgets quickly.\nWorks offline.\n\nSecond paragraph.\n"
	assert.Equal(t, "Makes widgets quickly. Works offline.", FirstParagraph(text))
}

func TestFirstParagraph_MultipleHeaderLines(t *testing.T) {
	text := "# Title\n## Subtitle\n\nThe actual description.\n"
	assert.Equal(t, "The actual description.", FirstParagraph(text))
}

func TestFirstParagraph_LeadingBlankLines(t *testing.T) {
	text := "\n\n\nStarts late.\n\nrest\n"
	assert.Equal(t, "Starts late.", FirstParagraph(text))
}

func TestFirstParagraph_HeaderBetweenLinesIsSkippedNotTerminating(t *testing.T) {
	// A heading inside a run of lines is dropped without ending the paragraph.
	text := "one\n# interlude\ntwo\n\nthree\n"
	assert.Equal(t, "one two", FirstParagraph(text))
}

func TestFirstParagraph_NoParagraph(t *testing.T) {
	assert.Equal(t, "", FirstParagraph(""))
	assert.Equal(t, "", FirstParagraph("# Only\n## Headers\n"))
}

func TestExtractDescription_MissingCompanion(t *testing.T) {
	assert.Equal(t, "", ExtractDescription(filepath.Join(t.TempDir(), "widget.docs.md")))
}

func TestExtractDescription_ReadsFirstParagraph(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "widget.docs.md", "# Widget\n\nA small widget tool.\n\nMore notes.\n")

	assert.Equal(t, "A small widget tool.", ExtractDescription(path))
}
