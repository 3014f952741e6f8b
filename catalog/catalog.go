package catalog

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/tooldex/tooldex/catalog/models"
	"github.com/tooldex/tooldex/gitlog/contracts"
)

// Builder assembles the full-history map and the tool catalog from tracked
// pages. It is the single producer every renderer consumes from.
type Builder struct {
	siteDir  string
	history  contracts.IHistoryProvider
	excluded map[string]bool
}

// NewBuilder creates a Builder over siteDir. excludedFiles names generated
// pages that must never become catalog entries.
func NewBuilder(siteDir string, history contracts.IHistoryProvider, excludedFiles []string) *Builder {
	excluded := make(map[string]bool, len(excludedFiles))
	for _, f := range excludedFiles {
		excluded[f] = true
	}
	return &Builder{siteDir: siteDir, history: history, excluded: excluded}
}

// DiscoverPages returns the candidate page filenames under the site
// directory, sorted, with the excluded generated pages filtered out.
func (b *Builder) DiscoverPages() ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(b.siteDir, "*.html"))
	if err != nil {
		return nil, err
	}
	var pages []string
	for _, m := range matches {
		name := filepath.Base(m)
		if b.excluded[name] {
			continue
		}
		pages = append(pages, name)
	}
	sort.Strings(pages)
	return pages, nil
}

// Build harvests every candidate page and produces the history map plus the
// catalog records sorted newest-created first. Pages with no recorded
// commits are dropped from both outputs.
func (b *Builder) Build(pages []string) (map[string]models.PageHistory, []models.Tool) {
	histories := make(map[string]models.PageHistory)
	// Non-nil so an empty catalog still persists as a JSON array.
	tools := []models.Tool{}

	for _, name := range pages {
		if b.excluded[name] {
			continue
		}
		slug := strings.TrimSuffix(name, filepath.Ext(name))
		commits := b.history.FileHistory(name)
		if len(commits) == 0 {
			continue
		}

		histories[slug] = models.PageHistory{
			File:    name,
			Commits: commits,
			AllURLs: unionURLs(commits),
		}

		tools = append(tools, models.Tool{
			Slug:        slug,
			Title:       ExtractTitle(filepath.Join(b.siteDir, name), slug),
			Description: ExtractDescription(filepath.Join(b.siteDir, slug+".docs.md")),
			URL:         name,
			Created:     commits[len(commits)-1].Date,
			Updated:     commits[0].Date,
		})
	}

	sort.SliceStable(tools, func(i, j int) bool {
		return tools[i].Created > tools[j].Created
	})
	return histories, tools
}

// unionURLs collects the deduplicated URLs across all commits, sorted so
// repeated runs emit identical output.
func unionURLs(commits []models.Commit) []string {
	seen := make(map[string]bool)
	urls := []string{}
	for _, c := range commits {
		for _, u := range c.URLs {
			if seen[u] {
				continue
			}
			seen[u] = true
			urls = append(urls, u)
		}
	}
	sort.Strings(urls)
	return urls
}
