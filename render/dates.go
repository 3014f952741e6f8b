package render

import (
	"github.com/tooldex/tooldex/catalog/models"
)

// ProjectDates maps each page's output file to the date of its newest
// commit. Pages without commits are left out. The runtime footer script
// consumes this lookup.
func ProjectDates(histories map[string]models.PageHistory) map[string]string {
	dates := make(map[string]string, len(histories))
	for _, h := range histories {
		if len(h.Commits) == 0 {
			continue
		}
		dates[h.File] = FormatDate(h.Commits[0].Date)
	}
	return dates
}
