package models

// Commit represents one recorded revision of a tracked page.
type Commit struct {
	Hash    string   `json:"hash"`
	Date    string   `json:"date"` // ISO-8601 author date, as emitted by git
	Message string   `json:"message"`
	URLs    []string `json:"urls"`
}

// ShortHash returns the abbreviated commit identifier used in rendered pages.
func (c Commit) ShortHash() string {
	if len(c.Hash) <= 8 {
		return c.Hash
	}
	return c.Hash[:8]
}

// PageHistory holds the full gathered change history for one page.
// Commits are ordered newest first, matching git log output.
type PageHistory struct {
	File    string   `json:"file"`
	Commits []Commit `json:"commits"`
	AllURLs []string `json:"all_urls"`
}

// Tool is the catalog record for one page, derived from its history and
// embedded metadata.
type Tool struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Created     string `json:"created"`
	Updated     string `json:"updated"`
}
