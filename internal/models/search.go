package models

// SearchableItem is one derived corpus entry: a whole document, one of its
// flattened sections, a blog post, or the synthetic blog listing entry.
// IDs are `<slug>-main`, `<slug>-<sectionID>`, or `blog-<postSlug>` and are
// unique within one corpus build.
type SearchableItem struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	URL     string `json:"url"`
	Content string `json:"content"`
	Section string `json:"section,omitempty"`
	Preview string `json:"preview"`
}

// SearchResult is a SearchableItem with its query score and highlighting.
// MatchedTerms keeps insertion order: title pass, then content, then section.
type SearchResult struct {
	SearchableItem
	Score              int      `json:"score"`
	MatchedTerms       []string `json:"matchedTerms"`
	HighlightedPreview string   `json:"highlightedPreview"`
}
