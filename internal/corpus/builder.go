// Package corpus assembles the searchable item list for the whole site and
// caches it for the process lifetime.
package corpus

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/aneesh6214/folio/internal/config"
	"github.com/aneesh6214/folio/internal/content"
	"github.com/aneesh6214/folio/internal/extract"
	"github.com/aneesh6214/folio/internal/models"
)

// The blog listing page gets one hand-authored corpus entry; it is not
// derived from any document.
const (
	blogListingID      = "blog-main"
	blogListingTitle   = "Blog"
	blogListingURL     = "/blog"
	blogListingContent = "Blog technical articles project insights software engineering artificial intelligence research"
	blogListingPreview = "Technical articles, project insights, and thoughts on software engineering and AI."
)

// Builder lazily builds the corpus once and serves the cached list to all
// subsequent callers. Reset clears the cache (tests, content watcher).
type Builder struct {
	provider   content.Provider
	contentCfg *config.ContentConfig
	searchCfg  *config.SearchConfig

	mu    sync.Mutex
	items []models.SearchableItem
}

// NewBuilder creates a corpus builder over the given provider.
func NewBuilder(provider content.Provider, contentCfg *config.ContentConfig, searchCfg *config.SearchConfig) *Builder {
	return &Builder{
		provider:   provider,
		contentCfg: contentCfg,
		searchCfg:  searchCfg,
	}
}

// Build returns the full corpus, building it on first call and serving the
// cached list afterwards. A load failure for any configured slug fails the
// whole build; no partially built corpus is ever cached.
func (b *Builder) Build(ctx context.Context) ([]models.SearchableItem, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.items != nil {
		return b.items, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	items, err := b.build()
	if err != nil {
		return nil, err
	}
	b.items = items
	return b.items, nil
}

// Reset clears the cached corpus so the next Build recomputes it.
func (b *Builder) Reset() {
	b.mu.Lock()
	b.items = nil
	b.mu.Unlock()
}

func (b *Builder) build() ([]models.SearchableItem, error) {
	maxLen := b.searchCfg.PreviewLength
	var items []models.SearchableItem

	for _, slug := range b.contentCfg.Slugs {
		// The blog listing page is covered by per-post entries plus the
		// synthetic listing item appended below.
		if slug == b.contentCfg.BlogSlug {
			continue
		}
		doc, err := b.provider.Document(slug)
		if err != nil {
			return nil, fmt.Errorf("corpus build: %w", err)
		}

		text := extract.DocumentText(doc)
		items = append(items, models.SearchableItem{
			ID:      slug + "-main",
			Title:   doc.Title,
			URL:     doc.URL,
			Content: text,
			Preview: Preview(text, maxLen),
		})

		for _, sec := range extract.Sections(doc) {
			items = append(items, models.SearchableItem{
				ID:      slug + "-" + sec.ID,
				Title:   sec.Title,
				URL:     sec.URL,
				Section: sec.Title,
				Content: sec.Content,
				Preview: Preview(sec.Content, maxLen),
			})
		}
	}

	posts, err := b.provider.Posts()
	if err != nil {
		return nil, fmt.Errorf("corpus build: %w", err)
	}
	for _, post := range posts {
		text := post.SearchText
		if text == "" {
			text = post.Title + " " + strings.Join(post.Topics, " ")
		}
		items = append(items, models.SearchableItem{
			ID:      "blog-" + post.Slug,
			Title:   post.Title,
			URL:     "/blog/" + post.Slug,
			Content: text,
			Preview: Preview(text, maxLen),
		})
	}

	items = append(items, models.SearchableItem{
		ID:      blogListingID,
		Title:   blogListingTitle,
		URL:     blogListingURL,
		Content: blogListingContent,
		Preview: blogListingPreview,
	})

	return items, nil
}

// Preview normalizes text into a short excerpt: newlines collapse to spaces,
// the result is trimmed, and anything over maxLen runes is cut at the last
// space when one falls within the final 30 runes (mid-word otherwise), with
// "..." appended.
func Preview(text string, maxLen int) string {
	preview := strings.TrimSpace(strings.ReplaceAll(text, "\n", " "))
	runes := []rune(preview)
	if len(runes) <= maxLen {
		return preview
	}

	truncated := runes[:maxLen]
	lastSpace := -1
	for i := len(truncated) - 1; i >= 0; i-- {
		if truncated[i] == ' ' {
			lastSpace = i
			break
		}
	}
	if lastSpace > maxLen-30 {
		return string(truncated[:lastSpace]) + "..."
	}
	return string(truncated) + "..."
}
