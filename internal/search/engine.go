// Package search scores corpus items against a query with fixed linear term
// weights and serves navigation suggestions for empty queries.
package search

import (
	"context"
	"sort"
	"strings"

	"github.com/aneesh6214/folio/internal/config"
	"github.com/aneesh6214/folio/internal/corpus"
	"github.com/aneesh6214/folio/internal/models"
)

// Engine runs weighted term search over the corpus.
type Engine struct {
	corpus *corpus.Builder
	config *config.SearchConfig
}

// NewEngine creates a search engine over the given corpus builder.
func NewEngine(c *corpus.Builder, cfg *config.SearchConfig) *Engine {
	return &Engine{corpus: c, config: cfg}
}

// Search tokenizes the query and scores every corpus item: TitleWeight per
// term contained in the title, ContentWeight per non-overlapping content
// occurrence, SectionWeight per term contained in the section title. Items
// with no matches are dropped; survivors get a highlighted preview, a stable
// sort by descending score (ties keep corpus order), and the list truncates
// to MaxResults. Empty or all-short-token queries return no results.
func (e *Engine) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}
	terms := Tokenize(query, e.config.MinTermLength)
	if len(terms) == 0 {
		return nil, nil
	}

	items, err := e.corpus.Build(ctx)
	if err != nil {
		return nil, err
	}

	var results []models.SearchResult
	for _, item := range items {
		score, matched := e.scoreItem(&item, terms)
		if score == 0 {
			continue
		}
		results = append(results, models.SearchResult{
			SearchableItem:     item,
			Score:              score,
			MatchedTerms:       matched,
			HighlightedPreview: Highlight(item.Preview, matched),
		})
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	if len(results) > e.config.MaxResults {
		results = results[:e.config.MaxResults]
	}
	return results, nil
}

// scoreItem returns the item's score and its matched terms in insertion
// order: title pass, then content pass, then section pass. A term already
// recorded in an earlier pass is not re-appended.
func (e *Engine) scoreItem(item *models.SearchableItem, terms []string) (int, []string) {
	score := 0
	matched := []string{}
	seen := make(map[string]bool, len(terms))
	record := func(term string) {
		if !seen[term] {
			seen[term] = true
			matched = append(matched, term)
		}
	}

	titleLower := strings.ToLower(item.Title)
	for _, term := range terms {
		if strings.Contains(titleLower, term) {
			score += e.config.TitleWeight
			record(term)
		}
	}

	contentLower := strings.ToLower(item.Content)
	for _, term := range terms {
		if n := strings.Count(contentLower, term); n > 0 {
			score += n * e.config.ContentWeight
			record(term)
		}
	}

	if item.Section != "" {
		sectionLower := strings.ToLower(item.Section)
		for _, term := range terms {
			if strings.Contains(sectionLower, term) {
				score += e.config.SectionWeight
				record(term)
			}
		}
	}

	return score, matched
}

// Suggestions returns the whole-document corpus entries (id suffix "-main"),
// in corpus order, capped at MaxSuggestions. Used when the query is empty.
func (e *Engine) Suggestions(ctx context.Context) ([]models.SearchableItem, error) {
	items, err := e.corpus.Build(ctx)
	if err != nil {
		return nil, err
	}
	var mains []models.SearchableItem
	for _, item := range items {
		if strings.HasSuffix(item.ID, "-main") {
			mains = append(mains, item)
			if len(mains) == e.config.MaxSuggestions {
				break
			}
		}
	}
	return mains, nil
}
