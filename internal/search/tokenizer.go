package search

import (
	"strings"
	"unicode/utf8"
)

// Tokenize lowercases the query, splits on runs of whitespace, and drops
// terms shorter than minLen runes. Duplicate terms are kept; scoring records
// each matched term only once.
func Tokenize(query string, minLen int) []string {
	fields := strings.Fields(strings.ToLower(query))
	terms := fields[:0]
	for _, f := range fields {
		if utf8.RuneCountInString(f) >= minLen {
			terms = append(terms, f)
		}
	}
	return terms
}
