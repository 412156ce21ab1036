package main

import (
	"strings"
	"testing"

	"github.com/aneesh6214/folio/internal/models"
)

func TestBuildSearchQuery(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"single arg", []string{"oracle"}, "oracle"},
		{"multiple args joined", []string{"platform", "engineering"}, "platform engineering"},
		{"already quoted", []string{"platform engineering"}, "platform engineering"},
		{"empty", nil, ""},
		{"whitespace trimmed", []string{" ", ""}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := buildSearchQuery(tt.args); got != tt.want {
				t.Errorf("buildSearchQuery(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestFormatResult(t *testing.T) {
	r := &models.SearchResult{
		SearchableItem: models.SearchableItem{
			Title:   "Industry Work",
			URL:     "/industry-work",
			Preview: "Professional experience",
		},
		Score:              12,
		HighlightedPreview: "Professional <mark>experience</mark>",
	}
	out := formatResult(1, r)
	if !strings.Contains(out, "Industry Work (/industry-work) [score 12]") {
		t.Errorf("missing header line: %q", out)
	}
	if strings.Contains(out, "<mark>") {
		t.Errorf("highlight markers should be stripped: %q", out)
	}
	if !strings.Contains(out, "Professional experience") {
		t.Errorf("missing preview: %q", out)
	}
}

func TestFormatResult_suggestionHasNoScore(t *testing.T) {
	r := &models.SearchResult{
		SearchableItem: models.SearchableItem{Title: "Blog", URL: "/blog", Preview: "Technical articles"},
		Score:          0,
	}
	out := formatResult(3, r)
	if strings.Contains(out, "[score") {
		t.Errorf("zero-score entries should not print a score: %q", out)
	}
}
