package corpus

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aneesh6214/folio/internal/config"
	"github.com/aneesh6214/folio/internal/content"
	"github.com/aneesh6214/folio/internal/models"
)

type fakeProvider struct {
	docs  map[string]*models.ContentDocument
	posts []models.BlogPost
	loads int
}

func (f *fakeProvider) Document(slug string) (*models.ContentDocument, error) {
	f.loads++
	doc, ok := f.docs[slug]
	if !ok {
		return nil, content.ErrNotFound
	}
	return doc, nil
}

func (f *fakeProvider) Posts() ([]models.BlogPost, error) {
	return f.posts, nil
}

func testConfig() (*config.ContentConfig, *config.SearchConfig) {
	cfg := &config.Config{}
	config.ApplyDefaults(cfg)
	cfg.Content.Slugs = []string{"home", "blog", "projects"}
	return &cfg.Content, &cfg.Search
}

func testProvider() *fakeProvider {
	return &fakeProvider{
		docs: map[string]*models.ContentDocument{
			"home": {
				Title:       "Aneesh Kumar",
				Description: "Personal knowledge base and portfolio",
				URL:         "/",
				Sections: []models.Section{
					{Title: "Overview", Content: []models.ContentBlock{
						{Type: models.BlockParagraph, Text: "AI researcher and engineer."},
					}},
				},
			},
			"projects": {
				Title:       "Projects",
				Description: "Collection of personal and professional projects",
				URL:         "/projects",
				Sections: []models.Section{
					{Title: "The Emergent Machine", Content: []models.ContentBlock{
						{Type: models.BlockParagraph, Text: "Identity emergence in LLM agents."},
					}},
				},
			},
		},
		posts: []models.BlogPost{
			{Slug: "manifesto", Title: "Manifesto", Topics: []string{"Philosophy", "AI"},
				SearchText: "Institutional incentives increasingly frame AI as a product category."},
			{Slug: "agents", Title: "On Agents", Topics: []string{"AI", "Opinion"}},
		},
	}
}

func TestBuild_orderAndIDs(t *testing.T) {
	contentCfg, searchCfg := testConfig()
	b := NewBuilder(testProvider(), contentCfg, searchCfg)

	items, err := b.Build(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	wantIDs := []string{
		"home-main",
		"home-overview",
		"projects-main",
		"projects-the-emergent-machine",
		"blog-manifesto",
		"blog-agents",
		"blog-main",
	}
	if len(items) != len(wantIDs) {
		t.Fatalf("expected %d items, got %d: %+v", len(wantIDs), len(items), items)
	}
	for i, want := range wantIDs {
		if items[i].ID != want {
			t.Errorf("item %d: got id %q, want %q", i, items[i].ID, want)
		}
	}
}

func TestBuild_itemFields(t *testing.T) {
	contentCfg, searchCfg := testConfig()
	b := NewBuilder(testProvider(), contentCfg, searchCfg)
	items, err := b.Build(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	byID := make(map[string]models.SearchableItem)
	for _, it := range items {
		byID[it.ID] = it
	}

	main := byID["home-main"]
	if main.Section != "" {
		t.Errorf("main item should have no section, got %q", main.Section)
	}
	if !strings.Contains(main.Content, "Personal knowledge base") {
		t.Errorf("main content missing description: %q", main.Content)
	}

	sec := byID["home-overview"]
	if sec.Section != "Overview" || sec.Title != "Overview" {
		t.Errorf("section item: title=%q section=%q", sec.Title, sec.Section)
	}
	if sec.URL != "/" {
		t.Errorf("section url should be the document url, got %q", sec.URL)
	}
	if strings.Contains(sec.Content, "Personal knowledge base") {
		t.Error("section content should be scoped to the section, not the document")
	}

	post := byID["blog-manifesto"]
	if post.URL != "/blog/manifesto" {
		t.Errorf("post url: %q", post.URL)
	}
	if !strings.Contains(post.Content, "Institutional incentives") {
		t.Errorf("post should use its dedicated search text: %q", post.Content)
	}

	// No dedicated search text: fall back to title plus topics.
	fallback := byID["blog-agents"]
	if fallback.Content != "On Agents AI Opinion" {
		t.Errorf("fallback post content: %q", fallback.Content)
	}

	listing := byID["blog-main"]
	if listing.Preview != blogListingPreview || listing.Content != blogListingContent {
		t.Errorf("blog listing entry not the fixed synthetic item: %+v", listing)
	}
}

func TestBuild_cachesAcrossCalls(t *testing.T) {
	contentCfg, searchCfg := testConfig()
	provider := testProvider()
	b := NewBuilder(provider, contentCfg, searchCfg)

	if _, err := b.Build(context.Background()); err != nil {
		t.Fatal(err)
	}
	loadsAfterFirst := provider.loads
	if _, err := b.Build(context.Background()); err != nil {
		t.Fatal(err)
	}
	if provider.loads != loadsAfterFirst {
		t.Errorf("second build should hit the cache, loads went %d -> %d", loadsAfterFirst, provider.loads)
	}

	b.Reset()
	if _, err := b.Build(context.Background()); err != nil {
		t.Fatal(err)
	}
	if provider.loads == loadsAfterFirst {
		t.Error("Reset should force a rebuild")
	}
}

func TestBuild_missingDocumentFailsWholeBuild(t *testing.T) {
	contentCfg, searchCfg := testConfig()
	provider := testProvider()
	delete(provider.docs, "projects")
	b := NewBuilder(provider, contentCfg, searchCfg)

	_, err := b.Build(context.Background())
	if !errors.Is(err, content.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// Nothing half-built may be cached: a later fix is picked up.
	provider.docs["projects"] = testProvider().docs["projects"]
	items, err := b.Build(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(items) == 0 {
		t.Error("expected a full corpus after the provider recovered")
	}
}

func TestPreview(t *testing.T) {
	long := strings.Repeat("word ", 40) // 200 chars, spaces everywhere
	nospace := strings.Repeat("x", 200)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"short returns as-is", "hello world", "hello world"},
		{"newlines collapse", "hello\nworld", "hello world"},
		{"trimmed", "  padded  ", "padded"},
		{"exactly at limit", strings.Repeat("a", 150), strings.Repeat("a", 150)},
		{"word boundary cut", long, strings.TrimSpace(long[:150]) + "..."},
		{"no space falls back to hard cut", nospace, nospace[:150] + "..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Preview(tt.in, 150)
			if got != tt.want {
				t.Errorf("Preview(...) = %q, want %q", got, tt.want)
			}
			if tt.in == tt.want && strings.HasSuffix(got, "...") {
				t.Error("short input must not gain an ellipsis")
			}
		})
	}
}

func TestPreview_spaceOutsideWindowIsIgnored(t *testing.T) {
	// Single space at rune 100, then unbroken text: the space sits outside
	// the final-30 window, so the cut is mid-word at exactly maxLen.
	in := strings.Repeat("a", 100) + " " + strings.Repeat("b", 100)
	got := Preview(in, 150)
	want := string([]rune(in)[:150]) + "..."
	if got != want {
		t.Errorf("Preview = %q, want %q", got, want)
	}
}
