package config

// DefaultSlugs is the declaration order of the site's pages. Corpus order,
// and therefore search tie-break order, follows this list.
var DefaultSlugs = []string{"home", "industry-work", "research", "projects", "blog", "contact"}

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Content.Dir == "" {
		cfg.Content.Dir = "./content"
	}
	if cfg.Content.PostsDir == "" {
		cfg.Content.PostsDir = "./content/posts"
	}
	if len(cfg.Content.Slugs) == 0 {
		cfg.Content.Slugs = append([]string(nil), DefaultSlugs...)
	}
	if cfg.Content.BlogSlug == "" {
		cfg.Content.BlogSlug = "blog"
	}
	if cfg.Search.MaxResults == 0 {
		cfg.Search.MaxResults = 8
	}
	if cfg.Search.MaxSuggestions == 0 {
		cfg.Search.MaxSuggestions = 6
	}
	if cfg.Search.PreviewLength == 0 {
		cfg.Search.PreviewLength = 150
	}
	if cfg.Search.MinTermLength == 0 {
		cfg.Search.MinTermLength = 2
	}
	if cfg.Search.TitleWeight == 0 {
		cfg.Search.TitleWeight = 10
	}
	if cfg.Search.ContentWeight == 0 {
		cfg.Search.ContentWeight = 2
	}
	if cfg.Search.SectionWeight == 0 {
		cfg.Search.SectionWeight = 5
	}
}
