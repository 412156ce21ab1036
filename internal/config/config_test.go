package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  host: "127.0.0.1"
  port: 9000
content:
  dir: "./site-content"
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Host != "127.0.0.1" || cfg.Server.Port != 9000 {
		t.Errorf("unexpected server config: %+v", cfg.Server)
	}
	if cfg.Content.Dir != filepath.Join(dir, "site-content") {
		t.Errorf("content dir should expand relative to config dir, got %q", cfg.Content.Dir)
	}
	if cfg.Debug {
		t.Error("debug should default to false when unset")
	}
}

func TestLoad_missingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoad_invalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("server: [not a map"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid yaml")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)

	if cfg.Server.Host != "localhost" || cfg.Server.Port != 8080 {
		t.Errorf("server defaults: %+v", cfg.Server)
	}
	if cfg.Content.BlogSlug != "blog" {
		t.Errorf("blog slug default: %q", cfg.Content.BlogSlug)
	}
	if len(cfg.Content.Slugs) != 6 || cfg.Content.Slugs[0] != "home" {
		t.Errorf("slug list default: %v", cfg.Content.Slugs)
	}
	if cfg.Search.MaxResults != 8 || cfg.Search.MaxSuggestions != 6 {
		t.Errorf("result limits: %+v", cfg.Search)
	}
	if cfg.Search.TitleWeight != 10 || cfg.Search.ContentWeight != 2 || cfg.Search.SectionWeight != 5 {
		t.Errorf("scoring weights: %+v", cfg.Search)
	}
	if cfg.Search.PreviewLength != 150 || cfg.Search.MinTermLength != 2 {
		t.Errorf("preview/term defaults: %+v", cfg.Search)
	}
}

func TestApplyDefaults_keepsExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.Search.MaxResults = 3
	cfg.Content.Slugs = []string{"home"}
	ApplyDefaults(cfg)
	if cfg.Search.MaxResults != 3 {
		t.Errorf("explicit max_results overwritten: %d", cfg.Search.MaxResults)
	}
	if len(cfg.Content.Slugs) != 1 {
		t.Errorf("explicit slugs overwritten: %v", cfg.Content.Slugs)
	}
}
