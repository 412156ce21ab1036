// Package config provides configuration loading and structs for the folio server.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application.
type Config struct {
	Debug   bool          `yaml:"debug"`
	Server  ServerConfig  `yaml:"server"`
	Content ContentConfig `yaml:"content"`
	Search  SearchConfig  `yaml:"search"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// ContentConfig holds the content directory layout and the page slug list.
// Slugs fixes both which documents exist and their declaration order, which
// is the search tie-break order. BlogSlug names the blog listing page, which
// is skipped during corpus assembly and replaced by per-post entries.
type ContentConfig struct {
	Dir      string   `yaml:"dir"`
	PostsDir string   `yaml:"posts_dir"`
	Slugs    []string `yaml:"slugs"`
	BlogSlug string   `yaml:"blog_slug"`
	Watch    bool     `yaml:"watch"`
}

// SearchConfig holds scoring weights and result limits.
type SearchConfig struct {
	MaxResults     int `yaml:"max_results"`
	MaxSuggestions int `yaml:"max_suggestions"`
	PreviewLength  int `yaml:"preview_length"`
	MinTermLength  int `yaml:"min_term_length"`
	TitleWeight    int `yaml:"title_weight"`
	ContentWeight  int `yaml:"content_weight"`
	SectionWeight  int `yaml:"section_weight"`
}

// Load reads and parses the config file at path, expands paths, and applies defaults.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)

	configDir := filepath.Dir(path)
	cfg.Content.Dir = expandPath(cfg.Content.Dir, configDir)
	cfg.Content.PostsDir = expandPath(cfg.Content.PostsDir, configDir)

	return &cfg, nil
}

// expandPath converts a path to absolute. Paths starting with "./" are relative to configDir;
// other relative paths are relative to the home directory.
func expandPath(path string, configDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "./") || path == "." {
		return filepath.Join(configDir, path)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, path)
	}
	return path
}
