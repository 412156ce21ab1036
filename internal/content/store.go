// Package content loads authored content documents and blog posts from a
// content directory. Documents are keyed by page slug, one YAML file each;
// blog posts live in their own directory. The store only reads; content is
// immutable after load.
package content

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aneesh6214/folio/internal/models"
	"gopkg.in/yaml.v3"
)

// ErrNotFound reports that no content source exists for a requested slug.
var ErrNotFound = errors.New("content not found")

// Provider supplies content documents and blog posts to the corpus builder.
type Provider interface {
	Document(slug string) (*models.ContentDocument, error)
	Posts() ([]models.BlogPost, error)
}

// Store is a directory-backed Provider.
type Store struct {
	dir      string
	postsDir string
}

// NewStore creates a store reading documents from dir and posts from postsDir.
func NewStore(dir, postsDir string) *Store {
	return &Store{dir: dir, postsDir: postsDir}
}

// Document loads and parses the document for slug. Returns an error wrapping
// ErrNotFound when no file exists for the slug.
func (s *Store) Document(slug string) (*models.ContentDocument, error) {
	path := filepath.Join(s.dir, slug+".yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load content %q: %w", slug, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load content %q: %w", slug, err)
	}
	var doc models.ContentDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse content %q: %w", slug, err)
	}
	return &doc, nil
}

// Posts loads every blog post from the posts directory, sorted by slug for a
// stable corpus order. A missing posts directory yields no posts.
func (s *Store) Posts() ([]models.BlogPost, error) {
	entries, err := os.ReadDir(s.postsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read posts dir: %w", err)
	}

	var posts []models.BlogPost
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.postsDir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read post %q: %w", e.Name(), err)
		}
		var post models.BlogPost
		if err := yaml.Unmarshal(data, &post); err != nil {
			return nil, fmt.Errorf("failed to parse post %q: %w", e.Name(), err)
		}
		if post.Slug == "" {
			post.Slug = strings.TrimSuffix(e.Name(), ".yaml")
		}
		posts = append(posts, post)
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].Slug < posts[j].Slug })
	return posts, nil
}

// Post returns the post with the given slug, or an error wrapping ErrNotFound.
func (s *Store) Post(slug string) (*models.BlogPost, error) {
	posts, err := s.Posts()
	if err != nil {
		return nil, err
	}
	for i := range posts {
		if posts[i].Slug == slug {
			return &posts[i], nil
		}
	}
	return nil, fmt.Errorf("post %q: %w", slug, ErrNotFound)
}

// PostsByTopic returns all posts tagged with topic, preserving post order.
func (s *Store) PostsByTopic(topic string) ([]models.BlogPost, error) {
	posts, err := s.Posts()
	if err != nil {
		return nil, err
	}
	var filtered []models.BlogPost
	for _, p := range posts {
		for _, t := range p.Topics {
			if t == topic {
				filtered = append(filtered, p)
				break
			}
		}
	}
	return filtered, nil
}

// UsedTopics returns the distinct topics across all posts, sorted.
func (s *Store) UsedTopics() ([]string, error) {
	posts, err := s.Posts()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var topics []string
	for _, p := range posts {
		for _, t := range p.Topics {
			if !seen[t] {
				seen[t] = true
				topics = append(topics, t)
			}
		}
	}
	sort.Strings(topics)
	return topics, nil
}
