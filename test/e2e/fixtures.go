// Package e2e exercises the full HTTP surface over the repository's real
// authored content.
package e2e

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/aneesh6214/folio/internal/config"
	"github.com/aneesh6214/folio/internal/content"
	"github.com/aneesh6214/folio/internal/corpus"
	"github.com/aneesh6214/folio/internal/render"
	"github.com/aneesh6214/folio/internal/search"
	"github.com/aneesh6214/folio/internal/server"
	"go.uber.org/zap"
)

// contentRoot locates the repository's content directory relative to this
// package.
func contentRoot(t *testing.T) string {
	t.Helper()
	dir, err := filepath.Abs(filepath.Join("..", "..", "content"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Skipf("content directory not available: %v", err)
	}
	return dir
}

// startServer boots an httptest server over the real content tree and
// returns its base URL.
func startServer(t *testing.T) string {
	t.Helper()
	dir := contentRoot(t)

	cfg := &config.Config{}
	config.ApplyDefaults(cfg)
	cfg.Content.Dir = dir
	cfg.Content.PostsDir = filepath.Join(dir, "posts")

	store := content.NewStore(cfg.Content.Dir, cfg.Content.PostsDir)
	builder := corpus.NewBuilder(store, &cfg.Content, &cfg.Search)
	engine := search.NewEngine(builder, &cfg.Search)
	srv := server.NewServer(engine, store, render.New(), &cfg.Server, zap.NewNop())

	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return ts.URL
}
