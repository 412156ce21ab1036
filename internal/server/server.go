// Package server provides the HTTP API for folio.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/aneesh6214/folio/internal/config"
	"github.com/aneesh6214/folio/internal/content"
	"github.com/aneesh6214/folio/internal/render"
	"github.com/aneesh6214/folio/internal/search"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Server is the HTTP server for the folio API.
type Server struct {
	engine   *search.Engine
	store    *content.Store
	renderer *render.Renderer
	config   *config.ServerConfig
	logger   *zap.Logger
	server   *http.Server
}

// NewServer creates a server with the given dependencies.
func NewServer(
	engine *search.Engine,
	store *content.Store,
	renderer *render.Renderer,
	cfg *config.ServerConfig,
	logger *zap.Logger,
) *Server {
	return &Server{
		engine:   engine,
		store:    store,
		renderer: renderer,
		config:   cfg,
		logger:   logger,
	}
}

// Router builds the chi router with all routes and middleware.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Compress(5))

	r.Get("/search", s.handleSearch)
	r.Get("/api/content/{slug}", s.handleContent)
	r.Get("/api/blog", s.handleBlogList)
	r.Get("/api/blog/{slug}", s.handleBlogPost)
	r.Get("/api/topics", s.handleTopics)
	r.Get("/pages/{slug}", s.handlePage)
	r.Get("/health", s.handleHealth)

	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.Router(),
	}
	s.logger.Info("Starting server", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
