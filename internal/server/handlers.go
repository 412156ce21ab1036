package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/aneesh6214/folio/internal/content"
	"github.com/aneesh6214/folio/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// handleSearch serves the navigation search box. A non-blank q runs a ranked
// search; a blank or absent q returns navigation suggestions reshaped to the
// SearchResult contract so clients consume one shape. Internal failures are
// logged and surfaced as a generic 500.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	s.logger.Debug("search request", zap.String("query", query))

	if strings.TrimSpace(query) != "" {
		results, err := s.engine.Search(r.Context(), query)
		if err != nil {
			s.logger.Error("search failed", zap.String("query", query), zap.Error(err))
			s.respondError(w, http.StatusInternalServerError, "Search failed")
			return
		}
		if results == nil {
			results = []models.SearchResult{}
		}
		s.respondJSON(w, http.StatusOK, results)
		return
	}

	suggestions, err := s.engine.Suggestions(r.Context())
	if err != nil {
		s.logger.Error("suggestions failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "Search failed")
		return
	}
	results := make([]models.SearchResult, 0, len(suggestions))
	for _, item := range suggestions {
		results = append(results, models.SearchResult{
			SearchableItem:     item,
			Score:              0,
			MatchedTerms:       []string{},
			HighlightedPreview: item.Preview,
		})
	}
	s.respondJSON(w, http.StatusOK, results)
}

func (s *Server) handleContent(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	doc, err := s.store.Document(slug)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			s.respondError(w, http.StatusNotFound, "content not found")
			return
		}
		s.logger.Error("content load failed", zap.String("slug", slug), zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "failed to load content")
		return
	}
	s.respondJSON(w, http.StatusOK, doc)
}

func (s *Server) handleBlogList(w http.ResponseWriter, r *http.Request) {
	topic := r.URL.Query().Get("topic")
	var (
		posts []models.BlogPost
		err   error
	)
	if topic != "" {
		posts, err = s.store.PostsByTopic(topic)
	} else {
		posts, err = s.store.Posts()
	}
	if err != nil {
		s.logger.Error("blog list failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "failed to load posts")
		return
	}
	if posts == nil {
		posts = []models.BlogPost{}
	}
	s.respondJSON(w, http.StatusOK, posts)
}

func (s *Server) handleBlogPost(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	post, err := s.store.Post(slug)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			s.respondError(w, http.StatusNotFound, "post not found")
			return
		}
		s.logger.Error("blog post load failed", zap.String("slug", slug), zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "failed to load post")
		return
	}
	s.respondJSON(w, http.StatusOK, post)
}

func (s *Server) handleTopics(w http.ResponseWriter, r *http.Request) {
	topics, err := s.store.UsedTopics()
	if err != nil {
		s.logger.Error("topics failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "failed to load topics")
		return
	}
	if topics == nil {
		topics = []string{}
	}
	s.respondJSON(w, http.StatusOK, topics)
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	doc, err := s.store.Document(slug)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		s.logger.Error("page load failed", zap.String("slug", slug), zap.Error(err))
		http.Error(w, "failed to load page", http.StatusInternalServerError)
		return
	}
	page, err := s.renderer.Document(doc)
	if err != nil {
		s.logger.Error("page render failed", zap.String("slug", slug), zap.Error(err))
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(page))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
