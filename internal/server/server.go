// Package server exposes the catalog over HTTP: the static documents plus a
// small JSON query API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"knighty/internal/domain"
	"knighty/internal/i18n"
	"knighty/internal/logic"
)

// Config holds server configuration.
type Config struct {
	Addr     string
	DocsDir  string // directory containing the cheat sheet documents
	AllowAll bool   // allow all CORS origins
}

// Server serves the cheat sheet documents and the query API.
type Server struct {
	cfg        Config
	store      logic.SheetStore
	bundle     *i18n.Bundle
	router     chi.Router
	httpServer *http.Server
}

// New creates a server over the given catalog store.
func New(cfg Config, store logic.SheetStore, bundle *i18n.Bundle) *Server {
	s := &Server{
		cfg:    cfg,
		store:  store,
		bundle: bundle,
	}
	s.router = s.buildRouter()
	return s
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Get("/htmls/*", s.handleDocument)
	r.Get("/cheatsheet/{ref}", s.handleDeepLink)

	r.Route("/api", func(r chi.Router) {
		r.Get("/cheatsheets", s.handleList)
		r.Get("/cheatsheets/{id}", s.handleGet)
		r.Get("/categories", s.handleCategories)
		r.Get("/stats", s.handleStats)
		r.Get("/i18n/{lang}", s.handleI18n)
		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "API endpoint not found", http.StatusNotFound)
		})
	})

	return r
}

// Router returns the chi router.
func (s *Server) Router() chi.Router { return s.router }

// Start begins listening on the configured address.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("knighty server listening on %s", s.cfg.Addr)
	if _, err := os.Stat(s.cfg.DocsDir); err != nil {
		log.Printf("Warning: docs directory not found: %v", err)
	}
	return s.httpServer.ListenAndServe()
}

// Run starts the server and shuts it down gracefully once ctx is done.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() { errCh <- s.Start() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// handleDocument serves a static document from the docs directory
func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "*")
	// Rooted clean keeps the path inside DocsDir
	clean := path.Clean("/" + name)
	if name == "" || clean == "/" {
		http.Error(w, "Cheat sheet not found", http.StatusNotFound)
		return
	}

	full := filepath.Join(s.cfg.DocsDir, filepath.FromSlash(clean))
	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		http.Error(w, "Cheat sheet not found", http.StatusNotFound)
		return
	}
	http.ServeFile(w, r, full)
}

// handleDeepLink redirects a shareable sheet link to its document
func (s *Server) handleDeepLink(w http.ResponseWriter, r *http.Request) {
	sheet, err := s.store.Resolve(chi.URLParam(r, "ref"))
	if err != nil {
		http.Error(w, "Cheat sheet not found", http.StatusNotFound)
		return
	}
	http.Redirect(w, r, sheet.DocumentPath(), http.StatusFound)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	// Unknown categories are kept as-is so they match nothing
	category, _ := domain.ParseCategory(q.Get("category"))
	state := logic.QueryState{
		SearchText:       q.Get("q"),
		SelectedCategory: category,
	}

	if raw := q.Get("featured"); raw != "" {
		featured, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "featured must be a boolean")
			return
		}
		state.FeaturedOnly = featured
	}

	limit := 0
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	results := logic.Apply(s.store.GetAllSheets(), state)
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	if results == nil {
		results = []domain.Cheatsheet{}
	}
	writeJSON(w, http.StatusOK, results)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	sheet := s.store.GetSheet(chi.URLParam(r, "id"))
	if sheet == nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	writeJSON(w, http.StatusOK, sheet)
}

type categoryResponse struct {
	Name  domain.Category `json:"name"`
	Key   string          `json:"key"`
	Label string          `json:"label"`
	Count int             `json:"count"`
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	lang := i18n.Normalize(r.URL.Query().Get("lang"))
	all := s.store.GetAllSheets()

	cats := domain.Categories()
	out := make([]categoryResponse, 0, len(cats))
	for _, c := range cats {
		out = append(out, categoryResponse{
			Name:  c,
			Key:   c.Key(),
			Label: s.bundle.Category(lang, c),
			Count: len(logic.ByCategory(all, c)),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	all := s.store.GetAllSheets()
	writeJSON(w, http.StatusOK, domain.Stats{
		Cheatsheets: len(all),
		Categories:  len(domain.Categories()) - 1,
		Languages:   len(i18n.Supported()),
		Featured:    len(logic.FilterFeatured(all)),
	})
}

func (s *Server) handleI18n(w http.ResponseWriter, r *http.Request) {
	lang := i18n.Normalize(chi.URLParam(r, "lang"))
	writeJSON(w, http.StatusOK, map[string]any{
		"lang":    lang,
		"rtl":     i18n.IsRTL(lang),
		"strings": s.bundle.Table(lang),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
