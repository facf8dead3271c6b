// Package server exposes spreadsheet uploads over HTTP.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/ukaji3/sheetload-go/pkg/sheetload"
	"github.com/ukaji3/sheetload-go/pkg/sheetload/insert"
)

// multipartOverhead is allowed on top of the payload limit for form framing.
const multipartOverhead = 1 << 20

// Server serves the upload endpoints.
type Server struct {
	router   *chi.Mux
	loader   *sheetload.Loader
	inserter insert.Inserter
	log      *slog.Logger
}

// New creates a Server. A nil logger uses slog.Default().
func New(loader *sheetload.Loader, inserter insert.Inserter, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		router:   chi.NewRouter(),
		loader:   loader,
		inserter: inserter,
		log:      logger,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(s.requestLogger)
	s.router.Use(middleware.Recoverer)
}

func (s *Server) setupRoutes() {
	s.router.Get("/healthz", s.handleHealth)

	s.router.Route("/uploads", func(r chi.Router) {
		r.Post("/", s.handleUpload)
		r.Post("/preview", s.handlePreview)
	})
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		s.log.InfoContext(r.Context(), "http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", middleware.GetReqID(r.Context()))
	})
}
