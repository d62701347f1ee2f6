package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"legal-summarizer/internal/handlers"
	"legal-summarizer/internal/middleware"
)

// New wires every route. While configErr is set only the page (which then
// shows the error) and the health check answer normally.
func New(
	log *zap.Logger,
	pageHandler *handlers.PageHandler,
	apiHandler *handlers.APIHandler,
	summarizeLimiter *middleware.RateLimiter,
	configErr error,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Session)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if configErr != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status":"misconfigured"}`))
			return
		}
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/", pageHandler.Index)

	// ──── Page actions ────
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireConfig(configErr))
		r.With(summarizeLimiter.Middleware).Post("/summarize", pageHandler.Summarize)
		r.Post("/extract", pageHandler.Extract)
		r.Post("/download", pageHandler.Download)
	})

	// ──── JSON API ────
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RequireConfig(configErr))
		r.With(summarizeLimiter.Middleware).Post("/summaries", apiHandler.Summarize)
		r.Post("/stats", apiHandler.Stats)
		r.Post("/extract", apiHandler.Extract)
		r.Get("/supported-formats", apiHandler.SupportedFormats)
	})

	return r
}
