package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Vovarama1992/bfhl-gateway/internal/bfhl"
	"github.com/Vovarama1992/bfhl-gateway/internal/metrics"
)

// NewRouter wires middleware, the bfhl routes and /metrics.
func NewRouter(allowedOrigins []string, h *bfhl.Handler, rec *metrics.Recorder) http.Handler {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	bfhl.RegisterRoutes(r, h)

	if rec != nil {
		r.Method(http.MethodGet, "/metrics", rec.Handler())
	}

	return r
}
