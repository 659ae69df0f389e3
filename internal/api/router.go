// Package api exposes the decision engines as a JSON HTTP service.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yankputra/SPK-AlatMusikKesenian/internal/scenario"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

// NewRouter builds the HTTP handler. Collectors are registered with reg and
// served from the same registry on /metrics.
func NewRouter(opts scenario.Options, reg *prometheus.Registry) http.Handler {
	m := NewMetrics(reg)
	h := &Handler{opts: opts, metrics: m}

	r := chi.NewRouter()
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger())
	r.Use(m.Middleware())

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/weights", h.Weights)
		r.Post("/rank", h.Rank)
		r.Post("/evaluate", h.Evaluate)
	})

	return r
}
