// SPDX-License-Identifier: MIT

// Package api serves the catalog and playback sessions over HTTP.
package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/katalvlaran/algoviz/internal/platform/logger"
	"github.com/katalvlaran/algoviz/internal/platform/metrics"
)

// NewRouter mounts every endpoint of h on a chi router.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(logger.RequestLogger(h.log))
	if h.metrics != nil {
		r.Use(metrics.RequestMiddleware(h.metrics))
		r.Method("GET", "/metrics", h.metrics.Handler(func() {
			h.metrics.SetActiveSessions(h.store.Len())
		}))
	}
	r.Get("/healthz", h.Health)

	r.Route("/algorithms", func(r chi.Router) {
		r.Get("/", h.ListAlgorithms)
		r.Get("/{id}", h.GetAlgorithm)
		r.Post("/{id}/runs", h.CreateRun)
	})
	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", h.CreateSession)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.GetSession)
			r.Delete("/", h.DeleteSession)
			r.Put("/delay", h.SetDelay)
			r.Post("/seek/{index}", h.Seek)
			r.Post("/{command}", h.Command)
		})
	})

	return r
}
