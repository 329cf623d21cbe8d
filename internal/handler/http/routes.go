package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// liveness probe, outside the authenticated admin scope
	router.Get("/health", h.health)

	router.Route("/admin", func(r chi.Router) {
		r.Use(h.basicAuth)
		r.Get("/config", h.getConfig)
		r.Put("/config", h.updateConfig)
	})

	return router
}
