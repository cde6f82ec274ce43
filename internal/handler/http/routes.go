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

	router.Route("/api", func(r chi.Router) {
		r.Route("/documents/{type}", func(r chi.Router) {
			r.Get("/", h.listDocuments)
			r.Route("/{id}", func(r chi.Router) {
				r.Put("/", h.saveDocument)
				r.Get("/", h.getDocument)
				r.Delete("/", h.deleteDocument)
			})
		})

		r.Route("/index/{type}", func(r chi.Router) {
			r.Get("/", h.getIndex)
			r.Post("/rebuild", h.rebuildIndex)
		})

		r.Get("/version", h.getServerVersion)
	})

	return router
}
