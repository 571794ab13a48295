// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// compressionLevel is the gzip level used for responses.
const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(
		middleware.RealIP,
		h.withTraceID,
		h.withLogging,
		h.withMetrics,
		middleware.Recoverer,
		withCORS(h.corsOrigins),
		h.withGZipRequest,
		middleware.Compress(compressionLevel),
	)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.methodNotAllowed)

	// service routes
	router.Get("/version", h.getServerVersion)
	router.Method("GET", "/metrics", h.metrics.handler())
	router.Route("/docs", func(r chi.Router) {
		r.Get("/", h.getDocsUI)
		r.Get("/openapi.yaml", h.getOpenAPIYAML)
		r.Get("/openapi.json", h.getOpenAPIJSON)
	})

	router.Route("/auth", func(r chi.Router) {
		r.Post("/signup", h.signup)
		r.Post("/login", h.login)
	})

	router.Route("/users", func(r chi.Router) {
		r.With(h.auth).Get("/me", h.getMe)
		r.Get("/{id}", h.getUser)
	})

	router.Route("/posts", func(r chi.Router) {
		r.Get("/", h.listPosts)
		r.Get("/{id}", h.getPost)

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Post("/", h.createPost)
			r.Patch("/{id}", h.updatePost)
			r.Delete("/{id}", h.deletePost)
		})
	})

	return router
}
