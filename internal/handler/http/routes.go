// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Interceptors run in the order they are listed;
// authentication, authorization and CORS apply to the /api subtree only.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(h.withHTTPSRedirect)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}
	router.Use(middleware.Compress(5, "application/json"))
	if h.cfg.RateLimit > 0 {
		router.Use(h.withRateLimit())
	}
	router.Use(h.withAPIVersion)

	// routes without authorization
	router.Get("/api/version", h.getVersion)
	router.Get("/swagger/{version}/swagger.json", h.getSwaggerDocument)
	router.Method(http.MethodGet, "/metrics", h.metrics.handler())

	api := chi.NewRouter()
	api.Use(h.auth)
	api.Use(h.authorize)
	api.Use(h.withCORS())
	// set before Route so the mounted sub-routers inherit it
	api.MethodNotAllowed(CheckHTTPMethod(api))

	api.Route("/users", func(r chi.Router) {
		r.Get("/", h.listUsers)
		r.Post("/", h.createUser)
		r.Get("/{id}", h.getUser)
		r.Put("/{id}", h.updateUser)
		r.Patch("/{id}", h.updateUser)
		r.Delete("/{id}", h.deleteUser)
	})
	api.Get("/roles", h.listRoles)
	api.Get("/roles/{id}", h.getRole)
	api.Get("/branches", h.listBranches)

	router.MethodNotAllowed(CheckHTTPMethod(router))
	router.Mount("/api", api)

	return router
}
