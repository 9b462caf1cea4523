// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/cors"
)

func (h *Handler) withCORS() func(http.Handler) http.Handler {
	origins := h.cfg.CORSAllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Authorization", "Content-Type", apiVersionHeader, traceIDHeader},
		ExposedHeaders: []string{supportedVersionsHeader, apiVersionHeader, traceIDHeader},
		MaxAge:         300,
	})
}
