// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-clean-architecture/internal/docs"
	"github.com/MKhiriev/go-clean-architecture/models"
)

func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, h.services.AppInfoService.GetAppInfo(r.Context()), http.StatusOK)
}

// getSwaggerDocument serves the OpenAPI document named by the {version} path
// segment ("v1", "v2").
func (h *Handler) getSwaggerDocument(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "version")

	version, ok := models.ParseAPIVersion(name)
	if !ok {
		h.writeError(w, r, fmt.Errorf("%w: %s", ErrDocumentNotFound, name))
		return
	}

	document, ok := docs.Document(version, h.services.AppInfoService.GetAppInfo(r.Context()).Version)
	if !ok {
		h.writeError(w, r, fmt.Errorf("%w: %s", ErrDocumentNotFound, name))
		return
	}

	h.writeJSON(w, r, document, http.StatusOK)
}
