// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-clean-architecture/internal/logger"
	"github.com/MKhiriev/go-clean-architecture/internal/utils"
	"github.com/MKhiriev/go-clean-architecture/models"
)

const (
	apiVersionHeader        = "X-API-Version"
	supportedVersionsHeader = "api-supported-versions"
)

var supportedVersions = func() string {
	versions := make([]string, 0, len(models.SupportedAPIVersions))
	for _, v := range models.SupportedAPIVersions {
		versions = append(versions, v.String())
	}
	return strings.Join(versions, ", ")
}()

// withAPIVersion stores the requested API version in the request context.
// A missing or unsupported X-API-Version falls back to the default version.
func (h *Handler) withAPIVersion(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested := r.Header.Get(apiVersionHeader)

		version, ok := models.ParseAPIVersion(requested)
		if !ok {
			if requested != "" {
				logger.FromRequest(r).Debug().Str("requested", requested).Msg("unsupported api version, using default")
			}
			version = h.defaultVersion
		}

		w.Header().Set(supportedVersionsHeader, supportedVersions)
		w.Header().Set(apiVersionHeader, version.String())

		next.ServeHTTP(w, r.WithContext(utils.WithAPIVersion(r.Context(), version)))
	})
}
