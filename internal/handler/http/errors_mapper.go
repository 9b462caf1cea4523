// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-clean-architecture/internal/service"
	"github.com/MKhiriev/go-clean-architecture/internal/store"
)

// errorStatuses is checked in order; constraint errors wrap
// store.ErrConstraintViolation, so the specific ones come first.
var errorStatuses = []struct {
	err    error
	status int
}{
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{ErrMalformedJSON, http.StatusBadRequest},
	{ErrInvalidPathID, http.StatusBadRequest},

	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrAccessDenied, http.StatusForbidden},

	{service.ErrUserNotFound, http.StatusNotFound},
	{service.ErrRoleNotFound, http.StatusNotFound},
	{ErrDocumentNotFound, http.StatusNotFound},
	{store.ErrEntityNotFound, http.StatusNotFound},

	{store.ErrDuplicateKey, http.StatusConflict},
	{store.ErrForeignKeyViolation, http.StatusBadRequest},
	{store.ErrRequiredFieldMissing, http.StatusBadRequest},
	{store.ErrConstraintViolation, http.StatusConflict},
}

func statusFromError(err error) int {
	for _, entry := range errorStatuses {
		if errors.Is(err, entry.err) {
			return entry.status
		}
	}
	return http.StatusInternalServerError
}
