// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-clean-architecture/internal/config"
	"github.com/MKhiriev/go-clean-architecture/internal/service"
	"github.com/MKhiriev/go-clean-architecture/internal/store"
	"github.com/MKhiriev/go-clean-architecture/internal/validators"
	"github.com/MKhiriev/go-clean-architecture/models"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid data", fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrNoFieldsToUpdate), http.StatusBadRequest},
		{"malformed json", fmt.Errorf("%w: unexpected EOF", ErrMalformedJSON), http.StatusBadRequest},
		{"bad path id", ErrInvalidPathID, http.StatusBadRequest},
		{"no auth header", ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
		{"bad auth header", ErrInvalidAuthorizationHeader, http.StatusUnauthorized},
		{"bad token", fmt.Errorf("%w: token is expired", service.ErrTokenIsExpiredOrInvalid), http.StatusUnauthorized},
		{"inactive role", service.ErrRoleInactive, http.StatusForbidden},
		{"unknown role", service.ErrRoleUnknown, http.StatusForbidden},
		{"user not found", fmt.Errorf("%w: %w", service.ErrUserNotFound, store.ErrEntityNotFound), http.StatusNotFound},
		{"role not found", service.ErrRoleNotFound, http.StatusNotFound},
		{"entity not found", store.ErrEntityNotFound, http.StatusNotFound},
		{"document not found", ErrDocumentNotFound, http.StatusNotFound},
		{"duplicate key", fmt.Errorf("save: %w", store.ErrDuplicateKey), http.StatusConflict},
		{"foreign key", fmt.Errorf("save: %w", store.ErrForeignKeyViolation), http.StatusBadRequest},
		{"required field", store.ErrRequiredFieldMissing, http.StatusBadRequest},
		{"other constraint", store.ErrConstraintViolation, http.StatusConflict},
		{"query failure", store.ErrExecutingQuery, http.StatusInternalServerError},
		{"commit failure", store.ErrCommitingTransaction, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestWriteError(t *testing.T) {
	h := newBareHandler(config.Server{})

	t.Run("client error keeps message", func(t *testing.T) {
		rr := httptest.NewRecorder()
		rr.Header().Set(traceIDHeader, "trace-7")
		h.writeError(rr, httptest.NewRequest(http.MethodGet, "/", nil), service.ErrUserNotFound)

		require.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
		assert.Equal(t, models.ErrorResponse{Error: "user not found", TraceID: "trace-7"}, decodeJSON[models.ErrorResponse](t, rr))
	})

	t.Run("internal error hides details", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.writeError(rr, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("dsn password=secret"))

		require.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "secret")
	})
}
