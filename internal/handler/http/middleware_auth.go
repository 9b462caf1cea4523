// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-clean-architecture/internal/logger"
	"github.com/MKhiriev/go-clean-architecture/internal/utils"
	"github.com/MKhiriev/go-clean-architecture/models"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseToken] and stores the caller's user id and
// role id in the request context under [utils.UserIDCtxKey] and
// [utils.RoleIDCtxKey].
//
// Requests are rejected with HTTP 401 when the header is absent, is not a
// bearer header, or carries a token that is expired, tampered with, or issued
// for another issuer or audience. CORS preflight requests pass through
// untouched.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isPreflight(r) {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			h.writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err))
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			h.writeError(w, r, err)
			return
		}

		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)
		ctx = context.WithValue(ctx, utils.RoleIDCtxKey, token.RoleID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// authorize rejects authenticated callers whose role is unknown or inactive
// with HTTP 403. It must run after auth.
func (h *Handler) authorize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isPreflight(r) {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		userID, _ := utils.GetUserIDFromContext(ctx)
		roleID, _ := utils.GetRoleIDFromContext(ctx)

		if err := h.services.AuthService.Authorize(ctx, models.Token{UserID: userID, RoleID: roleID}); err != nil {
			logger.FromRequest(r).Err(err).Int64("user_id", userID).Int64("role_id", roleID).Msg("access denied")
			h.writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func isPreflight(r *http.Request) bool {
	return r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != ""
}
