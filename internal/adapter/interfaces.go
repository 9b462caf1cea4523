// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the user management API.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrNotFound] for
// 404, [ErrUnauthorized] for 401). The server's error message is kept in the
// wrapped error text.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-clean-architecture/models"
)

// UsersAPI is the client side of the HTTP API.
type UsersAPI interface {
	// SetToken stores the bearer token attached to every protected request.
	SetToken(token string)

	// Token returns the bearer token currently stored, or "".
	Token() string

	// SetAPIVersion selects the X-API-Version sent with every request. An
	// empty version lets the server apply its default.
	SetAPIVersion(version string)

	Version(ctx context.Context) (models.AppInfo, error)

	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)

	// GetUserWithRole requests the v2 representation regardless of
	// SetAPIVersion.
	GetUserWithRole(ctx context.Context, userID int64) (models.UserWithRole, error)

	CreateUser(ctx context.Context, request models.CreateUserRequest) (models.User, error)
	UpdateUser(ctx context.Context, userID int64, patch models.UserPatch) (models.User, error)
	DeleteUser(ctx context.Context, userID int64) error

	ListRoles(ctx context.Context) ([]models.UserRoles, error)
	ListBranches(ctx context.Context) ([]models.Branch, error)
}
