// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and other common operations.
package utils

import (
	"context"

	"github.com/MKhiriev/go-clean-architecture/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

var (
	// UserIDCtxKey is the key used to store the authenticated user identifier
	// in the context.
	//
	// Example of writing a value to the context:
	//
	//	ctx := context.WithValue(ctx, utils.UserIDCtxKey, int64(42))
	UserIDCtxKey = contextKey("userID")

	// RoleIDCtxKey is the key used to store the role_id claim of the
	// authenticated caller.
	RoleIDCtxKey = contextKey("roleID")

	// APIVersionCtxKey is the key used to store the negotiated API version.
	APIVersionCtxKey = contextKey("apiVersion")
)

// GetUserIDFromContext retrieves the user identifier from the context.
//
// Returns the user ID of type int64 and an ok flag:
//   - ok == true : value is found and has the correct int64 type
//   - ok == false: value is missing or has an unexpected type
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// GetRoleIDFromContext retrieves the caller's role identifier from the context.
func GetRoleIDFromContext(ctx context.Context) (int64, bool) {
	roleID, ok := ctx.Value(RoleIDCtxKey).(int64)
	return roleID, ok
}

// WithAPIVersion returns a copy of ctx carrying the negotiated API version.
func WithAPIVersion(ctx context.Context, v models.APIVersion) context.Context {
	return context.WithValue(ctx, APIVersionCtxKey, v)
}

// GetAPIVersionFromContext retrieves the negotiated API version. When none
// is stored it returns [models.APIVersion1] and false.
func GetAPIVersionFromContext(ctx context.Context) (models.APIVersion, bool) {
	v, ok := ctx.Value(APIVersionCtxKey).(models.APIVersion)
	if !ok {
		return models.APIVersion1, false
	}
	return v, true
}
