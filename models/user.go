// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the unique identifier of the user generated by the database
	// on insert.
	UserID int64 `json:"user_id"`

	// Username is the unique user login identifier.
	Username string `json:"username"`

	// Email is the unique contact address of the user.
	Email string `json:"email"`

	// FullName is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	FullName string `json:"full_name"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// It is never serialized.
	PasswordHash string `json:"-"`

	// RoleID references the role in the user_roles lookup table.
	// A nil value means the user has no role assigned.
	RoleID *int64 `json:"role_id"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last profile or credential change.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserWithRole is the explicit lookup join of a [User] and the role it
// references. Role is nil when the user has no role assigned.
type UserWithRole struct {
	User

	// Role is the joined role record, if any.
	Role *UserRoles `json:"role"`
}
