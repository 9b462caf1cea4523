// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UserRoles describes an authorization role stored in the user_roles lookup
// table. Users reference roles by RoleID; the role row itself is owned by the
// lookup table.
//
// RoleID is unique and stable. A role with IsActive set to false never grants
// access, even when a user or a token still references it.
type UserRoles struct {
	RoleID   int64  `json:"role_id"`
	RoleName string `json:"role_name"`
	IsActive bool   `json:"is_active"`
}

// TableName returns the name of the database table
// associated with the UserRoles model.
func (r UserRoles) TableName() string {
	return "user_roles"
}
