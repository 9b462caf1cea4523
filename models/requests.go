// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CreateUserRequest is the payload accepted when a new user account is
// registered. Password is plain text on the wire and is hashed before it
// reaches the persistence layer.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64,username"`
	Email    string `json:"email" validate:"required,email,max=255"`
	FullName string `json:"full_name" validate:"max=255"`
	Password string `json:"password" validate:"required,min=8,bcryptmax"`
	RoleID   *int64 `json:"role_id" validate:"omitempty,gt=0"`
}

// UserPatch describes a partial update of a user.
// Only non-nil fields are applied. ClearRole detaches the user from its role
// and cannot be combined with RoleID.
type UserPatch struct {
	Username *string `json:"username,omitempty" validate:"omitempty,min=3,max=64,username"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	FullName *string `json:"full_name,omitempty" validate:"omitempty,max=255"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=8,bcryptmax"`
	RoleID   *int64  `json:"role_id,omitempty" validate:"omitempty,gt=0"`

	ClearRole bool `json:"clear_role,omitempty" validate:"excluded_with=RoleID"`
}

// IsEmpty reports whether the patch carries no changes at all.
func (p UserPatch) IsEmpty() bool {
	return p.Username == nil &&
		p.Email == nil &&
		p.FullName == nil &&
		p.Password == nil &&
		p.RoleID == nil &&
		!p.ClearRole
}
