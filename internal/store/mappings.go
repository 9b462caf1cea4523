// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-clean-architecture/models"

func userMapping() Mapping[models.User] {
	return Mapping[models.User]{
		Table:        models.User{}.TableName(),
		Key:          "user_id",
		GeneratedKey: true,
		Columns: []string{
			"username",
			"email",
			"full_name",
			"password_hash",
			"role_id",
			"created_at",
			"updated_at",
		},
		KeyOf:  func(u *models.User) int64 { return u.UserID },
		SetKey: func(u *models.User, key int64) { u.UserID = key },
		Values: func(u *models.User) []any {
			return []any{u.Username, u.Email, u.FullName, u.PasswordHash, u.RoleID, u.CreatedAt, u.UpdatedAt}
		},
		Targets: func(u *models.User) []any {
			return []any{&u.UserID, &u.Username, &u.Email, &u.FullName, &u.PasswordHash, &u.RoleID, &u.CreatedAt, &u.UpdatedAt}
		},
	}
}

// role ids are stable references carried in tokens, so they are never generated
func userRolesMapping() Mapping[models.UserRoles] {
	return Mapping[models.UserRoles]{
		Table:   models.UserRoles{}.TableName(),
		Key:     "role_id",
		Columns: []string{"role_name", "is_active"},
		KeyOf:   func(r *models.UserRoles) int64 { return r.RoleID },
		SetKey:  func(r *models.UserRoles, key int64) { r.RoleID = key },
		Values: func(r *models.UserRoles) []any {
			return []any{r.RoleName, r.IsActive}
		},
		Targets: func(r *models.UserRoles) []any {
			return []any{&r.RoleID, &r.RoleName, &r.IsActive}
		},
	}
}

func branchMapping() Mapping[models.Branch] {
	return Mapping[models.Branch]{
		Table:        models.Branch{}.TableName(),
		Key:          "branch_id",
		GeneratedKey: true,
		Columns:      []string{"branch_name", "address"},
		KeyOf:        func(b *models.Branch) int64 { return b.BranchID },
		SetKey:       func(b *models.Branch, key int64) { b.BranchID = key },
		Values: func(b *models.Branch) []any {
			return []any{b.BranchName, b.Address}
		},
		Targets: func(b *models.Branch) []any {
			return []any{&b.BranchID, &b.BranchName, &b.Address}
		},
	}
}
