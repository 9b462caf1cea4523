// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-clean-architecture/models"
)

// UserService is CRUD over user accounts. Every call works on its own unit
// of work and commits before returning.
type UserService interface {
	GetByID(ctx context.Context, userID int64) (models.User, error)
	GetWithRole(ctx context.Context, userID int64) (models.UserWithRole, error)
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, request models.CreateUserRequest) (models.User, error)
	Update(ctx context.Context, userID int64, patch models.UserPatch) (models.User, error)
	Delete(ctx context.Context, userID int64) error
}

// RoleService is a read-only view over the user_roles lookup table.
type RoleService interface {
	GetByID(ctx context.Context, roleID int64) (models.UserRoles, error)
	List(ctx context.Context) ([]models.UserRoles, error)
}

// BranchService is a read-only view over the branches table.
type BranchService interface {
	List(ctx context.Context) ([]models.Branch, error)
}

// AuthService validates bearer tokens and decides whether their holder may
// use the API.
type AuthService interface {
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	Authorize(ctx context.Context, token models.Token) error
}

// AppInfoService reports the running version and the API versions served.
type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppInfo
}

// UserServiceWrapper defines middleware composition for UserService.
// Implementations wrap an existing UserService to add behavior such as
// logging or validating.
type UserServiceWrapper interface {
	Wrap(UserService) UserService // returns a decorated UserService applying additional behavior
}
