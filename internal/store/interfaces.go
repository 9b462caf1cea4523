// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-clean-architecture/models"
)

// EntityStore is the per-entity surface of a unit of work. Add, Update and
// Remove only queue mutations; nothing reaches the database until
// [UnitOfWork.SaveChanges]. Find and Query read committed state.
type EntityStore[T any] interface {
	Add(entity *T)
	Update(entity *T)
	Remove(entity *T)
	Find(ctx context.Context, key int64) (T, error)
	Query(ctx context.Context, filters ...sq.Sqlizer) ([]T, error)
}

// UnitOfWork groups the entity stores and commits their queued mutations
// atomically.
type UnitOfWork interface {
	Users() EntityStore[models.User]
	UserRoles() EntityStore[models.UserRoles]
	Branches() EntityStore[models.Branch]

	// UserWithRole loads a user together with its role through an explicit
	// left join. The role is nil when the user has none.
	UserWithRole(ctx context.Context, userID int64) (models.UserWithRole, error)

	// SaveChanges applies all queued mutations in one transaction and
	// returns the number of affected rows.
	SaveChanges(ctx context.Context) (int, error)
}

// UnitOfWorkFactory creates a fresh unit of work per logical operation.
type UnitOfWorkFactory interface {
	NewUnitOfWork() UnitOfWork
}
