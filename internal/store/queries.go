// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-clean-architecture/internal/logger"
	"github.com/MKhiriev/go-clean-architecture/models"
)

// buildUserWithRoleQuery joins a user with its role. The role side is
// nullable because role_id is optional.
func buildUserWithRoleQuery(builder sq.StatementBuilderType, userID int64) (string, []any, error) {
	return builder.
		Select(
			"u.user_id",
			"u.username",
			"u.email",
			"u.full_name",
			"u.password_hash",
			"u.role_id",
			"u.created_at",
			"u.updated_at",
			"r.role_id",
			"r.role_name",
			"r.is_active",
		).
		From("users u").
		LeftJoin("user_roles r ON r.role_id = u.role_id").
		Where(sq.Eq{"u.user_id": userID}).
		ToSql()
}

// UserWithRole implements [UnitOfWork].
func (dc *DataContext) UserWithRole(ctx context.Context, userID int64) (models.UserWithRole, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUserWithRoleQuery(dc.db.builder(), userID)
	if err != nil {
		return models.UserWithRole{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		result   models.UserWithRole
		roleID   sql.NullInt64
		roleName sql.NullString
		isActive sql.NullBool
	)
	targets := append(userMapping().Targets(&result.User), &roleID, &roleName, &isActive)

	err = dc.db.QueryRowContext(ctx, query, args...).Scan(targets...)
	if isNoRows(err) {
		return models.UserWithRole{}, fmt.Errorf("%w: users user_id=%d", ErrEntityNotFound, userID)
	}
	if err != nil {
		log.Err(err).Str("func", "*DataContext.UserWithRole").Int64("user_id", userID).Msg("error loading user with role")
		return models.UserWithRole{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if roleID.Valid {
		result.Role = &models.UserRoles{
			RoleID:   roleID.Int64,
			RoleName: roleName.String,
			IsActive: isActive.Bool,
		}
	}

	return result, nil
}
