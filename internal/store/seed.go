// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-clean-architecture/models"
)

// Well-known role ids inserted by [Seed].
const (
	RoleAdministrator int64 = 1
	RoleUser          int64 = 2
	RoleGuest         int64 = 3
)

// SeedRoles are the reference roles present in every database.
var SeedRoles = []models.UserRoles{
	{RoleID: RoleAdministrator, RoleName: "Administrator", IsActive: true},
	{RoleID: RoleUser, RoleName: "User", IsActive: true},
	{RoleID: RoleGuest, RoleName: "Guest", IsActive: false},
}

// SeedBranches are the reference branches present in every database.
var SeedBranches = []models.Branch{
	{BranchName: "Head Office"},
}

// Seed inserts the reference rows that are still missing and commits them
// through uow. Existing rows are left untouched, so it can run on every start.
func Seed(ctx context.Context, uow UnitOfWork) error {
	for _, role := range SeedRoles {
		_, err := uow.UserRoles().Find(ctx, role.RoleID)
		if errors.Is(err, ErrEntityNotFound) {
			uow.UserRoles().Add(&role)
			continue
		}
		if err != nil {
			return fmt.Errorf("error looking up role %d: %w", role.RoleID, err)
		}
	}

	for _, branch := range SeedBranches {
		found, err := uow.Branches().Query(ctx, sq.Eq{"branch_name": branch.BranchName})
		if err != nil {
			return fmt.Errorf("error looking up branch %q: %w", branch.BranchName, err)
		}
		if len(found) == 0 {
			uow.Branches().Add(&branch)
		}
	}

	if _, err := uow.SaveChanges(ctx); err != nil {
		return err
	}

	return nil
}
