// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-clean-architecture/internal/config"
	"github.com/MKhiriev/go-clean-architecture/internal/logger"
	"github.com/MKhiriev/go-clean-architecture/models"
)

// newTestDB opens a private in-memory SQLite database with the schema and
// seed rows applied.
func newTestDB(t *testing.T) *DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	cfg := config.DB{Driver: "sqlite3", DSN: "file:" + name + "?mode=memory&cache=shared"}

	db, err := NewConnectSQLite(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Initialize(context.Background()))
	return db
}

func int64Ptr(v int64) *int64 {
	return &v
}

func newUser(username string, roleID *int64) *models.User {
	ts := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	return &models.User{
		Username:     username,
		Email:        username + "@example.com",
		FullName:     "Test " + username,
		PasswordHash: "$2a$10$hash",
		RoleID:       roleID,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}
}

func assertSameUser(t *testing.T, want, got models.User) {
	t.Helper()
	assert.Equal(t, want.UserID, got.UserID)
	assert.Equal(t, want.Username, got.Username)
	assert.Equal(t, want.Email, got.Email)
	assert.Equal(t, want.FullName, got.FullName)
	assert.Equal(t, want.PasswordHash, got.PasswordHash)
	assert.Equal(t, want.RoleID, got.RoleID)
	assert.True(t, want.CreatedAt.Equal(got.CreatedAt), "created_at: want %s, got %s", want.CreatedAt, got.CreatedAt)
	assert.True(t, want.UpdatedAt.Equal(got.UpdatedAt), "updated_at: want %s, got %s", want.UpdatedAt, got.UpdatedAt)
}

func TestInitialize_SeedsReferenceRows(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	// a second start must not duplicate seed rows
	require.NoError(t, db.Initialize(ctx))

	roles, err := db.NewDataContext().UserRoles().Query(ctx)
	require.NoError(t, err)
	assert.Equal(t, SeedRoles, roles)

	branches, err := db.NewDataContext().Branches().Query(ctx)
	require.NoError(t, err)
	require.Len(t, branches, 1)
	assert.Equal(t, int64(1), branches[0].BranchID)
	assert.Equal(t, "Head Office", branches[0].BranchName)
}

func TestDataContext_AddThenFind(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := newUser("alice", int64Ptr(RoleUser))
	dc := db.NewDataContext()
	dc.Users().Add(user)
	assert.Equal(t, 1, dc.Pending())

	affected, err := dc.SaveChanges(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, affected)
	assert.Equal(t, 0, dc.Pending())
	require.NotZero(t, user.UserID)

	found, err := db.NewDataContext().Users().Find(ctx, user.UserID)
	require.NoError(t, err)
	assertSameUser(t, *user, found)
}

func TestDataContext_UserWithoutRole(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := newUser("norole", nil)
	dc := db.NewDataContext()
	dc.Users().Add(user)
	_, err := dc.SaveChanges(ctx)
	require.NoError(t, err)

	found, err := dc.Users().Find(ctx, user.UserID)
	require.NoError(t, err)
	assert.Nil(t, found.RoleID)

	withRole, err := dc.UserWithRole(ctx, user.UserID)
	require.NoError(t, err)
	assert.Nil(t, withRole.Role)
	assert.Equal(t, "norole", withRole.Username)
}

func TestDataContext_UserWithRole(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := newUser("guest", int64Ptr(RoleGuest))
	dc := db.NewDataContext()
	dc.Users().Add(user)
	_, err := dc.SaveChanges(ctx)
	require.NoError(t, err)

	withRole, err := dc.UserWithRole(ctx, user.UserID)
	require.NoError(t, err)
	assertSameUser(t, *user, withRole.User)
	require.NotNil(t, withRole.Role)
	assert.Equal(t, models.UserRoles{RoleID: RoleGuest, RoleName: "Guest", IsActive: false}, *withRole.Role)

	_, err = dc.UserWithRole(ctx, user.UserID+100)
	assert.ErrorIs(t, err, ErrEntityNotFound)
}

func TestDataContext_UpdateAndRemove(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := newUser("bob", int64Ptr(RoleUser))
	dc := db.NewDataContext()
	dc.Users().Add(user)
	_, err := dc.SaveChanges(ctx)
	require.NoError(t, err)

	user.FullName = "Robert"
	user.RoleID = int64Ptr(RoleAdministrator)
	user.UpdatedAt = user.UpdatedAt.Add(time.Hour)
	dc.Users().Update(user)
	affected, err := dc.SaveChanges(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, affected)

	found, err := dc.Users().Find(ctx, user.UserID)
	require.NoError(t, err)
	assertSameUser(t, *user, found)

	dc.Users().Remove(user)
	affected, err = dc.SaveChanges(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, affected)

	_, err = dc.Users().Find(ctx, user.UserID)
	assert.ErrorIs(t, err, ErrEntityNotFound)
}

func TestDataContext_MissingEntity(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	missing := newUser("ghost", nil)
	missing.UserID = 4242

	dc := db.NewDataContext()
	dc.Users().Remove(missing)
	_, err := dc.SaveChanges(ctx)
	assert.ErrorIs(t, err, ErrEntityNotFound)
	assert.Equal(t, 0, dc.Pending())

	dc.Users().Update(missing)
	_, err = dc.SaveChanges(ctx)
	assert.ErrorIs(t, err, ErrEntityNotFound)
}

func TestDataContext_SaveChangesIsAtomic(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	first := newUser("carol", int64Ptr(RoleUser))
	duplicate := newUser("carol", int64Ptr(RoleUser))
	duplicate.Email = "other@example.com"

	dc := db.NewDataContext()
	dc.Users().Add(first)
	dc.Users().Add(duplicate)

	_, err := dc.SaveChanges(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateKey)
	assert.ErrorIs(t, err, ErrConstraintViolation)
	assert.Zero(t, first.UserID)
	assert.Equal(t, 0, dc.Pending())

	users, err := dc.Users().Query(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestDataContext_ForeignKeyViolation(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	dc := db.NewDataContext()
	dc.Users().Add(newUser("dave", int64Ptr(99)))

	_, err := dc.SaveChanges(ctx)
	assert.ErrorIs(t, err, ErrForeignKeyViolation)
	assert.ErrorIs(t, err, ErrConstraintViolation)
}

func TestDataContext_QueryWithFilters(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	dc := db.NewDataContext()
	dc.Users().Add(newUser("admin1", int64Ptr(RoleAdministrator)))
	dc.Users().Add(newUser("user1", int64Ptr(RoleUser)))
	dc.Users().Add(newUser("user2", int64Ptr(RoleUser)))
	affected, err := dc.SaveChanges(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, affected)

	users, err := dc.Users().Query(ctx, sq.Eq{"role_id": RoleUser})
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "user1", users[0].Username)
	assert.Equal(t, "user2", users[1].Username)

	active, err := dc.UserRoles().Query(ctx, sq.Eq{"is_active": true})
	require.NoError(t, err)
	assert.Len(t, active, 2)
}

func TestDataContext_SaveChangesWithNothingQueued(t *testing.T) {
	db := newTestDB(t)

	affected, err := db.NewDataContext().SaveChanges(context.Background())
	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestDataContext_BranchKeyIsGenerated(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	branch := &models.Branch{BranchName: "North", Address: "1 Main St"}
	dc := db.NewDataContext()
	dc.Branches().Add(branch)
	_, err := dc.SaveChanges(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), branch.BranchID)

	found, err := dc.Branches().Find(ctx, branch.BranchID)
	require.NoError(t, err)
	assert.Equal(t, *branch, found)
}
