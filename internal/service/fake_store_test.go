// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"maps"
	"slices"
	"sync"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-clean-architecture/internal/store"
	"github.com/MKhiriev/go-clean-architecture/models"
)

// fakeStorage is an in-memory stand-in for the database behind
// store.UnitOfWorkFactory. Every unit of work it hands out shares the rows
// but has its own pending queue.
type fakeStorage struct {
	mu       sync.Mutex
	users    map[int64]models.User
	roles    map[int64]models.UserRoles
	branches map[int64]models.Branch
	nextID   int64

	// saveErr, when set, is returned by the next SaveChanges.
	saveErr error
	saves   int
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{
		users: map[int64]models.User{},
		roles: map[int64]models.UserRoles{
			store.RoleAdministrator: {RoleID: store.RoleAdministrator, RoleName: "Administrator", IsActive: true},
			store.RoleUser:          {RoleID: store.RoleUser, RoleName: "User", IsActive: true},
			store.RoleGuest:         {RoleID: store.RoleGuest, RoleName: "Guest", IsActive: false},
		},
		branches: map[int64]models.Branch{1: {BranchID: 1, BranchName: "Head Office"}},
	}
}

func (f *fakeStorage) NewUnitOfWork() store.UnitOfWork {
	return &fakeUnitOfWork{storage: f}
}

type fakeUnitOfWork struct {
	storage *fakeStorage
	pending []func() error
}

func (u *fakeUnitOfWork) Users() store.EntityStore[models.User] {
	return &fakeEntityStore[models.User]{
		uow:    u,
		rows:   u.storage.users,
		keyOf:  func(e models.User) int64 { return e.UserID },
		setKey: func(e *models.User, id int64) { e.UserID = id },
	}
}

func (u *fakeUnitOfWork) UserRoles() store.EntityStore[models.UserRoles] {
	return &fakeEntityStore[models.UserRoles]{
		uow:   u,
		rows:  u.storage.roles,
		keyOf: func(e models.UserRoles) int64 { return e.RoleID },
	}
}

func (u *fakeUnitOfWork) Branches() store.EntityStore[models.Branch] {
	return &fakeEntityStore[models.Branch]{
		uow:    u,
		rows:   u.storage.branches,
		keyOf:  func(e models.Branch) int64 { return e.BranchID },
		setKey: func(e *models.Branch, id int64) { e.BranchID = id },
	}
}

func (u *fakeUnitOfWork) UserWithRole(_ context.Context, userID int64) (models.UserWithRole, error) {
	u.storage.mu.Lock()
	defer u.storage.mu.Unlock()

	user, ok := u.storage.users[userID]
	if !ok {
		return models.UserWithRole{}, store.ErrEntityNotFound
	}
	result := models.UserWithRole{User: user}
	if user.RoleID != nil {
		if role, ok := u.storage.roles[*user.RoleID]; ok {
			result.Role = &role
		}
	}
	return result, nil
}

func (u *fakeUnitOfWork) SaveChanges(_ context.Context) (int, error) {
	u.storage.mu.Lock()
	defer u.storage.mu.Unlock()

	pending := u.pending
	u.pending = nil
	u.storage.saves++

	if err := u.storage.saveErr; err != nil {
		u.storage.saveErr = nil
		return 0, err
	}

	for i, op := range pending {
		if err := op(); err != nil {
			return i, err
		}
	}
	return len(pending), nil
}

type fakeEntityStore[T any] struct {
	uow    *fakeUnitOfWork
	rows   map[int64]T
	keyOf  func(T) int64
	setKey func(*T, int64)
}

func (s *fakeEntityStore[T]) Add(entity *T) {
	s.uow.pending = append(s.uow.pending, func() error {
		key := s.keyOf(*entity)
		if s.setKey != nil {
			s.uow.storage.nextID++
			key = s.uow.storage.nextID
			s.setKey(entity, key)
		}
		if _, ok := s.rows[key]; ok {
			return store.ErrDuplicateKey
		}
		s.rows[key] = *entity
		return nil
	})
}

func (s *fakeEntityStore[T]) Update(entity *T) {
	s.uow.pending = append(s.uow.pending, func() error {
		key := s.keyOf(*entity)
		if _, ok := s.rows[key]; !ok {
			return store.ErrEntityNotFound
		}
		s.rows[key] = *entity
		return nil
	})
}

func (s *fakeEntityStore[T]) Remove(entity *T) {
	s.uow.pending = append(s.uow.pending, func() error {
		key := s.keyOf(*entity)
		if _, ok := s.rows[key]; !ok {
			return store.ErrEntityNotFound
		}
		delete(s.rows, key)
		return nil
	})
}

func (s *fakeEntityStore[T]) Find(_ context.Context, key int64) (T, error) {
	s.uow.storage.mu.Lock()
	defer s.uow.storage.mu.Unlock()

	entity, ok := s.rows[key]
	if !ok {
		var zero T
		return zero, store.ErrEntityNotFound
	}
	return entity, nil
}

// Query ignores filters and returns every row ordered by key.
func (s *fakeEntityStore[T]) Query(_ context.Context, _ ...sq.Sqlizer) ([]T, error) {
	s.uow.storage.mu.Lock()
	defer s.uow.storage.mu.Unlock()

	result := make([]T, 0, len(s.rows))
	for _, key := range slices.Sorted(maps.Keys(s.rows)) {
		result = append(result, s.rows[key])
	}
	return result, nil
}
