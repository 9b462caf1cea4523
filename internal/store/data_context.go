// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-clean-architecture/internal/logger"
	"github.com/MKhiriev/go-clean-architecture/models"
)

// operation runs one queued mutation inside tx. It returns the number of
// affected rows and an optional hook run after a successful commit.
type operation func(ctx context.Context, tx *sql.Tx) (int, func(), error)

// DataContext is a unit of work over one [DB]. It is meant to live for a
// single logical operation and is not shared between requests.
type DataContext struct {
	db *DB

	mu      sync.Mutex
	pending []operation

	users     *EntitySet[models.User]
	userRoles *EntitySet[models.UserRoles]
	branches  *EntitySet[models.Branch]
}

// NewDataContext creates a data context with the User, UserRoles and Branch
// mappings registered.
func (db *DB) NewDataContext() *DataContext {
	dc := &DataContext{db: db}
	dc.users = newEntitySet(dc, userMapping())
	dc.userRoles = newEntitySet(dc, userRolesMapping())
	dc.branches = newEntitySet(dc, branchMapping())
	return dc
}

// NewUnitOfWork implements [UnitOfWorkFactory].
func (db *DB) NewUnitOfWork() UnitOfWork {
	return db.NewDataContext()
}

func (dc *DataContext) Users() EntityStore[models.User] {
	return dc.users
}

func (dc *DataContext) UserRoles() EntityStore[models.UserRoles] {
	return dc.userRoles
}

func (dc *DataContext) Branches() EntityStore[models.Branch] {
	return dc.branches
}

func (dc *DataContext) enqueue(op operation) {
	dc.mu.Lock()
	defer dc.mu.Unlock()
	dc.pending = append(dc.pending, op)
}

// Pending returns the number of queued mutations.
func (dc *DataContext) Pending() int {
	dc.mu.Lock()
	defer dc.mu.Unlock()
	return len(dc.pending)
}

// SaveChanges runs every queued mutation in a single transaction. Either all
// of them are committed or none is. The queue is cleared in both cases.
func (dc *DataContext) SaveChanges(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	dc.mu.Lock()
	pending := dc.pending
	dc.pending = nil
	dc.mu.Unlock()

	if len(pending) == 0 {
		return 0, nil
	}

	tx, err := dc.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*DataContext.SaveChanges").Msg("error beginning transaction")
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	total := 0
	hooks := make([]func(), 0, len(pending))
	for _, op := range pending {
		affected, hook, opErr := op(ctx, tx)
		if opErr != nil {
			log.Err(opErr).Str("func", "*DataContext.SaveChanges").Msg("mutation failed, rolling back")
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Err(rbErr).Str("func", "*DataContext.SaveChanges").Msg("error rolling back transaction")
			}
			return 0, opErr
		}
		total += affected
		if hook != nil {
			hooks = append(hooks, hook)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*DataContext.SaveChanges").Msg("error committing transaction")
		return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, dc.db.classify(err))
	}

	for _, hook := range hooks {
		hook()
	}

	log.Debug().Str("func", "*DataContext.SaveChanges").Int("operations", len(pending)).Int("affected", total).Msg("changes saved")
	return total, nil
}
