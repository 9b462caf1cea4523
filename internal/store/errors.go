// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the data context to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEntityNotFound is returned by Find when no row has the requested key
	// and by SaveChanges when an Update or Remove affects zero rows.
	ErrEntityNotFound = errors.New("entity was not found")

	// ErrConstraintViolation is the parent of every constraint error below.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrDuplicateKey is returned when a unique or primary key constraint
	// rejects a mutation (e.g. a second user with the same username).
	ErrDuplicateKey = fmt.Errorf("%w: duplicate key", ErrConstraintViolation)

	// ErrRequiredFieldMissing is returned when a NOT NULL column receives NULL.
	ErrRequiredFieldMissing = fmt.Errorf("%w: required field missing", ErrConstraintViolation)

	// ErrForeignKeyViolation is returned when a referenced row does not exist
	// (e.g. a user pointing at an unknown role).
	ErrForeignKeyViolation = fmt.Errorf("%w: foreign key violation", ErrConstraintViolation)

	// ErrUnsupportedDriver is returned when the configured database driver has
	// no registered dialect.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// data context methods when a SQL-level operation fails before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a result
	// row into an entity fails.
	ErrScanningRow = errors.New("failed to scan row")
)
