// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-clean-architecture/internal/config"
	"github.com/MKhiriev/go-clean-architecture/internal/logger"
	"github.com/MKhiriev/go-clean-architecture/migrations"
)

// DB is an open database handle together with the dialect it speaks.
type DB struct {
	*sql.DB
	dialect            Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB wraps an already opened *sql.DB. It is used by the connectors below
// and by tests that inject sqlmock connections.
func NewDB(conn *sql.DB, dialect Dialect, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		dialect:            dialect,
		errorClassificator: dialect.Classifier,
		logger:             log,
	}
}

// Connect opens the database selected by cfg.Driver. An empty driver selects
// SQLite.
func Connect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dialect, ok := DialectFor(cfg.Driver)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}

	if dialect.DriverName == PostgresDialect.DriverName {
		return NewConnectPostgres(ctx, cfg, log)
	}
	return NewConnectSQLite(ctx, cfg, log)
}

// Dialect returns the dialect the connection was opened with.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Initialize applies pending migrations and inserts the seed rows. It is
// safe to call on every start.
func (db *DB) Initialize(ctx context.Context) error {
	if err := migrations.Migrate(ctx, db.DB, db.dialect.GooseDialect); err != nil {
		return err
	}

	if err := Seed(ctx, db.NewDataContext()); err != nil {
		return fmt.Errorf("error seeding database: %w", err)
	}

	db.logger.Info().Str("func", "*DB.Initialize").Str("dialect", db.dialect.DriverName).Msg("database initialized")
	return nil
}

func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.dialect.Placeholder)
}

func (db *DB) classify(err error) error {
	if db.errorClassificator == nil {
		return err
	}
	return db.errorClassificator.Classify(err)
}
