// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-clean-architecture/internal/config"
	"github.com/MKhiriev/go-clean-architecture/internal/logger"
)

// Storages groups the persistence dependencies handed to the service layer.
type Storages struct {
	DB                *DB
	UnitOfWorkFactory UnitOfWorkFactory
}

// NewStorages connects to the configured database, applies migrations and
// seeds reference data.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	db, err := Connect(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if err = db.Initialize(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	return &Storages{
		DB:                db,
		UnitOfWorkFactory: db,
	}, nil
}

// Close releases the database connection pool.
func (s *Storages) Close() error {
	return s.DB.Close()
}
