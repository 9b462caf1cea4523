// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-clean-architecture/internal/logger"
)

// EntitySet is the [EntityStore] implementation bound to a [DataContext].
type EntitySet[T any] struct {
	dc      *DataContext
	mapping Mapping[T]
}

func newEntitySet[T any](dc *DataContext, mapping Mapping[T]) *EntitySet[T] {
	return &EntitySet[T]{dc: dc, mapping: mapping}
}

// Add queues an INSERT. When the key is generated it is written back into
// entity after the surrounding SaveChanges commits.
func (s *EntitySet[T]) Add(entity *T) {
	m := s.mapping
	s.dc.enqueue(func(ctx context.Context, tx *sql.Tx) (int, func(), error) {
		columns, values := m.insertColumns(entity)
		insert := s.dc.db.builder().Insert(m.Table).Columns(columns...).Values(values...)

		if !m.GeneratedKey {
			affected, err := s.exec(ctx, tx, insert)
			return affected, nil, err
		}

		query, args, err := insert.Suffix("RETURNING " + m.Key).ToSql()
		if err != nil {
			return 0, nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		var key int64
		if err = tx.QueryRowContext(ctx, query, args...).Scan(&key); err != nil {
			return 0, nil, fmt.Errorf("%w: insert into %s: %w", ErrExecutingStatement, m.Table, s.dc.db.classify(err))
		}

		return 1, func() { m.SetKey(entity, key) }, nil
	})
}

// Update queues an UPDATE of every mapped column, matched by key.
func (s *EntitySet[T]) Update(entity *T) {
	m := s.mapping
	s.dc.enqueue(func(ctx context.Context, tx *sql.Tx) (int, func(), error) {
		key := m.KeyOf(entity)
		update := s.dc.db.builder().Update(m.Table).SetMap(m.setMap(entity)).Where(sq.Eq{m.Key: key})

		affected, err := s.exec(ctx, tx, update)
		if err != nil {
			return 0, nil, err
		}
		if affected == 0 {
			return 0, nil, fmt.Errorf("%w: %s %s=%d", ErrEntityNotFound, m.Table, m.Key, key)
		}
		return affected, nil, nil
	})
}

// Remove queues a DELETE matched by key.
func (s *EntitySet[T]) Remove(entity *T) {
	m := s.mapping
	s.dc.enqueue(func(ctx context.Context, tx *sql.Tx) (int, func(), error) {
		key := m.KeyOf(entity)
		remove := s.dc.db.builder().Delete(m.Table).Where(sq.Eq{m.Key: key})

		affected, err := s.exec(ctx, tx, remove)
		if err != nil {
			return 0, nil, err
		}
		if affected == 0 {
			return 0, nil, fmt.Errorf("%w: %s %s=%d", ErrEntityNotFound, m.Table, m.Key, key)
		}
		return affected, nil, nil
	})
}

// Find loads the entity with the given key or returns [ErrEntityNotFound].
func (s *EntitySet[T]) Find(ctx context.Context, key int64) (T, error) {
	found, err := s.Query(ctx, sq.Eq{s.mapping.Key: key})
	if err != nil {
		var zero T
		return zero, err
	}
	if len(found) == 0 {
		var zero T
		return zero, fmt.Errorf("%w: %s %s=%d", ErrEntityNotFound, s.mapping.Table, s.mapping.Key, key)
	}

	return found[0], nil
}

// Query returns every entity matching all filters, ordered by key.
func (s *EntitySet[T]) Query(ctx context.Context, filters ...sq.Sqlizer) ([]T, error) {
	log := logger.FromContext(ctx)
	m := s.mapping

	query := s.dc.db.builder().
		Select(m.selectColumns()...).
		From(m.Table).
		OrderBy(m.Key)
	for _, filter := range filters {
		query = query.Where(filter)
	}

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.dc.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		log.Err(err).Str("func", "*EntitySet.Query").Str("table", m.Table).Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	result := make([]T, 0)
	for rows.Next() {
		var entity T
		if err = rows.Scan(m.Targets(&entity)...); err != nil {
			log.Err(err).Str("func", "*EntitySet.Query").Str("table", m.Table).Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		result = append(result, entity)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return result, nil
}

func (s *EntitySet[T]) exec(ctx context.Context, tx *sql.Tx, statement sq.Sqlizer) (int, error) {
	query, args, err := statement.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrExecutingStatement, s.mapping.Table, s.dc.db.classify(err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return int(affected), nil
}

// isNoRows reports whether err means an empty single-row result.
func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
