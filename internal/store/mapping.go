// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// Mapping describes how entity T is stored in a table.
type Mapping[T any] struct {
	// Table is the table name.
	Table string
	// Key is the primary key column.
	Key string
	// GeneratedKey reports whether the database assigns the key on insert.
	// When false the key is written explicitly like any other column.
	GeneratedKey bool
	// Columns lists the non-key columns in the order used by Values.
	Columns []string
	// KeyOf returns the key value of an entity.
	KeyOf func(e *T) int64
	// SetKey stores a generated key into an entity.
	SetKey func(e *T, key int64)
	// Values returns the column values of an entity in Columns order.
	Values func(e *T) []any
	// Targets returns scan destinations for Key followed by Columns.
	Targets func(e *T) []any
}

// selectColumns returns the key followed by every mapped column.
func (m Mapping[T]) selectColumns() []string {
	return append([]string{m.Key}, m.Columns...)
}

// insertColumns returns the columns written on insert, including the key
// when it is not generated.
func (m Mapping[T]) insertColumns(e *T) ([]string, []any) {
	if m.GeneratedKey {
		return m.Columns, m.Values(e)
	}
	return m.selectColumns(), append([]any{m.KeyOf(e)}, m.Values(e)...)
}

// setMap returns the column → value map used by UPDATE statements.
func (m Mapping[T]) setMap(e *T) map[string]any {
	values := m.Values(e)
	set := make(map[string]any, len(m.Columns))
	for i, column := range m.Columns {
		set[column] = values[i]
	}
	return set
}
