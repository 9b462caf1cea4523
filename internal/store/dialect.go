// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-clean-architecture/migrations"
)

// Dialect bundles the driver-specific settings of a database backend.
type Dialect struct {
	// DriverName is the database/sql driver name passed to sql.Open.
	DriverName string
	// GooseDialect selects the embedded migration set.
	GooseDialect string
	// Placeholder is the bind variable style used by squirrel.
	Placeholder sq.PlaceholderFormat
	// Classifier maps driver errors onto constraint sentinels.
	Classifier ErrorClassificator
}

var (
	SQLiteDialect = Dialect{
		DriverName:   "sqlite3",
		GooseDialect: migrations.DialectSQLite,
		Placeholder:  sq.Question,
		Classifier:   NewSQLiteErrorClassifier(),
	}

	PostgresDialect = Dialect{
		DriverName:   "pgx",
		GooseDialect: migrations.DialectPostgres,
		Placeholder:  sq.Dollar,
		Classifier:   NewPostgresErrorClassifier(),
	}
)

// DialectFor returns the dialect registered for driver. The empty driver
// name resolves to SQLite.
func DialectFor(driver string) (Dialect, bool) {
	switch driver {
	case SQLiteDialect.DriverName, "":
		return SQLiteDialect, true
	case PostgresDialect.DriverName:
		return PostgresDialect, true
	}
	return Dialect{}, false
}
