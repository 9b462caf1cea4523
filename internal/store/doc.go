// Package store implements the data access layer.
//
// A [DataContext] is a unit of work: entity sets queue Add, Update and
// Remove mutations, and [DataContext.SaveChanges] applies them inside a
// single transaction. Reads (Find, Query, UserWithRole) go straight to the
// database. SQLite (mattn/go-sqlite3) and PostgreSQL (pgx) are supported
// through [Dialect] values; driver errors are translated into the
// constraint sentinels declared in errors.go.
package store
