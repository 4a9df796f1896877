// Package postgres implements the store interfaces against a
// PostgreSQL database accessed through database/sql with the pgx
// driver. Uniqueness and referential integrity are enforced by the
// schema; this package translates the resulting driver errors into
// store sentinels.
package postgres
