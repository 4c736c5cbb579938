// Package postgres implements the store interfaces on PostgreSQL through
// database/sql and the pgx driver. It also embeds the goose migrations that
// create the profiles, assignments and students tables.
//
// Every store accepts a store.DBTX so it can run against a *sql.DB or a
// *sql.Tx. Driver errors are translated with MapError into the store
// package's sentinel errors before they leave this package.
package postgres
