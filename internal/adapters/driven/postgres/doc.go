// Package postgres implements the SchemaStore port over a PostgreSQL
// connection, reading structure from the information_schema catalogs.
//
// The connection is opened once and shared; database/sql's pool hands
// each call an isolated connection, so concurrent catalog reads never
// share a cursor.
package postgres
