package domain

import "errors"

// Domain errors represent caller-ordering and input failures.
// Data-level failures on the knowledge path are never surfaced as Go
// errors; they become tagged QueryResult values instead.
var (
	// ErrNotInitialized indicates a schema query was issued before
	// Initialize completed. This is a programming error in the caller
	// and is deliberately loud rather than swallowed.
	ErrNotInitialized = errors.New("tool not initialized")

	// ErrClosed indicates an operation was attempted after Close.
	ErrClosed = errors.New("tool closed")

	// ErrMissingTableName indicates a table-details request without a
	// table name.
	ErrMissingTableName = errors.New("table name is required")
)
