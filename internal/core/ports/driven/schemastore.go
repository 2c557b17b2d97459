package driven

import (
	"context"

	"github.com/OlegQm/database-expert-bot/internal/core/domain"
)

// SchemaStore reads catalog metadata from the relational store. The
// schema service assembles these raw reads into a domain.SchemaGraph.
//
// Implementations must give each call an isolated read handle; a single
// shared cursor across concurrent calls is not safe.
type SchemaStore interface {
	// Connect opens the shared connection. Idempotent.
	Connect(ctx context.Context) error

	// TableNames lists all tables in the working schema, ordered by name.
	TableNames(ctx context.Context) ([]string, error)

	// Columns lists the named table's columns in ordinal order, without
	// primary-key flags.
	Columns(ctx context.Context, table string) ([]domain.Column, error)

	// PrimaryKeys returns the set of primary-key column names for the
	// named table.
	PrimaryKeys(ctx context.Context, table string) (map[string]bool, error)

	// ForeignKeys lists every foreign-key edge in the working schema, in
	// catalog scan order.
	ForeignKeys(ctx context.Context) ([]domain.ForeignKey, error)

	// TableDetails returns extended column metadata for the named table
	// in ordinal order. An unknown table yields an empty slice.
	TableDetails(ctx context.Context, table string) ([]domain.DetailColumn, error)

	// Close releases the shared connection. Safe to call twice.
	Close() error
}
