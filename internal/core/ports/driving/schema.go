package driving

import (
	"context"

	"github.com/OlegQm/database-expert-bot/internal/core/domain"
)

// SchemaService reconstructs the relational store's structure from
// catalog metadata.
//
// Unlike KnowledgeService, data-path faults here are returned as Go
// errors: a schema query before Initialize is a caller-ordering bug and
// fails loudly with domain.ErrNotInitialized.
type SchemaService interface {
	// Initialize opens the shared relational connection. Idempotent.
	Initialize(ctx context.Context) error

	// Structure returns the full schema graph.
	Structure(ctx context.Context) (*domain.SchemaGraph, error)

	// TableDetails returns extended column metadata for one table. An
	// unknown table yields an empty column list, not an error.
	TableDetails(ctx context.Context, table string) (*domain.TableDetail, error)

	// Close releases the shared connection. Idempotent.
	Close(ctx context.Context) error
}
