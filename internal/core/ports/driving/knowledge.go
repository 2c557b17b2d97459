package driving

import (
	"context"

	"github.com/OlegQm/database-expert-bot/internal/core/domain"
)

// KnowledgeService executes read operations against the knowledge
// collection and normalises every result into JSON-safe values.
type KnowledgeService interface {
	// Initialize prepares the service for queries. Idempotent; called
	// once at process startup and lazily on first Execute.
	Initialize(ctx context.Context) error

	// Execute runs a single query. It never returns a Go error: every
	// outcome, including input errors and store faults, is a tagged
	// QueryResult.
	Execute(ctx context.Context, spec domain.QuerySpec) domain.QueryResult

	// Close releases the store connection. Idempotent.
	Close(ctx context.Context) error
}
