package driven

import "context"

// KnowledgeStore reads documents from the schema-less knowledge
// collection. Documents come back as raw maps whose values may still be
// store-native types (object IDs, binary wrappers, timestamps); the
// knowledge service normalises them before they cross the tool boundary.
//
// Filter and sort expressions are forwarded to the store verbatim.
type KnowledgeStore interface {
	// Ping verifies the store is reachable.
	Ping(ctx context.Context) error

	// Find returns all documents matching filter. A limit of zero means
	// unbounded. Sort maps field names to direction markers (1 or -1).
	Find(ctx context.Context, filter map[string]any, limit int64, sort map[string]int) ([]map[string]any, error)

	// FindOne returns at most one matching document. A nil document with
	// a nil error means nothing matched.
	FindOne(ctx context.Context, filter map[string]any) (map[string]any, error)

	// Count returns the number of documents matching filter.
	Count(ctx context.Context, filter map[string]any) (int64, error)

	// Close releases the underlying connection. Safe to call twice.
	Close(ctx context.Context) error
}
