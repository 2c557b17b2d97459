package domain

// Knowledge-collection operations supported by the query executor.
const (
	OpFind    = "find"
	OpFindOne = "find_one"
	OpCount   = "count"
)

// QuerySpec describes a single read against the knowledge collection.
// Filter and sort expressions are store-native and forwarded verbatim;
// the core never interprets their semantics.
type QuerySpec struct {
	// Operation is one of OpFind, OpFindOne or OpCount.
	Operation string

	// Filter selects matching documents. Empty or nil matches all.
	Filter map[string]any

	// Limit caps the number of documents returned by a find.
	// Zero means unbounded.
	Limit int64

	// Sort maps field names to direction markers (1 ascending,
	// -1 descending), forwarded to the store untouched.
	Sort map[string]int
}

// QueryResult is the tagged outcome of a knowledge query. Exactly one of
// the keys "results", "result", "count" or "error" is present. Use the
// constructors below to preserve that guarantee.
type QueryResult map[string]any

// FindResult wraps the documents returned by a find.
func FindResult(docs []map[string]any) QueryResult {
	if docs == nil {
		docs = []map[string]any{}
	}
	return QueryResult{"results": docs}
}

// FindOneResult wraps a single document, or null when none matched.
func FindOneResult(doc map[string]any) QueryResult {
	if doc == nil {
		return QueryResult{"result": nil}
	}
	return QueryResult{"result": doc}
}

// CountResult wraps a matching-document count.
func CountResult(n int64) QueryResult {
	return QueryResult{"count": n}
}

// ErrorResult wraps a recoverable failure as a tagged error payload.
func ErrorResult(msg string) QueryResult {
	return QueryResult{"error": msg}
}
