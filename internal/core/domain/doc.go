// Package domain defines the core entities for the database expert server.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - QuerySpec: A caller-supplied knowledge-collection query
//   - QueryResult: The tagged outcome of a knowledge query
//   - SchemaGraph: Tables, columns and foreign-key relations of the
//     relational store
//   - TableDetail: Extended column metadata for a single table
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
//
// Store-native values (ObjectIDs, binary payloads, timestamps) travel
// through domain types as plain `any` values; decoding and rewriting them
// is the job of the normaliser and the store adapters.
package domain
