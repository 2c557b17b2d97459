// Package driven defines the interfaces that core calls OUT to the
// backing stores.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and store adapters implement
// them:
//
//   - KnowledgeStore: reads against the schema-less knowledge collection
//   - SchemaStore: catalog metadata reads against the relational store
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
