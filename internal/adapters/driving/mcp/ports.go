package mcp

import (
	"github.com/OlegQm/database-expert-bot/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Knowledge executes queries against the knowledge collection.
	Knowledge driving.KnowledgeService

	// Schema reconstructs the relational store's structure.
	Schema driving.SchemaService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Knowledge == nil {
		return ErrMissingKnowledgeService
	}
	if p.Schema == nil {
		return ErrMissingSchemaService
	}
	return nil
}
