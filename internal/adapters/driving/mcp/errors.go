// Package mcp provides the MCP (Model Context Protocol) server adapter
// for the database expert tools. It exposes the knowledge-collection
// query executor and the relational schema extractor to AI assistants.
package mcp

import "errors"

// ErrMissingKnowledgeService is returned when the knowledge service is not provided.
var ErrMissingKnowledgeService = errors.New("mcp: knowledge service is required")

// ErrMissingSchemaService is returned when the schema service is not provided.
var ErrMissingSchemaService = errors.New("mcp: schema service is required")
