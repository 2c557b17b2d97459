package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/OlegQm/database-expert-bot/internal/core/domain"
)

// SearchKnowledgeInput is the input schema for the knowledge search tool.
type SearchKnowledgeInput struct {
	Operation string         `json:"operation" jsonschema:"the operation to perform: find, find_one or count"`
	Filter    map[string]any `json:"filter,omitempty" jsonschema:"MongoDB filter document; empty matches all"`
	Limit     int64          `json:"limit,omitempty" jsonschema:"maximum number of documents to return for find (0 = no limit)"`
	Sort      map[string]int `json:"sort,omitempty" jsonschema:"field names mapped to sort direction (1 ascending, -1 descending)"`
}

// TableDetailsInput is the input schema for the table details tool.
type TableDetailsInput struct {
	TableName string `json:"table_name" jsonschema:"name of the table to describe"`
}

// StructureInput is the (empty) input schema for the structure tool.
type StructureInput struct{}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "mongodb_search_knowledge",
		Description: "Query the MongoDB knowledge collection (find, find_one, count)",
	}, s.handleSearchKnowledge)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "postgres_get_structure",
		Description: "Return the structure of the whole PostgreSQL database: tables, columns and relations",
	}, s.handleGetStructure)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "postgres_get_table_details",
		Description: "Return detailed column information about a single PostgreSQL table",
	}, s.handleGetTableDetails)
}

// handleSearchKnowledge handles the knowledge search tool invocation.
// Every outcome, including bad input and store faults, comes back as a
// tagged result payload; this handler never fails the protocol call.
func (s *Server) handleSearchKnowledge(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchKnowledgeInput,
) (*mcp.CallToolResult, domain.QueryResult, error) {
	result := s.ports.Knowledge.Execute(ctx, domain.QuerySpec{
		Operation: input.Operation,
		Filter:    input.Filter,
		Limit:     input.Limit,
		Sort:      input.Sort,
	})
	return nil, result, nil
}

// handleGetStructure handles the schema graph tool invocation. Errors
// here (including calls before initialisation) propagate loudly.
func (s *Server) handleGetStructure(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ StructureInput,
) (*mcp.CallToolResult, domain.SchemaGraph, error) {
	graph, err := s.ports.Schema.Structure(ctx)
	if err != nil {
		return nil, domain.SchemaGraph{}, err
	}
	return nil, *graph, nil
}

// handleGetTableDetails handles the table details tool invocation.
func (s *Server) handleGetTableDetails(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input TableDetailsInput,
) (*mcp.CallToolResult, domain.TableDetail, error) {
	detail, err := s.ports.Schema.TableDetails(ctx, input.TableName)
	if err != nil {
		return nil, domain.TableDetail{}, err
	}
	return nil, *detail, nil
}
