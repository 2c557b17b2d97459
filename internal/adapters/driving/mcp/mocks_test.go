package mcp

import (
	"context"

	"github.com/OlegQm/database-expert-bot/internal/core/domain"
)

// mockKnowledgeService is a mock implementation of driving.KnowledgeService.
type mockKnowledgeService struct {
	result  domain.QueryResult
	gotSpec domain.QuerySpec
}

func (m *mockKnowledgeService) Initialize(_ context.Context) error {
	return nil
}

func (m *mockKnowledgeService) Execute(_ context.Context, spec domain.QuerySpec) domain.QueryResult {
	m.gotSpec = spec
	return m.result
}

func (m *mockKnowledgeService) Close(_ context.Context) error {
	return nil
}

// mockSchemaService is a mock implementation of driving.SchemaService.
type mockSchemaService struct {
	graph  *domain.SchemaGraph
	detail *domain.TableDetail
	err    error

	gotTable string
}

func (m *mockSchemaService) Initialize(_ context.Context) error {
	return nil
}

func (m *mockSchemaService) Structure(_ context.Context) (*domain.SchemaGraph, error) {
	return m.graph, m.err
}

func (m *mockSchemaService) TableDetails(_ context.Context, table string) (*domain.TableDetail, error) {
	m.gotTable = table
	return m.detail, m.err
}

func (m *mockSchemaService) Close(_ context.Context) error {
	return nil
}
