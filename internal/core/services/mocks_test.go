package services

import (
	"context"

	"github.com/OlegQm/database-expert-bot/internal/core/domain"
)

// mockKnowledgeStore is a mock implementation of driven.KnowledgeStore.
type mockKnowledgeStore struct {
	docs  []map[string]any
	doc   map[string]any
	count int64

	pingErr  error
	err      error
	closeErr error

	pingCalls  int
	closeCalls int

	gotFilter map[string]any
	gotLimit  int64
	gotSort   map[string]int
}

func (m *mockKnowledgeStore) Ping(_ context.Context) error {
	m.pingCalls++
	return m.pingErr
}

func (m *mockKnowledgeStore) Find(_ context.Context, filter map[string]any, limit int64, sort map[string]int) ([]map[string]any, error) {
	m.gotFilter = filter
	m.gotLimit = limit
	m.gotSort = sort
	return m.docs, m.err
}

func (m *mockKnowledgeStore) FindOne(_ context.Context, filter map[string]any) (map[string]any, error) {
	m.gotFilter = filter
	return m.doc, m.err
}

func (m *mockKnowledgeStore) Count(_ context.Context, filter map[string]any) (int64, error) {
	m.gotFilter = filter
	return m.count, m.err
}

func (m *mockKnowledgeStore) Close(_ context.Context) error {
	m.closeCalls++
	return m.closeErr
}

// mockSchemaStore is a mock implementation of driven.SchemaStore.
type mockSchemaStore struct {
	tables  []string
	columns map[string][]domain.Column
	pks     map[string]map[string]bool
	fks     []domain.ForeignKey
	details map[string][]domain.DetailColumn

	connectErr error
	err        error

	connectCalls int
	closeCalls   int
}

func (m *mockSchemaStore) Connect(_ context.Context) error {
	m.connectCalls++
	return m.connectErr
}

func (m *mockSchemaStore) TableNames(_ context.Context) ([]string, error) {
	return m.tables, m.err
}

func (m *mockSchemaStore) Columns(_ context.Context, table string) ([]domain.Column, error) {
	return m.columns[table], m.err
}

func (m *mockSchemaStore) PrimaryKeys(_ context.Context, table string) (map[string]bool, error) {
	return m.pks[table], m.err
}

func (m *mockSchemaStore) ForeignKeys(_ context.Context) ([]domain.ForeignKey, error) {
	return m.fks, m.err
}

func (m *mockSchemaStore) TableDetails(_ context.Context, table string) ([]domain.DetailColumn, error) {
	return m.details[table], m.err
}

func (m *mockSchemaStore) Close() error {
	m.closeCalls++
	return nil
}
