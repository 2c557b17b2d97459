package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/OlegQm/database-expert-bot/internal/core/domain"
	"github.com/OlegQm/database-expert-bot/internal/core/ports/driven"
	"github.com/OlegQm/database-expert-bot/internal/core/ports/driving"
	"github.com/OlegQm/database-expert-bot/internal/logger"
)

// Ensure SchemaService implements the interface.
var _ driving.SchemaService = (*SchemaService)(nil)

// SchemaService assembles catalog metadata reads into a schema graph.
//
// In contrast to KnowledgeService, faults here propagate as Go errors: a
// query before Initialize indicates a caller-ordering bug and fails
// loudly instead of being folded into the result.
type SchemaService struct {
	mu    sync.Mutex
	state state
	store driven.SchemaStore
}

// NewSchemaService creates a schema service over the given catalog store.
func NewSchemaService(store driven.SchemaStore) *SchemaService {
	return &SchemaService{store: store}
}

// Initialize opens the shared relational connection. Idempotent.
func (s *SchemaService) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case stateReady:
		logger.Debug("schema service already initialized")
		return nil
	case stateClosed:
		return domain.ErrClosed
	}

	if err := s.store.Connect(ctx); err != nil {
		return fmt.Errorf("connecting to relational store: %w", err)
	}
	s.state = stateReady
	logger.Info("relational store connection established")
	return nil
}

// ready reports whether schema queries may proceed.
func (s *SchemaService) ready() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != stateReady {
		return domain.ErrNotInitialized
	}
	return nil
}

// Structure returns the full schema graph: every table with its columns
// in ordinal order and primary-key flags set, plus all foreign-key
// edges. Tables are enumerated alphabetically; relations keep catalog
// scan order.
func (s *SchemaService) Structure(ctx context.Context) (*domain.SchemaGraph, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	names, err := s.store.TableNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing tables: %w", err)
	}

	graph := &domain.SchemaGraph{
		Tables:    make(map[string]domain.Table, len(names)),
		Relations: []domain.ForeignKey{},
	}

	for _, name := range names {
		columns, err := s.store.Columns(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("listing columns of %s: %w", name, err)
		}
		pks, err := s.store.PrimaryKeys(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("listing primary keys of %s: %w", name, err)
		}
		for i := range columns {
			columns[i].IsPrimaryKey = pks[columns[i].Name]
		}
		if columns == nil {
			columns = []domain.Column{}
		}
		graph.Tables[name] = domain.Table{Columns: columns}
	}

	relations, err := s.store.ForeignKeys(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing foreign keys: %w", err)
	}
	if relations != nil {
		graph.Relations = relations
	}

	logger.Info("assembled schema graph: %d tables, %d relations",
		len(graph.Tables), len(graph.Relations))
	return graph, nil
}

// TableDetails returns the extended column report for one table. A table
// unknown to the catalog yields an empty column list, not an error; no
// existence check is made before querying.
func (s *SchemaService) TableDetails(ctx context.Context, table string) (*domain.TableDetail, error) {
	if table == "" {
		return nil, domain.ErrMissingTableName
	}
	if err := s.ready(); err != nil {
		return nil, err
	}

	columns, err := s.store.TableDetails(ctx, table)
	if err != nil {
		return nil, fmt.Errorf("describing table %s: %w", table, err)
	}
	if columns == nil {
		columns = []domain.DetailColumn{}
	}
	return &domain.TableDetail{Table: table, Columns: columns}, nil
}

// Close releases the shared connection. Idempotent.
func (s *SchemaService) Close(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == stateClosed {
		return nil
	}
	s.state = stateClosed
	if err := s.store.Close(); err != nil {
		return fmt.Errorf("closing relational store: %w", err)
	}
	logger.Info("relational store connection closed")
	return nil
}
