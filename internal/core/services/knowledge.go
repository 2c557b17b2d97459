package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/OlegQm/database-expert-bot/internal/core/domain"
	"github.com/OlegQm/database-expert-bot/internal/core/ports/driven"
	"github.com/OlegQm/database-expert-bot/internal/core/ports/driving"
	"github.com/OlegQm/database-expert-bot/internal/logger"
	"github.com/OlegQm/database-expert-bot/internal/normaliser"
)

// Ensure KnowledgeService implements the interface.
var _ driving.KnowledgeService = (*KnowledgeService)(nil)

// KnowledgeService executes find/find_one/count reads against the
// knowledge collection and normalises every returned document.
//
// Execute never returns a Go error: input problems and store faults are
// surfaced as tagged QueryResult values so a malformed tool call can
// never become a protocol-level failure.
type KnowledgeService struct {
	mu    sync.Mutex
	state state
	store driven.KnowledgeStore
}

// NewKnowledgeService creates a knowledge service over the given store.
func NewKnowledgeService(store driven.KnowledgeStore) *KnowledgeService {
	return &KnowledgeService{store: store}
}

// Initialize verifies the store is reachable and marks the service
// ready. Idempotent; concurrent first calls initialise exactly once.
func (s *KnowledgeService) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case stateReady:
		logger.Debug("knowledge service already initialized")
		return nil
	case stateClosed:
		return domain.ErrClosed
	}

	if err := s.store.Ping(ctx); err != nil {
		return fmt.Errorf("pinging knowledge store: %w", err)
	}
	s.state = stateReady
	logger.Info("knowledge collection initialized")
	return nil
}

// Execute runs a single query. Initialisation is lazy: the first Execute
// after construction brings the service up.
func (s *KnowledgeService) Execute(ctx context.Context, spec domain.QuerySpec) domain.QueryResult {
	if err := s.Initialize(ctx); err != nil {
		return storeFault(err)
	}

	filter := spec.Filter
	if filter == nil {
		filter = map[string]any{}
	}

	logger.Info("executing operation: %s with filter: %v, limit: %d, sort: %v",
		spec.Operation, filter, spec.Limit, spec.Sort)

	if spec.Operation == "" {
		logger.Error("operation is required but not provided")
		return domain.ErrorResult("Operation is required")
	}

	switch spec.Operation {
	case domain.OpFind:
		docs, err := s.store.Find(ctx, filter, spec.Limit, spec.Sort)
		if err != nil {
			return storeFault(err)
		}
		results := make([]map[string]any, 0, len(docs))
		for _, doc := range docs {
			results = append(results, normaliser.NormaliseDocument(doc))
		}
		logger.Info("found %d documents", len(results))
		return domain.FindResult(results)

	case domain.OpFindOne:
		doc, err := s.store.FindOne(ctx, filter)
		if err != nil {
			return storeFault(err)
		}
		if doc == nil {
			logger.Info("no document found")
		} else {
			logger.Info("found one document")
		}
		return domain.FindOneResult(normaliser.NormaliseDocument(doc))

	case domain.OpCount:
		count, err := s.store.Count(ctx, filter)
		if err != nil {
			return storeFault(err)
		}
		logger.Info("counted %d documents", count)
		return domain.CountResult(count)

	default:
		logger.Error("operation '%s' is not supported", spec.Operation)
		return domain.ErrorResult(fmt.Sprintf("Operation '%s' is not supported", spec.Operation))
	}
}

// Close releases the store connection. Idempotent.
func (s *KnowledgeService) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == stateClosed {
		return nil
	}
	s.state = stateClosed
	if err := s.store.Close(ctx); err != nil {
		return fmt.Errorf("closing knowledge store: %w", err)
	}
	logger.Info("knowledge store connection closed")
	return nil
}

// storeFault translates an underlying store failure into the tagged
// error payload callers expect; raw store errors never cross the tool
// boundary.
func storeFault(err error) domain.QueryResult {
	logger.Error("error executing knowledge operation: %v", err)
	return domain.ErrorResult("Database operation failed: " + err.Error())
}
