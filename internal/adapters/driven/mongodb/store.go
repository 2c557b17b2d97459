package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/OlegQm/database-expert-bot/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.KnowledgeStore = (*Store)(nil)

// Store reads the knowledge collection through a shared client. The
// driver is safe for concurrent reads, so no locking happens here.
type Store struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// Dial opens a client for the given connection URI. The caller owns the
// client's lifetime through Store.Close.
func Dial(uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}
	return client, nil
}

// NewStore creates a store over the named database and collection.
func NewStore(client *mongo.Client, database, collection string) *Store {
	return &Store{
		client: client,
		coll:   client.Database(database).Collection(collection),
	}
}

// Ping verifies the deployment is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// Find returns all documents matching filter. A limit of zero means
// unbounded; sort directions are forwarded to the server verbatim.
func (s *Store) Find(ctx context.Context, filter map[string]any, limit int64, sort map[string]int) ([]map[string]any, error) {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}
	if len(sort) > 0 {
		spec := make(bson.D, 0, len(sort))
		for field, direction := range sort {
			spec = append(spec, bson.E{Key: field, Value: direction})
		}
		opts.SetSort(spec)
	}

	cursor, err := s.coll.Find(ctx, toFilter(filter), opts)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cursor.Close(ctx) }()

	var docs []map[string]any
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		docs = append(docs, map[string]any(doc))
	}
	return docs, cursor.Err()
}

// FindOne returns at most one matching document, or nil when nothing
// matched.
func (s *Store) FindOne(ctx context.Context, filter map[string]any) (map[string]any, error) {
	var doc bson.M
	err := s.coll.FindOne(ctx, toFilter(filter)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return map[string]any(doc), nil
}

// Count returns the number of documents matching filter.
func (s *Store) Count(ctx context.Context, filter map[string]any) (int64, error) {
	return s.coll.CountDocuments(ctx, toFilter(filter))
}

// Close disconnects the shared client. The knowledge service guarantees
// this runs at most once.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// toFilter converts a caller filter into the driver's document form. The
// filter's semantics are opaque here; a nil filter matches everything.
func toFilter(filter map[string]any) bson.M {
	if filter == nil {
		return bson.M{}
	}
	return bson.M(filter)
}
