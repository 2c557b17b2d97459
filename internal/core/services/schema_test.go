package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OlegQm/database-expert-bot/internal/core/domain"
)

// twoTableStore models users(id PK, name) and orders(id PK, user_id FK).
func twoTableStore() *mockSchemaStore {
	return &mockSchemaStore{
		tables: []string{"orders", "users"},
		columns: map[string][]domain.Column{
			"users": {
				{Name: "id", Type: "integer", Nullable: false},
				{Name: "name", Type: "text", Nullable: true},
			},
			"orders": {
				{Name: "id", Type: "integer", Nullable: false},
				{Name: "user_id", Type: "integer", Nullable: false},
			},
		},
		pks: map[string]map[string]bool{
			"users":  {"id": true},
			"orders": {"id": true},
		},
		fks: []domain.ForeignKey{
			{FromTable: "orders", FromColumn: "user_id", ToTable: "users", ToColumn: "id"},
		},
	}
}

func TestSchemaService_Structure_NotInitialized(t *testing.T) {
	svc := NewSchemaService(twoTableStore())

	_, err := svc.Structure(context.Background())

	assert.ErrorIs(t, err, domain.ErrNotInitialized)
}

func TestSchemaService_TableDetails_NotInitialized(t *testing.T) {
	svc := NewSchemaService(twoTableStore())

	_, err := svc.TableDetails(context.Background(), "users")

	assert.ErrorIs(t, err, domain.ErrNotInitialized)
}

func TestSchemaService_Structure(t *testing.T) {
	ctx := context.Background()
	svc := NewSchemaService(twoTableStore())
	require.NoError(t, svc.Initialize(ctx))

	graph, err := svc.Structure(ctx)
	require.NoError(t, err)

	require.Len(t, graph.Tables, 2)

	users := graph.Tables["users"]
	require.Len(t, users.Columns, 2)
	assert.Equal(t, "id", users.Columns[0].Name)
	assert.True(t, users.Columns[0].IsPrimaryKey)
	assert.False(t, users.Columns[1].IsPrimaryKey)
	assert.True(t, users.Columns[1].Nullable)

	orders := graph.Tables["orders"]
	require.Len(t, orders.Columns, 2)
	assert.True(t, orders.Columns[0].IsPrimaryKey)
	assert.False(t, orders.Columns[1].IsPrimaryKey)

	require.Len(t, graph.Relations, 1)
	assert.Equal(t, domain.ForeignKey{
		FromTable:  "orders",
		FromColumn: "user_id",
		ToTable:    "users",
		ToColumn:   "id",
	}, graph.Relations[0])
}

func TestSchemaService_Structure_EmptyDatabase(t *testing.T) {
	ctx := context.Background()
	svc := NewSchemaService(&mockSchemaStore{})
	require.NoError(t, svc.Initialize(ctx))

	graph, err := svc.Structure(ctx)
	require.NoError(t, err)

	assert.Empty(t, graph.Tables)
	assert.NotNil(t, graph.Relations)
	assert.Empty(t, graph.Relations)
}

func TestSchemaService_Structure_StoreFaultPropagates(t *testing.T) {
	ctx := context.Background()
	store := twoTableStore()
	store.err = errors.New("catalog unavailable")
	svc := NewSchemaService(store)
	require.NoError(t, svc.Initialize(ctx))

	// Schema-path store faults are deliberately loud, unlike the
	// knowledge executor's tagged results.
	_, err := svc.Structure(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog unavailable")
}

func TestSchemaService_TableDetails(t *testing.T) {
	ctx := context.Background()
	def := "nextval('users_id_seq')"
	maxLen := int64(255)
	store := twoTableStore()
	store.details = map[string][]domain.DetailColumn{
		"users": {
			{Name: "id", Type: "integer", Nullable: false, Default: &def},
			{Name: "name", Type: "character varying", Nullable: true, MaxLength: &maxLen},
		},
	}
	svc := NewSchemaService(store)
	require.NoError(t, svc.Initialize(ctx))

	detail, err := svc.TableDetails(ctx, "users")
	require.NoError(t, err)

	assert.Equal(t, "users", detail.Table)
	require.Len(t, detail.Columns, 2)
	require.NotNil(t, detail.Columns[0].Default)
	assert.Equal(t, def, *detail.Columns[0].Default)
	require.NotNil(t, detail.Columns[1].MaxLength)
	assert.Equal(t, maxLen, *detail.Columns[1].MaxLength)
}

func TestSchemaService_TableDetails_UnknownTable(t *testing.T) {
	ctx := context.Background()
	svc := NewSchemaService(twoTableStore())
	require.NoError(t, svc.Initialize(ctx))

	// No existence check: an unknown table is an empty report, not an
	// error.
	detail, err := svc.TableDetails(ctx, "nonexistent")
	require.NoError(t, err)

	assert.Equal(t, "nonexistent", detail.Table)
	assert.NotNil(t, detail.Columns)
	assert.Empty(t, detail.Columns)
}

func TestSchemaService_TableDetails_MissingName(t *testing.T) {
	ctx := context.Background()
	svc := NewSchemaService(twoTableStore())
	require.NoError(t, svc.Initialize(ctx))

	_, err := svc.TableDetails(ctx, "")

	assert.ErrorIs(t, err, domain.ErrMissingTableName)
}

func TestSchemaService_Initialize_Idempotent(t *testing.T) {
	ctx := context.Background()
	store := twoTableStore()
	svc := NewSchemaService(store)

	require.NoError(t, svc.Initialize(ctx))
	require.NoError(t, svc.Initialize(ctx))
	assert.Equal(t, 1, store.connectCalls)
}

func TestSchemaService_Close(t *testing.T) {
	ctx := context.Background()
	store := twoTableStore()
	svc := NewSchemaService(store)
	require.NoError(t, svc.Initialize(ctx))

	require.NoError(t, svc.Close(ctx))
	require.NoError(t, svc.Close(ctx))
	assert.Equal(t, 1, store.closeCalls)

	// Queries after close fail loudly.
	_, err := svc.Structure(ctx)
	assert.ErrorIs(t, err, domain.ErrNotInitialized)
}

func TestSchemaService_Initialize_ConnectFault(t *testing.T) {
	store := twoTableStore()
	store.connectErr = errors.New("refused")
	svc := NewSchemaService(store)

	err := svc.Initialize(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "refused")
}
