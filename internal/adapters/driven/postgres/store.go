package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver

	"github.com/OlegQm/database-expert-bot/internal/core/domain"
	"github.com/OlegQm/database-expert-bot/internal/core/ports/driven"
	"github.com/OlegQm/database-expert-bot/internal/logger"
)

// Ensure Store implements the interface.
var _ driven.SchemaStore = (*Store)(nil)

// workingSchema is the schema all catalog queries are scoped to.
const workingSchema = "public"

// Store reads catalog metadata from PostgreSQL.
type Store struct {
	dsn string

	mu sync.Mutex
	db *sql.DB
}

// NewStore creates a store that will connect with the given DSN on
// Connect.
func NewStore(dsn string) *Store {
	return &Store{dsn: dsn}
}

// NewStoreWithDB wraps an already-open database handle. Used by tests
// and by callers that manage the connection themselves.
func NewStoreWithDB(db *sql.DB) *Store {
	return &Store{db: db}
}

// Connect opens and verifies the shared connection. Idempotent.
func (s *Store) Connect(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return nil
	}

	db, err := sql.Open("pgx", s.dsn)
	if err != nil {
		return fmt.Errorf("opening postgres connection: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("pinging postgres: %w", err)
	}
	s.db = db
	logger.Debug("postgres connection established")
	return nil
}

// Close releases the shared connection. Safe to call twice.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *Store) conn() (*sql.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil, fmt.Errorf("database connection not established")
	}
	return s.db, nil
}

// TableNames lists all tables in the working schema, ordered by name.
func (s *Store) TableNames(ctx context.Context) ([]string, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = $1
		ORDER BY table_name
	`, workingSchema)
	if err != nil {
		return nil, fmt.Errorf("querying tables: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning table name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Columns lists the named table's columns in ordinal order.
func (s *Store) Columns(ctx context.Context, table string) ([]domain.Column, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT column_name, data_type, is_nullable
		FROM information_schema.columns
		WHERE table_schema = $1 AND table_name = $2
		ORDER BY ordinal_position
	`, workingSchema, table)
	if err != nil {
		return nil, fmt.Errorf("querying columns: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var columns []domain.Column
	for rows.Next() {
		var col domain.Column
		var nullable string
		if err := rows.Scan(&col.Name, &col.Type, &nullable); err != nil {
			return nil, fmt.Errorf("scanning column: %w", err)
		}
		col.Nullable = nullable == "YES"
		columns = append(columns, col)
	}
	return columns, rows.Err()
}

// PrimaryKeys returns the set of primary-key column names for the named
// table, via the constraint catalogs.
func (s *Store) PrimaryKeys(ctx context.Context, table string) (map[string]bool, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT kcu.column_name
		FROM information_schema.table_constraints tc
		JOIN information_schema.key_column_usage kcu
		  ON tc.constraint_name = kcu.constraint_name
		WHERE tc.table_schema = $1
		  AND tc.table_name = $2
		  AND tc.constraint_type = 'PRIMARY KEY'
	`, workingSchema, table)
	if err != nil {
		return nil, fmt.Errorf("querying primary keys: %w", err)
	}
	defer func() { _ = rows.Close() }()

	keys := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning primary key: %w", err)
		}
		keys[name] = true
	}
	return keys, rows.Err()
}

// ForeignKeys lists every foreign-key edge in the working schema in
// catalog scan order.
func (s *Store) ForeignKeys(ctx context.Context) ([]domain.ForeignKey, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT tc.table_name  AS from_table,
		       kcu.column_name AS from_column,
		       ccu.table_name  AS to_table,
		       ccu.column_name AS to_column
		FROM information_schema.table_constraints AS tc
		JOIN information_schema.key_column_usage AS kcu
		  ON tc.constraint_name = kcu.constraint_name
		JOIN information_schema.constraint_column_usage AS ccu
		  ON ccu.constraint_name = tc.constraint_name
		WHERE tc.constraint_type = 'FOREIGN KEY'
		  AND tc.table_schema = $1
	`, workingSchema)
	if err != nil {
		return nil, fmt.Errorf("querying foreign keys: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var edges []domain.ForeignKey
	for rows.Next() {
		var fk domain.ForeignKey
		if err := rows.Scan(&fk.FromTable, &fk.FromColumn, &fk.ToTable, &fk.ToColumn); err != nil {
			return nil, fmt.Errorf("scanning foreign key: %w", err)
		}
		edges = append(edges, fk)
	}
	return edges, rows.Err()
}

// TableDetails returns extended column metadata for the named table in
// ordinal order. An unknown table simply yields no rows.
func (s *Store) TableDetails(ctx context.Context, table string) ([]domain.DetailColumn, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT column_name,
		       data_type,
		       is_nullable,
		       column_default,
		       character_maximum_length,
		       numeric_precision,
		       numeric_scale
		FROM information_schema.columns
		WHERE table_schema = $1 AND table_name = $2
		ORDER BY ordinal_position
	`, workingSchema, table)
	if err != nil {
		return nil, fmt.Errorf("querying table details: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var columns []domain.DetailColumn
	for rows.Next() {
		var (
			col       domain.DetailColumn
			nullable  string
			def       sql.NullString
			maxLen    sql.NullInt64
			precision sql.NullInt64
			scale     sql.NullInt64
		)
		if err := rows.Scan(&col.Name, &col.Type, &nullable, &def, &maxLen, &precision, &scale); err != nil {
			return nil, fmt.Errorf("scanning table details: %w", err)
		}
		col.Nullable = nullable == "YES"
		if def.Valid {
			col.Default = &def.String
		}
		if maxLen.Valid {
			col.MaxLength = &maxLen.Int64
		}
		if precision.Valid {
			col.Precision = &precision.Int64
		}
		if scale.Valid {
			col.Scale = &scale.Int64
		}
		columns = append(columns, col)
	}
	return columns, rows.Err()
}
