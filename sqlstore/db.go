// Package sqlstore implements carteira.Store on a relational database through
// database/sql: SQLite (modernc.org/sqlite) for local files, PostgreSQL (pgx)
// for postgres:// URLs.
package sqlstore

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/etnz/carteira"
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver "pgx"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

//go:embed schema.sql
var schemaSQL string

// Dialect is the SQL flavor of the database.
type Dialect string

const (
	SQLite   Dialect = "sqlite"
	Postgres Dialect = "postgres"
)

// DialectOf returns the dialect for a data source name.
func DialectOf(dsn string) Dialect {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return Postgres
	}
	return SQLite
}

// rebind rewrites ? placeholders into $n for PostgreSQL.
func (d Dialect) rebind(query string) string {
	if d != Postgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Store is a carteira.Store backed by database/sql.
type Store struct {
	db      *sql.DB
	dialect Dialect
	log     zerolog.Logger
}

var _ carteira.Store = (*Store)(nil)

// Open connects to dsn, creates the schema if needed and returns the store.
//
// dsn is either a postgres:// URL or a SQLite file path (":memory:" for a
// transient database).
func Open(ctx context.Context, dsn string, log zerolog.Logger) (*Store, error) {
	dialect := DialectOf(dsn)

	var conn *sql.DB
	var err error
	switch dialect {
	case Postgres:
		conn, err = sql.Open("pgx", dsn)
	default:
		conn, err = openSQLite(dsn)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := conn.PingContext(pingCtx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := New(conn, dialect, log)
	if err := s.migrate(ctx); err != nil {
		conn.Close()
		return nil, err
	}
	s.log.Debug().Str("dialect", string(dialect)).Msg("database ready")
	return s, nil
}

func openSQLite(path string) (*sql.DB, error) {
	if path != ":memory:" && !strings.HasPrefix(path, "file:") {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve database path to absolute: %w", err)
		}
		if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
		path = absPath
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	conn, err := sql.Open("sqlite", path+sep+"_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, err
	}
	// A single connection: the application is single threaded and an
	// in-memory database lives in its connection.
	conn.SetMaxOpenConns(1)
	return conn, nil
}

// New wraps an open connection. The schema must already exist, see Open.
func New(db *sql.DB, dialect Dialect, log zerolog.Logger) *Store {
	return &Store{
		db:      db,
		dialect: dialect,
		log:     log.With().Str("repo", "sql").Logger(),
	}
}

// migrate creates the tables, statement by statement.
func (s *Store) migrate(ctx context.Context) error {
	for _, stmt := range strings.Split(schemaSQL, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

// Close releases the connection.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return s.db.ExecContext(ctx, s.dialect.rebind(query), args...)
}

func (s *Store) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return s.db.QueryContext(ctx, s.dialect.rebind(query), args...)
}

func (s *Store) queryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return s.db.QueryRowContext(ctx, s.dialect.rebind(query), args...)
}
