// Package store is a deliberately simple example graph.Sink: plain
// Postgres tables over database/sql and github.com/lib/pq, not the
// teacher's Apache AGE/cypher protocol. SPEC_FULL.md scopes the graph
// database itself out of the core; this package exists to give the pack's
// lib/pq dependency a concrete home and to let cmd/codeindex run an actual
// end-to-end pass against a real store.
package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/graphlang/codeindex/pkg/graph"
)

// Config configures the Postgres connection.
type Config struct {
	DSN             string
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

// PostgresSink persists nodes and edges as plain rows, upserting on ID so
// repeat runs over an unchanged tree are idempotent rather than
// accumulating duplicates.
type PostgresSink struct {
	db *sql.DB
}

// Open connects to Postgres and ensures the nodes/edges tables exist.
func Open(cfg Config) (*PostgresSink, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	s := &PostgresSink{db: db}
	if err := s.migrate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *PostgresSink) migrate() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS code_nodes (
	id           UUID PRIMARY KEY,
	label        TEXT NOT NULL,
	name         TEXT NOT NULL,
	fqn          TEXT NOT NULL,
	file_path    TEXT NOT NULL,
	start_line   INTEGER NOT NULL,
	start_column INTEGER NOT NULL,
	end_line     INTEGER NOT NULL,
	end_column   INTEGER NOT NULL,
	visibility   TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS code_nodes_fqn_idx ON code_nodes (fqn);

CREATE TABLE IF NOT EXISTS code_edges (
	id          UUID PRIMARY KEY,
	type        TEXT NOT NULL,
	from_fqn    TEXT NOT NULL,
	to_fqn      TEXT NOT NULL,
	to_external BOOLEAN NOT NULL
);
CREATE INDEX IF NOT EXISTS code_edges_from_idx ON code_edges (from_fqn);
CREATE INDEX IF NOT EXISTS code_edges_to_idx ON code_edges (to_fqn);
`)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// Write upserts every node and edge in batch within a single transaction,
// so a batch (one file's worth of graph output) lands atomically.
func (s *PostgresSink) Write(batch graph.Batch) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	nodeStmt, err := tx.Prepare(`
INSERT INTO code_nodes (id, label, name, fqn, file_path, start_line, start_column, end_line, end_column, visibility)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (id) DO UPDATE SET
	label = EXCLUDED.label, name = EXCLUDED.name, fqn = EXCLUDED.fqn,
	file_path = EXCLUDED.file_path, start_line = EXCLUDED.start_line,
	start_column = EXCLUDED.start_column, end_line = EXCLUDED.end_line,
	end_column = EXCLUDED.end_column, visibility = EXCLUDED.visibility
`)
	if err != nil {
		return fmt.Errorf("prepare node upsert: %w", err)
	}
	defer nodeStmt.Close()

	for _, n := range batch.Nodes {
		if _, err := nodeStmt.Exec(n.ID, string(n.Label), n.Name, n.FQN, n.FilePath,
			n.StartLine, n.StartColumn, n.EndLine, n.EndColumn, n.Visibility); err != nil {
			return fmt.Errorf("upsert node %s: %w", n.FQN, err)
		}
	}

	edgeStmt, err := tx.Prepare(`
INSERT INTO code_edges (id, type, from_fqn, to_fqn, to_external)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (id) DO UPDATE SET
	type = EXCLUDED.type, from_fqn = EXCLUDED.from_fqn,
	to_fqn = EXCLUDED.to_fqn, to_external = EXCLUDED.to_external
`)
	if err != nil {
		return fmt.Errorf("prepare edge upsert: %w", err)
	}
	defer edgeStmt.Close()

	for _, e := range batch.Edges {
		if _, err := edgeStmt.Exec(e.ID, string(e.Type), e.FromFQN, e.ToFQN, e.ToExternal); err != nil {
			return fmt.Errorf("upsert edge %s->%s: %w", e.FromFQN, e.ToFQN, err)
		}
	}

	return tx.Commit()
}

// Flush is a no-op: Write commits per batch already.
func (s *PostgresSink) Flush() error { return nil }

// Close releases the underlying connection pool.
func (s *PostgresSink) Close() error { return s.db.Close() }
