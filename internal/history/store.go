// Package history persists recently committed tags so hosts can surface
// them as suggestions across sessions.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver, WAL-friendly

	tferrors "tagfield/internal/errors"
)

const schema = `
CREATE TABLE IF NOT EXISTS recent_tags (
	label     TEXT PRIMARY KEY,
	last_used INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_recent_tags_last_used ON recent_tags(last_used DESC);
`

// Store is a capped recent-tag store backed by SQLite. Recording a label
// that already exists refreshes its recency instead of duplicating it.
type Store struct {
	db    *sql.DB
	limit int
}

// Open creates or opens the store at path, creating parent directories as
// needed. limit caps retention; recording past the cap evicts the oldest
// labels.
func Open(ctx context.Context, path string, limit int) (*Store, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		panic("history: Open requires a non-empty path")
	}
	if limit <= 0 {
		limit = 1
	}

	if err := os.MkdirAll(filepath.Dir(trimmed), 0755); err != nil {
		return nil, tferrors.New(tferrors.CodeHistoryOpen, "create history directory", err)
	}

	db, err := sql.Open("sqlite", buildDSN(trimmed))
	if err != nil {
		return nil, tferrors.New(tferrors.CodeHistoryOpen, "open history db", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, tferrors.New(tferrors.CodeHistoryOpen, "create history schema", err)
	}

	return &Store{db: db, limit: limit}, nil
}

// buildDSN creates a WAL DSN for the given path.
func buildDSN(path string) string {
	u := url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(path),
	}
	q := url.Values{}
	q.Set("_journal_mode", "WAL")
	q.Set("_busy_timeout", "3000")
	q.Set("_foreign_keys", "on")
	u.RawQuery = q.Encode()
	return u.String()
}

// Record upserts labels with the current recency, then evicts anything past
// the retention cap. Labels keep their argument order under recency ties.
func (s *Store) Record(ctx context.Context, labels ...string) error {
	if len(labels) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return tferrors.New(tferrors.CodeHistoryQuery, "begin history tx", err)
	}
	defer func() { _ = tx.Rollback() }()

	stamp := time.Now().UnixNano()
	for i, label := range labels {
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO recent_tags (label, last_used) VALUES (?, ?)
			ON CONFLICT(label) DO UPDATE SET last_used = excluded.last_used`,
			label, stamp+int64(i))
		if err != nil {
			return tferrors.New(tferrors.CodeHistoryQuery, fmt.Sprintf("record %q", label), err)
		}
	}

	_, err = tx.ExecContext(ctx, `
		DELETE FROM recent_tags WHERE label NOT IN (
			SELECT label FROM recent_tags ORDER BY last_used DESC LIMIT ?
		)`, s.limit)
	if err != nil {
		return tferrors.New(tferrors.CodeHistoryQuery, "prune history", err)
	}

	if err := tx.Commit(); err != nil {
		return tferrors.New(tferrors.CodeHistoryQuery, "commit history tx", err)
	}
	return nil
}

// Recent returns up to n labels, most recently used first.
func (s *Store) Recent(ctx context.Context, n int) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT label FROM recent_tags ORDER BY last_used DESC LIMIT ?`, n)
	if err != nil {
		return nil, tferrors.New(tferrors.CodeHistoryQuery, "query recent tags", err)
	}
	defer rows.Close()

	var labels []string
	for rows.Next() {
		var label string
		if err := rows.Scan(&label); err != nil {
			return nil, tferrors.New(tferrors.CodeHistoryQuery, "scan recent tag", err)
		}
		labels = append(labels, label)
	}
	if err := rows.Err(); err != nil {
		return nil, tferrors.New(tferrors.CodeHistoryQuery, "iterate recent tags", err)
	}
	return labels, nil
}

// Count returns the number of retained labels.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM recent_tags`).Scan(&n)
	if err != nil {
		return 0, tferrors.New(tferrors.CodeHistoryQuery, "count recent tags", err)
	}
	return n, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
