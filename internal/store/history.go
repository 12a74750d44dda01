package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// HistoryEntry is one recorded structural edit. Field edits are not
// logged; only operations that change a sequence's shape are.
type HistoryEntry struct {
	ID      string         `json:"id"`
	TS      time.Time      `json:"ts"`
	Type    string         `json:"type"`
	Path    string         `json:"path"`
	Payload map[string]any `json:"payload,omitempty"`
}

func (s Store) historyPath() string {
	return filepath.Join(s.Dir(), "history.sqlite")
}

func (s Store) openHistory(ctx context.Context) (*sql.DB, error) {
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", s.historyPath())
	if err != nil {
		return nil, err
	}
	// WAL enables one writer + many readers; busy_timeout avoids
	// "database is locked" flakiness when CLI and TUI overlap.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if err := migrateHistory(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func migrateHistory(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS events (
			event_id TEXT PRIMARY KEY,
			ts_unixms INTEGER NOT NULL,
			type TEXT NOT NULL,
			path TEXT NOT NULL,
			payload_json TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_events_ts ON events(ts_unixms);`,
	}
	for _, st := range stmts {
		if _, err := db.ExecContext(ctx, st); err != nil {
			return err
		}
	}
	return nil
}

// AppendHistory records a structural edit. path addresses the group the
// edit happened in ("" for the root).
func (s Store) AppendHistory(ctx context.Context, typ, path string, payload map[string]any) error {
	db, err := s.openHistory(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	pj, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx,
		`INSERT INTO events (event_id, ts_unixms, type, path, payload_json) VALUES (?, ?, ?, ?, ?)`,
		uuid.NewString(), time.Now().UnixMilli(), typ, path, string(pj),
	)
	return err
}

// ReadHistory returns the most recent entries, newest first.
// limit <= 0 means "all".
func (s Store) ReadHistory(ctx context.Context, limit int) ([]HistoryEntry, error) {
	db, err := s.openHistory(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	// rowid breaks ties between events landing in the same millisecond;
	// event ids are random and carry no order.
	q := `SELECT event_id, ts_unixms, type, path, payload_json
	FROM events ORDER BY ts_unixms DESC, rowid DESC`
	var rows *sql.Rows
	if limit > 0 {
		rows, err = db.QueryContext(ctx, q+` LIMIT ?`, limit)
	} else {
		rows, err = db.QueryContext(ctx, q)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []HistoryEntry
	for rows.Next() {
		var (
			id, typ, path, payloadJSON string
			tsMs                       int64
		)
		if err := rows.Scan(&id, &tsMs, &typ, &path, &payloadJSON); err != nil {
			return nil, err
		}
		var payload map[string]any
		if strings.TrimSpace(payloadJSON) != "" {
			_ = json.Unmarshal([]byte(payloadJSON), &payload)
		}
		out = append(out, HistoryEntry{
			ID:      id,
			TS:      time.UnixMilli(tsMs).UTC(),
			Type:    typ,
			Path:    path,
			Payload: payload,
		})
	}
	return out, rows.Err()
}
