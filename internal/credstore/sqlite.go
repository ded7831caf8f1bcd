package credstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore persists credentials in a local SQLite file so configured
// backends survive restarts.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteStore, error) {
	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open credential db: %w", err)
	}
	db.SetMaxOpenConns(1)

	schema := `CREATE TABLE IF NOT EXISTS credentials (
		backend    TEXT PRIMARY KEY,
		api_key    TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init credential schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Get(ctx context.Context, backend string) (string, bool, error) {
	var key string
	err := s.db.QueryRowContext(ctx,
		"SELECT api_key FROM credentials WHERE backend = ?", backend).Scan(&key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get credential: %w", err)
	}
	return key, true, nil
}

func (s *SQLiteStore) Put(ctx context.Context, backend, apiKey string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO credentials (backend, api_key, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(backend) DO UPDATE SET api_key = excluded.api_key, updated_at = excluded.updated_at`,
		backend, apiKey, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("store credential: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, backend string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM credentials WHERE backend = ?", backend)
	if err != nil {
		return fmt.Errorf("delete credential: %w", err)
	}
	return nil
}

func (s *SQLiteStore) List(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT backend FROM credentials ORDER BY backend")
	if err != nil {
		return nil, fmt.Errorf("list credentials: %w", err)
	}
	defer rows.Close()

	var backends []string
	for rows.Next() {
		var b string
		if err := rows.Scan(&b); err != nil {
			return nil, fmt.Errorf("scan credential row: %w", err)
		}
		backends = append(backends, b)
	}
	return backends, rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
