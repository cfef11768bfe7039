// Package sqlite provides a SQLite-backed KVStore.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/prep/internal/domain"
	"github.com/bnema/prep/internal/ports"
	_ "modernc.org/sqlite"
)

const (
	dbDirMode = 0o700

	createTableSQL = `CREATE TABLE IF NOT EXISTS kv (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at INTEGER NOT NULL
)`
	selectSQL = `SELECT value FROM kv WHERE key = ?`
	upsertSQL = `INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	deleteSQL = `DELETE FROM kv WHERE key = ?`
)

// Store persists values in a single kv table.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

var _ ports.KVStore = (*Store)(nil)

// Open opens (creating if needed) the database at path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(cleanPath), dbDirMode); err != nil {
		return nil, fmt.Errorf("create sqlite directory: %w", err)
	}

	dsn := cleanPath + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(createTableSQL); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create kv table: %w", err)
	}

	return &Store{sqlDB: sqlDB, now: time.Now}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := s.check(key); err != nil {
		return "", err
	}

	var value string
	err := s.sqlDB.QueryRowContext(ctx, selectSQL, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("sqlite value %q: %w", key, domain.ErrKeyNotFound)
		}
		return "", fmt.Errorf("read sqlite value %q: %w", key, err)
	}

	return value, nil
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.check(key); err != nil {
		return err
	}

	if _, err := s.sqlDB.ExecContext(ctx, upsertSQL, key, value, s.now().UTC().UnixMilli()); err != nil {
		return fmt.Errorf("write sqlite value %q: %w", key, err)
	}

	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.check(key); err != nil {
		return err
	}

	if _, err := s.sqlDB.ExecContext(ctx, deleteSQL, key); err != nil {
		return fmt.Errorf("delete sqlite value %q: %w", key, err)
	}

	return nil
}

func (s *Store) check(key string) error {
	if s == nil || s.sqlDB == nil {
		return errors.New("storage is not configured")
	}
	if strings.TrimSpace(key) == "" {
		return errors.New("kv key is empty")
	}

	return nil
}
