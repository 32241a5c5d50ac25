package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store wraps the SQLite database holding durable progress records.
type Store struct {
	db *sqlx.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS progress_records (
	namespace  TEXT PRIMARY KEY,
	data       TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL
);`

// Open connects to the SQLite database at dsn, applies the recommended
// pragmas, and creates the schema if needed.
func Open(dsn string) (*Store, error) {
	db, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	// Single-user app; SQLite allows one writer.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the underlying *sqlx.DB for raw queries.
func (s *Store) DB() *sqlx.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// ProgressRepo returns a progress repository backed by this store.
func (s *Store) ProgressRepo() *ProgressRepo {
	return &ProgressRepo{db: s.db}
}

// applyPragmas configures SQLite for single-user performance.
func applyPragmas(db *sqlx.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. VERSEMIND_DB environment variable
// 2. $XDG_DATA_HOME/versemind/versemind.db
// 3. ~/.local/share/versemind/versemind.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("VERSEMIND_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "versemind", "versemind.db")
	return p, EnsureDir(p)
}

// DefaultDeckDir resolves the directory for imported local decks,
// beside the database file.
func DefaultDeckDir() (string, error) {
	dbPath, err := DefaultDBPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(dbPath), "decks"), nil
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
