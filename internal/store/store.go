package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/odoo-term/odterm/internal/domain"
	"github.com/odoo-term/odterm/internal/log"
	"github.com/odoo-term/odterm/internal/store/migrations"
)

// Store wraps the SQLite history database. It holds both the prompt
// history and the remote call journal and implements domain.HistoryStore.
type Store struct {
	db   *sql.DB
	path string
}

// ErrNotDatabase is returned when the history path holds a file that is not
// an SQLite database, such as a readline history file.
var ErrNotDatabase = errors.New("not a history database")

// New opens the database at path and runs pending migrations.
func New(path string, opts ...migrations.Option) (*Store, error) {
	log.Debug("store: opening database at %s", path)

	if err := checkExisting(path); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err = configureSQLite(db, path); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("configure database: %w", err)
	}

	setDBPermissions(path)

	if err = migrations.Run(db, opts...); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// NewWithDB creates a Store from an existing, migrated connection.
func NewWithDB(db *sql.DB) *Store {
	return &Store{db: db}
}

// DB returns the underlying database connection.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Path returns the database file path, empty for injected connections.
func (s *Store) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// configureSQLite applies connection pragmas. A single connection keeps
// in-memory databases shared across queries.
func configureSQLite(db *sql.DB, path string) error {
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return err
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return err
	}
	if path == ":memory:" {
		return nil
	}
	_, err := db.Exec("PRAGMA journal_mode = WAL")
	return err
}

// checkExisting refuses a non-empty file without the SQLite header, so a
// readline history file is never opened as a database.
func checkExisting(path string) error {
	if path == ":memory:" {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil || info.IsDir() || info.Size() == 0 {
		return nil
	}
	if !migrations.IsDatabaseFile(path) {
		return fmt.Errorf("%s: %w", path, ErrNotDatabase)
	}
	return nil
}

// setDBPermissions sets restrictive file permissions on the database and its WAL/SHM files.
func setDBPermissions(path string) {
	if path == ":memory:" {
		return
	}
	_ = os.Chmod(path, 0600)
	_ = os.Chmod(path+"-wal", 0600)
	_ = os.Chmod(path+"-shm", 0600)
}

var _ domain.HistoryStore = (*Store)(nil)
