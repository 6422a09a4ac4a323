// Package migrations brings the history database schema up to date and
// carries history over from the readline file older shells wrote.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strconv"
	"strings"
)

//go:embed sql/*.sql
var sqlFiles embed.FS

// Step is one versioned change to the history database: an embedded SQL file
// or, when Func is set, Go code run inside the same transaction.
type Step struct {
	Version     int
	Description string
	SQL         string
	Func        func(tx *sql.Tx) error
}

func (s Step) String() string {
	return fmt.Sprintf("%02d_%s", s.Version, s.Description)
}

func (s Step) apply(tx *sql.Tx) error {
	if s.Func != nil {
		return s.Func(tx)
	}
	_, err := tx.Exec(s.SQL)
	return err
}

// Option configures the steps a run executes.
type Option func(*settings)

type settings struct {
	readlineHistory string
}

// WithReadlineHistory imports the lines of a readline history file at path
// the first time the database is migrated. A missing file is skipped.
func WithReadlineHistory(path string) Option {
	return func(s *settings) {
		s.readlineHistory = path
	}
}

const versionsTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version INTEGER PRIMARY KEY,
	description TEXT NOT NULL,
	applied_at TEXT NOT NULL DEFAULT (datetime('now'))
)`

// Load returns every step in version order.
func Load(opts ...Option) ([]Step, error) {
	var cfg settings
	for _, opt := range opts {
		opt(&cfg)
	}

	names, err := fs.Glob(sqlFiles, "sql/*.sql")
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}

	steps := make([]Step, 0, len(names)+1)
	for _, name := range names {
		version, description, err := parseFilename(path.Base(name))
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		body, err := sqlFiles.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		steps = append(steps, Step{Version: version, Description: description, SQL: string(body)})
	}

	steps = append(steps, Step{
		Version:     3,
		Description: "import_readline_history",
		Func:        importReadline(cfg.readlineHistory),
	})

	slices.SortFunc(steps, func(a, b Step) int { return a.Version - b.Version })
	for i := 1; i < len(steps); i++ {
		if steps[i].Version == steps[i-1].Version {
			return nil, fmt.Errorf("duplicate version %d: %s and %s", steps[i].Version, steps[i-1], steps[i])
		}
	}

	return steps, nil
}

// parseFilename splits "NN_description.sql" into its version and description.
func parseFilename(name string) (int, string, error) {
	version, description, ok := strings.Cut(strings.TrimSuffix(name, ".sql"), "_")
	if !ok {
		return 0, "", fmt.Errorf("invalid format, expected NN_description.sql")
	}

	n, err := strconv.Atoi(version)
	if err != nil {
		return 0, "", fmt.Errorf("invalid version number: %w", err)
	}
	return n, description, nil
}

// Run applies every step newer than the recorded version, each in its own
// transaction.
func Run(db *sql.DB, opts ...Option) error {
	pending, err := Pending(db, opts...)
	if err != nil {
		return err
	}

	for _, step := range pending {
		if err := applyStep(db, step); err != nil {
			return fmt.Errorf("migration %s: %w", step, err)
		}
	}
	return nil
}

func applyStep(db *sql.DB, step Step) (err error) {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = step.apply(tx); err != nil {
		return err
	}
	if _, err = tx.Exec(
		"INSERT INTO schema_migrations (version, description) VALUES (?, ?)",
		step.Version, step.Description,
	); err != nil {
		return fmt.Errorf("record migration: %w", err)
	}
	return tx.Commit()
}

// CurrentVersion returns the highest applied version, 0 for a fresh database.
func CurrentVersion(db *sql.DB) (int, error) {
	if _, err := db.Exec(versionsTable); err != nil {
		return 0, fmt.Errorf("create schema_migrations: %w", err)
	}

	var version sql.NullInt64
	if err := db.QueryRow("SELECT MAX(version) FROM schema_migrations").Scan(&version); err != nil {
		return 0, fmt.Errorf("get current version: %w", err)
	}
	return int(version.Int64), nil
}

// Pending returns the steps not yet applied.
func Pending(db *sql.DB, opts ...Option) ([]Step, error) {
	steps, err := Load(opts...)
	if err != nil {
		return nil, err
	}

	current, err := CurrentVersion(db)
	if err != nil {
		return nil, err
	}

	return slices.DeleteFunc(steps, func(s Step) bool { return s.Version <= current }), nil
}
