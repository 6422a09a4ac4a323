package migrations_test

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/odoo-term/odterm/internal/store/migrations"
)

func TestLoad(t *testing.T) {
	all, err := migrations.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if len(all) < 3 {
		t.Fatalf("expected at least 3 migrations, got %d", len(all))
	}
	if all[2].Func == nil || all[2].SQL != "" {
		t.Errorf("step %s should be a Go step", all[2])
	}

	// Verify strictly increasing order
	for i := 1; i < len(all); i++ {
		if all[i].Version <= all[i-1].Version {
			t.Errorf("migration %d (v%d) not after %d (v%d)",
				i, all[i].Version, i-1, all[i-1].Version)
		}
	}
}

func TestRunIdempotent(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() { _ = db.Close() }()

	// First run
	if err := migrations.Run(db); err != nil {
		t.Fatalf("first run: %v", err)
	}

	v1, err := migrations.CurrentVersion(db)
	if err != nil {
		t.Fatalf("get version: %v", err)
	}

	// Second run - should be idempotent
	if err := migrations.Run(db); err != nil {
		t.Fatalf("second run: %v", err)
	}

	v2, err := migrations.CurrentVersion(db)
	if err != nil {
		t.Fatalf("get version: %v", err)
	}

	if v1 != v2 {
		t.Errorf("version changed: %d -> %d", v1, v2)
	}
}

func TestPending(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() { _ = db.Close() }()

	all, _ := migrations.Load()

	// Before run: all pending
	pending, err := migrations.Pending(db)
	if err != nil {
		t.Fatalf("pending before: %v", err)
	}
	if len(pending) != len(all) {
		t.Errorf("expected %d pending, got %d", len(all), len(pending))
	}

	// After run: none pending
	if err := migrations.Run(db); err != nil {
		t.Fatalf("run: %v", err)
	}
	pending, _ = migrations.Pending(db)
	if len(pending) != 0 {
		t.Errorf("expected 0 pending, got %d", len(pending))
	}
}

func TestTablesCreated(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() { _ = db.Close() }()

	if err := migrations.Run(db); err != nil {
		t.Fatalf("run: %v", err)
	}

	tables := []string{"schema_migrations", "history", "call_status", "calls"}
	for _, table := range tables {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err == sql.ErrNoRows {
			t.Errorf("table %s not created", table)
		} else if err != nil {
			t.Errorf("check %s: %v", table, err)
		}
	}
}

func TestCallStatusSeeded(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() { _ = db.Close() }()

	if err := migrations.Run(db); err != nil {
		t.Fatalf("run: %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM call_status").Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 call statuses, got %d", count)
	}
}

func TestParseFilename(t *testing.T) {
	version, desc, err := migrations.ParseFilenameForTest("07_add_index.sql")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if version != 7 || desc != "add_index" {
		t.Errorf("got %d %q", version, desc)
	}

	if _, _, err := migrations.ParseFilenameForTest("noversion.sql"); err == nil {
		t.Error("expected error for missing separator")
	}
	if _, _, err := migrations.ParseFilenameForTest("xx_name.sql"); err == nil {
		t.Error("expected error for non-numeric version")
	}
}

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func historyLines(t *testing.T, db *sql.DB) []string {
	t.Helper()
	rows, err := db.Query("SELECT line FROM history ORDER BY id")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	defer func() { _ = rows.Close() }()

	var lines []string
	for rows.Next() {
		var line string
		if err := rows.Scan(&line); err != nil {
			t.Fatalf("scan: %v", err)
		}
		lines = append(lines, line)
	}
	return lines
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".odoo-term-history")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestRun_ImportsReadlineHistory(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "gnu readline",
			content: "connect -h localhost\n\nread -m res.partner -i 1\n",
			want:    []string{"connect -h localhost", "read -m res.partner -i 1"},
		},
		{
			name:    "libedit",
			content: "_HiStOrY_V2_\nconnect\\040-h\\040localhost\nsearch\\040-m\\040res.partner\n",
			want:    []string{"connect -h localhost", "search -m res.partner"},
		},
		{
			name:    "timestamps skipped",
			content: "#1700000000\nhelp\r\n",
			want:    []string{"help"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := openDB(t)
			path := writeFile(t, tt.content)

			if err := migrations.Run(db, migrations.WithReadlineHistory(path)); err != nil {
				t.Fatalf("run: %v", err)
			}

			got := historyLines(t, db)
			if len(got) != len(tt.want) {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d: got %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestRun_ImportsReadlineHistoryOnce(t *testing.T) {
	db := openDB(t)
	path := writeFile(t, "help\n")

	for i := 0; i < 2; i++ {
		if err := migrations.Run(db, migrations.WithReadlineHistory(path)); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
	}

	if got := historyLines(t, db); len(got) != 1 {
		t.Errorf("expected one imported line, got %q", got)
	}
}

func TestRun_SkipsMissingOrDatabaseHistory(t *testing.T) {
	dbFile := filepath.Join(t.TempDir(), "old.db")
	old, err := sql.Open("sqlite3", dbFile)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := migrations.Run(old); err != nil {
		t.Fatalf("run old: %v", err)
	}
	_ = old.Close()

	if !migrations.IsDatabaseFile(dbFile) {
		t.Fatalf("%s should be recognised as a database", dbFile)
	}

	for _, path := range []string{filepath.Join(t.TempDir(), "missing"), dbFile} {
		db := openDB(t)
		if err := migrations.Run(db, migrations.WithReadlineHistory(path)); err != nil {
			t.Fatalf("run with %s: %v", path, err)
		}
		if got := historyLines(t, db); len(got) != 0 {
			t.Errorf("%s: expected no lines, got %q", path, got)
		}
	}
}

func TestIsDatabaseFile_TextFile(t *testing.T) {
	if migrations.IsDatabaseFile(writeFile(t, "_HiStOrY_V2_\nhelp\n")) {
		t.Error("readline file reported as a database")
	}
	if migrations.IsDatabaseFile(writeFile(t, "")) {
		t.Error("empty file reported as a database")
	}
}

func TestUnvis(t *testing.T) {
	tests := map[string]string{
		`write\040-v\040{}`: "write -v {}",
		`a\\b`:              `a\b`,
		`tail\04`:           `tail\04`,
		"plain":             "plain",
	}
	for in, want := range tests {
		if got := migrations.UnvisForTest(in); got != want {
			t.Errorf("unvis(%q) = %q, want %q", in, got, want)
		}
	}
}
