package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/odoo-term/odterm/internal/domain"
)

// AppendHistory stores lines in order inside one transaction.
func (s *Store) AppendHistory(lines []string) error {
	if len(lines) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.Prepare("INSERT INTO history (line, created_at) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("prepare: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	for _, line := range lines {
		if _, err := stmt.Exec(line, now); err != nil {
			return fmt.Errorf("insert history: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	committed = true
	return nil
}

// RecentHistory returns up to limit most recent entries, oldest first.
// A limit of zero or less returns everything.
func (s *Store) RecentHistory(limit int) ([]domain.HistoryEntry, error) {
	query := "SELECT id, line, created_at FROM history ORDER BY id DESC"
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []domain.HistoryEntry
	for rows.Next() {
		var (
			e  domain.HistoryEntry
			ts string
		)
		if err := rows.Scan(&e.ID, &e.Line, &ts); err != nil {
			return nil, err
		}
		if e.CreatedAt, err = parseTime(ts); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	reverse(out)
	return out, nil
}

// TrimHistory deletes all but the newest keep entries.
func (s *Store) TrimHistory(keep int) (int64, error) {
	if keep <= 0 {
		return 0, nil
	}
	result, err := s.db.Exec(
		`DELETE FROM history WHERE id NOT IN (
			SELECT id FROM history ORDER BY id DESC LIMIT ?
		)`, keep)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// CountHistory returns the number of stored lines.
func (s *Store) CountHistory() (int64, error) {
	var count sql.NullInt64
	if err := s.db.QueryRow("SELECT COUNT(*) FROM history").Scan(&count); err != nil {
		return 0, err
	}
	return count.Int64, nil
}

func parseTime(ts string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", ts, err)
	}
	return t, nil
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
