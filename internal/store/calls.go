package store

import (
	"time"

	"github.com/odoo-term/odterm/internal/domain"
	"github.com/odoo-term/odterm/internal/log"
)

// RecordCall appends a remote call to the journal.
func (s *Store) RecordCall(call domain.CallRecord) error {
	created := call.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}

	_, err := s.db.Exec(
		`INSERT INTO calls
		 (request_id, session_id, model, method, status_id, error, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		call.RequestID,
		call.SessionID,
		call.Model,
		call.Method,
		int(call.Status),
		call.Error,
		call.Duration.Milliseconds(),
		created.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		log.Error("store: record call failed: %v (model=%s, method=%s)", err, call.Model, call.Method)
	}
	return err
}

// RecentCalls returns up to limit most recent journal rows, oldest first.
func (s *Store) RecentCalls(limit int) ([]domain.CallRecord, error) {
	query := `
		SELECT
			id,
			request_id,
			session_id,
			model,
			method,
			status_id,
			error,
			duration_ms,
			created_at
		FROM calls
		ORDER BY id DESC
	`
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

	var out []domain.CallRecord
	for rows.Next() {
		var (
			c        domain.CallRecord
			statusID int
			ms       int64
			ts       string
		)
		if err := rows.Scan(
			&c.ID,
			&c.RequestID,
			&c.SessionID,
			&c.Model,
			&c.Method,
			&statusID,
			&c.Error,
			&ms,
			&ts,
		); err != nil {
			return nil, err
		}
		if c.CreatedAt, err = parseTime(ts); err != nil {
			return nil, err
		}
		c.Status = domain.CallStatus(statusID)
		c.Duration = time.Duration(ms) * time.Millisecond
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	reverse(out)
	return out, nil
}
