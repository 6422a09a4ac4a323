package domain

import "time"

// HistoryEntry is one line typed at the prompt.
type HistoryEntry struct {
	ID        int64
	Line      string
	CreatedAt time.Time
}

// CallStatus is the outcome of a remote call.
type CallStatus int

const (
	CallOK CallStatus = iota
	CallFailed
)

func (s CallStatus) String() string {
	switch s {
	case CallOK:
		return "ok"
	case CallFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// CallRecord is one row of the remote call journal.
type CallRecord struct {
	ID        int64
	RequestID string
	SessionID string
	Model     string
	Method    string
	Status    CallStatus
	Error     string
	Duration  time.Duration
	CreatedAt time.Time
}
