package domain

import (
	"context"
	"encoding/json"
	"io"
)

// RemoteClient defines the operations the shell needs from an Odoo server.
type RemoteClient interface {
	// Login authenticates against baseURL and returns a fresh session.
	Login(ctx context.Context, baseURL, user, password string) (*Session, error)

	// Call invokes method on model with positional and keyword arguments
	// and returns the raw JSON result.
	Call(ctx context.Context, sess *Session, model, method string, args []any, kwargs map[string]any) (json.RawMessage, error)
}

// HistoryStore defines operations for persisting typed lines and remote calls.
type HistoryStore interface {
	// AppendHistory stores lines in order, in one transaction.
	AppendHistory(lines []string) error

	// RecentHistory returns up to limit most recent entries, oldest first.
	RecentHistory(limit int) ([]HistoryEntry, error)

	// TrimHistory deletes all but the newest keep entries.
	TrimHistory(keep int) (int64, error)

	// RecordCall appends a remote call to the journal.
	RecordCall(call CallRecord) error

	// RecentCalls returns up to limit most recent journal rows, oldest first.
	RecentCalls(limit int) ([]CallRecord, error)

	// Close closes the store connection.
	Close() error
}

// ConfigProvider defines operations for reading and writing configuration.
type ConfigProvider interface {
	// Get returns the value for a configuration key.
	Get(key string) (string, bool)

	// GetAll returns all configuration values.
	GetAll() (map[string]string, error)

	// Set sets a configuration value.
	Set(key, value string) error

	// Unset removes a configuration value.
	Unset(key string) error
}

// Logger defines logging operations.
type Logger interface {
	// Debug logs a debug message.
	Debug(format string, args ...any)

	// Info logs an info message.
	Info(format string, args ...any)

	// Warn logs a warning message.
	Warn(format string, args ...any)

	// Error logs an error message.
	Error(format string, args ...any)

	// Close closes the logger.
	Close() error
}

// OutputWriter defines output operations.
type OutputWriter interface {
	io.Writer

	// Printf formats and prints to the output.
	Printf(format string, args ...any) (int, error)

	// Println prints a line to the output.
	Println(args ...any) (int, error)

	// Pager displays content through a pager if appropriate.
	Pager(content string)
}

// Styler defines text styling operations.
type Styler interface {
	// Enabled returns true if styling is enabled.
	Enabled() bool

	// Success styles text as success.
	Success(text string) string

	// Warning styles text as warning.
	Warning(text string) string

	// Error styles text as error.
	Error(text string) string

	// Info styles text as info.
	Info(text string) string

	// Muted styles text as muted.
	Muted(text string) string

	// Header styles text as header.
	Header(text string) string
}

// Application represents the main application context with all dependencies.
type Application struct {
	Remote  RemoteClient
	History HistoryStore
	Config  ConfigProvider
	Logger  Logger
	Output  OutputWriter
	Errors  OutputWriter
	Styler  Styler
}
