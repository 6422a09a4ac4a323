package store

import (
	"github.com/odoo-term/odterm/internal/paths"
)

// DBPath returns the default history database, falling back to the
// working directory when the home directory is unknown.
func DBPath() string {
	path, err := paths.HistoryFilePath()
	if err != nil {
		return ".odoo-term-history.db"
	}
	return path
}

// ReadlinePath returns the readline history file imported into a fresh
// database, or "" when the home directory is unknown.
func ReadlinePath() string {
	path, err := paths.ReadlineHistoryPath()
	if err != nil {
		return ""
	}
	return path
}
