package paths

import (
	"os"
	"path/filepath"
)

const (
	appDirName      = "odterm"
	configFileName  = ".odootermrc"
	historyFileName = ".odoo-term-history.db"
	readlineName    = ".odoo-term-history"
	logFileName     = "odterm.log"
)

// AppDataDir returns the application data directory for logs.
// Uses os.UserConfigDir() which returns:
//   - macOS: ~/Library/Application Support
//   - Linux: $XDG_CONFIG_HOME or ~/.config
//   - Windows: %AppData% (roaming)
func AppDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}

	path := filepath.Join(dir, appDirName)

	_ = os.MkdirAll(path, 0700)

	return path
}

// ConfigFilePath returns the path of the rc file, ~/.odootermrc.
func ConfigFilePath() (string, error) {
	return underHome(configFileName)
}

// HistoryFilePath returns the per-user history database, ~/.odoo-term-history.db.
func HistoryFilePath() (string, error) {
	return underHome(historyFileName)
}

// ReadlineHistoryPath returns the plain readline history file,
// ~/.odoo-term-history, kept by earlier odoo-term shells.
func ReadlineHistoryPath() (string, error) {
	return underHome(readlineName)
}

func underHome(name string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, name), nil
}

// LogFilePath returns the path to the application log file.
//   - macOS: ~/Library/Application Support/odterm/odterm.log
//   - Linux: $XDG_CONFIG_HOME/odterm/odterm.log or ~/.config/odterm/odterm.log
//   - Windows: %AppData%\odterm\odterm.log
func LogFilePath() string {
	return filepath.Join(AppDataDir(), logFileName)
}
