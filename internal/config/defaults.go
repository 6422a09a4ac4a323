package config

import (
	"github.com/odoo-term/odterm/internal/domain"
)

// Defaults holds default configuration values (in code, not persisted).
// Every documented key has an entry; color_* overrides default to the theme.
var Defaults = buildDefaults()

func buildDefaults() map[string]func() string {
	defaults := make(map[string]func() string, len(domain.ConfigKeys)+7)
	for _, key := range domain.ConfigKeys {
		value := key.Default
		defaults[key.Name] = func() string { return value }
	}
	for _, name := range []string{"success", "warning", "error", "info", "muted", "header", "prompt"} {
		defaults["color_"+name] = func() string { return "" }
	}
	return defaults
}

// Get returns the value for a config key.
// It checks the config file first, then falls back to the default.
// Returns the value and whether it was found (in file or defaults).
func Get(key string) (string, bool) {
	lines, err := ReadLines()
	if err != nil {
		if defaultFn, ok := Defaults[key]; ok {
			return defaultFn(), true
		}
		return "", false
	}

	cfg, err := Parse(lines)
	if err != nil {
		if defaultFn, ok := Defaults[key]; ok {
			return defaultFn(), true
		}
		return "", false
	}

	if value, exists := cfg[key]; exists {
		return value, true
	}

	if defaultFn, ok := Defaults[key]; ok {
		return defaultFn(), true
	}

	return "", false
}

// GetAll returns all config values (user overrides merged with defaults).
func GetAll() (map[string]string, error) {
	result := make(map[string]string)

	for key, valueFn := range Defaults {
		result[key] = valueFn()
	}

	lines, err := ReadLines()
	if err != nil {
		return result, nil
	}

	cfg, err := Parse(lines)
	if err != nil {
		return result, nil
	}

	for key, value := range cfg {
		result[key] = value
	}

	return result, nil
}
