package config

import (
	"fmt"
	"strings"
)

const bom = "\uFEFF"

// Parse turns rc file lines into a key/value map. Blank lines and lines
// starting with '#' are skipped; a " #" after the value starts an inline
// comment. Values wrapped in matching quotes are unquoted. Later keys win.
func Parse(lines []string) (map[string]string, error) {
	cfg := make(map[string]string, len(lines))

	for i, line := range lines {
		if i == 0 {
			line = strings.TrimPrefix(line, bom)
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		key, value, ok := strings.Cut(trimmed, "=")
		if !ok {
			return nil, fmt.Errorf("config: line %d: missing '='", i+1)
		}

		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("config: line %d: empty key", i+1)
		}

		cfg[key] = unquote(stripInlineComment(strings.TrimSpace(value)))
	}

	return cfg, nil
}

func stripInlineComment(value string) string {
	if isQuoted(value) {
		return value
	}
	if idx := strings.Index(value, " #"); idx >= 0 {
		return strings.TrimSpace(value[:idx])
	}
	return value
}

func isQuoted(value string) bool {
	if len(value) < 2 {
		return false
	}
	q := value[0]
	return (q == '"' || q == '\'') && value[len(value)-1] == q
}

func unquote(value string) string {
	if isQuoted(value) {
		return value[1 : len(value)-1]
	}
	return value
}

// quoteIfNeeded wraps values with leading/trailing spaces or a comment marker
// so they survive Parse.
func quoteIfNeeded(value string) string {
	if value != strings.TrimSpace(value) || strings.Contains(value, " ") || strings.Contains(value, "#") {
		return "\"" + value + "\""
	}
	return value
}
