package ui

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
)

// NoHighlight disables syntax highlighting of JSON results.
const NoHighlight = "none"

// FormatJSON indents raw JSON and, when styleName names a chroma style,
// colors it for a 256-color terminal. Invalid JSON is returned unchanged.
func FormatJSON(raw []byte, styleName string) string {
	var indented bytes.Buffer
	if err := json.Indent(&indented, raw, "", "  "); err != nil {
		return string(raw) + "\n"
	}
	indented.WriteByte('\n')

	if styleName == "" || strings.EqualFold(styleName, NoHighlight) {
		return indented.String()
	}

	var colored bytes.Buffer
	if err := quick.Highlight(&colored, indented.String(), "json", "terminal256", styleName); err != nil {
		return indented.String()
	}
	return colored.String()
}
