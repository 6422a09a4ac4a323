package ui

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatJSON_Indents(t *testing.T) {
	got := FormatJSON([]byte(`{"id":1,"name":"John"}`), NoHighlight)
	require.Equal(t, "{\n  \"id\": 1,\n  \"name\": \"John\"\n}\n", got)
}

func TestFormatJSON_EmptyStyleIsPlain(t *testing.T) {
	got := FormatJSON([]byte(`[1,2]`), "")
	require.Equal(t, "[\n  1,\n  2\n]\n", got)
}

func TestFormatJSON_Highlighted(t *testing.T) {
	got := FormatJSON([]byte(`{"name":"John"}`), "monokai")
	require.Contains(t, got, "\x1b[")
	require.Contains(t, got, "John")
}

func TestFormatJSON_InvalidJSONUnchanged(t *testing.T) {
	got := FormatJSON([]byte(`not json`), "monokai")
	require.Equal(t, "not json\n", got)
}
