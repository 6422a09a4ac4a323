package dispatchers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLiteral(t *testing.T) {
	tests := []struct {
		name string
		text string
		want map[string]any
	}{
		{name: "single quoted", text: "{'name': 'John'}", want: map[string]any{"name": "John"}},
		{name: "double quoted", text: `{"name": "John"}`, want: map[string]any{"name": "John"}},
		{name: "no space after colon", text: "{'id':1}", want: map[string]any{"id": 1}},
		{name: "numbers", text: "{'qty': 3, 'price': 9.5}", want: map[string]any{"qty": 3, "price": 9.5}},
		{name: "signed and prefixed ints", text: "{'a': -3, 'b': 0x10, 'c': 1_000, 'd': 0}",
			want: map[string]any{"a": -3, "b": 16, "c": 1000, "d": 0}},
		{name: "float forms", text: "{'a': 1e3, 'b': .5, 'c': 2.}", want: map[string]any{"a": 1000.0, "b": 0.5, "c": 2.0}},
		{name: "python keywords", text: "{'active': True, 'archived': False, 'parent_id': None}",
			want: map[string]any{"active": true, "archived": false, "parent_id": nil}},
		{name: "quoted keyword stays text", text: "{'state': 'None'}", want: map[string]any{"state": "None"}},
		{name: "quoted number stays text", text: "{'ref': '007'}", want: map[string]any{"ref": "007"}},
		{name: "quoted date stays text", text: "{'date': '2024-01-01'}", want: map[string]any{"date": "2024-01-01"}},
		{name: "nested", text: "{'tag_ids': [1, 2], 'address': {'city': 'Lima'}}",
			want: map[string]any{"tag_ids": []any{1, 2}, "address": map[string]any{"city": "Lima"}}},
		{name: "tuple becomes list", text: "{'tags': (1, 2)}", want: map[string]any{"tags": []any{1, 2}}},
		{name: "one element tuple", text: "{'tags': (1,)}", want: map[string]any{"tags": []any{1}}},
		{name: "odoo command tuples", text: "{'tag_ids': [(6, 0, [7, 8])]}",
			want: map[string]any{"tag_ids": []any{[]any{6, 0, []any{7, 8}}}}},
		{name: "trailing comma", text: "{'a': 1,}", want: map[string]any{"a": 1}},
		{name: "escaped quote", text: `{'name': 'it\'s'}`, want: map[string]any{"name": "it's"}},
		{name: "escaped backslash", text: `{'path': 'C:\\tmp'}`, want: map[string]any{"path": `C:\tmp`}},
		{name: "other quote inside", text: `{'msg': 'say "hi"'}`, want: map[string]any{"msg": `say "hi"`}},
		{name: "control escapes", text: `{'s': 'a\tb\n'}`, want: map[string]any{"s": "a\tb\n"}},
		{name: "hex and unicode escapes", text: `{'s': '\x41\u00e9'}`, want: map[string]any{"s": "Aé"}},
		{name: "unknown escape kept", text: `{'re': '\d+'}`, want: map[string]any{"re": `\d+`}},
		{name: "brackets inside strings", text: "{'note': '(a) {b}'}", want: map[string]any{"note": "(a) {b}"}},
		{name: "empty", text: "{}", want: map[string]any{}},
		{name: "surrounding space", text: "  {'a': 1}  ", want: map[string]any{"a": 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseLiteral(tt.text)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseLiteral_Rejects(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "empty", text: ""},
		{name: "block mapping", text: "name: John"},
		{name: "list", text: "[1, 2]"},
		{name: "quoted braces", text: "'{}'"},
		{name: "unclosed", text: "{'name': 'John'"},
		{name: "unterminated string", text: "{'name': 'John}"},
		{name: "two literals", text: "{'a': 1} {'b': 2}"},
		{name: "bare word value", text: "{'name': John}"},
		{name: "bare word key", text: "{name: 'John'}"},
		{name: "int key", text: "{1: 'a'}"},
		{name: "unquoted date", text: "{'d': 2024-01-01}"},
		{name: "yaml boolean", text: "{'a': yes}"},
		{name: "lowercase keyword", text: "{'a': true}"},
		{name: "infinity", text: "{'a': .inf}"},
		{name: "leading zero", text: "{'a': 010}"},
		{name: "set", text: "{1, 2}"},
		{name: "yaml tag", text: "{'a': !!str 5}"},
		{name: "yaml anchor", text: "{'a': &x 1}"},
		{name: "truncated hex escape", text: `{'a': '\x4'}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseLiteral(tt.text)
			require.Error(t, err)
		})
	}
}
