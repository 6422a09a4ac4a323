package dispatchers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/odoo-term/odterm/internal/usage"
)

var testCmd = CommandSpec{
	Name: "test",
	Flags: []FlagSpec{
		{Short: "n", Long: "number", Type: FlagNumber},
		{Short: "s", Long: "string", Type: FlagString},
		{Short: "b", Long: "bool", Type: FlagBool},
		{Short: "m", Long: "model", Type: FlagIdentifier},
		{Short: "v", Long: "value", Type: FlagStructuredLiteral},
		{Short: "l", Long: "list", Type: FlagList},
	},
	Handler: noop,
}

func tokenize(t *testing.T, line string) (*Arguments, error) {
	t.Helper()
	return Tokenize(testCmd, strings.Fields(line))
}

func TestTokenize_Decoding(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		alias string
		want  any
	}{
		{name: "number", line: "-n 42", alias: "number", want: 42},
		{name: "negative number", line: "--number -7", alias: "n", want: -7},
		{name: "bare string", line: "-s hello", alias: "s", want: "hello"},
		{name: "quoted string over two tokens", line: "-s 'John Doe'", alias: "string", want: "John Doe"},
		{name: "double quoted string", line: `-s "a b c"`, alias: "s", want: "a b c"},
		{name: "single token quoted string", line: "-s 'x'", alias: "s", want: "x"},
		{name: "lone quote keeps scanning", line: "-s ' x'", alias: "s", want: " x"},
		{name: "unclosed quote runs to end", line: "-s 'John Doe", alias: "s", want: "John Doe"},
		{name: "bool sentinel", line: "-b -", alias: "bool", want: true},
		{name: "bool false", line: "-b false", alias: "b", want: false},
		{name: "bool False", line: "-b False", alias: "b", want: false},
		{name: "bool true", line: "-b TRUE", alias: "b", want: true},
		{name: "bool lenient", line: "-b yes", alias: "b", want: true},
		{name: "identifier", line: "-m res.partner", alias: "model", want: "res.partner"},
		{name: "literal over two tokens", line: "-v {'name': 'John'}", alias: "value", want: map[string]any{"name": "John"}},
		{name: "empty literal", line: "-v {}", alias: "v", want: map[string]any{}},
		{name: "literal with tuple", line: "-v {'tags': (1, 2)}", alias: "value", want: map[string]any{"tags": []any{1, 2}}},
		{name: "list mixed", line: "-l 1,2,foo", alias: "list", want: []any{1, 2, "foo"}},
		{name: "list single", line: "-l name", alias: "l", want: []any{"name"}},
		{name: "list keeps empty parts", line: "-l 1,,2", alias: "l", want: []any{1, "", 2}},
		{name: "long name for short-declared flag", line: "--list 7", alias: "l", want: []any{7}},
		{name: "short flag matched on first char", line: "-nope 3", alias: "n", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args, err := tokenize(t, tt.line)
			require.NoError(t, err)

			got, err := args.Get(tt.alias)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestTokenize_Errors(t *testing.T) {
	tests := []struct {
		name string
		line string
		kind usage.ErrorKind
	}{
		{name: "undeclared long flag", line: "--x 1", kind: usage.ErrUnknownFlag},
		{name: "undeclared short flag", line: "-z 1", kind: usage.ErrUnknownFlag},
		{name: "bare token in flag position", line: "res.partner", kind: usage.ErrUnknownFlag},
		{name: "lone dash", line: "- 1", kind: usage.ErrUnknownFlag},
		{name: "lone double dash", line: "-- 1", kind: usage.ErrUnknownFlag},
		{name: "missing value", line: "-n", kind: usage.ErrMissingValue},
		{name: "missing value after others", line: "-m res.partner -l", kind: usage.ErrMissingValue},
		{name: "not a number", line: "-n ten", kind: usage.ErrTypeConversion},
		{name: "literal not a dict", line: "-v [1,2]", kind: usage.ErrTypeConversion},
		{name: "literal unclosed", line: "-v {'name': 'John'", kind: usage.ErrTypeConversion},
		{name: "literal bare word", line: "-v {'name': John}", kind: usage.ErrTypeConversion},
		{name: "literal unquoted date", line: "-v {'d': 2024-01-01}", kind: usage.ErrTypeConversion},
		{name: "failure after valid flags", line: "-m res.partner --x 1", kind: usage.ErrUnknownFlag},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args, err := tokenize(t, tt.line)
			require.Nil(t, args, "no partial bag")
			require.Equal(t, tt.kind, usage.KindOf(err))
		})
	}
}

func TestTokenize_ErrorMessages(t *testing.T) {
	_, err := tokenize(t, "-n ten")
	require.EqualError(t, err, `test: invalid NUMBER value 'ten' for flag '-n': strconv.Atoi: parsing "ten": invalid syntax`)

	_, err = tokenize(t, "--x 1")
	require.EqualError(t, err, "test: unknown flag '--x'")

	_, err = tokenize(t, "--numbr 3")
	require.EqualError(t, err, "test: unknown flag '--numbr' (did you mean --number?)")

	_, err = tokenize(t, "-s")
	require.EqualError(t, err, "test: flag '-s' needs a value")
}

func TestTokenize_VariableWidthStepping(t *testing.T) {
	args, err := tokenize(t, "-s 'John Doe' -v {'name': 'John', 'age': 3} -n 5 -b -")
	require.NoError(t, err)

	require.Equal(t, 4, args.Len())
	require.Equal(t, "John Doe", args.GetOrDefault(nil, "s"))
	require.Equal(t, map[string]any{"name": "John", "age": 3}, args.GetOrDefault(nil, "v"))
	require.Equal(t, 5, args.GetOrDefault(nil, "n"))
	require.Equal(t, true, args.GetOrDefault(nil, "b"))
}

func TestTokenize_LastValueWins(t *testing.T) {
	args, err := tokenize(t, "-n 1 --number 2")
	require.NoError(t, err)
	require.Equal(t, 2, args.GetOrDefault(nil, "n"))
	require.Equal(t, 1, args.Len())
}

func TestTokenize_Empty(t *testing.T) {
	args, err := tokenize(t, "")
	require.NoError(t, err)
	require.Equal(t, 0, args.Len())
}
