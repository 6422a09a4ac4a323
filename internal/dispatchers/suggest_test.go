package dispatchers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/odoo-term/odterm/internal/domain"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{name: "identical strings", a: "search", b: "search", want: 0},
		{name: "one character difference", a: "read", b: "reads", want: 1},
		{name: "typo - transposition", a: "write", b: "wirte", want: 2},
		{name: "typo - substitution", a: "create", b: "creete", want: 1},
		{name: "completely different", a: "exit", b: "xyz123", want: 6},
		{name: "empty string a", a: "", b: "help", want: 4},
		{name: "empty string b", a: "help", b: "", want: 4},
		{name: "both empty", a: "", b: "", want: 0},
		{name: "case insensitive", a: "CONNECT", b: "connect", want: 0},
		{name: "counts runes", a: "café", b: "cafe", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, levenshtein(tt.a, tt.b))
		})
	}
}

func noop(context.Context, *Arguments, *domain.Session) error { return nil }

func namedRegistry(names ...string) *Registry {
	reg := NewRegistry()
	for _, n := range names {
		reg.Register(CommandSpec{Name: n, Handler: noop})
	}
	return reg
}

func TestFindSimilarCommands(t *testing.T) {
	reg := namedRegistry("help", "exit", "connect", "write", "create", "read", "search")

	tests := []struct {
		name  string
		input string
		max   int
		want  []string
	}{
		{name: "single typo", input: "serch", max: 3, want: []string{"search"}},
		{name: "ranked by distance then name", input: "rea", max: 3, want: []string{"read", "create", "help"}},
		{name: "limit applies", input: "rea", max: 1, want: []string{"read"}},
		{name: "exact match is skipped", input: "exit", max: 3, want: []string{"write"}},
		{name: "nothing close", input: "zzzzzzzzz", max: 3, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FindSimilarCommands(tt.input, reg, tt.max))
		})
	}
}

func TestFindSimilarCommands_NilRegistry(t *testing.T) {
	require.Nil(t, FindSimilarCommands("help", nil, 3))
}

func TestFindSimilarFlags(t *testing.T) {
	cmd := CommandSpec{
		Name: "read",
		Flags: []FlagSpec{
			{Short: "m", Long: "model", Type: FlagIdentifier},
			{Short: "i", Long: "ids", Type: FlagList},
			{Short: "f", Long: "fields", Type: FlagList},
		},
		Handler: noop,
	}

	tests := []struct {
		name string
		tok  string
		want []string
	}{
		{name: "transposed letters", tok: "--feilds", want: []string{"--fields"}},
		{name: "missing letter", tok: "--mdel", want: []string{"--model"}},
		{name: "one letter short", tok: "--id", want: []string{"--ids"}},
		{name: "too far", tok: "--domain", want: []string{}},
		{name: "short token", tok: "-x", want: nil},
		{name: "bare dashes", tok: "--", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FindSimilarFlags(cmd, tt.tok, 2))
		})
	}
}
