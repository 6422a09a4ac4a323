package dispatchers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/odoo-term/odterm/internal/domain"
	"github.com/odoo-term/odterm/internal/usage"
)

type recorder struct {
	calls []*Arguments
	sess  []*domain.Session
}

func (r *recorder) handle(_ context.Context, args *Arguments, sess *domain.Session) error {
	r.calls = append(r.calls, args)
	r.sess = append(r.sess, sess)
	return nil
}

func writeRegistry(rec *recorder) *Registry {
	reg := NewRegistry()
	reg.Register(CommandSpec{
		Name: "write",
		Flags: []FlagSpec{
			{Short: "m", Long: "model", Type: FlagIdentifier, Mandatory: true},
			{Short: "i", Long: "id", Type: FlagList, Mandatory: true},
			{Short: "v", Long: "value", Type: FlagStructuredLiteral, Mandatory: true},
		},
		Handler: rec.handle,
	})
	reg.Register(CommandSpec{
		Name:    "exit",
		Handler: func(context.Context, *Arguments, *domain.Session) error { return ErrExit },
	})
	return reg
}

func TestDispatch_WriteScenario(t *testing.T) {
	rec := &recorder{}
	reg := writeRegistry(rec)
	sess := &domain.Session{BaseURL: "http://localhost:8069"}

	err := reg.Dispatch(context.Background(), "write --model res.partner --id 1,2 --value {'name': 'John'}", sess)
	require.NoError(t, err)

	require.Len(t, rec.calls, 1)
	args := rec.calls[0]
	require.Equal(t, "res.partner", args.GetOrDefault(nil, "m", "model"))
	require.Equal(t, []any{1, 2}, args.GetOrDefault(nil, "i", "id"))
	require.Equal(t, map[string]any{"name": "John"}, args.GetOrDefault(nil, "v", "value"))
	require.Same(t, sess, rec.sess[0])
}

func TestDispatch_BlankLine(t *testing.T) {
	rec := &recorder{}
	reg := writeRegistry(rec)

	require.NoError(t, reg.Dispatch(context.Background(), "   \t ", nil))
	require.Empty(t, rec.calls)

	_, ok, err := reg.Resolve("")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestDispatch_UnknownCommand(t *testing.T) {
	rec := &recorder{}
	reg := writeRegistry(rec)

	err := reg.Dispatch(context.Background(), "bogus --x 1", nil)
	require.ErrorIs(t, err, &usage.Error{Kind: usage.ErrUnknownCommand})
	require.Equal(t, "'bogus' is not a command. See 'help'.", err.Error())

	err = reg.Dispatch(context.Background(), "wrte -m x", nil)
	require.Contains(t, err.Error(), "The most similar commands are:\n   write")
	require.Empty(t, rec.calls)
}

func TestDispatch_ParseErrorsSkipHandler(t *testing.T) {
	tests := []struct {
		line string
		kind usage.ErrorKind
	}{
		{line: "write -m res.partner -i 1 -v {'a': 1} --x 1", kind: usage.ErrUnknownFlag},
		{line: "write -m res.partner -i", kind: usage.ErrMissingValue},
		{line: "write -m res.partner -i 1 -v oops", kind: usage.ErrTypeConversion},
		{line: "write -m res.partner -i 1", kind: usage.ErrMissingMandatoryFlag},
		{line: "write", kind: usage.ErrMissingMandatoryFlag},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			rec := &recorder{}
			reg := writeRegistry(rec)

			err := reg.Dispatch(context.Background(), tt.line, nil)
			require.Equal(t, tt.kind, usage.KindOf(err))
			require.Empty(t, rec.calls)
		})
	}
}

func TestDispatch_MandatoryMessageNamesFirstMissing(t *testing.T) {
	reg := writeRegistry(&recorder{})

	err := reg.Dispatch(context.Background(), "write -v {}", nil)
	require.EqualError(t, err, "write: missing mandatory flag '--model'")
}

func TestDispatch_HandlerErrorsPassThrough(t *testing.T) {
	reg := writeRegistry(&recorder{})

	err := reg.Dispatch(context.Background(), "exit", nil)
	require.True(t, errors.Is(err, ErrExit))
}

func TestResolve_Execute(t *testing.T) {
	rec := &recorder{}
	reg := writeRegistry(rec)

	res, ok, err := reg.Resolve("write -m res.partner -i 3 -v {'name': 'x'}")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "write", res.Command.Name)
	require.Empty(t, rec.calls, "resolve does not run the handler")

	require.NoError(t, res.Execute(context.Background(), &domain.Session{}))
	require.Len(t, rec.calls, 1)
}
