package records

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http/cookiejar"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/odoo-term/odterm/internal/dispatchers"
	"github.com/odoo-term/odterm/internal/domain"
	"github.com/odoo-term/odterm/internal/odoo"
	"github.com/odoo-term/odterm/internal/usage"
)

type recordedCall struct {
	model  string
	method string
	args   []any
	kwargs map[string]any
}

type harness struct {
	calls   []recordedCall
	journal []domain.CallRecord
	printed []string
	paged   []string
	result  json.RawMessage
	callErr error
	deps    Deps
}

func newHarness() *harness {
	h := &harness{result: json.RawMessage(`true`)}
	clock := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	seq := 0

	h.deps = Deps{
		Call: func(_ context.Context, _ *domain.Session, model, method string, args []any, kwargs map[string]any) (json.RawMessage, error) {
			h.calls = append(h.calls, recordedCall{model: model, method: method, args: args, kwargs: kwargs})
			return h.result, h.callErr
		},
		RecordCall: func(r domain.CallRecord) error {
			h.journal = append(h.journal, r)
			return nil
		},
		NewRequestID: func() string {
			seq++
			return fmt.Sprintf("req-%d", seq)
		},
		Now: func() time.Time {
			clock = clock.Add(10 * time.Millisecond)
			return clock
		},
		Highlight: func(raw []byte) string { return string(raw) },
		Pager:     func(s string) { h.paged = append(h.paged, s) },
		Println: func(a ...any) (int, error) {
			h.printed = append(h.printed, fmt.Sprint(a...))
			return 0, nil
		},
		Success: func(s string) string { return s },
	}
	return h
}

func connected(t *testing.T) *domain.Session {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &domain.Session{ID: "sess-1", BaseURL: "http://localhost:8069", User: "admin", Jar: jar}
}

// bag builds an argument bag from long flag names and decoded values.
func bag(pairs ...any) *dispatchers.Arguments {
	a := dispatchers.NewArguments(nil)
	for i := 0; i+1 < len(pairs); i += 2 {
		a.Set(dispatchers.FlagSpec{Long: pairs[i].(string)}, pairs[i+1])
	}
	return a
}

func TestWrite_IssuesOneWriteCall(t *testing.T) {
	h := newHarness()

	args := bag(
		"model", "res.partner",
		"id", []any{1, 2},
		"value", map[string]any{"name": "John"},
	)
	err := write(context.Background(), args, connected(t), h.deps)
	require.NoError(t, err)

	require.Len(t, h.calls, 1)
	require.Equal(t, "res.partner", h.calls[0].model)
	require.Equal(t, "write", h.calls[0].method)
	require.Equal(t, []any{[]any{1, 2}, map[string]any{"name": "John"}}, h.calls[0].args)
	require.Nil(t, h.calls[0].kwargs)
	require.Equal(t, []string{"Record updated"}, h.printed)
}

func TestWrite_NotConnected(t *testing.T) {
	h := newHarness()

	args := bag("model", "res.partner", "id", []any{1}, "value", map[string]any{})
	err := write(context.Background(), args, &domain.Session{}, h.deps)

	require.ErrorIs(t, err, &usage.Error{Kind: usage.ErrNotConnected})
	require.Empty(t, h.calls)
	require.Empty(t, h.journal)
}

func TestWrite_RemoteFailure(t *testing.T) {
	h := newHarness()
	h.callErr = &odoo.RemoteError{StatusCode: 500, Message: "boom", Detail: "{}"}

	args := bag("model", "res.partner", "id", []any{1}, "value", map[string]any{"name": "x"})
	err := write(context.Background(), args, connected(t), h.deps)

	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to update record")
	var remoteErr *odoo.RemoteError
	require.True(t, errors.As(err, &remoteErr))
	require.Empty(t, h.printed)

	require.Len(t, h.journal, 1)
	require.Equal(t, domain.CallFailed, h.journal[0].Status)
	require.Contains(t, h.journal[0].Error, "boom")
}

func TestCreate_ReportsNewID(t *testing.T) {
	h := newHarness()
	h.result = json.RawMessage(`42`)

	args := bag("model", "res.partner", "value", map[string]any{"name": "Jane"})
	err := create(context.Background(), args, connected(t), h.deps)
	require.NoError(t, err)

	require.Len(t, h.calls, 1)
	require.Equal(t, "create", h.calls[0].method)
	require.Equal(t, []any{map[string]any{"name": "Jane"}}, h.calls[0].args)
	require.Equal(t, []string{"Record created (id 42)"}, h.printed)
}

func TestCreate_NonNumericResult(t *testing.T) {
	h := newHarness()
	h.result = json.RawMessage(`[7]`)

	args := bag("model", "res.partner", "value", map[string]any{"name": "Jane"})
	require.NoError(t, create(context.Background(), args, connected(t), h.deps))
	require.Equal(t, []string{"Record created"}, h.printed)
}

func TestRead_DefaultsFieldsToEmpty(t *testing.T) {
	h := newHarness()
	h.result = json.RawMessage(`[{"id":1,"name":"John"}]`)

	args := bag("model", "res.partner", "id", []any{1})
	err := read(context.Background(), args, connected(t), h.deps)
	require.NoError(t, err)

	require.Len(t, h.calls, 1)
	require.Equal(t, "read", h.calls[0].method)
	require.Equal(t, []any{[]any{1}, []any{}}, h.calls[0].args)
	require.Equal(t, []string{`[{"id":1,"name":"John"}]`}, h.paged)
}

func TestRead_WithFields(t *testing.T) {
	h := newHarness()

	args := bag("model", "res.partner", "id", []any{1}, "fields", []any{"name", "email"})
	require.NoError(t, read(context.Background(), args, connected(t), h.deps))
	require.Equal(t, []any{[]any{1}, []any{"name", "email"}}, h.calls[0].args)
}

func TestSearch_Kwargs(t *testing.T) {
	tests := []struct {
		name       string
		args       *dispatchers.Arguments
		wantKwargs map[string]any
	}{
		{
			name: "defaults",
			args: bag("model", "res.partner"),
			wantKwargs: map[string]any{
				"limit":  80,
				"offset": 0,
				"order":  "",
				"fields": []any{},
				"domain": []any{},
			},
		},
		{
			name: "all flags",
			args: bag(
				"model", "res.partner",
				"limit", 5,
				"offset", 10,
				"order", "name desc",
				"fields", []any{"name"},
				"domain", []any{"is_company"},
			),
			wantKwargs: map[string]any{
				"limit":  5,
				"offset": 10,
				"order":  "name desc",
				"fields": []any{"name"},
				"domain": []any{"is_company"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness()
			h.result = json.RawMessage(`[]`)

			require.NoError(t, search(context.Background(), tt.args, connected(t), h.deps))

			require.Len(t, h.calls, 1)
			require.Equal(t, "search_read", h.calls[0].method)
			require.Equal(t, []any{}, h.calls[0].args)
			require.Equal(t, tt.wantKwargs, h.calls[0].kwargs)
			require.Len(t, h.paged, 1)
		})
	}
}

func TestInvoke_JournalsEveryCall(t *testing.T) {
	h := newHarness()
	sess := connected(t)

	require.NoError(t, read(context.Background(), bag("model", "res.users", "id", []any{2}), sess, h.deps))
	require.NoError(t, search(context.Background(), bag("model", "res.users"), sess, h.deps))

	require.Len(t, h.journal, 2)
	require.Equal(t, "req-1", h.journal[0].RequestID)
	require.Equal(t, "req-2", h.journal[1].RequestID)
	for _, r := range h.journal {
		require.Equal(t, "sess-1", r.SessionID)
		require.Equal(t, "res.users", r.Model)
		require.Equal(t, domain.CallOK, r.Status)
		require.Equal(t, 10*time.Millisecond, r.Duration)
	}
}

func TestInvoke_JournalFailureDoesNotFailCall(t *testing.T) {
	h := newHarness()
	h.deps.RecordCall = func(domain.CallRecord) error { return errors.New("disk full") }

	var warned []string
	h.deps.Logger = &captureLogger{warn: &warned}

	args := bag("model", "res.partner", "id", []any{1}, "value", map[string]any{"a": 1})
	require.NoError(t, write(context.Background(), args, connected(t), h.deps))
	require.Len(t, warned, 1)
	require.True(t, strings.Contains(warned[0], "disk full"))
}

type captureLogger struct {
	warn *[]string
}

func (l *captureLogger) Debug(string, ...any) {}
func (l *captureLogger) Info(string, ...any)  {}
func (l *captureLogger) Warn(format string, args ...any) {
	*l.warn = append(*l.warn, fmt.Sprintf(format, args...))
}
func (l *captureLogger) Error(string, ...any) {}
func (l *captureLogger) Close() error         { return nil }
