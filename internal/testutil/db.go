package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/odoo-term/odterm/internal/domain"
	"github.com/odoo-term/odterm/internal/store"
)

// NewTestStore creates an in-memory history store with migrations applied.
// The store is automatically closed when the test finishes.
func NewTestStore(t *testing.T) *store.Store {
	t.Helper()

	s, err := store.New(":memory:")
	require.NoError(t, err, "failed to open in-memory store")

	t.Cleanup(func() {
		_ = s.Close()
	})

	return s
}

// SeedHistory appends lines to the store.
func SeedHistory(t *testing.T, s domain.HistoryStore, lines ...string) {
	t.Helper()
	require.NoError(t, s.AppendHistory(lines), "failed to seed history")
}

// SeedCalls appends journal rows to the store.
func SeedCalls(t *testing.T, s domain.HistoryStore, calls ...domain.CallRecord) {
	t.Helper()

	for _, call := range calls {
		require.NoError(t, s.RecordCall(call), "failed to seed call: %+v", call)
	}
}
