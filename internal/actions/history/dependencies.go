package history

import (
	"github.com/odoo-term/odterm/internal/domain"
	"github.com/odoo-term/odterm/internal/format"
)

type Deps struct {
	RecentHistory func(limit int) ([]domain.HistoryEntry, error)
	RecentCalls   func(limit int) ([]domain.CallRecord, error)
	// Pending returns lines typed this session that are not stored yet.
	Pending func() []string
	Layout  func() format.Layout
	Pager   func(string)
	Muted   func(string) string
	Failed  func(string) string
}

func DefaultDeps(app *domain.Application, pending func() []string) Deps {
	return Deps{
		RecentHistory: app.History.RecentHistory,
		RecentCalls:   app.History.RecentCalls,
		Pending:       pending,
		Layout:        func() format.Layout { return format.NewLayout(app.Config.Get) },
		Pager:         app.Output.Pager,
		Muted:         app.Styler.Muted,
		Failed:        app.Styler.Error,
	}
}
