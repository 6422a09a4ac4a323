package history

import (
	"context"
	"fmt"
	"strings"

	"github.com/odoo-term/odterm/internal/dispatchers"
	"github.com/odoo-term/odterm/internal/domain"
	"github.com/odoo-term/odterm/internal/format"
)

const defaultLimit = 20

// History lists recent input lines, or with --calls the remote call journal.
func History(deps Deps) dispatchers.HandlerFunc {
	return func(ctx context.Context, args *dispatchers.Arguments, sess *domain.Session) error {
		return history(ctx, args, sess, deps)
	}
}

func history(_ context.Context, args *dispatchers.Arguments, _ *domain.Session, deps Deps) error {
	limit := dispatchers.ValueOr(args, defaultLimit, "n", "limit")
	if limit <= 0 {
		limit = defaultLimit
	}

	if dispatchers.ValueOr(args, false, "c", "calls") {
		return calls(limit, deps)
	}
	return lines(limit, deps)
}

func lines(limit int, deps Deps) error {
	stored, err := deps.RecentHistory(limit)
	if err != nil {
		return fmt.Errorf("read history: %w", err)
	}

	var pending []string
	if deps.Pending != nil {
		pending = deps.Pending()
	}

	// stored rows first, then this session's unsaved lines, newest last
	type row struct{ when, line string }
	rows := make([]row, 0, len(stored)+len(pending))
	layout := deps.Layout()
	for _, e := range stored {
		rows = append(rows, row{layout.DateTime(e.CreatedAt), e.Line})
	}
	for _, line := range pending {
		rows = append(rows, row{"", line})
	}
	if len(rows) > limit {
		rows = rows[len(rows)-limit:]
	}

	var b strings.Builder
	width := 0
	for _, r := range rows {
		width = max(width, len(r.when))
	}
	for i, r := range rows {
		fmt.Fprintf(&b, "%4d  %s  %s\n", i+1, deps.Muted(fmt.Sprintf("%-*s", width, r.when)), r.line)
	}

	deps.Pager(b.String())
	return nil
}

func calls(limit int, deps Deps) error {
	records, err := deps.RecentCalls(limit)
	if err != nil {
		return fmt.Errorf("read call journal: %w", err)
	}

	layout := deps.Layout()
	var b strings.Builder
	for _, c := range records {
		status := c.Status.String()
		if c.Status == domain.CallFailed {
			status = deps.Failed(status)
		}
		fmt.Fprintf(&b, "%s  %-6s  %s.%s  %s",
			deps.Muted(layout.Full(c.CreatedAt)),
			status,
			c.Model,
			c.Method,
			format.Duration(c.Duration),
		)
		if c.Error != "" {
			fmt.Fprintf(&b, "  %s", c.Error)
		}
		b.WriteString("\n")
	}

	deps.Pager(b.String())
	return nil
}
