package records

import (
	"context"
	"fmt"

	"github.com/odoo-term/odterm/internal/dispatchers"
	"github.com/odoo-term/odterm/internal/domain"
)

const (
	defaultSearchLimit  = 80
	defaultSearchOffset = 0
)

// Search runs search_read with the optional domain, paging and ordering flags.
func Search(deps Deps) dispatchers.HandlerFunc {
	return func(ctx context.Context, args *dispatchers.Arguments, sess *domain.Session) error {
		return search(ctx, args, sess, deps)
	}
}

func search(ctx context.Context, args *dispatchers.Arguments, sess *domain.Session, deps Deps) error {
	if err := requireSession("search", sess); err != nil {
		return err
	}

	model, err := target(args)
	if err != nil {
		return err
	}

	kwargs := map[string]any{
		"limit":  dispatchers.ValueOr(args, defaultSearchLimit, "l", "limit"),
		"offset": dispatchers.ValueOr(args, defaultSearchOffset, "O", "offset"),
		"order":  dispatchers.ValueOr(args, "", "o", "order"),
		"fields": dispatchers.ValueOr(args, []any{}, "f", "fields"),
		"domain": dispatchers.ValueOr(args, []any{}, "d", "domain"),
	}

	result, err := invoke(ctx, sess, deps, model, "search_read", []any{}, kwargs)
	if err != nil {
		return fmt.Errorf("failed to search record: %w", err)
	}

	deps.Pager(deps.Highlight(result))
	return nil
}
