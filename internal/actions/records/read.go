package records

import (
	"context"
	"fmt"

	"github.com/odoo-term/odterm/internal/dispatchers"
	"github.com/odoo-term/odterm/internal/domain"
)

// Read fetches the records listed by --id, optionally restricted to --fields.
func Read(deps Deps) dispatchers.HandlerFunc {
	return func(ctx context.Context, args *dispatchers.Arguments, sess *domain.Session) error {
		return read(ctx, args, sess, deps)
	}
}

func read(ctx context.Context, args *dispatchers.Arguments, sess *domain.Session, deps Deps) error {
	if err := requireSession("read", sess); err != nil {
		return err
	}

	model, err := target(args)
	if err != nil {
		return err
	}
	ids, err := dispatchers.Value[[]any](args, "i", "id")
	if err != nil {
		return err
	}
	fields := dispatchers.ValueOr(args, []any{}, "f", "fields")

	result, err := invoke(ctx, sess, deps, model, "read", []any{ids, fields}, nil)
	if err != nil {
		return fmt.Errorf("failed to read record: %w", err)
	}

	deps.Pager(deps.Highlight(result))
	return nil
}
