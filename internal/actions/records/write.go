package records

import (
	"context"
	"fmt"

	"github.com/odoo-term/odterm/internal/dispatchers"
	"github.com/odoo-term/odterm/internal/domain"
)

// Write updates the records listed by --id with the --value mapping.
func Write(deps Deps) dispatchers.HandlerFunc {
	return func(ctx context.Context, args *dispatchers.Arguments, sess *domain.Session) error {
		return write(ctx, args, sess, deps)
	}
}

func write(ctx context.Context, args *dispatchers.Arguments, sess *domain.Session, deps Deps) error {
	if err := requireSession("write", sess); err != nil {
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
	values, err := dispatchers.Value[map[string]any](args, "v", "value")
	if err != nil {
		return err
	}

	if _, err := invoke(ctx, sess, deps, model, "write", []any{ids, values}, nil); err != nil {
		return fmt.Errorf("failed to update record: %w", err)
	}

	_, _ = deps.Println(deps.Success("Record updated"))
	return nil
}
