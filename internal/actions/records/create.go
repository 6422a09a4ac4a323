package records

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/odoo-term/odterm/internal/dispatchers"
	"github.com/odoo-term/odterm/internal/domain"
)

// Create inserts one record built from the --value mapping.
func Create(deps Deps) dispatchers.HandlerFunc {
	return func(ctx context.Context, args *dispatchers.Arguments, sess *domain.Session) error {
		return create(ctx, args, sess, deps)
	}
}

func create(ctx context.Context, args *dispatchers.Arguments, sess *domain.Session, deps Deps) error {
	if err := requireSession("create", sess); err != nil {
		return err
	}

	model, err := target(args)
	if err != nil {
		return err
	}
	values, err := dispatchers.Value[map[string]any](args, "v", "value")
	if err != nil {
		return err
	}

	result, err := invoke(ctx, sess, deps, model, "create", []any{values}, nil)
	if err != nil {
		return fmt.Errorf("failed to create record: %w", err)
	}

	msg := "Record created"
	var id int64
	if json.Unmarshal(result, &id) == nil && id > 0 {
		msg = fmt.Sprintf("Record created (id %d)", id)
	}
	_, _ = deps.Println(deps.Success(msg))
	return nil
}
