package actions

import (
	"context"

	"github.com/odoo-term/odterm/internal/dispatchers"
	"github.com/odoo-term/odterm/internal/domain"
)

func ShowVersion(deps Deps) dispatchers.HandlerFunc {
	return func(_ context.Context, _ *dispatchers.Arguments, _ *domain.Session) error {
		return showVersion(deps)
	}
}

func showVersion(deps Deps) error {
	_, _ = deps.Printf("odterm version %v\n", deps.Version())
	return nil
}
