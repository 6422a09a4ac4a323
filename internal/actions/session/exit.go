package session

import (
	"context"

	"github.com/odoo-term/odterm/internal/dispatchers"
	"github.com/odoo-term/odterm/internal/domain"
)

// Exit ends the shell loop.
func Exit(_ context.Context, _ *dispatchers.Arguments, _ *domain.Session) error {
	return dispatchers.ErrExit
}
