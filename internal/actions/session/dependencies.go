package session

import (
	"context"

	"github.com/odoo-term/odterm/internal/domain"
)

type Deps struct {
	Login          func(ctx context.Context, baseURL, user, password string) (*domain.Session, error)
	ConfigGet      func(key string) (string, bool)
	PromptUser     func(ctx context.Context, prompt string) (string, error)
	PromptPassword func(ctx context.Context, prompt string) (string, error)
	Println        func(...any) (int, error)
	Success        func(string) string
	Logger         domain.Logger
}

// DefaultDeps wires connect to the remote client and the interactive
// prompts of the running shell.
func DefaultDeps(app *domain.Application, promptUser, promptPassword func(context.Context, string) (string, error)) Deps {
	return Deps{
		Login:          app.Remote.Login,
		ConfigGet:      app.Config.Get,
		PromptUser:     promptUser,
		PromptPassword: promptPassword,
		Println:        app.Output.Println,
		Success:        app.Styler.Success,
		Logger:         app.Logger,
	}
}
