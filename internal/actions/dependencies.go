package actions

import (
	"github.com/odoo-term/odterm/internal/app"
	"github.com/odoo-term/odterm/internal/domain"
)

type Deps struct {
	Printf  func(format string, a ...any) (n int, err error)
	Version func() string
}

func DefaultDeps(a *domain.Application) Deps {
	return Deps{
		Printf:  a.Output.Printf,
		Version: func() string { return app.Version },
	}
}
