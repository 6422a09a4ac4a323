package help

import (
	"github.com/odoo-term/odterm/internal/dispatchers"
	"github.com/odoo-term/odterm/internal/domain"
)

type Deps struct {
	// Registry is resolved lazily because the help command is itself
	// part of the registry it describes.
	Registry func() *dispatchers.Registry
	Pager    func(string)
}

func DefaultDeps(app *domain.Application, registry func() *dispatchers.Registry) Deps {
	return Deps{
		Registry: registry,
		Pager:    app.Output.Pager,
	}
}
