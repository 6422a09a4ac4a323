package config

import (
	"github.com/odoo-term/odterm/internal/config"
	"github.com/odoo-term/odterm/internal/domain"
)

type Deps struct {
	Edit     func(func([]string) ([]string, bool)) error
	Set      func([]string, string, string) ([]string, bool)
	Unset    func([]string, string) ([]string, bool)
	Get      func(string) (string, bool)
	GetAll   func() (map[string]string, error)
	ValidKey func(string) bool
	Printf   func(string, ...any) (int, error)
	Println  func(...any) (int, error)
}

func DefaultDeps(app *domain.Application) Deps {
	return Deps{
		Edit:   config.Edit,
		Set:    config.Set,
		Unset:  config.Unset,
		Get:    config.Get,
		GetAll: config.GetAll,
		ValidKey: func(key string) bool {
			_, ok := config.Defaults[key]
			return ok
		},
		Printf:  app.Output.Printf,
		Println: app.Output.Println,
	}
}
