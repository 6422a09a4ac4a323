package cli

import (
	"context"

	"github.com/odoo-term/odterm/internal/actions"
	"github.com/odoo-term/odterm/internal/actions/config"
	"github.com/odoo-term/odterm/internal/actions/help"
	"github.com/odoo-term/odterm/internal/actions/history"
	"github.com/odoo-term/odterm/internal/actions/logs"
	"github.com/odoo-term/odterm/internal/actions/records"
	"github.com/odoo-term/odterm/internal/actions/session"
	"github.com/odoo-term/odterm/internal/dispatchers"
	"github.com/odoo-term/odterm/internal/domain"
)

// Handlers binds each shell command to its implementation.
type Handlers struct {
	Help    dispatchers.HandlerFunc
	Exit    dispatchers.HandlerFunc
	Connect dispatchers.HandlerFunc
	Write   dispatchers.HandlerFunc
	Create  dispatchers.HandlerFunc
	Read    dispatchers.HandlerFunc
	Search  dispatchers.HandlerFunc
	History dispatchers.HandlerFunc
	Config  dispatchers.HandlerFunc
	Logs    dispatchers.HandlerFunc
	Version dispatchers.HandlerFunc
}

// Shell carries the hooks the interactive loop offers to handlers.
type Shell struct {
	PromptUser     func(ctx context.Context, prompt string) (string, error)
	PromptPassword func(ctx context.Context, prompt string) (string, error)
	// Pending returns lines typed this session that are not stored yet.
	Pending func() []string
}

// BuildRegistry registers every command in help order.
func BuildRegistry(h Handlers) *dispatchers.Registry {
	reg := dispatchers.NewRegistry()

	reg.Register(dispatchers.CommandSpec{
		Name:        "help",
		Flags:       HelpFlags,
		Description: "Print this help or command info",
		Example:     "help -c create",
		Handler:     h.Help,
	})

	reg.Register(dispatchers.CommandSpec{
		Name:        "exit",
		Description: "Exit from odoo-term",
		Example:     "exit",
		Handler:     h.Exit,
	})

	reg.Register(dispatchers.CommandSpec{
		Name:        "connect",
		Flags:       ConnectFlags,
		Description: "Connect to Odoo server",
		Example:     "connect -h localhost -p 8069 -u admin -w admin",
		Handler:     h.Connect,
	})

	reg.Register(dispatchers.CommandSpec{
		Name:        "write",
		Flags:       WriteFlags,
		Description: "Update a record",
		Example:     "write -m res.partner -i 1 -v {'name': 'John Doe'}",
		Handler:     h.Write,
	})

	reg.Register(dispatchers.CommandSpec{
		Name:        "create",
		Flags:       CreateFlags,
		Description: "Create a record",
		Example:     "create -m res.partner -v {'name': 'John Doe'}",
		Handler:     h.Create,
	})

	reg.Register(dispatchers.CommandSpec{
		Name:        "read",
		Flags:       ReadFlags,
		Description: "Read a record",
		Example:     "read -m res.partner -i 1 -f name,email",
		Handler:     h.Read,
	})

	reg.Register(dispatchers.CommandSpec{
		Name:        "search",
		Flags:       SearchFlags,
		Description: "Launch orm search query",
		Example:     "search -m res.partner -f name -l 100 -O 5 -o 'id DESC, name'",
		Handler:     h.Search,
	})

	reg.Register(dispatchers.CommandSpec{
		Name:        "history",
		Flags:       HistoryFlags,
		Description: "Show typed lines or the remote call journal",
		Example:     "history -n 50 -c true",
		Handler:     h.History,
	})

	reg.Register(dispatchers.CommandSpec{
		Name:        "config",
		Flags:       ConfigFlags,
		Description: "Read or change ~/.odootermrc settings",
		Example:     "config -k highlight -s dracula",
		Handler:     h.Config,
	})

	reg.Register(dispatchers.CommandSpec{
		Name:        "logs",
		Flags:       LogsFlags,
		Description: "Show or follow the odterm log file",
		Example:     "logs -n 20",
		Handler:     h.Logs,
	})

	reg.Register(dispatchers.CommandSpec{
		Name:        "version",
		Description: "Print the odterm version",
		Example:     "version",
		Handler:     h.Version,
	})

	return reg
}

// NewRegistry wires the action packages to app and sh.
func NewRegistry(app *domain.Application, sh Shell) *dispatchers.Registry {
	var reg *dispatchers.Registry

	reg = BuildRegistry(Handlers{
		Help:    help.Help(help.DefaultDeps(app, func() *dispatchers.Registry { return reg })),
		Exit:    session.Exit,
		Connect: session.Connect(session.DefaultDeps(app, sh.PromptUser, sh.PromptPassword)),
		Write:   records.Write(records.DefaultDeps(app)),
		Create:  records.Create(records.DefaultDeps(app)),
		Read:    records.Read(records.DefaultDeps(app)),
		Search:  records.Search(records.DefaultDeps(app)),
		History: history.History(history.DefaultDeps(app, sh.Pending)),
		Config:  config.Config(config.DefaultDeps(app)),
		Logs:    logs.Logs(logs.DefaultDeps(app)),
		Version: actions.ShowVersion(actions.DefaultDeps(app)),
	})

	return reg
}
