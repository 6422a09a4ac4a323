package help

import (
	"context"

	"github.com/odoo-term/odterm/internal/dispatchers"
	"github.com/odoo-term/odterm/internal/domain"
	"github.com/odoo-term/odterm/internal/usage"
)

const maxSuggestions = 3

// Help prints the command index, or the detailed help of the command named by --cmd.
func Help(deps Deps) dispatchers.HandlerFunc {
	return func(ctx context.Context, args *dispatchers.Arguments, sess *domain.Session) error {
		return help(ctx, args, sess, deps)
	}
}

func help(_ context.Context, args *dispatchers.Arguments, _ *domain.Session, deps Deps) error {
	reg := deps.Registry()

	if !args.Has("c", "cmd") {
		deps.Pager(dispatchers.Index(reg))
		return nil
	}

	name := dispatchers.ValueOr(args, "", "c", "cmd")

	cmd, found := reg.Lookup(name)
	if !found {
		return usage.UnknownCommand(name, dispatchers.FindSimilarCommands(name, reg, maxSuggestions)...)
	}

	deps.Pager(dispatchers.CommandHelp(cmd))
	return nil
}
