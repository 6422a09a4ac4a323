package dispatchers

import (
	"context"
	"strings"

	"github.com/odoo-term/odterm/internal/domain"
	"github.com/odoo-term/odterm/internal/usage"
)

const defaultSuggestionsCount = 3

// Resolution is a fully parsed line, ready to run.
type Resolution struct {
	Command CommandSpec
	Args    *Arguments
}

// Execute runs the resolved handler.
func (res Resolution) Execute(ctx context.Context, sess *domain.Session) error {
	return res.Command.Handler(ctx, res.Args, sess)
}

// Resolve splits line on whitespace, looks up the command named by the first
// token and decodes the remaining tokens against its flags.
// A blank line resolves to ok == false with no error.
func (r *Registry) Resolve(line string) (res Resolution, ok bool, err error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return Resolution{}, false, nil
	}

	name := tokens[0]
	cmd, found := r.Lookup(name)
	if !found {
		suggestions := FindSimilarCommands(name, r, defaultSuggestionsCount)
		return Resolution{}, false, usage.UnknownCommand(name, suggestions...)
	}

	args, err := Tokenize(cmd, tokens[1:])
	if err != nil {
		return Resolution{}, false, err
	}

	if err := checkMandatory(cmd, args); err != nil {
		return Resolution{}, false, err
	}

	return Resolution{Command: cmd, Args: args}, true, nil
}

// Dispatch resolves line and runs the command's handler with sess.
func (r *Registry) Dispatch(ctx context.Context, line string, sess *domain.Session) error {
	res, ok, err := r.Resolve(line)
	if err != nil || !ok {
		return err
	}
	return res.Execute(ctx, sess)
}

func checkMandatory(cmd CommandSpec, args *Arguments) error {
	for _, f := range cmd.Flags {
		if f.Mandatory && !args.Has(f.Long) {
			return usage.MissingMandatoryFlag(cmd.Name, "--"+f.Long)
		}
	}
	return nil
}
