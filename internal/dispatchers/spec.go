package dispatchers

import (
	"context"
	"errors"

	"github.com/odoo-term/odterm/internal/domain"
)

// ErrExit is returned by a handler to end the shell cleanly.
var ErrExit = errors.New("exit requested")

// HandlerFunc runs a command with its decoded arguments and the current session.
type HandlerFunc func(ctx context.Context, args *Arguments, sess *domain.Session) error

// FlagSpec declares one flag a command accepts.
type FlagSpec struct {
	Short     string
	Long      string
	Type      FlagType
	Help      string
	Mandatory bool
}

// CommandSpec binds a command name to its flags and handler.
type CommandSpec struct {
	Name        string
	Flags       []FlagSpec
	Description string
	Example     string
	Handler     HandlerFunc
}

// findShort returns the flag whose short name is name.
func (c CommandSpec) findShort(name string) (FlagSpec, bool) {
	for _, f := range c.Flags {
		if f.Short == name {
			return f, true
		}
	}
	return FlagSpec{}, false
}

// findLong returns the flag whose long name is name.
func (c CommandSpec) findLong(name string) (FlagSpec, bool) {
	for _, f := range c.Flags {
		if f.Long == name {
			return f, true
		}
	}
	return FlagSpec{}, false
}
