package usage

import (
	"fmt"
	"strings"
)

// UnknownCommand is returned when the first token of a line names no registered command.
func UnknownCommand(command string, suggestions ...string) *Error {
	msg := fmt.Sprintf("'%s' is not a command. See 'help'.", command)
	if len(suggestions) > 0 {
		msg += "\n\nThe most similar commands are:\n   " + strings.Join(suggestions, "\n   ")
	}
	return &Error{
		Kind:    ErrUnknownCommand,
		Message: msg,
	}
}
