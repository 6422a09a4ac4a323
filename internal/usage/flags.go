package usage

import (
	"fmt"
	"strings"
)

// UnknownFlag is returned when a flag token does not match any flag declared by the command.
func UnknownFlag(command, flag string, suggestions ...string) *Error {
	msg := fmt.Sprintf("%s: unknown flag '%s'", command, flag)
	if len(suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(suggestions, " or "))
	}
	return &Error{
		Kind:    ErrUnknownFlag,
		Message: msg,
	}
}

// MissingValue is returned when a flag is the last token of the line.
func MissingValue(command, flag string) *Error {
	return &Error{
		Kind:    ErrMissingValue,
		Message: fmt.Sprintf("%s: flag '%s' needs a value", command, flag),
	}
}

// TypeConversion is returned when a value cannot be decoded as the flag's type.
func TypeConversion(command, flag, typeName, value string, cause error) *Error {
	msg := fmt.Sprintf("%s: invalid %s value '%s' for flag '%s'", command, typeName, value, flag)
	if cause != nil {
		msg += ": " + cause.Error()
	}
	return &Error{
		Kind:    ErrTypeConversion,
		Message: msg,
	}
}

// MissingMandatoryFlag is returned when a mandatory flag was not given.
func MissingMandatoryFlag(command, flag string) *Error {
	return &Error{
		Kind:    ErrMissingMandatoryFlag,
		Message: fmt.Sprintf("%s: missing mandatory flag '%s'", command, flag),
	}
}

// KeyNotFound is returned when none of the requested aliases holds a value.
func KeyNotFound(aliases []string) *Error {
	return &Error{
		Kind:    ErrKeyNotFound,
		Message: fmt.Sprintf("no value for any of %v", aliases),
	}
}
