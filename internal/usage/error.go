package usage

import "errors"

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrUnknownCommand
	ErrUnknownFlag
	ErrMissingValue
	ErrTypeConversion
	ErrMissingMandatoryFlag
	ErrKeyNotFound
	ErrNotConnected
	ErrInvalidConfigKey
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUnknownCommand:
		return "unknown command"
	case ErrUnknownFlag:
		return "unknown flag"
	case ErrMissingValue:
		return "missing value"
	case ErrTypeConversion:
		return "type conversion"
	case ErrMissingMandatoryFlag:
		return "missing mandatory flag"
	case ErrKeyNotFound:
		return "key not found"
	case ErrNotConnected:
		return "not connected"
	case ErrInvalidConfigKey:
		return "invalid config key"
	default:
		return "unknown"
	}
}

// Exit codes, used when lines run non-interactively:
//
//	Exit 1: Environment/system errors
//	  - Unknown errors
//	  - Unknown command
//	  - Not connected
//	  - Invalid config key
//
//	Exit 2: User input errors
//	  - Unknown flag
//	  - Missing value
//	  - Type conversion
//	  - Missing mandatory flag
//	  - Key not found
var exitCodes = map[ErrorKind]int{
	ErrUnknown:              1,
	ErrUnknownCommand:       1,
	ErrUnknownFlag:          2,
	ErrMissingValue:         2,
	ErrTypeConversion:       2,
	ErrMissingMandatoryFlag: 2,
	ErrKeyNotFound:          2,
	ErrNotConnected:         1,
	ErrInvalidConfigKey:     1,
}

// Error represents a user-facing usage error with semantic type information.
type Error struct {
	Kind     ErrorKind
	Message  string
	ExitCode int // computed from Kind if zero
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// GetExitCode returns the appropriate exit code for this error.
// If ExitCode is explicitly set, it is returned; otherwise, the code is derived from Kind.
func (e *Error) GetExitCode() int {
	if e.ExitCode != 0 {
		return e.ExitCode
	}
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

// Is reports whether target is a usage error of the same kind, so that
// errors.Is(err, &usage.Error{Kind: usage.ErrUnknownFlag}) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the kind of the first usage error in err's chain,
// or ErrUnknown if there is none.
func KindOf(err error) ErrorKind {
	var ue *Error
	if errors.As(err, &ue) {
		return ue.Kind
	}
	return ErrUnknown
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)
