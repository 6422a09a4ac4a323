package usage

import "fmt"

// NotConnected is returned when a command needs a session and connect has not succeeded yet.
func NotConnected(command string) *Error {
	return &Error{
		Kind:    ErrNotConnected,
		Message: fmt.Sprintf("%s: not connected. Run 'connect -h <host>' first.", command),
	}
}

// InvalidConfigKey is returned when a config key is not recognized.
func InvalidConfigKey(key string) *Error {
	return &Error{
		Kind:    ErrInvalidConfigKey,
		Message: fmt.Sprintf("'%s' is not a valid config key", key),
	}
}
