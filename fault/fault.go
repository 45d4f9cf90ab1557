// Package fault defines the two error kinds every service in this module
// reports, so the HTTP boundary can translate them uniformly.
package fault

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument marks malformed or out-of-range caller input.
	// The HTTP boundary translates it to 400.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidOperation marks a well-formed request that references
	// missing or stale state. The HTTP boundary translates it to 404.
	ErrInvalidOperation = errors.New("invalid operation")
)

// InvalidArgf wraps ErrInvalidArgument with a formatted detail message.
func InvalidArgf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// InvalidOpf wraps ErrInvalidOperation with a formatted detail message.
func InvalidOpf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidOperation, fmt.Sprintf(format, args...))
}

// IsInvalidArgument reports whether err is an ErrInvalidArgument.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// IsInvalidOperation reports whether err is an ErrInvalidOperation.
func IsInvalidOperation(err error) bool {
	return errors.Is(err, ErrInvalidOperation)
}

// Detail strips the sentinel prefix from a fault error, leaving the
// human-readable message. Non-fault errors are returned verbatim.
func Detail(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, sentinel := range []error{ErrInvalidArgument, ErrInvalidOperation} {
		prefix := sentinel.Error() + ": "
		if errors.Is(err, sentinel) && len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
			return msg[len(prefix):]
		}
	}
	return msg
}
