package store

import (
	"errors"
	"fmt"

	"github.com/vhal-go/fakevhal/pkg/vehicle"
)

// Error kinds returned by the store. Match them with errors.Is.
var (
	ErrAlreadyRegistered = errors.New("property already registered")
	ErrNotFound          = errors.New("not found")
	ErrInvalidArg        = errors.New("invalid argument")
)

// ErrOutdated is the cause attached to an ErrInvalidArg rejection of a value
// older than the one already stored.
var ErrOutdated = errors.New("outdated value")

// Error is the result of a failed store operation: an error kind plus a
// human-readable message and an optional underlying cause.
type Error struct {
	Kind    error
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *Error) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Kind, e.Cause}
	}
	return []error{e.Kind}
}

func newError(kind error, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// StatusCodeOf maps a store error to the status code reported upstream.
func StatusCodeOf(err error) vehicle.StatusCode {
	switch {
	case err == nil:
		return vehicle.StatusOK
	case errors.Is(err, ErrNotFound):
		return vehicle.StatusNotAvailable
	case errors.Is(err, ErrInvalidArg), errors.Is(err, ErrAlreadyRegistered):
		return vehicle.StatusInvalidArg
	default:
		return vehicle.StatusInternalError
	}
}
