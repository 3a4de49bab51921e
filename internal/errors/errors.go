// Package errors defines the error kinds shared by the identifier engine and its
// transports. Domain packages wrap these kinds so handlers and commands can classify
// a failure without knowing which scheme produced it.
package errors

import (
	"errors"
	"fmt"
)

// Error kinds.
var (
	// ErrNotFound indicates a lookup of something that does not exist, such as a scheme name.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates a request that can never succeed as given.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnavailable indicates a transient failure of a dependency, such as the OS entropy source.
	ErrUnavailable = errors.New("unavailable")
)

// Stable machine-readable codes returned by Code.
const (
	CodeNotFound     = "not_found"
	CodeInvalidInput = "invalid_input"
	CodeUnavailable  = "unavailable"
	CodeInternal     = "internal_error"
)

// New creates a new error with the given message.
func New(message string) error {
	return errors.New(message)
}

// Wrap prefixes err with message. A nil err stays nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf is Wrap with a formatted message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Code classifies err into one of the Code constants. Unclassified errors are internal.
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrInvalidInput):
		return CodeInvalidInput
	case errors.Is(err, ErrUnavailable):
		return CodeUnavailable
	default:
		return CodeInternal
	}
}
