package casing

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned in strict mode when the input is not text.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnknownPolicy is returned when a policy name or value is not supported.
	ErrUnknownPolicy = errors.New("unknown case policy")
)

// Error describes a failed conversion.
type Error struct {
	// Op is the operation that failed (e.g. "ToKebabCase").
	Op string

	// Err is the underlying sentinel error.
	Err error

	// Msg is optional extra context.
	Msg string
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsInvalidArgument reports whether err was caused by non-text input in
// strict mode.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}
