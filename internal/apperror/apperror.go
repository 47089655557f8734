// Package apperror carries the error kinds the HTTP layer translates into responses.
package apperror

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
	KindConstraint
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConstraint:
		return "constraint"
	default:
		return "unknown"
	}
}

// Error is a classified failure. Violations is only populated for KindConstraint.
type Error struct {
	Kind       Kind
	Message    string
	Violations []string
	Err        error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Constraint(err error, violations ...string) *Error {
	return &Error{
		Kind:       KindConstraint,
		Message:    "constraint violation",
		Violations: violations,
		Err:        err,
	}
}

// KindOf reports the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

// As is a shorthand for errors.As on *Error.
func As(err error) (*Error, bool) {
	var appErr *Error
	ok := errors.As(err, &appErr)
	return appErr, ok
}
