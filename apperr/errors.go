// Package apperr defines the error kinds surfaced to API callers.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for the caller.
type Kind int

const (
	Internal Kind = iota
	Unauthenticated
	Forbidden
	NotFound
	AlreadyExists
	InvalidRequest
)

func (k Kind) String() string {
	switch k {
	case Unauthenticated:
		return "unauthenticated"
	case Forbidden:
		return "forbidden"
	case NotFound:
		return "not_found"
	case AlreadyExists:
		return "already_exists"
	case InvalidRequest:
		return "invalid_request"
	default:
		return "internal"
	}
}

// Error carries a kind, a human-readable reason and an optional cause.
type Error struct {
	Kind   Kind
	Reason string
	Err    error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel of the same kind, so that
// errors.Is(err, apperr.ErrNotFound) matches any NotFound error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.Reason != "" || t.Err != nil {
		return false
	}
	return e.Kind == t.Kind
}

var (
	ErrUnauthenticated = &Error{Kind: Unauthenticated}
	ErrForbidden       = &Error{Kind: Forbidden}
	ErrNotFound        = &Error{Kind: NotFound}
	ErrAlreadyExists   = &Error{Kind: AlreadyExists}
	ErrInvalidRequest  = &Error{Kind: InvalidRequest}
)

func newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}

func UnauthenticatedError(format string, args ...interface{}) error {
	return newf(Unauthenticated, format, args...)
}

func ForbiddenError(format string, args ...interface{}) error {
	return newf(Forbidden, format, args...)
}

func NotFoundError(format string, args ...interface{}) error {
	return newf(NotFound, format, args...)
}

func AlreadyExistsError(format string, args ...interface{}) error {
	return newf(AlreadyExists, format, args...)
}

func InvalidRequestError(format string, args ...interface{}) error {
	return newf(InvalidRequest, format, args...)
}

// Wrap attaches a kind and reason to a lower-level error.
func Wrap(err error, kind Kind, reason string) error {
	return &Error{Kind: kind, Reason: reason, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or Internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// ReasonOf returns the reason of the first *Error in err's chain.
func ReasonOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Reason
	}
	return ""
}
