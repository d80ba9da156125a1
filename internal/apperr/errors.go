package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for transport mapping.
type Kind int

const (
	KindValidation Kind = iota
	KindNotFound
	KindConflict
	KindUnavailable
	KindInternal
)

// Error is a tagged application error. Message is safe to return to callers;
// Err carries the underlying cause for logging.
type Error struct {
	Kind    Kind
	Code    int // HTTP status code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// WithCode overrides the default status code for the error's kind.
func (e *Error) WithCode(code int) *Error {
	e.Code = code
	return e
}

func newError(kind Kind, code int, format string, args ...interface{}) *Error {
	return &Error{
		Kind:    kind,
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Validation marks user-correctable input problems (400).
func Validation(format string, args ...interface{}) *Error {
	return newError(KindValidation, 400, format, args...)
}

// NotFound marks a missing referenced entity (404).
func NotFound(format string, args ...interface{}) *Error {
	return newError(KindNotFound, 404, format, args...)
}

// Conflict marks duplicates and invalid state transitions (400).
func Conflict(format string, args ...interface{}) *Error {
	return newError(KindConflict, 400, format, args...)
}

// Unavailable marks conditions the caller cannot satisfy right now, e.g.
// no shops in range or a failed delivery (400 unless overridden).
func Unavailable(format string, args ...interface{}) *Error {
	return newError(KindUnavailable, 400, format, args...)
}

// Internal wraps an unexpected fault. The message shown to callers stays
// generic; err is kept for logs.
func Internal(err error, format string, args ...interface{}) *Error {
	e := newError(KindInternal, 500, format, args...)
	e.Err = err
	return e
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
