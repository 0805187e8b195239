package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	KindValidation Kind = "validation"
	KindConflict   Kind = "conflict"
	KindAuth       Kind = "auth"
	KindForbidden  Kind = "forbidden"
	KindNotFound   Kind = "not_found"
	KindInternal   Kind = "internal"
)

// Error is the error type returned by services. Handlers turn it into a
// JSON error body through response.FromError.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Details any
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches two *Error values by kind and code so that sentinel values
// keep working after WithDetails / Wrap.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Code == t.Code
}

// WithDetails returns a copy of e carrying details.
func (e *Error) WithDetails(details any) *Error {
	cp := *e
	cp.Details = details
	return &cp
}

// Wrap returns a copy of e with cause attached.
func (e *Error) Wrap(cause error) *Error {
	cp := *e
	cp.Err = cause
	return &cp
}

func (e *Error) Status() int {
	switch e.Kind {
	case KindValidation, KindConflict:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func New(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

func Validation(code, message string) *Error { return New(KindValidation, code, message) }
func Conflict(code, message string) *Error   { return New(KindConflict, code, message) }
func Auth(code, message string) *Error       { return New(KindAuth, code, message) }
func Forbidden(code, message string) *Error  { return New(KindForbidden, code, message) }
func NotFound(code, message string) *Error   { return New(KindNotFound, code, message) }

// Internal wraps an unexpected store or infrastructure failure.
func Internal(cause error) *Error {
	return &Error{Kind: KindInternal, Code: "INTERNAL_ERROR", Message: "internal server error", Err: cause}
}

// From extracts an *Error from err, treating anything else as internal.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}

// KindOf reports the kind of err, KindInternal for foreign errors.
func KindOf(err error) Kind {
	return From(err).Kind
}
