package domain

import (
	"errors"
	"fmt"
)

// ErrorKind is the closed set of failure classifications produced by the
// transport layer. Every failed operation maps to exactly one kind.
type ErrorKind string

const (
	ErrorKindUnauthorized ErrorKind = "unauthorized"
	ErrorKindForbidden    ErrorKind = "forbidden"
	ErrorKindNetwork      ErrorKind = "network"
	ErrorKindParsing      ErrorKind = "parsing"
	ErrorKindServer       ErrorKind = "server"
	ErrorKindUnknown      ErrorKind = "unknown"
)

// AppError is a classified failure. Code is set only for ErrorKindServer,
// Cause only for ErrorKindUnknown.
type AppError struct {
	Kind  ErrorKind
	Code  int
	Cause error
}

func (e *AppError) Error() string {
	switch e.Kind {
	case ErrorKindUnauthorized:
		return "unauthorized"
	case ErrorKindForbidden:
		return "forbidden"
	case ErrorKindNetwork:
		return "network failure"
	case ErrorKindParsing:
		return "response parsing failure"
	case ErrorKindServer:
		return fmt.Sprintf("server error (status %d)", e.Code)
	case ErrorKindUnknown:
		if e.Cause != nil {
			return fmt.Sprintf("unknown failure: %v", e.Cause)
		}
		return "unknown failure"
	default:
		return string(e.Kind)
	}
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// AuthFailure reports whether this error invalidates the session.
// Unauthorized and Forbidden are the only kinds that do.
func (e *AppError) AuthFailure() bool {
	return e.Kind == ErrorKindUnauthorized || e.Kind == ErrorKindForbidden
}

func ErrUnauthorized() *AppError { return &AppError{Kind: ErrorKindUnauthorized} }
func ErrForbidden() *AppError    { return &AppError{Kind: ErrorKindForbidden} }
func ErrNetwork() *AppError      { return &AppError{Kind: ErrorKindNetwork} }
func ErrParsing() *AppError      { return &AppError{Kind: ErrorKindParsing} }

func ErrServer(code int) *AppError {
	return &AppError{Kind: ErrorKindServer, Code: code}
}

func ErrUnknown(cause error) *AppError {
	return &AppError{Kind: ErrorKindUnknown, Cause: cause}
}

// AsAppError returns err as an *AppError, folding anything unclassified
// into ErrorKindUnknown so callers always hold a member of the taxonomy.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return ErrUnknown(err)
}
