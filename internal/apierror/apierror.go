// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

import (
	"errors"
	"net/http"
)

// Kind classifies every error a service can return. The set is closed:
// anything that is not one of these kinds is an internal error.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindValidation
	KindInvalidState
	KindInsufficientFunds
	KindInsufficientStock
	KindConfiguration
)

// Error is the typed error returned by the service layer. Msg is safe to show
// to clients; Err carries the underlying cause for logging only.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string { return e.Msg }
func (e *Error) Unwrap() error { return e.Err }

func NotFound(msg string) *Error          { return &Error{Kind: KindNotFound, Msg: msg} }
func Validation(msg string) *Error        { return &Error{Kind: KindValidation, Msg: msg} }
func InvalidState(msg string) *Error      { return &Error{Kind: KindInvalidState, Msg: msg} }
func InsufficientFunds(msg string) *Error { return &Error{Kind: KindInsufficientFunds, Msg: msg} }
func InsufficientStock(msg string) *Error { return &Error{Kind: KindInsufficientStock, Msg: msg} }

// Configuration marks a missing catalog row or similar boot-time misconfiguration.
// Not user-recoverable — surfaced as 500.
func Configuration(msg string, cause error) *Error {
	return &Error{Kind: KindConfiguration, Msg: msg, Err: cause}
}

func Internal(msg string, cause error) *Error {
	return &Error{Kind: KindInternal, Msg: msg, Err: cause}
}

// KindOf extracts the Kind from any error chain. Untyped errors are internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// HTTPStatus maps a service error to the status code the HTTP layer returns.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation, KindInvalidState, KindInsufficientFunds, KindInsufficientStock:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}
