// Package errors defines the API error taxonomy. Every error that can
// reach a handler carries a stable machine code and the HTTP status it
// maps to, so handlers never pick status codes themselves.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a coded, HTTP-aware error.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Err     error  `json:"-"`
}

func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	default:
		return e.Message
	}
}

// Unwrap exposes the cause to the errors package.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches any *Error sharing the same code, so errors.Is works on
// clones and wrapped variants of a sentinel, not just the sentinel itself.
func (e *Error) Is(target error) bool {
	var t *Error
	if e == nil || !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// New builds a sentinel error.
func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap gives an underlying failure a code, status and caller-facing message.
func Wrap(err error, code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message, Err: err}
}

// Sentinels for every failure class the API can report.
var (
	ErrNotFound   = New("NOT_FOUND", http.StatusNotFound, "resource not found")
	ErrValidation = New("VALIDATION_ERROR", http.StatusBadRequest, "validation failed")
	ErrInternal   = New("INTERNAL_ERROR", http.StatusInternalServerError, "internal server error")
	ErrUpstream   = New("UPSTREAM_UNAVAILABLE", http.StatusBadGateway, "content backend unavailable")
	ErrDisabled   = New("FEATURE_DISABLED", http.StatusNotFound, "feature is disabled")
	ErrCacheMiss  = New("CACHE_MISS", http.StatusInternalServerError, "cache miss")
)

// FromError coerces any error into an *Error. Unknown errors become
// internal errors so their details never leak into a response body.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Status, ErrInternal.Message)
}

// Clone copies a sentinel so the message can be overridden per call site
// without mutating the shared value.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}
