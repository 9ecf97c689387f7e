// Package apperr defines the single error shape the rest of assetdeck speaks.
// Every boundary (store, server, client) normalizes failures into an *Error
// carrying a cause, a user-facing message, the subsystem label, and an
// HTTP-like status. Not-found and cross-organization access share one status
// so callers cannot probe for records outside their organization.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error is the normalized domain error.
type Error struct {
	Cause    error  // underlying error, may be nil
	Message  string // safe to show to a user
	Label    string // subsystem that produced the error, e.g. "store.locations"
	Status   int    // HTTP-like status code
	Captured bool   // true when the error should be reported to monitoring
}

// Error implements error.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Label, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Label, e.Message)
}

// Unwrap exposes the cause to errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NotFound reports a missing record. Records belonging to another
// organization are reported through this same constructor.
func NotFound(label, message string) *Error {
	if message == "" {
		message = "not found"
	}
	return &Error{Message: message, Label: label, Status: http.StatusNotFound}
}

// Conflict reports a uniqueness or state conflict, e.g. a duplicate name.
func Conflict(label, message string, cause error) *Error {
	return &Error{Cause: cause, Message: message, Label: label, Status: http.StatusConflict}
}

// BadRequest reports invalid caller input.
func BadRequest(label, message string) *Error {
	return &Error{Message: message, Label: label, Status: http.StatusBadRequest}
}

// Internal reports an unexpected failure. Internal errors are flagged for
// capture and show a generic message to the user.
func Internal(label string, cause error) *Error {
	return &Error{
		Cause:    cause,
		Message:  "something went wrong",
		Label:    label,
		Status:   http.StatusInternalServerError,
		Captured: true,
	}
}

// From coerces err into an *Error. Non-domain errors become Internal errors
// under the given label; nil stays nil.
func From(label string, err error) *Error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return Internal(label, err)
}

// StatusOf returns the HTTP-like status for err, defaulting to 500.
func StatusOf(err error) int {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Status
	}
	return http.StatusInternalServerError
}

// MessageOf returns the user-facing message for err.
func MessageOf(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Message
	}
	return "something went wrong"
}

// IsNotFound reports whether err is a 404-shaped domain error.
func IsNotFound(err error) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Status == http.StatusNotFound
}

// IsConflict reports whether err is a 409-shaped domain error.
func IsConflict(err error) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Status == http.StatusConflict
}

// IsUniqueViolation reports whether err looks like a unique-constraint
// violation from the database layer. SQLite reports these as
// "UNIQUE constraint failed: <table>.<column>".
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
