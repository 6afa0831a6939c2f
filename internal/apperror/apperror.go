// Package apperror defines the typed failure outcomes shared by every layer.
// Callers branch on the error kind instead of matching message strings.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind categorizes an application error.
type Kind int

const (
	// Internal is an unspecified server-side failure.
	Internal Kind = iota
	// Database is a failure originating in the storage layer.
	Database
	// Auth means the caller could not be authenticated (missing/invalid credentials).
	Auth
	// Forbidden means the caller is authenticated but lacks the required
	// role or ownership relation for the action.
	Forbidden
	// NotFound means an id did not resolve to an existing entity.
	// An empty list is a success, not a NotFound.
	NotFound
	// Validation means a field was malformed or out of range. Dangling
	// foreign references at creation time are reported as Validation too.
	Validation
	// Conflict means a uniqueness invariant was violated.
	Conflict
)

// Error is the application error type. Err optionally wraps an underlying cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the underlying cause to errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// StatusCode maps the error kind to an HTTP status. Only the transport layer
// should call this; the core deals in kinds.
func (e *Error) StatusCode() int {
	switch e.Kind {
	case Auth:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	case Validation:
		return http.StatusBadRequest
	case Conflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// NewInternal creates an Internal error.
func NewInternal(message string, err error) *Error {
	return &Error{Kind: Internal, Message: message, Err: err}
}

// NewDatabase creates a Database error.
func NewDatabase(message string, err error) *Error {
	return &Error{Kind: Database, Message: message, Err: err}
}

// NewAuth creates an Auth error.
func NewAuth(message string, err error) *Error {
	return &Error{Kind: Auth, Message: message, Err: err}
}

// NewForbidden creates a Forbidden error.
func NewForbidden(message string) *Error {
	return &Error{Kind: Forbidden, Message: message}
}

// NewNotFound creates a NotFound error.
func NewNotFound(message string) *Error {
	return &Error{Kind: NotFound, Message: message}
}

// NewValidation creates a Validation error.
func NewValidation(message string) *Error {
	return &Error{Kind: Validation, Message: message}
}

// NewConflict creates a Conflict error.
func NewConflict(message string) *Error {
	return &Error{Kind: Conflict, Message: message}
}

// FromError returns the *Error in err's chain, if any.
func FromError(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func isKind(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// IsNotFound reports whether err is a NotFound error.
func IsNotFound(err error) bool { return isKind(err, NotFound) }

// IsValidation reports whether err is a Validation error.
func IsValidation(err error) bool { return isKind(err, Validation) }

// IsConflict reports whether err is a Conflict error.
func IsConflict(err error) bool { return isKind(err, Conflict) }

// IsForbidden reports whether err is a Forbidden error.
func IsForbidden(err error) bool { return isKind(err, Forbidden) }

// IsAuth reports whether err is an Auth error.
func IsAuth(err error) bool { return isKind(err, Auth) }
