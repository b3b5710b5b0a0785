// Package errors defines the error types returned by panelkit.
//
// Failures are classified with sentinel errors so callers can branch on the
// kind of failure without knowing the concrete type:
//
//	if errors.IsUnauthorized(err) {
//	    // ask the user to log in again
//	}
//
// APIError classifies itself from its HTTP status, or from the transport
// failure when the request never produced a response.
package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// New is errors.New from the standard library.
var New = errors.New

// Sentinel errors matched by errors.Is.
var (
	// ErrNotFound means the panel has no such resource.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput means an argument or option was rejected before any request.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized means the session is missing, expired, or lacks access.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUnavailable means the panel or the server's node answered with a 5xx.
	ErrUnavailable = errors.New("panel unavailable")

	// ErrTimeout means a request hit its deadline.
	ErrTimeout = errors.New("operation timed out")

	// ErrCanceled means the caller canceled the request.
	ErrCanceled = errors.New("operation canceled")
)

// NotFoundError reports a resource the panel does not know.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}

// Is matches ErrNotFound.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// NewNotFoundError creates a NotFoundError.
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ValidationError reports a bad argument, such as an empty server id or an
// unknown signal.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation failed: " + e.Message
	}
	return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
}

// Is matches ErrInvalidInput.
func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

// NewValidationError creates a ValidationError.
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// WrapValidation reports err as a ValidationError for field. It returns nil
// for a nil err.
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}

// APIError is a failed exchange with the panel API. A zero StatusCode means
// the request never produced a response and Err holds the transport failure.
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
	Err        error
}

func (e *APIError) Error() string {
	where := e.Endpoint
	if where == "" {
		where = "panel API"
	}
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("API error from %s (status %d): %s", where, e.StatusCode, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("API error from %s: %s: %v", where, e.Message, e.Err)
	default:
		return fmt.Sprintf("API error from %s: %s", where, e.Message)
	}
}

// Unwrap returns the transport or decode failure, if any.
func (e *APIError) Unwrap() error { return e.Err }

// Is classifies the error: 401 and 403 match ErrUnauthorized, 404 matches
// ErrNotFound and 5xx matches ErrUnavailable. Without a status, deadline and
// cancellation failures match ErrTimeout and ErrCanceled.
func (e *APIError) Is(target error) bool {
	switch {
	case e.StatusCode == http.StatusUnauthorized, e.StatusCode == http.StatusForbidden:
		return target == ErrUnauthorized
	case e.StatusCode == http.StatusNotFound:
		return target == ErrNotFound
	case e.StatusCode >= http.StatusInternalServerError:
		return target == ErrUnavailable
	case e.StatusCode == 0 && e.Err != nil:
		switch {
		case errors.Is(e.Err, context.DeadlineExceeded):
			return target == ErrTimeout
		case errors.Is(e.Err, context.Canceled):
			return target == ErrCanceled
		}
	}
	return false
}

// NewAPIError creates an APIError for a response with the given status.
func NewAPIError(endpoint string, statusCode int, message string) *APIError {
	return &APIError{Endpoint: endpoint, StatusCode: statusCode, Message: message}
}

// AuthenticationError reports a rejected login or a missing session.
type AuthenticationError struct {
	User    string
	Method  string // "password" or "session"
	Message string
	Err     error
}

func (e *AuthenticationError) Error() string {
	if e.User == "" {
		return fmt.Sprintf("authentication error (%s): %s", e.Method, e.Message)
	}
	return fmt.Sprintf("authentication error for %s (%s): %s", e.User, e.Method, e.Message)
}

// Unwrap returns the underlying cause.
func (e *AuthenticationError) Unwrap() error { return e.Err }

// Is matches ErrUnauthorized.
func (e *AuthenticationError) Is(target error) bool { return target == ErrUnauthorized }

// NewAuthenticationError creates an AuthenticationError.
func NewAuthenticationError(user, method, message string, err error) *AuthenticationError {
	return &AuthenticationError{User: user, Method: method, Message: message, Err: err}
}

// ParseError reports a body that could not be decoded.
type ParseError struct {
	Format  string // "json" or "yaml"
	Source  string // request path or file the data came from
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
	}
	return fmt.Sprintf("parse error in %s from %s: %s", e.Format, e.Source, e.Message)
}

// Unwrap returns the decoder error.
func (e *ParseError) Unwrap() error { return e.Err }

// NewParseError creates a ParseError.
func NewParseError(format, source, message string, err error) *ParseError {
	return &ParseError{Format: format, Source: source, Message: message, Err: err}
}

// WrapParse reports err as a ParseError from source. It returns nil for a
// nil err.
func WrapParse(format, source string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, source, err.Error(), err)
}

// ConfigError reports invalid client or CLI configuration.
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

func (e *ConfigError) Error() string {
	if e.Component == "" {
		return "configuration error: " + e.Message
	}
	return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
}

// Unwrap returns the underlying cause.
func (e *ConfigError) Unwrap() error { return e.Err }

// NewConfigError creates a ConfigError.
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{Component: component, Message: message, Err: err}
}

// IOError reports a failed read or write, such as a truncated response body.
type IOError struct {
	Operation string // "read" or "write"
	Path      string
	Message   string
	Err       error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
	}
	return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
}

// Unwrap returns the underlying cause.
func (e *IOError) Unwrap() error { return e.Err }

// WrapIO reports err as an IOError. It returns nil for a nil err.
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Operation: operation, Path: path, Message: err.Error(), Err: err}
}

// ResourceError reports a failed action on a named resource, such as
// sending a signal or building a request.
type ResourceError struct {
	Operation string // "create", "load", "send"
	Resource  string
	ID        string
	Message   string
	Err       error
}

func (e *ResourceError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("failed to %s %s: %s", e.Operation, e.Resource, e.Message)
	}
	return fmt.Sprintf("failed to %s %s %s: %s", e.Operation, e.Resource, e.ID, e.Message)
}

// Unwrap returns the underlying cause.
func (e *ResourceError) Unwrap() error { return e.Err }

// NewResourceError creates a ResourceError.
func NewResourceError(operation, resource, id string, err error) *ResourceError {
	var message string
	if err != nil {
		message = err.Error()
	}
	return &ResourceError{Operation: operation, Resource: resource, ID: id, Message: message, Err: err}
}

// WrapResource reports err as a ResourceError. It returns nil for a nil err.
func WrapResource(operation, resource, id string, err error) error {
	if err == nil {
		return nil
	}
	return NewResourceError(operation, resource, id, err)
}

// IsNotFound reports whether err matches ErrNotFound.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsValidationError reports whether err matches ErrInvalidInput.
func IsValidationError(err error) bool { return errors.Is(err, ErrInvalidInput) }

// IsUnauthorized reports whether err matches ErrUnauthorized.
func IsUnauthorized(err error) bool { return errors.Is(err, ErrUnauthorized) }

// IsUnavailable reports whether err matches ErrUnavailable.
func IsUnavailable(err error) bool { return errors.Is(err, ErrUnavailable) }

// IsTimeout reports whether err matches ErrTimeout.
func IsTimeout(err error) bool { return errors.Is(err, ErrTimeout) }

// IsCanceled reports whether err matches ErrCanceled.
func IsCanceled(err error) bool { return errors.Is(err, ErrCanceled) }
