package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes used across the client
const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeBadRequest   = "BAD_REQUEST"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeServerError  = "SERVER_ERROR"
	CodeUnknown      = "UNKNOWN_ERROR"
	CodeNoConnection = "NO_CONNECTION"
	CodeRequest      = "REQUEST_ERROR"
)

// ValidationError is raised by resource services before any request is
// built. It never reaches the network, so callers can distinguish it from
// transport and server failures.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// NewValidation creates a local validation error for a single field.
func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// APIError is a non-2xx response received from the remote service.
type APIError struct {
	Code       string
	StatusCode int
	Message    string
	// FieldErrors carries the per-field messages of a 422 response body
	// shaped {message, errors: {field: [...]}}.
	FieldErrors map[string][]string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Code, e.StatusCode, e.Message)
}

// TransportError means the request was sent but no response was received
// (timeout or connectivity), or the request could not be built at all.
type TransportError struct {
	Code    string
	Message string
	Err     error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// NoConnection creates a transport error for a request that got no response.
func NoConnection(err error) *TransportError {
	return &TransportError{Code: CodeNoConnection, Message: "no se pudo conectar con el servidor", Err: err}
}

// RequestFailed creates a transport error for a request that could not be built.
func RequestFailed(err error) *TransportError {
	return &TransportError{Code: CodeRequest, Message: "error de red", Err: err}
}

// CodeForStatus maps an HTTP status code to the client's error code bucket.
func CodeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return CodeBadRequest
	case http.StatusUnauthorized:
		return CodeUnauthorized
	case http.StatusForbidden:
		return CodeForbidden
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusUnprocessableEntity:
		return CodeValidation
	case http.StatusInternalServerError:
		return CodeServerError
	default:
		return CodeUnknown
	}
}

// IsValidation reports whether err is a local validation error.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err is a 404-class API error.
func IsNotFound(err error) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.StatusCode == http.StatusNotFound
}

// IsTransport reports whether err is a transport-level failure.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// UserMessage returns the human-readable message a store should surface for
// any error coming out of a service call.
func UserMessage(err error, fallback string) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	var ae *APIError
	if errors.As(err, &ae) {
		return ae.Message
	}
	var te *TransportError
	if errors.As(err, &te) {
		return te.Message
	}
	if err != nil {
		return err.Error()
	}
	return fallback
}
