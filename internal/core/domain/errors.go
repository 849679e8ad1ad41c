package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates a local validation failure.
	// No network call is made when validation fails.
	ErrInvalidInput = errors.New("invalid input")

	// ErrServiceNotFound indicates a locator lookup for an
	// unregistered service name.
	ErrServiceNotFound = errors.New("service not found")

	// ErrTransport indicates a network-level or response-parse failure.
	// The request may or may not have reached the remote API.
	ErrTransport = errors.New("transport failure")

	// ErrNotConfigured indicates a required credential or base URL is
	// missing from settings.
	ErrNotConfigured = errors.New("not configured")
)

// RemoteError is a non-2xx response from a remote API. It carries the
// status code and the remote error message when the response body had
// one, otherwise the raw body.
type RemoteError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *RemoteError) Error() string {
	return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.Message)
}

// IsRemoteStatus reports whether err is a RemoteError with the given
// status code.
func IsRemoteStatus(err error, status int) bool {
	var re *RemoteError
	return errors.As(err, &re) && re.StatusCode == status
}
