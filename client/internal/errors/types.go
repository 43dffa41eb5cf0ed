// Package errors defines the single failure kind of the client SDK.
//
// Every failed call, whether the network failed or the server answered with a
// non-2xx status, surfaces as a *TransportError. The SDK never inspects the
// error further and never retries.
package errors

import (
	stderrors "errors"
	"fmt"
)

// TransportError describes a request that did not complete successfully.
type TransportError struct {
	Method     string
	Path       string
	StatusCode int    // HTTP status code (0 for network-level failures)
	Body       string // Response body, kept for debugging
	Underlying error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s %s: HTTP %d: %v", e.Method, e.Path, e.StatusCode, e.Underlying)
	}
	return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Underlying)
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *TransportError) Unwrap() error {
	return e.Underlying
}

// IsTransportError reports whether err is, or wraps, a *TransportError.
func IsTransportError(err error) bool {
	var te *TransportError
	return stderrors.As(err, &te)
}
