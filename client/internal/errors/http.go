package errors

import "fmt"

// NewHTTPError creates a transport error for a non-2xx response.
func NewHTTPError(method, path string, statusCode int, body string) *TransportError {
	return &TransportError{
		Method:     method,
		Path:       path,
		StatusCode: statusCode,
		Body:       body,
		Underlying: fmt.Errorf("unexpected status %d", statusCode),
	}
}

// NewNetworkError creates a transport error for a request that never got a response,
// including requests whose body could not be encoded.
func NewNetworkError(method, path string, err error) *TransportError {
	return &TransportError{
		Method:     method,
		Path:       path,
		StatusCode: 0, // No HTTP status for network errors
		Underlying: err,
	}
}
