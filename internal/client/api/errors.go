package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnavailable marks transport-level failures: the request never produced
// an HTTP response (connection refused, DNS, timeout).
var ErrUnavailable = errors.New("server unavailable")

// Error is a non-2xx response from the backend. Message holds the
// human-readable "error" field from the body when the server supplied one.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("server error (%d)", e.StatusCode)
}

// IsUnauthorized reports whether err is a 401 response.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// MessageOr extracts the server-supplied message from err, falling back to
// the given client-chosen string when the server gave none. Every screen
// surfaces request failures through this helper.
func MessageOr(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
