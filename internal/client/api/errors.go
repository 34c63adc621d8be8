package api

import (
	"errors"
	"fmt"
	"net/http"
)

// AuthError is returned by Login and Register when the server rejects the
// credentials or the request never completes. Detail carries the server's
// human-readable message when one was provided.
type AuthError struct {
	Err        error
	Detail     string
	StatusCode int // 0 when the request failed before a response arrived
}

func (e *AuthError) Error() string {
	return e.Message()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// Message returns the text to show the user: the server detail, or a generic
// fallback when the server provided none.
func (e *AuthError) Message() string {
	if e.Detail == "" {
		return "Authentication failed"
	}
	return e.Detail
}

// FetchError is returned by catalog and favorites calls on network failure or
// a non-2xx response. It is recorded for diagnostics, not shown to the user.
type FetchError struct {
	Err        error
	StatusCode int // 0 when the request failed before a response arrived
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("request failed with status %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsUnauthorized reports whether err is a FetchError caused by a 401 response.
// A restored token can go stale at any time; the surrounding application must
// treat this as an implicit logout trigger.
func IsUnauthorized(err error) bool {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr.StatusCode == http.StatusUnauthorized
	}
	return false
}
