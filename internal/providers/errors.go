package providers

import (
	"errors"
	"fmt"
)

// ErrProviderUnavailable is returned when a provider wrapper has nothing to delegate to.
var ErrProviderUnavailable = errors.New("provider unavailable")

// StatusError captures a non-success HTTP response from an upstream provider.
type StatusError struct {
	Provider   string
	StatusCode int
	Status     string
	Body       string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s: unexpected status %d", e.Provider, e.StatusCode)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// AsStatusError attempts to unwrap an error into a StatusError.
func AsStatusError(err error) (*StatusError, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}
	return nil, false
}

// RateLimitError captures rate limit responses from upstream providers.
type RateLimitError struct {
	Provider   string
	StatusCode int
	Remaining  string
	Message    string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "provider rate limited"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}

// StatusCode extracts the upstream HTTP status from a provider error, or 0.
func StatusCode(err error) int {
	if rl, ok := AsRateLimitError(err); ok {
		return rl.StatusCode
	}
	if se, ok := AsStatusError(err); ok {
		return se.StatusCode
	}
	return 0
}
