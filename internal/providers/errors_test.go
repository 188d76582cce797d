package providers

import (
	"errors"
	"fmt"
	"testing"
)

func TestRateLimitErrorString(t *testing.T) {
	err := &RateLimitError{
		Provider:   "p",
		StatusCode: 429,
		Message:    "rate limited",
	}
	if got := err.Error(); got == "" || got == "rate limited" {
		t.Fatalf("expected status in error string, got %q", got)
	}

	rl, ok := AsRateLimitError(fmt.Errorf("wrapped: %w", err))
	if !ok || rl == nil {
		t.Fatalf("expected to unwrap rate limit error")
	}

	noStatus := &RateLimitError{}
	if got := noStatus.Error(); got == "" {
		t.Fatalf("expected fallback message")
	}
}

func TestStatusErrorString(t *testing.T) {
	err := &StatusError{Provider: "oddsapi", StatusCode: 401, Body: "invalid key"}
	if got := err.Error(); got != "oddsapi: unexpected status 401: invalid key" {
		t.Fatalf("unexpected error string %q", got)
	}
	if got := (&StatusError{Provider: "espn", StatusCode: 404}).Error(); got != "espn: unexpected status 404" {
		t.Fatalf("unexpected error string %q", got)
	}
}

func TestStatusCode(t *testing.T) {
	if got := StatusCode(fmt.Errorf("x: %w", &StatusError{StatusCode: 502})); got != 502 {
		t.Fatalf("expected 502, got %d", got)
	}
	if got := StatusCode(&RateLimitError{StatusCode: 429}); got != 429 {
		t.Fatalf("expected 429, got %d", got)
	}
	if got := StatusCode(errors.New("dial tcp")); got != 0 {
		t.Fatalf("expected 0 for transport errors, got %d", got)
	}
}
