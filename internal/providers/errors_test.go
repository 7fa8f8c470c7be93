package providers

import (
	"fmt"
	"strings"
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
	withMsg := &StatusError{Provider: "predictapi", StatusCode: 400, Message: "Invalid team code"}
	if got := withMsg.Error(); !strings.Contains(got, "400") || !strings.Contains(got, "Invalid team code") {
		t.Fatalf("unexpected error string %q", got)
	}

	bare := &StatusError{Provider: "predictapi", StatusCode: 500}
	if got := bare.Error(); got != "predictapi: unexpected status 500" {
		t.Fatalf("unexpected error string %q", got)
	}

	st, ok := AsStatusError(fmt.Errorf("predict: %w", withMsg))
	if !ok || st.StatusCode != 400 {
		t.Fatalf("expected to unwrap status error")
	}
	if _, ok := AsStatusError(fmt.Errorf("plain")); ok {
		t.Fatalf("expected plain error not to unwrap")
	}
}
