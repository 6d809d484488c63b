package model

import (
	"strings"
	"testing"
	"time"
)

// TestReasonString tests the Reason string representation.
func TestReasonString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		reason Reason
		want   string
	}{
		{ReasonOK, "ok"},
		{ReasonMalformed, "malformed"},
		{ReasonUnreachable, "unreachable"},
		{ReasonNetworkError, "network_error"},
		{Reason(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.reason.String(); got != tt.want {
			t.Errorf("Reason(%d).String() = %q, want %q", tt.reason, got, tt.want)
		}
	}
}

// TestValidationResultLogLine tests the four log line formats.
func TestValidationResultLogLine(t *testing.T) {
	t.Parallel()

	checkedAt := time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		r := ValidationResult{URL: "https://example.com", Reason: ReasonOK, StatusCode: 200, CheckedAt: checkedAt}
		want := "[2025-03-01 10:30:00] ✅ Valid: https://example.com"
		if got := r.LogLine(); got != want {
			t.Errorf("LogLine() = %q, want %q", got, want)
		}
		if !r.Valid() {
			t.Error("expected Valid() to be true")
		}
	})

	t.Run("malformed", func(t *testing.T) {
		t.Parallel()

		r := ValidationResult{URL: "not-a-url", Reason: ReasonMalformed, CheckedAt: checkedAt}
		want := "[2025-03-01 10:30:00] ⛔ Invalid format: not-a-url"
		if got := r.LogLine(); got != want {
			t.Errorf("LogLine() = %q, want %q", got, want)
		}
		if r.Valid() {
			t.Error("expected Valid() to be false")
		}
	})

	t.Run("unreachable", func(t *testing.T) {
		t.Parallel()

		r := ValidationResult{URL: "https://example.com/missing", Reason: ReasonUnreachable, StatusCode: 404, CheckedAt: checkedAt}
		want := "[2025-03-01 10:30:00] 🚫 Unreachable (404): https://example.com/missing"
		if got := r.LogLine(); got != want {
			t.Errorf("LogLine() = %q, want %q", got, want)
		}
	})

	t.Run("network error", func(t *testing.T) {
		t.Parallel()

		r := ValidationResult{URL: "https://down.example.com", Reason: ReasonNetworkError, Message: "connection refused", CheckedAt: checkedAt}
		want := "[2025-03-01 10:30:00] ⚠️ Exception: https://down.example.com | connection refused"
		if got := r.LogLine(); got != want {
			t.Errorf("LogLine() = %q, want %q", got, want)
		}
	})
}

// TestValidationLog tests log accumulation and ordering.
func TestValidationLog(t *testing.T) {
	t.Parallel()

	t.Run("preserves insertion order and trailers last", func(t *testing.T) {
		t.Parallel()

		checkedAt := time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)

		var log ValidationLog
		log.Append(ValidationResult{URL: "https://a.example.com", Reason: ReasonOK, CheckedAt: checkedAt})
		log.Append(ValidationResult{URL: "ftp://x", Reason: ReasonMalformed, CheckedAt: checkedAt})
		log.AppendTrailer(checkedAt, "✅ Scraping complete. Output saved to /tmp/out.txt")

		lines := log.Lines()
		if len(lines) != 3 {
			t.Fatalf("expected 3 lines, got %d", len(lines))
		}
		if !strings.Contains(lines[0], "a.example.com") {
			t.Errorf("first line should be the first result, got %q", lines[0])
		}
		if !strings.Contains(lines[1], "ftp://x") {
			t.Errorf("second line should be the second result, got %q", lines[1])
		}
		if !strings.Contains(lines[2], "Scraping complete") {
			t.Errorf("trailer should be last, got %q", lines[2])
		}
	})

	t.Run("text joins lines with newlines", func(t *testing.T) {
		t.Parallel()

		var log ValidationLog
		log.Append(ValidationResult{URL: "https://a.example.com", Reason: ReasonOK})
		log.Append(ValidationResult{URL: "https://b.example.com", Reason: ReasonOK})

		text := log.Text()
		if got := len(strings.Split(text, "\n")); got != 2 {
			t.Errorf("expected 2 lines in text, got %d", got)
		}
	})
}
