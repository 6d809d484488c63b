package model

import (
	"fmt"
	"strings"
	"time"
)

// Reason classifies the outcome of validating a single input URL.
//
// Design decision: We use iota-based constants rather than string constants
// for efficiency in comparisons. The String() method provides human-readable
// output when needed.
type Reason int

const (
	// ReasonOK indicates the URL is well-formed and the reachability probe
	// returned a status code below 400.
	ReasonOK Reason = iota

	// ReasonMalformed indicates the URL does not match the http(s) scheme
	// pattern. No network call is made for malformed URLs.
	ReasonMalformed

	// ReasonUnreachable indicates the probe returned a status code of 400 or
	// higher. The status code is recorded in ValidationResult.StatusCode.
	ReasonUnreachable

	// ReasonNetworkError indicates a transport-level failure: timeout, DNS
	// failure, connection refused, or TLS error. The error text is recorded
	// in ValidationResult.Message.
	ReasonNetworkError
)

// String returns a human-readable representation of the reason.
func (r Reason) String() string {
	switch r {
	case ReasonOK:
		return "ok"
	case ReasonMalformed:
		return "malformed"
	case ReasonUnreachable:
		return "unreachable"
	case ReasonNetworkError:
		return "network_error"
	default:
		return "unknown"
	}
}

// LogTimeFormat is the timestamp layout used for run log lines.
const LogTimeFormat = "2006-01-02 15:04:05"

// ValidationResult is the immutable outcome of validating one input URL.
// Many results in input order form the ValidationLog.
type ValidationResult struct {
	// URL is the raw input URL that was checked.
	URL string

	// Reason classifies the outcome.
	Reason Reason

	// StatusCode is the HTTP status returned by the probe.
	// Only meaningful when Reason is ReasonUnreachable or ReasonOK.
	StatusCode int

	// Message holds the transport error text when Reason is ReasonNetworkError.
	Message string

	// CheckedAt is when the validation was performed.
	CheckedAt time.Time
}

// Valid reports whether the URL passed validation.
func (v ValidationResult) Valid() bool {
	return v.Reason == ReasonOK
}

// LogLine renders the result as one timestamped run-log line.
// The emoji tags distinguish the four outcomes at a glance in the log file.
func (v ValidationResult) LogLine() string {
	ts := v.CheckedAt.Format(LogTimeFormat)
	switch v.Reason {
	case ReasonMalformed:
		return fmt.Sprintf("[%s] ⛔ Invalid format: %s", ts, v.URL)
	case ReasonUnreachable:
		return fmt.Sprintf("[%s] 🚫 Unreachable (%d): %s", ts, v.StatusCode, v.URL)
	case ReasonNetworkError:
		return fmt.Sprintf("[%s] ⚠️ Exception: %s | %s", ts, v.URL, v.Message)
	default:
		return fmt.Sprintf("[%s] ✅ Valid: %s", ts, v.URL)
	}
}

// ValidationLog accumulates the per-URL validation lines plus free-form
// trailer lines appended by the pipeline (abort notice, completion notice).
//
// Design decision: The log is an explicit value threaded through the
// pipeline rather than a shared mutable slice appended to from validation
// calls. Validation is sequential, so no synchronization is needed, and if
// it is ever parallelized the append points are already centralized here.
type ValidationLog struct {
	// Results holds one entry per input URL, in input order.
	Results []ValidationResult

	// Trailers holds whole-run lines appended after validation, in order.
	Trailers []string
}

// Append records one validation result.
func (l *ValidationLog) Append(result ValidationResult) {
	l.Results = append(l.Results, result)
}

// AppendTrailer records a timestamped whole-run log line.
func (l *ValidationLog) AppendTrailer(now time.Time, line string) {
	l.Trailers = append(l.Trailers, fmt.Sprintf("[%s] %s", now.Format(LogTimeFormat), line))
}

// Lines returns all log lines in order: per-URL results then trailers.
func (l *ValidationLog) Lines() []string {
	lines := make([]string, 0, len(l.Results)+len(l.Trailers))
	for _, r := range l.Results {
		lines = append(lines, r.LogLine())
	}
	lines = append(lines, l.Trailers...)
	return lines
}

// Text renders the whole log as the run-log file content.
func (l *ValidationLog) Text() string {
	return strings.Join(l.Lines(), "\n")
}
