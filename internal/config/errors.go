package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrInvalidWorkerCount is returned when the worker count is not positive.
	// Zero workers would mean no extraction happens at all.
	ErrInvalidWorkerCount = errors.New("invalid worker count: must be positive")

	// ErrInvalidTimeout is returned when a probe or fetch timeout is not
	// positive. A zero timeout would cause immediate request failures.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidMaxBodySize is returned when the max body size is not positive.
	ErrInvalidMaxBodySize = errors.New("invalid max body size: must be positive")

	// ErrEmptyTagRules is returned when the tag table is empty or contains
	// a rule without a tag name. With no rules nothing could ever be extracted.
	ErrEmptyTagRules = errors.New("invalid tag rules: at least one rule with a tag name is required")
)
