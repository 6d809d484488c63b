// Package validator checks syntactic validity and live reachability of
// input URLs before extraction is attempted.
//
// Validation is deliberately cheap: malformed URLs are rejected by pattern
// alone with no network call, and reachable ones are probed with a HEAD
// request under a short timeout. Every outcome is returned as data
// (model.ValidationResult); this package never propagates network errors.
package validator
