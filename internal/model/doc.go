// Package model defines the core data structures used throughout sitetext.
//
// This package contains the following main types:
//   - TagRule: An HTML tag name paired with its Markdown line prefix
//   - ValidationResult: The outcome of checking one input URL
//   - ValidationLog: The ordered per-URL log accumulated during validation
//   - ExtractionSection: The extracted content of one page
//   - RunReport: The assembled summary and sections of a whole run
//   - Run: The state carrier threaded through the pipeline
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (validator, extractor, pipeline, report)
// need to use these types, so centralizing them prevents import cycles.
//
// All types except Run are value types that are never mutated after
// construction: each pipeline stage produces new values consumed by the next.
package model
