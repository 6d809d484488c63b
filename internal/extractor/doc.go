// Package extractor fetches pages and renders selected HTML elements into
// Markdown lines.
//
// Extraction walks a fixed, ordered tag table: for each rule, every matching
// element contributes one line in document order, prefixed with the rule's
// Markdown prefix. Lines are grouped by tag rule, not interleaved in
// document order across tags; the table order is the rendering contract.
//
// Fetch and parse failures are captured in the returned section's Err field
// so that one broken page never aborts a run.
package extractor
