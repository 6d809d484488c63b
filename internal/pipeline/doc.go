// Package pipeline orchestrates a full extraction run as a sequence of steps.
//
// A run moves linearly through the states load, validate, extract, build,
// deliver, with one branch: when validation leaves no usable URLs the run
// aborts after flushing the log. Each step implements the Step interface and
// receives the shared model.Run carrier.
//
// Design decision: We use a step pipeline instead of direct function calls
// because:
//  1. It allows easy addition/removal of steps without modifying core logic
//  2. It provides consistent error handling and logging across steps
//  3. It supports cancellation via context between steps
//
// Only the extraction phase is concurrent; the Dispatcher fans valid URLs
// out over a bounded worker pool and reorders results back to input order.
// Presentation concerns (progress display, file persistence, user
// notification, interactive input) sit behind the collaborator interfaces
// in this package and are implemented elsewhere.
package pipeline
