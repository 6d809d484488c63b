package pipeline

import "errors"

// ErrNoValidURLs signals that every input URL failed validation. It is a
// soft outcome, not a crash: the controller flushes the log, notifies the
// operator, and ends the run cleanly. Steps after validation never execute.
var ErrNoValidURLs = errors.New("no valid URLs to process")
