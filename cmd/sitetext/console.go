package main

import (
	"fmt"
	"io"
	"sync"

	"github.com/nao1215/sitetext/internal/pipeline"
)

// ConsoleProgress reports pipeline progress as single-line counters on a
// terminal. Each phase redraws its own line with a carriage return and
// finishes it with a newline when the last item completes.
type ConsoleProgress struct {
	w  io.Writer
	mu sync.Mutex
}

// NewConsoleProgress creates a progress reporter writing to w.
func NewConsoleProgress(w io.Writer) *ConsoleProgress {
	return &ConsoleProgress{w: w}
}

// Update implements pipeline.ProgressReporter.
// Extraction workers report concurrently, so updates are serialized.
func (p *ConsoleProgress) Update(phase pipeline.Phase, completed, total int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintf(p.w, "\r%s: %d/%d", phase, completed, total)
	if completed >= total {
		fmt.Fprintln(p.w)
	}
}

// ConsoleNotifier announces run completion on the console. It stands in
// for a desktop notification popup in headless environments.
type ConsoleNotifier struct {
	w io.Writer
}

// NewConsoleNotifier creates a notifier writing to w.
func NewConsoleNotifier(w io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{w: w}
}

// Notify implements pipeline.Notifier.
func (n *ConsoleNotifier) Notify(title, message string) {
	fmt.Fprintf(n.w, "%s\n%s\n", title, message)
}
