package pipeline

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/nao1215/sitetext/internal/config"
	"github.com/nao1215/sitetext/internal/model"
	"golang.org/x/sync/errgroup"
)

// ExtractFunc produces the section for one URL. Failures are data inside
// the returned section, never errors.
type ExtractFunc func(ctx context.Context, url string) model.ExtractionSection

// Dispatcher runs extraction over a URL list with bounded parallelism while
// preserving input order in the result.
//
// Design decision: We use errgroup.SetLimit rather than a hand-rolled
// worker pool because it is simpler and handles the concurrency limit
// correctly. Each worker writes its section into a slot addressed by the
// URL's original index, so the output order is fixed by construction and
// needs no locks: distinct goroutines write distinct slots, and g.Wait()
// orders all writes before the read.
type Dispatcher struct {
	// extract produces one section per URL.
	extract ExtractFunc

	// workers is the maximum number of concurrent extractions.
	workers int

	// onProgress, when set, is called after each completed URL with the
	// running completion count and the total. Advisory only.
	onProgress func(completed, total int)

	// logger for structured logging.
	logger *slog.Logger
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithWorkers sets the worker pool size. Non-positive values are ignored.
func WithWorkers(n int) DispatcherOption {
	return func(d *Dispatcher) {
		if n > 0 {
			d.workers = n
		}
	}
}

// WithDispatchProgress sets a completion callback. It may be called from
// any worker goroutine, so it must be safe for concurrent use.
func WithDispatchProgress(fn func(completed, total int)) DispatcherOption {
	return func(d *Dispatcher) {
		d.onProgress = fn
	}
}

// WithDispatchLogger sets a custom logger for the dispatcher.
func WithDispatchLogger(logger *slog.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

// NewDispatcher creates a Dispatcher around the given extraction function.
func NewDispatcher(extract ExtractFunc, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		extract: extract,
		workers: config.DefaultWorkerCount,
	}

	for _, opt := range opts {
		opt(d)
	}

	if d.logger == nil {
		d.logger = slog.Default()
	}

	return d
}

// Run extracts all URLs and returns their sections in input order,
// regardless of completion order. One URL's failure never cancels or
// corrupts sibling work; it surfaces as that URL's section error. Each URL
// is processed exactly once, with no retries.
func (d *Dispatcher) Run(ctx context.Context, urls []string) []model.ExtractionSection {
	d.logger.Info("starting extraction",
		"total_urls", len(urls),
		"workers", d.workers,
	)

	sections := make([]model.ExtractionSection, len(urls))
	var completed atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(d.workers)

	for i, url := range urls {
		g.Go(func() error {
			sections[i] = d.extract(ctx, url)

			done := int(completed.Add(1))
			if d.onProgress != nil {
				d.onProgress(done, len(urls))
			}

			if sections[i].Failed() {
				d.logger.Debug("extraction failed",
					"url", url,
					"error", sections[i].Err,
				)
			}
			return nil
		})
	}

	// Workers never return errors; Wait only orders the slot writes.
	_ = g.Wait() //nolint:errcheck // Per-URL failures are recorded in sections

	d.logger.Info("extraction complete", "total_urls", len(urls))
	return sections
}
