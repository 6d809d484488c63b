package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/nao1215/sitetext/internal/model"
)

// Controller assembles the steps of a run and handles the one branch the
// linear pipeline cannot express: the no-valid-URLs abort, where the log is
// still flushed but no report is built.
type Controller struct {
	source    InputSource
	validate  ValidateFunc
	extract   ExtractFunc
	builder   ReportBuilder
	sink      OutputSink
	notifier  Notifier
	progress  ProgressReporter
	outputDir string
	workers   int
	logger    *slog.Logger
	now       func() time.Time
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithProgress sets the progress reporter for both phases.
func WithProgress(progress ProgressReporter) ControllerOption {
	return func(c *Controller) {
		c.progress = progress
	}
}

// WithNotifier sets the completion notifier.
func WithNotifier(notifier Notifier) ControllerOption {
	return func(c *Controller) {
		c.notifier = notifier
	}
}

// WithControllerWorkers sets the extraction worker count.
func WithControllerWorkers(n int) ControllerOption {
	return func(c *Controller) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithControllerLogger sets a custom logger for the controller.
func WithControllerLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

// withControllerNow overrides the clock. Test use only.
func withControllerNow(now func() time.Time) ControllerOption {
	return func(c *Controller) {
		c.now = now
	}
}

// NewController wires the core components and output collaborators
// together. The validate and extract functions carry their own timeouts;
// the controller only sequences them.
func NewController(
	source InputSource,
	validate ValidateFunc,
	extract ExtractFunc,
	builder ReportBuilder,
	sink OutputSink,
	outputDir string,
	opts ...ControllerOption,
) *Controller {
	c := &Controller{
		source:    source,
		validate:  validate,
		extract:   extract,
		builder:   builder,
		sink:      sink,
		notifier:  NopNotifier{},
		progress:  NopProgress{},
		outputDir: outputDir,
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = slog.Default()
	}

	return c
}

// Run executes one full pipeline over the given input file.
//
// The return contract mirrors the error taxonomy: a missing input is the
// only error; the no-valid-URLs case flushes the log, notifies the
// operator, and returns nil together with the aborted Run.
func (c *Controller) Run(ctx context.Context, inputPath string) (*model.Run, error) {
	run := model.NewRun(inputPath, c.now())

	dispatcher := NewDispatcher(c.extract,
		WithWorkers(c.workers),
		WithDispatchLogger(c.logger),
		WithDispatchProgress(func(completed, total int) {
			c.progress.Update(PhaseExtraction, completed, total)
		}),
	)

	p := New(WithLogger(c.logger))
	p.AddSteps(
		NewLoadStep(c.source),
		NewValidateStep(c.validate,
			WithValidateProgress(c.progress),
			WithValidateLogger(c.logger),
		),
		NewExtractStep(dispatcher),
		NewBuildReportStep(c.builder, c.outputDir),
		NewDeliverStep(c.sink, c.notifier),
	)

	err := p.Execute(ctx, run)
	if err == nil {
		return run, nil
	}

	if errors.Is(err, ErrNoValidURLs) {
		return run, c.abort(run)
	}

	return run, err
}

// abort handles the zero-result outcome: the log file is still written so
// the operator can see why every URL was rejected, but no report exists.
func (c *Controller) abort(run *model.Run) error {
	_, run.LogPath = OutputPaths(run.InputPath, c.outputDir, run.StartedAt)
	run.LogText = c.builder.BuildLog(&run.Log)

	if err := c.sink.Deliver("", run.LogText, "", run.LogPath); err != nil {
		return fmt.Errorf("deliver abort log: %w", err)
	}

	c.notifier.Notify("❌ No Valid URLs", "No valid URLs found. Exiting.")
	c.logger.Warn("run aborted: no valid URLs", "scanned", len(run.URLs))
	return nil
}
