package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/nao1215/sitetext/internal/model"
)

// outputTimeFormat is the run timestamp embedded in output file names.
const outputTimeFormat = "20060102-150405"

// ValidateFunc checks one URL and reports the outcome as data.
type ValidateFunc func(ctx context.Context, url string) model.ValidationResult

// ReportBuilder assembles the two output artifacts from run data.
// Implemented by report.Builder; an interface here keeps the steps
// testable without rendering real Markdown.
type ReportBuilder interface {
	// Build renders the consolidated report text.
	Build(report *model.RunReport) string

	// BuildLog renders the run log text.
	BuildLog(log *model.ValidationLog) string
}

// LoadStep reads the input URL list through the InputSource collaborator.
// A missing or unreadable input is the only fatal failure of the whole
// pipeline; it surfaces as a wrapped input.ErrInputNotFound.
type LoadStep struct {
	source InputSource
}

// NewLoadStep creates the input loading step.
func NewLoadStep(source InputSource) *LoadStep {
	return &LoadStep{source: source}
}

// Name returns the step name.
func (s *LoadStep) Name() string {
	return "load"
}

// Do reads and trims the input lines.
func (s *LoadStep) Do(_ context.Context, run *model.Run) error {
	urls, err := s.source.ReadLines(run.InputPath)
	if err != nil {
		return fmt.Errorf("load input %s: %w", run.InputPath, err)
	}

	run.URLs = urls
	run.State = model.StateURLsLoaded
	return nil
}

// ValidateStep checks every loaded URL in input order, accumulating the
// validation log and the valid-URL subsequence.
//
// Validation is sequential on purpose: the per-URL log lines must come out
// in clean input order, and order reproducibility matters more here than
// parallel speedup. The expensive concurrent work happens in ExtractStep.
type ValidateStep struct {
	validate ValidateFunc
	progress ProgressReporter
	logger   *slog.Logger
	now      func() time.Time
}

// ValidateStepOption configures a ValidateStep.
type ValidateStepOption func(*ValidateStep)

// WithValidateProgress sets the progress reporter for the validation phase.
func WithValidateProgress(progress ProgressReporter) ValidateStepOption {
	return func(s *ValidateStep) {
		s.progress = progress
	}
}

// WithValidateLogger sets a custom logger for the validation step.
func WithValidateLogger(logger *slog.Logger) ValidateStepOption {
	return func(s *ValidateStep) {
		s.logger = logger
	}
}

// withValidateNow overrides the clock. Test use only.
func withValidateNow(now func() time.Time) ValidateStepOption {
	return func(s *ValidateStep) {
		s.now = now
	}
}

// NewValidateStep creates the validation step around the given check.
func NewValidateStep(validate ValidateFunc, opts ...ValidateStepOption) *ValidateStep {
	s := &ValidateStep{
		validate: validate,
		progress: NopProgress{},
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = slog.Default()
	}

	return s
}

// Name returns the step name.
func (s *ValidateStep) Name() string {
	return "validate"
}

// Do validates all URLs. When none pass, it records the abort trailer and
// returns ErrNoValidURLs so the controller can take the log-only path.
func (s *ValidateStep) Do(ctx context.Context, run *model.Run) error {
	for i, url := range run.URLs {
		result := s.validate(ctx, url)
		run.Log.Append(result)
		if result.Valid() {
			run.ValidURLs = append(run.ValidURLs, url)
		}
		s.progress.Update(PhaseValidation, i+1, len(run.URLs))
	}

	s.logger.Info("validation complete",
		"scanned", len(run.URLs),
		"valid", len(run.ValidURLs),
	)

	if len(run.ValidURLs) == 0 {
		run.Log.AppendTrailer(s.now(), "❌ No valid URLs to process.")
		run.State = model.StateAborted
		return ErrNoValidURLs
	}

	run.State = model.StateValidated
	return nil
}

// ExtractStep fans the valid URLs out over the dispatcher's worker pool.
type ExtractStep struct {
	dispatcher *Dispatcher
}

// NewExtractStep creates the extraction step.
func NewExtractStep(dispatcher *Dispatcher) *ExtractStep {
	return &ExtractStep{dispatcher: dispatcher}
}

// Name returns the step name.
func (s *ExtractStep) Name() string {
	return "extract"
}

// Do extracts every valid URL. Sections come back in validated-URL order.
func (s *ExtractStep) Do(ctx context.Context, run *model.Run) error {
	run.Sections = s.dispatcher.Run(ctx, run.ValidURLs)
	run.State = model.StateExtracted
	return nil
}

// BuildReportStep derives the RunReport, renders both artifacts, and
// resolves the deterministic output file paths.
type BuildReportStep struct {
	builder   ReportBuilder
	outputDir string
	now       func() time.Time
}

// NewBuildReportStep creates the report building step.
func NewBuildReportStep(builder ReportBuilder, outputDir string) *BuildReportStep {
	return &BuildReportStep{
		builder:   builder,
		outputDir: outputDir,
		now:       time.Now,
	}
}

// Name returns the step name.
func (s *BuildReportStep) Name() string {
	return "build_report"
}

// Do assembles the report and log texts.
func (s *BuildReportStep) Do(_ context.Context, run *model.Run) error {
	run.Report = model.NewRunReport(
		run.StartedAt,
		filepath.Base(run.InputPath),
		len(run.URLs),
		run.Sections,
	)

	run.ReportPath, run.LogPath = OutputPaths(run.InputPath, s.outputDir, run.StartedAt)

	run.ReportText = s.builder.Build(run.Report)

	// The completion trailer carries the output path, so it can only be
	// appended once the paths are resolved.
	run.Log.AppendTrailer(s.now(), fmt.Sprintf("✅ Scraping complete. Output saved to %s", run.ReportPath))
	run.LogText = s.builder.BuildLog(&run.Log)

	run.State = model.StateReportBuilt
	return nil
}

// DeliverStep hands the finished artifacts to the output sink and signals
// completion through the notifier.
type DeliverStep struct {
	sink     OutputSink
	notifier Notifier
}

// NewDeliverStep creates the delivery step.
func NewDeliverStep(sink OutputSink, notifier Notifier) *DeliverStep {
	return &DeliverStep{sink: sink, notifier: notifier}
}

// Name returns the step name.
func (s *DeliverStep) Name() string {
	return "deliver"
}

// Do delivers both artifacts.
func (s *DeliverStep) Do(_ context.Context, run *model.Run) error {
	if err := s.sink.Deliver(run.ReportText, run.LogText, run.ReportPath, run.LogPath); err != nil {
		return fmt.Errorf("deliver output: %w", err)
	}

	s.notifier.Notify("✅ Scraping Complete", fmt.Sprintf("Output saved to:\n%s", run.ReportPath))
	run.State = model.StateDelivered
	return nil
}

// OutputPaths resolves the two deterministic output file paths from the
// input file name and the run start time:
//
//	{base}-{YYYYMMDD-HHMMSS}-full_text_output.txt
//	{base}-{YYYYMMDD-HHMMSS}-log.txt
func OutputPaths(inputPath, outputDir string, startedAt time.Time) (reportPath, logPath string) {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	stamp := startedAt.Format(outputTimeFormat)

	reportPath = filepath.Join(outputDir, fmt.Sprintf("%s-%s-full_text_output.txt", base, stamp))
	logPath = filepath.Join(outputDir, fmt.Sprintf("%s-%s-log.txt", base, stamp))
	return reportPath, logPath
}
