package pipeline

// Phase identifies a coarse pipeline phase for progress reporting.
type Phase string

const (
	// PhaseValidation is the sequential URL validation pass.
	PhaseValidation Phase = "validation"

	// PhaseExtraction is the concurrent page extraction pass.
	PhaseExtraction Phase = "extraction"
)

// InputSource supplies the raw URL list. Implementations read from a file,
// a prompt, or anything else that can produce lines.
type InputSource interface {
	// ReadLines returns the trimmed non-empty lines of the input.
	// A missing or unreadable source fails with input.ErrInputNotFound.
	ReadLines(path string) ([]string, error)
}

// ProgressReporter receives advisory progress updates. Calls never affect
// correctness; implementations may drop them entirely.
type ProgressReporter interface {
	// Update reports that completed of total units finished in the phase.
	Update(phase Phase, completed, total int)
}

// OutputSink persists the finished artifacts. The pipeline does not know or
// care how they are stored or displayed.
type OutputSink interface {
	// Deliver hands over the report and log texts together with their
	// resolved destination paths. An empty reportPath means the run
	// aborted and only the log is to be persisted.
	Deliver(reportText, logText, reportPath, logPath string) error
}

// Notifier signals user-facing run milestones (completion, abort).
type Notifier interface {
	// Notify presents a short titled message to the operator.
	Notify(title, message string)
}

// NopProgress is a ProgressReporter that discards all updates.
type NopProgress struct{}

// Update implements ProgressReporter.
func (NopProgress) Update(Phase, int, int) {}

// NopNotifier is a Notifier that discards all notifications.
type NopNotifier struct{}

// Notify implements Notifier.
func (NopNotifier) Notify(string, string) {}
