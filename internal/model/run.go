package model

import "time"

// State identifies where a run is in the pipeline. Transitions are linear
// with a single branch after validation: a run with no valid URLs is
// aborted instead of extracted.
type State int

const (
	// StateIdle is the initial state before the input file is read.
	StateIdle State = iota

	// StateURLsLoaded means the input lines have been read and trimmed.
	StateURLsLoaded

	// StateValidated means every URL has a ValidationResult.
	StateValidated

	// StateAborted means validation produced no valid URLs. The log is
	// still flushed; no report is built.
	StateAborted

	// StateExtracted means every valid URL has an ExtractionSection.
	StateExtracted

	// StateReportBuilt means the report and log texts are assembled.
	StateReportBuilt

	// StateDelivered means both artifacts were handed to the output sink.
	StateDelivered
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateURLsLoaded:
		return "urls_loaded"
	case StateValidated:
		return "validated"
	case StateAborted:
		return "aborted"
	case StateExtracted:
		return "extracted"
	case StateReportBuilt:
		return "report_built"
	case StateDelivered:
		return "delivered"
	default:
		return "unknown"
	}
}

// Run carries the accumulated state of one pipeline execution. Each step
// reads the fields earlier steps filled in and writes its own.
//
// Design decision: One mutable carrier is passed through the pipeline
// steps instead of returning a new value from each step. Steps run
// strictly in sequence, so there is no
// concurrent access to Run; only the extraction workers run in parallel and
// they write into an index-addressed slice, never into Run directly.
type Run struct {
	// StartedAt is when the run began. Output file names derive from it.
	StartedAt time.Time

	// InputPath is the path of the input URL list file.
	InputPath string

	// URLs holds the trimmed non-empty input lines, in file order.
	URLs []string

	// Log is the validation log accumulated during the run.
	Log ValidationLog

	// ValidURLs is the subsequence of URLs that passed validation.
	ValidURLs []string

	// Sections holds one extraction section per valid URL, in input order.
	Sections []ExtractionSection

	// Report is the derived run report. Nil on the abort path.
	Report *RunReport

	// ReportText and LogText are the serialized artifacts.
	ReportText string
	LogText    string

	// ReportPath and LogPath are the resolved output file paths.
	ReportPath string
	LogPath    string

	// State is the current pipeline state.
	State State
}

// NewRun creates a Run for the given input path, stamped with the given
// start time.
func NewRun(inputPath string, startedAt time.Time) *Run {
	return &Run{
		StartedAt: startedAt,
		InputPath: inputPath,
		State:     StateIdle,
	}
}

// Aborted reports whether the run took the no-valid-URLs branch.
func (r *Run) Aborted() bool {
	return r.State == StateAborted
}
