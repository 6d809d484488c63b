package model

import "time"

// RunReport is the assembled result of a whole run, derived from the
// validation log and the extraction sections. It is never mutated after
// construction.
type RunReport struct {
	// RunDate is when the run was performed.
	RunDate time.Time

	// InputFileName is the base name of the input file, for the summary block.
	InputFileName string

	// TotalScanned is the number of URLs read from the input file.
	TotalScanned int

	// TotalValid is the number of URLs that passed validation.
	TotalValid int

	// TotalFailed is the number of URLs that failed validation.
	// Invariant: TotalFailed == TotalScanned - TotalValid.
	TotalFailed int

	// Sections holds one extraction section per valid URL, in input order.
	Sections []ExtractionSection
}

// NewRunReport derives a RunReport from the run inputs. The failure count is
// computed, not supplied, so the counts invariant holds by construction.
func NewRunReport(runDate time.Time, inputFileName string, totalScanned int, sections []ExtractionSection) *RunReport {
	return &RunReport{
		RunDate:       runDate,
		InputFileName: inputFileName,
		TotalScanned:  totalScanned,
		TotalValid:    len(sections),
		TotalFailed:   totalScanned - len(sections),
		Sections:      sections,
	}
}
