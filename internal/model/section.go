package model

import "time"

// ExtractionSection holds the extracted content of one page.
// Exactly one section is produced per valid URL, independent of all others.
//
// Design decision: Fetch and parse failures are carried as data in Err
// rather than as error returns. A single page failing must never abort the
// run; the report renders the failure inline in that page's section.
type ExtractionSection struct {
	// URL is the page that was fetched.
	URL string

	// ScrapedAt is when the fetch was performed.
	ScrapedAt time.Time

	// Lines holds the rendered Markdown lines, grouped by tag rule order.
	// Within one tag type, document order is preserved. Empty on failure.
	Lines []string

	// Err holds a formatted failure message when the fetch or parse failed.
	// Empty on success.
	Err string
}

// Failed reports whether extraction of this page failed.
func (s ExtractionSection) Failed() bool {
	return s.Err != ""
}
