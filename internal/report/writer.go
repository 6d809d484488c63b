package report

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileSink persists run artifacts to the filesystem. It satisfies the
// pipeline's OutputSink collaborator interface.
type FileSink struct{}

// NewFileSink creates a FileSink.
func NewFileSink() *FileSink {
	return &FileSink{}
}

// Deliver writes the report and log files, creating parent directories as
// needed. An empty reportPath means the run aborted: only the log is
// written. Failure to write either file is fatal to delivery; a report
// without its log would hide why URLs were skipped.
func (s *FileSink) Deliver(reportText, logText, reportPath, logPath string) error {
	if reportPath != "" {
		if err := writeFile(reportPath, reportText); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}

	if err := writeFile(logPath, logText); err != nil {
		return fmt.Errorf("write log: %w", err)
	}
	return nil
}

// writeFile writes UTF-8 content, creating the parent directory first.
func writeFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0o600)
}
