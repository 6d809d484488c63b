// Package report assembles and persists the two run artifacts: the
// consolidated Markdown report and the run log.
//
// Design decision: Assembly (Builder) is a pure function of run data and
// performs no I/O; persistence (FileSink) knows nothing about the content
// it writes. This split keeps the report format testable without touching
// the filesystem and lets the pipeline stay ignorant of where output goes.
//
// The report itself is rendered through the nao1215/markdown builder so the
// summary and section structure stay valid GitHub Flavored Markdown.
package report
