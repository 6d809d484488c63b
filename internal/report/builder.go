package report

import (
	"fmt"
	"io"

	"github.com/nao1215/markdown"
	"github.com/nao1215/sitetext/internal/model"
)

// Builder renders the report and log texts from run data.
// It holds no state and performs no I/O; both methods are pure functions
// of their inputs.
type Builder struct{}

// NewBuilder creates a Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Build renders the consolidated report: the summary block followed by one
// section per extracted page, in section order.
func (b *Builder) Build(report *model.RunReport) string {
	md := markdown.NewMarkdown(io.Discard)

	b.writeSummary(md, report)
	for _, section := range report.Sections {
		b.writeSection(md, section)
	}

	return md.String()
}

// writeSummary renders the run summary block.
func (b *Builder) writeSummary(md *markdown.Markdown, report *model.RunReport) {
	md.H2("📟 Summary Report")
	md.PlainText("")
	md.BulletList(
		"📅 Run date: "+report.RunDate.Format(model.LogTimeFormat),
		"📄 Input file: "+report.InputFileName,
		fmt.Sprintf("🔗 Total URLs scanned: %d", report.TotalScanned),
		fmt.Sprintf("✅ Pages successfully scraped: %d", report.TotalValid),
		fmt.Sprintf("❌ Pages skipped or failed: %d", report.TotalFailed),
	)
	md.PlainText("")
	md.HorizontalRule()
}

// writeSection renders one page section. The URL header and the closing
// rule are written for failed pages too; only the body differs.
func (b *Builder) writeSection(md *markdown.Markdown, section model.ExtractionSection) {
	md.PlainText("")
	md.H3(fmt.Sprintf("🧽 URL: [%s](%s)", section.URL, section.URL))
	md.PlainTextf("🕒 Scraped at: %s", section.ScrapedAt.Format(model.LogTimeFormat))
	md.PlainText("")

	if section.Failed() {
		md.PlainTextf("❌ **Error accessing %s**: %s", section.URL, section.Err)
	} else {
		for _, line := range section.Lines {
			md.PlainText(line)
		}
	}

	md.PlainText("")
	md.HorizontalRule()
}

// BuildLog renders the run log: the per-URL validation lines in input
// order followed by the whole-run trailer lines.
func (b *Builder) BuildLog(log *model.ValidationLog) string {
	return log.Text()
}
