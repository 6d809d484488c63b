package extractor

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/nao1215/sitetext/internal/config"
	"github.com/nao1215/sitetext/internal/model"
	"golang.org/x/text/unicode/norm"
)

// Extractor fetches a page and renders the text of selected tags into
// Markdown lines. It is stateless apart from its configuration and safe
// for concurrent use; the extraction workers share one instance.
type Extractor struct {
	// client performs the full-content fetches.
	client *http.Client

	// timeout bounds each fetch. Longer than the validation probe because
	// full pages are larger than probe responses.
	timeout time.Duration

	// userAgent is sent with each fetch request.
	userAgent string

	// maxBodySize limits the response body size read per page.
	// Larger bodies are truncated to prevent memory exhaustion.
	maxBodySize int64

	// now supplies the scrape timestamps. Overridable for tests.
	now func() time.Time
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithClient sets a custom HTTP client for fetches.
func WithClient(client *http.Client) Option {
	return func(e *Extractor) {
		e.client = client
	}
}

// WithTimeout sets the per-fetch timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(e *Extractor) {
		if timeout > 0 {
			e.timeout = timeout
		}
	}
}

// WithUserAgent sets the User-Agent header for fetch requests.
func WithUserAgent(userAgent string) Option {
	return func(e *Extractor) {
		e.userAgent = userAgent
	}
}

// WithMaxBodySize sets the maximum response body size in bytes.
func WithMaxBodySize(maxBodySize int64) Option {
	return func(e *Extractor) {
		if maxBodySize > 0 {
			e.maxBodySize = maxBodySize
		}
	}
}

// withNow overrides the clock. Test use only.
func withNow(now func() time.Time) Option {
	return func(e *Extractor) {
		e.now = now
	}
}

// New creates an Extractor with the given options.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		client:      &http.Client{},
		timeout:     config.DefaultFetchTimeout,
		userAgent:   config.DefaultUserAgent,
		maxBodySize: config.DefaultMaxBodySize,
		now:         time.Now,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Extract fetches one URL and renders the text of the configured tags.
// It always returns a section: fetch, status, and parse failures are
// recorded in the section's Err field rather than returned as errors.
// Calling it twice on the same URL is safe; only the timestamp and the
// live content can differ.
func (e *Extractor) Extract(ctx context.Context, rawURL string, rules []model.TagRule) model.ExtractionSection {
	section := model.ExtractionSection{
		URL:       rawURL,
		ScrapedAt: e.now(),
	}

	body, err := e.fetch(ctx, rawURL)
	if err != nil {
		section.Err = err.Error()
		return section
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		section.Err = fmt.Sprintf("parse failed: %s", err)
		return section
	}

	section.Lines = renderLines(doc, rules)
	return section
}

// fetch downloads the page body under the configured timeout and size limit.
func (e *Extractor) fetch(ctx context.Context, rawURL string) (string, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(fetchCtx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", e.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := e.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close() //nolint:errcheck // Body is fully consumed below

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("unexpected status: %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, e.maxBodySize))
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// renderLines walks the tag table in order and emits one line per matching
// element with non-empty text. Within one tag, goquery preserves document
// order; across tags, the table order wins.
func renderLines(doc *goquery.Document, rules []model.TagRule) []string {
	var lines []string
	for _, rule := range rules {
		doc.Find(rule.Tag).Each(func(_ int, sel *goquery.Selection) {
			text := normalizeText(sel.Text())
			if text == "" {
				return
			}
			if rule.Prefix != "" {
				lines = append(lines, rule.Prefix+" "+text)
				return
			}
			lines = append(lines, text)
		})
	}
	return lines
}

// normalizeText produces the rendered visible text of one element: NFC
// normalized so report bytes do not depend on the page's encoder, with all
// runs of whitespace collapsed to single spaces and the ends trimmed.
func normalizeText(s string) string {
	return strings.Join(strings.Fields(norm.NFC.String(s)), " ")
}
