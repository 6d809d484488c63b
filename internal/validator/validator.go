package validator

import (
	"context"
	"net/http"
	"regexp"
	"time"

	"github.com/nao1215/sitetext/internal/config"
	"github.com/nao1215/sitetext/internal/model"
)

// urlPattern is the syntactic gate: an http or https scheme followed by
// anything non-empty. Finer-grained parsing is pointless here because the
// reachability probe is the real arbiter of whether the URL is usable.
var urlPattern = regexp.MustCompile(`^https?://.+`)

// Validator checks one URL at a time and reports the outcome as a
// model.ValidationResult. It is safe for concurrent use.
type Validator struct {
	// client performs the reachability probes. It must follow redirects;
	// http.Client does so by default.
	client *http.Client

	// timeout bounds each probe.
	timeout time.Duration

	// userAgent is sent with each probe request.
	userAgent string

	// now supplies timestamps. Overridable for deterministic tests.
	now func() time.Time
}

// Option configures a Validator.
type Option func(*Validator)

// WithClient sets a custom HTTP client for probes.
func WithClient(client *http.Client) Option {
	return func(v *Validator) {
		v.client = client
	}
}

// WithTimeout sets the per-probe timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(v *Validator) {
		if timeout > 0 {
			v.timeout = timeout
		}
	}
}

// WithUserAgent sets the User-Agent header for probe requests.
func WithUserAgent(userAgent string) Option {
	return func(v *Validator) {
		v.userAgent = userAgent
	}
}

// withNow overrides the clock. Test use only.
func withNow(now func() time.Time) Option {
	return func(v *Validator) {
		v.now = now
	}
}

// New creates a Validator with the given options.
func New(opts ...Option) *Validator {
	v := &Validator{
		client:    &http.Client{},
		timeout:   config.DefaultProbeTimeout,
		userAgent: config.DefaultUserAgent,
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(v)
	}

	return v
}

// Validate checks a single URL. Malformed URLs are rejected without a
// network call; otherwise a HEAD probe is issued under the configured
// timeout. The result is always returned as data, never as an error:
//
//   - ReasonMalformed: does not match the http(s) pattern
//   - ReasonUnreachable: probe answered with status >= 400
//   - ReasonNetworkError: timeout, DNS failure, refused connection, TLS error
//   - ReasonOK: probe answered with status < 400
func (v *Validator) Validate(ctx context.Context, rawURL string) model.ValidationResult {
	result := model.ValidationResult{
		URL:       rawURL,
		CheckedAt: v.now(),
	}

	if !urlPattern.MatchString(rawURL) {
		result.Reason = model.ReasonMalformed
		return result
	}

	probeCtx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(probeCtx, http.MethodHead, rawURL, nil)
	if err != nil {
		// The pattern passed but net/url rejected it, e.g. control
		// characters in the host. Treat as malformed: no probe was possible.
		result.Reason = model.ReasonMalformed
		return result
	}
	req.Header.Set("User-Agent", v.userAgent)

	resp, err := v.client.Do(req)
	if err != nil {
		result.Reason = model.ReasonNetworkError
		result.Message = err.Error()
		return result
	}
	defer resp.Body.Close() //nolint:errcheck // HEAD responses have no body of interest

	result.StatusCode = resp.StatusCode
	if resp.StatusCode >= http.StatusBadRequest {
		result.Reason = model.ReasonUnreachable
		return result
	}

	result.Reason = model.ReasonOK
	return result
}
