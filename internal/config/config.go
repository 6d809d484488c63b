package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/nao1215/sitetext/internal/model"
)

// Default configuration values.
// The timeouts are asymmetric on purpose: a short probe so dead URLs fail
// fast, a longer fetch for full pages.
const (
	// DefaultProbeTimeout bounds the HEAD reachability probe. Five seconds
	// is enough for any live server to answer a HEAD; longer only delays
	// the verdict on dead hosts.
	DefaultProbeTimeout = 5 * time.Second

	// DefaultFetchTimeout bounds the full-content GET during extraction.
	// Pages are larger than probe responses, so this is double the probe.
	DefaultFetchTimeout = 10 * time.Second

	// DefaultWorkerCount is the extraction pool size. Six concurrent
	// fetches keeps a single operator's run fast without hammering the
	// target site or exhausting local sockets.
	DefaultWorkerCount = 6

	// DefaultMaxBodySize limits the response body size read per page.
	// 5MB is sufficient for any HTML page while preventing memory
	// exhaustion from unexpectedly large responses.
	DefaultMaxBodySize = 5 * 1024 * 1024 // 5MB

	// DefaultUserAgent identifies sitetext in HTTP requests. A descriptive
	// User-Agent lets site operators identify extraction traffic in their logs.
	DefaultUserAgent = "sitetext/1.0 (+https://github.com/nao1215/sitetext)"

	// AppName is the application name, used for the default output directory.
	AppName = "sitetext"
)

// Config holds all configuration options for sitetext.
// It is populated from defaults, an optional YAML file, and CLI flags,
// then passed through the application via dependency injection.
type Config struct {
	// InputPath is the path of the input URL list file.
	// Empty means the interactive input source must supply it.
	InputPath string

	// OutputDir is the directory where the report and log files are
	// written. Empty means use XDGOutputDir().
	OutputDir string

	// ProbeTimeout bounds each HEAD reachability probe.
	ProbeTimeout time.Duration

	// FetchTimeout bounds each full-content GET.
	FetchTimeout time.Duration

	// Workers is the number of concurrent extraction workers.
	Workers int

	// MaxBodySize is the maximum response body size in bytes to read
	// per page during extraction.
	MaxBodySize int64

	// UserAgent is the User-Agent header sent with all requests.
	UserAgent string

	// TagRules is the ordered tag extraction table. Order defines the
	// rendering order of tag groups within each page section.
	TagRules []model.TagRule

	// ConfigFilePath is an explicit config file path from the CLI.
	// Empty means search for .sitetext in the usual locations.
	ConfigFilePath string

	// Verbose enables slog.LevelDebug output. When false, only warnings
	// and errors are logged.
	Verbose bool
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{
		ProbeTimeout: DefaultProbeTimeout,
		FetchTimeout: DefaultFetchTimeout,
		Workers:      DefaultWorkerCount,
		MaxBodySize:  DefaultMaxBodySize,
		UserAgent:    DefaultUserAgent,
		TagRules:     model.DefaultTagRules(),
	}
}

// Validate checks the configuration for invalid values.
// It returns one of the package sentinel errors on failure.
func (c *Config) Validate() error {
	if c.Workers <= 0 {
		return ErrInvalidWorkerCount
	}
	if c.ProbeTimeout <= 0 || c.FetchTimeout <= 0 {
		return ErrInvalidTimeout
	}
	if c.MaxBodySize <= 0 {
		return ErrInvalidMaxBodySize
	}
	if len(c.TagRules) == 0 {
		return ErrEmptyTagRules
	}
	for _, r := range c.TagRules {
		if r.Tag == "" {
			return ErrEmptyTagRules
		}
	}
	return nil
}

// ResolvedOutputDir returns the directory output files are written to,
// falling back to the XDG default when none is configured.
func (c *Config) ResolvedOutputDir() string {
	if c.OutputDir != "" {
		return c.OutputDir
	}
	return XDGOutputDir()
}

// XDGOutputDir returns the default output directory following the XDG
// user-directories specification: a sitetext folder under the user's
// documents directory. The reports are user-facing documents, not
// application data, so UserDirs.Documents is the right base.
func XDGOutputDir() string {
	return filepath.Join(xdg.UserDirs.Documents, AppName)
}
