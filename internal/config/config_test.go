package config

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/nao1215/sitetext/internal/model"
)

// TestNewConfig tests that defaults are applied.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	if cfg.ProbeTimeout != DefaultProbeTimeout {
		t.Errorf("ProbeTimeout = %v, want %v", cfg.ProbeTimeout, DefaultProbeTimeout)
	}
	if cfg.FetchTimeout != DefaultFetchTimeout {
		t.Errorf("FetchTimeout = %v, want %v", cfg.FetchTimeout, DefaultFetchTimeout)
	}
	if cfg.Workers != DefaultWorkerCount {
		t.Errorf("Workers = %d, want %d", cfg.Workers, DefaultWorkerCount)
	}
	if cfg.MaxBodySize != DefaultMaxBodySize {
		t.Errorf("MaxBodySize = %d, want %d", cfg.MaxBodySize, DefaultMaxBodySize)
	}
	if len(cfg.TagRules) != 6 {
		t.Errorf("expected 6 default tag rules, got %d", len(cfg.TagRules))
	}
}

// TestConfigValidate tests configuration validation.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid default config", func(t *testing.T) {
		t.Parallel()

		if err := NewConfig().Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("zero workers", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.Workers = 0
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidWorkerCount) {
			t.Errorf("expected ErrInvalidWorkerCount, got %v", err)
		}
	})

	t.Run("zero probe timeout", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.ProbeTimeout = 0
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidTimeout) {
			t.Errorf("expected ErrInvalidTimeout, got %v", err)
		}
	})

	t.Run("negative fetch timeout", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.FetchTimeout = -1 * time.Second
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidTimeout) {
			t.Errorf("expected ErrInvalidTimeout, got %v", err)
		}
	})

	t.Run("zero max body size", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.MaxBodySize = 0
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidMaxBodySize) {
			t.Errorf("expected ErrInvalidMaxBodySize, got %v", err)
		}
	})

	t.Run("empty tag rules", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.TagRules = nil
		if err := cfg.Validate(); !errors.Is(err, ErrEmptyTagRules) {
			t.Errorf("expected ErrEmptyTagRules, got %v", err)
		}
	})

	t.Run("rule without tag name", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.TagRules = []model.TagRule{{Tag: "", Prefix: "#"}}
		if err := cfg.Validate(); !errors.Is(err, ErrEmptyTagRules) {
			t.Errorf("expected ErrEmptyTagRules, got %v", err)
		}
	})
}

// TestResolvedOutputDir tests output directory resolution.
func TestResolvedOutputDir(t *testing.T) {
	t.Parallel()

	t.Run("explicit directory wins", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.OutputDir = "/tmp/reports"
		if got := cfg.ResolvedOutputDir(); got != "/tmp/reports" {
			t.Errorf("ResolvedOutputDir() = %q, want /tmp/reports", got)
		}
	})

	t.Run("falls back to xdg documents", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		got := cfg.ResolvedOutputDir()
		if !strings.HasSuffix(got, AppName) {
			t.Errorf("ResolvedOutputDir() = %q, want suffix %q", got, AppName)
		}
	})
}
