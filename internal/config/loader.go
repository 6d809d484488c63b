package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/nao1215/sitetext/internal/model"
	"gopkg.in/yaml.v3"
)

// Timeout file fields are integer seconds rather than duration strings
// because yaml.v3 has no native time.Duration decoding.

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".sitetext"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File is the YAML configuration file structure. All fields are optional;
// a zero value leaves the corresponding Config field untouched.
//
// Example:
//
//	workers: 8
//	probe_timeout_sec: 3
//	fetch_timeout_sec: 15
//	output_dir: /home/user/reports
//	tags:
//	  - tag: h1
//	    prefix: "#"
//	  - tag: p
//	    prefix: ""
type File struct {
	// Workers overrides the extraction worker count.
	Workers int `yaml:"workers"`

	// ProbeTimeoutSec overrides the HEAD probe timeout, in seconds.
	ProbeTimeoutSec int `yaml:"probe_timeout_sec"`

	// FetchTimeoutSec overrides the full-content fetch timeout, in seconds.
	FetchTimeoutSec int `yaml:"fetch_timeout_sec"`

	// UserAgent overrides the User-Agent header.
	UserAgent string `yaml:"user_agent"`

	// OutputDir overrides the output directory.
	OutputDir string `yaml:"output_dir"`

	// Tags overrides the tag extraction table. The declared order becomes
	// the rendering order, replacing the default table entirely.
	Tags []model.TagRule `yaml:"tags"`
}

// LoadConfigFile loads overrides from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound. Callers should
// handle this error based on whether the path was explicitly specified.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}
	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
//  1. If configPath is specified, use it directly
//  2. Look for .sitetext in the current directory
//  3. Look for .sitetext in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if
// not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	return ""
}

// Apply merges the file overrides into the config. Zero-valued fields in
// the file leave the existing config values in place.
func (f *File) Apply(cfg *Config) {
	if f.Workers > 0 {
		cfg.Workers = f.Workers
	}
	if f.ProbeTimeoutSec > 0 {
		cfg.ProbeTimeout = time.Duration(f.ProbeTimeoutSec) * time.Second
	}
	if f.FetchTimeoutSec > 0 {
		cfg.FetchTimeout = time.Duration(f.FetchTimeoutSec) * time.Second
	}
	if f.UserAgent != "" {
		cfg.UserAgent = f.UserAgent
	}
	if f.OutputDir != "" {
		cfg.OutputDir = f.OutputDir
	}
	if len(f.Tags) > 0 {
		cfg.TagRules = f.Tags
	}
}
