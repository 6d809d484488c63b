// Package main provides the entry point for the sitetext CLI.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nao1215/sitetext/internal/config"
	"github.com/nao1215/sitetext/internal/extractor"
	"github.com/nao1215/sitetext/internal/input"
	"github.com/nao1215/sitetext/internal/log"
	"github.com/nao1215/sitetext/internal/model"
	"github.com/nao1215/sitetext/internal/pipeline"
	"github.com/nao1215/sitetext/internal/report"
	"github.com/nao1215/sitetext/internal/validator"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for sitetext.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sitetext [sitemap.txt]",
		Short: "Convert a sitemap URL list into a Markdown text report",
		Long: `sitetext reads a plain-text file of sitemap URLs, validates each one
with a quick reachability probe, extracts the text content of every
reachable page concurrently, and writes a single Markdown report plus a
run log describing the fate of every URL.

When no input file is given as an argument, sitetext asks for the path
interactively.

Examples:
  # Convert a sitemap list using defaults
  sitetext sitemap.txt

  # More workers, custom output directory
  sitetext --workers 10 --output ./reports sitemap.txt

  # Use a custom configuration file
  sitetext -c myconfig.yaml sitemap.txt

Configuration file (.sitetext) example:
  workers: 10
  probe_timeout_sec: 5
  fetch_timeout_sec: 15
  output_dir: ./reports
  tags:
    - tag: title
      prefix: "#"
    - tag: h1
      prefix: "#"
    - tag: p`,
		Args:          cobra.MaximumNArgs(1),
		RunE:          runRootCmd,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Run behavior flags
	cmd.Flags().IntP("workers", "w", config.DefaultWorkerCount,
		"Number of concurrent extraction workers")
	cmd.Flags().DurationP("timeout", "t", config.DefaultFetchTimeout,
		"Fetch timeout for each page request")

	// Output flags
	cmd.Flags().StringP("output", "o", "",
		"Output directory for the report and log files (default: XDG documents directory)")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .sitetext in current or home directory)")

	// Global flags
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runRootCmd executes the conversion run.
func runRootCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.NewLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return run(ctx, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from defaults, the optional configuration
// file, and cobra command flags. Flags the user set explicitly win over
// file values; file values win over defaults.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load overrides from the configuration file.
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently continue with defaults.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		file.Apply(cfg)
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	// Flags override file values only when the user actually set them.
	if cmd.Flags().Changed("workers") {
		cfg.Workers, err = cmd.Flags().GetInt("workers")
		if err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("timeout") {
		cfg.FetchTimeout, err = cmd.Flags().GetDuration("timeout")
		if err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("output") {
		cfg.OutputDir, err = cmd.Flags().GetString("output")
		if err != nil {
			return nil, err
		}
	}

	cfg.Verbose = getVerboseFlag(cmd)

	// Positional argument (input URL list file)
	if len(args) > 0 {
		cfg.InputPath = args[0]
	}

	return cfg, nil
}

// run executes one conversion run end to end.
func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	// The input path may come from the argument or an interactive prompt.
	prompt := input.NewPromptSource(os.Stdin, os.Stderr)
	inputPath, err := prompt.ResolvePath(cfg.InputPath)
	if err != nil {
		return err
	}

	logger.Info("starting run",
		"input", inputPath,
		"workers", cfg.Workers,
		"outputDir", cfg.ResolvedOutputDir(),
	)

	v := validator.New(
		validator.WithTimeout(cfg.ProbeTimeout),
		validator.WithUserAgent(cfg.UserAgent),
	)
	e := extractor.New(
		extractor.WithTimeout(cfg.FetchTimeout),
		extractor.WithUserAgent(cfg.UserAgent),
		extractor.WithMaxBodySize(cfg.MaxBodySize),
	)

	rules := cfg.TagRules
	controller := pipeline.NewController(
		input.NewFileSource(),
		v.Validate,
		func(ctx context.Context, url string) model.ExtractionSection {
			return e.Extract(ctx, url, rules)
		},
		report.NewBuilder(),
		report.NewFileSink(),
		cfg.ResolvedOutputDir(),
		pipeline.WithProgress(NewConsoleProgress(os.Stderr)),
		pipeline.WithNotifier(NewConsoleNotifier(os.Stdout)),
		pipeline.WithControllerWorkers(cfg.Workers),
		pipeline.WithControllerLogger(logger),
	)

	startTime := time.Now()

	result, err := controller.Run(ctx, inputPath)
	if err != nil {
		return err
	}

	elapsed := time.Since(startTime)
	if result.Aborted() {
		fmt.Printf("Run aborted in %s: no valid URLs (log: %s)\n",
			elapsed.Round(time.Millisecond), result.LogPath)
		return nil
	}

	fmt.Printf("Run completed in %s\n", elapsed.Round(time.Millisecond))
	fmt.Printf("  report: %s\n", result.ReportPath)
	fmt.Printf("  log:    %s\n", result.LogPath)
	return nil
}
