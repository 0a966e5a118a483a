package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/nao1215/snykdup/internal/config"
	"github.com/nao1215/snykdup/internal/log"
	"github.com/nao1215/snykdup/internal/model"
	"github.com/nao1215/snykdup/internal/pipeline"
	"github.com/nao1215/snykdup/internal/report"
	"github.com/nao1215/snykdup/internal/snyk"
	"github.com/spf13/cobra"
)

// NewScanCmd creates the scan command.
func NewScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <org-id>",
		Short: "Find duplicate projects in a Snyk organization",
		Long: `Scan fetches every project of the organization from the Snyk REST API,
groups them by target (repository) and project name, and reports names that
appear more than once under the same target.

The report goes to stdout as JSON by default; diagnostics always go to
stderr, so the JSON output stays pipe-friendly.

Examples:
  # Report duplicates for an organization (token from SNYK_TOKEN)
  snykdup scan 0d3b07f8-72b0-4b3f-b03a-3f7ee9e0d9a3

  # Provide the token explicitly and write the report to a file
  snykdup scan --api-token <token> -o duplicates.json <org-id>

  # Markdown report for sharing
  snykdup scan --markdown -o duplicates.md <org-id>

  # Use a non-default regional endpoint
  snykdup scan --endpoint https://api.snyk.io/rest <org-id>

Configuration file (.snykdup) example:
  endpoint: https://api.snyk.io/rest
  api_version: "2025-11-05"
  limit: 100`,
		Args: cobra.ExactArgs(1),
		RunE: runScanCmd,
	}

	// API connection flags
	cmd.Flags().StringP("api-token", "t", "",
		"Snyk API token (default: SNYK_TOKEN environment variable)")
	cmd.Flags().String("endpoint", config.DefaultEndpoint,
		"Snyk REST API base URL")
	cmd.Flags().String("api-version", config.DefaultAPIVersion,
		"Snyk REST API version date")
	cmd.Flags().Int("limit", config.DefaultPageLimit,
		"Page size for the projects collection (multiple of 10, minimum 10)")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .snykdup in current or home directory)")

	// Report flags
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report instead of JSON")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	return cmd
}

// runScanCmd executes the scan command.
func runScanCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	// Validate configuration before any network call
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging on stderr; the primary output stream is
	// reserved for the report.
	logger := log.NewSecureLogger(os.Stderr, cfg.Verbose)
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

	return runScan(ctx, cfg, logger)
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

// buildConfig creates a Config from cobra command flags and the optional
// configuration file. Precedence: flags > config file > defaults.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.OrgID = args[0]
	cfg.Verbose = getVerboseFlag(cmd)

	var err error

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load connection overrides from the config file, if any.
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently skip when no file is found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cf, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cf.Apply(cfg)
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	// Flag values override the config file, but only when actually set.
	if cmd.Flags().Changed("endpoint") {
		if cfg.Endpoint, err = cmd.Flags().GetString("endpoint"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("api-version") {
		if cfg.APIVersion, err = cmd.Flags().GetString("api-version"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("limit") {
		if cfg.PageLimit, err = cmd.Flags().GetInt("limit"); err != nil {
			return nil, err
		}
	}

	tokenFlag, err := cmd.Flags().GetString("api-token")
	if err != nil {
		return nil, err
	}
	cfg.APIToken = config.ResolveToken(tokenFlag)

	cfg.Markdown, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.OutputFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// runScan executes the fetch-analyze pipeline and writes the report.
func runScan(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting duplicate scan",
		"org", cfg.OrgID,
		"endpoint", cfg.Endpoint,
		"apiVersion", cfg.APIVersion,
		"limit", cfg.PageLimit,
	)

	client, err := snyk.NewClient(cfg.APIToken,
		snyk.WithBaseURL(cfg.Endpoint),
		snyk.WithAPIVersion(cfg.APIVersion),
		snyk.WithPageLimit(cfg.PageLimit),
		snyk.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("failed to create Snyk client: %w", err)
	}

	p := pipeline.DefaultPipeline(client, pipeline.WithLogger(logger))
	state := pipeline.NewScanState(cfg.OrgID)

	if err := p.Execute(ctx, state); err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	rep := report.NewReport(cfg.OrgID, state.Duplicates)

	if err := outputReport(cfg, rep); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if cfg.OutputFile != "" {
		logger.Info("report written", "path", cfg.OutputFile)
	}
	return nil
}

// outputReport writes the report in the requested format to the configured
// destination (stdout or a file).
func outputReport(cfg *config.Config, rep *model.Report) error {
	// Determine output destination
	var output *os.File
	if cfg.OutputFile != "" {
		// Create directories if they don't exist
		dir := filepath.Dir(cfg.OutputFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		// Create/overwrite the output file
		f, err := os.OpenFile(cfg.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close() //nolint:errcheck // Best effort close after write
		output = f
	} else {
		output = os.Stdout
	}

	var writer report.Writer
	if cfg.Markdown {
		writer = report.NewMarkdownWriter(output)
	} else {
		writer = report.NewJSONWriter(output, report.WithPrettyPrint())
	}

	_, err := writer.Write(rep)
	return err
}
