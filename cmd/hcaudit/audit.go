package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/hcaudit/hcaudit/internal/analysis"
	openaiclient "github.com/hcaudit/hcaudit/internal/analysis/openai"
	"github.com/hcaudit/hcaudit/internal/config"
	"github.com/hcaudit/hcaudit/internal/database"
	"github.com/hcaudit/hcaudit/internal/log"
	"github.com/hcaudit/hcaudit/internal/model"
	"github.com/hcaudit/hcaudit/internal/pipeline"
	"github.com/hcaudit/hcaudit/internal/report"
	"github.com/hcaudit/hcaudit/internal/uiverify"
	"github.com/hcaudit/hcaudit/internal/zendesk"
)

// NewAuditCmd creates the audit command.
func NewAuditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit [article-id-or-url]...",
		Short: "Audit Help Center articles for quality issues",
		Long: `Audit fetches Help Center articles and produces a scored quality report.

Each audit:
- Extracts readable text and scans the markup for hardcoded language links
- Verifies that UI elements referenced in the article still exist
- Sends the content to the analysis model for a structured assessment
- Assembles a report with a 0-100 score and categorized issues

Examples:
  # Audit a single article by ID
  hcaudit audit 360000000001

  # Audit by Help Center URL
  hcaudit audit https://help.etsy.com/hc/en-us/articles/360000000001

  # Audit several articles concurrently
  hcaudit audit 360000000001 360000000002 360000000003

  # Output a Markdown report to a file
  hcaudit audit --markdown -o report.md 360000000001

Configuration file (.hcaudit) example:
  zendesk:
    subdomain: etsy
    email: auditor@example.com
    token: your-api-token
  analysis:
    apiKey: sk-...
    model: gpt-4o`,
		Args: cobra.ArbitraryArgs,
		RunE: runAuditCmd,
	}

	// Zendesk connection flags
	cmd.Flags().StringP("subdomain", "s", config.DefaultSubdomain,
		"Zendesk subdomain of the Help Center")
	cmd.Flags().StringP("locale", "l", config.DefaultLocale,
		"Help Center locale for article lookups")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Timeout for each Help Center API request")

	// Analysis flags
	cmd.Flags().StringP("model", "M", config.DefaultModel,
		"Analysis model name")
	cmd.Flags().Duration("analysis-timeout", config.DefaultAnalysisTimeout,
		"Timeout for a single analysis call")

	// Batch auditing flags
	cmd.Flags().IntP("concurrency", "b", config.DefaultConcurrency,
		"Number of concurrent audits")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .hcaudit in current or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")
	cmd.Flags().Bool("no-save", false,
		"Do not save reports to the audit history database")

	return cmd
}

// runAuditCmd executes the audit command.
func runAuditCmd(cmd *cobra.Command, args []string) error {
	// Build config from flags, config file, and environment
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging with credential sanitization
	logger := log.NewSecureLogger(os.Stderr, getVerboseFlag(cmd))
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runAudit(ctx, cfg, logger)
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

// buildConfig creates a Config from cobra command flags, the configuration
// file, and environment variables, in that order of precedence.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.ZendeskSubdomain, err = cmd.Flags().GetString("subdomain")
	if err != nil {
		return nil, err
	}

	cfg.Locale, err = cmd.Flags().GetString("locale")
	if err != nil {
		return nil, err
	}

	cfg.Timeout, err = cmd.Flags().GetDuration("timeout")
	if err != nil {
		return nil, err
	}

	cfg.Model, err = cmd.Flags().GetString("model")
	if err != nil {
		return nil, err
	}

	cfg.AnalysisTimeout, err = cmd.Flags().GetDuration("analysis-timeout")
	if err != nil {
		return nil, err
	}

	cfg.Concurrency, err = cmd.Flags().GetInt("concurrency")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	noSave, err := cmd.Flags().GetBool("no-save")
	if err != nil {
		return nil, err
	}
	cfg.SaveToDB = !noSave

	// Load credentials from the config file.
	// If the user explicitly specified a config file path, error if not found.
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

	// Environment variables are the fallback for credentials
	cfg.ApplyEnvironment()

	// Get positional arguments (article IDs or URLs)
	cfg.Locators = args

	return cfg, nil
}

// timeoutAnalyzer bounds each analysis call with its own deadline.
// Model responses routinely take tens of seconds; without a per-call
// deadline a stuck call would hang the whole batch.
type timeoutAnalyzer struct {
	inner   analysis.Analyzer
	timeout time.Duration
}

// Analyze implements analysis.Analyzer.
func (a *timeoutAnalyzer) Analyze(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()
	return a.inner.Analyze(ctx, prompt)
}

// runAudit executes the audits.
func runAudit(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting audit",
		"articles", len(cfg.Locators),
		"subdomain", cfg.ZendeskSubdomain,
		"concurrency", cfg.Concurrency,
		"saveToDB", cfg.SaveToDB,
	)

	// Open database connection if saving is enabled
	var db *database.AuditDB
	if cfg.SaveToDB {
		var err error
		db, err = database.Open(cfg.DBDir, database.DefaultOptions())
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()
		logger.Info("database opened", "dir", cfg.DBDir)
	}

	client := zendesk.New(cfg.ZendeskSubdomain, cfg.ZendeskEmail, cfg.ZendeskToken,
		zendesk.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		zendesk.WithLocale(cfg.Locale),
		zendesk.WithLogger(logger),
	)
	if !client.CheckConnection(ctx) {
		return fmt.Errorf("failed to connect to the %s Help Center (check credentials)", cfg.ZendeskSubdomain)
	}

	analyzer := &timeoutAnalyzer{
		inner:   openaiclient.NewClient(cfg.APIKey, cfg.Model),
		timeout: cfg.AnalysisTimeout,
	}
	auditor := pipeline.NewAuditor(analyzer,
		pipeline.WithUIVerifier(uiverify.New(uiverify.WithLogger(logger))),
		pipeline.WithAuditorLogger(logger),
	)

	bp := pipeline.NewBatchProcessor(client, auditor,
		pipeline.WithConcurrency(cfg.Concurrency),
		pipeline.WithBatchLogger(logger),
	)

	startTime := time.Now()
	results, err := bp.ProcessBatch(ctx, cfg.Locators)
	if err != nil {
		return err
	}

	// Open the report destination once so batch output lands in one place
	output, closeOutput, err := openReportOutput(cfg)
	if err != nil {
		return err
	}
	defer closeOutput()

	writer := newReportWriter(cfg, output)

	var failures int
	for _, result := range results {
		if result.Err != nil {
			failures++
			fmt.Fprintf(os.Stderr, "Audit error for %s: %v\n", result.Locator, result.Err)
			continue
		}

		for _, warning := range result.Warnings {
			fmt.Fprintf(os.Stderr, "Warning for %s: %s\n", result.Locator, warning)
		}

		if _, err := writer.Write(result.Report); err != nil {
			logger.Error("report output failed", "locator", result.Locator, "error", err)
		}

		if err := saveAuditReport(ctx, db, result.Report, logger); err != nil {
			logger.Error("failed to save audit report", "locator", result.Locator, "error", err)
		}
	}

	elapsed := time.Since(startTime)
	fmt.Fprintf(os.Stderr, "Audited %d article(s) in %s\n",
		len(results)-failures, elapsed.Round(time.Millisecond))

	if failures > 0 {
		return fmt.Errorf("%d of %d audits failed", failures, len(results))
	}
	return nil
}

// openReportOutput resolves the report destination. It returns stdout
// unless an output file is configured, in which case parent directories
// are created and the file is opened with owner-only permissions.
func openReportOutput(cfg *config.Config) (*os.File, func(), error) {
	if cfg.ReportFile == "" {
		return os.Stdout, func() {}, nil
	}

	dir := filepath.Dir(cfg.ReportFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	// Reports may quote article content, so keep them owner-readable only
	f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

// newReportWriter selects the report format. Markdown when requested,
// pretty-printed JSON otherwise.
func newReportWriter(cfg *config.Config, output *os.File) report.Writer {
	if cfg.MarkdownReport {
		return report.NewMarkdownWriter(output)
	}
	return report.NewJSONWriter(output, report.WithPrettyPrint())
}

// saveAuditReport persists a report when the database is enabled.
func saveAuditReport(ctx context.Context, db *database.AuditDB, rep *model.AuditReport, logger *slog.Logger) error {
	if db == nil {
		return nil
	}
	if err := db.SaveReport(ctx, rep); err != nil {
		return err
	}
	logger.Debug("audit report saved", "article_id", rep.ArticleID, "score", rep.OverallScore)
	return nil
}
