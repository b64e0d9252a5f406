package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
// These values are chosen based on typical Help Center API behavior and
// the characteristics of the analysis collaborator.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "hcaudit"

	// DefaultSubdomain is the Zendesk subdomain of the Etsy Help Center.
	// It can be overridden for other Help Center instances via CLI flags
	// or the configuration file.
	DefaultSubdomain = "etsy"

	// DefaultLocale is the Help Center locale used for article lookups.
	// Hardcoded links to other locales are one of the hygiene findings,
	// so audits themselves always go through the canonical locale.
	DefaultLocale = "en-us"

	// DefaultTimeout is set to 30 seconds because Help Center API calls
	// are ordinary HTTPS requests. Analysis calls carry their own, longer
	// timeout since model responses routinely take tens of seconds.
	DefaultTimeout = 30 * time.Second

	// DefaultAnalysisTimeout bounds a single analysis call. Large articles
	// produce large prompts, and the collaborator can take a minute or more
	// to respond; 2 minutes keeps slow responses from hanging a batch forever.
	DefaultAnalysisTimeout = 2 * time.Minute

	// DefaultConcurrency of 3 concurrent audits balances batch throughput
	// against analysis API rate limits. Each audit issues one analysis call,
	// which is the expensive part; higher values tend to trip rate limiting.
	DefaultConcurrency = 3

	// DefaultModel is the analysis model used when none is configured.
	DefaultModel = "gpt-4o"

	// DefaultHistoryLimit is the number of records shown by the history
	// command when no limit is given.
	DefaultHistoryLimit = 20
)

// Config holds all configuration options for hcaudit.
// This struct is designed to be populated from CLI flags, the configuration
// file, and environment variables, then passed through the application via
// dependency injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// (e.g., ZendeskConfig, ReportConfig) for simplicity. The number of options
// is manageable, and nesting would add complexity without significant benefit.
type Config struct {
	// ZendeskSubdomain is the Zendesk subdomain of the Help Center to audit.
	ZendeskSubdomain string

	// ZendeskEmail is the email address used for Zendesk API authentication.
	// Required for fetching articles.
	ZendeskEmail string

	// ZendeskToken is the Zendesk API token paired with ZendeskEmail.
	// Required for fetching articles.
	ZendeskToken string

	// APIKey is the API key for the analysis collaborator.
	// Required for the content analysis step.
	APIKey string

	// Model is the analysis model name. Defaults to DefaultModel.
	Model string

	// Locale is the Help Center locale for article lookups.
	Locale string

	// Timeout is the per-request timeout for Help Center API calls.
	Timeout time.Duration

	// AnalysisTimeout bounds a single analysis call.
	AnalysisTimeout time.Duration

	// Concurrency is the number of audits that run at once in batch mode.
	Concurrency int

	// Verbose enables debug-level logging.
	Verbose bool

	// JSONReport enables structured JSON report output.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output.
	// When false, outputs the JSON report (default).
	// Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	// Directories are created automatically if they don't exist.
	ReportFile string

	// Locators is the list of articles to audit. Each entry is either a
	// numeric article ID or a full Help Center article URL.
	Locators []string

	// ConfigFilePath is an explicit path to the configuration file.
	// When empty, the file is searched in the current and home directories.
	ConfigFilePath string

	// DBDir is the directory path for storing the SQLite audit history.
	// Defaults to the XDG data directory (~/.local/share/hcaudit on Linux).
	DBDir string

	// SaveToDB indicates whether to save audit reports to the database.
	SaveToDB bool

	// HistoryLimit bounds the number of records listed by the history command.
	HistoryLimit int
}

// NewConfig creates a new Config with default values.
// All fields are set to safe, sensible defaults that work for most use cases.
// Users can override specific values after creation.
//
// Design decision: We use a constructor function instead of relying on
// zero values because many defaults are non-zero (e.g., timeout, subdomain).
// This also serves as documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		ZendeskSubdomain: DefaultSubdomain,
		Model:            DefaultModel,
		Locale:           DefaultLocale,
		Timeout:          DefaultTimeout,
		AnalysisTimeout:  DefaultAnalysisTimeout,
		Concurrency:      DefaultConcurrency,
		DBDir:            XDGDataDir(),
		SaveToDB:         true,
		HistoryLimit:     DefaultHistoryLimit,
	}
}

// XDGDataDir returns the XDG data directory for hcaudit.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.local/share/hcaudit
// On macOS: ~/Library/Application Support/hcaudit
// On Windows: %LOCALAPPDATA%\hcaudit
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for hcaudit.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.config/hcaudit
// On macOS: ~/Library/Application Support/hcaudit
// On Windows: %APPDATA%\hcaudit
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid for running audits.
// It returns a specific error describing what is invalid.
//
// Design decision: We validate at the config level rather than at each
// point of use to fail fast and provide clear error messages upfront.
// This is called once after CLI parsing, before any audit begins.
//
// We chose to return the first error found rather than collecting all errors
// because fixing one error often makes others irrelevant.
func (c *Config) Validate() error {
	// We must have at least one article to audit
	if len(c.Locators) == 0 {
		return ErrNoLocator
	}

	// Zendesk credentials are required for article fetching
	if c.ZendeskEmail == "" || c.ZendeskToken == "" {
		return ErrMissingZendeskCredentials
	}

	// The analysis step cannot run without an API key
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}

	// Timeouts must be positive; zero would cause immediate failures
	if c.Timeout <= 0 || c.AnalysisTimeout <= 0 {
		return ErrInvalidTimeout
	}

	// Concurrency must be positive; zero would mean no auditing
	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}

	// JSONReport and MarkdownReport are mutually exclusive
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	if c.HistoryLimit <= 0 {
		return ErrInvalidHistoryLimit
	}

	return nil
}
