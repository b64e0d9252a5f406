package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages. Using errors.New() here rather than fmt.Errorf()
// because we don't need to include dynamic values in these messages.
var (
	// ErrNoLocator is returned when no article locator is specified.
	// This error occurs when the audit command receives no positional arguments.
	ErrNoLocator = errors.New("no article specified: provide an article ID or Help Center URL")

	// ErrMissingZendeskCredentials is returned when the Zendesk email or
	// API token is missing. Both are required for Help Center API access.
	ErrMissingZendeskCredentials = errors.New("missing Zendesk credentials: set email and API token via config file or ZENDESK_EMAIL / ZENDESK_API_TOKEN")

	// ErrMissingAPIKey is returned when no analysis API key is configured.
	// The content analysis step cannot run without one.
	ErrMissingAPIKey = errors.New("missing analysis API key: set it via config file or OPENAI_API_KEY")

	// ErrInvalidTimeout is returned when the timeout is not positive.
	// A timeout of zero or negative would cause immediate request failures.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidConcurrency is returned when the batch concurrency is not
	// positive. A concurrency of zero would mean no audits run at all.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be positive")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrInvalidHistoryLimit is returned when the history listing limit is
	// not positive.
	ErrInvalidHistoryLimit = errors.New("invalid history limit: must be positive")
)
