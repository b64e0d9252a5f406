package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".hcaudit"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File represents the structure of the .hcaudit configuration file.
// All fields are optional; CLI flags and environment variables take
// precedence over file values.
type File struct {
	// Zendesk holds the Help Center connection settings.
	Zendesk struct {
		// Subdomain is the Zendesk subdomain (e.g., "etsy").
		Subdomain string `yaml:"subdomain,omitempty"`

		// Email is the API authentication email.
		Email string `yaml:"email,omitempty"`

		// Token is the API token paired with Email.
		Token string `yaml:"token,omitempty"`

		// Locale overrides the default article locale.
		Locale string `yaml:"locale,omitempty"`
	} `yaml:"zendesk,omitempty"`

	// Analysis holds the analysis collaborator settings.
	Analysis struct {
		// APIKey is the analysis API key.
		APIKey string `yaml:"apiKey,omitempty"`

		// Model overrides the default analysis model.
		Model string `yaml:"model,omitempty"`

		// Timeout overrides the analysis call timeout, in Go duration
		// syntax (e.g., "90s"). Kept as a string because yaml.v3 has no
		// native duration decoding.
		Timeout string `yaml:"timeout,omitempty"`
	} `yaml:"analysis,omitempty"`

	// Concurrency overrides the batch audit concurrency.
	Concurrency int `yaml:"concurrency,omitempty"`
}

// LoadConfigFile loads audit configuration from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound.
// Callers should handle this error appropriately based on whether
// the config file path was explicitly specified by the user.
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
// 1. If configPath is specified, use it directly
// 2. Look for .hcaudit in the current directory
// 3. Look for .hcaudit in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	// If explicit path is provided, use it
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	// Check current directory
	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	// Check home directory
	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	return ""
}

// Apply copies file values into the config for every field the config
// has not already set. CLI flags populate the config before Apply runs,
// so flags win over the file.
func (cf *File) Apply(c *Config) {
	if c.ZendeskSubdomain == "" || c.ZendeskSubdomain == DefaultSubdomain {
		if cf.Zendesk.Subdomain != "" {
			c.ZendeskSubdomain = cf.Zendesk.Subdomain
		}
	}
	if c.ZendeskEmail == "" {
		c.ZendeskEmail = cf.Zendesk.Email
	}
	if c.ZendeskToken == "" {
		c.ZendeskToken = cf.Zendesk.Token
	}
	if cf.Zendesk.Locale != "" && c.Locale == DefaultLocale {
		c.Locale = cf.Zendesk.Locale
	}
	if c.APIKey == "" {
		c.APIKey = cf.Analysis.APIKey
	}
	if cf.Analysis.Model != "" && c.Model == DefaultModel {
		c.Model = cf.Analysis.Model
	}
	if cf.Analysis.Timeout != "" && c.AnalysisTimeout == DefaultAnalysisTimeout {
		if d, err := time.ParseDuration(cf.Analysis.Timeout); err == nil && d > 0 {
			c.AnalysisTimeout = d
		}
	}
	if cf.Concurrency > 0 && c.Concurrency == DefaultConcurrency {
		c.Concurrency = cf.Concurrency
	}
}

// ApplyEnvironment fills credentials from environment variables for
// every credential field that is still empty. The file and flags both
// take precedence; the environment is the fallback of last resort so
// that CI and local shells work without a config file.
func (c *Config) ApplyEnvironment() {
	if c.ZendeskEmail == "" {
		c.ZendeskEmail = os.Getenv("ZENDESK_EMAIL")
	}
	if c.ZendeskToken == "" {
		c.ZendeskToken = os.Getenv("ZENDESK_API_TOKEN")
	}
	if c.APIKey == "" {
		c.APIKey = os.Getenv("OPENAI_API_KEY")
	}
}
