package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// validConfig returns a config that passes validation.
func validConfig() *Config {
	c := NewConfig()
	c.Locators = []string{"360000000001"}
	c.ZendeskEmail = "auditor@example.com"
	c.ZendeskToken = "token"
	c.APIKey = "key"
	return c
}

// TestNewConfig tests that defaults are populated.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	c := NewConfig()
	if c.ZendeskSubdomain != DefaultSubdomain {
		t.Errorf("expected default subdomain, got %q", c.ZendeskSubdomain)
	}
	if c.Locale != DefaultLocale {
		t.Errorf("expected default locale, got %q", c.Locale)
	}
	if c.Timeout != DefaultTimeout {
		t.Errorf("expected default timeout, got %v", c.Timeout)
	}
	if c.Concurrency != DefaultConcurrency {
		t.Errorf("expected default concurrency, got %d", c.Concurrency)
	}
	if c.DBDir == "" {
		t.Error("expected a default database directory")
	}
	if !c.SaveToDB {
		t.Error("expected history saving on by default")
	}
}

// TestValidate tests configuration validation.
func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:    "valid config passes",
			mutate:  func(*Config) {},
			wantErr: nil,
		},
		{
			name:    "no locator",
			mutate:  func(c *Config) { c.Locators = nil },
			wantErr: ErrNoLocator,
		},
		{
			name:    "missing zendesk email",
			mutate:  func(c *Config) { c.ZendeskEmail = "" },
			wantErr: ErrMissingZendeskCredentials,
		},
		{
			name:    "missing zendesk token",
			mutate:  func(c *Config) { c.ZendeskToken = "" },
			wantErr: ErrMissingZendeskCredentials,
		},
		{
			name:    "missing api key",
			mutate:  func(c *Config) { c.APIKey = "" },
			wantErr: ErrMissingAPIKey,
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.Timeout = 0 },
			wantErr: ErrInvalidTimeout,
		},
		{
			name:    "negative analysis timeout",
			mutate:  func(c *Config) { c.AnalysisTimeout = -time.Second },
			wantErr: ErrInvalidTimeout,
		},
		{
			name:    "zero concurrency",
			mutate:  func(c *Config) { c.Concurrency = 0 },
			wantErr: ErrInvalidConcurrency,
		},
		{
			name: "conflicting report formats",
			mutate: func(c *Config) {
				c.JSONReport = true
				c.MarkdownReport = true
			},
			wantErr: ErrConflictingReportFormats,
		},
		{
			name:    "zero history limit",
			mutate:  func(c *Config) { c.HistoryLimit = 0 },
			wantErr: ErrInvalidHistoryLimit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := validConfig()
			tt.mutate(c)
			if err := c.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

// TestLoadConfigFile tests YAML configuration loading.
func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("loads a valid file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		content := `zendesk:
  subdomain: example
  email: auditor@example.com
  token: secret
analysis:
  model: gpt-4o-mini
  timeout: 90s
concurrency: 5
`
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}

		cf, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cf.Zendesk.Subdomain != "example" {
			t.Errorf("expected subdomain 'example', got %q", cf.Zendesk.Subdomain)
		}
		if cf.Analysis.Timeout != "90s" {
			t.Errorf("expected raw timeout '90s', got %q", cf.Analysis.Timeout)
		}

		c := NewConfig()
		cf.Apply(c)
		if c.AnalysisTimeout != 90*time.Second {
			t.Errorf("expected applied 90s timeout, got %v", c.AnalysisTimeout)
		}
		if cf.Concurrency != 5 {
			t.Errorf("expected concurrency 5, got %d", cf.Concurrency)
		}
	})

	t.Run("missing file returns ErrConfigNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("malformed yaml returns an error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		if err := os.WriteFile(path, []byte("zendesk: [broken"), 0600); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfigFile(path); err == nil {
			t.Error("expected an error for malformed yaml")
		}
	})
}

// TestFindConfigFile tests explicit-path resolution.
func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("explicit existing path is returned", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		if err := os.WriteFile(path, []byte("concurrency: 1"), 0600); err != nil {
			t.Fatal(err)
		}
		if got := FindConfigFile(path); got != path {
			t.Errorf("expected %q, got %q", path, got)
		}
	})

	t.Run("explicit missing path yields empty", func(t *testing.T) {
		t.Parallel()

		if got := FindConfigFile(filepath.Join(t.TempDir(), "missing")); got != "" {
			t.Errorf("expected empty path, got %q", got)
		}
	})
}

// TestApply tests flag-over-file precedence.
func TestApply(t *testing.T) {
	t.Parallel()

	var cf File
	cf.Zendesk.Email = "file@example.com"
	cf.Zendesk.Token = "file-token"
	cf.Analysis.APIKey = "file-key"
	cf.Analysis.Model = "gpt-4o-mini"
	cf.Concurrency = 7

	c := NewConfig()
	c.ZendeskEmail = "flag@example.com" // set by a flag, must survive

	cf.Apply(c)

	if c.ZendeskEmail != "flag@example.com" {
		t.Errorf("flag value overwritten by file: %q", c.ZendeskEmail)
	}
	if c.ZendeskToken != "file-token" {
		t.Errorf("expected file token, got %q", c.ZendeskToken)
	}
	if c.APIKey != "file-key" {
		t.Errorf("expected file api key, got %q", c.APIKey)
	}
	if c.Model != "gpt-4o-mini" {
		t.Errorf("expected file model, got %q", c.Model)
	}
	if c.Concurrency != 7 {
		t.Errorf("expected file concurrency, got %d", c.Concurrency)
	}
}

// TestApplyEnvironment tests the environment fallback for credentials.
// Not parallel: t.Setenv mutates process state.
func TestApplyEnvironment(t *testing.T) {
	t.Setenv("ZENDESK_EMAIL", "env@example.com")
	t.Setenv("ZENDESK_API_TOKEN", "env-token")
	t.Setenv("OPENAI_API_KEY", "env-key")

	c := NewConfig()
	c.ZendeskToken = "flag-token"
	c.ApplyEnvironment()

	if c.ZendeskEmail != "env@example.com" {
		t.Errorf("expected env email, got %q", c.ZendeskEmail)
	}
	if c.ZendeskToken != "flag-token" {
		t.Errorf("env must not overwrite an explicit token: %q", c.ZendeskToken)
	}
	if c.APIKey != "env-key" {
		t.Errorf("expected env api key, got %q", c.APIKey)
	}
}
