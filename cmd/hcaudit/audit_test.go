package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hcaudit/hcaudit/internal/config"
	"github.com/hcaudit/hcaudit/internal/report"
)

// TestNewAuditCmd tests the audit command creation.
func TestNewAuditCmd(t *testing.T) {
	t.Parallel()

	cmd := NewAuditCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "audit [article-id-or-url]..." {
			t.Errorf("unexpected use: %q", cmd.Use)
		}
	})

	t.Run("has expected flags", func(t *testing.T) {
		t.Parallel()
		for _, name := range []string{
			"subdomain", "locale", "timeout", "model", "analysis-timeout",
			"concurrency", "config", "json", "markdown", "output", "no-save",
		} {
			if cmd.Flags().Lookup(name) == nil {
				t.Errorf("expected flag %q", name)
			}
		}
	})
}

// TestBuildConfig tests flag parsing into the configuration.
// Not parallel: environment and home directory are process state.
func TestBuildConfig(t *testing.T) {
	// Isolate from any real .hcaudit or credentials in the environment
	t.Setenv("HOME", t.TempDir())
	t.Setenv("ZENDESK_EMAIL", "env@example.com")
	t.Setenv("ZENDESK_API_TOKEN", "env-token")
	t.Setenv("OPENAI_API_KEY", "env-key")

	cmd := NewAuditCmd()
	if err := cmd.Flags().Set("subdomain", "example"); err != nil {
		t.Fatal(err)
	}
	if err := cmd.Flags().Set("concurrency", "5"); err != nil {
		t.Fatal(err)
	}
	if err := cmd.Flags().Set("markdown", "true"); err != nil {
		t.Fatal(err)
	}
	if err := cmd.Flags().Set("no-save", "true"); err != nil {
		t.Fatal(err)
	}

	cfg, err := buildConfig(cmd, []string{"360000000001"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.ZendeskSubdomain != "example" {
		t.Errorf("expected subdomain 'example', got %q", cfg.ZendeskSubdomain)
	}
	if cfg.Concurrency != 5 {
		t.Errorf("expected concurrency 5, got %d", cfg.Concurrency)
	}
	if !cfg.MarkdownReport {
		t.Error("expected markdown report")
	}
	if cfg.SaveToDB {
		t.Error("expected no-save to disable database saving")
	}
	if cfg.ZendeskEmail != "env@example.com" || cfg.APIKey != "env-key" {
		t.Errorf("expected env credentials, got %q / %q", cfg.ZendeskEmail, cfg.APIKey)
	}
	if len(cfg.Locators) != 1 || cfg.Locators[0] != "360000000001" {
		t.Errorf("expected locator from args, got %v", cfg.Locators)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}
}

// TestBuildConfig_ExplicitMissingConfigFile tests that a missing
// explicit config path is an error.
func TestBuildConfig_ExplicitMissingConfigFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cmd := NewAuditCmd()
	missing := filepath.Join(t.TempDir(), "nope.yaml")
	if err := cmd.Flags().Set("config", missing); err != nil {
		t.Fatal(err)
	}

	if _, err := buildConfig(cmd, []string{"1"}); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

// TestOpenReportOutput tests output destination resolution.
func TestOpenReportOutput(t *testing.T) {
	t.Parallel()

	t.Run("defaults to stdout", func(t *testing.T) {
		t.Parallel()

		cfg := config.NewConfig()
		out, cleanup, err := openReportOutput(cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer cleanup()
		if out != os.Stdout {
			t.Error("expected stdout")
		}
	})

	t.Run("creates nested output file", func(t *testing.T) {
		t.Parallel()

		cfg := config.NewConfig()
		cfg.ReportFile = filepath.Join(t.TempDir(), "reports", "out.json")

		out, cleanup, err := openReportOutput(cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := out.WriteString("{}"); err != nil {
			t.Fatalf("write failed: %v", err)
		}
		cleanup()

		if _, err := os.Stat(cfg.ReportFile); err != nil {
			t.Errorf("expected output file to exist: %v", err)
		}
	})
}

// TestNewReportWriter tests format selection.
func TestNewReportWriter(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	if _, ok := newReportWriter(cfg, os.Stdout).(*report.JSONWriter); !ok {
		t.Error("expected JSON writer by default")
	}

	cfg.MarkdownReport = true
	if _, ok := newReportWriter(cfg, os.Stdout).(*report.MarkdownWriter); !ok {
		t.Error("expected Markdown writer with --markdown")
	}
}

// deadlineAnalyzer records whether the analysis context carried a deadline.
type deadlineAnalyzer struct {
	hadDeadline bool
}

func (a *deadlineAnalyzer) Analyze(ctx context.Context, _ string) (string, error) {
	_, a.hadDeadline = ctx.Deadline()
	return "{}", nil
}

// TestTimeoutAnalyzer tests that each call gets its own deadline.
func TestTimeoutAnalyzer(t *testing.T) {
	t.Parallel()

	inner := &deadlineAnalyzer{}
	analyzer := &timeoutAnalyzer{inner: inner, timeout: time.Minute}

	if _, err := analyzer.Analyze(context.Background(), "prompt"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !inner.hadDeadline {
		t.Error("expected the analysis context to carry a deadline")
	}
}
