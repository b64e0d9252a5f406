package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/hcaudit/hcaudit/internal/config"
)

// TestNewSearchCmd tests the search command creation.
func TestNewSearchCmd(t *testing.T) {
	t.Parallel()

	cmd := NewSearchCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "search <query>" {
			t.Errorf("unexpected use: %q", cmd.Use)
		}
	})

	t.Run("has expected flags", func(t *testing.T) {
		t.Parallel()
		for _, name := range []string{"subdomain", "locale", "timeout", "config", "list"} {
			if cmd.Flags().Lookup(name) == nil {
				t.Errorf("expected flag %q", name)
			}
		}
	})

	t.Run("requires a query argument", func(t *testing.T) {
		t.Parallel()

		c := NewSearchCmd()
		c.SetOut(&bytes.Buffer{})
		c.SetErr(&bytes.Buffer{})
		c.SetArgs([]string{})
		if err := c.Execute(); err == nil {
			t.Error("expected error for missing query")
		}
	})
}

// TestSearchCmd_MissingCredentials tests that search fails fast without
// Zendesk credentials. Not parallel: environment is process state.
func TestSearchCmd_MissingCredentials(t *testing.T) {
	// Isolate from any real .hcaudit or credentials in the environment
	t.Setenv("HOME", t.TempDir())
	t.Setenv("ZENDESK_EMAIL", "")
	t.Setenv("ZENDESK_API_TOKEN", "")

	cmd := NewSearchCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"renew", "listing"})

	err := cmd.Execute()
	if !errors.Is(err, config.ErrMissingZendeskCredentials) {
		t.Errorf("expected ErrMissingZendeskCredentials, got %v", err)
	}
}
