package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for hcaudit.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hcaudit",
		Short: "Quality auditing tool for Help Center articles",
		Long: `hcaudit is a quality auditing tool for Zendesk Help Center articles.
It fetches articles via the Help Center API, scans their markup for hygiene
problems such as hardcoded language links, verifies that referenced UI
elements still exist, and produces a scored quality report.

Credentials come from a .hcaudit config file, CLI flags, or the
ZENDESK_EMAIL, ZENDESK_API_TOKEN, and OPENAI_API_KEY environment variables.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewAuditCmd())
	cmd.AddCommand(NewSearchCmd())
	cmd.AddCommand(NewHistoryCmd())
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
