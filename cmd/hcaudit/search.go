package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hcaudit/hcaudit/internal/config"
	"github.com/hcaudit/hcaudit/internal/log"
	"github.com/hcaudit/hcaudit/internal/model"
	"github.com/hcaudit/hcaudit/internal/zendesk"
)

// NewSearchCmd creates the search command.
func NewSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search Help Center articles",
		Long: `Search queries the Help Center for articles matching the given text.

The results list article IDs that can be passed directly to 'hcaudit audit'.

Examples:
  # Find articles about renewing listings
  hcaudit search renew listing

  # List every article in the configured locale
  hcaudit search --list

  # Search a different Help Center
  hcaudit search --subdomain example shipping labels`,
		Args: cobra.ArbitraryArgs,
		RunE: runSearchCmd,
	}

	cmd.Flags().Bool("list", false,
		"List all articles instead of searching")

	cmd.Flags().StringP("subdomain", "s", config.DefaultSubdomain,
		"Zendesk subdomain of the Help Center")
	cmd.Flags().StringP("locale", "l", config.DefaultLocale,
		"Help Center locale")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Timeout for each Help Center API request")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .hcaudit in current or home directory)")

	return cmd
}

// runSearchCmd executes the search command.
func runSearchCmd(cmd *cobra.Command, args []string) error {
	listAll, err := cmd.Flags().GetBool("list")
	if err != nil {
		return err
	}
	if !listAll && len(args) == 0 {
		return fmt.Errorf("a search query is required (or use --list for all articles)")
	}

	cfg := config.NewConfig()
	cfg.ZendeskSubdomain, err = cmd.Flags().GetString("subdomain")
	if err != nil {
		return err
	}
	cfg.Locale, err = cmd.Flags().GetString("locale")
	if err != nil {
		return err
	}
	cfg.Timeout, err = cmd.Flags().GetDuration("timeout")
	if err != nil {
		return err
	}
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return err
	}

	if configPath := config.FindConfigFile(cfg.ConfigFilePath); configPath != "" {
		cf, err := config.LoadConfigFile(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cf.Apply(cfg)
	} else if cfg.ConfigFilePath != "" {
		return fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}
	cfg.ApplyEnvironment()

	if cfg.ZendeskEmail == "" || cfg.ZendeskToken == "" {
		return config.ErrMissingZendeskCredentials
	}

	logger := log.NewSecureLogger(os.Stderr, getVerboseFlag(cmd))
	client := zendesk.New(cfg.ZendeskSubdomain, cfg.ZendeskEmail, cfg.ZendeskToken,
		zendesk.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		zendesk.WithLocale(cfg.Locale),
		zendesk.WithLogger(logger),
	)

	var articles []model.Article
	query := strings.Join(args, " ")
	if listAll {
		articles, err = client.ListArticles(cmd.Context())
	} else {
		articles, err = client.SearchArticles(cmd.Context(), query)
	}
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if len(articles) == 0 {
		if listAll {
			fmt.Fprintln(cmd.OutOrStdout(), "No articles found")
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "No articles found for %q\n", query)
		}
		return nil
	}

	if listAll {
		fmt.Fprintf(cmd.OutOrStdout(), "Found %d article(s):\n\n", len(articles))
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Found %d article(s) for %q:\n\n", len(articles), query)
	}
	for _, article := range articles {
		fmt.Fprintf(cmd.OutOrStdout(), "%d  %s\n    %s\n", article.ID, article.Title, article.URL)
	}
	return nil
}
