package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hcaudit/hcaudit/internal/config"
	"github.com/hcaudit/hcaudit/internal/database"
	"github.com/hcaudit/hcaudit/internal/zendesk"
)

// NewHistoryCmd creates the history command.
// This command lists audit records stored in the database.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [article-id-or-url]",
		Short: "Show audit history from the database",
		Long: `History lists past audit results stored in the local database.

Without arguments it shows the most recent audits across all articles.
With an article ID or URL it shows every audit of that article, newest
first, so score changes over time are visible.

Examples:
  # Show the most recent audits
  hcaudit history

  # Show all audits of one article
  hcaudit history 360000000001

  # Show the full latest report for one article
  hcaudit history --latest 360000000001`,
		Args: cobra.MaximumNArgs(1),
		RunE: runHistoryCmd,
	}

	cmd.Flags().IntP("limit", "n", config.DefaultHistoryLimit,
		"Maximum number of records to list")
	cmd.Flags().Bool("latest", false,
		"Print the full latest report for the given article as JSON")
	cmd.Flags().String("db-dir", config.XDGDataDir(),
		"Directory containing the audit database")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, args []string) error {
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}
	if limit <= 0 {
		return config.ErrInvalidHistoryLimit
	}

	latest, err := cmd.Flags().GetBool("latest")
	if err != nil {
		return err
	}

	dbDir, err := cmd.Flags().GetString("db-dir")
	if err != nil {
		return err
	}

	// Parse the article locator before touching the database
	var articleID int64
	if len(args) > 0 {
		articleID, err = zendesk.ExtractArticleID(args[0])
		if err != nil {
			return fmt.Errorf("invalid article locator: %w", err)
		}
	} else if latest {
		return fmt.Errorf("--latest requires an article ID")
	}

	// Never create the database here: an empty history is not worth
	// leaving an empty database file behind.
	db, err := database.Open(dbDir, database.Options{CreateIfNotExists: false, EnableWAL: true})
	if err != nil {
		return fmt.Errorf("no audit history found (run 'hcaudit audit' first): %w", err)
	}
	defer db.Close()

	ctx := cmd.Context()

	if latest {
		report, err := db.GetLatestReport(ctx, articleID)
		if err != nil {
			return err
		}
		if report == nil {
			fmt.Fprintf(cmd.OutOrStdout(), "No audits found for article %d\n", articleID)
			return nil
		}
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	}

	var records []database.AuditRecord
	if articleID != 0 {
		records, err = db.History(ctx, articleID)
		if err == nil && len(records) > limit {
			records = records[:limit]
		}
	} else {
		records, err = db.ListRecent(ctx, limit)
	}
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No audits found")
		return nil
	}

	for _, record := range records {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %-12d %3d  %-15s %s\n",
			record.CreatedAt.Format("2006-01-02 15:04"),
			record.ArticleID,
			record.Score,
			record.Rating,
			record.Title,
		)
	}
	return nil
}
