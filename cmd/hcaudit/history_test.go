package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/hcaudit/hcaudit/internal/database"
	"github.com/hcaudit/hcaudit/internal/model"
)

// seedHistoryDB creates a database with a few audit records.
func seedHistoryDB(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	db, err := database.Open(dir, database.DefaultOptions())
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	reports := []*model.AuditReport{
		{ArticleID: 1, ArticleTitle: "Renewing a listing", ArticleURL: "https://help.example.com/1", AuditedAt: time.Now(), OverallScore: 65, QualityRating: model.RatingForScore(65), UIStats: model.EmptyUIStats()},
		{ArticleID: 1, ArticleTitle: "Renewing a listing", ArticleURL: "https://help.example.com/1", AuditedAt: time.Now(), OverallScore: 88, QualityRating: model.RatingForScore(88), UIStats: model.EmptyUIStats()},
		{ArticleID: 2, ArticleTitle: "Shipping labels", ArticleURL: "https://help.example.com/2", AuditedAt: time.Now(), OverallScore: 95, QualityRating: model.RatingForScore(95), UIStats: model.EmptyUIStats()},
	}
	for _, report := range reports {
		if err := db.SaveReport(ctx, report); err != nil {
			t.Fatalf("failed to seed report: %v", err)
		}
	}
	return dir
}

// runHistory executes the history command with the given arguments.
func runHistory(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewHistoryCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// TestHistoryCmd tests history listing from a seeded database.
func TestHistoryCmd(t *testing.T) {
	t.Parallel()

	t.Run("lists recent audits across articles", func(t *testing.T) {
		t.Parallel()

		dir := seedHistoryDB(t)
		output, err := runHistory(t, "--db-dir", dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(output, "Shipping labels") || !strings.Contains(output, "Renewing a listing") {
			t.Errorf("expected records from both articles: %q", output)
		}
	})

	t.Run("filters by article", func(t *testing.T) {
		t.Parallel()

		dir := seedHistoryDB(t)
		output, err := runHistory(t, "--db-dir", dir, "1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Contains(output, "Shipping labels") {
			t.Errorf("expected only article 1 records: %q", output)
		}
		if strings.Count(output, "Renewing a listing") != 2 {
			t.Errorf("expected both audits of article 1: %q", output)
		}
	})

	t.Run("latest prints the stored report", func(t *testing.T) {
		t.Parallel()

		dir := seedHistoryDB(t)
		output, err := runHistory(t, "--db-dir", dir, "--latest", "1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(output, `"overall_score": 88`) {
			t.Errorf("expected latest report JSON: %q", output)
		}
	})

	t.Run("latest requires an article", func(t *testing.T) {
		t.Parallel()

		dir := seedHistoryDB(t)
		if _, err := runHistory(t, "--db-dir", dir, "--latest"); err == nil {
			t.Error("expected error for --latest without article")
		}
	})

	t.Run("missing database is a friendly error", func(t *testing.T) {
		t.Parallel()

		if _, err := runHistory(t, "--db-dir", t.TempDir()); err == nil {
			t.Error("expected error for missing database")
		}
	})

	t.Run("rejects malformed locators", func(t *testing.T) {
		t.Parallel()

		dir := seedHistoryDB(t)
		if _, err := runHistory(t, "--db-dir", dir, "not-an-article"); err == nil {
			t.Error("expected error for malformed locator")
		}
	})
}
