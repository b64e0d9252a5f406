package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/hcaudit/hcaudit/internal/model"
)

func sampleArticle() *model.Article {
	return &model.Article{
		ID:      360000000001,
		Title:   "How to renew a listing",
		URL:     "https://help.etsy.com/hc/en-us/articles/360000000001",
		Segment: model.SegmentSelling,
	}
}

func sampleAnalysis() model.AnalysisResult {
	return model.AnalysisResult{
		OverallScore:       72,
		AudienceDetected:   model.AudienceSeller,
		HasWebInstructions: true,
		Issues: []model.Issue{
			{Category: model.CategoryActionable, Severity: model.SeverityCritical, Description: "Steps incomplete"},
			{Category: model.CategoryBrief, Severity: model.SeverityWarning, Description: "Filler phrases"},
			{Category: model.CategoryBrief, Severity: model.SeveritySuggestion, Description: "Trim intro"},
			{Category: model.CategoryTechnical, Severity: model.SeverityWarning, Description: "Hardcoded link"},
		},
		HardcodedLinks: []string{"/hc/en-us/articles/999"},
		RawAnalysis:    "Mostly solid but the steps need work.",
	}
}

// TestGenerate tests report assembly.
func TestGenerate(t *testing.T) {
	t.Parallel()

	t.Run("partitions issues into category buckets", func(t *testing.T) {
		t.Parallel()

		report := Generate(sampleArticle(), sampleAnalysis(), nil)

		if len(report.ActionableIssues) != 1 {
			t.Errorf("expected 1 actionable issue, got %d", len(report.ActionableIssues))
		}
		if len(report.BriefIssues) != 2 {
			t.Errorf("expected 2 brief issues, got %d", len(report.BriefIssues))
		}
		if len(report.TechnicalIssues) != 1 {
			t.Errorf("expected 1 technical issue, got %d", len(report.TechnicalIssues))
		}
		if report.TotalIssues() != 4 {
			t.Errorf("expected 4 total issues, got %d", report.TotalIssues())
		}
	})

	t.Run("unknown category lands in the technical bucket", func(t *testing.T) {
		t.Parallel()

		analysis := model.AnalysisResult{
			Issues: []model.Issue{{Category: "mysterious", Description: "odd tag"}},
		}
		report := Generate(sampleArticle(), analysis, nil)

		if len(report.TechnicalIssues) != 1 {
			t.Fatalf("expected issue routed to technical, got %+v", report)
		}
		if report.TotalIssues() != 1 {
			t.Errorf("issue must not vanish from totals, got %d", report.TotalIssues())
		}
	})

	t.Run("derives quality rating from score", func(t *testing.T) {
		t.Parallel()

		report := Generate(sampleArticle(), sampleAnalysis(), nil)

		if report.QualityRating != model.RatingNeedsWork {
			t.Errorf("expected Needs Work for score 72, got %q", report.QualityRating)
		}
	})

	t.Run("missing UI report defaults to no-risk stats", func(t *testing.T) {
		t.Parallel()

		report := Generate(sampleArticle(), sampleAnalysis(), nil)

		stats := report.UIStats
		if stats.ElementsTotal != 0 || stats.ElementsVerified != 0 || stats.Confidence != 1.0 {
			t.Errorf("expected empty UI stats with confidence 1.0, got %+v", stats)
		}
		if len(stats.ManualReviewItems) != 0 {
			t.Errorf("expected no manual review items, got %v", stats.ManualReviewItems)
		}
	})

	t.Run("carries UI verification stats", func(t *testing.T) {
		t.Parallel()

		uiReport := &model.UIVerificationReport{
			ElementsFound: []model.UIElement{{Text: "Save"}, {Text: "Mystery"}},
			Results: []model.VerificationResult{
				{Status: model.StatusVerified, Confidence: 0.9},
				{Status: model.StatusUnverified, Confidence: 0.3},
			},
			OverallConfidence: 0.6,
			NeedsManualReview: true,
			ManualReviewItems: []string{"Button: 'Mystery' - Could not verify"},
		}

		report := Generate(sampleArticle(), sampleAnalysis(), uiReport)

		if report.UIStats.ElementsTotal != 2 || report.UIStats.ElementsVerified != 1 {
			t.Errorf("unexpected UI stats: %+v", report.UIStats)
		}
		if report.UIStats.Confidence != 0.6 {
			t.Errorf("expected confidence 0.6, got %f", report.UIStats.Confidence)
		}
		if len(report.UIStats.ManualReviewItems) != 1 {
			t.Errorf("manual review items not carried: %+v", report.UIStats)
		}
	})

	t.Run("captures assembly timestamp", func(t *testing.T) {
		t.Parallel()

		report := Generate(sampleArticle(), sampleAnalysis(), nil)
		if report.AuditedAt.IsZero() {
			t.Error("expected a non-zero audit timestamp")
		}
	})
}

// TestJSONWriterRoundTrip tests that the structured form, re-parsed,
// reproduces the source report's counts and score.
func TestJSONWriterRoundTrip(t *testing.T) {
	t.Parallel()

	report := Generate(sampleArticle(), sampleAnalysis(), nil)

	var buf bytes.Buffer
	if _, err := NewJSONWriter(&buf, WithPrettyPrint()).Write(report); err != nil {
		t.Fatalf("unexpected write error: %v", err)
	}

	var parsed StructuredReport
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if parsed.OverallScore != report.OverallScore {
		t.Errorf("score mismatch: %d vs %d", parsed.OverallScore, report.OverallScore)
	}
	if parsed.TotalIssues != report.TotalIssues() {
		t.Errorf("total mismatch: %d vs %d", parsed.TotalIssues, report.TotalIssues())
	}
	if parsed.CriticalCount != report.CriticalCount() ||
		parsed.WarningCount != report.WarningCount() ||
		parsed.SuggestionCount != report.SuggestionCount() {
		t.Error("severity counts do not survive the round trip")
	}
	if len(parsed.Issues.Actionable) != len(report.ActionableIssues) ||
		len(parsed.Issues.Brief) != len(report.BriefIssues) ||
		len(parsed.Issues.Targeted) != len(report.TargetedIssues) ||
		len(parsed.Issues.Technical) != len(report.TechnicalIssues) ||
		len(parsed.Issues.Audience) != len(report.AudienceIssues) {
		t.Error("category counts do not survive the round trip")
	}
}

// TestJSONWriterStableFields tests contract fields downstream tools
// depend on.
func TestJSONWriterStableFields(t *testing.T) {
	t.Parallel()

	report := Generate(sampleArticle(), sampleAnalysis(), nil)

	var buf bytes.Buffer
	if _, err := NewJSONWriter(&buf).Write(report); err != nil {
		t.Fatalf("unexpected write error: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(buf.Bytes(), &raw); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	for _, key := range []string{
		"article_id", "audit_timestamp", "overall_score", "quality_rating",
		"total_issues", "critical_count", "issues", "hardcoded_links",
		"ui_verification", "member_services_flag",
	} {
		if _, ok := raw[key]; !ok {
			t.Errorf("structured form missing key %q", key)
		}
	}

	ui, ok := raw["ui_verification"].(map[string]any)
	if !ok {
		t.Fatal("ui_verification is not a nested object")
	}
	if _, ok := ui["confidence"]; !ok {
		t.Error("ui_verification missing confidence")
	}
}

// TestMarkdownWriter tests the linear document form.
func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	t.Run("fixed section order", func(t *testing.T) {
		t.Parallel()

		report := Generate(sampleArticle(), sampleAnalysis(), nil)
		report.MemberServicesFlag = true
		report.FlagReason = "Policy-sensitive content"
		report.UIStats = model.UIStats{ElementsVerified: 1, ElementsTotal: 2, Confidence: 0.6}

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(report); err != nil {
			t.Fatalf("unexpected write error: %v", err)
		}
		out := buf.String()

		sections := []string{
			"# Audit Report: How to renew a listing",
			"## Overall Assessment",
			"## Audience",
			"## Content Completeness",
			"## Issues Summary",
			"### Actionable Issues",
			"### Brief Issues",
			"### Technical Issues",
			"## Hardcoded Links (Need Dynamic Localization)",
			"## UI Verification",
			"## ⚠️ Member Services Flag",
		}
		last := -1
		for _, section := range sections {
			idx := strings.Index(out, section)
			if idx < 0 {
				t.Fatalf("missing section %q in output:\n%s", section, out)
			}
			if idx < last {
				t.Errorf("section %q out of order", section)
			}
			last = idx
		}
	})

	t.Run("empty categories and optional blocks are omitted", func(t *testing.T) {
		t.Parallel()

		analysis := model.AnalysisResult{OverallScore: 95, AudienceDetected: model.AudienceBoth}
		report := Generate(sampleArticle(), analysis, nil)

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(report); err != nil {
			t.Fatalf("unexpected write error: %v", err)
		}
		out := buf.String()

		for _, absent := range []string{
			"### Actionable Issues",
			"## Hardcoded Links",
			"## UI Verification",
			"## ⚠️ Member Services Flag",
		} {
			if strings.Contains(out, absent) {
				t.Errorf("unexpected section %q for a clean report", absent)
			}
		}
		if !strings.Contains(out, "Excellent") {
			t.Error("expected quality rating in assessment")
		}
	})
}

// TestMultiWriter tests fan-out to multiple destinations.
func TestMultiWriter(t *testing.T) {
	t.Parallel()

	report := Generate(sampleArticle(), sampleAnalysis(), nil)

	var jsonBuf, mdBuf bytes.Buffer
	multi := NewMultiWriter(NewJSONWriter(&jsonBuf), NewMarkdownWriter(&mdBuf))

	if _, err := multi.Write(report); err != nil {
		t.Fatalf("unexpected write error: %v", err)
	}
	if jsonBuf.Len() == 0 || mdBuf.Len() == 0 {
		t.Error("expected both destinations to receive output")
	}
}
