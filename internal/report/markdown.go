package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/hcaudit/hcaudit/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report in Markdown format. The section order is
// fixed: header, overall assessment, audience, completeness, issues
// summary, per-category detail (non-empty categories only), hardcoded
// links, UI verification, escalation.
func (w *MarkdownWriter) Write(report *model.AuditReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeAssessment(md, report)
	w.writeAudience(md, report)
	w.writeCompleteness(md, report)
	w.writeIssues(md, report)
	w.writeHardcodedLinks(md, report)
	w.writeUIVerification(md, report)
	w.writeEscalation(md, report)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with article identity.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.AuditReport) {
	md.H1("Audit Report: " + report.ArticleTitle)
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Article ID", strconv.FormatInt(report.ArticleID, 10)},
			{"URL", report.ArticleURL},
			{"Audit Date", report.AuditedAt.Format("2006-01-02 15:04:05 MST")},
		},
	})
	md.PlainText("")
}

// writeAssessment writes the overall assessment section.
func (w *MarkdownWriter) writeAssessment(md *markdown.Markdown, report *model.AuditReport) {
	md.H2("Overall Assessment")
	md.PlainText("")

	md.PlainText(fmt.Sprintf("**Score:** %s %d/100 (%s)",
		scoreEmoji(report.OverallScore), report.OverallScore, report.QualityRating))
	md.PlainText("")

	if report.Summary != "" {
		md.PlainText("_" + report.Summary + "_")
		md.PlainText("")
	}
}

// scoreEmoji returns the traffic-light marker for a score.
func scoreEmoji(score int) string {
	switch {
	case score >= 80:
		return "🟢"
	case score >= 60:
		return "🟡"
	default:
		return "🔴"
	}
}

// writeAudience writes the audience section.
func (w *MarkdownWriter) writeAudience(md *markdown.Markdown, report *model.AuditReport) {
	md.H2("Audience")
	md.PlainText("")

	indicator := "✓"
	if report.AudienceMismatch {
		indicator = "⚠️ MISMATCH"
	}
	md.BulletList(
		"**Declared:** "+report.DeclaredAudience.String(),
		fmt.Sprintf("**Detected:** %s %s", report.DetectedAudience, indicator),
	)
	md.PlainText("")
}

// writeCompleteness writes the content completeness section.
func (w *MarkdownWriter) writeCompleteness(md *markdown.Markdown, report *model.AuditReport) {
	md.H2("Content Completeness")
	md.PlainText("")

	md.BulletList(
		"Web instructions: "+checkmark(report.HasWebInstructions),
		"App instructions: "+checkmark(report.HasAppInstructions),
	)
	md.PlainText("")
}

func checkmark(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}

// writeIssues writes the issues summary and the per-category detail
// sections for non-empty categories.
func (w *MarkdownWriter) writeIssues(md *markdown.Markdown, report *model.AuditReport) {
	md.H2("Issues Summary")
	md.PlainText("")

	md.BulletList(
		"🔴 Critical: "+strconv.Itoa(report.CriticalCount()),
		"🟡 Warnings: "+strconv.Itoa(report.WarningCount()),
		"🔵 Suggestions: "+strconv.Itoa(report.SuggestionCount()),
	)
	md.PlainText("")

	categories := []struct {
		header string
		issues []model.Issue
	}{
		{"Actionable Issues", report.ActionableIssues},
		{"Brief Issues", report.BriefIssues},
		{"Targeted Issues", report.TargetedIssues},
		{"Technical Issues", report.TechnicalIssues},
		{"Audience Issues", report.AudienceIssues},
	}

	for _, category := range categories {
		if len(category.issues) == 0 {
			continue
		}

		md.H3(category.header)
		md.PlainText("")
		for _, issue := range category.issues {
			md.PlainText(formatIssue(issue))
		}
		md.PlainText("")
	}
}

// formatIssue renders one issue as a bullet with optional sub-items.
func formatIssue(issue model.Issue) string {
	text := fmt.Sprintf("- %s **%s**", severityEmoji(issue.Severity), issue.Description)
	if issue.Location != "" {
		text += "\n  - Location: " + issue.Location
	}
	if issue.Recommendation != "" {
		text += "\n  - Recommendation: " + issue.Recommendation
	}
	return text
}

// severityEmoji returns the marker for an issue severity.
func severityEmoji(severity model.IssueSeverity) string {
	switch severity {
	case model.SeverityCritical:
		return "🔴"
	case model.SeverityWarning:
		return "🟡"
	case model.SeveritySuggestion:
		return "🔵"
	default:
		return "⚪"
	}
}

// writeHardcodedLinks writes the hardcoded links block, if any.
func (w *MarkdownWriter) writeHardcodedLinks(md *markdown.Markdown, report *model.AuditReport) {
	if len(report.HardcodedLinks) == 0 {
		return
	}

	md.H2("Hardcoded Links (Need Dynamic Localization)")
	md.PlainText("")

	links := make([]string, 0, len(report.HardcodedLinks))
	for _, link := range report.HardcodedLinks {
		links = append(links, "`"+link+"`")
	}
	md.BulletList(links...)
	md.PlainText("")
}

// writeUIVerification writes the UI verification block when elements
// were found.
func (w *MarkdownWriter) writeUIVerification(md *markdown.Markdown, report *model.AuditReport) {
	if report.UIStats.ElementsTotal == 0 {
		return
	}

	md.H2("UI Verification")
	md.PlainText("")

	md.BulletList(
		"Elements found: "+strconv.Itoa(report.UIStats.ElementsTotal),
		fmt.Sprintf("Confidence: %.0f%%", report.UIStats.Confidence*100),
	)
	md.PlainText("")

	if len(report.UIStats.ManualReviewItems) > 0 {
		md.PlainText("**Items requiring manual review:**")
		md.BulletList(report.UIStats.ManualReviewItems...)
		md.PlainText("")
	}
}

// writeEscalation writes the member services block when flagged.
func (w *MarkdownWriter) writeEscalation(md *markdown.Markdown, report *model.AuditReport) {
	if !report.MemberServicesFlag {
		return
	}

	md.H2("⚠️ Member Services Flag")
	md.PlainText("")
	md.PlainText("**This article requires human verification.**")
	if report.FlagReason != "" {
		md.PlainText("Reason: " + report.FlagReason)
	}
	md.PlainText("")
}
