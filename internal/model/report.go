package model

import "time"

// QualityRating is the human-readable band derived from the overall score.
type QualityRating string

// Quality rating constants.
const (
	// RatingExcellent is assigned for scores of 90 and above.
	RatingExcellent QualityRating = "Excellent"
	// RatingGood is assigned for scores of 75 to 89.
	RatingGood QualityRating = "Good"
	// RatingNeedsWork is assigned for scores of 60 to 74.
	RatingNeedsWork QualityRating = "Needs Work"
	// RatingCritical is assigned for scores below 60.
	RatingCritical QualityRating = "Critical Issues"
)

// String returns the string representation of the QualityRating.
func (r QualityRating) String() string {
	return string(r)
}

// RatingForScore converts a numeric score to its quality rating band.
func RatingForScore(score int) QualityRating {
	switch {
	case score >= 90:
		return RatingExcellent
	case score >= 75:
		return RatingGood
	case score >= 60:
		return RatingNeedsWork
	default:
		return RatingCritical
	}
}

// AuditReport is the terminal artifact of one audit run. It merges the
// interpreted analysis, the hygiene scan, and the UI verification into
// a single value, created once at assembly time and read-only afterwards.
//
// Design decision: derived quantities (total issues, per-severity
// slices) are methods rather than stored fields so they can never
// disagree with the category buckets they are computed from. The JSON
// writer emits them explicitly for downstream tooling.
type AuditReport struct {
	// === Article identity ===

	// ArticleID is the numeric article identifier.
	ArticleID int64 `json:"article_id"`

	// ArticleTitle is the article title at audit time.
	ArticleTitle string `json:"article_title"`

	// ArticleURL is the canonical article URL.
	ArticleURL string `json:"article_url"`

	// AuditedAt is when the report was assembled (not when the audit
	// started; assembly is the moment the report's contents are fixed).
	AuditedAt time.Time `json:"audit_timestamp"` //nolint:tagliatelle // established report field name

	// === Overall assessment ===

	// OverallScore is the content quality score in [0, 100].
	OverallScore int `json:"overall_score"`

	// QualityRating is the band derived from OverallScore.
	QualityRating QualityRating `json:"quality_rating"`

	// === Audience ===

	// DeclaredAudience is the audience declared via the URL segment.
	DeclaredAudience Audience `json:"declared_audience"`

	// DetectedAudience is the audience detected from content.
	DetectedAudience Audience `json:"detected_audience"`

	// AudienceMismatch is true when declared and detected conflict.
	AudienceMismatch bool `json:"audience_mismatch"`

	// === Completeness ===

	// HasWebInstructions is true if web steps are present.
	HasWebInstructions bool `json:"has_web_instructions"`

	// HasAppInstructions is true if app steps are present.
	HasAppInstructions bool `json:"has_app_instructions"`

	// === Issues by category ===
	// Every issue appears in exactly one bucket; the interpreter
	// normalizes unknown category tags before assembly.

	// ActionableIssues are issues in the actionable category.
	ActionableIssues []Issue `json:"actionable_issues,omitempty"`

	// BriefIssues are issues in the brief category.
	BriefIssues []Issue `json:"brief_issues,omitempty"`

	// TargetedIssues are issues in the targeted category.
	TargetedIssues []Issue `json:"targeted_issues,omitempty"`

	// TechnicalIssues are issues in the technical category.
	TechnicalIssues []Issue `json:"technical_issues,omitempty"`

	// AudienceIssues are issues in the audience category.
	AudienceIssues []Issue `json:"audience_issues,omitempty"`

	// === Technical details ===

	// HardcodedLinks lists locale-hardcoded internal links.
	HardcodedLinks []string `json:"hardcoded_links,omitempty"`

	// === UI verification ===

	// UIStats is the UI verification summary.
	UIStats UIStats `json:"ui_verification"` //nolint:tagliatelle // established report field name

	// === Escalation ===

	// MemberServicesFlag marks the article for human review.
	MemberServicesFlag bool `json:"member_services_flag"`

	// FlagReason explains the member services flag, if set.
	FlagReason string `json:"flag_reason,omitempty"`

	// Summary is the collaborator's overall assessment text.
	Summary string `json:"summary,omitempty"`
}

// AllIssues returns every issue across the five category buckets, in
// bucket order (actionable, brief, targeted, technical, audience).
func (r *AuditReport) AllIssues() []Issue {
	all := make([]Issue, 0,
		len(r.ActionableIssues)+len(r.BriefIssues)+len(r.TargetedIssues)+
			len(r.TechnicalIssues)+len(r.AudienceIssues))
	all = append(all, r.ActionableIssues...)
	all = append(all, r.BriefIssues...)
	all = append(all, r.TargetedIssues...)
	all = append(all, r.TechnicalIssues...)
	all = append(all, r.AudienceIssues...)
	return all
}

// TotalIssues returns the number of issues across all categories.
func (r *AuditReport) TotalIssues() int {
	return len(r.ActionableIssues) + len(r.BriefIssues) + len(r.TargetedIssues) +
		len(r.TechnicalIssues) + len(r.AudienceIssues)
}

// IssuesBySeverity returns all issues with the given severity.
func (r *AuditReport) IssuesBySeverity(severity IssueSeverity) []Issue {
	var result []Issue
	for _, issue := range r.AllIssues() {
		if issue.Severity == severity {
			result = append(result, issue)
		}
	}
	return result
}

// CriticalCount returns the number of critical issues.
func (r *AuditReport) CriticalCount() int {
	return len(r.IssuesBySeverity(SeverityCritical))
}

// WarningCount returns the number of warning issues.
func (r *AuditReport) WarningCount() int {
	return len(r.IssuesBySeverity(SeverityWarning))
}

// SuggestionCount returns the number of suggestion issues.
func (r *AuditReport) SuggestionCount() int {
	return len(r.IssuesBySeverity(SeveritySuggestion))
}

// IssuesByCategory returns the bucket for the given category.
// Unknown categories return nil; the interpreter guarantees buckets only
// ever receive the five known tags.
func (r *AuditReport) IssuesByCategory(category IssueCategory) []Issue {
	switch category {
	case CategoryActionable:
		return r.ActionableIssues
	case CategoryBrief:
		return r.BriefIssues
	case CategoryTargeted:
		return r.TargetedIssues
	case CategoryTechnical:
		return r.TechnicalIssues
	case CategoryAudience:
		return r.AudienceIssues
	default:
		return nil
	}
}
