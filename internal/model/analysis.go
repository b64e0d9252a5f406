package model

// AnalysisResult holds the interpreted output of the analysis
// collaborator for one article. It is produced exactly once per audit by
// the response interpreter and never mutated afterwards.
//
// A degraded AnalysisResult (score 0, one critical parse-failure issue,
// raw response preserved) is still a valid AnalysisResult: the
// interpreter absorbs malformed collaborator output instead of failing
// the audit.
type AnalysisResult struct {
	// OverallScore is the content quality score in [0, 100].
	OverallScore int `json:"overall_score"`

	// AudienceDetected is the audience the collaborator inferred from
	// the article content.
	AudienceDetected Audience `json:"audience_detected"`

	// AudienceMismatch is true when the detected audience conflicts
	// with the declared one.
	AudienceMismatch bool `json:"audience_mismatch"`

	// Issues are the audit findings, in the order reported.
	Issues []Issue `json:"issues"`

	// HasWebInstructions is true if the article includes desktop/web
	// steps.
	HasWebInstructions bool `json:"has_web_instructions"`

	// HasAppInstructions is true if the article includes mobile app
	// steps.
	HasAppInstructions bool `json:"has_app_instructions"`

	// HardcodedLinks is the deduplicated union of locale-hardcoded
	// links found by the hygiene pre-scan and by the collaborator.
	HardcodedLinks []string `json:"hardcoded_links"`

	// MemberServicesFlag marks the article for human review before the
	// audit conclusions are acted on.
	MemberServicesFlag bool `json:"member_services_flag"`

	// FlagReason explains the member services flag, if set.
	FlagReason string `json:"flag_reason,omitempty"`

	// RawAnalysis preserves the collaborator's summary on success, or
	// the full unparseable response on failure, for diagnostics.
	RawAnalysis string `json:"raw_analysis,omitempty"`
}
