package model

// IssueCategory classifies an audit issue against the content standard.
// The five categories are the audit framework axes: the ABT standard
// (Actionable, Brief, Targeted) plus technical hygiene and audience fit.
type IssueCategory string

// Issue category constants.
const (
	// CategoryActionable covers incomplete or vague instructions.
	CategoryActionable IssueCategory = "actionable"
	// CategoryBrief covers verbosity, jargon, and filler.
	CategoryBrief IssueCategory = "brief"
	// CategoryTargeted covers scope and intent-match problems.
	CategoryTargeted IssueCategory = "targeted"
	// CategoryTechnical covers hygiene problems such as hardcoded
	// locale links and outdated UI references.
	CategoryTechnical IssueCategory = "technical"
	// CategoryAudience covers audience mismatch and cross-linking.
	CategoryAudience IssueCategory = "audience"
)

// String returns the string representation of the IssueCategory.
func (c IssueCategory) String() string {
	return string(c)
}

// IsValid returns true if this is one of the five known categories.
func (c IssueCategory) IsValid() bool {
	switch c {
	case CategoryActionable, CategoryBrief, CategoryTargeted,
		CategoryTechnical, CategoryAudience:
		return true
	default:
		return false
	}
}

// ParseIssueCategory converts a string to an IssueCategory.
//
// Design decision: Unknown category tags route to CategoryTechnical
// rather than being dropped. The analysis collaborator is untrusted, and
// silently losing an issue because it invented a category tag would make
// report totals lie. Routing to technical keeps the issue visible without
// changing the five-bucket report shape.
func ParseIssueCategory(s string) IssueCategory {
	switch IssueCategory(s) {
	case CategoryActionable:
		return CategoryActionable
	case CategoryBrief:
		return CategoryBrief
	case CategoryTargeted:
		return CategoryTargeted
	case CategoryTechnical:
		return CategoryTechnical
	case CategoryAudience:
		return CategoryAudience
	default:
		return CategoryTechnical
	}
}

// IssueSeverity represents how serious an audit issue is.
type IssueSeverity string

// Issue severity constants.
const (
	// SeverityCritical indicates the article misleads or blocks users.
	SeverityCritical IssueSeverity = "critical"
	// SeverityWarning indicates a problem that degrades the article.
	SeverityWarning IssueSeverity = "warning"
	// SeveritySuggestion indicates an optional improvement.
	SeveritySuggestion IssueSeverity = "suggestion"
)

// String returns the string representation of the IssueSeverity.
func (s IssueSeverity) String() string {
	return string(s)
}

// IsValid returns true if this is a known severity.
func (s IssueSeverity) IsValid() bool {
	switch s {
	case SeverityCritical, SeverityWarning, SeveritySuggestion:
		return true
	default:
		return false
	}
}

// ParseIssueSeverity converts a string to an IssueSeverity.
// Unknown severities default to SeverityWarning, the middle ground:
// escalating unknown input to critical would inflate alarm, demoting it
// to suggestion would hide it.
func ParseIssueSeverity(s string) IssueSeverity {
	switch IssueSeverity(s) {
	case SeverityCritical:
		return SeverityCritical
	case SeverityWarning:
		return SeverityWarning
	case SeveritySuggestion:
		return SeveritySuggestion
	default:
		return SeverityWarning
	}
}

// Issue is a single audit finding. Issues are immutable values created
// by the response interpreter (or synthesized by the hygiene
// reconciliation) and aggregated into category buckets by the report
// assembler.
type Issue struct {
	// Category is one of the five audit framework categories.
	Category IssueCategory `json:"category"`

	// Severity is the risk level of the issue.
	Severity IssueSeverity `json:"severity"`

	// Description states what is wrong.
	Description string `json:"description"`

	// Location hints where in the article the issue occurs, if known.
	Location string `json:"location,omitempty"`

	// Recommendation explains how to fix the issue, if provided.
	Recommendation string `json:"recommendation,omitempty"`
}
