package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/hcaudit/hcaudit/internal/model"
)

// JSONWriter outputs reports in JSON format.
// This format is designed for tool integration and programmatic
// processing: derived counts are written out explicitly so consumers
// never have to recompute them.
//
// Design decision: We use standard encoding/json rather than a third-party
// JSON library because:
// 1. It's part of the standard library (no extra dependencies)
// 2. It's sufficient for our needs
// 3. It provides consistent behavior across Go versions
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	// When false, output is compact (no extra whitespace).
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with default indentation.
// This is a convenience wrapper for WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = ""
		w.indentString = "  "
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the report in the structured JSON form.
func (w *JSONWriter) Write(report *model.AuditReport) (int, error) {
	var data []byte
	var err error

	structured := NewStructuredReport(report)
	if w.indent {
		data, err = json.MarshalIndent(structured, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(structured)
	}
	if err != nil {
		return 0, err
	}

	// Add trailing newline for better terminal output
	data = append(data, '\n')

	return w.output.Write(data)
}

// StructuredReport is the structured serialization form of an
// AuditReport. Field names and nesting are a stable contract for
// downstream tooling (file exports, diffing across audits).
//
// Design decision: We wrap the report rather than serializing
// AuditReport directly because the structured form carries derived
// counts and groups issues under a nested object, which would pollute
// the core data structure.
type StructuredReport struct {
	ArticleID          int64            `json:"article_id"`
	ArticleTitle       string           `json:"article_title"`
	ArticleURL         string           `json:"article_url"`
	AuditTimestamp     time.Time        `json:"audit_timestamp"`
	OverallScore       int              `json:"overall_score"`
	QualityRating      string           `json:"quality_rating"`
	DeclaredAudience   string           `json:"declared_audience"`
	DetectedAudience   string           `json:"detected_audience"`
	AudienceMismatch   bool             `json:"audience_mismatch"`
	HasWebInstructions bool             `json:"has_web_instructions"`
	HasAppInstructions bool             `json:"has_app_instructions"`
	TotalIssues        int              `json:"total_issues"`
	CriticalCount      int              `json:"critical_count"`
	WarningCount       int              `json:"warning_count"`
	SuggestionCount    int              `json:"suggestion_count"`
	Issues             StructuredIssues `json:"issues"`
	HardcodedLinks     []string         `json:"hardcoded_links"`
	UIVerification     model.UIStats    `json:"ui_verification"`
	MemberServicesFlag bool             `json:"member_services_flag"`
	FlagReason         string           `json:"flag_reason,omitempty"`
	Summary            string           `json:"summary,omitempty"`
}

// StructuredIssues groups issues by category for the structured form.
type StructuredIssues struct {
	Actionable []model.Issue `json:"actionable"`
	Brief      []model.Issue `json:"brief"`
	Targeted   []model.Issue `json:"targeted"`
	Technical  []model.Issue `json:"technical"`
	Audience   []model.Issue `json:"audience"`
}

// NewStructuredReport builds the structured form from a report.
func NewStructuredReport(report *model.AuditReport) *StructuredReport {
	links := report.HardcodedLinks
	if links == nil {
		links = []string{}
	}

	return &StructuredReport{
		ArticleID:          report.ArticleID,
		ArticleTitle:       report.ArticleTitle,
		ArticleURL:         report.ArticleURL,
		AuditTimestamp:     report.AuditedAt,
		OverallScore:       report.OverallScore,
		QualityRating:      report.QualityRating.String(),
		DeclaredAudience:   report.DeclaredAudience.String(),
		DetectedAudience:   report.DetectedAudience.String(),
		AudienceMismatch:   report.AudienceMismatch,
		HasWebInstructions: report.HasWebInstructions,
		HasAppInstructions: report.HasAppInstructions,
		TotalIssues:        report.TotalIssues(),
		CriticalCount:      report.CriticalCount(),
		WarningCount:       report.WarningCount(),
		SuggestionCount:    report.SuggestionCount(),
		Issues: StructuredIssues{
			Actionable: emptyIfNil(report.ActionableIssues),
			Brief:      emptyIfNil(report.BriefIssues),
			Targeted:   emptyIfNil(report.TargetedIssues),
			Technical:  emptyIfNil(report.TechnicalIssues),
			Audience:   emptyIfNil(report.AudienceIssues),
		},
		HardcodedLinks:     links,
		UIVerification:     report.UIStats,
		MemberServicesFlag: report.MemberServicesFlag,
		FlagReason:         report.FlagReason,
		Summary:            report.Summary,
	}
}

// emptyIfNil keeps the structured form's arrays present even when a
// bucket is empty; downstream consumers index into them unconditionally.
func emptyIfNil(issues []model.Issue) []model.Issue {
	if issues == nil {
		return []model.Issue{}
	}
	return issues
}
