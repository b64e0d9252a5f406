package report

import (
	"time"

	"github.com/hcaudit/hcaudit/internal/model"
)

// Generate assembles the final AuditReport. uiReport may be nil when UI
// verification was skipped or failed; the report then carries the
// "no elements found" summary (model.EmptyUIStats).
//
// The timestamp is captured here, at assembly time: the report's
// contents are fixed at this moment, not when the audit started.
func Generate(article *model.Article, analysis model.AnalysisResult, uiReport *model.UIVerificationReport) *model.AuditReport {
	report := &model.AuditReport{
		ArticleID:          article.ID,
		ArticleTitle:       article.Title,
		ArticleURL:         article.URL,
		AuditedAt:          time.Now(),
		OverallScore:       analysis.OverallScore,
		QualityRating:      model.RatingForScore(analysis.OverallScore),
		DeclaredAudience:   article.Audience(),
		DetectedAudience:   analysis.AudienceDetected,
		AudienceMismatch:   analysis.AudienceMismatch,
		HasWebInstructions: analysis.HasWebInstructions,
		HasAppInstructions: analysis.HasAppInstructions,
		HardcodedLinks:     analysis.HardcodedLinks,
		UIStats:            model.EmptyUIStats(),
		MemberServicesFlag: analysis.MemberServicesFlag,
		FlagReason:         analysis.FlagReason,
		Summary:            analysis.RawAnalysis,
	}

	for _, issue := range analysis.Issues {
		switch issue.Category {
		case model.CategoryActionable:
			report.ActionableIssues = append(report.ActionableIssues, issue)
		case model.CategoryBrief:
			report.BriefIssues = append(report.BriefIssues, issue)
		case model.CategoryTargeted:
			report.TargetedIssues = append(report.TargetedIssues, issue)
		case model.CategoryAudience:
			report.AudienceIssues = append(report.AudienceIssues, issue)
		default:
			// The interpreter normalizes categories, but a report built
			// from another source may still carry an unknown tag. Route
			// it to technical rather than dropping the finding.
			report.TechnicalIssues = append(report.TechnicalIssues, issue)
		}
	}

	if uiReport != nil {
		report.UIStats = model.UIStats{
			ElementsVerified:  uiReport.VerifiedCount(),
			ElementsTotal:     len(uiReport.ElementsFound),
			Confidence:        uiReport.OverallConfidence,
			ManualReviewItems: uiReport.ManualReviewItems,
		}
	}

	return report
}
