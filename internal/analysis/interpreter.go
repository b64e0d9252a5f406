package analysis

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/hcaudit/hcaudit/internal/model"
)

// Interpretation is the outcome of interpreting one collaborator
// response. Parsed reports whether a structured object literal was
// found and decoded; when false, Result is the degraded fallback and
// still safe to use downstream.
type Interpretation struct {
	Result model.AnalysisResult
	Parsed bool
}

// responsePayload mirrors the object schema the prompt mandates.
// Decoding is lenient: every key is optional and unknown keys are
// ignored, because the collaborator does not always follow the schema.
type responsePayload struct {
	OverallScore       int            `json:"overall_score"`
	AudienceDetected   string         `json:"audience_detected"`
	AudienceMismatch   bool           `json:"audience_mismatch"`
	HasWebInstructions bool           `json:"has_web_instructions"`
	HasAppInstructions bool           `json:"has_app_instructions"`
	Issues             []issuePayload `json:"issues"`
	HardcodedLinks     []string       `json:"hardcoded_links"`
	MemberServicesFlag bool           `json:"member_services_flag"`
	FlagReason         string         `json:"flag_reason"`
	Summary            string         `json:"summary"`
}

type issuePayload struct {
	Category       string `json:"category"`
	Severity       string `json:"severity"`
	Description    string `json:"description"`
	Location       string `json:"location"`
	Recommendation string `json:"recommendation"`
}

// Interpret turns a raw collaborator response into an AnalysisResult.
// prescanLinks are the hygiene scanner's own hardcoded-link findings;
// they are merged with whatever the collaborator reported.
//
// Interpret never fails. A response with no parseable object literal
// produces a degraded result: score 0, audience Unknown, one critical
// parse-failure issue, and the raw response preserved verbatim.
func Interpret(raw string, prescanLinks []string) Interpretation {
	literal, ok := extractObject(raw)
	if !ok {
		return Interpretation{Result: degradedResult(raw)}
	}

	var payload responsePayload
	if err := json.Unmarshal([]byte(literal), &payload); err != nil {
		return Interpretation{Result: degradedResult(raw)}
	}

	issues := make([]model.Issue, 0, len(payload.Issues)+1)
	for _, entry := range payload.Issues {
		issues = append(issues, model.Issue{
			Category:       model.ParseIssueCategory(entry.Category),
			Severity:       model.ParseIssueSeverity(entry.Severity),
			Description:    entry.Description,
			Location:       entry.Location,
			Recommendation: entry.Recommendation,
		})
	}

	links := mergeLinks(prescanLinks, payload.HardcodedLinks)
	if len(links) > 0 {
		issues = append(issues, model.Issue{
			Category:       model.CategoryTechnical,
			Severity:       model.SeverityWarning,
			Description:    fmt.Sprintf("Found %d link(s) with hardcoded language tags", len(links)),
			Recommendation: "Remove /en-us/ or similar language tags from internal links for dynamic localization",
		})
	}

	audience := model.AudienceUnknown
	if payload.AudienceDetected != "" {
		audience = model.Audience(payload.AudienceDetected)
	}

	return Interpretation{
		Result: model.AnalysisResult{
			OverallScore:       payload.OverallScore,
			AudienceDetected:   audience,
			AudienceMismatch:   payload.AudienceMismatch,
			Issues:             issues,
			HasWebInstructions: payload.HasWebInstructions,
			HasAppInstructions: payload.HasAppInstructions,
			HardcodedLinks:     links,
			MemberServicesFlag: payload.MemberServicesFlag,
			FlagReason:         payload.FlagReason,
			RawAnalysis:        payload.Summary,
		},
		Parsed: true,
	}
}

// degradedResult is the last line of defense against an unreliable
// collaborator: a well-formed result that records the failure.
func degradedResult(raw string) model.AnalysisResult {
	return model.AnalysisResult{
		OverallScore:     0,
		AudienceDetected: model.AudienceUnknown,
		Issues: []model.Issue{{
			Category:       model.CategoryTechnical,
			Severity:       model.SeverityCritical,
			Description:    "Failed to parse analysis response",
			Recommendation: "Please try again",
		}},
		HardcodedLinks: []string{},
		RawAnalysis:    raw,
	}
}

// extractObject locates the first balanced top-level object literal in
// text. Responses often wrap the object in prose or a code fence, so a
// plain unmarshal of the whole text would fail. Brace depth is tracked
// outside string literals only; escaped quotes inside strings are
// honored.
func extractObject(text string) (string, bool) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(text); i++ {
		c := text[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			if start >= 0 {
				inString = true
			}
		case '{':
			if start < 0 {
				start = i
			}
			depth++
		case '}':
			if start < 0 {
				continue
			}
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}

	return "", false
}

// mergeLinks unions the two link lists, deduplicated. The result is
// sorted so reports are byte-stable across runs.
func mergeLinks(prescan, reported []string) []string {
	seen := make(map[string]struct{}, len(prescan)+len(reported))
	merged := make([]string, 0, len(prescan)+len(reported))

	for _, list := range [][]string{prescan, reported} {
		for _, link := range list {
			if _, ok := seen[link]; ok {
				continue
			}
			seen[link] = struct{}{}
			merged = append(merged, link)
		}
	}

	sort.Strings(merged)
	return merged
}
