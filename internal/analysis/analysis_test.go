package analysis

import (
	"strings"
	"testing"

	"github.com/hcaudit/hcaudit/internal/model"
)

func testArticle() *model.Article {
	return &model.Article{
		ID:          360000000001,
		Title:       "How to renew a listing",
		URL:         "https://help.etsy.com/hc/en-us/articles/360000000001",
		SectionName: "Listings",
		Segment:     model.SegmentSelling,
	}
}

// TestBuildPrompt tests prompt rendering.
func TestBuildPrompt(t *testing.T) {
	t.Parallel()

	t.Run("embeds article fields", func(t *testing.T) {
		t.Parallel()

		prompt := BuildPrompt(testArticle(), "Renew from Shop Manager.")

		for _, want := range []string{
			"How to renew a listing",
			"https://help.etsy.com/hc/en-us/articles/360000000001",
			"**Section:** Listings",
			"Declared segment from URL: Seller",
			"**Declared Audience (from URL segment):** Seller",
			"Renew from Shop Manager.",
			"overall_score",
		} {
			if !strings.Contains(prompt, want) {
				t.Errorf("prompt missing %q", want)
			}
		}
	})

	t.Run("missing section renders as Unknown", func(t *testing.T) {
		t.Parallel()

		article := testArticle()
		article.SectionName = ""

		prompt := BuildPrompt(article, "body")

		if !strings.Contains(prompt, "**Section:** Unknown") {
			t.Error("expected section to render as Unknown")
		}
	})

	t.Run("truncates long text without a marker", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("a", MaxContentChars) + "TAIL"
		prompt := BuildPrompt(testArticle(), text)

		if strings.Contains(prompt, "TAIL") {
			t.Error("text beyond the cap must not appear in the prompt")
		}
		if strings.Contains(prompt, "...") {
			t.Error("truncation must not emit a marker")
		}
		if !strings.Contains(prompt, strings.Repeat("a", MaxContentChars)) {
			t.Error("text up to the cap must appear in the prompt")
		}
	})
}

// TestInterpret tests response interpretation.
func TestInterpret(t *testing.T) {
	t.Parallel()

	t.Run("well-formed response", func(t *testing.T) {
		t.Parallel()

		raw := `{
			"overall_score": 85,
			"audience_detected": "Seller",
			"audience_mismatch": false,
			"has_web_instructions": true,
			"has_app_instructions": false,
			"issues": [],
			"hardcoded_links": [],
			"member_services_flag": false,
			"summary": "Clear."
		}`

		got := Interpret(raw, nil)

		if !got.Parsed {
			t.Fatal("expected parsed interpretation")
		}
		result := got.Result
		if result.OverallScore != 85 {
			t.Errorf("expected score 85, got %d", result.OverallScore)
		}
		if result.AudienceDetected != model.AudienceSeller {
			t.Errorf("expected Seller, got %q", result.AudienceDetected)
		}
		if !result.HasWebInstructions || result.HasAppInstructions {
			t.Error("instruction flags not carried over")
		}
		if len(result.Issues) != 0 {
			t.Errorf("expected no issues, got %d", len(result.Issues))
		}
		if result.RawAnalysis != "Clear." {
			t.Errorf("expected summary preserved, got %q", result.RawAnalysis)
		}
	})

	t.Run("object wrapped in prose and code fence", func(t *testing.T) {
		t.Parallel()

		raw := "Here is my assessment:\n```json\n{\"overall_score\": 92, \"audience_detected\": \"Buyer\"}\n```\nLet me know if you need more."

		got := Interpret(raw, nil)

		if !got.Parsed {
			t.Fatal("expected parsed interpretation")
		}
		if got.Result.OverallScore != 92 {
			t.Errorf("expected score 92, got %d", got.Result.OverallScore)
		}
	})

	t.Run("missing keys take defaults", func(t *testing.T) {
		t.Parallel()

		got := Interpret(`{"summary": "Thin response."}`, nil)

		if !got.Parsed {
			t.Fatal("expected parsed interpretation")
		}
		result := got.Result
		if result.OverallScore != 0 {
			t.Errorf("expected default score 0, got %d", result.OverallScore)
		}
		if result.AudienceDetected != model.AudienceUnknown {
			t.Errorf("expected Unknown audience, got %q", result.AudienceDetected)
		}
		if result.AudienceMismatch || result.MemberServicesFlag {
			t.Error("expected flags defaulted to false")
		}
		if len(result.Issues) != 0 || len(result.HardcodedLinks) != 0 {
			t.Error("expected empty lists")
		}
	})

	t.Run("issue defaults", func(t *testing.T) {
		t.Parallel()

		raw := `{"issues": [
			{"description": "no category or severity"},
			{"category": "imaginative", "severity": "catastrophic", "description": "unknown tags"}
		]}`

		got := Interpret(raw, nil)

		if len(got.Result.Issues) != 2 {
			t.Fatalf("expected 2 issues, got %d", len(got.Result.Issues))
		}
		for _, issue := range got.Result.Issues {
			if issue.Category != model.CategoryTechnical {
				t.Errorf("expected technical category, got %q", issue.Category)
			}
			if issue.Severity != model.SeverityWarning {
				t.Errorf("expected warning severity, got %q", issue.Severity)
			}
		}
	})

	t.Run("hardcoded link union synthesizes one issue", func(t *testing.T) {
		t.Parallel()

		raw := `{"hardcoded_links": ["/hc/en-us/articles/999", "/hc/de-de/articles/7"]}`
		prescan := []string{"/hc/en-us/articles/999", "/hc/fr-fr/articles/456"}

		got := Interpret(raw, prescan)

		if len(got.Result.HardcodedLinks) != 3 {
			t.Fatalf("expected 3 deduplicated links, got %v", got.Result.HardcodedLinks)
		}
		if len(got.Result.Issues) != 1 {
			t.Fatalf("expected 1 synthesized issue, got %d", len(got.Result.Issues))
		}
		issue := got.Result.Issues[0]
		if issue.Category != model.CategoryTechnical || issue.Severity != model.SeverityWarning {
			t.Errorf("unexpected issue classification: %q/%q", issue.Category, issue.Severity)
		}
		if issue.Description != "Found 3 link(s) with hardcoded language tags" {
			t.Errorf("unexpected description: %q", issue.Description)
		}
	})

	t.Run("prescan links alone synthesize the issue", func(t *testing.T) {
		t.Parallel()

		got := Interpret(`{"overall_score": 70}`, []string{"/hc/en-us/articles/999"})

		if len(got.Result.HardcodedLinks) != 1 {
			t.Fatalf("expected prescan link carried, got %v", got.Result.HardcodedLinks)
		}
		if len(got.Result.Issues) != 1 {
			t.Fatalf("expected 1 synthesized issue, got %d", len(got.Result.Issues))
		}
		if got.Result.Issues[0].Description != "Found 1 link(s) with hardcoded language tags" {
			t.Errorf("unexpected description: %q", got.Result.Issues[0].Description)
		}
	})
}

// TestInterpretNeverFails tests the degraded path for inputs with no
// parseable object literal.
func TestInterpretNeverFails(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty string", raw: ""},
		{name: "pure prose", raw: "I cannot process this."},
		{name: "truncated literal", raw: `{"overall_score": 85, "issues": [`},
		{name: "unbalanced braces", raw: "some {{ mustache template"},
		{name: "literal with trailing garbage inside", raw: `{"overall_score": }`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Interpret(tt.raw, nil)

			if got.Parsed {
				t.Fatal("expected degraded interpretation")
			}
			result := got.Result
			if result.OverallScore != 0 {
				t.Errorf("expected score 0, got %d", result.OverallScore)
			}
			if result.AudienceDetected != model.AudienceUnknown {
				t.Errorf("expected Unknown audience, got %q", result.AudienceDetected)
			}
			if result.AudienceMismatch {
				t.Error("expected no mismatch flag")
			}
			if len(result.Issues) != 1 {
				t.Fatalf("expected exactly one issue, got %d", len(result.Issues))
			}
			issue := result.Issues[0]
			if issue.Severity != model.SeverityCritical {
				t.Errorf("expected critical severity, got %q", issue.Severity)
			}
			if issue.Description != "Failed to parse analysis response" {
				t.Errorf("unexpected description: %q", issue.Description)
			}
			if issue.Recommendation != "Please try again" {
				t.Errorf("unexpected recommendation: %q", issue.Recommendation)
			}
			if result.RawAnalysis != tt.raw {
				t.Errorf("raw response not preserved: %q", result.RawAnalysis)
			}
		})
	}
}

// TestExtractObject tests literal location in wrapped text.
func TestExtractObject(t *testing.T) {
	t.Parallel()

	t.Run("braces inside strings do not affect balance", func(t *testing.T) {
		t.Parallel()

		raw := `{"summary": "use {curly} braces", "overall_score": 50} trailing`

		literal, ok := extractObject(raw)
		if !ok {
			t.Fatal("expected an object literal")
		}
		if literal != `{"summary": "use {curly} braces", "overall_score": 50}` {
			t.Errorf("unexpected literal: %q", literal)
		}
	})

	t.Run("escaped quote inside string", func(t *testing.T) {
		t.Parallel()

		raw := `{"summary": "he said \"hi{\" once"}`

		literal, ok := extractObject(raw)
		if !ok {
			t.Fatal("expected an object literal")
		}
		if literal != raw {
			t.Errorf("unexpected literal: %q", literal)
		}
	})

	t.Run("nested objects balance", func(t *testing.T) {
		t.Parallel()

		raw := `prefix {"a": {"b": 1}} suffix`

		literal, ok := extractObject(raw)
		if !ok {
			t.Fatal("expected an object literal")
		}
		if literal != `{"a": {"b": 1}}` {
			t.Errorf("unexpected literal: %q", literal)
		}
	})
}
