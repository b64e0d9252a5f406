package uiverify

import (
	"regexp"
	"strings"

	"github.com/hcaudit/hcaudit/internal/markup"
	"github.com/hcaudit/hcaudit/internal/model"
)

// contextWindow is the number of characters captured on each side of a
// match for disambiguation (platform inference, manual review).
const contextWindow = 50

// Button text length bounds. Shorter captures are noise ("OK" quotes in
// prose), longer captures are sentences wrongly caught by the pattern.
const (
	minButtonLen = 3
	maxButtonLen = 49
)

// Navigation path patterns over plain text.
//
// The action verb / locative preposition matches case-insensitively,
// but the captured phrase must start with a capital letter: UI labels
// are title-cased, ordinary prose after "click" usually is not. The
// second pattern requires at least one ">" drill-down step because bare
// "in <Word>" matches far too much prose.
var navPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i:go to|navigate to|select|click|tap|open)\s+([A-Z][^.!?\n]{5,50}(?:\s*>\s*[A-Z][^.!?\n>]{2,30})*)`),
	regexp.MustCompile(`(?i:from|in|under)\s+(?:(?i:the)\s+)?([A-Z][^.!?\n]{3,30}(?:\s*>\s*[A-Z][^.!?\n>]{2,30})+)`),
}

// Button mention patterns over raw markup. Three surface forms: quoted
// text, bold-wrapped text, and markdown-emphasis-wrapped text, each
// following an action verb.
var buttonPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i:click|tap|select|press)\s+(?:(?i:the)\s+)?["\x{201c}]([^"\x{201d}]+)["\x{201d}]`),
	regexp.MustCompile(`(?i:click|tap|select|press)\s+(?:(?i:the)\s+)?<(?:strong|b)>([^<]+)</(?:strong|b)>`),
	regexp.MustCompile(`(?i:click|tap|select|press)\s+(?:(?i:the)\s+)?\*\*([^*]+)\*\*`),
}

// ExtractElements finds UI element mentions in article markup.
//
// Navigation paths are matched against the extracted plain text, which
// keeps a newline between adjacent markup fragments. The phrase
// patterns exclude newlines, so a nav capture never spans an inline tag
// boundary: "Click <strong>Save</strong> to continue" is a button
// mention, not a navigation phrase. Button mentions are matched against
// the raw markup because one of their surface forms is a markup
// construct (<strong>/<b> wrapping).
func ExtractElements(articleMarkup string) []model.UIElement {
	text := markup.ExtractText(articleMarkup)

	elements := make([]model.UIElement, 0)

	for _, pattern := range navPatterns {
		for _, match := range pattern.FindAllStringSubmatchIndex(text, -1) {
			path := strings.TrimSpace(text[match[2]:match[3]])
			context := window(text, match[0], match[1])

			elements = append(elements, model.UIElement{
				Text:     path,
				Type:     model.ElementTypeNavigation,
				Context:  context,
				Platform: inferPlatform(context),
			})
		}
	}

	for _, pattern := range buttonPatterns {
		for _, match := range pattern.FindAllStringSubmatchIndex(articleMarkup, -1) {
			buttonText := strings.TrimSpace(articleMarkup[match[2]:match[3]])
			if len(buttonText) < minButtonLen || len(buttonText) > maxButtonLen {
				continue
			}

			// Buttons get no contextual platform inference: the label
			// alone does not say which surface it lives on.
			elements = append(elements, model.UIElement{
				Text:     buttonText,
				Type:     model.ElementTypeButton,
				Context:  window(articleMarkup, match[0], match[1]),
				Platform: model.PlatformUnknown,
			})
		}
	}

	return elements
}

// window returns up to contextWindow characters on each side of the
// match bounds [start, end).
func window(s string, start, end int) string {
	from := start - contextWindow
	if from < 0 {
		from = 0
	}
	to := end + contextWindow
	if to > len(s) {
		to = len(s)
	}
	return s[from:to]
}

// inferPlatform guesses the surface a navigation mention refers to from
// its surrounding context. App signals win over web signals because
// app-specific instructions usually name the app explicitly while web
// wording is the unmarked default.
func inferPlatform(context string) model.Platform {
	lower := strings.ToLower(context)
	if strings.Contains(lower, "app") || strings.Contains(lower, "mobile") {
		return model.PlatformApp
	}
	if strings.Contains(lower, "website") || strings.Contains(lower, "browser") ||
		strings.Contains(lower, "etsy.com") {
		return model.PlatformWeb
	}
	return model.PlatformUnknown
}
