package model

// UIElementType classifies a UI mention found in article text.
type UIElementType string

// UI element type constants.
const (
	// ElementTypeButton is a clickable button mention.
	ElementTypeButton UIElementType = "button"
	// ElementTypeNavigation is a navigation path mention (possibly
	// chained with ">" separators).
	ElementTypeNavigation UIElementType = "navigation"
	// ElementTypeMenu is a menu mention.
	ElementTypeMenu UIElementType = "menu"
	// ElementTypeLink is an in-page link mention.
	ElementTypeLink UIElementType = "link"
	// ElementTypeTab is a tab mention.
	ElementTypeTab UIElementType = "tab"
)

// String returns the string representation of the UIElementType.
func (t UIElementType) String() string {
	return string(t)
}

// Platform indicates which surface a UI element belongs to.
type Platform string

// Platform constants.
const (
	// PlatformWeb is the desktop/browser site.
	PlatformWeb Platform = "web"
	// PlatformApp is the mobile app.
	PlatformApp Platform = "app"
	// PlatformBoth covers elements present on both surfaces.
	PlatformBoth Platform = "both"
	// PlatformUnknown is used when context gives no signal.
	PlatformUnknown Platform = "unknown"
)

// String returns the string representation of the Platform.
func (p Platform) String() string {
	if p == "" {
		return string(PlatformUnknown)
	}
	return string(p)
}

// UIElement is a UI mention extracted from an article.
type UIElement struct {
	// Text is the literal mention as written in the article.
	Text string `json:"text"`

	// Type classifies the mention (button, navigation, ...).
	Type UIElementType `json:"element_type"` //nolint:tagliatelle // established report field name

	// Context is the surrounding text window used for disambiguation.
	Context string `json:"context"`

	// Platform is the inferred surface for this element.
	Platform Platform `json:"platform"`
}

// VerificationStatus is the outcome of classifying one UI element.
type VerificationStatus string

// Verification status constants.
const (
	// StatusVerified means the element matched a known current UI term.
	StatusVerified VerificationStatus = "verified"
	// StatusUnverified means no reference data covered the element.
	StatusUnverified VerificationStatus = "unverified"
	// StatusPotentiallyOutdated means the element matched a term or
	// pattern known to describe a retired UI.
	StatusPotentiallyOutdated VerificationStatus = "potentially_outdated"
	// StatusError means verification itself failed.
	StatusError VerificationStatus = "error"
)

// String returns the string representation of the VerificationStatus.
func (s VerificationStatus) String() string {
	return string(s)
}

// VerificationResult pairs one UIElement with its classification.
type VerificationResult struct {
	// Element is the UI element that was classified.
	Element UIElement `json:"element"`

	// Status is the assigned verification status.
	Status VerificationStatus `json:"status"`

	// Confidence is the classifier's confidence in [0, 1].
	Confidence float64 `json:"confidence"`

	// Notes explains the classification, if any.
	Notes string `json:"notes,omitempty"`

	// Source identifies which knowledge source decided (reference
	// table, outdated-pattern list, or the live fallback).
	Source string `json:"source,omitempty"`
}

// UIVerificationReport is the complete UI verification output for one
// article.
type UIVerificationReport struct {
	// ElementsFound lists every extracted UI element.
	ElementsFound []UIElement `json:"elements_found"`

	// Results holds one VerificationResult per element, in the same order.
	Results []VerificationResult `json:"results"`

	// OverallConfidence is the arithmetic mean of per-result
	// confidences, or exactly 1.0 when no elements were found.
	OverallConfidence float64 `json:"overall_confidence"`

	// NeedsManualReview is true if any element could not be confirmed
	// as current.
	NeedsManualReview bool `json:"needs_manual_review"`

	// ManualReviewItems are human-readable prompts for follow-up.
	ManualReviewItems []string `json:"manual_review_items,omitempty"`
}

// VerifiedCount returns the number of results with StatusVerified.
func (r *UIVerificationReport) VerifiedCount() int {
	count := 0
	for _, res := range r.Results {
		if res.Status == StatusVerified {
			count++
		}
	}
	return count
}

// UIStats is the UI verification summary embedded in an AuditReport.
type UIStats struct {
	// ElementsVerified is the number of elements confirmed current.
	ElementsVerified int `json:"elements_verified"`

	// ElementsTotal is the number of elements found.
	ElementsTotal int `json:"elements_total"`

	// Confidence is the aggregate verification confidence.
	Confidence float64 `json:"confidence"`

	// ManualReviewItems are the prompts carried over from the
	// verification report.
	ManualReviewItems []string `json:"manual_review_items,omitempty"`
}

// EmptyUIStats returns the UI summary used when no UI verification
// evidence exists, either because no elements were extracted or because
// no verifier ran.
//
// Design decision: absence of UI mentions is treated as no risk
// (confidence 1.0), not as unknown risk. An article with no UI
// references cannot contain an outdated one. This policy is deliberately
// defined in exactly one place so the verifier and the report assembler
// cannot drift apart.
func EmptyUIStats() UIStats {
	return UIStats{
		ElementsVerified: 0,
		ElementsTotal:    0,
		Confidence:       1.0,
	}
}
