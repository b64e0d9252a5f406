package uiverify

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/hcaudit/hcaudit/internal/model"
)

// DefaultFetchTimeout bounds the optional reference page fetch.
// The fetch is best-effort decoration, so a short timeout keeps a slow
// site from stalling an audit.
const DefaultFetchTimeout = 10 * time.Second

// titleCaser renders element types for manual review prompts
// ("button" -> "Button").
var titleCaser = cases.Title(language.English)

// Verifier classifies UI element mentions against the reference
// knowledge base. It is safe for concurrent use: all classification
// state is immutable package data.
type Verifier struct {
	// client performs the optional reference page fetch.
	client *http.Client

	// logger for structured logging.
	logger *slog.Logger
}

// Option configures a Verifier.
type Option func(*Verifier)

// WithHTTPClient sets a custom HTTP client for reference page fetches.
func WithHTTPClient(client *http.Client) Option {
	return func(v *Verifier) {
		v.client = client
	}
}

// WithLogger sets a custom logger for the verifier.
func WithLogger(logger *slog.Logger) Option {
	return func(v *Verifier) {
		v.logger = logger
	}
}

// New creates a Verifier with the given options.
func New(opts ...Option) *Verifier {
	v := &Verifier{
		client: &http.Client{Timeout: DefaultFetchTimeout},
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(v)
	}

	return v
}

// Classify assigns a verification status to one element.
//
// The rules apply in strict priority order and the first match wins:
//
//  1. Exact reference-table match: verified at 0.9, or potentially
//     outdated when the table marks the term as no longer current.
//  2. Outdated-pattern match: potentially outdated at 0.7.
//  3. Partial (substring either way) reference-table match: verified at
//     0.7, table iterated in declaration order so results are stable.
//  4. Live fallback: without authenticated access to the product there
//     is nothing to compare against, so the element stays unverified at
//     0.3 with a manual review note.
//
// The priority order is part of the contract: an element whose text is
// an exact known-current term is verified even if it also happens to
// match an outdated pattern.
func (v *Verifier) Classify(element model.UIElement) model.VerificationResult {
	normalized := strings.ToLower(strings.TrimSpace(element.Text))

	if entry, ok := referenceIndex[normalized]; ok {
		status := model.StatusVerified
		if !entry.Current {
			status = model.StatusPotentiallyOutdated
		}
		return model.VerificationResult{
			Element:    element,
			Status:     status,
			Confidence: 0.9,
			Notes:      fmt.Sprintf("Matched known UI element (%s)", entry.Platform),
			Source:     SourceReferenceTable,
		}
	}

	for _, pattern := range outdatedPatterns {
		if pattern.MatchString(normalized) {
			return model.VerificationResult{
				Element:    element,
				Status:     model.StatusPotentiallyOutdated,
				Confidence: 0.7,
				Notes:      fmt.Sprintf("Matches potentially outdated pattern: %s", pattern.String()),
				Source:     SourceOutdatedPatterns,
			}
		}
	}

	for _, entry := range referenceTable {
		if strings.Contains(normalized, entry.Term) || strings.Contains(entry.Term, normalized) {
			return model.VerificationResult{
				Element:    element,
				Status:     model.StatusVerified,
				Confidence: 0.7,
				Notes:      fmt.Sprintf("Partial match to known element: %s", entry.Term),
				Source:     SourceReferenceTable,
			}
		}
	}

	return model.VerificationResult{
		Element:    element,
		Status:     model.StatusUnverified,
		Confidence: 0.3,
		Notes:      "Could not verify against known elements - manual review recommended",
		Source:     SourceLiveCheck,
	}
}

// VerifyArticle extracts and classifies every UI element in the article
// markup and aggregates the results.
//
// Aggregate confidence is the arithmetic mean of per-result
// confidences. When no elements were extracted it is exactly 1.0: no
// evidence of UI mentions is treated as no UI risk, not as unknown
// risk (see model.EmptyUIStats for the shared policy).
func (v *Verifier) VerifyArticle(articleMarkup string) *model.UIVerificationReport {
	elements := ExtractElements(articleMarkup)

	results := make([]model.VerificationResult, 0, len(elements))
	manualItems := make([]string, 0)

	for _, element := range elements {
		result := v.Classify(element)
		results = append(results, result)

		if result.Status == model.StatusUnverified || result.Status == model.StatusPotentiallyOutdated {
			manualItems = append(manualItems, fmt.Sprintf("%s: '%s' - %s",
				titleCaser.String(element.Type.String()), element.Text, result.Notes))
		}
	}

	confidence := model.EmptyUIStats().Confidence
	if len(results) > 0 {
		var sum float64
		for _, result := range results {
			sum += result.Confidence
		}
		confidence = sum / float64(len(results))
	}

	return &model.UIVerificationReport{
		ElementsFound:     elements,
		Results:           results,
		OverallConfidence: confidence,
		NeedsManualReview: len(manualItems) > 0,
		ManualReviewItems: manualItems,
	}
}

// FetchReferencePage fetches a public product page for manual
// comparison. The fetch is best-effort: any failure (network error,
// non-2xx status, context expiry) returns ok=false and never an error.
func (v *Verifier) FetchReferencePage(ctx context.Context, url string) (body string, ok bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		v.logger.Debug("reference page request failed", "url", url, "error", err)
		return "", false
	}
	req.Header.Set("User-Agent", "HelpCenterAuditor/1.0 (compatible)")

	resp, err := v.client.Do(req)
	if err != nil {
		v.logger.Debug("reference page fetch failed", "url", url, "error", err)
		return "", false
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		v.logger.Debug("reference page fetch non-2xx", "url", url, "status", resp.StatusCode)
		return "", false
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		v.logger.Debug("reference page read failed", "url", url, "error", err)
		return "", false
	}

	return string(data), true
}
