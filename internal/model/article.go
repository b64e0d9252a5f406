package model

// Audience represents the intended reader segment of an article.
// The declared audience comes from the `segment` query parameter on the
// article locator; the detected audience comes from the analysis
// collaborator. The two are compared for mismatch detection.
type Audience string

// Audience constants.
const (
	// AudienceBuyer indicates an article written for buyers.
	AudienceBuyer Audience = "Buyer"
	// AudienceSeller indicates an article written for sellers.
	AudienceSeller Audience = "Seller"
	// AudienceBoth indicates an article relevant to both segments.
	AudienceBoth Audience = "Both"
	// AudienceUnknown indicates the audience could not be determined.
	AudienceUnknown Audience = "Unknown"
	// AudienceBothUnknown is the declared audience when no segment
	// parameter is present on the locator. The help center serves such
	// articles to everyone, so "Both/Unknown" is the honest label.
	AudienceBothUnknown Audience = "Both/Unknown"
)

// String returns the string representation of the Audience.
func (a Audience) String() string {
	if a == "" {
		return string(AudienceUnknown)
	}
	return string(a)
}

// Segment values carried by the `segment` query parameter on article URLs.
const (
	// SegmentShopping marks buyer-facing articles.
	SegmentShopping = "shopping"
	// SegmentSelling marks seller-facing articles.
	SegmentSelling = "selling"
)

// AudienceFromSegment maps a URL segment parameter to a declared audience.
// An absent or unrecognized segment maps to Both/Unknown because the help
// center serves unsegmented articles to every visitor.
func AudienceFromSegment(segment string) Audience {
	switch segment {
	case SegmentShopping:
		return AudienceBuyer
	case SegmentSelling:
		return AudienceSeller
	default:
		return AudienceBothUnknown
	}
}

// Article is a Help Center article as fetched from the article store.
// It is immutable once fetched; the pipeline reads it but never writes it.
type Article struct {
	// ID is the numeric article identifier.
	ID int64 `json:"id"`

	// Title is the article title.
	Title string `json:"title"`

	// Body is the raw HTML body markup.
	Body string `json:"body"`

	// URL is the canonical public URL of the article.
	URL string `json:"html_url"` //nolint:tagliatelle // matches the Zendesk API field

	// SectionID identifies the section the article belongs to.
	SectionID int64 `json:"section_id"`

	// SectionName is the resolved section name, empty if unresolved.
	SectionName string `json:"section_name,omitempty"`

	// Locale is the article locale (e.g. "en-us").
	Locale string `json:"locale"`

	// Segment is the raw segment query parameter from the locator
	// ("shopping", "selling", or empty).
	Segment string `json:"segment,omitempty"`
}

// Audience returns the declared audience derived from the segment tag.
func (a *Article) Audience() Audience {
	return AudienceFromSegment(a.Segment)
}
