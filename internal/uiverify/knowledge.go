package uiverify

import (
	"regexp"

	"github.com/hcaudit/hcaudit/internal/model"
)

// Classification sources recorded on verification results.
const (
	// SourceReferenceTable marks results decided by the reference table.
	SourceReferenceTable = "reference_table"
	// SourceOutdatedPatterns marks results decided by the outdated list.
	SourceOutdatedPatterns = "outdated_patterns"
	// SourceLiveCheck marks results from the live verification fallback.
	SourceLiveCheck = "live_check"
)

// referenceEntry describes one known UI term.
type referenceEntry struct {
	// Term is the normalized (lowercase) UI term.
	Term string

	// Current is false for terms that name a retired UI.
	Current bool

	// Platform is the surface the term belongs to.
	Platform model.Platform

	// Type classifies the term.
	Type model.UIElementType
}

// referenceTable is the baseline of known UI terms and their status.
// It acts as deploy-time configuration: update this table when the
// product UI changes, never mutate it at runtime.
//
// Design decision: We keep the table as an ordered slice rather than a
// map because the partial-match fallback iterates it and must be
// deterministic: the first entry wins, so iteration order is part of
// the classification contract.
var referenceTable = []referenceEntry{
	// Shop Manager navigation
	{Term: "shop manager", Current: true, Platform: model.PlatformWeb, Type: model.ElementTypeNavigation},
	{Term: "listings", Current: true, Platform: model.PlatformBoth, Type: model.ElementTypeNavigation},
	{Term: "orders & shipping", Current: true, Platform: model.PlatformWeb, Type: model.ElementTypeNavigation},
	{Term: "messages", Current: true, Platform: model.PlatformBoth, Type: model.ElementTypeNavigation},
	{Term: "marketing", Current: true, Platform: model.PlatformWeb, Type: model.ElementTypeNavigation},
	{Term: "finances", Current: true, Platform: model.PlatformWeb, Type: model.ElementTypeNavigation},
	{Term: "settings", Current: true, Platform: model.PlatformBoth, Type: model.ElementTypeNavigation},
	{Term: "stats", Current: true, Platform: model.PlatformBoth, Type: model.ElementTypeNavigation},

	// Common buttons
	{Term: "add a listing", Current: true, Platform: model.PlatformBoth, Type: model.ElementTypeButton},
	{Term: "save", Current: true, Platform: model.PlatformBoth, Type: model.ElementTypeButton},
	{Term: "publish", Current: true, Platform: model.PlatformBoth, Type: model.ElementTypeButton},
	{Term: "edit", Current: true, Platform: model.PlatformBoth, Type: model.ElementTypeButton},
	{Term: "delete", Current: true, Platform: model.PlatformBoth, Type: model.ElementTypeButton},
	{Term: "renew", Current: true, Platform: model.PlatformBoth, Type: model.ElementTypeButton},
	{Term: "deactivate", Current: true, Platform: model.PlatformBoth, Type: model.ElementTypeButton},

	// Buyer-side navigation
	{Term: "your account", Current: true, Platform: model.PlatformWeb, Type: model.ElementTypeNavigation},
	{Term: "purchases and reviews", Current: true, Platform: model.PlatformWeb, Type: model.ElementTypeNavigation},
	{Term: "account settings", Current: true, Platform: model.PlatformWeb, Type: model.ElementTypeNavigation},
	{Term: "favorites", Current: true, Platform: model.PlatformBoth, Type: model.ElementTypeNavigation},
	{Term: "cart", Current: true, Platform: model.PlatformBoth, Type: model.ElementTypeNavigation},

	// App-specific
	{Term: "you tab", Current: true, Platform: model.PlatformApp, Type: model.ElementTypeNavigation},
	{Term: "shop icon", Current: true, Platform: model.PlatformApp, Type: model.ElementTypeNavigation},
	{Term: "three dots menu", Current: true, Platform: model.PlatformApp, Type: model.ElementTypeMenu},
	{Term: "hamburger menu", Current: true, Platform: model.PlatformApp, Type: model.ElementTypeMenu},
}

// referenceIndex provides exact-match lookup into referenceTable.
var referenceIndex = func() map[string]referenceEntry {
	index := make(map[string]referenceEntry, len(referenceTable))
	for _, entry := range referenceTable {
		index[entry.Term] = entry
	}
	return index
}()

// outdatedPatterns match phrasings that usually describe a retired UI.
// Each pattern is matched against the lowercased element text.
var outdatedPatterns = []*regexp.Regexp{
	// Settings moved out from behind the gear icon
	regexp.MustCompile(`click the gear icon`),
	// "Your shop" became "Shop Manager"
	regexp.MustCompile(`go to your shop`),
	// Retired feature names
	regexp.MustCompile(`direct checkout`),
	regexp.MustCompile(`alchemy`),
}
