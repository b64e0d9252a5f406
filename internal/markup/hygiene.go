package markup

import (
	"regexp"
	"strings"
)

// HelpDomain is the help center host whose internal links are subject to
// the hardcoded-locale policy.
const HelpDomain = "help.etsy.com"

// localeSegmentRegex matches a two-letter-language/two-letter-region
// path segment immediately following the help center route marker,
// e.g. "/hc/en-us/" or "/hc/fr-fr/".
var localeSegmentRegex = regexp.MustCompile(`/hc/[a-z]{2}-[a-z]{2}/`)

// FindHardcodedLanguageLinks returns the hrefs of internal help-site
// links whose path embeds an explicit locale segment. Such links bypass
// the help center's dynamic locale negotiation and pin every reader to
// one language.
//
// Only links on the help domain or root-relative help paths are
// considered; external links legitimately carry locale segments. The
// result is deduplicated and its order is not significant.
func FindHardcodedLanguageLinks(markup string) []string {
	seen := make(map[string]bool)
	hardcoded := make([]string, 0)

	for _, link := range ExtractLinks(markup) {
		href := link.Href
		if !strings.Contains(href, HelpDomain) && !strings.HasPrefix(href, "/hc/") {
			continue
		}
		if !localeSegmentRegex.MatchString(href) {
			continue
		}
		if seen[href] {
			continue
		}
		seen[href] = true
		hardcoded = append(hardcoded, href)
	}

	return hardcoded
}
