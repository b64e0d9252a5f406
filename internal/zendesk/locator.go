package zendesk

import (
	"fmt"
	"regexp"
	"strconv"
)

var (
	digitsRegex    = regexp.MustCompile(`^\d+$`)
	articleIDRegex = regexp.MustCompile(`/articles/(\d+)`)
	segmentRegex   = regexp.MustCompile(`[?&]segment=(\w+)`)
)

// ExtractArticleID reads an article id from a locator: either a bare
// numeric id or a URL containing an /articles/<digits> segment
// (trailing title slugs like /articles/123456-how-to are fine).
func ExtractArticleID(locator string) (int64, error) {
	if digitsRegex.MatchString(locator) {
		id, err := strconv.ParseInt(locator, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %s", ErrInvalidLocator, locator)
		}
		return id, nil
	}

	match := articleIDRegex.FindStringSubmatch(locator)
	if match == nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidLocator, locator)
	}

	id, err := strconv.ParseInt(match[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidLocator, locator)
	}
	return id, nil
}

// ExtractSegment reads the audience segment from a locator's query
// string. A bare numeric locator carries no segment; the empty string
// means none was declared.
func ExtractSegment(locator string) string {
	if digitsRegex.MatchString(locator) {
		return ""
	}

	match := segmentRegex.FindStringSubmatch(locator)
	if match == nil {
		return ""
	}
	return match[1]
}
