package zendesk

import "errors"

// Article store errors.
//
// Design decision: We define specific error types rather than wrapping
// all errors generically. Callers treat the failure modes differently:
// a bad locator is a usage error, a 404 means the article id is wrong,
// a 401/403 means the credentials are wrong, and anything else is a
// transport problem worth retrying.
var (
	// ErrInvalidLocator is returned when no article id can be read from
	// a locator string.
	ErrInvalidLocator = errors.New("could not extract article ID from locator")

	// ErrNotFound is returned when the API reports the article or
	// section does not exist.
	ErrNotFound = errors.New("article not found")

	// ErrAuth is returned when the API rejects the credentials.
	ErrAuth = errors.New("authentication rejected")

	// ErrTransport is returned for any other failed request.
	ErrTransport = errors.New("help center request failed")
)
