// Package zendesk fetches Help Center articles over the Zendesk API.
//
// The client covers the four operations the auditor needs: fetch one
// article by locator, search, list with pagination, and a credentials
// check. Article locators are forgiving: a bare numeric id or any URL
// containing an /articles/<digits> segment both work, and an audience
// segment is read from the locator's query string when present.
package zendesk
