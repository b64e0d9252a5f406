// Package main provides the entry point for the hcaudit CLI.
//
// hcaudit is a quality auditing tool for Zendesk Help Center articles.
// It fetches articles, scans their markup for hygiene problems, verifies
// referenced UI elements, and sends the content to an analysis model for
// a structured quality assessment.
//
// Usage:
//
//	hcaudit audit <article-id-or-url>
//	hcaudit search <query>
//	hcaudit history [article-id]
//
// See --help for all available options.
package main

// main is the entry point for hcaudit.
func main() {
	Execute()
}
