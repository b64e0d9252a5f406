// Package markup extracts audit inputs from raw article HTML.
//
// It provides plain-text extraction for the analysis prompt, hyperlink
// extraction in document order, and the hygiene scan for internal links
// that hardcode a locale segment. All functions are pure and tolerate
// malformed markup: the parser never fails on real-world HTML, it
// degrades to best-effort output.
package markup
