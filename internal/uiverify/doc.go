// Package uiverify finds UI element mentions (buttons, navigation
// paths) in article content and classifies each against a reference
// knowledge base of current UI terms and a list of known-outdated
// phrasings.
//
// The classifier is state-free and rule-based: the reference table and
// outdated-pattern list are immutable package data, updated at deploy
// time, never at runtime. The only I/O in the package is an optional
// best-effort reference page fetch whose failure is reported as
// absence, never as an error.
package uiverify
