// Package pipeline orchestrates the audit of help center articles.
//
// A single audit is a sequence of steps over an in-memory Audit value:
// text extraction and hygiene pre-scan, optional UI verification,
// collaborator analysis, and report assembly. Every step is pure except
// the collaborator call; a failing collaborator fails exactly the one
// audit in flight, while UI verification failures degrade to "no
// elements found" semantics and only surface as warnings.
//
// Batch auditing runs many independent audits concurrently with a
// bounded limit, because the analysis collaborator enforces rate
// limits.
package pipeline
