// Package model defines the core value types shared across the audit
// pipeline: articles, issues, UI elements, analysis results, and the
// final audit report.
//
// All types in this package are plain values with no I/O. Reports are
// created once per audit and treated as read-only afterwards; derived
// quantities (issue totals, severity slices) are computed by methods
// rather than stored.
package model
