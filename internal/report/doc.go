// Package report assembles and serializes audit reports.
//
// Assembly merges the article, the interpreted analysis, and the
// optional UI verification into one AuditReport. Serialization offers
// two stable forms: a structured JSON form for tooling (with derived
// counts written out explicitly) and a Markdown document with a fixed
// section order for human review. Both are pure functions of the
// report; neither recomputes audit semantics.
package report
