// Package analysis builds the audit prompt sent to the analysis
// collaborator and interprets its response.
//
// The collaborator is treated as unreliable: its response is
// unstructured text that may wrap the expected object literal in prose,
// truncate it, or omit it entirely. The interpreter never fails; any
// response that cannot be parsed becomes a degraded result carrying one
// critical parse-failure issue and the raw text for inspection.
package analysis
