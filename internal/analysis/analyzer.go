package analysis

import "context"

// Analyzer is the analysis collaborator: it accepts one rendered prompt
// and returns the raw response text. Implementations live outside this
// package; the interpreter validates the response shape, so callers
// must not assume the returned text is well-formed.
type Analyzer interface {
	Analyze(ctx context.Context, prompt string) (string, error)
}
