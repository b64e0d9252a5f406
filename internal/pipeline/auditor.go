package pipeline

import (
	"context"
	"log/slog"

	"github.com/hcaudit/hcaudit/internal/analysis"
	"github.com/hcaudit/hcaudit/internal/model"
	"github.com/hcaudit/hcaudit/internal/uiverify"
)

// Auditor is the single entry point for auditing one article. It wires
// the step sequence and owns the collaborators shared across audits;
// per-audit state lives in the Audit value, so one Auditor is safe for
// concurrent use.
type Auditor struct {
	// analyzer is the analysis collaborator.
	analyzer analysis.Analyzer

	// verifier runs UI verification; nil skips it.
	verifier *uiverify.Verifier

	// logger is used for structured logging.
	logger *slog.Logger
}

// AuditorOption configures an Auditor.
type AuditorOption func(*Auditor)

// WithUIVerifier enables UI verification with the given verifier.
func WithUIVerifier(verifier *uiverify.Verifier) AuditorOption {
	return func(a *Auditor) {
		a.verifier = verifier
	}
}

// WithAuditorLogger sets a custom logger.
func WithAuditorLogger(logger *slog.Logger) AuditorOption {
	return func(a *Auditor) {
		a.logger = logger
	}
}

// NewAuditor creates an Auditor using the given analysis collaborator.
func NewAuditor(analyzer analysis.Analyzer, opts ...AuditorOption) *Auditor {
	a := &Auditor{
		analyzer: analyzer,
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.logger == nil {
		a.logger = slog.Default()
	}

	return a
}

// Audit runs the full audit for one article and returns the assembled
// report. The returned Audit carries the report plus any non-fatal
// warnings collected along the way.
func (a *Auditor) Audit(ctx context.Context, article *model.Article) (*Audit, error) {
	audit := &Audit{Article: article}

	p := New(WithLogger(a.logger))
	p.AddSteps(NewExtractStep())
	if a.verifier != nil {
		p.AddSteps(NewUIVerifyStep(a.verifier, a.logger))
	}
	p.AddSteps(
		NewAnalyzeStep(a.analyzer, a.logger),
		NewAssembleStep(),
	)

	if err := p.Execute(ctx, audit); err != nil {
		return nil, err
	}

	return audit, nil
}
