package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hcaudit/hcaudit/internal/analysis"
	"github.com/hcaudit/hcaudit/internal/markup"
	"github.com/hcaudit/hcaudit/internal/report"
	"github.com/hcaudit/hcaudit/internal/uiverify"
)

// ExtractStep extracts plain text from the article body and runs the
// hygiene pre-scan for locale-hardcoded links. Pure; never fails.
type ExtractStep struct{}

// NewExtractStep creates an ExtractStep.
func NewExtractStep() *ExtractStep {
	return &ExtractStep{}
}

// Name returns the step name.
func (s *ExtractStep) Name() string {
	return "extract"
}

// Do extracts text and scans the raw markup for hardcoded links.
func (s *ExtractStep) Do(_ context.Context, audit *Audit) error {
	audit.Text = markup.ExtractText(audit.Article.Body)
	audit.PrescanLinks = markup.FindHardcodedLanguageLinks(audit.Article.Body)
	return nil
}

// UIVerifyStep runs heuristic UI element verification over the article
// body. The step is optional and never fatal: any failure leaves
// UIReport nil, which the assembler turns into "no elements found"
// semantics, and records a warning for the caller.
type UIVerifyStep struct {
	verifier *uiverify.Verifier
	logger   *slog.Logger
}

// NewUIVerifyStep creates a UIVerifyStep.
func NewUIVerifyStep(verifier *uiverify.Verifier, logger *slog.Logger) *UIVerifyStep {
	return &UIVerifyStep{verifier: verifier, logger: logger}
}

// Name returns the step name.
func (s *UIVerifyStep) Name() string {
	return "ui-verify"
}

// Do verifies UI element mentions. A panic inside verification is
// absorbed here: the audit proceeds without UI evidence.
func (s *UIVerifyStep) Do(_ context.Context, audit *Audit) (err error) {
	defer func() {
		if r := recover(); r != nil {
			warning := fmt.Sprintf("UI verification failed: %v", r)
			audit.UIReport = nil
			audit.Warnings = append(audit.Warnings, warning)
			s.logger.Warn("ui verification recovered",
				"article_id", audit.Article.ID, "panic", r)
			err = nil
		}
	}()

	audit.UIReport = s.verifier.VerifyArticle(audit.Article.Body)
	return nil
}

// AnalyzeStep sends the rendered audit prompt to the analysis
// collaborator and interprets the response. A failing collaborator call
// is the one fatal failure mode of an audit; a malformed response is
// not, the interpreter degrades it locally.
type AnalyzeStep struct {
	analyzer analysis.Analyzer
	logger   *slog.Logger
}

// NewAnalyzeStep creates an AnalyzeStep.
func NewAnalyzeStep(analyzer analysis.Analyzer, logger *slog.Logger) *AnalyzeStep {
	return &AnalyzeStep{analyzer: analyzer, logger: logger}
}

// Name returns the step name.
func (s *AnalyzeStep) Name() string {
	return "analyze"
}

// Do builds the prompt, calls the collaborator, and interprets the
// response.
func (s *AnalyzeStep) Do(ctx context.Context, audit *Audit) error {
	prompt := analysis.BuildPrompt(audit.Article, audit.Text)

	response, err := s.analyzer.Analyze(ctx, prompt)
	if err != nil {
		return fmt.Errorf("analysis collaborator: %w", err)
	}

	interpretation := analysis.Interpret(response, audit.PrescanLinks)
	audit.Analysis = interpretation.Result
	audit.AnalysisParsed = interpretation.Parsed

	if !interpretation.Parsed {
		s.logger.Warn("analysis response unparseable, degraded result",
			"article_id", audit.Article.ID)
		audit.Warnings = append(audit.Warnings, "analysis response could not be parsed")
	}

	return nil
}

// AssembleStep produces the final report from the accumulated state.
// Pure; never fails.
type AssembleStep struct{}

// NewAssembleStep creates an AssembleStep.
func NewAssembleStep() *AssembleStep {
	return &AssembleStep{}
}

// Name returns the step name.
func (s *AssembleStep) Name() string {
	return "assemble"
}

// Do assembles the AuditReport.
func (s *AssembleStep) Do(_ context.Context, audit *Audit) error {
	audit.Report = report.Generate(audit.Article, audit.Analysis, audit.UIReport)
	return nil
}

// ensure steps satisfy the interface.
var (
	_ Step = (*ExtractStep)(nil)
	_ Step = (*UIVerifyStep)(nil)
	_ Step = (*AnalyzeStep)(nil)
	_ Step = (*AssembleStep)(nil)
)
