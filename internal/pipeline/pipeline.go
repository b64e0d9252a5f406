package pipeline

import (
	"context"
	"log/slog"

	"github.com/hcaudit/hcaudit/internal/model"
)

// Audit is the working state of one article audit. Steps fill it in
// sequence; once assembled, Report is the only field callers should
// read.
type Audit struct {
	// Article is the article under audit.
	Article *model.Article

	// Text is the plain text extracted from the article body.
	Text string

	// PrescanLinks holds the hygiene scanner's hardcoded-link findings.
	PrescanLinks []string

	// UIReport is the UI verification output, nil when verification was
	// skipped or failed.
	UIReport *model.UIVerificationReport

	// Analysis is the interpreted collaborator output.
	Analysis model.AnalysisResult

	// AnalysisParsed reports whether the collaborator response carried a
	// parseable object literal.
	AnalysisParsed bool

	// Report is the assembled audit report.
	Report *model.AuditReport

	// Warnings collects non-fatal problems (e.g. UI verification
	// failure) for the caller to surface.
	Warnings []string
}

// Step defines the interface that all audit steps must implement.
// Steps are executed in sequence, with each step receiving the
// accumulated audit state from previous steps.
//
// Design decision: We use an interface rather than function types because:
// 1. It allows steps to carry configuration state
// 2. It provides a Name() method for logging and debugging
// 3. It's more extensible for future features (e.g., priority, dependencies)
type Step interface {
	// Do executes the audit step.
	// It receives the context for cancellation, and the audit to modify.
	// Returns an error if the step fails critically; non-critical
	// problems should be recorded as warnings and return nil.
	Do(ctx context.Context, audit *Audit) error

	// Name returns the step's name for logging purposes.
	Name() string
}

// Pipeline orchestrates the execution of multiple steps.
// It maintains a list of steps and executes them in order.
type Pipeline struct {
	// steps contains the ordered list of steps to execute.
	steps []Step

	// logger is used for structured logging during execution.
	logger *slog.Logger
}

// Option is a function that configures a Pipeline.
// This follows the functional options pattern for clean API design.
type Option func(*Pipeline)

// WithLogger sets a custom logger for the pipeline.
// If not set, the default logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// New creates a new Pipeline with the given options.
// Steps should be added using AddSteps after creation.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		steps: make([]Step, 0),
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// AddSteps appends steps to the pipeline.
// Steps are executed in the order they are added.
func (p *Pipeline) AddSteps(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// Execute runs all pipeline steps in sequence.
// It respects context cancellation and logs each step's execution.
// The first step error aborts the audit; non-fatal problems are
// recorded as warnings by the steps themselves.
func (p *Pipeline) Execute(ctx context.Context, audit *Audit) error {
	for _, step := range p.steps {
		select {
		case <-ctx.Done():
			p.logger.Warn("audit cancelled",
				"step", step.Name(),
				"article_id", audit.Article.ID,
				"reason", ctx.Err(),
			)
			return ctx.Err()
		default:
		}

		p.logger.Debug("executing step",
			"step", step.Name(),
			"article_id", audit.Article.ID,
		)

		if err := step.Do(ctx, audit); err != nil {
			p.logger.Error("step failed",
				"step", step.Name(),
				"article_id", audit.Article.ID,
				"error", err,
			)
			return err
		}
	}

	return nil
}

// StepCount returns the number of steps in the pipeline.
func (p *Pipeline) StepCount() int {
	return len(p.steps)
}

// StepNames returns the names of all steps in execution order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, len(p.steps))
	for i, step := range p.steps {
		names[i] = step.Name()
	}
	return names
}
