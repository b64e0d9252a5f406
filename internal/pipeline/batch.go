package pipeline

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hcaudit/hcaudit/internal/model"
)

// ArticleStore fetches articles by locator. The zendesk client
// satisfies this; tests substitute in-memory stores.
type ArticleStore interface {
	GetArticle(ctx context.Context, locator string) (*model.Article, error)
}

// BatchResult is the outcome of one audit in a batch. Exactly one of
// Report and Err is set: a failing audit produces no report and does
// not affect the other audits.
type BatchResult struct {
	// Locator is the article locator as given by the caller.
	Locator string

	// Report is the audit report, nil on failure.
	Report *model.AuditReport

	// Warnings are the audit's non-fatal warnings.
	Warnings []string

	// Err is the fetch or analysis failure, nil on success.
	Err error
}

// BatchProcessor audits multiple articles concurrently.
//
// Design decision: We use a separate BatchProcessor rather than adding
// batch functionality to Auditor because:
// 1. It keeps the Auditor focused on single-audit execution
// 2. It allows different batch strategies (e.g., rate limiting, retries)
// 3. It provides cleaner separation of concerns
type BatchProcessor struct {
	// store fetches each article before auditing.
	store ArticleStore

	// auditor runs the audits.
	auditor *Auditor

	// concurrency bounds simultaneous audits. The analysis collaborator
	// enforces rate limits, so this stays small by default.
	concurrency int

	// logger is used for batch-level logging.
	logger *slog.Logger
}

// BatchOption configures a BatchProcessor.
type BatchOption func(*BatchProcessor)

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchProcessor) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of concurrent audits.
// Default is 3 if not specified.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchProcessor) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// NewBatchProcessor creates a BatchProcessor.
func NewBatchProcessor(store ArticleStore, auditor *Auditor, opts ...BatchOption) *BatchProcessor {
	bp := &BatchProcessor{
		store:       store,
		auditor:     auditor,
		concurrency: 3,
	}

	for _, opt := range opts {
		opt(bp)
	}

	if bp.logger == nil {
		bp.logger = slog.Default()
	}

	return bp
}

// ProcessBatch audits the given locators concurrently. Results keep the
// locator order; a failed audit carries its error in the result and
// never aborts the rest of the batch.
//
// Design decision: We use errgroup.SetLimit rather than a worker pool
// because it's simpler and errgroup handles the concurrency correctly.
// Each locator gets its own goroutine, but only 'concurrency'
// goroutines run simultaneously.
func (bp *BatchProcessor) ProcessBatch(ctx context.Context, locators []string) ([]BatchResult, error) {
	bp.logger.Info("starting batch audit",
		"total_articles", len(locators),
		"concurrency", bp.concurrency,
	)

	startTime := time.Now()
	results := make([]BatchResult, len(locators))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, locator := range locators {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				results[i] = BatchResult{Locator: locator, Err: ctx.Err()}
				return ctx.Err()
			default:
			}

			bp.logger.Info("auditing article",
				"locator", locator,
				"index", i+1,
				"total", len(locators),
			)

			results[i] = bp.auditOne(ctx, locator)
			if results[i].Err != nil {
				// The failure is recorded in the result; other audits
				// in the batch continue.
				bp.logger.Warn("audit failed",
					"locator", locator,
					"error", results[i].Err,
				)
			}
			return nil
		})
	}

	err := g.Wait()

	bp.logger.Info("batch audit complete",
		"total_articles", len(locators),
		"elapsed", time.Since(startTime),
	)

	return results, err
}

// auditOne fetches and audits a single article.
func (bp *BatchProcessor) auditOne(ctx context.Context, locator string) BatchResult {
	article, err := bp.store.GetArticle(ctx, locator)
	if err != nil {
		return BatchResult{Locator: locator, Err: err}
	}

	audit, err := bp.auditor.Audit(ctx, article)
	if err != nil {
		return BatchResult{Locator: locator, Err: err}
	}

	return BatchResult{
		Locator:  locator,
		Report:   audit.Report,
		Warnings: audit.Warnings,
	}
}
