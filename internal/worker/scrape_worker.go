// Package worker runs scrape cycles on an interval and delivers each
// summary to the configured sinks.
package worker

import (
	"context"
	"log/slog"
	"time"

	applog "opaltrack/internal/log"
	"opaltrack/internal/publish"
	"opaltrack/internal/report"
)

// Runner produces a summary for the current moment. Satisfied by
// services.Pipeline.
type Runner interface {
	Run(ctx context.Context, now time.Time) (report.Summary, error)
}

// ScrapeWorker runs the pipeline once on startup and then on every
// tick. A failed cycle is logged and the next tick tries again.
type ScrapeWorker struct {
	pipeline Runner
	sinks    []publish.SummarySink
	interval time.Duration
	logger   *slog.Logger
}

func NewScrapeWorker(pipeline Runner, sinks []publish.SummarySink, interval time.Duration, logger *slog.Logger) *ScrapeWorker {
	return &ScrapeWorker{
		pipeline: pipeline,
		sinks:    sinks,
		interval: interval,
		logger:   applog.For(logger, applog.ComponentWorker),
	}
}

// Start blocks until the context is cancelled.
func (w *ScrapeWorker) Start(ctx context.Context) {
	w.runOnce(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Scrape worker stopping")
			return
		case <-ticker.C:
			w.runOnce(ctx)
		}
	}
}

func (w *ScrapeWorker) runOnce(ctx context.Context) {
	summary, err := w.pipeline.Run(ctx, time.Now())
	if err != nil {
		w.logger.ErrorContext(ctx, "Pipeline run failed", applog.FieldError, err)
		return
	}

	if len(w.sinks) == 0 {
		w.logger.InfoContext(ctx, "No sinks configured, skipping publish",
			applog.FieldWeekStart, summary.WeekStart.Label())
		return
	}
	if err := publish.Fanout(ctx, summary, w.sinks...); err != nil {
		w.logger.ErrorContext(ctx, "Publishing failed", applog.FieldError, err)
	}
}
