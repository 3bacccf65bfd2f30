// Package services wires the scrape, extraction and reporting stages
// into one pipeline run.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"opaltrack/internal/config"
	"opaltrack/internal/core"
	applog "opaltrack/internal/log"
	"opaltrack/internal/opal"
	"opaltrack/internal/report"
	"opaltrack/internal/travel"
	"opaltrack/internal/travel/opalhtml"
)

// Pipeline runs one full cycle: collect a snapshot from the Opal site,
// extract the travel ledger and build the weekly summary.
type Pipeline struct {
	collector *opal.Collector
	floor     core.Money
	logger    *slog.Logger
}

func NewPipeline(cfg *config.Config, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		collector: opal.NewCollector(opal.Config{
			LoginURL:    cfg.LoginURL,
			Username:    cfg.Username,
			Password:    cfg.Password,
			CardName:    cfg.CardName,
			ProfileDir:  cfg.ChromeProfileDir,
			Headless:    cfg.Headless,
			WaitTimeout: cfg.WaitTimeout,
		}),
		floor:  cfg.TargetFloor(),
		logger: applog.For(logger, applog.ComponentPipeline),
	}
}

// Run scrapes the site and summarizes the result against the week that
// started last Monday relative to now.
func (p *Pipeline) Run(ctx context.Context, now time.Time) (report.Summary, error) {
	start := time.Now()

	snapshot, err := p.collector.Collect(ctx)
	if err != nil {
		return report.Summary{}, fmt.Errorf("collect snapshot: %w", err)
	}

	summary, err := p.Summarize(snapshot, now)
	if err != nil {
		return report.Summary{}, err
	}

	p.logger.InfoContext(ctx, "Pipeline run complete",
		applog.FieldWeekStart, summary.WeekStart.Label(),
		applog.FieldDuration, time.Since(start).Milliseconds())
	return summary, nil
}

// Summarize turns a collected snapshot into the weekly summary. Split
// from Run so the reporting stages can be exercised without a browser.
func (p *Pipeline) Summarize(snapshot opal.Snapshot, now time.Time) (report.Summary, error) {
	doc, err := opalhtml.Parse(snapshot.TravelHTML)
	if err != nil {
		return report.Summary{}, fmt.Errorf("parse travel activity: %w", err)
	}

	groups := travel.Extract(doc)
	ledger := core.BuildLedger(groups)
	p.logger.Info("Extracted travel activity", applog.FieldDays, len(ledger.Days))

	summary, err := report.Build(ledger, core.LastMonday(now), snapshot.Balance, snapshot.Pending, p.floor)
	if err != nil {
		return report.Summary{}, fmt.Errorf("build weekly summary: %w", err)
	}
	return summary, nil
}
