package main

import (
	"context"
	"time"

	"opaltrack/internal/cli"
	"opaltrack/internal/publish"
	"opaltrack/internal/services"
	"opaltrack/internal/worker"
)

// opaltrack-worker runs the scrape-and-report cycle on an interval,
// publishing each summary to the configured sinks.
func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()

	logger.Info("Starting opaltrack-worker")
	cfg := cli.LoadAndValidateConfig(logger)

	sinks, closeSinks, err := publish.FromConfig(context.Background(), cfg)
	if err != nil {
		logger.Error("Failed to initialize sinks", "error", err)
		return
	}

	ctx, done := cli.GracefulShutdown(logger, 30*time.Second, closeSinks)

	pipeline := services.NewPipeline(cfg, logger)
	scraper := worker.NewScrapeWorker(pipeline, sinks, cfg.ScrapeInterval, logger)
	go scraper.Start(ctx)

	cli.WaitForShutdown(ctx, done)
}
