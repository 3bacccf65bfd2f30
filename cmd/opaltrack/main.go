package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"opaltrack/internal/cli"
	"opaltrack/internal/publish"
	"opaltrack/internal/report"
	"opaltrack/internal/services"
)

// opaltrack runs one scrape-and-report cycle: log in to the Opal site,
// read the card balance and travel activity, print the weekly summary
// and deliver it to the configured sinks.
func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()

	logger.Info("Starting opaltrack")
	cfg := cli.LoadAndValidateConfig(logger)

	ctx := context.Background()

	pipeline := services.NewPipeline(cfg, logger)
	summary, err := pipeline.Run(ctx, time.Now())
	if err != nil {
		logger.Error("Pipeline run failed", "error", err)
		os.Exit(1)
	}

	printSummary(summary)

	sinks, closeSinks, err := publish.FromConfig(ctx, cfg)
	if err != nil {
		logger.Error("Failed to initialize sinks", "error", err)
		os.Exit(1)
	}
	defer closeSinks()

	if len(sinks) == 0 {
		logger.Info("No sinks configured, skipping publish")
		return
	}
	if err := publish.Fanout(ctx, summary, sinks...); err != nil {
		logger.Error("Publishing failed", "error", err)
		os.Exit(1)
	}
}

func printSummary(s report.Summary) {
	fmt.Printf("Opal Balance: $%s\n", s.Balance)
	fmt.Printf("Pending Balance: $%s\n", s.Pending)
	fmt.Printf("Week starting %s\n", s.WeekStart.Label())
	fmt.Printf("Top ups this week: $%s\n", s.Totals.TopUp)
	fmt.Printf("Fares charged this week: $%s\n", s.Totals.FareCharged)
	fmt.Printf("Top up needed: $%s\n", s.TopUpNeeded)
	fmt.Println()
	fmt.Println("Travel Activity Summary:")
	fmt.Println(s.Table)
}
