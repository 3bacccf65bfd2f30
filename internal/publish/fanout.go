package publish

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"opaltrack/internal/report"
)

// Fanout delivers the summary to every sink concurrently. All sinks run
// to completion even when one fails; the first failure is returned
// after the group drains.
func Fanout(ctx context.Context, summary report.Summary, sinks ...SummarySink) error {
	var g errgroup.Group
	for _, sink := range sinks {
		g.Go(func() error {
			if err := sink.Publish(ctx, summary); err != nil {
				slog.ErrorContext(ctx, "Failed to publish weekly summary",
					"sink", sink.Name(), "error", err)
				return fmt.Errorf("publish to %s: %w", sink.Name(), err)
			}
			slog.InfoContext(ctx, "Published weekly summary", "sink", sink.Name())
			return nil
		})
	}
	return g.Wait()
}
