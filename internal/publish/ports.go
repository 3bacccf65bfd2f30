// Package publish delivers the weekly summary to the configured
// destinations: the webhook endpoint, the AMQP exchange and the Google
// Sheet. Sinks are independent outbound adapters behind one port.
package publish

import (
	"context"

	"opaltrack/internal/report"
)

// SummarySink delivers one weekly summary to a destination.
type SummarySink interface {
	Name() string
	Publish(ctx context.Context, s report.Summary) error
}
