// Package sheets defines the outbound spreadsheet port for weekly
// summaries.
package sheets

import (
	"context"

	"opaltrack/internal/report"
)

// SummaryAppender appends one weekly summary row to a spreadsheet.
type SummaryAppender interface {
	Append(ctx context.Context, s report.Summary) (rowRef string, err error)
}
