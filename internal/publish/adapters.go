package publish

import (
	"context"
	"fmt"

	"opaltrack/internal/amqp"
	"opaltrack/internal/report"
	"opaltrack/internal/sheets"
)

// AMQPSink publishes the summary onto the configured exchange so queue
// consumers can pick up the weekly numbers.
type AMQPSink struct {
	client *amqp.Client
}

func NewAMQPSink(client *amqp.Client) *AMQPSink {
	return &AMQPSink{client: client}
}

func (s *AMQPSink) Name() string { return "amqp" }

func (s *AMQPSink) Publish(ctx context.Context, summary report.Summary) error {
	return s.client.PublishWeeklySummary(ctx, summary)
}

// SheetsSink appends the summary as a spreadsheet row.
type SheetsSink struct {
	appender sheets.SummaryAppender
}

func NewSheetsSink(appender sheets.SummaryAppender) *SheetsSink {
	return &SheetsSink{appender: appender}
}

func (s *SheetsSink) Name() string { return "sheets" }

func (s *SheetsSink) Publish(ctx context.Context, summary report.Summary) error {
	if _, err := s.appender.Append(ctx, summary); err != nil {
		return fmt.Errorf("append summary row: %w", err)
	}
	return nil
}
