package publish

import (
	"context"
	"fmt"

	"opaltrack/internal/amqp"
	"opaltrack/internal/config"
	gsheet "opaltrack/internal/sheets/google"
)

// FromConfig builds every sink the configuration enables. The returned
// closer releases any connections the sinks hold and is safe to call
// once, even when no sink needs it.
func FromConfig(ctx context.Context, cfg *config.Config) ([]SummarySink, func(), error) {
	var sinks []SummarySink
	var closers []func()
	closeAll := func() {
		for _, c := range closers {
			c()
		}
	}

	if cfg.WebhookURL != "" {
		sinks = append(sinks, NewWebhookSink(cfg.WebhookURL))
	}

	if cfg.AMQPURL != "" {
		client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("init AMQP sink: %w", err)
		}
		closers = append(closers, func() { client.Close() })
		sinks = append(sinks, NewAMQPSink(client))
	}

	if cfg.GoogleSpreadsheetID != "" {
		client, err := gsheet.NewFromEnv(ctx)
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("init sheets sink: %w", err)
		}
		sinks = append(sinks, NewSheetsSink(client))
	}

	return sinks, closeAll, nil
}
