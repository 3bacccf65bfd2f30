// Package log configures structured logging for the pipeline binaries
// and names the fields and components they share.
package log

import (
	"log/slog"
	"os"
)

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldError     = "error"
	FieldSink      = "sink"
	FieldDays      = "days"
	FieldWeekStart = "week_start"
	FieldDuration  = "duration_ms"
	FieldAttempt   = "attempt"
)

// Components defines standard component names
const (
	ComponentApp       = "app"
	ComponentCollector = "collector"
	ComponentPipeline  = "pipeline"
	ComponentPublish   = "publish"
	ComponentAMQP      = "amqp"
	ComponentSheets    = "sheets"
	ComponentWorker    = "worker"
)

// New creates a text-handler logger at the given level and installs it
// as the process default.
func New(level slog.Level) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}

// For returns a child logger tagged with a component name.
func For(logger *slog.Logger, component string) *slog.Logger {
	return logger.With(FieldComponent, component)
}
