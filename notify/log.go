package notify

import (
	"context"
	"log/slog"
)

// LogNotifier logs events using slog.
type LogNotifier struct {
	Logger *slog.Logger
}

// NewLogNotifier creates a notifier that logs to the given logger.
// If logger is nil, uses the default slog logger.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{Logger: logger}
}

// Notify implements Notifier.
func (n *LogNotifier) Notify(ctx context.Context, event Event) error {
	level := slog.LevelInfo
	switch event.Severity {
	case SeverityWarning:
		level = slog.LevelWarn
	case SeverityError:
		level = slog.LevelError
	}

	attrs := []any{
		"type", event.Type,
		"run_id", event.RunID,
		"pipeline", event.Pipeline,
		"repo", event.Repo,
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err)
	}
	if len(event.Metadata) > 0 {
		attrs = append(attrs, "metadata", event.Metadata)
	}
	n.Logger.Log(ctx, level, event.Message, attrs...)
	return nil
}
