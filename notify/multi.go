package notify

import (
	"context"
	"log/slog"

	"github.com/hashicorp/go-multierror"
)

// MultiNotifier sends events to multiple notifiers.
type MultiNotifier struct {
	Notifiers []Notifier
	Logger    *slog.Logger
}

// NewMultiNotifier creates a notifier that fans out to multiple notifiers.
// A failing notifier does not stop the others.
func NewMultiNotifier(notifiers ...Notifier) *MultiNotifier {
	return &MultiNotifier{
		Notifiers: notifiers,
		Logger:    slog.Default(),
	}
}

// Notify implements Notifier. Errors from every notifier are combined.
func (n *MultiNotifier) Notify(ctx context.Context, event Event) error {
	var result *multierror.Error
	for _, notifier := range n.Notifiers {
		if err := notifier.Notify(ctx, event); err != nil {
			result = multierror.Append(result, err)
			if n.Logger != nil {
				n.Logger.Warn("notifier failed",
					"error", err,
					"event_type", event.Type,
				)
			}
		}
	}
	return result.ErrorOrNil()
}

// NopNotifier discards all events.
type NopNotifier struct{}

// Notify implements Notifier.
func (NopNotifier) Notify(ctx context.Context, event Event) error {
	return nil
}
