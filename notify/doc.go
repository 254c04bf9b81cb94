// Package notify reports per-repository outcomes of a run.
//
// Core types:
//   - Notifier: Interface for receiving outcome events
//   - Event: Outcome with type, repository, message and optional error
//   - EventType: committed, pushed, pr_created, merge_confirmed, failed, ...
//
// Implementations:
//   - LogNotifier: Logs events through slog
//   - MultiNotifier: Fans out to several notifiers
//   - Summary: Counts outcomes and aggregates failures for the final report
//   - NopNotifier: Discards events (for testing)
//
// Example usage:
//
//	summary := notify.NewSummary()
//	notifier := notify.NewMultiNotifier(notify.NewLogNotifier(logger), summary)
//	_ = notifier.Notify(ctx, notify.Event{
//	    Type:    notify.EventCommitted,
//	    Repo:    "api",
//	    Message: "feat: auto commit based on diff analysis (2024-03-09 14:05)",
//	})
//	fmt.Println(summary.Committed)
package notify
