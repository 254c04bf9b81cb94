package notify

import (
	"context"
	"time"
)

// EventType represents the outcome reported for one repository.
type EventType string

// Event type constants.
const (
	EventCommitted        EventType = "committed"
	EventPushed           EventType = "pushed"
	EventChangelogWritten EventType = "changelog_written"
	EventPRCreated        EventType = "pr_created"
	EventPRExists         EventType = "pr_exists"
	EventMergeRequested   EventType = "merge_requested"
	EventMergeConfirmed   EventType = "merge_confirmed"
	EventMergeTimedOut    EventType = "merge_timed_out"
	EventInSync           EventType = "in_sync"
	EventNoChanges        EventType = "no_changes"
	EventNoCommits        EventType = "no_commits"
	EventSkipped          EventType = "skipped"
	EventFailed           EventType = "failed"
)

// Severity constants for notifications.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// Event describes what happened to one repository during a run.
type Event struct {
	Type      EventType      `json:"type"`
	RunID     string         `json:"run_id"`
	Pipeline  string         `json:"pipeline"`
	Repo      string         `json:"repo"`
	Message   string         `json:"message"`
	Severity  string         `json:"severity"` // SeverityInfo, SeverityWarning, SeverityError
	Timestamp time.Time      `json:"timestamp"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	Err       error          `json:"-"`
}

// Notifier receives repository outcome events.
type Notifier interface {
	// Notify reports an event. Implementations must not abort the run.
	Notify(ctx context.Context, event Event) error
}
