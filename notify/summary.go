package notify

import (
	"context"
	"fmt"
	"sort"

	"github.com/hashicorp/go-multierror"
)

// Summary counts outcomes across a run. It is a Notifier so pipelines report
// to it the same way they report to the log.
type Summary struct {
	Committed int
	Pushed    int
	counts    map[EventType]int
	failures  *multierror.Error
}

// NewSummary creates an empty summary.
func NewSummary() *Summary {
	return &Summary{counts: make(map[EventType]int)}
}

// Notify implements Notifier.
func (s *Summary) Notify(ctx context.Context, event Event) error {
	if s.counts == nil {
		s.counts = make(map[EventType]int)
	}
	s.counts[event.Type]++

	switch event.Type {
	case EventCommitted:
		s.Committed++
	case EventPushed:
		s.Pushed++
	case EventFailed:
		err := event.Err
		if err == nil {
			err = fmt.Errorf("%s", event.Message)
		}
		s.failures = multierror.Append(s.failures, fmt.Errorf("%s: %w", event.Repo, err))
	}
	return nil
}

// Count returns how many events of the given type were reported.
func (s *Summary) Count(t EventType) int {
	return s.counts[t]
}

// Failures returns every reported failure combined, or nil.
func (s *Summary) Failures() error {
	return s.failures.ErrorOrNil()
}

// FailureCount returns the number of failed repositories.
func (s *Summary) FailureCount() int {
	if s.failures == nil {
		return 0
	}
	return len(s.failures.Errors)
}

// Lines renders non-zero counters as "type: n", sorted by type.
func (s *Summary) Lines() []string {
	types := make([]string, 0, len(s.counts))
	for t := range s.counts {
		types = append(types, string(t))
	}
	sort.Strings(types)

	lines := make([]string, 0, len(types))
	for _, t := range types {
		lines = append(lines, fmt.Sprintf("%s: %d", t, s.counts[EventType(t)]))
	}
	return lines
}
