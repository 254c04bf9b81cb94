package pr

import (
	"context"
	"log/slog"
	"time"
)

// Default merge confirmation budget.
const (
	DefaultPollAttempts = 5
	DefaultPollInterval = 10 * time.Second
)

// Poller confirms an asynchronous merge with a bounded number of checks.
type Poller struct {
	Attempts int           // Number of status checks
	Interval time.Duration // Fixed delay between checks
	Logger   *slog.Logger

	// Sleep waits between checks. Defaults to time.Sleep, so a wait in
	// progress is not interrupted by context cancellation.
	Sleep func(time.Duration)
}

// NewPoller creates a poller with the given budget.
func NewPoller(attempts int, interval time.Duration) *Poller {
	if attempts <= 0 {
		attempts = DefaultPollAttempts
	}
	return &Poller{
		Attempts: attempts,
		Interval: interval,
		Logger:   slog.Default(),
		Sleep:    time.Sleep,
	}
}

// ConfirmMerge polls until the pull request reports merged-or-queued or the
// budget runs out. It returns the number of checks made and ErrMergeTimeout
// on exhaustion. A failed status check counts as "not yet".
func (p *Poller) ConfirmMerge(ctx context.Context, provider Provider, ref string) (int, error) {
	sleep := p.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}

	for attempt := 1; attempt <= p.Attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return attempt - 1, err
		}

		status, err := provider.MergeStatus(ctx, ref)
		switch {
		case err != nil:
			logger.Debug("merge status check failed", "pr", ref, "attempt", attempt, "error", err)
		case status.Done():
			return attempt, nil
		case status.State == StateClosed:
			logger.Warn("pull request closed without merging", "pr", ref, "attempt", attempt)
		}

		if attempt < p.Attempts {
			sleep(p.Interval)
		}
	}
	return p.Attempts, ErrMergeTimeout
}
