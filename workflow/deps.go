package workflow

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	nanoid "github.com/matoous/go-nanoid/v2"

	"github.com/randalmurphal/repotidy/config"
	"github.com/randalmurphal/repotidy/git"
	"github.com/randalmurphal/repotidy/notify"
	"github.com/randalmurphal/repotidy/pr"
	"github.com/randalmurphal/repotidy/prompt"
	"github.com/randalmurphal/repotidy/ui"
	"github.com/randalmurphal/repotidy/walker"
)

// Pipeline names used in events and log attributes.
const (
	PipelineCommit    = "commit"
	PipelineChangelog = "changelog"
	PipelineMerge     = "merge"
)

// ProviderFactory builds a pull request provider for one repository.
type ProviderFactory func(runner git.CommandRunner, repoDir string) pr.Provider

// Deps carries everything a pipeline reads or talks to. Pipelines get all
// settings from here and never from globals.
type Deps struct {
	Settings    config.Settings
	Runner      git.CommandRunner
	Confirm     prompt.Confirmer
	Notifier    notify.Notifier
	Printer     *ui.Printer
	Logger      *slog.Logger
	RunID       string
	Now         func() time.Time
	NewProvider ProviderFactory
	Sleep       func(time.Duration)
}

// NewRunID returns a short random identifier for one invocation.
func NewRunID() string {
	id, err := nanoid.Generate("0123456789abcdefghijklmnopqrstuvwxyz", 10)
	if err != nil {
		return fmt.Sprintf("run-%d", time.Now().UnixNano())
	}
	return id
}

// withDefaults returns a copy of d with every nil collaborator filled in.
func (d Deps) withDefaults() *Deps {
	if d.Runner == nil {
		d.Runner = git.NewExecRunner()
	}
	if d.Confirm == nil {
		d.Confirm = &prompt.AutoConfirmer{Answer: false}
	}
	if d.Notifier == nil {
		d.Notifier = notify.NopNotifier{}
	}
	if d.Printer == nil {
		d.Printer = ui.New(io.Discard, true)
	}
	if d.Logger == nil {
		d.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if d.RunID == "" {
		d.RunID = NewRunID()
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.NewProvider == nil {
		d.NewProvider = func(runner git.CommandRunner, repoDir string) pr.Provider {
			return pr.NewGHProvider(runner, repoDir)
		}
	}
	if d.Sleep == nil {
		d.Sleep = time.Sleep
	}
	return &d
}

// openRepo binds a git context to repo through the shared runner.
func (d *Deps) openRepo(repo walker.Repo) (*git.Context, error) {
	g, err := git.NewContext(repo.Path, git.WithRunner(d.Runner))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", repo.Name, err)
	}
	return g, nil
}

// report sends one outcome event. Notifier errors are logged, never returned.
func (d *Deps) report(ctx context.Context, pipeline string, repo walker.Repo, typ notify.EventType, msg string, err error, meta map[string]any) {
	event := notify.Event{
		Type:      typ,
		RunID:     d.RunID,
		Pipeline:  pipeline,
		Repo:      repo.Name,
		Message:   msg,
		Severity:  severityOf(typ),
		Timestamp: d.Now(),
		Metadata:  meta,
		Err:       err,
	}
	if nerr := d.Notifier.Notify(ctx, event); nerr != nil {
		d.Logger.Warn("notification failed", "type", typ, "repo", repo.Name, "error", nerr)
	}
}

// reportApplied reports a change made to a repository or remote. Under
// dry-run the change was suppressed, so nothing is counted.
func (d *Deps) reportApplied(ctx context.Context, pipeline string, repo walker.Repo, typ notify.EventType, msg string, meta map[string]any) {
	if d.Settings.DryRun {
		d.Logger.Debug("dry-run, not counted", "type", typ, "repo", repo.Name)
		return
	}
	d.report(ctx, pipeline, repo, typ, msg, nil, meta)
}

func severityOf(typ notify.EventType) string {
	switch typ {
	case notify.EventFailed:
		return notify.SeverityError
	case notify.EventMergeTimedOut, notify.EventSkipped:
		return notify.SeverityWarning
	default:
		return notify.SeverityInfo
	}
}
