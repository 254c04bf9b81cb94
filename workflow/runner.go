package workflow

import (
	"context"
	"fmt"

	"github.com/randalmurphal/repotidy/notify"
	"github.com/randalmurphal/repotidy/walker"
)

// RepoFunc processes one repository.
type RepoFunc func(ctx context.Context, repo walker.Repo) error

// Runner drives pipelines over every discovered repository, one at a time.
type Runner struct {
	deps *Deps

	commit    *CommitPipeline
	changelog *ChangelogPipeline
	merge     *MergePipeline
}

// NewRunner creates a runner. Nil collaborators in deps get defaults.
func NewRunner(deps Deps) *Runner {
	d := deps.withDefaults()
	return &Runner{
		deps:      d,
		commit:    newCommitPipeline(d),
		changelog: newChangelogPipeline(d),
		merge:     newMergePipeline(d),
	}
}

// Commit returns the commit pipeline bound to this runner.
func (r *Runner) Commit() *CommitPipeline { return r.commit }

// Changelog returns the changelog pipeline bound to this runner.
func (r *Runner) Changelog() *ChangelogPipeline { return r.changelog }

// Merge returns the merge pipeline bound to this runner.
func (r *Runner) Merge() *MergePipeline { return r.merge }

// Discover lists the repositories under every configured root. Each root
// gets a heading; unreadable or empty roots are warned about and skipped.
func (r *Runner) Discover() []walker.Repo {
	d := r.deps
	repos, _ := walker.Walk(d.Settings.Roots, func(scan walker.RootScan) {
		d.Printer.Info("📂", "Scanning root directory: %s", scan.Root)
		switch {
		case scan.Err != nil:
			d.Printer.Warn("Cannot read %s: %v", scan.Root, scan.Err)
			d.Logger.Warn("root unreadable", "root", scan.Root, "error", scan.Err)
		case len(scan.Repos) == 0:
			d.Printer.Warn("No repositories found in %s", scan.Root)
		default:
			d.Logger.Debug("root scanned", "root", scan.Root, "repos", len(scan.Repos))
		}
	})
	return repos
}

// Each runs fn for every repo in order. A failing repository is reported
// and the loop moves on. Each returns the number of failures; it stops
// early only when ctx is cancelled.
func (r *Runner) Each(ctx context.Context, pipeline string, repos []walker.Repo, fn RepoFunc) int {
	d := r.deps
	failures := 0
	for _, repo := range repos {
		if ctx.Err() != nil {
			d.Logger.Warn("run cancelled", "pipeline", pipeline, "error", ctx.Err())
			return failures
		}

		d.Logger.Debug("processing repository", "pipeline", pipeline, "repo", repo.Name, "path", repo.Path)
		if err := fn(ctx, repo); err != nil {
			failures++
			d.Printer.Error("%s: %v", repo.Name, err)
			d.report(ctx, pipeline, repo, notify.EventFailed, err.Error(), err, nil)
		}
	}
	return failures
}

// Section is one confirm-gated stage of a full run.
type Section struct {
	Emoji    string
	Title    string
	Question string
	Pipeline string
	Step     RepoFunc
}

// Sections returns the commit, changelog and merge stages in run order.
func (r *Runner) Sections() []Section {
	return []Section{
		{"🔧", "Auto-commit " + r.deps.Settings.StagingBranch, "Run auto-commit?", PipelineCommit, r.commit.Step},
		{"📝", "Update changelogs", "Run changelog update?", PipelineChangelog, r.changelog.Step},
		{"🔁", "Merge to " + r.deps.Settings.MasterBranch, "Run merge to " + r.deps.Settings.MasterBranch + "?", PipelineMerge, r.merge.Step},
	}
}

// RunSection prints the section heading, asks whether to run it and, if
// confirmed, runs it over repos. It reports whether the section ran.
func (r *Runner) RunSection(ctx context.Context, s Section, repos []walker.Repo) bool {
	r.deps.Printer.SectionTitle(s.Emoji, s.Title)
	if !r.deps.Confirm.Confirm(s.Question) {
		r.deps.Printer.Muted("⏭️", "Skipped %s.", s.Pipeline)
		return false
	}
	r.Each(ctx, s.Pipeline, repos, s.Step)
	return true
}

// RunAll runs every section over repos in order.
func (r *Runner) RunAll(ctx context.Context, repos []walker.Repo) error {
	r.deps.Printer.Banner("Dev Tools")
	for _, s := range r.Sections() {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.RunSection(ctx, s, repos)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	r.deps.Printer.Success("All Done!")
	return nil
}

// RunPipeline runs one named pipeline over repos without the section
// confirmation.
func (r *Runner) RunPipeline(ctx context.Context, pipeline string, repos []walker.Repo) (int, error) {
	for _, s := range r.Sections() {
		if s.Pipeline == pipeline {
			r.deps.Printer.SectionTitle(s.Emoji, s.Title)
			return r.Each(ctx, s.Pipeline, repos, s.Step), ctx.Err()
		}
	}
	return 0, fmt.Errorf("unknown pipeline %q", pipeline)
}
