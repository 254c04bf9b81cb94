package workflow

import (
	"context"
	"fmt"

	"github.com/randalmurphal/repotidy/classify"
	"github.com/randalmurphal/repotidy/git"
	"github.com/randalmurphal/repotidy/notify"
	"github.com/randalmurphal/repotidy/walker"
)

// DefaultCommitDescription is the description of generated commit titles.
const DefaultCommitDescription = "auto commit based on diff analysis"

// CommitResult describes what the commit pipeline did for one repository.
type CommitResult struct {
	Evidence  classify.Evidence
	Type      git.CommitType
	Message   string
	Score     classify.Score // Filled for the diff strategy only
	SHA       string         // HEAD after the commit
	Branch    string         // Branch the commit landed on
	Committed bool           // The commit step ran, suppressed or not
	Pushed    bool
}

// CommitPipeline classifies pending changes, commits them with a generated
// title and optionally pushes them to the staging branch.
type CommitPipeline struct {
	deps *Deps

	// Description replaces DefaultCommitDescription when set.
	Description string
}

func newCommitPipeline(d *Deps) *CommitPipeline {
	return &CommitPipeline{deps: d}
}

// Step adapts Run to RepoFunc.
func (p *CommitPipeline) Step(ctx context.Context, repo walker.Repo) error {
	_, err := p.Run(ctx, repo)
	return err
}

// Evidence collects classifier input for the configured strategy. The diff
// strategy reads the staged diff. The files strategy reads staged paths
// and falls back to every changed path when nothing is staged.
func (p *CommitPipeline) Evidence(g *git.Context) classify.Evidence {
	if p.deps.Settings.CommitStrategy == classify.StrategyFiles {
		paths := g.DiffStagedNames().Lines()
		if len(paths) == 0 {
			paths = g.ChangedPaths()
		}
		return classify.Evidence{Paths: paths}
	}
	return classify.Evidence{Diff: g.DiffStaged().Evidence()}
}

// Run processes one repository.
func (p *CommitPipeline) Run(ctx context.Context, repo walker.Repo) (*CommitResult, error) {
	d := p.deps
	s := d.Settings

	g, err := d.openRepo(repo)
	if err != nil {
		return nil, err
	}

	ev := p.Evidence(g)
	res := &CommitResult{Evidence: ev}
	if ev.Empty(s.CommitStrategy) {
		d.Printer.Muted("⚪", "%s: No changes to commit", repo.Name)
		d.report(ctx, PipelineCommit, repo, notify.EventNoChanges, "no changes to commit", nil, nil)
		return res, nil
	}

	res.Type = classify.Classify(s.CommitStrategy, ev)
	if s.CommitStrategy == classify.StrategyDiff {
		res.Score = classify.Explain(ev.Diff)
	}
	msg := git.NewCommitMessage(res.Type, p.description(), d.Now())
	if err := msg.Validate(); err != nil {
		return res, err
	}
	res.Message = msg.String()

	d.Logger.Debug("classified changes",
		"repo", repo.Name, "strategy", s.CommitStrategy, "type", res.Type, "score", res.Score)

	d.Printer.Repo("📦", "Committing for", repo.Name)
	d.Printer.Preview("Preview of commit message", res.Message)
	if !d.Confirm.Confirm("✍️  Do you want to commit this change?") {
		d.Printer.Muted("⏹️", "Skipped commit.")
		d.report(ctx, PipelineCommit, repo, notify.EventSkipped, "commit declined", nil, nil)
		return res, nil
	}

	commit, err := g.CommitAll(res.Message, s.StageAll)
	if err != nil {
		return res, fmt.Errorf("commit: %w", err)
	}
	res.Committed = true
	res.SHA, res.Branch = commit.SHA, commit.Branch
	d.Printer.Success("Commit done.")
	d.reportApplied(ctx, PipelineCommit, repo, notify.EventCommitted, res.Message,
		map[string]any{"type": string(res.Type), "sha": commit.SHA, "branch": commit.Branch})

	if !d.Confirm.Confirm(fmt.Sprintf("📤 Do you want to push to %s?", s.StagingBranch)) {
		d.Printer.Muted("⏭️", "Skipped git push")
		return res, nil
	}
	if _, err := g.PushTo(s.Remote, s.StagingBranch); err != nil {
		return res, fmt.Errorf("push: %w", err)
	}
	res.Pushed = true
	d.Printer.Info("🚀", "Pushed to %s branch", s.StagingBranch)
	d.reportApplied(ctx, PipelineCommit, repo, notify.EventPushed, s.Remote+"/"+s.StagingBranch, nil)
	return res, nil
}

func (p *CommitPipeline) description() string {
	if p.Description != "" {
		return p.Description
	}
	return DefaultCommitDescription
}
