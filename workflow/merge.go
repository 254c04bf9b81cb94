package workflow

import (
	"context"
	"errors"
	"fmt"
	"strings"

	clierrors "github.com/randalmurphal/repotidy/errors"
	"github.com/randalmurphal/repotidy/git"
	"github.com/randalmurphal/repotidy/notify"
	"github.com/randalmurphal/repotidy/pr"
	"github.com/randalmurphal/repotidy/walker"
)

// MergeResult describes how far the promotion flow got for one repository.
type MergeResult struct {
	State      MergeState
	History    []MergeState
	Comparison *git.BranchComparison
	Summary    string // One line per commit on head and not on base
	PR         *pr.PullRequest
	Attempts   int // Merge status checks made
}

func (r *MergeResult) advance(s MergeState) {
	r.State = s
	r.History = append(r.History, s)
}

// MergePipeline promotes the staging branch into the master branch through
// a pull request with auto-merge.
type MergePipeline struct {
	deps *Deps
}

func newMergePipeline(d *Deps) *MergePipeline {
	return &MergePipeline{deps: d}
}

// Step adapts Run to RepoFunc.
func (p *MergePipeline) Step(ctx context.Context, repo walker.Repo) error {
	_, err := p.Run(ctx, repo)
	return err
}

// Run processes one repository. The returned result is never nil.
func (p *MergePipeline) Run(ctx context.Context, repo walker.Repo) (*MergeResult, error) {
	d := p.deps
	s := d.Settings
	res := &MergeResult{}

	fail := func(err error) (*MergeResult, error) {
		res.advance(MergeFailed)
		return res, err
	}

	g, err := d.openRepo(repo)
	if err != nil {
		return fail(err)
	}

	if err := g.Fetch(s.Remote); err != nil {
		return fail(fmt.Errorf("fetch %s: %w", s.Remote, err))
	}

	base := s.Remote + "/" + s.MasterBranch
	head := s.Remote + "/" + s.StagingBranch
	cmp, err := g.CompareBranches(base, head, s.Divergence)
	if err != nil {
		return fail(fmt.Errorf("compare %s and %s: %w", base, head, err))
	}
	res.Comparison = cmp

	if !cmp.Diverged(s.Divergence) {
		res.advance(MergeInSync)
		d.Printer.Info("✔️ ", "%s: %s is up to date with %s.", repo.Name, s.StagingBranch, s.MasterBranch)
		d.report(ctx, PipelineMerge, repo, notify.EventInSync, "branches in sync", nil, nil)
		return res, nil
	}
	res.advance(MergeDiverged)

	res.Summary = strings.TrimSpace(g.LogSummary(base, head).Evidence())
	if res.Summary == "" {
		res.advance(MergeNoCommits)
		if s.Divergence == git.DivergenceDifferent && g.HeadBehind(cmp) {
			d.Logger.Info("head is behind base", "repo", repo.Name, "base", base, "head", head)
			d.Printer.Warn("%s: %s is behind %s, nothing to promote.", repo.Name, s.StagingBranch, s.MasterBranch)
		} else {
			d.Printer.Warn("No new commits found to merge.")
		}
		d.report(ctx, PipelineMerge, repo, notify.EventNoCommits, "no commits to promote", nil, nil)
		return res, nil
	}

	remoteURL, err := g.GetRemoteURL(s.Remote)
	if err != nil {
		return fail(err)
	}
	if err := pr.CheckHost(remoteURL); err != nil {
		return fail(clierrors.WrapProviderError(err, remoteURL))
	}
	label, slug := repo.Name, ""
	if owner, name, err := pr.ParseRepoFromURL(remoteURL); err == nil {
		slug = owner + "/" + name
		label = fmt.Sprintf("%s (%s)", repo.Name, slug)
	}

	now := d.Now()
	title := fmt.Sprintf("chore: merge %s into %s (%s)", s.StagingBranch, s.MasterBranch, now.Format(git.TimestampLayout))
	opts := pr.NewBuilder(title).
		WithBase(s.MasterBranch).
		WithHead(s.StagingBranch).
		WithPromotionSummary(res.Summary, now).
		Build()

	d.Printer.Repo("📘", "Repository:", label)
	d.Printer.Preview("Pull Request Preview", "Title: "+opts.Title+"\n\n"+opts.Body)
	if !d.Confirm.Confirm("🚀 Do you want to create and auto-merge this PR?") {
		res.advance(MergeDeclined)
		d.Printer.Muted("❌", "Skipped.")
		d.report(ctx, PipelineMerge, repo, notify.EventSkipped, "merge declined", nil, nil)
		return res, nil
	}

	provider := d.NewProvider(d.Runner, g.RepoPath())

	if s.CheckExistingPR {
		existing, err := provider.FindOpen(ctx, s.MasterBranch, s.StagingBranch)
		switch {
		case errors.Is(err, pr.ErrGHNotFound):
			return fail(clierrors.WrapProviderError(err, remoteURL))
		case err != nil:
			d.Logger.Debug("open pull request lookup failed", "repo", repo.Name, "error", err)
		case existing != nil:
			res.PR = existing
			res.advance(MergePRExists)
			d.Printer.Info("🔗", "Pull request %s is already open.", existing.Ref())
			d.report(ctx, PipelineMerge, repo, notify.EventPRExists, existing.Ref(), nil, slugMeta(slug))
		}
	}

	ref := ""
	if res.PR == nil {
		created, err := provider.CreatePR(ctx, opts)
		switch {
		case err == nil:
			ref = created.Ref()
		case s.DryRun && errors.Is(err, pr.ErrNoPRURL):
			created = &pr.PullRequest{Title: opts.Title, Base: opts.Base, Head: opts.Head}
			ref = s.StagingBranch
		default:
			return fail(clierrors.WrapProviderError(err, remoteURL))
		}
		res.PR = created
		res.advance(MergePRCreated)
		d.report(ctx, PipelineMerge, repo, notify.EventPRCreated, created.URL, nil, slugMeta(slug))
	} else {
		ref = res.PR.Ref()
	}

	mergeOpts := pr.MergeOptions{Method: pr.MergeMethodMerge, Auto: true}
	if err := provider.MergePR(ctx, ref, mergeOpts); err != nil {
		return fail(clierrors.WrapProviderError(err, remoteURL))
	}
	res.advance(MergeRequested)
	d.Printer.Success("PR created and merge scheduled.")
	d.report(ctx, PipelineMerge, repo, notify.EventMergeRequested, ref, nil, slugMeta(slug))

	if s.DryRun {
		d.Printer.Info("🌐", "[DRY-RUN] Skipping merge confirmation")
		return res, nil
	}

	poller := pr.NewPoller(s.PollAttempts, s.PollInterval)
	poller.Logger = d.Logger
	poller.Sleep = d.Sleep
	attempts, err := poller.ConfirmMerge(ctx, provider, ref)
	res.Attempts = attempts
	switch {
	case err == nil:
		res.advance(MergeConfirmed)
		d.Printer.Success("Merge confirmed for %s.", repo.Name)
		d.report(ctx, PipelineMerge, repo, notify.EventMergeConfirmed, ref,
			nil, slugMeta(slug, "attempts", attempts))
		return res, nil
	case errors.Is(err, pr.ErrMergeTimeout):
		res.advance(MergeTimedOut)
		d.report(ctx, PipelineMerge, repo, notify.EventMergeTimedOut, ref,
			err, slugMeta(slug, "attempts", attempts))
		return res, fmt.Errorf("confirm merge of %s: %w", ref, err)
	default:
		return fail(err)
	}
}

// slugMeta builds event metadata carrying the owner/repo slug when known.
func slugMeta(slug string, kv ...any) map[string]any {
	m := make(map[string]any, 1+len(kv)/2)
	if slug != "" {
		m["slug"] = slug
	}
	for i := 0; i+1 < len(kv); i += 2 {
		if k, ok := kv[i].(string); ok {
			m[k] = kv[i+1]
		}
	}
	if len(m) == 0 {
		return nil
	}
	return m
}
