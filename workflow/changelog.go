package workflow

import (
	"context"
	"fmt"

	"github.com/randalmurphal/repotidy/changelog"
	"github.com/randalmurphal/repotidy/git"
	"github.com/randalmurphal/repotidy/notify"
	"github.com/randalmurphal/repotidy/walker"
)

// ChangelogResult describes what the changelog pipeline did for one repository.
type ChangelogResult struct {
	Tag       string // Most recent tag, empty when the repository has none
	Subjects  []string
	Block     string
	Written   bool
	Created   bool // The changelog file did not exist before
	Committed bool
	Pushed    bool
}

// ChangelogPipeline renders the commits since the last tag into a block and
// prepends it to the repository changelog.
type ChangelogPipeline struct {
	deps *Deps
}

func newChangelogPipeline(d *Deps) *ChangelogPipeline {
	return &ChangelogPipeline{deps: d}
}

// Step adapts Run to RepoFunc.
func (p *ChangelogPipeline) Step(ctx context.Context, repo walker.Repo) error {
	_, err := p.Run(ctx, repo)
	return err
}

// Run processes one repository.
func (p *ChangelogPipeline) Run(ctx context.Context, repo walker.Repo) (*ChangelogResult, error) {
	d := p.deps
	s := d.Settings

	g, err := d.openRepo(repo)
	if err != nil {
		return nil, err
	}

	res := &ChangelogResult{Tag: g.LastTag()}
	rangeSpec := "HEAD"
	if res.Tag != "" {
		rangeSpec = res.Tag + "..HEAD"
	}
	res.Subjects = changelog.Filter(g.LogSubjects(rangeSpec).Lines())
	if len(res.Subjects) == 0 {
		d.Printer.Muted("⚪", "%s: No new commits to update changelog", repo.Name)
		d.report(ctx, PipelineChangelog, repo, notify.EventNoCommits, "no new commits since "+tagOrNone(res.Tag), nil, nil)
		return res, nil
	}

	now := d.Now()
	res.Block = changelog.Render(changelog.Bucket(res.Subjects), changelog.VersionLabel(res.Tag), now)
	d.Printer.Panel(repo.Name, "Last Tag: "+tagOrNone(res.Tag), res.Block)

	if !d.Confirm.Confirm("✍️  Write changelog?") {
		d.Printer.Muted("⏹️", "Skipped changelog.")
		d.report(ctx, PipelineChangelog, repo, notify.EventSkipped, "changelog declined", nil, nil)
		return res, nil
	}

	file := changelog.NewFile(g.RepoPath(), s.ChangelogFile)
	if s.DryRun {
		d.Printer.Info("🌐", "[DRY-RUN] Would write %s", file.Path)
	} else {
		created, err := file.Prepend(res.Block)
		if err != nil {
			return res, err
		}
		res.Created = created
	}
	res.Written = true
	d.Printer.Success("Changelog updated for %s", repo.Name)
	d.reportApplied(ctx, PipelineChangelog, repo, notify.EventChangelogWritten, file.Path,
		map[string]any{"subjects": len(res.Subjects), "created": res.Created})

	if !d.Confirm.Confirm("📤 Do you want to commit and push the changelog?") {
		d.Printer.Muted("⏭️", "Skipped changelog commit.")
		return res, nil
	}

	msg := git.NewCommitMessage(git.CommitTypeDocs, "update changelog", now).String()
	if err := g.CommitFiles(msg, changelogName(s.ChangelogFile)); err != nil {
		return res, fmt.Errorf("commit changelog: %w", err)
	}
	res.Committed = true
	d.reportApplied(ctx, PipelineChangelog, repo, notify.EventCommitted, msg, nil)

	if err := g.Push("", ""); err != nil {
		return res, fmt.Errorf("push changelog: %w", err)
	}
	res.Pushed = true
	d.Printer.Success("Changelog committed and pushed.")
	d.reportApplied(ctx, PipelineChangelog, repo, notify.EventPushed, "changelog", nil)
	return res, nil
}

func tagOrNone(tag string) string {
	if tag == "" {
		return "None"
	}
	return tag
}

func changelogName(name string) string {
	if name == "" {
		return changelog.DefaultFilename
	}
	return name
}
