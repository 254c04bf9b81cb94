package integrationtest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/repotidy/git"
	"github.com/randalmurphal/repotidy/notify"
	"github.com/randalmurphal/repotidy/prompt"
	"github.com/randalmurphal/repotidy/testutil"
	"github.com/randalmurphal/repotidy/workflow"
)

// TestFullRun commits, pushes and writes the changelog, then promotes
// staging through the pull request provider.
func TestFullRun(t *testing.T) {
	ws := setupWorkspace(t, "svc")
	dir := ws.repo("svc")
	testutil.CommitFile(t, dir, "login.go", "package svc\n", "feat: add login")
	testutil.StageFile(t, dir, "app.py", "def handler():\n    return 1\n")

	s := newSession(t, ws, &prompt.AutoConfirmer{Answer: true})
	repos := s.runner.Discover()
	require.Len(t, repos, 1)

	require.NoError(t, s.runner.RunAll(context.Background(), repos))

	subjects := testutil.Git(t, dir, "log", "--pretty=%s", "-3")
	assert.Contains(t, subjects, "docs: update changelog (")
	assert.Contains(t, subjects, "feat: auto commit based on diff analysis (")

	assert.Equal(t, testutil.GetHeadSHA(t, dir), testutil.Git(t, ws.remotes["svc"], "rev-parse", "staging"),
		"remote staging should hold both commits")

	content, err := os.ReadFile(filepath.Join(dir, "CHANGELOG.md"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "## [Unreleased]")
	assert.Contains(t, string(content), "- add login")
	assert.NotContains(t, string(content), "auto commit")

	assert.Equal(t, 2, s.summary.Committed)
	assert.Equal(t, 2, s.summary.Pushed)
	assert.Zero(t, s.summary.FailureCount(), "failures: %v", s.summary.Failures())
	require.Len(t, s.provider.Created, 1, "the local remote is left for gh to judge")
	assert.Equal(t, "master", s.provider.Created[0].Base)
	assert.Equal(t, "staging", s.provider.Created[0].Head)
	assert.Contains(t, s.provider.Created[0].Body, "- feat: auto commit based on diff analysis")
	assert.Equal(t, 1, s.summary.Count(notify.EventMergeConfirmed))
	assert.Contains(t, s.out.String(), "All Done!")
}

func TestMergeInSyncAcrossRepos(t *testing.T) {
	ws := setupWorkspace(t, "alpha", "beta")
	s := newSession(t, ws, &prompt.AutoConfirmer{Answer: true})

	failures, err := s.runner.RunPipeline(context.Background(), workflow.PipelineMerge, s.runner.Discover())
	require.NoError(t, err)

	assert.Zero(t, failures)
	assert.Equal(t, 2, s.summary.Count(notify.EventInSync))
	assert.Empty(t, s.provider.Created)
}

func TestBrokenRepoDoesNotStopWalk(t *testing.T) {
	ws := setupWorkspace(t, "alpha", "beta")
	testutil.Git(t, ws.repo("alpha"), "remote", "remove", "origin")
	s := newSession(t, ws, &prompt.AutoConfirmer{Answer: true})

	failures, err := s.runner.RunPipeline(context.Background(), workflow.PipelineMerge, s.runner.Discover())
	require.NoError(t, err)

	assert.Equal(t, 1, failures)
	assert.Equal(t, 1, s.summary.Count(notify.EventInSync))
	assert.Contains(t, s.summary.Failures().Error(), "alpha")
}

func TestDryRunChangesNothing(t *testing.T) {
	ws := setupWorkspace(t, "svc")
	dir := ws.repo("svc")
	testutil.CommitFile(t, dir, "login.go", "package svc\n", "feat: add login")
	testutil.WriteFile(t, dir, "app.py", "def handler():\n    return 1\n")
	before := testutil.GetHeadSHA(t, dir)
	remoteBefore := testutil.Git(t, ws.remotes["svc"], "rev-parse", "staging")

	dry := git.NewDryRunRunner(git.NewExecRunner(), nil)
	s := newSession(t, ws, &prompt.AutoConfirmer{Answer: true}, func(d *workflow.Deps) {
		d.Runner = dry
		d.Settings.DryRun = true
	})

	require.NoError(t, s.runner.RunAll(context.Background(), s.runner.Discover()))

	assert.Equal(t, before, testutil.GetHeadSHA(t, dir))
	assert.Equal(t, remoteBefore, testutil.Git(t, ws.remotes["svc"], "rev-parse", "staging"))
	assert.NoFileExists(t, filepath.Join(dir, "CHANGELOG.md"))
	assert.Equal(t, "?? app.py", testutil.Git(t, dir, "status", "--porcelain"))
	assert.NotEmpty(t, dry.Suppressed)
}
