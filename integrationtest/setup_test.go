package integrationtest

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/randalmurphal/repotidy/classify"
	"github.com/randalmurphal/repotidy/config"
	"github.com/randalmurphal/repotidy/git"
	"github.com/randalmurphal/repotidy/notify"
	"github.com/randalmurphal/repotidy/pr"
	"github.com/randalmurphal/repotidy/prompt"
	"github.com/randalmurphal/repotidy/testutil"
	"github.com/randalmurphal/repotidy/ui"
	"github.com/randalmurphal/repotidy/workflow"
)

// workspace is a root holding real repositories wired to bare remotes.
type workspace struct {
	root    string
	remotes map[string]string // repo name -> bare remote path
}

// setupWorkspace creates a root with one repository per name. Each has an
// origin remote with master and staging pushed, is checked out on staging
// and tracks origin/staging.
func setupWorkspace(t *testing.T, names ...string) *workspace {
	t.Helper()

	ws := &workspace{root: testutil.SetupRoot(t, names...), remotes: map[string]string{}}
	for _, name := range names {
		dir := ws.repo(name)
		ws.remotes[name] = testutil.SetupRemote(t, dir)
		testutil.SwitchBranch(t, dir, "staging")
		testutil.Git(t, dir, "branch", "--set-upstream-to=origin/staging")
	}
	return ws
}

func (ws *workspace) repo(name string) string {
	return filepath.Join(ws.root, name)
}

// session is a runner over a workspace plus everything it reports to.
type session struct {
	runner   *workflow.Runner
	summary  *notify.Summary
	out      *bytes.Buffer
	provider *pr.MockProvider
}

func newSession(t *testing.T, ws *workspace, confirm prompt.Confirmer, opts ...func(*workflow.Deps)) *session {
	t.Helper()

	s := &session{
		summary:  notify.NewSummary(),
		out:      &bytes.Buffer{},
		provider: &pr.MockProvider{},
	}
	deps := workflow.Deps{
		Settings: config.Settings{
			Roots:          []string{ws.root},
			Remote:         "origin",
			StagingBranch:  "staging",
			MasterBranch:   "master",
			CommitStrategy: classify.StrategyDiff,
			Divergence:     git.DivergenceDifferent,
			PollAttempts:   2,
			PollInterval:   time.Millisecond,
			ChangelogFile:  "CHANGELOG.md",
			NoColor:        true,
		},
		Runner:   git.NewExecRunner(),
		Confirm:  confirm,
		Notifier: s.summary,
		Printer:  ui.New(s.out, true),
		NewProvider: func(git.CommandRunner, string) pr.Provider {
			return s.provider
		},
		Sleep: func(time.Duration) {},
	}
	for _, opt := range opts {
		opt(&deps)
	}
	s.runner = workflow.NewRunner(deps)
	return s
}
