package git

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/randalmurphal/repotidy/testutil"
)

func TestNewContext_NotGitRepo(t *testing.T) {
	runner := NewMockRunner()
	runner.OnCommand("git", "rev-parse", "--git-dir").Return("", errors.New("fatal: not a git repository"))

	_, err := NewContext(t.TempDir(), WithRunner(runner))
	if !errors.Is(err, ErrNotGitRepo) {
		t.Errorf("error = %v, want ErrNotGitRepo", err)
	}
}

func TestNewContext_RealRepo(t *testing.T) {
	dir := testutil.SetupTestRepo(t)

	ctx, err := NewContext(dir)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	abs, _ := filepath.Abs(dir)
	if ctx.RepoPath() != abs {
		t.Errorf("RepoPath() = %q, want %q", ctx.RepoPath(), abs)
	}
}

func TestContext_StagedDiffAgainstRealRepo(t *testing.T) {
	dir := testutil.SetupTestRepo(t)
	ctx, err := NewContext(dir)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}

	if diff := ctx.DiffStaged().Evidence(); diff != "" {
		t.Fatalf("fresh repo staged diff = %q, want empty", diff)
	}

	if err := os.WriteFile(filepath.Join(dir, "app.py"), []byte("def handler():\n    pass\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := ctx.Stage("app.py"); err != nil {
		t.Fatalf("Stage: %v", err)
	}

	names := ctx.DiffStagedNames().Lines()
	if len(names) != 1 || names[0] != "app.py" {
		t.Errorf("staged names = %v, want [app.py]", names)
	}
	if diff := ctx.DiffStaged().Evidence(); diff == "" {
		t.Error("staged diff should not be empty after staging")
	}
}

func TestContext_ChangedPaths(t *testing.T) {
	runner := NewMockRunner()
	runner.OnCommand("git", "status", "--porcelain").Return(
		"M src/app.ts\n?? notes.md\nR  old.css -> new.css\nA  \"with space.go\"", nil)

	ctx := &Context{repoPath: "/repo", runner: runner}
	got := ctx.ChangedPaths()
	want := []string{"src/app.ts", "notes.md", "new.css", "with space.go"}
	if !argsMatch(got, want) {
		t.Errorf("ChangedPaths() = %v, want %v", got, want)
	}
}

func TestContext_ChangedPaths_StatusFails(t *testing.T) {
	runner := NewMockRunner()
	runner.OnAnyCommand().Return("", errors.New("boom"))

	ctx := &Context{repoPath: "/repo", runner: runner}
	if got := ctx.ChangedPaths(); len(got) != 0 {
		t.Errorf("ChangedPaths() = %v, want none", got)
	}
}

func TestContext_LastTag(t *testing.T) {
	t.Run("newest first", func(t *testing.T) {
		runner := NewMockRunner()
		runner.OnCommand("git", "tag", "--sort=-creatordate").Return("v1.2.0\nv1.1.0", nil)
		ctx := &Context{repoPath: "/repo", runner: runner}
		if got := ctx.LastTag(); got != "v1.2.0" {
			t.Errorf("LastTag() = %q, want v1.2.0", got)
		}
	})

	t.Run("no tags", func(t *testing.T) {
		runner := NewMockRunner()
		ctx := &Context{repoPath: "/repo", runner: runner}
		if got := ctx.LastTag(); got != "" {
			t.Errorf("LastTag() = %q, want empty", got)
		}
	})

	t.Run("listing fails", func(t *testing.T) {
		runner := NewMockRunner()
		runner.OnAnyCommand().Return("v9", errors.New("boom"))
		ctx := &Context{repoPath: "/repo", runner: runner}
		if got := ctx.LastTag(); got != "" {
			t.Errorf("LastTag() = %q, want empty", got)
		}
	})
}

func TestContext_LogSubjects_AgainstRealRepo(t *testing.T) {
	dir := testutil.SetupTestRepo(t)
	testutil.Tag(t, dir, "v0.1.0")
	testutil.CommitFile(t, dir, "a.go", "package a\n", "feat: add a")
	testutil.CommitFile(t, dir, "b.go", "package b\n", "fix: repair b")

	ctx, err := NewContext(dir)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}

	if tag := ctx.LastTag(); tag != "v0.1.0" {
		t.Fatalf("LastTag() = %q, want v0.1.0", tag)
	}
	got := ctx.LogSubjects("v0.1.0..HEAD").Lines()
	want := []string{"fix: repair b", "feat: add a"}
	if !argsMatch(got, want) {
		t.Errorf("LogSubjects() = %v, want %v", got, want)
	}
}

func TestContext_RevListCount(t *testing.T) {
	runner := NewMockRunner()
	runner.OnCommand("git", "rev-list", "--count", "origin/master..origin/staging").Return("3", nil)
	ctx := &Context{repoPath: "/repo", runner: runner}

	n, err := ctx.RevListCount("origin/master..origin/staging")
	if err != nil {
		t.Fatalf("RevListCount: %v", err)
	}
	if n != 3 {
		t.Errorf("count = %d, want 3", n)
	}

	runner.OnCommand("git", "rev-list", "--count", "x..y").Return("garbage", nil)
	if _, err := ctx.RevListCount("x..y"); err == nil {
		t.Error("expected error for unparsable count")
	}
}

func TestContext_Commit_Error(t *testing.T) {
	runner := NewMockRunner()
	runner.OnAnyCommand().Return("", &CommandError{Command: "git", Output: "hook rejected", ExitCode: 1})
	ctx := &Context{repoPath: "/repo", runner: runner}

	err := ctx.Commit("feat: x")
	var gitErr *Error
	if !errors.As(err, &gitErr) {
		t.Fatalf("error = %T, want *Error", err)
	}
	if gitErr.Op != "commit" {
		t.Errorf("Op = %q, want commit", gitErr.Op)
	}
}

func TestCompareBranches(t *testing.T) {
	tests := []struct {
		name     string
		baseSHA  string
		headSHA  string
		ahead    string
		mode     DivergenceMode
		diverged bool
	}{
		{"equal tips in different mode", "abc", "abc", "0", DivergenceDifferent, false},
		{"different tips in different mode", "abc", "def", "0", DivergenceDifferent, true},
		{"head ahead in ahead mode", "abc", "def", "2", DivergenceAhead, true},
		{"head behind in ahead mode", "abc", "def", "0", DivergenceAhead, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := NewMockRunner()
			runner.OnCommand("git", "rev-parse", "origin/master").Return(tt.baseSHA, nil)
			runner.OnCommand("git", "rev-parse", "origin/staging").Return(tt.headSHA, nil)
			runner.OnCommand("git", "rev-list", "--count", "origin/master..origin/staging").Return(tt.ahead, nil)
			ctx := &Context{repoPath: "/repo", runner: runner}

			cmp, err := ctx.CompareBranches("origin/master", "origin/staging", tt.mode)
			if err != nil {
				t.Fatalf("CompareBranches: %v", err)
			}
			if got := cmp.Diverged(tt.mode); got != tt.diverged {
				t.Errorf("Diverged(%s) = %v, want %v", tt.mode, got, tt.diverged)
			}
			if tt.mode == DivergenceDifferent && runner.WasCalled("git", "rev-list", "--count", "origin/master..origin/staging") {
				t.Error("different mode should not count commits")
			}
		})
	}
}

func TestCompareBranches_MissingRef(t *testing.T) {
	runner := NewMockRunner()
	runner.OnCommand("git", "rev-parse", "origin/master").Return("", errors.New("unknown revision"))
	ctx := &Context{repoPath: "/repo", runner: runner}

	_, err := ctx.CompareBranches("origin/master", "origin/staging", DivergenceDifferent)
	if !errors.Is(err, ErrRefNotFound) {
		t.Errorf("error = %v, want ErrRefNotFound", err)
	}
}

func TestHeadBehind(t *testing.T) {
	runner := NewMockRunner()
	runner.OnCommand("git", "merge-base", "origin/master", "origin/staging").Return("def", nil)
	ctx := &Context{repoPath: "/repo", runner: runner}

	cmp := &BranchComparison{Base: "origin/master", Head: "origin/staging", BaseSHA: "abc", HeadSHA: "def"}
	if !ctx.HeadBehind(cmp) {
		t.Error("HeadBehind should be true when merge-base equals head")
	}

	cmp.HeadSHA = "xyz"
	if ctx.HeadBehind(cmp) {
		t.Error("HeadBehind should be false when head has its own commits")
	}
}

func TestParseDivergenceMode(t *testing.T) {
	if m, err := ParseDivergenceMode("ahead"); err != nil || m != DivergenceAhead {
		t.Errorf("ParseDivergenceMode(ahead) = %v, %v", m, err)
	}
	if _, err := ParseDivergenceMode("sideways"); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestCommitMessage_String(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 5, 0, 0, time.UTC)
	msg := NewCommitMessage(CommitTypeFeat, "auto commit based on diff analysis", at)

	want := "feat: auto commit based on diff analysis (2026-03-14 09:05)"
	if got := msg.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if err := msg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestCommitMessage_Validate(t *testing.T) {
	at := time.Now()
	if err := NewCommitMessage("wip", "x", at).Validate(); err == nil {
		t.Error("expected error for type outside the closed set")
	}
	if err := NewCommitMessage(CommitTypeFix, "", at).Validate(); err == nil {
		t.Error("expected error for empty description")
	}
}

func TestParseCommitType(t *testing.T) {
	for _, typ := range AllCommitTypes() {
		got, err := ParseCommitType(string(typ))
		if err != nil || got != typ {
			t.Errorf("ParseCommitType(%q) = %q, %v", typ, got, err)
		}
	}
	if got, _ := ParseCommitType(" FEAT "); got != CommitTypeFeat {
		t.Errorf("ParseCommitType(FEAT) = %q", got)
	}
	if _, err := ParseCommitType("revert"); err == nil {
		t.Error("revert is not in the closed set")
	}
	if n := len(AllCommitTypes()); n != 11 {
		t.Errorf("len(AllCommitTypes()) = %d, want 11", n)
	}
}
