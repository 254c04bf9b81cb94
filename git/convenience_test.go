package git

import (
	"errors"
	"testing"
)

func TestCommitAll(t *testing.T) {
	runner := NewSequentialMockRunner()
	runner.AddOutput("", nil)             // git add .
	runner.AddOutput("", nil)             // git commit -m "test message"
	runner.AddOutput("abc123def456", nil) // git rev-parse HEAD
	runner.AddOutput("staging", nil)      // git rev-parse --abbrev-ref HEAD

	ctx := &Context{
		repoPath: t.TempDir(),
		runner:   runner,
	}

	result, err := ctx.CommitAll("test message", false)
	if err != nil {
		t.Fatalf("CommitAll failed: %v", err)
	}

	if result.SHA != "abc123def456" {
		t.Errorf("SHA = %q, want %q", result.SHA, "abc123def456")
	}
	if result.Branch != "staging" {
		t.Errorf("Branch = %q, want %q", result.Branch, "staging")
	}
	if result.Message != "test message" {
		t.Errorf("Message = %q, want %q", result.Message, "test message")
	}
	if got := runner.Calls[0].Args; !argsMatch(got, []string{"add", "."}) {
		t.Errorf("first call args = %v, want [add .]", got)
	}
}

func TestCommitAll_StageAll(t *testing.T) {
	runner := NewMockRunner()
	runner.OnAnyCommand().Return("", nil)

	ctx := &Context{repoPath: t.TempDir(), runner: runner}

	if _, err := ctx.CommitAll("msg", true); err != nil {
		t.Fatalf("CommitAll failed: %v", err)
	}
	if !runner.WasCalled("git", "add", "-A") {
		t.Error("expected git add -A")
	}
}

func TestCommitAll_NothingToCommit(t *testing.T) {
	runner := NewSequentialMockRunner()
	runner.AddOutput("", nil)                                 // git add .
	runner.AddOutput("nothing to commit", errors.New("exit")) // git commit

	ctx := &Context{
		repoPath: t.TempDir(),
		runner:   runner,
	}

	_, err := ctx.CommitAll("test message", false)
	if !errors.Is(err, ErrNothingToCommit) {
		t.Errorf("error = %v, want ErrNothingToCommit", err)
	}
}

func TestPushTo(t *testing.T) {
	runner := NewMockRunner()
	runner.OnCommand("git", "push", "origin", "staging").Return("", nil)

	ctx := &Context{repoPath: "/repo", runner: runner}

	result, err := ctx.PushTo("origin", "staging")
	if err != nil {
		t.Fatalf("PushTo failed: %v", err)
	}
	if result.Remote != "origin" || result.Branch != "staging" {
		t.Errorf("result = %+v", result)
	}
	if !runner.WasCalled("git", "push", "origin", "staging") {
		t.Error("expected git push origin staging")
	}
}

func TestPush_Bare(t *testing.T) {
	runner := NewMockRunner()
	runner.OnAnyCommand().Return("", nil)

	ctx := &Context{repoPath: "/repo", runner: runner}
	if err := ctx.Push("", ""); err != nil {
		t.Fatalf("Push failed: %v", err)
	}
	if !runner.WasCalled("git", "push") {
		t.Error("expected bare git push")
	}
}

func TestCommitFiles(t *testing.T) {
	runner := NewMockRunner()
	runner.OnAnyCommand().Return("", nil)

	ctx := &Context{repoPath: "/repo", runner: runner}
	if err := ctx.CommitFiles("docs: update changelog", "CHANGELOG.md"); err != nil {
		t.Fatalf("CommitFiles failed: %v", err)
	}
	if !runner.WasCalled("git", "add", "CHANGELOG.md") {
		t.Error("expected git add CHANGELOG.md")
	}
	if !runner.WasCalled("git", "commit", "-m", "docs: update changelog") {
		t.Error("expected git commit")
	}
}
