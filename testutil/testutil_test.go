package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestSetupTestRepo(t *testing.T) {
	dir := SetupTestRepo(t)

	if _, err := os.Stat(filepath.Join(dir, ".git")); err != nil {
		t.Fatalf(".git missing: %v", err)
	}
	if branch := Git(t, dir, "branch", "--show-current"); branch != "master" {
		t.Errorf("branch = %q, want master", branch)
	}
	if subject := Git(t, dir, "log", "-1", "--pretty=%s"); subject != "Initial commit" {
		t.Errorf("subject = %q", subject)
	}
}

func TestSetupTestRepoWithFiles(t *testing.T) {
	dir := SetupTestRepoWithFiles(t, map[string]string{
		"src/main.go": "package main\n",
	})

	if out := Git(t, dir, "status", "--porcelain"); out != "" {
		t.Errorf("working tree should be clean, got %q", out)
	}
	if _, err := os.Stat(filepath.Join(dir, "src", "main.go")); err != nil {
		t.Error(err)
	}
}

func TestSetupRoot(t *testing.T) {
	root := SetupRoot(t, "b", "a")

	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(entries))
	}
	for _, name := range []string{"a", "b"} {
		if _, err := os.Stat(filepath.Join(root, name, ".git")); err != nil {
			t.Errorf("%s is not a repo: %v", name, err)
		}
	}
}

func TestSetupRemote(t *testing.T) {
	dir := SetupTestRepo(t)
	SetupRemote(t, dir)

	master := Git(t, dir, "rev-parse", "origin/master")
	staging := Git(t, dir, "rev-parse", "origin/staging")
	if master != staging || master != GetHeadSHA(t, dir) {
		t.Errorf("origin/master=%s origin/staging=%s", master, staging)
	}
}

func TestBranches(t *testing.T) {
	dir := SetupTestRepo(t)

	CreateBranch(t, dir, "feature")
	if branch := Git(t, dir, "branch", "--show-current"); branch != "feature" {
		t.Errorf("branch = %q, want feature", branch)
	}

	SwitchBranch(t, dir, "master")
	if branch := Git(t, dir, "branch", "--show-current"); branch != "master" {
		t.Errorf("branch = %q, want master", branch)
	}
}

func TestStageFile(t *testing.T) {
	dir := SetupTestRepo(t)
	StageFile(t, dir, "app.py", "print('x')\n")

	if out := Git(t, dir, "diff", "--cached", "--name-only"); out != "app.py" {
		t.Errorf("staged = %q, want app.py", out)
	}
}

func TestCommitFileAndTag(t *testing.T) {
	dir := SetupTestRepo(t)
	before := GetHeadSHA(t, dir)

	CommitFile(t, dir, "a.txt", "a", "feat: add a")
	Tag(t, dir, "v1.0.0")

	if GetHeadSHA(t, dir) == before {
		t.Error("HEAD did not move")
	}
	if tags := Git(t, dir, "tag"); !strings.Contains(tags, "v1.0.0") {
		t.Errorf("tags = %q", tags)
	}
}

func TestTestContext(t *testing.T) {
	ctx := TestContext(t)
	if ctx.Err() != nil {
		t.Error("context should not be canceled yet")
	}

	ctx = TestContextWithTimeout(t, time.Millisecond)
	<-ctx.Done()
	if ctx.Err() == nil {
		t.Error("context should time out")
	}
}
