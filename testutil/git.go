// Package testutil provides temporary git repositories for tests.
package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// SetupTestRepo creates a temporary git repository on branch master with
// one initial commit. It is removed when the test ends.
func SetupTestRepo(t *testing.T) string {
	t.Helper()
	return initRepo(t, t.TempDir())
}

// SetupTestRepoWithFiles creates a test repo with specified files committed.
func SetupTestRepoWithFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := SetupTestRepo(t)
	for path, content := range files {
		WriteFile(t, dir, path, content)
	}
	Git(t, dir, "add", ".")
	Git(t, dir, "commit", "-m", "Add test files")

	return dir
}

// SetupRoot creates a root directory holding one repository per name, plus
// a plain directory named "not-a-repo". It returns the root path.
func SetupRoot(t *testing.T, names ...string) string {
	t.Helper()

	root := t.TempDir()
	for _, name := range names {
		dir := filepath.Join(root, name)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
		initRepo(t, dir)
	}
	if err := os.MkdirAll(filepath.Join(root, "not-a-repo"), 0o755); err != nil {
		t.Fatalf("mkdir not-a-repo: %v", err)
	}
	return root
}

// SetupRemote creates a bare repository, registers it as "origin" in
// repoDir and pushes master plus a staging branch at the same commit.
// It returns the bare repository path.
func SetupRemote(t *testing.T, repoDir string) string {
	t.Helper()

	bare := filepath.Join(t.TempDir(), "origin.git")
	Git(t, filepath.Dir(bare), "init", "--bare", bare)
	Git(t, repoDir, "remote", "add", "origin", bare)
	Git(t, repoDir, "branch", "staging")
	Git(t, repoDir, "push", "origin", "master", "staging")

	return bare
}

// CreateBranch creates a new branch in the test repo and switches to it.
func CreateBranch(t *testing.T, repoDir, branch string) {
	t.Helper()
	Git(t, repoDir, "checkout", "-b", branch)
}

// SwitchBranch switches to an existing branch.
func SwitchBranch(t *testing.T, repoDir, branch string) {
	t.Helper()
	Git(t, repoDir, "checkout", branch)
}

// WriteFile creates or overwrites a file inside repoDir without staging it.
func WriteFile(t *testing.T, repoDir, path, content string) {
	t.Helper()

	fullPath := filepath.Join(repoDir, path)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(fullPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
}

// StageFile writes a file and stages it.
func StageFile(t *testing.T, repoDir, path, content string) {
	t.Helper()

	WriteFile(t, repoDir, path, content)
	Git(t, repoDir, "add", path)
}

// CommitFile creates or updates a file and commits it.
func CommitFile(t *testing.T, repoDir, path, content, message string) {
	t.Helper()

	StageFile(t, repoDir, path, content)
	Git(t, repoDir, "commit", "-m", message)
}

// Tag creates a lightweight tag at HEAD.
func Tag(t *testing.T, repoDir, name string) {
	t.Helper()
	Git(t, repoDir, "tag", name)
}

// GetHeadSHA returns the current HEAD SHA.
func GetHeadSHA(t *testing.T, repoDir string) string {
	t.Helper()
	return Git(t, repoDir, "rev-parse", "HEAD")
}

// Git runs a git command with a fixed identity and fails the test on error.
// It returns trimmed stdout.
func Git(t *testing.T, dir string, args ...string) string {
	t.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME=Test User",
		"GIT_AUTHOR_EMAIL=test@test.com",
		"GIT_COMMITTER_NAME=Test User",
		"GIT_COMMITTER_EMAIL=test@test.com",
		"GIT_CONFIG_NOSYSTEM=1",
	)

	out, err := cmd.Output()
	if err != nil {
		stderr := ""
		if exitErr, ok := err.(*exec.ExitError); ok {
			stderr = string(exitErr.Stderr)
		}
		t.Fatalf("git %s failed: %v\n%s", strings.Join(args, " "), err, stderr)
	}
	return strings.TrimSpace(string(out))
}

func initRepo(t *testing.T, dir string) string {
	t.Helper()

	Git(t, dir, "init")
	Git(t, dir, "symbolic-ref", "HEAD", "refs/heads/master")
	Git(t, dir, "config", "user.email", "test@test.com")
	Git(t, dir, "config", "user.name", "Test User")
	Git(t, dir, "config", "commit.gpgsign", "false")

	CommitFile(t, dir, "README.md", "# Test Repository\n", "Initial commit")
	return dir
}
