package git

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// Context runs git commands inside one repository.
type Context struct {
	repoPath string        // Absolute path to the repository root
	runner   CommandRunner // Command runner (defaults to ExecRunner)
}

// Option configures Context.
type Option func(*Context)

// NewContext creates a git context for the repository at repoPath.
// It returns ErrNotGitRepo when git does not recognize the directory.
func NewContext(repoPath string, opts ...Option) (*Context, error) {
	absPath, err := filepath.Abs(repoPath)
	if err != nil {
		return nil, fmt.Errorf("resolve path: %w", err)
	}

	g := &Context{
		repoPath: absPath,
		runner:   NewExecRunner(),
	}
	for _, opt := range opts {
		opt(g)
	}

	if _, err := g.runGit("rev-parse", "--git-dir"); err != nil {
		return nil, ErrNotGitRepo
	}
	return g, nil
}

// WithRunner sets the command runner, typically a DryRunRunner or a mock.
func WithRunner(runner CommandRunner) Option {
	return func(g *Context) {
		g.runner = runner
	}
}

// RepoPath returns the repository root.
func (g *Context) RepoPath() string {
	return g.repoPath
}

// Runner returns the command runner used by this context.
func (g *Context) Runner() CommandRunner {
	return g.runner
}

// CurrentBranch returns the current branch name.
func (g *Context) CurrentBranch() (string, error) {
	branch, err := g.runGit("rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", &Error{Op: "get current branch", Err: err}
	}
	return branch, nil
}

// HeadCommit returns the current HEAD commit SHA.
func (g *Context) HeadCommit() (string, error) {
	sha, err := g.runGit("rev-parse", "HEAD")
	if err != nil {
		return "", &Error{Op: "get HEAD commit", Err: err}
	}
	return sha, nil
}

// GetRemoteURL returns the URL of the specified remote.
func (g *Context) GetRemoteURL(remote string) (string, error) {
	url, err := g.runGit("remote", "get-url", remote)
	if err != nil {
		return "", &Error{Op: "get remote URL", Err: err}
	}
	return url, nil
}

// StatusPorcelain runs `git status --porcelain`.
func (g *Context) StatusPorcelain() Result {
	return g.exec("status", "--porcelain")
}

// ChangedPaths returns the paths reported by `git status --porcelain`.
// Renames report their destination path. A failed status yields no paths.
func (g *Context) ChangedPaths() []string {
	var paths []string
	// Output is trimmed, so the status column may have lost its leading space.
	for _, line := range g.StatusPorcelain().Lines() {
		parts := strings.SplitN(line, " ", 2)
		if len(parts) != 2 {
			continue
		}
		path := strings.TrimSpace(parts[1])
		if i := strings.Index(path, " -> "); i >= 0 {
			path = path[i+len(" -> "):]
		}
		paths = append(paths, strings.Trim(path, `"`))
	}
	return paths
}

// DiffStaged runs `git diff --cached`.
func (g *Context) DiffStaged() Result {
	return g.exec("diff", "--cached")
}

// DiffStagedNames runs `git diff --cached --name-only`.
func (g *Context) DiffStagedNames() Result {
	return g.exec("diff", "--cached", "--name-only")
}

// LastTag returns the most recently created tag, or "" when the repository
// has none. A failed tag listing is treated as having no tags.
func (g *Context) LastTag() string {
	tags := g.exec("tag", "--sort=-creatordate").Lines()
	if len(tags) == 0 {
		return ""
	}
	return tags[0]
}

// LogSubjects returns commit subjects for rangeSpec, newest first, with
// merge commits excluded.
func (g *Context) LogSubjects(rangeSpec string) Result {
	return g.exec("log", rangeSpec, "--pretty=format:%s", "--no-merges")
}

// LogSummary returns "- <subject>" lines for commits in base..head.
func (g *Context) LogSummary(base, head string) Result {
	return g.exec("log", base+".."+head, "--pretty=format:- %s")
}

// Fetch fetches updates from the remote.
func (g *Context) Fetch(remote string) error {
	if _, err := g.runGit("fetch", remote); err != nil {
		return &Error{Op: "fetch", Err: err}
	}
	return nil
}

// RevParse resolves a ref to a commit SHA.
func (g *Context) RevParse(ref string) (string, error) {
	sha, err := g.runGit("rev-parse", ref)
	if err != nil {
		return "", &Error{Op: "rev-parse " + ref, Err: ErrRefNotFound}
	}
	return sha, nil
}

// MergeBase returns the best common ancestor of two refs.
func (g *Context) MergeBase(a, b string) (string, error) {
	sha, err := g.runGit("merge-base", a, b)
	if err != nil {
		return "", &Error{Op: "merge-base", Err: err}
	}
	return sha, nil
}

// RevListCount counts the commits in rangeSpec.
func (g *Context) RevListCount(rangeSpec string) (int, error) {
	out, err := g.runGit("rev-list", "--count", rangeSpec)
	if err != nil {
		return 0, &Error{Op: "rev-list", Err: err}
	}
	n, err := strconv.Atoi(strings.TrimSpace(out))
	if err != nil {
		return 0, &Error{Op: "rev-list", Output: out, Err: err}
	}
	return n, nil
}

// Stage adds files to the index.
func (g *Context) Stage(files ...string) error {
	if len(files) == 0 {
		return nil
	}
	args := append([]string{"add"}, files...)
	if _, err := g.runGit(args...); err != nil {
		return &Error{Op: "stage files", Err: err}
	}
	return nil
}

// StageAll stages the working tree: `git add -A` when all is true,
// `git add .` otherwise.
func (g *Context) StageAll(all bool) error {
	target := "."
	if all {
		target = "-A"
	}
	if _, err := g.runGit("add", target); err != nil {
		return &Error{Op: "stage all", Err: err}
	}
	return nil
}

// Commit creates a commit with the given message.
// Returns ErrNothingToCommit if there are no staged changes.
func (g *Context) Commit(message string) error {
	output, err := g.runGit("commit", "-m", message)
	if err != nil {
		if strings.Contains(output, "nothing to commit") ||
			strings.Contains(err.Error(), "nothing to commit") {
			return ErrNothingToCommit
		}
		return &Error{Op: "commit", Output: output, Err: err}
	}
	return nil
}

// Push pushes to the remote. With an empty remote it runs a bare `git push`
// to the configured upstream.
func (g *Context) Push(remote, branch string) error {
	args := []string{"push"}
	if remote != "" {
		args = append(args, remote)
		if branch != "" {
			args = append(args, branch)
		}
	}
	if _, err := g.runGit(args...); err != nil {
		return &Error{Op: "push", Err: err}
	}
	return nil
}

func (g *Context) exec(args ...string) Result {
	return Exec(g.runner, g.repoPath, "git", args...)
}

// runGit executes a git command and returns stdout.
func (g *Context) runGit(args ...string) (string, error) {
	return g.runner.Run(g.repoPath, "git", args...)
}
