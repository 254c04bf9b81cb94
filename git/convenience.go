package git

import (
	"fmt"
	"time"
)

// CommitResult contains the result of a commit operation.
type CommitResult struct {
	SHA     string    // HEAD after the commit; the prior HEAD when the commit was suppressed
	Branch  string    // Branch the commit landed on
	Message string    // Commit message
	Date    time.Time // Commit timestamp
}

// PushResult contains the result of a push operation.
type PushResult struct {
	Remote string // Remote name, empty for a bare push
	Branch string // Branch that was pushed, empty for a bare push
}

// CommitAll stages the working tree and commits with the given message.
// Returns ErrNothingToCommit if there are no changes to commit.
func (g *Context) CommitAll(message string, stageAll bool) (*CommitResult, error) {
	if err := g.StageAll(stageAll); err != nil {
		return nil, fmt.Errorf("stage all: %w", err)
	}

	if err := g.Commit(message); err != nil {
		return nil, err
	}

	sha, err := g.HeadCommit()
	if err != nil {
		return nil, fmt.Errorf("get head: %w", err)
	}

	branch, err := g.CurrentBranch()
	if err != nil {
		return nil, fmt.Errorf("get branch: %w", err)
	}

	return &CommitResult{
		SHA:     sha,
		Branch:  branch,
		Message: message,
		Date:    time.Now(),
	}, nil
}

// CommitFiles stages the given paths and commits them.
func (g *Context) CommitFiles(message string, files ...string) error {
	if err := g.Stage(files...); err != nil {
		return err
	}
	return g.Commit(message)
}

// PushTo pushes branch to remote.
func (g *Context) PushTo(remote, branch string) (*PushResult, error) {
	if err := g.Push(remote, branch); err != nil {
		return nil, err
	}
	return &PushResult{Remote: remote, Branch: branch}, nil
}
