package pr

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/randalmurphal/repotidy/git"
)

// GHProvider implements Provider by shelling out to the GitHub CLI.
type GHProvider struct {
	runner git.CommandRunner
	dir    string
}

// NewGHProvider creates a provider running gh inside repoDir.
func NewGHProvider(runner git.CommandRunner, repoDir string) *GHProvider {
	return &GHProvider{runner: runner, dir: repoDir}
}

var prURLPattern = regexp.MustCompile(`https?://\S+/pull/(\d+)`)

// FindOpen implements Provider.
func (p *GHProvider) FindOpen(ctx context.Context, base, head string) (*PullRequest, error) {
	res, err := p.gh(ctx, "pr", "list",
		"--base", base, "--head", head, "--state", "open",
		"--json", "number", "--jq", ".[0].number")
	if err != nil {
		return nil, fmt.Errorf("list pull requests: %w", err)
	}

	out := strings.TrimSpace(res.Output)
	if out == "" || out == "null" {
		return nil, nil
	}
	n, err := strconv.Atoi(out)
	if err != nil {
		return nil, fmt.Errorf("parse pull request number %q: %w", out, err)
	}
	return &PullRequest{Number: n, Base: base, Head: head, State: StateOpen}, nil
}

// CreatePR implements Provider. gh prints the new pull request URL on success.
func (p *GHProvider) CreatePR(ctx context.Context, opts Options) (*PullRequest, error) {
	res, err := p.gh(ctx, "pr", "create",
		"--base", opts.Base, "--head", opts.Head,
		"--title", opts.Title, "--body", opts.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreateFailed, err)
	}

	m := prURLPattern.FindStringSubmatch(res.Output)
	if m == nil {
		return nil, ErrNoPRURL
	}
	n, _ := strconv.Atoi(m[1])
	return &PullRequest{
		Number: n,
		URL:    m[0],
		Title:  opts.Title,
		Base:   opts.Base,
		Head:   opts.Head,
		State:  StateOpen,
	}, nil
}

// MergePR implements Provider.
func (p *GHProvider) MergePR(ctx context.Context, ref string, opts MergeOptions) error {
	method := opts.Method
	if method == "" {
		method = MergeMethodMerge
	}
	args := []string{"pr", "merge", ref, "--" + string(method)}
	if opts.Auto {
		args = append(args, "--auto")
	}
	if opts.DeleteBranch {
		args = append(args, "--delete-branch")
	}
	if _, err := p.gh(ctx, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrMergeFailed, err)
	}
	return nil
}

// MergeStatus implements Provider.
func (p *GHProvider) MergeStatus(ctx context.Context, ref string) (MergeStatus, error) {
	res, err := p.gh(ctx, "pr", "view", ref, "--json", "state,mergedAt,isInMergeQueue")
	if err != nil {
		return MergeStatus{}, fmt.Errorf("view pull request: %w", err)
	}
	return parseMergeStatus(res.Output)
}

func parseMergeStatus(out string) (MergeStatus, error) {
	if strings.TrimSpace(out) == "" {
		return MergeStatus{}, nil
	}
	var parsed struct {
		State          string `json:"state"`
		MergedAt       string `json:"mergedAt"`
		IsInMergeQueue bool   `json:"isInMergeQueue"`
	}
	if err := json.Unmarshal([]byte(out), &parsed); err != nil {
		return MergeStatus{}, fmt.Errorf("parse gh pr view response: %w", err)
	}
	state := State(strings.ToLower(parsed.State))
	return MergeStatus{
		State:        state,
		Merged:       state == StateMerged || parsed.MergedAt != "",
		InMergeQueue: parsed.IsInMergeQueue,
	}, nil
}

// gh runs one gh command. A missing executable maps to ErrGHNotFound.
func (p *GHProvider) gh(ctx context.Context, args ...string) (git.Result, error) {
	if err := ctx.Err(); err != nil {
		return git.Result{}, err
	}
	res := git.Exec(p.runner, p.dir, "gh", args...)
	switch res.Status {
	case git.StatusOK:
		return res, nil
	case git.StatusNotFound:
		return res, ErrGHNotFound
	default:
		return res, res.Err
	}
}
