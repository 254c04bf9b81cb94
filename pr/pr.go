package pr

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// State represents the state of a pull request.
type State string

const (
	StateOpen   State = "open"
	StateClosed State = "closed"
	StateMerged State = "merged"
)

// Provider opens, merges and inspects pull requests.
type Provider interface {
	// FindOpen returns the open pull request from head into base,
	// or nil when there is none.
	FindOpen(ctx context.Context, base, head string) (*PullRequest, error)

	// CreatePR creates a new pull request.
	CreatePR(ctx context.Context, opts Options) (*PullRequest, error)

	// MergePR requests a merge of the pull request identified by ref.
	MergePR(ctx context.Context, ref string, opts MergeOptions) error

	// MergeStatus reports whether the pull request merged or is queued.
	MergeStatus(ctx context.Context, ref string) (MergeStatus, error)
}

// Options configures pull request creation.
type Options struct {
	Title string // PR title (required)
	Body  string // PR description (markdown)
	Base  string // Target branch
	Head  string // Source branch
}

// MergeOptions configures pull request merging.
type MergeOptions struct {
	Method       MergeMethod // Merge method (merge, squash, rebase)
	Auto         bool        // Merge once requirements are met
	DeleteBranch bool        // Delete source branch after merge
}

// MergeMethod specifies how to merge a pull request.
type MergeMethod string

const (
	MergeMethodMerge  MergeMethod = "merge"
	MergeMethodSquash MergeMethod = "squash"
	MergeMethodRebase MergeMethod = "rebase"
)

// MergeStatus is a snapshot of a pull request's merge progress.
type MergeStatus struct {
	State        State // Lower-cased gh state, empty when unknown
	Merged       bool
	InMergeQueue bool
}

// Done reports a merged-or-queued signal.
func (s MergeStatus) Done() bool {
	return s.Merged || s.InMergeQueue
}

// PullRequest identifies a pull request.
type PullRequest struct {
	Number int    // PR number, 0 if unknown
	URL    string // Web URL
	Title  string
	Base   string
	Head   string
	State  State
}

// Ref returns the identifier gh accepts for this pull request.
func (p *PullRequest) Ref() string {
	if p.URL != "" {
		return p.URL
	}
	return strconv.Itoa(p.Number)
}

// Builder helps construct PR options using a fluent interface.
type Builder struct {
	opts Options
}

// NewBuilder creates a new PR builder with the given title.
func NewBuilder(title string) *Builder {
	return &Builder{
		opts: Options{
			Title: title,
			Base:  "master",
		},
	}
}

// WithPromotionSummary writes the body of a branch promotion PR listing the
// commits being promoted. summary holds "- <subject>" lines.
func (b *Builder) WithPromotionSummary(summary string, at time.Time) *Builder {
	var body strings.Builder

	fmt.Fprintf(&body, "This pull request merges the latest validated commits from `%s` into `%s`.\n\n", b.opts.Head, b.opts.Base)
	body.WriteString("**Summary of changes:**\n\n")
	body.WriteString(strings.TrimSpace(summary))
	fmt.Fprintf(&body, "\n\n_Auto-generated on %s_\n", at.Format("2006-01-02 15:04"))

	b.opts.Body = body.String()
	return b
}

// WithBase sets the target branch.
func (b *Builder) WithBase(base string) *Builder {
	b.opts.Base = base
	return b
}

// WithHead sets the source branch.
func (b *Builder) WithHead(head string) *Builder {
	b.opts.Head = head
	return b
}

// Build returns the constructed PR options.
func (b *Builder) Build() Options {
	return b.opts
}
