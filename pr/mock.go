package pr

import "context"

// MockProvider is a mock implementation of Provider for testing.
type MockProvider struct {
	FindOpenFunc    func(ctx context.Context, base, head string) (*PullRequest, error)
	CreatePRFunc    func(ctx context.Context, opts Options) (*PullRequest, error)
	MergePRFunc     func(ctx context.Context, ref string, opts MergeOptions) error
	MergeStatusFunc func(ctx context.Context, ref string) (MergeStatus, error)

	Created []Options // Options passed to CreatePR
	Merged  []string  // Refs passed to MergePR
	Polls   int       // Number of MergeStatus calls
}

// FindOpen implements Provider.
func (m *MockProvider) FindOpen(ctx context.Context, base, head string) (*PullRequest, error) {
	if m.FindOpenFunc != nil {
		return m.FindOpenFunc(ctx, base, head)
	}
	return nil, nil
}

// CreatePR implements Provider.
func (m *MockProvider) CreatePR(ctx context.Context, opts Options) (*PullRequest, error) {
	m.Created = append(m.Created, opts)
	if m.CreatePRFunc != nil {
		return m.CreatePRFunc(ctx, opts)
	}
	return &PullRequest{Number: 1, URL: "https://github.com/o/r/pull/1", Base: opts.Base, Head: opts.Head}, nil
}

// MergePR implements Provider.
func (m *MockProvider) MergePR(ctx context.Context, ref string, opts MergeOptions) error {
	m.Merged = append(m.Merged, ref)
	if m.MergePRFunc != nil {
		return m.MergePRFunc(ctx, ref, opts)
	}
	return nil
}

// MergeStatus implements Provider.
func (m *MockProvider) MergeStatus(ctx context.Context, ref string) (MergeStatus, error) {
	m.Polls++
	if m.MergeStatusFunc != nil {
		return m.MergeStatusFunc(ctx, ref)
	}
	return MergeStatus{Merged: true}, nil
}
