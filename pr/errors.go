package pr

import "errors"

// PR provider errors
var (
	// ErrGHNotFound indicates the gh executable is not installed.
	ErrGHNotFound = errors.New("gh CLI not found")

	// ErrUnknownProvider indicates the git remote uses an unknown host.
	ErrUnknownProvider = errors.New("unknown git provider")

	// ErrUnsupportedHost indicates the remote is not hosted on GitHub.
	ErrUnsupportedHost = errors.New("remote is not hosted on GitHub")

	// ErrNoPRURL indicates gh did not print a pull request URL.
	ErrNoPRURL = errors.New("no pull request URL in gh output")

	// ErrCreateFailed indicates gh failed to create the pull request.
	ErrCreateFailed = errors.New("pull request creation failed")

	// ErrMergeFailed indicates gh refused the merge request.
	ErrMergeFailed = errors.New("pull request merge failed")

	// ErrMergeTimeout indicates the merge was not confirmed within the poll budget.
	ErrMergeTimeout = errors.New("merge not confirmed before poll budget ran out")
)
