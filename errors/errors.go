package errors

import "errors"

// Operator-facing errors with actionable guidance.
var (
	// ErrNoRoots indicates no repository root directory is configured.
	ErrNoRoots = errors.New("no repository roots configured")

	// ErrNoRepositories indicates the roots contain no git repository.
	ErrNoRepositories = errors.New("no repositories found")

	// ErrInvalidConfig indicates the configuration failed validation.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrGHMissing indicates the GitHub CLI is not installed.
	ErrGHMissing = errors.New("gh not installed")

	// ErrUnsupportedHost indicates a remote that gh cannot serve.
	ErrUnsupportedHost = errors.New("unsupported remote host")
)
