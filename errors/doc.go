// Package errors provides CLI error patterns with user-friendly messaging.
//
// Core types:
//   - CLIError: Wraps errors with message, suggestion, and details
//   - ErrorMessenger: Interface for customizing error messages
//
// Sentinel errors for common scenarios:
//   - ErrNoRoots: No repository root configured
//   - ErrNoRepositories: Roots hold no git repository
//   - ErrInvalidConfig: Settings failed validation
//   - ErrGHMissing: GitHub CLI not installed
//   - ErrUnsupportedHost: Remote is not on GitHub
//
// Example usage:
//
//	if err := provider.CreatePR(ctx, opts); err != nil {
//	    return errors.WrapProviderError(err, remoteURL)
//	}
//
//	if errors.IsProviderSetupError(err) {
//	    // Skip the remaining merge steps for this repository
//	}
package errors
