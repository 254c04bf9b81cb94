package errors

import "errors"

// IsConfigError checks if an error comes from configuration validation.
func IsConfigError(err error) bool {
	return err != nil && (errors.Is(err, ErrInvalidConfig) || errors.Is(err, ErrNoRoots))
}

// IsProviderSetupError checks if an error means pull requests cannot be
// handled at all for a repository, as opposed to a single failed call.
func IsProviderSetupError(err error) bool {
	return err != nil && (errors.Is(err, ErrGHMissing) || errors.Is(err, ErrUnsupportedHost))
}
