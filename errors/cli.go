package errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/randalmurphal/repotidy/pr"
)

// CLIError wraps an error with user-friendly context and suggestions.
type CLIError struct {
	// Err is the underlying error
	Err error

	// Message is a user-friendly description of what went wrong
	Message string

	// Suggestion is an actionable hint for the user
	Suggestion string

	// Details provides additional context (optional)
	Details string
}

func (e *CLIError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Message)

	if e.Details != "" {
		sb.WriteString("\n")
		sb.WriteString(e.Details)
	}

	if e.Suggestion != "" {
		sb.WriteString("\n\n")
		sb.WriteString(e.Suggestion)
	}

	return sb.String()
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// ErrorMessenger provides customizable error messages.
type ErrorMessenger interface {
	NoRootsMessage() (message, suggestion string)
	NoRepositoriesMessage(roots []string) (message, suggestion string)
	InvalidConfigMessage(path string) (message, suggestion string)
	GHMissingMessage() (message, suggestion string)
	UnsupportedHostMessage(remoteURL string) (message, suggestion string)
}

// DefaultMessenger provides default error messages.
type DefaultMessenger struct{}

func (m DefaultMessenger) NoRootsMessage() (string, string) {
	return "No repository roots are configured.",
		"Pass --root <dir> or run 'repotidy config set roots ~/code/a,~/code/b'."
}

func (m DefaultMessenger) NoRepositoriesMessage(roots []string) (string, string) {
	return fmt.Sprintf("No git repositories found under %s", strings.Join(roots, ", ")),
		"Check that each root directly contains repositories (directories with a .git entry)."
}

func (m DefaultMessenger) InvalidConfigMessage(path string) (string, string) {
	msg := "The configuration is invalid."
	if path != "" {
		msg = fmt.Sprintf("The configuration is invalid (global file: %s).", path)
	}
	return msg, "Fix the listed keys with 'repotidy config set <key> <value>' or the matching flag."
}

func (m DefaultMessenger) GHMissingMessage() (string, string) {
	return "The GitHub CLI (gh) is not installed or not on PATH.",
		"Install it from https://cli.github.com and run 'gh auth login'."
}

func (m DefaultMessenger) UnsupportedHostMessage(remoteURL string) (string, string) {
	return fmt.Sprintf("Remote %s is not hosted on GitHub.", remoteURL),
		"Pull requests are opened through gh, which only supports GitHub remotes."
}

// WrapConfig configures error wrapping behavior.
type WrapConfig struct {
	Messenger ErrorMessenger
}

// Option configures WrapConfig.
type Option func(*WrapConfig)

// WithMessenger sets a custom error messenger.
func WithMessenger(m ErrorMessenger) Option {
	return func(c *WrapConfig) {
		c.Messenger = m
	}
}

func getMessenger(opts []Option) ErrorMessenger {
	cfg := &WrapConfig{
		Messenger: DefaultMessenger{},
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg.Messenger
}

// NewNoRootsError creates an error for a run without roots.
func NewNoRootsError(opts ...Option) error {
	msg, suggestion := getMessenger(opts).NoRootsMessage()
	return &CLIError{
		Err:        ErrNoRoots,
		Message:    msg,
		Suggestion: suggestion,
	}
}

// NewNoRepositoriesError creates an error for roots holding no repository.
func NewNoRepositoriesError(roots []string, opts ...Option) error {
	msg, suggestion := getMessenger(opts).NoRepositoriesMessage(roots)
	return &CLIError{
		Err:        ErrNoRepositories,
		Message:    msg,
		Suggestion: suggestion,
	}
}

// WrapConfigError wraps a settings validation error.
func WrapConfigError(err error, path string, opts ...Option) error {
	if err == nil {
		return nil
	}
	msg, suggestion := getMessenger(opts).InvalidConfigMessage(path)
	return &CLIError{
		Err:        fmt.Errorf("%w: %w", ErrInvalidConfig, err),
		Message:    msg,
		Details:    err.Error(),
		Suggestion: suggestion,
	}
}

// WrapProviderError adds guidance to errors from the pull request provider.
// Other errors are returned unchanged.
func WrapProviderError(err error, remoteURL string, opts ...Option) error {
	if err == nil {
		return nil
	}
	messenger := getMessenger(opts)

	switch {
	case errors.Is(err, pr.ErrGHNotFound):
		msg, suggestion := messenger.GHMissingMessage()
		return &CLIError{
			Err:        fmt.Errorf("%w: %w", ErrGHMissing, err),
			Message:    msg,
			Suggestion: suggestion,
		}
	case errors.Is(err, pr.ErrUnsupportedHost):
		msg, suggestion := messenger.UnsupportedHostMessage(remoteURL)
		return &CLIError{
			Err:        fmt.Errorf("%w: %w", ErrUnsupportedHost, err),
			Message:    msg,
			Suggestion: suggestion,
		}
	}
	return err
}
