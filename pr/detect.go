package pr

import (
	"fmt"
	"net/url"
	"strings"
)

// DetectProvider detects the hosting platform from a remote URL. Any host
// naming github counts, which covers GitHub Enterprise domains.
func DetectProvider(remoteURL string) (string, error) {
	remoteURL = strings.ToLower(remoteURL)

	switch {
	case strings.Contains(remoteURL, "github"):
		return "github", nil
	case strings.Contains(remoteURL, "gitlab"):
		return "gitlab", nil
	case strings.Contains(remoteURL, "bitbucket"):
		return "bitbucket", nil
	}
	return "", ErrUnknownProvider
}

// CheckHost rejects remotes that are recognisably hosted somewhere gh cannot
// serve. Unrecognised hosts such as SSH aliases pass; gh reports its own
// failure for those.
func CheckHost(remoteURL string) error {
	platform, err := DetectProvider(remoteURL)
	if err != nil || platform == "github" {
		return nil
	}
	return fmt.Errorf("%w: %s is on %s", ErrUnsupportedHost, remoteURL, platform)
}

// ParseRepoFromURL extracts owner and repo from a remote URL in scp form
// (git@host:owner/repo.git) or URL form (https://host/owner/repo,
// ssh://git@host/owner/repo). Local paths have no owner and fail.
func ParseRepoFromURL(remoteURL string) (owner, repo string, err error) {
	remoteURL = strings.TrimSpace(remoteURL)

	var path string
	switch {
	case strings.Contains(remoteURL, "://"):
		u, perr := url.Parse(remoteURL)
		if perr != nil {
			return "", "", fmt.Errorf("parse remote %q: %w", remoteURL, perr)
		}
		if u.Scheme == "file" || u.Host == "" {
			return "", "", fmt.Errorf("remote %q has no host", remoteURL)
		}
		path = u.Path
	case isSCPLike(remoteURL):
		path = remoteURL[strings.Index(remoteURL, ":")+1:]
	default:
		return "", "", fmt.Errorf("remote %q has no host", remoteURL)
	}

	parts := strings.Split(strings.Trim(strings.TrimSuffix(path, ".git"), "/"), "/")
	if len(parts) < 2 || parts[len(parts)-2] == "" || parts[len(parts)-1] == "" {
		return "", "", fmt.Errorf("remote %q: invalid repository path", remoteURL)
	}
	return parts[len(parts)-2], parts[len(parts)-1], nil
}

// isSCPLike matches [user@]host:path where the host part has no slash.
func isSCPLike(remote string) bool {
	colon := strings.Index(remote, ":")
	if colon <= 0 {
		return false
	}
	return !strings.Contains(remote[:colon], "/")
}
