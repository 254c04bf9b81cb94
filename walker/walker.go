// Package walker discovers git repositories directly under configured roots.
package walker

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Repo is a git-controlled directory found under a root.
type Repo struct {
	Name string // Directory name
	Path string // Absolute path
	Root string // Root the repository was found under
}

// RootScan is the outcome of scanning one root.
type RootScan struct {
	Root  string // Root as configured
	Repos []Repo
	Err   error // Set when the root could not be read
}

// Walk lists the repositories under each root. Roots are visited in the
// given order and entries in directory-listing order. A root that cannot be
// read contributes an error and is skipped. visit, when non-nil, sees every
// root's outcome as it is scanned.
func Walk(roots []string, visit func(RootScan)) ([]Repo, []error) {
	var repos []Repo
	var errs []error
	for _, root := range roots {
		found, err := Scan(root)
		if visit != nil {
			visit(RootScan{Root: root, Repos: found, Err: err})
		}
		if err != nil {
			errs = append(errs, err)
			continue
		}
		repos = append(repos, found...)
	}
	return repos, errs
}

// Scan lists the repositories directly under root.
func Scan(root string) ([]Repo, error) {
	abs, err := ExpandHome(root)
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}

	var repos []Repo
	for _, entry := range entries {
		path := filepath.Join(abs, entry.Name())
		if !isDir(path) || !IsGitRepo(path) {
			continue
		}
		repos = append(repos, Repo{Name: entry.Name(), Path: path, Root: abs})
	}
	return repos, nil
}

// IsGitRepo reports whether dir has a .git entry. A .git file counts, so
// worktrees and submodules are included.
func IsGitRepo(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil
}

// isDir follows symlinks.
func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// ExpandHome resolves a leading ~ and returns an absolute path.
func ExpandHome(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand %s: %w", path, err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return filepath.Abs(path)
}
