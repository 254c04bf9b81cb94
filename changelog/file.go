package changelog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultFilename is the changelog file at a repository root.
const DefaultFilename = "CHANGELOG.md"

// Header starts a newly created changelog file.
const Header = "# Changelog\n\n"

// File is a changelog file inside a repository.
type File struct {
	Path string
}

// NewFile returns the changelog file named name under repoPath.
// An empty name selects DefaultFilename.
func NewFile(repoPath, name string) File {
	if name == "" {
		name = DefaultFilename
	}
	return File{Path: filepath.Join(repoPath, name)}
}

// Read returns the file content, or "" when the file does not exist.
func (f File) Read() (string, error) {
	data, err := os.ReadFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read changelog: %w", err)
	}
	return string(data), nil
}

// Prepend writes block above the existing content. A missing file is created
// with Header followed by block. It reports whether the file was created.
func (f File) Prepend(block string) (created bool, err error) {
	existing, err := os.ReadFile(f.Path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		created = true
		err = os.WriteFile(f.Path, []byte(Header+block), 0o644)
	case err != nil:
		return false, fmt.Errorf("read changelog: %w", err)
	default:
		err = os.WriteFile(f.Path, []byte(block+"\n"+string(existing)), 0o644)
	}
	if err != nil {
		return created, fmt.Errorf("write changelog: %w", err)
	}
	return created, nil
}
