// Package adapter contains filesystem and descriptor-loading adapters for
// the jibfiles CLI.
package adapter

import (
	"os"
	"path/filepath"

	m "jibfiles.dev/pkg/jibfiles/internal/model"
)

// ProjectFS abstracts the read-only filesystem probes the domain layer
// relies on when classifying project roots. It intentionally hides direct
// `os` access so the aggregation logic can be tested without touching the
// disk.
type ProjectFS interface {
	// Stat returns metadata for a path so the domain can distinguish a
	// missing root from an unreadable one.
	Stat(path m.Path) (os.FileInfo, error)

	// RealPath resolves path to its canonical filesystem form, following
	// symlinks to their real target.
	RealPath(path m.Path) (m.Path, error)

	// Abs converts path to cleaned absolute form without resolving symlinks.
	Abs(path m.Path) (m.Path, error)
}

// LocalProjectFS backs ProjectFS with the host filesystem.
type LocalProjectFS struct{}

// NewLocalProjectFS constructs a LocalProjectFS ready to be wired into the
// aggregator.
func NewLocalProjectFS() *LocalProjectFS {
	return &LocalProjectFS{}
}

// Stat returns os.FileInfo metadata for the given path.
func (a *LocalProjectFS) Stat(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// RealPath resolves symlinks to the canonical location of path.
func (a *LocalProjectFS) RealPath(path m.Path) (m.Path, error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return "", err
	}

	real, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", err
	}

	return m.Path(real), nil
}

// Abs returns the cleaned absolute form of path.
func (a *LocalProjectFS) Abs(path m.Path) (m.Path, error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return "", err
	}

	return m.Path(abs), nil
}
