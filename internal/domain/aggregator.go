// Package domain implements the file-dependency classification that decides
// which paths on disk affect a module's container image build.
package domain

import (
	"fmt"
	"log/slog"
	"os"

	"jibfiles.dev/pkg/jibfiles/internal/adapter"
	m "jibfiles.dev/pkg/jibfiles/internal/model"
)

// Aggregator walks a resolved project graph and classifies the files that
// affect one module's image build. It is a pure function of the Project
// value it is given; the only I/O is read-only existence and symlink checks.
type Aggregator struct {
	fs adapter.ProjectFS
}

// NewAggregator constructs an Aggregator on top of the given filesystem.
func NewAggregator(fs adapter.ProjectFS) *Aggregator {
	return &Aggregator{fs: fs}
}

// ComputeReport produces the three ordered path lists for the named module
// (empty name targets the root).
//
// Build descriptors go outermost-first: root build file, settings,
// shared properties, the target's own descriptor, then each in-project
// dependency's chain recursively in declaration order. Descriptors absent
// from the model are omitted, not errors.
//
// Inputs go resources, then sources, then extra dirs per module, target
// module first and dependency modules after, with resolved external
// artifacts appended last in resolution order. Roots missing from disk are
// skipped; roots that exist but cannot be read abort with ErrFileSystem.
//
// Every list drops duplicate canonical paths, keeping the first occurrence.
func (a *Aggregator) ComputeReport(project *m.Project, moduleName string) (m.FileReport, error) {
	target, err := project.Lookup(moduleName)
	if err != nil {
		return m.FileReport{}, err
	}

	build := newPathSet(a.fs)
	inputs := newPathSet(a.fs)
	ignore := newPathSet(a.fs)

	if project.Root.BuildFile != "" {
		build.add(project.Root.BuildFile)
	}

	if project.SettingsFile != "" {
		build.add(project.SettingsFile)
	}

	if project.PropertiesFile != "" {
		build.add(project.PropertiesFile)
	}

	var archives []m.Path

	visited := make(map[string]bool)

	var walk func(mod *m.Module) error
	walk = func(mod *m.Module) error {
		if visited[mod.Name] {
			return nil
		}

		visited[mod.Name] = true

		if mod.BuildFile != "" {
			build.add(mod.BuildFile)
		}

		for _, group := range [][]m.Path{mod.Resources, mod.Sources, mod.Extra} {
			for _, root := range group {
				usable, err := a.usableRoot(root)
				if err != nil {
					return err
				}

				if usable {
					inputs.add(root)
				}
			}
		}

		for _, path := range mod.Ignore {
			ignore.add(path)
		}

		archives = append(archives, mod.Archives...)

		for _, name := range mod.Requires {
			dep, err := project.Lookup(name)
			if err != nil {
				return err
			}

			if err := walk(dep); err != nil {
				return err
			}
		}

		return nil
	}

	if err := walk(target); err != nil {
		return m.FileReport{}, err
	}

	// External artifacts are opaque inputs whose internal structure is not
	// walked. They land after every in-project root, in the resolution
	// order the model supplied.
	for _, archive := range archives {
		inputs.add(archive)
	}

	report := m.FileReport{
		Build:  build.list(),
		Inputs: inputs.list(),
		Ignore: ignore.list(),
	}

	slog.Debug("computed file report",
		"module", target.Name,
		"build", len(report.Build),
		"inputs", len(report.Inputs),
		"ignore", len(report.Ignore),
	)

	return report, nil
}

// usableRoot reports whether a declared root should be watched. A module
// may declare a resources directory that happens not to exist; that is not
// an error. A root that exists but cannot be inspected is.
func (a *Aggregator) usableRoot(path m.Path) (bool, error) {
	if _, err := a.fs.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}

		return false, fmt.Errorf("%w: stat %s: %v", m.ErrFileSystem, path, err)
	}

	return true, nil
}
