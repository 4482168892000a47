package adapter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "jibfiles.dev/pkg/jibfiles/internal/model"
)

// ProjectLoader builds the resolved project model the aggregator consumes.
// The YAML descriptor stands in for a host build system that has already
// resolved modules, roots and dependency artifacts.
type ProjectLoader interface {
	Load(path m.Path) (*m.Project, error)
}

type moduleSpec struct {
	Name      string   `yaml:"name"`
	Dir       string   `yaml:"dir"`
	Build     string   `yaml:"build"`
	Resources []string `yaml:"resources"`
	Sources   []string `yaml:"sources"`
	Extra     []string `yaml:"extra"`
	Archives  []string `yaml:"archives"`
	Requires  []string `yaml:"requires"`
	Ignore    []string `yaml:"ignore"`
	Output    string   `yaml:"output"`
}

type projectSpec struct {
	Root       moduleSpec   `yaml:"root"`
	Settings   string       `yaml:"settings"`
	Properties string       `yaml:"properties"`
	Modules    []moduleSpec `yaml:"modules"`
}

// YAMLProjectLoader reads a jibfiles.yaml project descriptor from disk.
type YAMLProjectLoader struct{}

// NewYAMLProjectLoader constructs a YAMLProjectLoader.
func NewYAMLProjectLoader() *YAMLProjectLoader {
	return &YAMLProjectLoader{}
}

// Load parses the descriptor at path into an immutable Project value.
// Every declared path is absolutized: module dirs against the descriptor's
// directory, roots and artifacts against their module's dir.
func (l *YAMLProjectLoader) Load(path m.Path) (*m.Project, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("read project descriptor: %w", err)
	}

	var spec projectSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parse project descriptor %s: %w", path, err)
	}

	baseDir, err := filepath.Abs(filepath.Dir(string(path)))
	if err != nil {
		return nil, fmt.Errorf("resolve project directory: %w", err)
	}

	root, err := resolveModule(spec.Root, baseDir)
	if err != nil {
		return nil, err
	}

	project := &m.Project{Root: root}
	if spec.Settings != "" {
		project.SettingsFile = absPath(baseDir, spec.Settings)
	}

	if spec.Properties != "" {
		project.PropertiesFile = absPath(baseDir, spec.Properties)
	}

	seen := map[string]bool{root.Name: true}

	for _, ms := range spec.Modules {
		mod, err := resolveModule(ms, baseDir)
		if err != nil {
			return nil, err
		}

		if seen[mod.Name] {
			return nil, fmt.Errorf("duplicate module name %q in %s", mod.Name, path)
		}

		seen[mod.Name] = true
		project.Modules = append(project.Modules, mod)
	}

	for _, mod := range append([]m.Module{project.Root}, project.Modules...) {
		for _, name := range mod.Requires {
			if !seen[name] {
				return nil, fmt.Errorf("%w: %q required by %q", m.ErrModuleNotFound, name, mod.Name)
			}
		}
	}

	slog.Debug("loaded project descriptor", "path", path, "modules", len(project.Modules)+1)

	return project, nil
}

func resolveModule(spec moduleSpec, baseDir string) (m.Module, error) {
	if spec.Name == "" {
		return m.Module{}, fmt.Errorf("module declared without a name")
	}

	dir := spec.Dir
	if dir == "" {
		dir = "."
	}

	modDir := string(absPath(baseDir, dir))

	mod := m.Module{
		Name:      spec.Name,
		Dir:       m.Path(modDir),
		Resources: absPaths(modDir, spec.Resources),
		Sources:   absPaths(modDir, spec.Sources),
		Extra:     absPaths(modDir, spec.Extra),
		Archives:  absPaths(modDir, spec.Archives),
		Requires:  spec.Requires,
		Ignore:    absPaths(modDir, spec.Ignore),
	}

	if spec.Build != "" {
		mod.BuildFile = absPath(modDir, spec.Build)
	}

	// The build output directory must never be watched: the build writing
	// its own output would retrigger the watcher that started it.
	if spec.Output != "" {
		mod.Ignore = append(mod.Ignore, absPath(modDir, spec.Output))
	}

	return mod, nil
}

func absPath(base, path string) m.Path {
	if filepath.IsAbs(path) {
		return m.Path(filepath.Clean(path))
	}

	return m.Path(filepath.Join(base, path))
}

func absPaths(base string, paths []string) []m.Path {
	if len(paths) == 0 {
		return nil
	}

	out := make([]m.Path, 0, len(paths))
	for _, p := range paths {
		out = append(out, absPath(base, p))
	}

	return out
}
