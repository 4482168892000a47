// Package model holds the resolved project graph and report values shared
// across the jibfiles layers.
package model

import "fmt"

// Module is one buildable unit within a project: its own build descriptor
// plus the roots and artifacts that feed the built image.
//
// Modules are constructed once per invocation from an already-resolved
// project graph and never mutated afterwards.
type Module struct {
	Name      string
	Dir       Path   // module root directory, absolute
	BuildFile Path   // the module's own build descriptor
	Resources []Path // resource roots, discovery order
	Sources   []Path // primary source roots
	Extra     []Path // additional configured source/resource dirs
	Archives  []Path // resolved external artifacts, resolution order
	Requires  []string
	Ignore    []Path // paths excluded from watching
}

// Project is a root module plus an ordered collection of sub-modules.
// The settings and properties descriptors are shared across modules: a
// change to either invalidates every module's build definition.
type Project struct {
	Root           Module
	SettingsFile   Path
	PropertiesFile Path
	Modules        []Module
}

// Lookup resolves a module by name. The empty name and the root module's
// own name both resolve to the root.
func (p *Project) Lookup(name string) (*Module, error) {
	if name == "" || name == p.Root.Name {
		return &p.Root, nil
	}

	for i := range p.Modules {
		if p.Modules[i].Name == name {
			return &p.Modules[i], nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrModuleNotFound, name)
}
