// Package loader provides PackageLoader implementations (spec §6
// "PackageLoader"). It depends on internal/ir but is never imported by
// it, so ir.Package can call back into a loader without an import cycle.
package loader

import (
	"fmt"

	"github.com/cwbudde/go-typecore/internal/ident"
	"github.com/cwbudde/go-typecore/internal/ir"
)

// MapLoader resolves foreign packages from an in-memory map, keyed by
// qualified name. Used by tests and by any driver that pre-loads its
// whole dependency set rather than reading packages off disk (package
// file/wire format is out of scope for this analyzer, per spec §6).
type MapLoader struct {
	packages map[string]*ir.Package
}

// NewMapLoader builds a loader over the given packages, keyed by their
// own Name.
func NewMapLoader(packages ...*ir.Package) *MapLoader {
	m := &MapLoader{packages: make(map[string]*ir.Package, len(packages))}
	for _, p := range packages {
		m.packages[p.Name.Key()] = p
	}
	return m
}

// Add registers an additional package, for loaders built up incrementally.
func (m *MapLoader) Add(p *ir.Package) {
	if m.packages == nil {
		m.packages = map[string]*ir.Package{}
	}
	m.packages[p.Name.Key()] = p
}

// Load implements ir.Loader.
func (m *MapLoader) Load(name ident.Name) (*ir.Package, error) {
	p, ok := m.packages[name.Key()]
	if !ok {
		return nil, fmt.Errorf("no such package: %s", name)
	}
	return p, nil
}

var _ ir.Loader = (*MapLoader)(nil)
