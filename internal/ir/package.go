package ir

import (
	"github.com/cwbudde/go-typecore/internal/flags"
	"github.com/cwbudde/go-typecore/internal/ident"
)

// Package owns the ordered definition lists for one compilation unit and
// its foreign-package Dependencies (spec §3 "Package").
type Package struct {
	Name           ident.Name
	Classes        []*Class
	Traits         []*Trait
	Functions      []*Function
	Globals        []*Global
	Fields         []*Field
	TypeParameters []*TypeParameter

	dependencies map[string]*Dependency
	depOrder     []ident.Name
}

// NewPackage creates an empty package skeleton (the shape scope analysis
// hands to the type-analysis pass per spec §6).
func NewPackage(name ident.Name) *Package {
	return &Package{Name: name, dependencies: map[string]*Dependency{}}
}

// Loader fetches a foreign package by qualified name on demand (spec §6
// "PackageLoader"). Defined here, in the consumer's package, rather than
// in internal/loader, so that internal/loader can depend on ir without ir
// depending back on it.
type Loader interface {
	Load(name ident.Name) (*Package, error)
}

// DependencyFor returns the Dependency record for a foreign package,
// creating and caching it on first demand via loader (spec §3 "A
// Dependency is created on first demand for a foreign package and
// persists.").
func (p *Package) DependencyFor(name ident.Name, loader Loader) (*Dependency, error) {
	key := name.Key()
	if dep, ok := p.dependencies[key]; ok {
		return dep, nil
	}
	foreign, err := loader.Load(name)
	if err != nil {
		return nil, err
	}
	dep := &Dependency{PackageName: name, foreignPackage: foreign}
	p.dependencies[key] = dep
	p.depOrder = append(p.depOrder, name)
	return dep, nil
}

// Dependencies returns the package's dependencies in creation order.
func (p *Package) Dependencies() []*Dependency {
	out := make([]*Dependency, 0, len(p.depOrder))
	for _, n := range p.depOrder {
		out = append(out, p.dependencies[n.Key()])
	}
	return out
}

// Dependency names one foreign package and owns the parallel extern-record
// lists externalization appends to (spec §3 "Dependency", §4.6
// "Externalization").
type Dependency struct {
	PackageName ident.Name

	Classes        []*ClassExtern
	Traits         []*TraitExtern
	Functions      []*FunctionExtern
	Methods        []*FunctionExtern
	Globals        []*GlobalExtern
	TypeParameters []*TypeParameterExtern

	foreignPackage *Package
	seen           map[ident.DefinitionId]int // local id -> index into the owning slice, for dedupe
}

// ForeignPackage returns the loaded foreign package this Dependency
// describes, for components (like extern projection) that need to walk
// its definitions.
func (d *Dependency) ForeignPackage() *Package { return d.foreignPackage }

// MarkSeen records that id's extern record now lives at index in its
// owning slice, so a later request for the same foreign definition finds
// it instead of re-projecting (spec §4.6 "Externalization is idempotent
// and identity-preserving").
func (d *Dependency) MarkSeen(id ident.DefinitionId, index int) {
	if d.seen == nil {
		d.seen = map[ident.DefinitionId]int{}
	}
	d.seen[id] = index
}

// SeenIndex returns the slice index already recorded for id, if any — the
// mechanism behind externalization's idempotence (spec §4.6).
func (d *Dependency) SeenIndex(id ident.DefinitionId) (int, bool) {
	i, ok := d.seen[id]
	return i, ok
}

// --- extern record shapes (spec §3 "Dependency", §4.6 "Externalization") ---
//
// These are plain data: the projection/dedupe algorithm that builds them
// lives in package extern (component C6), kept separate from ir so the
// externalization policy (what's reachable, what's trimmed) doesn't have
// to live inside the core data model.

// TypeParameterExtern mirrors a foreign TypeParameter's name and bounds.
type TypeParameterExtern struct {
	Id         ident.DefinitionId
	Name       ident.Name
	UpperBound Type
	LowerBound Type
	Variance   Variance
}

// FunctionExtern mirrors a foreign function/method/constructor: name, type
// parameters, parameter types, return type, and a trimmed flag set plus
// the EXTERN flag.
type FunctionExtern struct {
	Id             ident.DefinitionId
	Name           ident.Name
	TypeParameters []*TypeParameterExtern
	Parameters     []Type
	ReturnType     Type
	Flags          flags.Set
}

// GlobalExtern mirrors a foreign global: name and type.
type GlobalExtern struct {
	Id   ident.DefinitionId
	Name ident.Name
	Type Type
}

// ClassExtern mirrors a foreign class: name, type parameters, supertypes,
// and the subset of fields/methods reachable from the target package.
type ClassExtern struct {
	Id             ident.DefinitionId
	Name           ident.Name
	TypeParameters []*TypeParameterExtern
	Supertypes     []Type
	Fields         []*GlobalExtern // field externs share Global's (name, type) shape
	Methods        []*FunctionExtern
}

func (c *ClassExtern) DefId() ident.DefinitionId { return c.Id }
func (c *ClassExtern) DefName() ident.Name       { return c.Name }
func (c *ClassExtern) TypeParams() []*TypeParameter {
	return externParamsToTypeParams(c.TypeParameters)
}
func (c *ClassExtern) SupertypesList() []Type { return c.Supertypes }
func (c *ClassExtern) MethodList() []*Function {
	return externFuncsToFunctions(c.Methods)
}
func (c *ClassExtern) IsTrait() bool { return false }

// TraitExtern mirrors a foreign trait: like ClassExtern but no fields.
type TraitExtern struct {
	Id             ident.DefinitionId
	Name           ident.Name
	TypeParameters []*TypeParameterExtern
	Supertypes     []Type
	Methods        []*FunctionExtern
}

func (t *TraitExtern) DefId() ident.DefinitionId    { return t.Id }
func (t *TraitExtern) DefName() ident.Name          { return t.Name }
func (t *TraitExtern) TypeParams() []*TypeParameter { return externParamsToTypeParams(t.TypeParameters) }
func (t *TraitExtern) SupertypesList() []Type       { return t.Supertypes }
func (t *TraitExtern) MethodList() []*Function      { return externFuncsToFunctions(t.Methods) }
func (t *TraitExtern) IsTrait() bool                { return true }

// externParamsToTypeParams and externFuncsToFunctions adapt extern records
// to the ClassLike interface so subtype/lub/substitute (which only know
// about TypeParameter/Function) work uniformly over local and foreign
// definitions. The adaptation is shallow: it exists purely so extern
// records can satisfy ClassLike, not to duplicate extern data.
func externParamsToTypeParams(ps []*TypeParameterExtern) []*TypeParameter {
	out := make([]*TypeParameter, len(ps))
	for i, p := range ps {
		out[i] = &TypeParameter{Id: p.Id, Name: p.Name, UpperBound: p.UpperBound, LowerBound: p.LowerBound, Variance: p.Variance}
	}
	return out
}

func externFuncsToFunctions(fs []*FunctionExtern) []*Function {
	out := make([]*Function, len(fs))
	for i, f := range fs {
		out[i] = &Function{
			Id: f.Id, Name: f.Name,
			TypeParameters: externParamsToTypeParams(f.TypeParameters),
			Parameters:     f.Parameters, ReturnType: f.ReturnType, Flags: f.Flags,
		}
	}
	return out
}
