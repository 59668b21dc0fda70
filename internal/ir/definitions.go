package ir

import (
	"github.com/cwbudde/go-typecore/internal/ast"
	"github.com/cwbudde/go-typecore/internal/flags"
	"github.com/cwbudde/go-typecore/internal/ident"
	"github.com/cwbudde/go-typecore/internal/source"
)

// TypeParameter is a generic parameter with declared bounds and variance
// (spec §3 "TypeParameter"). Bounds default to the root class (upper) and
// Nothing (lower) when unspecified.
type TypeParameter struct {
	Id         ident.DefinitionId
	Name       ident.Name
	UpperBound Type
	LowerBound Type
	Variance   Variance
	Flags      flags.Set
	Pos        source.Position
}

// VariableKind distinguishes a parameter from a local.
type VariableKind uint8

const (
	ParamVar VariableKind = iota
	LocalVar
)

// Variable is a parameter or local (spec §3 "Variable"). LET marks
// immutability.
type Variable struct {
	Id    ident.DefinitionId
	Name  ident.Name
	Type  Type
	Kind  VariableKind
	Flags flags.Set
	Pos   source.Position
}

func (v *Variable) IsLet() bool { return v.Flags.Has(flags.Let) }

// Field is a class member slot (spec §3 "Class").
type Field struct {
	Id    ident.DefinitionId
	Name  ident.Name
	Type  Type
	Flags flags.Set
	Pos   source.Position
}

func (f *Field) IsVar() bool { return f.Flags.Has(flags.Var) }

// Global is a package-level field.
type Global struct {
	Id    ident.DefinitionId
	Name  ident.Name
	Type  Type
	Flags flags.Set
	Pos   source.Position
}

// Function covers functions, methods, and constructors (spec §3
// "Function"). Parameters[0] is the receiver for methods/constructors.
type Function struct {
	Id             ident.DefinitionId
	Name           ident.Name
	TypeParameters []*TypeParameter
	ReturnType     Type
	Parameters     []Type
	ParamVars      []*Variable // parallel to Parameters, names/flags for each
	Locals         []*Variable // built incrementally by the pass
	DefiningClass  ClassLike
	Overrides      []ident.DefinitionId
	Flags          flags.Set
	CompileHint    string
	Body           *ast.Block // nil for abstract/native functions
	Pos            source.Position
}

func (f *Function) IsMethod() bool   { return f.DefiningClass != nil }
func (f *Function) IsOverride() bool { return f.Flags.Has(flags.Override) }
func (f *Function) IsAbstract() bool { return f.Flags.Has(flags.Abstract) }

// ReceiverType returns the receiver's type for a method/constructor, or
// nil for a free function.
func (f *Function) ReceiverType() Type {
	if !f.IsMethod() || len(f.Parameters) == 0 {
		return nil
	}
	return f.Parameters[0]
}

// NonReceiverParameters returns the parameter types excluding the receiver
// (used throughout override/call resolution, spec §4.4).
func (f *Function) NonReceiverParameters() []Type {
	if f.IsMethod() {
		if len(f.Parameters) == 0 {
			return nil
		}
		return f.Parameters[1:]
	}
	return f.Parameters
}

// Class is a nominal reference type with fields, constructors, methods,
// and a linearized supertype chain (spec §3 "Class").
type Class struct {
	Id                 ident.DefinitionId
	Name               ident.Name
	TypeParameters     []*TypeParameter
	Supertypes         []Type // [0] = direct superclass; rest = linearization, ends with root
	PrimaryConstructor *Function
	Constructors       []*Function
	Fields             []*Field
	Methods            []*Function
	ArrayElement       Type // nil unless the class carries array elements
	Flags              flags.Set
	Pos                source.Position
}

func (c *Class) DefId() ident.DefinitionId     { return c.Id }
func (c *Class) DefName() ident.Name           { return c.Name }
func (c *Class) TypeParams() []*TypeParameter  { return c.TypeParameters }
func (c *Class) SupertypesList() []Type        { return c.Supertypes }
func (c *Class) MethodList() []*Function       { return c.Methods }
func (c *Class) IsTrait() bool                 { return false }
func (c *Class) IsAbstract() bool              { return c.Flags.Has(flags.Abstract) }
func (c *Class) HasArrayElements() bool        { return c.ArrayElement != nil }

// DirectSuper returns the class's direct superclass, or nil if it has
// none (only the root class has none).
func (c *Class) DirectSuper() Type {
	if len(c.Supertypes) == 0 {
		return nil
	}
	return c.Supertypes[0]
}

// Trait is like Class but carries no constructors, fields, or array
// elements (spec §3 "Trait").
type Trait struct {
	Id             ident.DefinitionId
	Name           ident.Name
	TypeParameters []*TypeParameter
	Supertypes     []Type
	Methods        []*Function
	Flags          flags.Set
	Pos            source.Position
}

func (t *Trait) DefId() ident.DefinitionId    { return t.Id }
func (t *Trait) DefName() ident.Name          { return t.Name }
func (t *Trait) TypeParams() []*TypeParameter { return t.TypeParameters }
func (t *Trait) SupertypesList() []Type       { return t.Supertypes }
func (t *Trait) MethodList() []*Function      { return t.Methods }
func (t *Trait) IsTrait() bool                { return true }
