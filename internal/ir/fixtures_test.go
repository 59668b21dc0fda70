package ir

import "github.com/cwbudde/go-typecore/internal/ident"

// fixture builds a small lattice mirroring gypsum's test_ir_types.py setUp:
// Root (implicit), A, B <: A, C <: B, and P with two invariant parameters
// X, Y — enough surface for the subtype/lub/substitute test suites below.
type fixture struct {
	lat     *Lattice
	root    *Class
	nothing *Class
	a, b, c *Class
}

func newFixture() *fixture {
	root := &Class{Name: ident.New("Root")}
	nothing := &Class{Name: ident.New("Nothing"), Supertypes: []Type{classTypeOf(root)}}

	a := &Class{Name: ident.New("A"), Supertypes: []Type{classTypeOf(root)}}
	b := &Class{Name: ident.New("B"), Supertypes: []Type{classTypeOf(a), classTypeOf(root)}}
	c := &Class{Name: ident.New("C"), Supertypes: []Type{classTypeOf(b), classTypeOf(a), classTypeOf(root)}}

	return &fixture{
		lat:     &Lattice{Root: root, Nothing: nothing},
		root:    root,
		nothing: nothing,
		a:       a, b: b, c: c,
	}
}

func classTypeOf(c ClassLike) *ClassType {
	return &ClassType{Def: c}
}

func (f *fixture) rootTy() *ClassType    { return classTypeOf(f.root) }
func (f *fixture) nothingTy() *ClassType { return f.lat.NothingType() }
func (f *fixture) nullTy() *ClassType    { return f.lat.NullType() }
func (f *fixture) aTy() *ClassType       { return classTypeOf(f.a) }
func (f *fixture) bTy() *ClassType       { return classTypeOf(f.b) }
func (f *fixture) cTy() *ClassType       { return classTypeOf(f.c) }

// newParam builds a free-standing (unowned) type parameter with the given
// bounds, mirroring addTypeParameter(None, ...) in the Python fixture.
func newParam(name string, upper, lower Type, v Variance) *TypeParameter {
	return &TypeParameter{Name: ident.New(name), UpperBound: upper, LowerBound: lower, Variance: v}
}
