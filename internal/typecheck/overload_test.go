package typecheck

import (
	"testing"

	"github.com/cwbudde/go-typecore/internal/flags"
	"github.com/cwbudde/go-typecore/internal/ident"
	"github.com/cwbudde/go-typecore/internal/ir"
	"github.com/cwbudde/go-typecore/internal/source"
)

func TestResolveCallArityFilter(t *testing.T) {
	f := newFixture()
	one := fn("f", []ir.Type{classTy(f.root)}, classTy(f.root), nil)
	two := fn("f", []ir.Type{classTy(f.root), classTy(f.root)}, classTy(f.root), nil)

	result, err := f.pass.resolveCall(source.Position{}, []*ir.Function{one, two}, nil, nil, []ir.Type{classTy(f.root)}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.fn != one {
		t.Error("expected the single-parameter overload to be chosen by arity")
	}
}

func TestResolveCallRejectsWrongArity(t *testing.T) {
	f := newFixture()
	one := fn("f", []ir.Type{classTy(f.root)}, classTy(f.root), nil)
	_, err := f.pass.resolveCall(source.Position{}, []*ir.Function{one}, nil, nil, nil, false)
	if err == nil {
		t.Fatal("expected an arity error")
	}
}

func TestResolveCallInfersTypeParameter(t *testing.T) {
	f := newFixture()
	tp := &ir.TypeParameter{Name: ident.New("T"), UpperBound: classTy(f.root), LowerBound: classTy(f.nothing)}
	identityFn := &ir.Function{
		Name:           ident.New("identity"),
		TypeParameters: []*ir.TypeParameter{tp},
		Parameters:     []ir.Type{&ir.VariableType{Param: tp}},
		ParamVars:      []*ir.Variable{{Name: ident.New("x")}},
		ReturnType:     &ir.VariableType{Param: tp},
	}

	result, err := f.pass.resolveCall(source.Position{}, []*ir.Function{identityFn}, nil, nil, []ir.Type{classTy(f.a)}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ir.Equivalent(result.instantiatedReturn, classTy(f.a), f.lat) {
		t.Errorf("expected inferred return type A, got %s", result.instantiatedReturn)
	}
}

func TestResolveCallRejectsExplicitTypeArgumentOutOfBounds(t *testing.T) {
	f := newFixture()
	tp := &ir.TypeParameter{Name: ident.New("T"), UpperBound: classTy(f.a), LowerBound: classTy(f.nothing)}
	boundedFn := &ir.Function{
		Name:           ident.New("g"),
		TypeParameters: []*ir.TypeParameter{tp},
		Parameters:     []ir.Type{&ir.VariableType{Param: tp}},
		ParamVars:      []*ir.Variable{{Name: ident.New("x")}},
		ReturnType:     &ir.VariableType{Param: tp},
	}

	_, err := f.pass.resolveCall(source.Position{}, []*ir.Function{boundedFn}, []ir.Type{classTy(f.root)}, nil, []ir.Type{classTy(f.root)}, false)
	if err == nil {
		t.Fatal("expected an error binding T=Root against an upper bound of A")
	}
}

func TestResolveCallSpecificityTieBreak(t *testing.T) {
	f := newFixture()
	narrow := fn("g", []ir.Type{classTy(f.a)}, classTy(f.root), nil)
	wide := fn("g", []ir.Type{classTy(f.root)}, classTy(f.root), nil)

	result, err := f.pass.resolveCall(source.Position{}, []*ir.Function{wide, narrow}, nil, nil, []ir.Type{classTy(f.b)}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.fn != narrow {
		t.Error("expected the narrower (A-typed) overload to win specificity")
	}
}

func TestResolveCallAmbiguousWhenNeitherMoreSpecific(t *testing.T) {
	f := newFixture()
	x := &ir.Class{Name: ident.New("X"), Supertypes: []ir.Type{classTy(f.root)}}
	y := &ir.Class{Name: ident.New("Y"), Supertypes: []ir.Type{classTy(f.root)}}
	z := &ir.Class{Name: ident.New("Z"), Supertypes: []ir.Type{classTy(x), classTy(y), classTy(f.root)}}
	f.pkg.Classes = append(f.pkg.Classes, x, y, z)

	acceptsX := fn("g", []ir.Type{classTy(x)}, classTy(f.root), nil)
	acceptsY := fn("g", []ir.Type{classTy(y)}, classTy(f.root), nil)

	_, err := f.pass.resolveCall(source.Position{}, []*ir.Function{acceptsX, acceptsY}, nil, nil, []ir.Type{classTy(z)}, false)
	if err == nil {
		t.Fatal("expected an ambiguous-call error when neither overload is more specific")
	}
}

func TestResolveCallStaticMethodRejectedWithReceiver(t *testing.T) {
	f := newFixture()
	static := fn("g", []ir.Type{classTy(f.root)}, classTy(f.root), nil)
	static.Parameters = append([]ir.Type{classTy(f.a)}, static.Parameters...)
	static.DefiningClass = f.a
	static.Flags = flags.NewSet(flags.Static)

	_, err := f.pass.resolveCall(source.Position{}, []*ir.Function{static}, nil, classTy(f.a), []ir.Type{classTy(f.root)}, true)
	if err == nil {
		t.Fatal("expected a static method to be rejected when called with a receiver")
	}
}
