package ir

import (
	"testing"

	"github.com/cwbudde/go-typecore/internal/ident"
)

func TestSubstituteReplacesVariable(t *testing.T) {
	f := newFixture()
	tp := newParam("T", f.rootTy(), f.nothingTy(), Invariant)
	boxed := &ClassType{Def: &Class{Name: ident.New("Box"), TypeParameters: []*TypeParameter{tp}},
		Arguments: []Type{&VariableType{Param: tp}}}

	got := Substitute(boxed, []*TypeParameter{tp}, []Type{f.aTy()})
	want := &ClassType{Def: boxed.Def, Arguments: []Type{f.aTy()}}
	if !StructuralEqual(got, want) {
		t.Fatalf("Substitute(Box[T], T->A) = %v, want %v", got, want)
	}
}

func TestSubstituteAbsorbsNullability(t *testing.T) {
	f := newFixture()
	tp := newParam("T", f.rootTy(), f.nothingTy(), Invariant)
	v := &VariableType{Param: tp, Nullable: true}
	got := Substitute(v, []*TypeParameter{tp}, []Type{f.aTy()})
	want := &ClassType{Def: f.a, Nullable: true}
	if !StructuralEqual(got, want) {
		t.Fatalf("Substitute(T?, T->A) = %v, want A?", got)
	}
}

func TestSubstituteForBase(t *testing.T) {
	f := newFixture()
	tp := newParam("T", f.rootTy(), f.nothingTy(), Invariant)
	box := &Class{Name: ident.New("Box"), TypeParameters: []*TypeParameter{tp}, Supertypes: []Type{f.rootTy()}}
	boxA := &ClassType{Def: box, Arguments: []Type{f.aTy()}}

	sub := &Class{Name: ident.New("SubBox"), Supertypes: []Type{boxA, f.rootTy()}}
	subTy := classTypeOf(sub)

	got, ok := SubstituteForBase(subTy, box)
	if !ok {
		t.Fatal("SubstituteForBase should find Box along SubBox's supertype chain")
	}
	if !StructuralEqual(got, boxA) {
		t.Fatalf("SubstituteForBase(SubBox, Box) = %v, want Box[A]", got)
	}
}

func TestSubstituteForBaseNotFound(t *testing.T) {
	f := newFixture()
	other := &Class{Name: ident.New("Other"), Supertypes: []Type{f.rootTy()}}
	if _, ok := SubstituteForBase(f.aTy(), other); ok {
		t.Fatal("SubstituteForBase should fail when the base class is unrelated")
	}
}
