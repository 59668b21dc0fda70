package ir

import "testing"

func TestEffectiveClassTypeForClassType(t *testing.T) {
	f := newFixture()
	got, captured := EffectiveClassType(f.aTy(), f.lat)
	if !StructuralEqual(got, f.aTy()) || len(captured) != 0 {
		t.Fatalf("EffectiveClassType(A) = (%v, %v), want (A, [])", got, captured)
	}
}

func TestEffectiveClassTypeForVariableType(t *testing.T) {
	f := newFixture()
	tp := newParam("T", f.aTy(), f.nothingTy(), Invariant)
	got, captured := EffectiveClassType(&VariableType{Param: tp}, f.lat)
	if !StructuralEqual(got, f.aTy()) || len(captured) != 0 {
		t.Fatalf("EffectiveClassType(T<:A) = (%v, %v), want (A, [])", got, captured)
	}
}

func TestEffectiveClassTypeForExistentialType(t *testing.T) {
	f := newFixture()
	tp := newParam("T", f.aTy(), f.nothingTy(), Invariant)
	e := &ExistentialType{Captured: []*TypeParameter{tp}, Inner: &VariableType{Param: tp}}
	got, captured := EffectiveClassType(e, f.lat)
	if !StructuralEqual(got, f.aTy()) || len(captured) != 1 || captured[0] != tp {
		t.Fatalf("EffectiveClassType(exists T<:A. T) = (%v, %v), want (A, [T])", got, captured)
	}
}
