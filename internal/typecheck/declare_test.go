package typecheck

import (
	"testing"

	"github.com/cwbudde/go-typecore/internal/ast"
	"github.com/cwbudde/go-typecore/internal/ident"
	"github.com/cwbudde/go-typecore/internal/ir"
)

func TestEnsureFunctionTypeRejectsMissingReturnTypeOnAbstractFunction(t *testing.T) {
	f := newFixture()
	bad := fn("f", nil, nil, nil)
	if err := f.pass.ensureFunctionType(bad); err == nil {
		t.Fatal("expected an error for a bodyless function with no declared return type")
	}
}

func TestEnsureFunctionTypeInfersReturnTypeFromBody(t *testing.T) {
	f := newFixture()
	inferred := fn("f", nil, nil, block(intLit(12)))
	if err := f.pass.ensureFunctionType(inferred); err != nil {
		t.Fatalf("unexpected error inferring return type: %v", err)
	}
	if inferred.ReturnType != ir.I64Type {
		t.Errorf("expected inferred return type I64Type, got %v", inferred.ReturnType)
	}
	if f.pass.decl.get(inferred) != Done {
		t.Error("function should be marked Done after its return type is inferred")
	}
}

func TestEnsureFunctionTypeRejectsRecursiveWithoutReturnType(t *testing.T) {
	f := newFixture()
	recursive := fn("f", nil, nil, block(&ast.CallExpr{Callee: "f"}))
	f.pkg.Functions = append(f.pkg.Functions, recursive)
	if err := f.pass.ensureFunctionType(recursive); err == nil {
		t.Fatal("expected a cycle error for a recursive function with no declared return type")
	}
}

func TestEnsureFunctionTypeAcceptsFullyAnnotated(t *testing.T) {
	f := newFixture()
	good := fn("f", []ir.Type{classTy(f.a)}, classTy(f.root), nil)
	if err := f.pass.ensureFunctionType(good); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.pass.decl.get(good) != Done {
		t.Error("function should be marked Done after ensureFunctionType succeeds")
	}
}

func TestEnsureClassTypeRejectsNullableSupertype(t *testing.T) {
	f := newFixture()
	broken := &ir.Class{Name: ident.New("Broken"), Supertypes: []ir.Type{&ir.ClassType{Def: f.a, Nullable: true}}}
	if err := f.pass.ensureClassType(broken); err == nil {
		t.Fatal("expected an InheritanceError for a nullable supertype")
	}
}

func TestEnsureClassTypeChecksPrimaryConstructor(t *testing.T) {
	f := newFixture()
	broken := &ir.Class{Name: ident.New("Broken"), Supertypes: []ir.Type{classTy(f.root)}}
	broken.PrimaryConstructor = fn("init", nil, nil, nil)
	if err := f.pass.ensureClassType(broken); err == nil {
		t.Fatal("expected an error for a primary constructor with no declared return type")
	}
}

func TestEnsureClassTypeDetectsCycle(t *testing.T) {
	f := newFixture()
	f.pass.decl.set(f.a, Visiting)
	if err := f.pass.ensureClassType(f.a); err == nil {
		t.Fatal("expected a cycle error when a class is already Visiting")
	}
}
