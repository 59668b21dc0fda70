package typecheck

import (
	"testing"

	"github.com/cwbudde/go-typecore/internal/ast"
	"github.com/cwbudde/go-typecore/internal/ir"
)

func TestRunChecksPrimaryConstructorBody(t *testing.T) {
	f := newFixture()
	// A primary constructor returning from within its body against a
	// mismatched declared return type must be caught the same way a
	// regular constructor's would be.
	f.a.PrimaryConstructor = fn("init", nil, ir.BooleanType, block(&ast.ReturnExpr{Value: intLit(1)}))
	f.a.PrimaryConstructor.DefiningClass = f.a

	if err := f.pass.Run(); err == nil {
		t.Fatal("expected Run to surface a type error from the primary constructor's body")
	}
}

func TestRunSucceedsOverEmptyPackage(t *testing.T) {
	f := newFixture()
	if err := f.pass.Run(); err != nil {
		t.Fatalf("unexpected error over a package with no declared bodies: %v", err)
	}
}
