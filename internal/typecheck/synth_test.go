package typecheck

import (
	"testing"

	"github.com/cwbudde/go-typecore/internal/ast"
	"github.com/cwbudde/go-typecore/internal/ident"
	"github.com/cwbudde/go-typecore/internal/ir"
)

func TestCheckFunctionBodySkipsAbstractFunctions(t *testing.T) {
	f := newFixture()
	abstractFn := fn("f", nil, classTy(f.root), nil)
	if err := f.pass.checkFunctionBody(abstractFn); err != nil {
		t.Fatalf("unexpected error for abstract function: %v", err)
	}
}

func TestCheckFunctionBodyReturnMatchesDeclaredType(t *testing.T) {
	f := newFixture()
	good := fn("f", nil, ir.I64Type, block(&ast.ReturnExpr{Value: intLit(42)}))
	if err := f.pass.checkFunctionBody(good); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCheckFunctionBodyReturnMismatchIsRejected(t *testing.T) {
	f := newFixture()
	bad := fn("f", nil, ir.BooleanType, block(&ast.ReturnExpr{Value: intLit(1)}))
	if err := f.pass.checkFunctionBody(bad); err == nil {
		t.Fatal("expected a type error returning i64 from a boolean-typed function")
	}
}

func TestCheckFunctionBodyIfElseLubsBranches(t *testing.T) {
	f := newFixture()
	// if true { A } else { B } : A  (B <: A)
	ifExpr := &ast.IfExpr{
		Condition: boolLit(true),
		Then:      block(&ast.NewExpr{ClassName: "A"}),
		Else:      block(&ast.NewExpr{ClassName: "B"}),
	}
	good := fn("f", nil, classTy(f.a), block(ifExpr))
	if err := f.pass.checkFunctionBody(good); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCheckFunctionBodyAssignmentRequiresMutableLocal(t *testing.T) {
	f := newFixture()
	local := &ast.LocalDecl{Name: "x", Mutable: false, Init: intLit(1)}
	assign := &ast.Assignment{Target: &ast.Identifier{Name: "x"}, Value: intLit(2)}
	badFn := fn("f", nil, ir.UnitType, block(local, assign))
	if err := f.pass.checkFunctionBody(badFn); err == nil {
		t.Fatal("expected an error assigning to a non-mutable local")
	}

	mutable := &ast.LocalDecl{Name: "x", Mutable: true, Init: intLit(1)}
	goodFn := fn("f", nil, ir.UnitType, block(mutable, assign))
	if err := f.pass.checkFunctionBody(goodFn); err != nil {
		t.Fatalf("unexpected error assigning to a mutable local: %v", err)
	}
}

func TestCheckFunctionBodyResolvesOperatorCall(t *testing.T) {
	f := newFixture()
	plus := &ir.Function{
		Name:          ident.New("+"),
		DefiningClass: f.a,
		Parameters:    []ir.Type{classTy(f.a), classTy(f.a)},
		ParamVars:     []*ir.Variable{{Name: ident.New("this")}, {Name: ident.New("other")}},
		ReturnType:    classTy(f.a),
	}
	f.a.Methods = append(f.a.Methods, plus)

	binary := &ast.BinaryExpr{Op: "+", Left: &ast.NewExpr{ClassName: "A"}, Right: &ast.NewExpr{ClassName: "A"}}
	good := fn("f", nil, classTy(f.a), block(binary))
	if err := f.pass.checkFunctionBody(good); err != nil {
		t.Fatalf("unexpected error resolving operator call: %v", err)
	}
}

func TestCheckFunctionBodyRejectsUnknownOperator(t *testing.T) {
	f := newFixture()
	binary := &ast.BinaryExpr{Op: "*", Left: &ast.NewExpr{ClassName: "A"}, Right: &ast.NewExpr{ClassName: "A"}}
	bad := fn("f", nil, classTy(f.a), block(binary))
	if err := f.pass.checkFunctionBody(bad); err == nil {
		t.Fatal("expected an error for an undefined operator")
	}
}
