package typecheck

import (
	"github.com/cwbudde/go-typecore/internal/ast"
	"github.com/cwbudde/go-typecore/internal/ident"
	"github.com/cwbudde/go-typecore/internal/ir"
	"github.com/cwbudde/go-typecore/internal/loader"
)

// fixture builds a small package (Root, A, B <: A) plus a Lattice and a
// ready-to-run Pass, enough surface for declaration, body-checking,
// override, and variance tests below.
type fixture struct {
	pkg  *ir.Package
	lat  *ir.Lattice
	pass *Pass

	root, nothing, a, b *ir.Class
}

func newFixture() *fixture {
	root := &ir.Class{Name: ident.New("Root")}
	nothing := &ir.Class{Name: ident.New("Nothing"), Supertypes: []ir.Type{classTy(root)}}
	a := &ir.Class{Name: ident.New("A"), Supertypes: []ir.Type{classTy(root)}}
	b := &ir.Class{Name: ident.New("B"), Supertypes: []ir.Type{classTy(a), classTy(root)}}

	lat := &ir.Lattice{Root: root, Nothing: nothing}

	pkg := ir.NewPackage(ident.New("test"))
	pkg.Classes = []*ir.Class{root, nothing, a, b}

	ld := loader.NewMapLoader()
	pass := New(pkg, lat, ld)

	return &fixture{pkg: pkg, lat: lat, pass: pass, root: root, nothing: nothing, a: a, b: b}
}

func classTy(c ir.ClassLike) *ir.ClassType { return &ir.ClassType{Def: c} }

// fn builds a minimal concrete function with the given name, parameter
// types, return type, and body, not attached to any class.
func fn(name string, params []ir.Type, ret ir.Type, body *ast.Block) *ir.Function {
	paramVars := make([]*ir.Variable, len(params))
	for i, t := range params {
		paramVars[i] = &ir.Variable{Name: ident.New("p"), Type: t, Kind: ir.ParamVar}
	}
	return &ir.Function{Name: ident.New(name), Parameters: params, ParamVars: paramVars, ReturnType: ret, Body: body}
}

func block(stmts ...ast.Statement) *ast.Block {
	return &ast.Block{Statements: stmts}
}

func intLit(v int64) *ast.IntegerLiteral { return &ast.IntegerLiteral{Value: v, Width: 64} }

func boolLit(v bool) *ast.BooleanLiteral { return &ast.BooleanLiteral{Value: v} }
