package typecheck

import (
	"github.com/cwbudde/go-typecore/internal/ast"
	"github.com/cwbudde/go-typecore/internal/errors"
	"github.com/cwbudde/go-typecore/internal/ident"
	"github.com/cwbudde/go-typecore/internal/ir"
)

var primitiveByName = map[string]ir.Type{
	"unit": ir.UnitType, "boolean": ir.BooleanType,
	"i8": ir.I8Type, "i16": ir.I16Type, "i32": ir.I32Type, "i64": ir.I64Type,
	"f32": ir.F32Type, "f64": ir.F64Type,
}

// inScopeParams collects the type parameters visible while resolving a
// TypeExpr written inside ctx.fn's body: the function's own and its
// defining class's, if any.
func (p *Pass) inScopeParams(ctx *funcCtx) []*ir.TypeParameter {
	var out []*ir.TypeParameter
	if ctx != nil && ctx.fn != nil {
		out = append(out, ctx.fn.TypeParameters...)
		if cls, ok := ctx.fn.DefiningClass.(*ir.Class); ok {
			out = append(out, cls.TypeParameters...)
		}
	}
	return out
}

func findParam(scope []*ir.TypeParameter, name string) *ir.TypeParameter {
	for _, tp := range scope {
		if tp.Name.Short() == name {
			return tp
		}
	}
	return nil
}

// resolveTypeExpr turns the syntactic TypeExpr t into an ir.Type, looking
// names up against scope (the type parameters currently visible) and the
// target package's classes/traits. Lexing, parsing, and name binding are
// out of scope for this package; this is the one place body checking
// still has to turn a written type reference into an ir.Type, since
// local-variable and lambda-parameter annotations arrive as syntax rather
// than pre-resolved ir.Type values.
func (p *Pass) resolveTypeExpr(scope []*ir.TypeParameter, t ast.TypeExpr) (ir.Type, error) {
	switch n := t.(type) {
	case *ast.NamedTypeExpr:
		if prim, ok := primitiveByName[n.Name]; ok {
			if n.Nullable || len(n.Args) > 0 {
				return nil, errors.NewTypeError(n.Pos(), "primitive type %q cannot be nullable or parameterized", n.Name)
			}
			return prim, nil
		}
		if tp := findParam(scope, n.Name); tp != nil {
			return &ir.VariableType{Param: tp, Nullable: n.Nullable}, nil
		}
		if cls := p.findClass(n.Name); cls != nil {
			return p.resolveClassLike(scope, cls, n)
		}
		if tr := p.findTrait(n.Name); tr != nil {
			return p.resolveClassLike(scope, tr, n)
		}
		return nil, errors.NewScopeError(n.Pos(), "undefined type %q", n.Name)
	case *ast.ExistentialTypeExpr:
		captured := make([]*ir.TypeParameter, len(n.Captured))
		for i, decl := range n.Captured {
			tp, err := p.resolveTypeParameterDecl(scope, decl)
			if err != nil {
				return nil, err
			}
			captured[i] = tp
		}
		innerScope := append(append([]*ir.TypeParameter{}, scope...), captured...)
		inner, err := p.resolveTypeExpr(innerScope, n.Inner)
		if err != nil {
			return nil, err
		}
		return &ir.ExistentialType{Captured: captured, Inner: inner}, nil
	default:
		return nil, errors.NewTypeError(t.Pos(), "unrecognized type expression form")
	}
}

func (p *Pass) resolveClassLike(scope []*ir.TypeParameter, def ir.ClassLike, n *ast.NamedTypeExpr) (ir.Type, error) {
	args := make([]ir.Type, len(n.Args))
	for i, a := range n.Args {
		at, err := p.resolveTypeExpr(scope, a)
		if err != nil {
			return nil, err
		}
		args[i] = at
	}
	ct, err := ir.NewClassType(def, args, n.Nullable)
	if err != nil {
		return nil, errors.NewTypeError(n.Pos(), "%s", err)
	}
	return ct, nil
}

func (p *Pass) resolveTypeParameterDecl(scope []*ir.TypeParameter, decl *ast.TypeParameterDecl) (*ir.TypeParameter, error) {
	var upper ir.Type = &ir.ClassType{Def: p.Lattice.Root}
	if decl.UpperBound != nil {
		t, err := p.resolveTypeExpr(scope, decl.UpperBound)
		if err != nil {
			return nil, err
		}
		upper = t
	}
	var lower ir.Type = p.Lattice.NothingType()
	if decl.LowerBound != nil {
		t, err := p.resolveTypeExpr(scope, decl.LowerBound)
		if err != nil {
			return nil, err
		}
		lower = t
	}
	return &ir.TypeParameter{
		Name:       ident.New(decl.Name),
		UpperBound: upper,
		LowerBound: lower,
		Variance:   varianceOf(decl.Variance),
		Pos:        decl.Pos(),
	}, nil
}

func varianceOf(m ast.VarianceMark) ir.Variance {
	switch m {
	case ast.VarianceCovariant:
		return ir.Covariant
	case ast.VarianceContravariant:
		return ir.Contravariant
	default:
		return ir.Invariant
	}
}

func (p *Pass) findTrait(name string) *ir.Trait {
	for _, t := range p.Package.Traits {
		if t.Name.Short() == name {
			return t
		}
	}
	return nil
}
