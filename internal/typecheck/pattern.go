package typecheck

import (
	"github.com/cwbudde/go-typecore/internal/ast"
	"github.com/cwbudde/go-typecore/internal/errors"
	"github.com/cwbudde/go-typecore/internal/ir"
)

// bindPattern types pat against scrutinee, binding any names it
// introduces into ctx.locals (spec §4.4 "Pattern typing"). Unary/binary
// patterns lower to DestructurePattern the way the spec describes; the
// rest type directly.
func (p *Pass) bindPattern(ctx *funcCtx, pat ast.Pattern, scrutinee ir.Type) error {
	switch n := pat.(type) {
	case *ast.VariablePattern:
		t := scrutinee
		if n.Annotation != nil {
			annotated, err := p.resolveTypeExpr(p.inScopeParams(ctx), n.Annotation)
			if err != nil {
				return err
			}
			if !p.isStaticallyTestable(scrutinee, annotated) {
				return errors.NewTypeError(n.Pos(), "%s is not statically testable against %s", annotated, scrutinee)
			}
			t = annotated
		}
		ctx.locals[n.Name] = &ir.Variable{Name: identName(n.Name), Type: t, Kind: ir.LocalVar, Pos: n.Pos()}
		return nil

	case *ast.BlankPattern:
		if n.Annotation != nil {
			annotated, err := p.resolveTypeExpr(p.inScopeParams(ctx), n.Annotation)
			if err != nil {
				return err
			}
			if !p.isStaticallyTestable(scrutinee, annotated) {
				return errors.NewTypeError(n.Pos(), "%s is not statically testable against %s", annotated, scrutinee)
			}
		}
		return nil

	case *ast.LiteralPattern:
		litType, err := p.synthExpr(ctx, n.Value)
		if err != nil {
			return err
		}
		if !ir.Equivalent(litType, scrutinee, p.Lattice) && !ir.Subtype(litType, scrutinee, p.Lattice) {
			return errors.NewTypeError(n.Pos(), "literal pattern of type %s cannot match scrutinee %s", litType, scrutinee)
		}
		return nil

	case *ast.ValuePattern:
		local, ok := ctx.locals[n.Name]
		if !ok {
			return errors.NewScopeError(n.Pos(), "undefined binding %q in value pattern", n.Name)
		}
		if !ir.Equivalent(local.Type, scrutinee, p.Lattice) {
			return errors.NewTypeError(n.Pos(), "value pattern %q of type %s does not match scrutinee %s", n.Name, local.Type, scrutinee)
		}
		return nil

	case *ast.TuplePattern:
		return errors.NewTypeError(n.Pos(), "tuple patterns require a standard-library tuple class family not provided by this package")

	case *ast.DestructurePattern:
		return p.bindDestructurePattern(ctx, n, scrutinee)

	case *ast.UnaryPattern:
		return p.bindDestructurePattern(ctx, &ast.DestructurePattern{MatcherName: n.Op, Elements: []ast.Pattern{n.Operand}}, scrutinee)

	case *ast.BinaryPattern:
		return p.bindDestructurePattern(ctx, &ast.DestructurePattern{MatcherName: n.Op, Elements: []ast.Pattern{n.Left, n.Right}}, scrutinee)

	default:
		return errors.NewTypeError(pat.Pos(), "unrecognized pattern form")
	}
}

// bindDestructurePattern resolves MatcherName against the scrutinee's
// effective class as a zero-argument extractor method, whose return
// type is expected to be a one-type-argument class wrapping either a
// single value (one element) or a tuple-shaped value (more than one
// element, via TuplePattern's not-yet-available tuple family).
//
// The extractor protocol in full (spec's "pattern matching with extractor
// protocols") threads an Option/Some/None family through the class
// lattice; this package does not define that standard-library family
// (see Non-goals), so the check here is structural: the matcher must
// return a one-argument class type, and when there is exactly one
// captured element that argument becomes the nested pattern's scrutinee.
// Multi-element destructuring additionally requires the tuple family and
// is rejected with the same message TuplePattern uses.
func (p *Pass) bindDestructurePattern(ctx *funcCtx, n *ast.DestructurePattern, scrutinee ir.Type) error {
	candidates := p.operatorCandidates(scrutinee, n.MatcherName)
	if len(candidates) == 0 {
		return errors.NewScopeError(n.Pos(), "no extractor named %q for %s", n.MatcherName, scrutinee)
	}
	result, err := p.resolveCall(n.Pos(), candidates, nil, scrutinee, nil, true)
	if err != nil {
		return err
	}
	ct, ok := result.instantiatedReturn.(*ir.ClassType)
	if !ok || len(ct.Arguments) != 1 {
		return errors.NewTypeError(n.Pos(), "extractor %q must return a single-argument matcher class", n.MatcherName)
	}
	if len(n.Elements) != 1 {
		return errors.NewTypeError(n.Pos(), "multi-element destructuring requires a standard-library tuple class family not provided by this package")
	}
	return p.bindPattern(ctx, n.Elements[0], ct.Arguments[0])
}

// isStaticallyTestable implements spec §4.4's instanceof-safety check for
// an annotated variable/blank pattern: the annotation's effective class
// arguments must equal the scrutinee's effective-class arguments, be
// captured by a blank/existential, or the annotation must be erasable to
// Nothing or the root class.
func (p *Pass) isStaticallyTestable(scrutinee, annotated ir.Type) bool {
	if p.Lattice.IsNothingType(annotated) {
		return true
	}
	actualClass, actualCaptured := ir.EffectiveClassType(annotated, p.Lattice)
	if actualClass != nil && actualClass.Def == p.Lattice.Root {
		return true
	}
	scrutineeClass, scrutineeCaptured := ir.EffectiveClassType(scrutinee, p.Lattice)
	if actualClass == nil || scrutineeClass == nil {
		return false
	}
	for i, arg := range actualClass.Arguments {
		if i < len(scrutineeClass.Arguments) && ir.Equivalent(arg, scrutineeClass.Arguments[i], p.Lattice) {
			continue
		}
		if vt, ok := arg.(*ir.VariableType); ok && (containsParam(actualCaptured, vt.Param) || containsParam(scrutineeCaptured, vt.Param)) {
			continue
		}
		return false
	}
	return true
}

func containsParam(ps []*ir.TypeParameter, p *ir.TypeParameter) bool {
	for _, x := range ps {
		if x == p {
			return true
		}
	}
	return false
}
