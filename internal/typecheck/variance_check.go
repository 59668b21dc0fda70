package typecheck

import (
	"github.com/cwbudde/go-typecore/internal/errors"
	"github.com/cwbudde/go-typecore/internal/flags"
	"github.com/cwbudde/go-typecore/internal/ir"
	"github.com/cwbudde/go-typecore/internal/source"
)

// checkVariance enforces spec §4.5's position table over every member of
// cls that mentions one of cls's own type parameters: val fields in +
// position, var fields in 0 position, method parameters in − position,
// method returns in + position, constructor parameters always allowed,
// and supertype argument positions composing through declared variance.
func (p *Pass) checkVariance(cls *ir.Class) error {
	for _, tp := range cls.TypeParameters {
		for _, f := range cls.Fields {
			pos := ir.PosCovariant
			if f.IsVar() {
				pos = ir.PosInvariant
			}
			if err := p.walkVariance(f.Pos, tp, f.Type, pos, f.Name.String()); err != nil {
				return err
			}
		}
		for _, m := range cls.Methods {
			if m.Flags.Has(flags.Static) {
				continue
			}
			for _, param := range m.NonReceiverParameters() {
				if err := p.walkVariance(m.Pos, tp, param, ir.PosContravariant, m.Name.String()+" parameter"); err != nil {
					return err
				}
			}
			if err := p.walkVariance(m.Pos, tp, m.ReturnType, ir.PosCovariant, m.Name.String()+" return type"); err != nil {
				return err
			}
		}
		// constructor parameters are exempt: a constructor only runs at
		// construction time, never after, so it never exposes tp through
		// a value that survives the call (spec §4.5 "constructor
		// parameter always allowed").
		for _, st := range cls.Supertypes {
			if err := p.walkVariance(cls.Pos, tp, st, ir.PosCovariant, "supertype list"); err != nil {
				return err
			}
		}
	}
	return nil
}

// walkVariance walks t looking for uses of tp, checking each occurrence
// against the accumulated Position via ir.Compose (spec §4.5 "Compose").
func (p *Pass) walkVariance(pos source.Position, tp *ir.TypeParameter, t ir.Type, at ir.Position, context string) error {
	switch v := t.(type) {
	case *ir.VariableType:
		if v.Param == tp && !at.Allows(tp.Variance) {
			return &errors.TypeError{Located: errors.Located{
				Pos:     pos,
				Message: context + ": type parameter " + tp.Name.String() + " used in a position variance " + tp.Variance.String() + " does not allow",
			}}
		}
		return nil
	case *ir.ClassType:
		for i, arg := range v.Arguments {
			paramVariance := ir.Invariant
			if i < len(v.Def.TypeParams()) {
				paramVariance = v.Def.TypeParams()[i].Variance
			}
			inner := ir.Compose(at, ir.FromVariance(paramVariance))
			if err := p.walkVariance(pos, tp, arg, inner, context); err != nil {
				return err
			}
		}
		return nil
	case *ir.ExistentialType:
		if v.Captures(tp) {
			return nil
		}
		return p.walkVariance(pos, tp, v.Inner, at, context)
	default:
		return nil
	}
}
