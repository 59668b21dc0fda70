package typecheck

import (
	"github.com/cwbudde/go-typecore/internal/errors"
	"github.com/cwbudde/go-typecore/internal/flags"
	"github.com/cwbudde/go-typecore/internal/ident"
	"github.com/cwbudde/go-typecore/internal/ir"
)

// resolveOverrides populates Overrides on every method of cls and checks
// the override-modifier discipline (spec §4.4 "Override resolution",
// §9's broken-override resolution).
func (p *Pass) resolveOverrides(cls *ir.Class) error {
	for _, m := range cls.Methods {
		overrides, err := p.overriddenBy(cls, m)
		if err != nil {
			return err
		}
		m.Overrides = overrides

		if m.Flags.Has(flags.Override) && len(overrides) == 0 {
			return &errors.InheritanceError{Located: errors.Located{
				Pos:     m.Pos,
				Message: m.Name.String() + ": marked override but overrides nothing in " + cls.Name.String(),
			}}
		}
		if len(overrides) > 0 && !m.Flags.Has(flags.Override) && !m.IsAbstract() {
			return &errors.InheritanceError{Located: errors.Located{
				Pos:     m.Pos,
				Message: m.Name.String() + ": overrides a supertype method but is missing the override modifier",
			}}
		}
	}
	return nil
}

// overriddenBy collects the definition ids of every supertype method m
// overrides: same short name, contravariant parameters, covariant return
// type, found by walking cls's direct supertype list (each already
// expressed in terms of cls's own type parameters, per Class.Supertypes'
// documented invariant).
//
// Spec §9 leaves open what happens when a method would override two
// supertype methods with mutually incompatible return types ("broken
// override"). This pass resolves it without needing the overridden
// return types to be comparable to each other: it requires m's own
// return type be a subtype of *every* overridden method's return type
// individually. Two incompatible supertype return types then simply both
// constrain m from below, the same way two upper bounds on a type
// parameter combine — if m's return type cannot satisfy both, the
// mismatched one fails its own subtype check and the class is rejected.
// See DESIGN.md.
func (p *Pass) overriddenBy(cls *ir.Class, m *ir.Function) ([]ident.DefinitionId, error) {
	mParams := m.NonReceiverParameters()
	var overrides []ident.DefinitionId

	for _, st := range cls.Supertypes {
		ct, ok := st.(*ir.ClassType)
		if !ok {
			continue
		}
		from := ct.Def.TypeParams()
		for _, sm := range ct.Def.MethodList() {
			if sm.Name.Short() != m.Name.Short() {
				continue
			}
			sParams := sm.NonReceiverParameters()
			if len(sParams) != len(mParams) {
				continue
			}

			ok := true
			for i, sp := range sParams {
				substituted := ir.Substitute(sp, from, ct.Arguments)
				if !ir.Subtype(substituted, mParams[i], p.Lattice) {
					ok = false
					break
				}
			}
			if !ok {
				continue
			}
			substReturn := ir.Substitute(sm.ReturnType, from, ct.Arguments)
			if !ir.Subtype(m.ReturnType, substReturn, p.Lattice) {
				return nil, &errors.InheritanceError{Located: errors.Located{
					Pos:     m.Pos,
					Message: m.Name.String() + ": return type is not a subtype of overridden method's return type in " + ct.Def.DefName().String(),
				}}
			}

			overrides = append(overrides, sm.Id)
		}
	}
	return overrides, nil
}
