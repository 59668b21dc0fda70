package typecheck

import (
	"github.com/cwbudde/go-typecore/internal/errors"
	"github.com/cwbudde/go-typecore/internal/ir"
	"github.com/cwbudde/go-typecore/internal/source"
)

// ensureFunctionType computes fn's declared surface type (parameter
// types, return type) on demand, guarding against cycles with the
// three-state marker (spec §4.4 "ensureTypeInfoForDefn"). A function
// annotated on every parameter and its return type never actually needs
// to recurse. One left unannotated on its return type has it inferred
// from its own body instead — synthesized here, under the same Visiting
// marker, so a function that calls itself (directly or through a cycle
// of other unannotated functions) before its return type is known hits
// the Visiting branch and is rejected as the recursive case spec §4.4
// means to reject, while a plain unannotated, non-recursive function
// (e.g. `def f = -12`) has its return type computed and cached here.
func (p *Pass) ensureFunctionType(fn *ir.Function) error {
	switch p.decl.get(fn) {
	case Done:
		return nil
	case Visiting:
		return &errors.TypeError{Located: errors.Located{
			Pos:     fn.Pos,
			Message: "type cycle detected while computing declared type of " + fn.Name.String(),
		}}
	}
	p.decl.set(fn, Visiting)

	for _, param := range fn.Parameters {
		if param == nil {
			return &errors.TypeError{Located: errors.Located{Pos: fn.Pos, Message: fn.Name.String() + ": missing parameter type"}}
		}
	}

	if fn.ReturnType == nil {
		if fn.Body == nil {
			return &errors.TypeError{Located: errors.Located{
				Pos:     fn.Pos,
				Message: fn.Name.String() + ": missing return type on abstract or native function",
			}}
		}
		inferred, err := p.inferReturnType(fn)
		if err != nil {
			return err
		}
		fn.ReturnType = inferred
	}

	p.decl.set(fn, Done)
	return nil
}

// ensureClassType checks cls's declared supertypes and ensures the
// declared types of its methods and constructors. It does not compute or
// linearize the supertype list: scope analysis supplies it already
// populated (spec §6 "Inputs to the analyzer"), with `Supertypes[0]` the
// primary base as written.
func (p *Pass) ensureClassType(cls *ir.Class) error {
	switch p.decl.get(cls) {
	case Done:
		return nil
	case Visiting:
		return &errors.InheritanceError{Located: errors.Located{
			Pos:     cls.Pos,
			Message: "cycle in class hierarchy involving " + cls.Name.String(),
		}}
	}
	p.decl.set(cls, Visiting)

	if err := p.checkSupertypeList(cls.Name, cls.Pos, cls.Supertypes); err != nil {
		return err
	}

	for _, m := range cls.Methods {
		if err := p.ensureFunctionType(m); err != nil {
			return err
		}
	}
	if cls.PrimaryConstructor != nil {
		if err := p.ensureFunctionType(cls.PrimaryConstructor); err != nil {
			return err
		}
	}
	for _, c := range cls.Constructors {
		if err := p.ensureFunctionType(c); err != nil {
			return err
		}
	}

	p.decl.set(cls, Done)
	return nil
}

func (p *Pass) ensureTraitType(tr *ir.Trait) error {
	switch p.decl.get(tr) {
	case Done:
		return nil
	case Visiting:
		return &errors.InheritanceError{Located: errors.Located{
			Pos:     tr.Pos,
			Message: "cycle in trait hierarchy involving " + tr.Name.String(),
		}}
	}
	p.decl.set(tr, Visiting)

	if err := p.checkSupertypeList(tr.Name, tr.Pos, tr.Supertypes); err != nil {
		return err
	}
	for _, m := range tr.Methods {
		if err := p.ensureFunctionType(m); err != nil {
			return err
		}
	}

	p.decl.set(tr, Done)
	return nil
}

// checkSupertypeList enforces the nullability/forbidden-supertype rule:
// a supertype must not itself be nullable (spec §7 InheritanceError
// "nullable or otherwise forbidden supertype").
func (p *Pass) checkSupertypeList(name interface{ String() string }, pos source.Position, supers []ir.Type) error {
	for _, s := range supers {
		ct, ok := s.(*ir.ClassType)
		if !ok {
			continue
		}
		if ct.Nullable {
			return &errors.InheritanceError{Located: errors.Located{
				Pos:     pos,
				Message: name.String() + ": nullable supertype is forbidden",
			}}
		}
	}
	return nil
}
