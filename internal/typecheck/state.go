// Package typecheck implements component C5, the Type Analysis Pass: the
// three-layer design of spec §4.4 (on-demand declaration typing with
// cycle detection, recursive body checking, and post-pass obligations),
// plus the call-site resolution, override resolution, pattern typing,
// and variance-discipline algorithms that design depends on.
//
// The overall shape — a Pass over a Package recording its results in
// the compileinfo.Info side tables, driven by Pass.Run — is grounded on the
// teacher's internal/semantic Pass/PassManager/PassContext architecture,
// generalized from DWS's fixed multi-pass pipeline (declaration,
// resolution, validation, contract passes) to this spec's single
// recursive on-demand pass with three-state memoization.
package typecheck

// VisitState is the three-state cycle-detection marker spec §4.4 and §5
// require on every definition: unvisited, visiting, done. Revisiting a
// visiting definition signals a type cycle.
type VisitState uint8

const (
	Unvisited VisitState = iota
	Visiting
	Done
)

// declState tracks, per function, class or trait, whether its declared
// surface type (parameter types, return type, supertypes) has been
// computed yet (spec §4.4 "Declaration type info").
type declState struct {
	states map[any]VisitState
}

func newDeclState() *declState {
	return &declState{states: map[any]VisitState{}}
}

func (d *declState) get(def any) VisitState {
	return d.states[def]
}

func (d *declState) set(def any, s VisitState) {
	d.states[def] = s
}

// defKey identifies the kinds of definitions ensureFunctionType,
// ensureClassType and ensureTraitType track in declState: *ir.Function,
// *ir.Class, *ir.Trait. Fields and globals are not tracked. Any of these
// pointer values is already a distinct, comparable map key.
type defKey = any
