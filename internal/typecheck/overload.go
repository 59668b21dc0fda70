package typecheck

import (
	"github.com/cwbudde/go-typecore/internal/errors"
	"github.com/cwbudde/go-typecore/internal/flags"
	"github.com/cwbudde/go-typecore/internal/ir"
	"github.com/cwbudde/go-typecore/internal/source"
)

// callResult is the outcome of resolveCall: the chosen overload and its
// instantiated (post-substitution) parameter and return types.
type callResult struct {
	fn                 *ir.Function
	instantiatedParams []ir.Type
	instantiatedReturn ir.Type
}

type viableCandidate struct {
	fn     *ir.Function
	params []ir.Type
	ret    ir.Type
}

// resolveCall implements spec §4.4's call-site resolution: arity filter,
// type-argument inference, bounds check, subtype filter, specificity
// tie-break, static/instance compatibility.
//
// Step 2's inference (inferBindings) is structural parameter/argument
// matching rather than full bidirectional unification — the same
// documented simplification ir.inferExistentialWitnesses makes for
// existential-right subtyping (see DESIGN.md).
func (p *Pass) resolveCall(pos source.Position, candidates []*ir.Function, explicitTypeArgs []ir.Type, receiverType ir.Type, argTypes []ir.Type, hasReceiver bool) (*callResult, error) {
	var byArity []*ir.Function
	for _, fn := range candidates {
		if len(fn.NonReceiverParameters()) == len(argTypes) {
			byArity = append(byArity, fn)
		}
	}
	if len(byArity) == 0 {
		return nil, errors.NewTypeError(pos, "no overload accepts %d argument(s)", len(argTypes))
	}

	var viables []viableCandidate
outer:
	for _, fn := range byArity {
		if hasReceiver && fn.Flags.Has(flags.Static) {
			continue
		}

		bindings := map[*ir.TypeParameter]ir.Type{}
		if len(explicitTypeArgs) > 0 {
			if len(explicitTypeArgs) != len(fn.TypeParameters) {
				continue
			}
			for i, tp := range fn.TypeParameters {
				bindings[tp] = explicitTypeArgs[i]
			}
		} else {
			params := fn.NonReceiverParameters()
			for i, param := range params {
				inferBindings(param, argTypes[i], fn.TypeParameters, bindings)
			}
			for _, tp := range fn.TypeParameters {
				if _, ok := bindings[tp]; !ok {
					bindings[tp] = tp.UpperBound
				}
			}
		}

		from := make([]*ir.TypeParameter, len(fn.TypeParameters))
		args := make([]ir.Type, len(fn.TypeParameters))
		for i, tp := range fn.TypeParameters {
			from[i] = tp
			args[i] = bindings[tp]
		}

		for _, tp := range fn.TypeParameters {
			bound := bindings[tp]
			upper := ir.Substitute(tp.UpperBound, from, args)
			lower := ir.Substitute(tp.LowerBound, from, args)
			if !ir.Subtype(bound, upper, p.Lattice) || !ir.Subtype(lower, bound, p.Lattice) {
				continue outer
			}
		}

		params := fn.NonReceiverParameters()
		instantiated := make([]ir.Type, len(params))
		for i, param := range params {
			instantiated[i] = ir.Substitute(param, from, args)
			if !ir.Subtype(argTypes[i], instantiated[i], p.Lattice) {
				continue outer
			}
		}
		if hasReceiver && fn.IsMethod() {
			recvType := ir.Substitute(fn.ReceiverType(), from, args)
			if !ir.Subtype(receiverType, recvType, p.Lattice) {
				continue outer
			}
		}

		ret := ir.Substitute(fn.ReturnType, from, args)
		viables = append(viables, viableCandidate{fn: fn, params: instantiated, ret: ret})
	}

	if len(viables) == 0 {
		return nil, errors.NewTypeError(pos, "no overload matches the given argument types")
	}
	if len(viables) == 1 {
		v := viables[0]
		return &callResult{fn: v.fn, instantiatedParams: v.params, instantiatedReturn: v.ret}, nil
	}

	best := viables[0]
	for _, v := range viables[1:] {
		vOverBest := moreSpecific(v.params, best.params, p.Lattice)
		bestOverV := moreSpecific(best.params, v.params, p.Lattice)
		switch {
		case vOverBest && !bestOverV:
			best = v
		case bestOverV && !vOverBest:
			// best remains strictly more specific
		default:
			return nil, errors.NewTypeError(pos, "ambiguous call: more than one equally specific overload matches")
		}
	}
	return &callResult{fn: best.fn, instantiatedParams: best.params, instantiatedReturn: best.ret}, nil
}

// moreSpecific reports whether every parameter type in a is a subtype of
// the corresponding parameter type in b (spec §4.4 "specificity
// tie-break").
func moreSpecific(a, b []ir.Type, lat *ir.Lattice) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !ir.Subtype(a[i], b[i], lat) {
			return false
		}
	}
	return true
}

// inferBindings walks paramType/argType in lockstep, binding each target
// type parameter it finds in variable position to the corresponding
// structural piece of argType. The first binding found for a parameter
// wins; later occurrences are consistency-checked by the bounds/subtype
// steps that follow, not here.
func inferBindings(paramType, argType ir.Type, targets []*ir.TypeParameter, bindings map[*ir.TypeParameter]ir.Type) {
	switch pt := paramType.(type) {
	case *ir.VariableType:
		if isTarget(pt.Param, targets) {
			if _, ok := bindings[pt.Param]; !ok {
				bindings[pt.Param] = argType
			}
		}
	case *ir.ClassType:
		at, ok := argType.(*ir.ClassType)
		if !ok || at.Def != pt.Def {
			return
		}
		for i := range pt.Arguments {
			if i < len(at.Arguments) {
				inferBindings(pt.Arguments[i], at.Arguments[i], targets, bindings)
			}
		}
	}
}

func isTarget(tp *ir.TypeParameter, targets []*ir.TypeParameter) bool {
	for _, t := range targets {
		if t == tp {
			return true
		}
	}
	return false
}
