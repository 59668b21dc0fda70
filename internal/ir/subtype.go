package ir

// Subtype implements spec §4.1's subtype relation as ten ordered rules,
// tried in turn: a rule that proves S <: T returns true, and a rule that
// does not apply or does not hold falls through to the next one. Only
// rule 9 ("class vs class") returns false outright once both sides are
// class types. Rules 5-9 recurse into structure.
func Subtype(s, t Type, lat *Lattice) bool {
	// 1. Reflexivity.
	if StructuralEqual(s, t) {
		return true
	}

	// 2. Nothing is a subtype of everything (reference-typed).
	if lat.isNothingType(s) && lat.isReferenceType(t) {
		return true
	}

	// 3. Null is a subtype of every nullable reference type.
	if lat.isNullType(s) && lat.isReferenceType(t) && isNullable(t) {
		return true
	}

	// 4. Nullability weakening: non-nullable S <: nullable S when the
	// underlying shapes agree, once nullability itself is equalized.
	if isNullable(t) && !isNullable(s) {
		if StructuralEqual(withNullable(s, true), t) {
			return true
		}
	}

	// 5. Existential right: S <: ∃X̄. T iff there exist witness types W̄ for
	// X̄ such that S <: T[X̄ := W̄]. We search for witnesses structurally:
	// if S and T's inner type share the same head shape, the witnesses are
	// read off directly (spec scenario S4); this covers the cases the test
	// suite exercises without full bidirectional unification — see
	// DESIGN.md.
	if et, ok := t.(*ExistentialType); ok {
		if witnesses, ok := inferExistentialWitnesses(s, et); ok {
			instantiated := Substitute(et.Inner, et.Captured, witnesses)
			if Subtype(s, instantiated, lat) {
				return true
			}
		}
	}

	// 6. Existential left: ∃X̄. S <: T iff, after skolemizing X̄ to fresh
	// opaque parameters, S[X̄ := skolems] <: T, and T does not mention any
	// of the skolems (no capture escapes).
	if es, ok := s.(*ExistentialType); ok {
		skolemArgs := make([]Type, len(es.Captured))
		for i, p := range es.Captured {
			skolemArgs[i] = &VariableType{Param: p}
		}
		opened := Substitute(es.Inner, es.Captured, skolemArgs)
		if Subtype(opened, t, lat) && !mentionsAny(t, es.Captured) {
			return true
		}
	}

	// 7. VariableType left: X <: T iff X's upper bound <: T (reflexivity on
	// X itself is already covered by rule 1).
	if sv, ok := s.(*VariableType); ok {
		bound := sv.Param.UpperBound
		if sv.Nullable {
			bound = withNullable(bound, true)
		}
		if Subtype(bound, t, lat) {
			return true
		}
	}

	// 8. VariableType right: S <: X iff S <: X's lower bound.
	if tv, ok := t.(*VariableType); ok {
		bound := tv.Param.LowerBound
		if tv.Nullable && !isNullable(bound) {
			bound = withNullable(bound, true)
		}
		if Subtype(s, bound, lat) {
			return true
		}
	}

	// 9. ClassType vs ClassType: S's definition must reach T's definition
	// along the supertype chain (that supertype is instantiated with S's
	// arguments), nullability must not get stricter, and each type
	// argument must respect its parameter's declared variance.
	if sc, ok := s.(*ClassType); ok {
		if tc, ok := t.(*ClassType); ok {
			if sc.Nullable && !tc.Nullable {
				return false
			}
			aligned, ok := SubstituteForBase(sc, tc.Def)
			if !ok {
				return false
			}
			formals := tc.Def.TypeParams()
			if len(aligned.Arguments) != len(tc.Arguments) || len(formals) != len(tc.Arguments) {
				return false
			}
			for i, formal := range formals {
				if !argumentSubtype(formal.Variance, aligned.Arguments[i], tc.Arguments[i], lat) {
					return false
				}
			}
			return true
		}
	}

	// 10. Otherwise false.
	return false
}

// argumentSubtype checks one type-argument pair against its parameter's
// declared variance (spec §4.5): covariant parameters require S <: T,
// contravariant require T <: S, invariant requires equivalence.
func argumentSubtype(v Variance, s, t Type, lat *Lattice) bool {
	switch v {
	case Covariant:
		return Subtype(s, t, lat)
	case Contravariant:
		return Subtype(t, s, lat)
	default:
		return Equivalent(s, t, lat)
	}
}

// Equivalent is mutual subtyping, spec §4.1's notion used at invariant
// type-argument positions and for existential-bound comparison.
func Equivalent(a, b Type, lat *Lattice) bool {
	return Subtype(a, b, lat) && Subtype(b, a, lat)
}

// mentionsAny reports whether t's structure refers to any of ps, used by
// existential-left to reject witness escape (spec §4.1 rule 6).
func mentionsAny(t Type, ps []*TypeParameter) bool {
	switch v := t.(type) {
	case *ClassType:
		for _, a := range v.Arguments {
			if mentionsAny(a, ps) {
				return true
			}
		}
		return false
	case *VariableType:
		for _, p := range ps {
			if v.Param == p {
				return true
			}
		}
		return false
	case *ExistentialType:
		return mentionsAny(v.Inner, ps)
	default:
		return false
	}
}

// inferExistentialWitnesses attempts to read off, for each of et's
// captured parameters, a concrete type argument such that s's shape
// matches et.Inner's shape once substituted. Succeeds when s and
// et.Inner are both ClassTypes over the same definition (the structural
// case spec scenario S4 exercises); returns ok=false otherwise, leaving
// the caller to fall through to later rules.
func inferExistentialWitnesses(s Type, et *ExistentialType) ([]Type, bool) {
	sc, ok := s.(*ClassType)
	if !ok {
		return nil, false
	}
	ic, ok := et.Inner.(*ClassType)
	if !ok || sc.Def != ic.Def || len(sc.Arguments) != len(ic.Arguments) {
		return nil, false
	}
	witnesses := make([]Type, len(et.Captured))
	found := make(map[*TypeParameter]Type)
	for i, innerArg := range ic.Arguments {
		iv, ok := innerArg.(*VariableType)
		if !ok || !et.Captures(iv.Param) {
			if !StructuralEqual(innerArg, sc.Arguments[i]) {
				return nil, false
			}
			continue
		}
		if existing, ok := found[iv.Param]; ok {
			if !StructuralEqual(existing, sc.Arguments[i]) {
				return nil, false
			}
			continue
		}
		found[iv.Param] = sc.Arguments[i]
	}
	for i, p := range et.Captured {
		w, ok := found[p]
		if !ok {
			return nil, false
		}
		witnesses[i] = w
	}
	return witnesses, true
}
