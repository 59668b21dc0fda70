package ir

// EffectiveClassType collapses a nest of existentials and class-bounded
// variable types into a concrete ClassType plus the set of existential
// parameters captured along the way (spec §4.2 "effectiveClassType"),
// used by member lookup through an existential and by pattern matching.
func EffectiveClassType(t Type, lat *Lattice) (*ClassType, []*TypeParameter) {
	var captured []*TypeParameter
	for {
		switch v := t.(type) {
		case *ClassType:
			return v, captured
		case *VariableType:
			t = v.Param.UpperBound
			if v.Nullable {
				t = withNullable(t, true)
			}
		case *ExistentialType:
			captured = append(captured, v.Captured...)
			t = v.Inner
		default:
			return nil, captured
		}
	}
}
