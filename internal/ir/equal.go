package ir

// StructuralEqual is deep structural equality "up to argument invariance"
// (spec §4.1 rule "Reflexivity"). It is the syntactic notion of sameness;
// Equivalent (in subtype.go) is the semantic, mutual-subtype notion spec
// §4.1 calls Equivalence and uses for invariant type-argument positions.
func StructuralEqual(a, b Type) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case Primitive:
		bv := b.(Primitive)
		return av.P == bv.P
	case *ClassType:
		bv, ok := b.(*ClassType)
		if !ok || av.Def != bv.Def || av.Nullable != bv.Nullable || len(av.Arguments) != len(bv.Arguments) {
			return false
		}
		for i := range av.Arguments {
			if !StructuralEqual(av.Arguments[i], bv.Arguments[i]) {
				return false
			}
		}
		return true
	case *VariableType:
		bv, ok := b.(*VariableType)
		return ok && av.Param == bv.Param && av.Nullable == bv.Nullable
	case *ExistentialType:
		bv, ok := b.(*ExistentialType)
		if !ok || len(av.Captured) != len(bv.Captured) {
			return false
		}
		renamed := renameCaptured(bv, bv.Captured, av.Captured)
		for i := range av.Captured {
			if !boundsEqual(av.Captured[i], renamed.Captured[i]) {
				return false
			}
		}
		return StructuralEqual(av.Inner, renamed.Inner)
	case noType:
		_, ok := b.(noType)
		return ok
	default:
		return false
	}
}

func boundsEqual(a, b *TypeParameter) bool {
	return a.Variance == b.Variance && StructuralEqual(a.UpperBound, b.UpperBound) && StructuralEqual(a.LowerBound, b.LowerBound)
}

// renameCaptured substitutes from's captured parameters with to's in e's
// inner type, for alpha-equivalence checks (spec §8 "Existential
// equivalence under α-renaming").
func renameCaptured(e *ExistentialType, from, to []*TypeParameter) *ExistentialType {
	args := make([]Type, len(to))
	for i, p := range to {
		args[i] = &VariableType{Param: p}
	}
	inner := Substitute(e.Inner, from, args)
	return &ExistentialType{Captured: to, Inner: inner}
}
