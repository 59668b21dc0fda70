package ir

import "github.com/cwbudde/go-typecore/internal/ident"

// Lub computes the least upper bound of a and b under Subtype (spec §4.3
// "least upper bound (lub / combine)"): a symmetric, commutative join.
func Lub(a, b Type, lat *Lattice) Type {
	if StructuralEqual(a, b) {
		return a
	}
	if lat.isNothingType(a) {
		return b
	}
	if lat.isNothingType(b) {
		return a
	}

	nullable := isNullable(a) || isNullable(b)
	if lat.isNullType(a) {
		return withNullable(b, true)
	}
	if lat.isNullType(b) {
		return withNullable(a, true)
	}

	ac, aIsClass := a.(*ClassType)
	bc, bIsClass := b.(*ClassType)
	if aIsClass && bIsClass {
		return withNullable(lubClassTypes(ac, bc, lat), nullable)
	}

	av, aIsVar := a.(*VariableType)
	bv, bIsVar := b.(*VariableType)
	if aIsVar && bIsVar {
		return withNullable(Lub(av.Param.UpperBound, bv.Param.UpperBound, lat), nullable)
	}
	if aIsVar {
		return withNullable(Lub(av.Param.UpperBound, b, lat), nullable)
	}
	if bIsVar {
		return withNullable(Lub(a, bv.Param.UpperBound, lat), nullable)
	}

	ae, aIsExist := a.(*ExistentialType)
	be, bIsExist := b.(*ExistentialType)
	if aIsExist || bIsExist {
		var innerA, innerB Type = a, b
		var captured []*TypeParameter
		if aIsExist {
			innerA = ae.Inner
			captured = append(captured, ae.Captured...)
		}
		if bIsExist {
			innerB = be.Inner
			captured = append(captured, be.Captured...)
		}
		joined := Lub(innerA, innerB, lat)
		if len(captured) == 0 {
			return joined
		}
		return &ExistentialType{Captured: captured, Inner: joined}
	}

	// Primitives of differing kind, or a primitive paired with a reference
	// type, have no lub narrower than the root.
	return &ClassType{Def: lat.Root, Nullable: nullable}
}

// Glb computes a greatest lower bound, used dually for contravariant
// type-argument positions during class lub (spec §4.3 "contravariant:
// argument-wise glb (dual)"). Narrowed to the cases combine needs: when
// one side is a subtype of the other, it is already the glb; otherwise
// Nothing is the only sound answer this algorithm computes.
func Glb(a, b Type, lat *Lattice) Type {
	if StructuralEqual(a, b) {
		return a
	}
	if Subtype(a, b, lat) {
		return a
	}
	if Subtype(b, a, lat) {
		return b
	}
	return lat.NothingType()
}

// lubClassTypes implements the class-type branch of combine: intersect
// supertype lists (self included) for the first common class in
// declaration order, then combine type arguments position-wise per that
// class's declared variance.
func lubClassTypes(a, b *ClassType, lat *Lattice) Type {
	bSupers := linearize(b.Def)
	bSet := make(map[ClassLike]bool, len(bSupers))
	for _, s := range bSupers {
		bSet[s] = true
	}
	var common ClassLike
	for _, s := range linearize(a.Def) {
		if bSet[s] {
			common = s
			break
		}
	}
	if common == nil {
		common = lat.Root
	}

	alignedA, okA := SubstituteForBase(a, common)
	alignedB, okB := SubstituteForBase(b, common)
	if !okA || !okB {
		return &ClassType{Def: lat.Root}
	}

	formals := common.TypeParams()
	args := make([]Type, len(formals))
	for i, formal := range formals {
		args[i] = combineArgument(formal.Variance, alignedA.Arguments[i], alignedB.Arguments[i], lat)
	}
	return &ClassType{Def: common, Arguments: args}
}

func combineArgument(v Variance, x, y Type, lat *Lattice) Type {
	switch v {
	case Covariant:
		return Lub(x, y, lat)
	case Contravariant:
		return Glb(x, y, lat)
	default:
		if StructuralEqual(x, y) {
			return x
		}
		// A fresh existential captures the joint position so neither side's
		// exact argument is lost (spec §4.3 "wrap both sides in a fresh
		// existential capturing that position").
		p := &TypeParameter{
			Name:       ident.New().WithSuffix(ident.SuffixExist),
			UpperBound: Lub(x, y, lat),
			LowerBound: Glb(x, y, lat),
		}
		return &ExistentialType{Captured: []*TypeParameter{p}, Inner: &VariableType{Param: p}}
	}
}

// linearize returns c and its transitive supertypes in declaration order,
// each appearing once (first occurrence wins), for class-lub's "first
// common supertype in declaration order" search.
func linearize(c ClassLike) []ClassLike {
	seen := map[ClassLike]bool{}
	var order []ClassLike
	var walk func(ClassLike)
	walk = func(cl ClassLike) {
		if seen[cl] {
			return
		}
		seen[cl] = true
		order = append(order, cl)
		for _, s := range cl.SupertypesList() {
			if sc, ok := s.(*ClassType); ok {
				walk(sc.Def)
			}
		}
	}
	walk(c)
	return order
}
