package ir

// Lattice bundles the two distinguished classes every subtype/lub judgment
// needs: the single root of the class hierarchy (spec §3 invariant 2: every
// class's supertypes list ends with the root) and the bottom "nothing"
// class (spec §4.1 rule "Nothing"). Passed explicitly rather than held in
// package-level state because each compilation owns its own root/nothing
// classes (possibly reloaded per package under test).
type Lattice struct {
	Root    ClassLike
	Nothing ClassLike
}

func (l *Lattice) isReferenceType(t Type) bool {
	switch t.Kind() {
	case KindClass, KindVariable, KindExistential:
		return true
	default:
		return false
	}
}

func (l *Lattice) isNothingType(t Type) bool {
	c, ok := t.(*ClassType)
	return ok && c.Def == l.Nothing && !c.Nullable
}

// IsNothingType is the exported form of isNothingType, for packages
// outside ir that need to classify a type against this lattice (e.g.
// the type analysis pass checking an if/while condition, spec §4.4).
func (l *Lattice) IsNothingType(t Type) bool { return l.isNothingType(t) }

func (l *Lattice) isNullType(t Type) bool {
	c, ok := t.(*ClassType)
	return ok && c.Def == l.Nothing && c.Nullable
}

// NothingType and NullType construct the two distinguished instances of
// the bottom class for this lattice.
func (l *Lattice) NothingType() *ClassType {
	return &ClassType{Def: l.Nothing, Nullable: false}
}

func (l *Lattice) NullType() *ClassType {
	return &ClassType{Def: l.Nothing, Nullable: true}
}

func isNullable(t Type) bool {
	switch v := t.(type) {
	case *ClassType:
		return v.Nullable
	case *VariableType:
		return v.Nullable
	default:
		return false
	}
}

// withNullable returns a copy of t with its Nullable flag set to n; t must
// be a ClassType or VariableType (spec invariant 4).
func withNullable(t Type, n bool) Type {
	switch v := t.(type) {
	case *ClassType:
		cp := *v
		cp.Nullable = n
		return &cp
	case *VariableType:
		cp := *v
		cp.Nullable = n
		return &cp
	default:
		return t
	}
}
