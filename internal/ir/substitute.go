package ir

// Substitute replaces each occurrence of a parameter in from with the
// corresponding type in args throughout t (spec §4.2 "Substitution").
// Nullability on the substituted VariableType is absorbed into the
// replacement per spec invariant 4 (a substituted non-nullable variable
// occurring in nullable position yields a nullable result).
func Substitute(t Type, from []*TypeParameter, args []Type) Type {
	switch v := t.(type) {
	case Primitive:
		return v
	case *ClassType:
		newArgs := make([]Type, len(v.Arguments))
		for i, a := range v.Arguments {
			newArgs[i] = Substitute(a, from, args)
		}
		return &ClassType{Def: v.Def, Arguments: newArgs, Nullable: v.Nullable}
	case *VariableType:
		for i, p := range from {
			if p == v.Param {
				return withNullable(args[i], v.Nullable || isNullable(args[i]))
			}
		}
		return v
	case *ExistentialType:
		if capturesAny(v, from) {
			// Captured parameters shadow `from`; spec requires the binders be
			// distinct so this path is skeletal but kept total rather than
			// panicking on ill-formed input.
			return v
		}
		newCaptured := make([]*TypeParameter, len(v.Captured))
		for i, p := range v.Captured {
			newCaptured[i] = &TypeParameter{
				Id: p.Id, Name: p.Name, Variance: p.Variance, Flags: p.Flags, Pos: p.Pos,
				UpperBound: Substitute(p.UpperBound, from, args),
				LowerBound: Substitute(p.LowerBound, from, args),
			}
		}
		inner := Substitute(v.Inner, from, args)
		for i := range v.Captured {
			inner = Substitute(inner, []*TypeParameter{v.Captured[i]}, []Type{&VariableType{Param: newCaptured[i]}})
		}
		return &ExistentialType{Captured: newCaptured, Inner: inner}
	default:
		return t
	}
}

func capturesAny(e *ExistentialType, ps []*TypeParameter) bool {
	for _, p := range ps {
		if e.Captures(p) {
			return true
		}
	}
	return false
}

// SubstituteForBase finds base among cls's linearized supertypes and
// returns base's type arguments translated into cls's own type-parameter
// space: substituting cls's formal parameters with the ClassType's actual
// arguments throughout the matching supertype entry's arguments (spec
// §4.2 "effective class type", used to walk the supertype chain during
// ClassType-vs-ClassType subtyping and member lookup).
func SubstituteForBase(ct *ClassType, base ClassLike) (*ClassType, bool) {
	if ct.Def == base {
		return ct, true
	}
	formals := ct.Def.TypeParams()
	for _, super := range ct.Def.SupertypesList() {
		superClass, ok := super.(*ClassType)
		if !ok {
			continue
		}
		instantiated := Substitute(superClass, formals, ct.Arguments).(*ClassType)
		if instantiated.Def == base {
			return instantiated, true
		}
		if found, ok := SubstituteForBase(instantiated, base); ok {
			return found, true
		}
	}
	return nil, false
}
