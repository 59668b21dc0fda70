// Package ir implements spec components C3 (IR Definitions) and C4 (IR
// Types) together. They are mutually recursive — a ClassType names the
// *Class it instantiates, and a Class's supertypes are themselves Types —
// which Go cannot express across two separate packages, so both live here,
// the way go/types keeps its Object and Type declarations in one package
// for the same reason.
package ir

import (
	"strings"

	"github.com/cwbudde/go-typecore/internal/ident"
)

// Kind tags the five-way sum that is a Type (spec §3 "Type algebra",
// GLOSSARY "the tagged variant exhaustively covers the five kinds").
type Kind uint8

const (
	KindPrimitive Kind = iota
	KindClass
	KindVariable
	KindExistential
	KindNoType
)

func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindClass:
		return "class"
	case KindVariable:
		return "variable"
	case KindExistential:
		return "existential"
	case KindNoType:
		return "notype"
	default:
		return "unknown"
	}
}

// Type is the common interface of all five kinds in the algebra.
type Type interface {
	Kind() Kind
	String() string
}

// ClassLike is implemented by both *Class and *Trait: the nominal
// definitions a ClassType can name. Both participate in the same subtype
// lattice and linearization machinery (spec §3 "Class"/"Trait").
type ClassLike interface {
	DefId() ident.DefinitionId
	DefName() ident.Name
	TypeParams() []*TypeParameter
	SupertypesList() []Type
	MethodList() []*Function
	IsTrait() bool
}

// --- Primitive -------------------------------------------------------------

// PrimitiveKind enumerates the value types of spec §3.
type PrimitiveKind uint8

const (
	Unit PrimitiveKind = iota
	Boolean
	I8
	I16
	I32
	I64
	F32
	F64
)

var primitiveNames = map[PrimitiveKind]string{
	Unit: "unit", Boolean: "boolean",
	I8: "i8", I16: "i16", I32: "i32", I64: "i64",
	F32: "f32", F64: "f64",
}

// Primitive is a value type: unit, boolean, or one of the sized integer/
// float kinds. Primitives are never nullable (spec invariant 4).
type Primitive struct {
	P PrimitiveKind
}

func (Primitive) Kind() Kind { return KindPrimitive }

func (p Primitive) String() string { return primitiveNames[p.P] }

// Singletons, constructed once and safely shared (Primitive has no
// pointer identity to worry about — it's a plain value).
var (
	UnitType    Type = Primitive{Unit}
	BooleanType Type = Primitive{Boolean}
	I8Type      Type = Primitive{I8}
	I16Type     Type = Primitive{I16}
	I32Type     Type = Primitive{I32}
	I64Type     Type = Primitive{I64}
	F32Type     Type = Primitive{F32}
	F64Type     Type = Primitive{F64}
)

// IntegerWidths and FloatWidths map bit-width suffixes to their primitive
// type, used by literal synthesis (spec §4.4 "Literals").
var IntegerWidths = map[int]Type{8: I8Type, 16: I16Type, 32: I32Type, 64: I64Type}
var FloatWidths = map[int]Type{32: F32Type, 64: F64Type}

// IsIntegral and IsFloating classify a Primitive.
func IsIntegral(p PrimitiveKind) bool {
	switch p {
	case I8, I16, I32, I64:
		return true
	default:
		return false
	}
}

func IsFloating(p PrimitiveKind) bool {
	return p == F32 || p == F64
}

// --- ClassType ---------------------------------------------------------

// ClassType is an instantiation of a Class or Trait with concrete type
// arguments, optionally nullable (spec §3). The bottom type (spec rule
// "Nothing") and the null type (spec rule "Null") are both represented as
// ClassType over the distinguished nothing class — non-nullable for
// Nothing, nullable for Null — rather than as separate sum cases; see
// DESIGN.md for why this keeps the algebra to the five kinds the GLOSSARY
// describes.
type ClassType struct {
	Def       ClassLike
	Arguments []Type
	Nullable  bool
}

func (*ClassType) Kind() Kind { return KindClass }

func (c *ClassType) String() string {
	var sb strings.Builder
	sb.WriteString(c.Def.DefName().Short())
	if len(c.Arguments) > 0 {
		sb.WriteString("[")
		for i, a := range c.Arguments {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(a.String())
		}
		sb.WriteString("]")
	}
	if c.Nullable {
		sb.WriteString("?")
	}
	return sb.String()
}

// NewClassType builds a ClassType, enforcing spec invariant 1 (arity must
// match the definition's type parameters).
func NewClassType(def ClassLike, args []Type, nullable bool) (*ClassType, error) {
	if len(args) != len(def.TypeParams()) {
		return nil, &ArityError{Def: def.DefName(), Want: len(def.TypeParams()), Got: len(args)}
	}
	return &ClassType{Def: def, Arguments: args, Nullable: nullable}, nil
}

// ArityError reports a type-argument count mismatch (spec invariant 1).
type ArityError struct {
	Def      ident.Name
	Want, Got int
}

func (e *ArityError) Error() string {
	return e.Def.String() + ": want " + itoa(e.Want) + " type argument(s), got " + itoa(e.Got)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var b []byte
	for n > 0 {
		b = append([]byte{byte('0' + n%10)}, b...)
		n /= 10
	}
	if neg {
		b = append([]byte{'-'}, b...)
	}
	return string(b)
}

// IsNothing reports whether c names the bottom-of-the-lattice class
// (spec §4.1 rule "Nothing") and is not nullable.
func (c *ClassType) IsNothing(nothing ClassLike) bool {
	return c.Def == nothing && !c.Nullable
}

// IsNull reports whether c is the null type: the bottom class, nullable
// (spec §4.1 rule "Null").
func (c *ClassType) IsNull(nothing ClassLike) bool {
	return c.Def == nothing && c.Nullable
}

// --- VariableType --------------------------------------------------------

// VariableType names a bound type parameter as a type, e.g. the `T` inside
// a generic method body.
type VariableType struct {
	Param    *TypeParameter
	Nullable bool
}

func (*VariableType) Kind() Kind { return KindVariable }

func (v *VariableType) String() string {
	if v.Nullable {
		return v.Param.Name.Short() + "?"
	}
	return v.Param.Name.Short()
}

// --- ExistentialType -------------------------------------------------------

// ExistentialType hides one or more captured type parameters inside an
// inner type: ∃X̄. T (spec §3, §4.1 rules 5–6, §9 "Existentials").
type ExistentialType struct {
	Captured []*TypeParameter
	Inner    Type
}

func (*ExistentialType) Kind() Kind { return KindExistential }

func (e *ExistentialType) String() string {
	var sb strings.Builder
	sb.WriteString("exists ")
	for i, p := range e.Captured {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.Name.Short())
	}
	sb.WriteString(". ")
	sb.WriteString(e.Inner.String())
	return sb.String()
}

// Captures reports whether p is one of e's captured parameters.
func (e *ExistentialType) Captures(p *TypeParameter) bool {
	for _, c := range e.Captured {
		if c == p {
			return true
		}
	}
	return false
}

// --- NoType ------------------------------------------------------------

type noType struct{}

func (noType) Kind() Kind    { return KindNoType }
func (noType) String() string { return "<notype>" }

// NoTypeValue is the type of `throw` and `return` expressions (spec §4.4).
var NoTypeValue Type = noType{}

// IsNoType reports whether t is the NoType singleton.
func IsNoType(t Type) bool {
	_, ok := t.(noType)
	return ok
}
