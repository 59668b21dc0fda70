// Package ast defines the minimal well-formed AST the type analysis
// pass consumes (spec's [ADD] §4.0 "AST surface"). Lexing, parsing, and
// AST construction are out of scope for this repository; this tree is
// assumed already built and scope-resolved by an upstream front end, the
// way internal/ast/ast.go in the teacher defines nodes built by its own
// parser — here the same node-interface idiom is kept, generalized past
// DWS's begin/end-block Pascal syntax to generics, existentials, and
// pattern matching.
package ast

import "github.com/cwbudde/go-typecore/internal/source"

// Node is the root interface implemented by every AST node.
type Node interface {
	Pos() source.Position
}

// Expression is any node that synthesizes a type (spec §4.4 "Expression
// synthesis").
type Expression interface {
	Node
	exprNode()
}

// Statement is any node appearing in a block's statement list. Every
// Expression is also a Statement (spec: "Statements are expressions").
type Statement interface {
	Node
	stmtNode()
}

// Pattern is any node appearing in pattern position (spec §4.4 "Pattern
// typing").
type Pattern interface {
	Node
	patternNode()
}

// base embeds the common position field; every concrete node embeds it.
type base struct {
	Position source.Position
}

func (b base) Pos() source.Position { return b.Position }

// --- top-level declarations -------------------------------------------

// Module is the root node: a sequence of top-level declarations.
type Module struct {
	base
	Declarations []Declaration
}

// Declaration is any top-level or nested defining node.
type Declaration interface {
	Node
	declNode()
}

// ClassDecl declares a class (spec §3 "Class").
type ClassDecl struct {
	base
	Name           string
	TypeParameters []*TypeParameterDecl
	Supertypes     []TypeExpr
	Fields         []*FieldDecl
	Constructors   []*FunctionDecl
	Methods        []*FunctionDecl
	IsAbstract     bool
}

func (*ClassDecl) declNode() {}

// TraitDecl declares a trait (spec §3 "Trait").
type TraitDecl struct {
	base
	Name           string
	TypeParameters []*TypeParameterDecl
	Supertypes     []TypeExpr
	Methods        []*FunctionDecl
}

func (*TraitDecl) declNode() {}

// FunctionDecl declares a function, method, or constructor.
type FunctionDecl struct {
	base
	Name           string
	TypeParameters []*TypeParameterDecl
	Parameters     []*ParameterDecl
	ReturnType     TypeExpr // nil if inferred/omitted
	Body           *Block   // nil for abstract/native functions
	IsStatic       bool
	IsAbstract     bool
	IsOverride     bool
	IsConstructor  bool
}

func (*FunctionDecl) declNode() {}

// ParameterDecl declares one function parameter.
type ParameterDecl struct {
	base
	Name string
	Type TypeExpr
}

// FieldDecl declares a class field.
type FieldDecl struct {
	base
	Name    string
	Type    TypeExpr
	Mutable bool // var vs val
}

func (*FieldDecl) declNode() {}

// GlobalDecl declares a package-level field.
type GlobalDecl struct {
	base
	Name    string
	Type    TypeExpr
	Mutable bool
	Init    Expression
}

func (*GlobalDecl) declNode() {}

// TypeParameterDecl declares a generic parameter with bounds and variance.
type TypeParameterDecl struct {
	base
	Name       string
	UpperBound TypeExpr // nil defaults to root
	LowerBound TypeExpr // nil defaults to Nothing
	Variance   VarianceMark
}

// VarianceMark spells a declared variance in source syntax terms.
type VarianceMark uint8

const (
	VarianceInvariant VarianceMark = iota
	VarianceCovariant
	VarianceContravariant
)

// TypeExpr is a reference to a type as written in source: a class name
// with optional type arguments and a nullability marker, a type
// parameter name, or an existential quantifier. Resolution to an
// ir.Type happens during body checking; this node only carries the
// syntactic shape.
type TypeExpr interface {
	Node
	typeExprNode()
}

// NamedTypeExpr names a class/trait/type-parameter by source identifier,
// with optional type arguments.
type NamedTypeExpr struct {
	base
	Name     string
	Args     []TypeExpr
	Nullable bool
}

func (*NamedTypeExpr) typeExprNode() {}

// ExistentialTypeExpr is `exists X, Y. T` as written.
type ExistentialTypeExpr struct {
	base
	Captured []*TypeParameterDecl
	Inner    TypeExpr
}

func (*ExistentialTypeExpr) typeExprNode() {}
