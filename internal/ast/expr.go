package ast

// --- literals ------------------------------------------------------------

// IntegerLiteral carries an optional bit-width suffix (spec §4.4
// "Literals"); Width is 0 when unsuffixed (defaults to i64 during
// synthesis).
type IntegerLiteral struct {
	base
	Value int64
	Width int // one of 0, 8, 16, 32, 64
}

func (*IntegerLiteral) exprNode() {}
func (*IntegerLiteral) stmtNode() {}

// FloatLiteral carries a bit-width suffix restricted to {32,64}.
type FloatLiteral struct {
	base
	Value float64
	Width int // 32 or 64
}

func (*FloatLiteral) exprNode() {}
func (*FloatLiteral) stmtNode() {}

// BooleanLiteral is `true`/`false`.
type BooleanLiteral struct {
	base
	Value bool
}

func (*BooleanLiteral) exprNode() {}
func (*BooleanLiteral) stmtNode() {}

// StringLiteral is a string constant.
type StringLiteral struct {
	base
	Value string
}

func (*StringLiteral) exprNode() {}
func (*StringLiteral) stmtNode() {}

// NullLiteral yields the null type (spec §4.4 "Null").
type NullLiteral struct{ base }

func (*NullLiteral) exprNode() {}
func (*NullLiteral) stmtNode() {}

// --- references ----------------------------------------------------------

// Identifier is a variable/field/global/function/class/package-prefix
// reference, resolved via DefnInfo/UseInfo (spec §4.4 "Variable/use
// reference").
type Identifier struct {
	base
	Name string
}

func (*Identifier) exprNode() {}
func (*Identifier) stmtNode() {}

// ThisExpr yields the enclosing method's receiver type.
type ThisExpr struct{ base }

func (*ThisExpr) exprNode() {}
func (*ThisExpr) stmtNode() {}

// SuperExpr yields the receiver's first non-self supertype.
type SuperExpr struct{ base }

func (*SuperExpr) exprNode() {}
func (*SuperExpr) stmtNode() {}

// --- compound expressions -------------------------------------------------

// Block types its statements in order; its type is that of the last
// expression, or unit if the last statement is a definition (spec §4.4
// "Block").
type Block struct {
	base
	Statements []Statement
}

func (*Block) exprNode() {}
func (*Block) stmtNode() {}

// AssignOp names a compound-assignment operator; Plain means a bare `=`.
type AssignOp string

const Plain AssignOp = ""

// Assignment requires its Target to be an lvalue and Value to be a
// subtype of Target's type; result type is unit (spec §4.4
// "Assignment"). A non-Plain Op lowers `x op= y` to `x = x op y` for
// type purposes and additionally requires Target be mutable.
type Assignment struct {
	base
	Target Expression
	Op     AssignOp
	Value  Expression
}

func (*Assignment) exprNode() {}
func (*Assignment) stmtNode() {}

// BinaryExpr is an operator application, resolved through call-site
// resolution like any other call (spec §4.4 "Call-site resolution").
type BinaryExpr struct {
	base
	Op          string
	Left, Right Expression
}

func (*BinaryExpr) exprNode() {}
func (*BinaryExpr) stmtNode() {}

// UnaryExpr is a prefix operator application.
type UnaryExpr struct {
	base
	Op      string
	Operand Expression
}

func (*UnaryExpr) exprNode() {}
func (*UnaryExpr) stmtNode() {}

// CallExpr is a function/method/constructor call, with optional explicit
// receiver and type arguments (spec §4.4 "Call-site resolution").
type CallExpr struct {
	base
	Receiver      Expression // nil for unqualified calls
	Callee        string
	TypeArguments []TypeExpr
	Arguments     []Expression
}

func (*CallExpr) exprNode() {}
func (*CallExpr) stmtNode() {}

// IfExpr: condition must be boolean or nothing; branches lub-combine
// (spec §4.4 "If/while/try").
type IfExpr struct {
	base
	Condition   Expression
	Then        *Block
	Else        *Block // nil if no else branch
}

func (*IfExpr) exprNode() {}
func (*IfExpr) stmtNode() {}

// WhileExpr always yields unit.
type WhileExpr struct {
	base
	Condition Expression
	Body      *Block
}

func (*WhileExpr) exprNode() {}
func (*WhileExpr) stmtNode() {}

// CatchClause pairs a caught pattern with its handler body.
type CatchClause struct {
	base
	Pattern Pattern
	Body    *Block
}

// TryExpr lubs the try and catch branches; Finally types for its own
// side effects only (spec §4.4 "If/while/try").
type TryExpr struct {
	base
	Body    *Block
	Catches []*CatchClause
	Finally *Block // nil if absent
}

func (*TryExpr) exprNode() {}
func (*TryExpr) stmtNode() {}

// ThrowExpr's argument must be a subtype of the exception class; yields
// the no-type, ir.NoTypeValue (spec §4.4 "Throw").
type ThrowExpr struct {
	base
	Value Expression
}

func (*ThrowExpr) exprNode() {}
func (*ThrowExpr) stmtNode() {}

// ReturnExpr's value must be a subtype of the enclosing function's
// declared return type; yields the no-type, ir.NoTypeValue. A return outside a function
// body is rejected during body checking (spec §4.4 "Return").
type ReturnExpr struct {
	base
	Value Expression // nil for a bare `return`
}

func (*ReturnExpr) exprNode() {}
func (*ReturnExpr) stmtNode() {}

// NewArrayExpr requires Length to be integer-typed and the target package
// to contain a class carrying array elements (the first such class is
// used); yields that class instantiated with ElementType (spec §4.4
// "New-array").
type NewArrayExpr struct {
	base
	ElementType TypeExpr
	Length      Expression
}

func (*NewArrayExpr) exprNode() {}
func (*NewArrayExpr) stmtNode() {}

// NewExpr is a constructor call for a named class.
type NewExpr struct {
	base
	ClassName     string
	TypeArguments []TypeExpr
	Arguments     []Expression
}

func (*NewExpr) exprNode() {}
func (*NewExpr) stmtNode() {}

// LambdaExpr is a function literal (spec §4.4 "Lambda"). The type
// analysis pass rejects it with a TypeError: no closure class or
// FunctionN trait is synthesized for it.
type LambdaExpr struct {
	base
	Parameters []*ParameterDecl
	ReturnType TypeExpr // nil if inferred
	Body       *Block
}

func (*LambdaExpr) exprNode() {}
func (*LambdaExpr) stmtNode() {}

// MatchArm pairs a pattern and guard with its result expression.
type MatchArm struct {
	base
	Pattern Pattern
	Guard   Expression // nil if absent
	Result  Expression
}

// MatchExpr types each arm's pattern against the scrutinee and lub-combines
// the arm results (spec §4.4 "Pattern typing").
type MatchExpr struct {
	base
	Scrutinee Expression
	Arms      []*MatchArm
}

func (*MatchExpr) exprNode() {}
func (*MatchExpr) stmtNode() {}

// LocalDecl introduces a local variable/value inside a block; it is a
// Statement, not an Expression — a block ending in one yields unit
// rather than the initializer's type (spec §4.4 "Block").
type LocalDecl struct {
	base
	Name    string
	Type    TypeExpr // nil if inferred from Init
	Mutable bool
	Init    Expression
}

func (*LocalDecl) stmtNode() {}
