package typecheck

import (
	"github.com/cwbudde/go-typecore/internal/ast"
	"github.com/cwbudde/go-typecore/internal/compileinfo"
	"github.com/cwbudde/go-typecore/internal/errors"
	"github.com/cwbudde/go-typecore/internal/flags"
	"github.com/cwbudde/go-typecore/internal/ident"
	"github.com/cwbudde/go-typecore/internal/ir"
)

// funcCtx carries the state synthesis needs that doesn't belong on Pass
// itself: the function currently being checked (for `return`/`this`/
// `super`) and the locals (including parameters) visible by name.
type funcCtx struct {
	fn     *ir.Function
	locals map[string]*ir.Variable
}

func identName(s string) ident.Name { return ident.New(s) }

// checkFunctionBody is layer 2 of the Type Analysis Pass (spec §4.4
// "Body checking"): recursive expression synthesis over fn.Body,
// side-annotating p.Info as it goes. Abstract and native functions carry
// no body and are skipped.
func (p *Pass) checkFunctionBody(fn *ir.Function) error {
	if fn.Body == nil {
		return nil
	}
	ctx := &funcCtx{fn: fn, locals: map[string]*ir.Variable{}}
	for _, pv := range fn.ParamVars {
		if pv != nil {
			ctx.locals[pv.Name.Short()] = pv
		}
	}
	_, err := p.synthBlock(ctx, fn.Body)
	return err
}

// synthBlock types fn.Body's statements in order; the block's type is
// that of the last expression, or unit if the last statement is a
// local definition (spec §4.4 "Block").
func (p *Pass) synthBlock(ctx *funcCtx, b *ast.Block) (ir.Type, error) {
	var result ir.Type = ir.UnitType
	for i, stmt := range b.Statements {
		t, err := p.synthStatement(ctx, stmt)
		if err != nil {
			return nil, err
		}
		if i == len(b.Statements)-1 {
			result = t
		}
	}
	p.Info.SetType(b, result)
	return result, nil
}

func (p *Pass) synthStatement(ctx *funcCtx, stmt ast.Statement) (ir.Type, error) {
	if local, ok := stmt.(*ast.LocalDecl); ok {
		if err := p.synthLocalDecl(ctx, local); err != nil {
			return nil, err
		}
		return ir.UnitType, nil
	}
	expr, ok := stmt.(ast.Expression)
	if !ok {
		return nil, errors.NewTypeError(stmt.Pos(), "unrecognized statement form")
	}
	return p.synthExpr(ctx, expr)
}

func (p *Pass) synthLocalDecl(ctx *funcCtx, decl *ast.LocalDecl) error {
	var initType ir.Type
	if decl.Init != nil {
		t, err := p.synthExpr(ctx, decl.Init)
		if err != nil {
			return err
		}
		initType = t
	}

	declared := initType
	if decl.Type != nil {
		t, err := p.resolveTypeExpr(p.inScopeParams(ctx), decl.Type)
		if err != nil {
			return err
		}
		if initType != nil && !ir.Subtype(initType, t, p.Lattice) {
			return errors.NewTypeError(decl.Pos(), "cannot initialize %q of type %s with value of type %s", decl.Name, t, initType)
		}
		declared = t
	}
	if declared == nil {
		return errors.NewTypeError(decl.Pos(), "local %q has no declared or inferable type", decl.Name)
	}

	flagSet := flags.NewSet(flags.Let)
	if decl.Mutable {
		flagSet = flags.NewSet(flags.Var)
	}
	v := &ir.Variable{Name: identName(decl.Name), Type: declared, Kind: ir.LocalVar, Flags: flagSet, Pos: decl.Pos()}
	ctx.locals[decl.Name] = v
	ctx.fn.Locals = append(ctx.fn.Locals, v)
	p.Info.SetDefn(decl, compileinfo.DefnInfo{Def: v})
	return nil
}

func (p *Pass) synthExpr(ctx *funcCtx, e ast.Expression) (ir.Type, error) {
	t, err := p.synthExprKind(ctx, e)
	if err != nil {
		return nil, err
	}
	p.Info.SetType(e, t)
	return t, nil
}

func (p *Pass) synthExprKind(ctx *funcCtx, e ast.Expression) (ir.Type, error) {
	switch n := e.(type) {
	case *ast.IntegerLiteral:
		return integerLiteralType(n)
	case *ast.FloatLiteral:
		return floatLiteralType(n)
	case *ast.BooleanLiteral:
		return ir.BooleanType, nil
	case *ast.StringLiteral:
		return nil, errors.NewTypeError(n.Pos(), "string literal typing requires a standard-library String class not provided by this package")
	case *ast.NullLiteral:
		return p.Lattice.NullType(), nil
	case *ast.Identifier:
		return p.synthIdentifier(ctx, n)
	case *ast.ThisExpr:
		return p.synthThis(ctx, n)
	case *ast.SuperExpr:
		return p.synthSuper(ctx, n)
	case *ast.Block:
		return p.synthBlock(ctx, n)
	case *ast.Assignment:
		return p.synthAssignment(ctx, n)
	case *ast.BinaryExpr:
		return p.synthBinary(ctx, n)
	case *ast.UnaryExpr:
		return p.synthUnary(ctx, n)
	case *ast.CallExpr:
		return p.synthCall(ctx, n)
	case *ast.IfExpr:
		return p.synthIf(ctx, n)
	case *ast.WhileExpr:
		return p.synthWhile(ctx, n)
	case *ast.TryExpr:
		return p.synthTry(ctx, n)
	case *ast.ThrowExpr:
		return p.synthThrow(ctx, n)
	case *ast.ReturnExpr:
		return p.synthReturn(ctx, n)
	case *ast.NewArrayExpr:
		return p.synthNewArray(ctx, n)
	case *ast.NewExpr:
		return p.synthNew(ctx, n)
	case *ast.LambdaExpr:
		return p.synthLambda(n)
	case *ast.MatchExpr:
		return p.synthMatch(ctx, n)
	default:
		return nil, errors.NewTypeError(e.Pos(), "unrecognized expression form")
	}
}

func integerLiteralType(n *ast.IntegerLiteral) (ir.Type, error) {
	width := n.Width
	if width == 0 {
		width = 64
	}
	t, ok := ir.IntegerWidths[width]
	if !ok {
		return nil, errors.NewTypeError(n.Pos(), "invalid integer literal width %d", width)
	}
	if !fitsSignedWidth(n.Value, width) {
		return nil, errors.NewTypeError(n.Pos(), "integer literal %d does not fit in i%d", n.Value, width)
	}
	return t, nil
}

func fitsSignedWidth(v int64, width int) bool {
	if width >= 64 {
		return true
	}
	lo := int64(-1) << (width - 1)
	hi := (int64(1) << (width - 1)) - 1
	return v >= lo && v <= hi
}

func floatLiteralType(n *ast.FloatLiteral) (ir.Type, error) {
	width := n.Width
	if width == 0 {
		width = 64
	}
	t, ok := ir.FloatWidths[width]
	if !ok {
		return nil, errors.NewTypeError(n.Pos(), "invalid float literal width %d", width)
	}
	return t, nil
}

// synthIdentifier checks locals (parameters and block-local definitions)
// before falling back to the pre-populated UseInfo side table — names
// resolved upstream by scope analysis, per this package's AST precondition.
func (p *Pass) synthIdentifier(ctx *funcCtx, n *ast.Identifier) (ir.Type, error) {
	if local, ok := ctx.locals[n.Name]; ok {
		p.Info.SetUse(n, compileinfo.UseInfo{Def: local})
		return local.Type, nil
	}
	use, ok := p.Info.Use(n)
	if !ok {
		return nil, errors.NewScopeError(n.Pos(), "undefined name %q", n.Name)
	}
	switch def := use.Def.(type) {
	case *ir.Variable:
		return def.Type, nil
	case *ir.Field:
		return def.Type, nil
	case *ir.Global:
		return def.Type, nil
	case *ir.Function:
		return nil, errors.NewTypeError(n.Pos(), "function %q used as a value without a call", n.Name)
	default:
		return nil, errors.NewScopeError(n.Pos(), "%q does not resolve to a value", n.Name)
	}
}

func (p *Pass) synthThis(ctx *funcCtx, n *ast.ThisExpr) (ir.Type, error) {
	recv := ctx.fn.ReceiverType()
	if recv == nil {
		return nil, errors.NewScopeError(n.Pos(), "this used outside a method body")
	}
	return recv, nil
}

func (p *Pass) synthSuper(ctx *funcCtx, n *ast.SuperExpr) (ir.Type, error) {
	cls, ok := ctx.fn.DefiningClass.(*ir.Class)
	if !ok || len(cls.Supertypes) == 0 {
		return nil, errors.NewScopeError(n.Pos(), "super used outside a class method with a superclass")
	}
	return cls.Supertypes[0], nil
}

func (p *Pass) synthAssignment(ctx *funcCtx, n *ast.Assignment) (ir.Type, error) {
	targetType, err := p.synthExpr(ctx, n.Target)
	if err != nil {
		return nil, err
	}
	if !p.isLvalue(ctx, n.Target) {
		return nil, errors.NewTypeError(n.Pos(), "assignment target is not an lvalue")
	}
	valueType, err := p.synthExpr(ctx, n.Value)
	if err != nil {
		return nil, err
	}
	if n.Op != ast.Plain {
		candidates := p.operatorCandidates(targetType, string(n.Op))
		if len(candidates) == 0 {
			return nil, errors.NewTypeError(n.Pos(), "no operator %q defined for %s", n.Op, targetType)
		}
		for _, c := range candidates {
			if err := p.ensureFunctionType(c); err != nil {
				return nil, err
			}
		}
		resolved, err := p.resolveCall(n.Pos(), candidates, nil, targetType, []ir.Type{valueType}, true)
		if err != nil {
			return nil, err
		}
		valueType = resolved.instantiatedReturn
	}
	if !ir.Subtype(valueType, targetType, p.Lattice) {
		return nil, errors.NewTypeError(n.Pos(), "cannot assign %s to %s", valueType, targetType)
	}
	return ir.UnitType, nil
}

// isLvalue reports whether target is a local declared `var`, a `var`
// field, or a mutable global (spec §4.4 "Assignment").
func (p *Pass) isLvalue(ctx *funcCtx, target ast.Expression) bool {
	id, ok := target.(*ast.Identifier)
	if !ok {
		return false
	}
	if local, ok := ctx.locals[id.Name]; ok {
		return local.Flags.Has(flags.Var)
	}
	use, ok := p.Info.Use(id)
	if !ok {
		return false
	}
	switch def := use.Def.(type) {
	case *ir.Field:
		return def.IsVar()
	case *ir.Global:
		return !def.Flags.Has(flags.Let)
	default:
		return false
	}
}

func (p *Pass) synthBinary(ctx *funcCtx, n *ast.BinaryExpr) (ir.Type, error) {
	leftType, err := p.synthExpr(ctx, n.Left)
	if err != nil {
		return nil, err
	}
	rightType, err := p.synthExpr(ctx, n.Right)
	if err != nil {
		return nil, err
	}
	candidates := p.operatorCandidates(leftType, n.Op)
	if len(candidates) == 0 {
		return nil, errors.NewTypeError(n.Pos(), "no operator %q defined for %s", n.Op, leftType)
	}
	for _, c := range candidates {
		if err := p.ensureFunctionType(c); err != nil {
			return nil, err
		}
	}
	resolved, err := p.resolveCall(n.Pos(), candidates, nil, leftType, []ir.Type{rightType}, true)
	if err != nil {
		return nil, err
	}
	p.Info.SetCall(n, compileinfo.CallInfo{Target: resolved.fn, InstantiatedParameterTypes: resolved.instantiatedParams, Receiver: compileinfo.ExplicitReceiver})
	return resolved.instantiatedReturn, nil
}

func (p *Pass) synthUnary(ctx *funcCtx, n *ast.UnaryExpr) (ir.Type, error) {
	operandType, err := p.synthExpr(ctx, n.Operand)
	if err != nil {
		return nil, err
	}
	candidates := p.operatorCandidates(operandType, n.Op)
	if len(candidates) == 0 {
		return nil, errors.NewTypeError(n.Pos(), "no unary operator %q defined for %s", n.Op, operandType)
	}
	for _, c := range candidates {
		if err := p.ensureFunctionType(c); err != nil {
			return nil, err
		}
	}
	resolved, err := p.resolveCall(n.Pos(), candidates, nil, operandType, nil, true)
	if err != nil {
		return nil, err
	}
	p.Info.SetCall(n, compileinfo.CallInfo{Target: resolved.fn, Receiver: compileinfo.ExplicitReceiver})
	return resolved.instantiatedReturn, nil
}

// operatorCandidates finds methods of t's effective class named op,
// grounded on spec §4.4's unifying operator applications with ordinary
// call-site resolution over the receiver's method set.
func (p *Pass) operatorCandidates(t ir.Type, op string) []*ir.Function {
	ct, _ := ir.EffectiveClassType(t, p.Lattice)
	if ct == nil {
		return nil
	}
	return methodsNamed(ct.Def.MethodList(), op)
}

func (p *Pass) synthCall(ctx *funcCtx, n *ast.CallExpr) (ir.Type, error) {
	var receiverType ir.Type
	strategy := compileinfo.NoReceiver
	if n.Receiver != nil {
		rt, err := p.synthExpr(ctx, n.Receiver)
		if err != nil {
			return nil, err
		}
		receiverType = rt
		strategy = compileinfo.ExplicitReceiver
	}

	argTypes := make([]ir.Type, len(n.Arguments))
	for i, a := range n.Arguments {
		at, err := p.synthExpr(ctx, a)
		if err != nil {
			return nil, err
		}
		argTypes[i] = at
	}

	var explicitArgs []ir.Type
	if len(n.TypeArguments) > 0 {
		explicitArgs = make([]ir.Type, len(n.TypeArguments))
		for i, texpr := range n.TypeArguments {
			t, err := p.resolveTypeExpr(p.inScopeParams(ctx), texpr)
			if err != nil {
				return nil, err
			}
			explicitArgs[i] = t
		}
	}

	candidates := p.callCandidates(ctx, n.Callee, receiverType)
	if len(candidates) == 0 {
		return nil, errors.NewScopeError(n.Pos(), "no callee named %q in scope", n.Callee)
	}
	for _, c := range candidates {
		if err := p.ensureFunctionType(c); err != nil {
			return nil, err
		}
	}

	resolved, err := p.resolveCall(n.Pos(), candidates, explicitArgs, receiverType, argTypes, n.Receiver != nil)
	if err != nil {
		return nil, err
	}
	if n.Receiver == nil && resolved.fn.IsMethod() {
		strategy = compileinfo.ImplicitThisReceiver
	}
	p.Info.SetCall(n, compileinfo.CallInfo{
		TypeArguments:              explicitArgs,
		InstantiatedParameterTypes: resolved.instantiatedParams,
		Receiver:                   strategy,
		Target:                     resolved.fn,
	})
	return resolved.instantiatedReturn, nil
}

// callCandidates gathers the overload set for a call expression. With an
// explicit receiver, candidates come from the receiver's effective class
// method list; otherwise candidates come from the enclosing class (if
// any, for the implicit-this case) plus package-level functions sharing
// the callee's source name.
func (p *Pass) callCandidates(ctx *funcCtx, name string, receiverType ir.Type) []*ir.Function {
	if receiverType != nil {
		ct, _ := ir.EffectiveClassType(receiverType, p.Lattice)
		if ct == nil {
			return nil
		}
		return methodsNamed(ct.Def.MethodList(), name)
	}
	var out []*ir.Function
	if cls, ok := ctx.fn.DefiningClass.(*ir.Class); ok {
		out = append(out, methodsNamed(cls.Methods, name)...)
	}
	out = append(out, methodsNamed(p.Package.Functions, name)...)
	return out
}

func methodsNamed(fns []*ir.Function, name string) []*ir.Function {
	var out []*ir.Function
	for _, f := range fns {
		if f.Name.Short() == name {
			out = append(out, f)
		}
	}
	return out
}

func (p *Pass) synthIf(ctx *funcCtx, n *ast.IfExpr) (ir.Type, error) {
	condType, err := p.synthExpr(ctx, n.Condition)
	if err != nil {
		return nil, err
	}
	if !p.isBooleanOrNothing(condType) {
		return nil, errors.NewTypeError(n.Pos(), "if condition must be boolean or nothing, got %s", condType)
	}
	thenType, err := p.synthBlock(ctx, n.Then)
	if err != nil {
		return nil, err
	}
	if n.Else == nil {
		return ir.UnitType, nil
	}
	elseType, err := p.synthBlock(ctx, n.Else)
	if err != nil {
		return nil, err
	}
	return ir.Lub(thenType, elseType, p.Lattice), nil
}

func (p *Pass) isBooleanOrNothing(t ir.Type) bool {
	if t == ir.BooleanType {
		return true
	}
	return p.Lattice.IsNothingType(t)
}

func (p *Pass) synthWhile(ctx *funcCtx, n *ast.WhileExpr) (ir.Type, error) {
	condType, err := p.synthExpr(ctx, n.Condition)
	if err != nil {
		return nil, err
	}
	if !p.isBooleanOrNothing(condType) {
		return nil, errors.NewTypeError(n.Pos(), "while condition must be boolean or nothing, got %s", condType)
	}
	if _, err := p.synthBlock(ctx, n.Body); err != nil {
		return nil, err
	}
	return ir.UnitType, nil
}

func (p *Pass) synthTry(ctx *funcCtx, n *ast.TryExpr) (ir.Type, error) {
	result, err := p.synthBlock(ctx, n.Body)
	if err != nil {
		return nil, err
	}
	for _, c := range n.Catches {
		if err := p.bindPattern(ctx, c.Pattern, p.exceptionClassType()); err != nil {
			return nil, err
		}
		catchType, err := p.synthBlock(ctx, c.Body)
		if err != nil {
			return nil, err
		}
		result = ir.Lub(result, catchType, p.Lattice)
	}
	if n.Finally != nil {
		if _, err := p.synthBlock(ctx, n.Finally); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// exceptionClassType stands in for a standard-library exception root;
// this package defines no standard library (see Non-goals), so catch
// patterns are checked against the lattice's own root class, accepting
// anything reference-typed.
func (p *Pass) exceptionClassType() ir.Type {
	return &ir.ClassType{Def: p.Lattice.Root}
}

func (p *Pass) synthThrow(ctx *funcCtx, n *ast.ThrowExpr) (ir.Type, error) {
	valueType, err := p.synthExpr(ctx, n.Value)
	if err != nil {
		return nil, err
	}
	if !ir.Subtype(valueType, p.exceptionClassType(), p.Lattice) {
		return nil, errors.NewTypeError(n.Pos(), "throw argument must be a subtype of the exception class")
	}
	return ir.NoTypeValue, nil
}

func (p *Pass) synthReturn(ctx *funcCtx, n *ast.ReturnExpr) (ir.Type, error) {
	if ctx.fn == nil {
		return nil, errors.NewScopeError(n.Pos(), "return outside a function body")
	}
	var valueType ir.Type = ir.UnitType
	if n.Value != nil {
		t, err := p.synthExpr(ctx, n.Value)
		if err != nil {
			return nil, err
		}
		valueType = t
	}
	// ctx.fn.ReturnType is nil while ensureFunctionType is still
	// inferring it from this very body; the check resumes once
	// checkFunctionBody runs the body again with the inferred type set.
	if ctx.fn.ReturnType != nil && !ir.Subtype(valueType, ctx.fn.ReturnType, p.Lattice) {
		return nil, errors.NewTypeError(n.Pos(), "return value %s is not a subtype of declared return type %s", valueType, ctx.fn.ReturnType)
	}
	return ir.NoTypeValue, nil
}

// inferReturnType synthesizes fn's body to compute its return type when
// it carries no explicit annotation (spec §4.4's declaration layer,
// grounded on gypsum/test_type_analysis.py's testNegExpr: `def f = -12`
// has no declared return type and it is computed from the body, here
// I64Type from the tail expression).
func (p *Pass) inferReturnType(fn *ir.Function) (ir.Type, error) {
	ctx := &funcCtx{fn: fn, locals: map[string]*ir.Variable{}}
	for _, pv := range fn.ParamVars {
		if pv != nil {
			ctx.locals[pv.Name.Short()] = pv
		}
	}
	return p.synthBlock(ctx, fn.Body)
}

func (p *Pass) synthNewArray(ctx *funcCtx, n *ast.NewArrayExpr) (ir.Type, error) {
	lengthType, err := p.synthExpr(ctx, n.Length)
	if err != nil {
		return nil, err
	}
	prim, ok := lengthType.(ir.Primitive)
	if !ok || !ir.IsIntegral(prim.P) {
		return nil, errors.NewTypeError(n.Pos(), "array length must be an integer, got %s", lengthType)
	}
	elem, err := p.resolveTypeExpr(p.inScopeParams(ctx), n.ElementType)
	if err != nil {
		return nil, err
	}
	arrayClass := p.findArrayClass()
	if arrayClass == nil {
		return nil, errors.NewTypeError(n.Pos(), "new-array requires a class carrying array elements in the target package")
	}
	return ir.NewClassType(arrayClass, []ir.Type{elem}, false)
}

func (p *Pass) findArrayClass() *ir.Class {
	for _, c := range p.Package.Classes {
		if c.HasArrayElements() {
			return c
		}
	}
	return nil
}

func (p *Pass) synthNew(ctx *funcCtx, n *ast.NewExpr) (ir.Type, error) {
	cls := p.findClass(n.ClassName)
	if cls == nil {
		return nil, errors.NewScopeError(n.Pos(), "undefined class %q", n.ClassName)
	}
	if err := p.ensureClassType(cls); err != nil {
		return nil, err
	}
	argTypes := make([]ir.Type, len(n.Arguments))
	for i, a := range n.Arguments {
		at, err := p.synthExpr(ctx, a)
		if err != nil {
			return nil, err
		}
		argTypes[i] = at
	}
	var candidates []*ir.Function
	if cls.PrimaryConstructor != nil {
		candidates = append(candidates, cls.PrimaryConstructor)
	}
	candidates = append(candidates, cls.Constructors...)
	// A class declaring no constructor is constructed by its implicit
	// default constructor, which takes no arguments.
	if len(candidates) == 0 && len(argTypes) > 0 {
		return nil, errors.NewScopeError(n.Pos(), "class %q has no constructor accepting arguments", n.ClassName)
	}

	var explicitArgs []ir.Type
	if len(n.TypeArguments) > 0 {
		explicitArgs = make([]ir.Type, len(n.TypeArguments))
		for i, texpr := range n.TypeArguments {
			t, err := p.resolveTypeExpr(p.inScopeParams(ctx), texpr)
			if err != nil {
				return nil, err
			}
			explicitArgs[i] = t
		}
	}

	if len(candidates) > 0 {
		result, err := p.resolveCall(n.Pos(), candidates, explicitArgs, nil, argTypes, false)
		if err != nil {
			return nil, err
		}
		p.Info.SetCall(n, compileinfo.CallInfo{Target: result.fn, TypeArguments: explicitArgs, InstantiatedParameterTypes: result.instantiatedParams})
	}

	args := explicitArgs
	if len(args) == 0 && len(cls.TypeParameters) > 0 {
		args = make([]ir.Type, len(cls.TypeParameters))
		for i, tp := range cls.TypeParameters {
			args[i] = tp.UpperBound
		}
	}
	ct, err := ir.NewClassType(cls, args, false)
	if err != nil {
		return nil, errors.NewTypeError(n.Pos(), "%s", err)
	}
	return ct, nil
}

func (p *Pass) findClass(name string) *ir.Class {
	for _, c := range p.Package.Classes {
		if c.Name.Short() == name {
			return c
		}
	}
	return nil
}

func (p *Pass) synthLambda(n *ast.LambdaExpr) (ir.Type, error) {
	return nil, errors.NewTypeError(n.Pos(), "lambda closure-class synthesis requires a standard-library FunctionN trait family not provided by this package")
}

func (p *Pass) synthMatch(ctx *funcCtx, n *ast.MatchExpr) (ir.Type, error) {
	scrutineeType, err := p.synthExpr(ctx, n.Scrutinee)
	if err != nil {
		return nil, err
	}
	var result ir.Type
	for _, arm := range n.Arms {
		if err := p.bindPattern(ctx, arm.Pattern, scrutineeType); err != nil {
			return nil, err
		}
		if arm.Guard != nil {
			guardType, err := p.synthExpr(ctx, arm.Guard)
			if err != nil {
				return nil, err
			}
			if guardType != ir.BooleanType {
				return nil, errors.NewTypeError(arm.Guard.Pos(), "match guard must be boolean, got %s", guardType)
			}
		}
		armType, err := p.synthExpr(ctx, arm.Result)
		if err != nil {
			return nil, err
		}
		if result == nil {
			result = armType
		} else {
			result = ir.Lub(result, armType, p.Lattice)
		}
	}
	if result == nil {
		return ir.UnitType, nil
	}
	return result, nil
}
