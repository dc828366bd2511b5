// Package evaluator is a recursive expression walker: it consumes a
// resolved ast.Expression tree and a symbols.SymbolTable, and produces a
// ResolvedValue while emitting constraints into a gadget.Builder as a
// side effect.
//
// Grounded on funvibe-funxy's internal/evaluator package: the
// Evaluator-struct-plus-Eval-method shape, the evalDepth/maxEvalDepth
// stack-overflow guard in evaluator.go, and the dispatch-by-node-type
// switch are all kept; everything about modules, traits, async, VM
// closures and the 20-odd Object variants funvibe-funxy's own language
// needs is dropped, since this evaluator's closed eight-variant
// ResolvedValue has no use for any of it.
package evaluator

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/funvibe/r1csdsl/internal/ast"
	"github.com/funvibe/r1csdsl/internal/config"
	"github.com/funvibe/r1csdsl/internal/gadget"
	"github.com/funvibe/r1csdsl/internal/symbols"
)

// Evaluator binds one gadget.Builder, one symbols.SymbolTable and one
// config.Config for the lifetime of a single compilation.
type Evaluator struct {
	builder gadget.Builder
	symbols *symbols.SymbolTable
	invoker FunctionInvoker
	cfg     config.Config
	log     zerolog.Logger

	// evalDepth tracks the current nesting depth of evaluate calls, the
	// same Go-stack-overflow guard funxy's own Evaluator carries (its
	// evaluator.go, const maxEvalDepth = 10000). This is a Go-runtime
	// safety net, not user-function recursion detection — that belongs
	// to name resolution.
	evalDepth int
}

// New constructs an Evaluator. invoker may be nil if the program under
// evaluation never calls a function; a FunctionCall expression reaching
// evalFunctionCall with a nil invoker fails Unimplemented rather than
// panicking.
func New(builder gadget.Builder, table *symbols.SymbolTable, invoker FunctionInvoker, cfg config.Config, log zerolog.Logger) *Evaluator {
	return &Evaluator{
		builder: builder,
		symbols: table,
		invoker: invoker,
		cfg:     cfg,
		log:     log,
	}
}

// Evaluate is the public entry point: evaluate(fileScope, functionScope,
// expr).
func (e *Evaluator) Evaluate(fileScope, functionScope string, expr ast.Expression) (ResolvedValue, error) {
	return e.evaluate(fileScope, functionScope, expr)
}

func (e *Evaluator) evaluate(fileScope, functionScope string, expr ast.Expression) (ResolvedValue, error) {
	e.evalDepth++
	defer func() { e.evalDepth-- }()
	if e.evalDepth > e.maxEvalDepth() {
		return nil, errUnimplemented(fmt.Sprintf("expression nesting exceeds max eval depth %d", e.maxEvalDepth()))
	}

	switch node := expr.(type) {
	case *ast.IntegerLiteral:
		return U32Value{Word: e.builder.GetIntegerConstant(node.Value)}, nil

	case *ast.FieldElementLiteral:
		fe, err := gadget.FieldElementFromString(node.Value)
		if err != nil {
			return nil, err
		}
		return FieldElementValue{Elem: fe}, nil

	case *ast.BooleanLiteral:
		return BooleanValue{Bool: e.builder.GetBooleanConstant(node.Value)}, nil

	case *ast.Variable:
		return e.evalVariable(fileScope, functionScope, node)

	case *ast.BinaryExpression:
		return e.evalBinary(fileScope, functionScope, node)

	case *ast.NotExpression:
		return e.evalNot(fileScope, functionScope, node)

	case *ast.IfElseExpression:
		return e.evalIfElse(fileScope, functionScope, node)

	case *ast.ArrayExpression:
		return e.evalArray(fileScope, functionScope, node)

	case *ast.ArrayAccessExpression:
		return e.evalArrayAccess(fileScope, functionScope, node)

	case *ast.StructExpression:
		return e.evalStruct(fileScope, functionScope, node)

	case *ast.StructMemberAccessExpression:
		return e.evalStructMemberAccess(fileScope, functionScope, node)

	case *ast.FunctionCallExpression:
		return e.evalFunctionCall(fileScope, functionScope, node)

	default:
		return nil, errUnimplemented(fmt.Sprintf("unsupported expression node %T", expr))
	}
}

// traceOp logs the operator about to be dispatched, with its scope and
// operand summaries, when config.Config.TraceConstraints is set. This
// gives the observable constraint-append order an audit trail at the
// Evaluator's own level, independent of gadget.R1CSBuilder's
// per-constraint trace.
func (e *Evaluator) traceOp(fileScope, functionScope, op string, left, right ResolvedValue) {
	if !e.cfg.TraceConstraints {
		return
	}
	e.log.Debug().
		Str("fileScope", fileScope).
		Str("functionScope", functionScope).
		Str("op", op).
		Str("left", left.Summary()).
		Str("right", right.Summary()).
		Msg("dispatching operator")
}

func (e *Evaluator) maxEvalDepth() int {
	if e.cfg.MaxEvalDepth > 0 {
		return e.cfg.MaxEvalDepth
	}
	return config.Default().MaxEvalDepth
}

func (e *Evaluator) evalVariable(fileScope, functionScope string, node *ast.Variable) (ResolvedValue, error) {
	v, ok := e.symbols.Lookup(functionScope, fileScope, node.Name)
	if !ok {
		return nil, errUnknownName(node.Name)
	}
	return v.(ResolvedValue), nil
}

func (e *Evaluator) evalBinary(fileScope, functionScope string, node *ast.BinaryExpression) (ResolvedValue, error) {
	switch node.Operator {
	case ast.OpLt, ast.OpLeq, ast.OpGt, ast.OpGeq:
		return nil, errUnimplemented("comparison " + string(node.Operator))
	}

	left, err := e.evaluate(fileScope, functionScope, node.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.evaluate(fileScope, functionScope, node.Right)
	if err != nil {
		return nil, err
	}

	e.traceOp(fileScope, functionScope, string(node.Operator), left, right)

	switch node.Operator {
	case ast.OpAdd, ast.OpSub, ast.OpMul, ast.OpDiv, ast.OpPow:
		return e.dispatchArithmetic(node.Operator, left, right)

	case ast.OpAnd:
		lb, ok := left.(BooleanValue)
		if !ok {
			return nil, errTypeMismatch(string(node.Operator), left, right)
		}
		rb, ok := right.(BooleanValue)
		if !ok {
			return nil, errTypeMismatch(string(node.Operator), left, right)
		}
		return BooleanValue{Bool: e.builder.EnforceAnd(lb.Bool, rb.Bool)}, nil

	case ast.OpOr:
		lb, ok := left.(BooleanValue)
		if !ok {
			return nil, errTypeMismatch(string(node.Operator), left, right)
		}
		rb, ok := right.(BooleanValue)
		if !ok {
			return nil, errTypeMismatch(string(node.Operator), left, right)
		}
		return BooleanValue{Bool: e.builder.EnforceOr(lb.Bool, rb.Bool)}, nil

	case ast.OpEq:
		return e.dispatchEquality(left, right)

	default:
		return nil, errUnimplemented(string(node.Operator))
	}
}

func (e *Evaluator) evalNot(fileScope, functionScope string, node *ast.NotExpression) (ResolvedValue, error) {
	operand, err := e.evaluate(fileScope, functionScope, node.Operand)
	if err != nil {
		return nil, err
	}
	b, ok := operand.(BooleanValue)
	if !ok {
		return nil, errTypeMismatch("!", operand, operand)
	}
	return BooleanValue{Bool: e.builder.EnforceNot(b.Bool)}, nil
}

// evalIfElse implements if/else selection: only a compile-time constant
// boolean guard is supported; the untaken branch is never evaluated, so
// it emits no constraints and may reference undefined names without
// error.
func (e *Evaluator) evalIfElse(fileScope, functionScope string, node *ast.IfElseExpression) (ResolvedValue, error) {
	cond, err := e.evaluate(fileScope, functionScope, node.Condition)
	if err != nil {
		return nil, err
	}
	b, ok := cond.(BooleanValue)
	if !ok {
		return nil, errTypeMismatch("if", cond, cond)
	}
	if !b.Bool.Constant {
		return nil, errUnimplemented("dynamic-if")
	}
	if b.Bool.Value {
		return e.evaluate(fileScope, functionScope, node.Then)
	}
	return e.evaluate(fileScope, functionScope, node.Else)
}
