package evaluator

import (
	"github.com/google/uuid"

	"github.com/funvibe/r1csdsl/internal/ast"
	"github.com/funvibe/r1csdsl/internal/gadget"
)

// FunctionInvoker is the external function-call-frame-setup collaborator
// ("invokeFunction"): it sets up a fresh function scope, binds
// parameters, evaluates the body, and returns a ResolvedValue. Out of
// scope for this repository's core; modeled as an interface purely so
// call inlining compiles and is testable standalone.
type FunctionInvoker interface {
	InvokeFunction(builder gadget.Builder, fileScope string, fn FunctionValue, args []ResolvedValue) (ResolvedValue, error)
}

// callFrame identifies one inlined call for tracing, the evaluator-side
// analogue of funxy's CallFrame (internal/evaluator/evaluator.go) —
// there it threads Name/File/Line/Column through an actual runtime call
// stack; here, since an inlined call leaves no call stack of its own,
// it is just a correlation id stamped on the one log line an
// invocation produces.
type callFrame struct {
	ID       uuid.UUID
	Function string
}

func newCallFrame(function string) callFrame {
	return callFrame{ID: uuid.New(), Function: function}
}

// evalFunctionCall inlines a function call: resolve the function in
// global scope, delegate to the invoker, unwrap a single-element
// Return, propagate a multi-element Return unchanged.
func (e *Evaluator) evalFunctionCall(fileScope, functionScope string, node *ast.FunctionCallExpression) (ResolvedValue, error) {
	looked, ok := e.symbols.GlobalLookup(fileScope, node.FunctionName)
	if !ok {
		return nil, errUnknownFunction(node.FunctionName)
	}
	fn, ok := looked.(FunctionValue)
	if !ok {
		return nil, errNotAFunction(node.FunctionName, looked.(ResolvedValue))
	}

	args := make([]ResolvedValue, len(node.Arguments))
	for i, argExpr := range node.Arguments {
		v, err := e.evaluate(fileScope, functionScope, argExpr)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	if e.invoker == nil {
		return nil, errUnimplemented("function invocation: no FunctionInvoker configured")
	}

	frame := newCallFrame(node.FunctionName)
	if e.cfg.TraceConstraints {
		e.log.Debug().
			Str("callId", frame.ID.String()).
			Str("function", frame.Function).
			Int("args", len(args)).
			Msg("inlining function call")
	}

	result, err := e.invoker.InvokeFunction(e.builder, fileScope, fn, args)
	if err != nil {
		return nil, err
	}

	ret, ok := result.(ReturnValue)
	if !ok {
		return nil, errMissingReturn(node.FunctionName, result)
	}
	if len(ret.Values) == 1 {
		return ret.Values[0], nil
	}
	return ret, nil
}
