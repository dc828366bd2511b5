package evaluator

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/funvibe/r1csdsl/internal/config"
	"github.com/funvibe/r1csdsl/internal/gadget"
	"github.com/funvibe/r1csdsl/internal/symbols"
)

func defaultTestConfig() config.Config {
	return config.Default()
}

func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

// fakeInvoker is a tiny tree-walking function-call evaluator used only
// by this package's own tests, standing in for the out-of-scope
// function-call-frame-setup collaborator: it binds parameters into a
// fresh local SymbolTable tier and evaluates the body with a fresh
// Evaluator sharing the same builder and symbol table.
type fakeInvoker struct {
	table *symbols.SymbolTable
}

func newFakeInvoker(table *symbols.SymbolTable) *fakeInvoker {
	return &fakeInvoker{table: table}
}

func (f *fakeInvoker) InvokeFunction(builder gadget.Builder, fileScope string, fn FunctionValue, args []ResolvedValue) (ResolvedValue, error) {
	functionScope := symbols.FunctionScope(fileScope, fn.Name)
	if len(args) != len(fn.Parameters) {
		return nil, errStructFieldMismatch(fn.Name, "parameter count mismatch")
	}
	for i, param := range fn.Parameters {
		f.table.SetLocal(functionScope, param, args[i])
	}
	sub := New(builder, f.table, f, defaultTestConfig(), testLogger())
	result, err := sub.Evaluate(fileScope, functionScope, fn.Body)
	f.table.DropLocals(functionScope)
	if err != nil {
		return nil, err
	}
	// A function body here is a single expression, not a statement
	// sequence with an explicit return — so this stand-in collaborator
	// treats "the body's value" as "the sole returned value", wrapping
	// it the way a real invokeFunction would wrap its statement-level
	// return expression.
	if ret, ok := result.(ReturnValue); ok {
		return ret, nil
	}
	return ReturnValue{Values: []ResolvedValue{result}}, nil
}
