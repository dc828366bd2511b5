// Package symbols implements a two-tier symbol table: global (file-scope)
// and local (function-scope) storage for resolved values, keyed by
// "<scope>::<name>" strings.
//
// Grounded on funvibe-funxy's internal/symbols/symbol_table_core.go and
// symbol_table_resolution.go: the "fall through to an outer scope on a
// miss" lookup shape is kept, flattened to two maps that store Values
// directly (no scope chain, no Symbol wrapper); everything about trait dispatch, kind checking and type unification is
// dropped — this evaluator has no typechecker, so there is nothing for
// those to feed.
package symbols

// Value is anything a SymbolTable can store. It is a marker interface
// rather than interface{} so that the package's dependency on its real
// payload type (evaluator.ResolvedValue) stays one-directional: this
// package never imports evaluator, evaluator's ResolvedValue variants
// simply implement Value.
//
// Clone must return a value such that mutating the clone never affects
// the stored original. Returned values are cloned on lookup because a
// ResolvedValue participates in further sub-evaluations that may mutate
// it in place.
type Value interface {
	Clone() Value
}

// ScopeKey composes a scope prefix and a variable name into the
// "<scope>::<name>" string both tiers are keyed by.
func ScopeKey(scope, name string) string {
	return scope + "::" + name
}

// FunctionScope composes the function-scope prefix used to key local
// bindings: "<file>::<function>".
func FunctionScope(file, function string) string {
	return file + "::" + function
}

// FileScope is the file-scope prefix used to key global bindings. It is
// the identity function today (a scope is just the file path) but named
// so call sites read as intent, not string plumbing, and so a future
// multi-module scheme has one place to change.
func FileScope(file string) string {
	return file
}

// SymbolTable holds a program's { local, global } binding pair.
type SymbolTable struct {
	local  map[string]Value
	global map[string]Value
}

// NewSymbolTable returns an empty SymbolTable.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		local:  make(map[string]Value),
		global: make(map[string]Value),
	}
}

// WithLocal binds each name in bindings under functionScope in the local
// tier, the step a fresh function invocation takes before its body is
// evaluated. Returns the receiver so call sites can chain it onto
// construction, mirroring funxy's NewEnclosedEnvironment child-scope
// idiom adapted to this table's flat two-tier model.
func (t *SymbolTable) WithLocal(functionScope string, bindings map[string]Value) *SymbolTable {
	for name, v := range bindings {
		t.SetLocal(functionScope, name, v)
	}
	return t
}

// Lookup resolves a name: consult local first under functionScope, then
// fall back to global under fileScope. The returned value is a clone,
// per the cloning note on Value above.
func (t *SymbolTable) Lookup(functionScope, fileScope, name string) (Value, bool) {
	if v, ok := t.local[ScopeKey(functionScope, name)]; ok {
		return v.Clone(), true
	}
	if v, ok := t.global[ScopeKey(fileScope, name)]; ok {
		return v.Clone(), true
	}
	return nil, false
}

// GlobalLookup resolves a name against the global tier only. Used by
// struct and function construction sites, whose names can only ever
// resolve there.
func (t *SymbolTable) GlobalLookup(fileScope, name string) (Value, bool) {
	v, ok := t.global[ScopeKey(fileScope, name)]
	if !ok {
		return nil, false
	}
	return v.Clone(), true
}

// SetGlobal registers a binding in the global tier, keyed by
// "<fileScope>::<name>". Used by the (external) declaration-registration
// step before evaluation begins, and never by the evaluator itself.
func (t *SymbolTable) SetGlobal(fileScope, name string, v Value) {
	t.global[ScopeKey(fileScope, name)] = v
}

// SetLocal registers a binding in the local tier, keyed by
// "<functionScope>::<name>". Used by the (external) function-call-frame
// setup collaborator to bind parameters before the body is evaluated.
func (t *SymbolTable) SetLocal(functionScope, name string, v Value) {
	t.local[ScopeKey(functionScope, name)] = v
}

// DropLocals removes every local binding under functionScope. Called
// once a function-call frame's body has finished evaluating, so the
// flat local map doesn't accumulate bindings across unrelated calls:
// local is populated by function-call setup and drained on return.
func (t *SymbolTable) DropLocals(functionScope string) {
	prefix := functionScope + "::"
	for k := range t.local {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			delete(t.local, k)
		}
	}
}
