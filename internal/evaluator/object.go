package evaluator

import (
	"fmt"
	"strings"

	"github.com/funvibe/r1csdsl/internal/ast"
	"github.com/funvibe/r1csdsl/internal/gadget"
	"github.com/funvibe/r1csdsl/internal/symbols"
)

// Kind tags a ResolvedValue variant, mirroring funxy's ObjectType string
// constants (internal/evaluator/object.go) but closed over exactly the
// eight variants the evaluator's value domain names — no type system
// beyond that.
type Kind string

const (
	KindU32              Kind = "U32"
	KindFieldElement     Kind = "FieldElement"
	KindBoolean          Kind = "Boolean"
	KindArray            Kind = "Array"
	KindStructDefinition Kind = "StructDefinition"
	KindStructExpression Kind = "StructExpression"
	KindFunction         Kind = "Function"
	KindReturn           Kind = "Return"
)

// ResolvedValue is the sum type at the heart of the evaluator. It also
// implements symbols.Value so a SymbolTable can store it without that
// package importing this one.
type ResolvedValue interface {
	symbols.Value
	Kind() Kind
	// Summary renders a short human-readable description of the value
	// for diagnostics and trace logging.
	Summary() string
}

// U32Value wraps a gadget-bound 32-bit word.
type U32Value struct {
	Word gadget.U32
}

func (v U32Value) Kind() Kind             { return KindU32 }
func (v U32Value) Clone() symbols.Value   { return v }
func (v U32Value) Summary() string        { return fmt.Sprintf("U32(%d)", v.Word.Value) }

// FieldElementValue wraps a gadget-bound prime-field element.
type FieldElementValue struct {
	Elem gadget.FieldElement
}

func (v FieldElementValue) Kind() Kind           { return KindFieldElement }
func (v FieldElementValue) Clone() symbols.Value { return v }
func (v FieldElementValue) Summary() string      { return fmt.Sprintf("FieldElement(%s)", v.Elem.Value.String()) }

// BooleanValue wraps a gadget-bound boolean.
type BooleanValue struct {
	Bool gadget.Boolean
}

func (v BooleanValue) Kind() Kind           { return KindBoolean }
func (v BooleanValue) Clone() symbols.Value { return v }
func (v BooleanValue) Summary() string      { return fmt.Sprintf("Boolean(%v)", v.Bool.Value) }

// ArrayValue is a sequence of resolved values. Homogeneity is not
// enforced.
type ArrayValue struct {
	Elements []ResolvedValue
}

func (v ArrayValue) Kind() Kind { return KindArray }

// Clone deep-copies the element slice so one binding's later mutation
// (there is none today, but array construction reads from it repeatedly)
// can never be observed through another name bound to the same array.
func (v ArrayValue) Clone() symbols.Value {
	cloned := make([]ResolvedValue, len(v.Elements))
	for i, e := range v.Elements {
		cloned[i] = e.Clone().(ResolvedValue)
	}
	return ArrayValue{Elements: cloned}
}

func (v ArrayValue) Summary() string {
	parts := make([]string, len(v.Elements))
	for i, e := range v.Elements {
		parts[i] = e.Summary()
	}
	return "Array[" + strings.Join(parts, ", ") + "]"
}

// StructField is one declared field of a StructDefinitionValue. It
// records the field name only; the field's declared type is not stored.
type StructField struct {
	Name string
}

// StructDefinitionValue is a declared struct template. It lives only in
// the global tier — struct definitions are never locally scoped.
type StructDefinitionValue struct {
	Name   string
	Fields []StructField
}

func (v StructDefinitionValue) Kind() Kind           { return KindStructDefinition }
func (v StructDefinitionValue) Clone() symbols.Value {
	fields := make([]StructField, len(v.Fields))
	copy(fields, v.Fields)
	return StructDefinitionValue{Name: v.Name, Fields: fields}
}
func (v StructDefinitionValue) Summary() string      { return fmt.Sprintf("StructDefinition(%s)", v.Name) }

// StructMemberValue is one resolved (fieldName, value) pair of an
// instantiated struct.
type StructMemberValue struct {
	FieldName string
	Value     ResolvedValue
}

// StructExpressionValue is an instantiated struct literal, an ordered
// list of resolved members.
type StructExpressionValue struct {
	StructName string
	Members    []StructMemberValue
}

func (v StructExpressionValue) Kind() Kind { return KindStructExpression }

func (v StructExpressionValue) Clone() symbols.Value {
	cloned := make([]StructMemberValue, len(v.Members))
	for i, m := range v.Members {
		cloned[i] = StructMemberValue{FieldName: m.FieldName, Value: m.Value.Clone().(ResolvedValue)}
	}
	return StructExpressionValue{StructName: v.StructName, Members: cloned}
}

func (v StructExpressionValue) Summary() string {
	parts := make([]string, len(v.Members))
	for i, m := range v.Members {
		parts[i] = fmt.Sprintf("%s: %s", m.FieldName, m.Value.Summary())
	}
	return fmt.Sprintf("%s{%s}", v.StructName, strings.Join(parts, ", "))
}

// FunctionValue is a declared function body plus parameter list. It
// lives only in the global tier — function declarations are never
// locally scoped.
type FunctionValue struct {
	Name       string
	Parameters []string
	Body       ast.Expression
}

func (v FunctionValue) Kind() Kind           { return KindFunction }
func (v FunctionValue) Clone() symbols.Value {
	params := make([]string, len(v.Parameters))
	copy(params, v.Parameters)
	return FunctionValue{Name: v.Name, Parameters: params, Body: v.Body}
}
func (v FunctionValue) Summary() string      { return fmt.Sprintf("Function(%s/%d)", v.Name, len(v.Parameters)) }

// ReturnValue is a multi-value return from a function invocation. It
// appears only as the immediate result of call inlining — never stored
// in the symbol table or nested inside another ResolvedValue.
type ReturnValue struct {
	Values []ResolvedValue
}

func (v ReturnValue) Kind() Kind { return KindReturn }

func (v ReturnValue) Clone() symbols.Value {
	cloned := make([]ResolvedValue, len(v.Values))
	for i, e := range v.Values {
		cloned[i] = e.Clone().(ResolvedValue)
	}
	return ReturnValue{Values: cloned}
}

func (v ReturnValue) Summary() string {
	parts := make([]string, len(v.Values))
	for i, e := range v.Values {
		parts[i] = e.Summary()
	}
	return "Return(" + strings.Join(parts, ", ") + ")"
}
