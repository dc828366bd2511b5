package evaluator

import (
	"fmt"

	"github.com/funvibe/r1csdsl/internal/ast"
)

// evalArray builds an array literal: spreads of an array-valued Variable
// are inlined in place, plain elements are evaluated and appended,
// source order is preserved.
func (e *Evaluator) evalArray(fileScope, functionScope string, node *ast.ArrayExpression) (ResolvedValue, error) {
	elements := make([]ResolvedValue, 0, len(node.Elements))
	for _, el := range node.Elements {
		if !el.Spread {
			v, err := e.evaluate(fileScope, functionScope, el.Value)
			if err != nil {
				return nil, err
			}
			elements = append(elements, v)
			continue
		}

		v, ok := el.Value.(*ast.Variable)
		if !ok {
			return nil, errSpreadOfNonArray("spread operand must be a variable")
		}
		resolved, err := e.evaluate(fileScope, functionScope, v)
		if err != nil {
			return nil, err
		}
		arr, ok := resolved.(ArrayValue)
		if !ok {
			return nil, errSpreadOfNonArray(fmt.Sprintf("%s is %s, not Array", v.Name, resolved.Kind()))
		}
		elements = append(elements, arr.Elements...)
	}
	return ArrayValue{Elements: elements}, nil
}

// evalArrayAccess implements array access: a Range slices with
// statically known half-open bounds, a plain expression indexes via
// enforceIndex.
func (e *Evaluator) evalArrayAccess(fileScope, functionScope string, node *ast.ArrayAccessExpression) (ResolvedValue, error) {
	resolved, err := e.evaluate(fileScope, functionScope, node.Array)
	if err != nil {
		return nil, err
	}
	arr, ok := resolved.(ArrayValue)
	if !ok {
		return nil, errTypeMismatch("[]", resolved, resolved)
	}

	if node.Arg.IsRange {
		from := 0
		if node.Arg.From != nil {
			i, err := e.enforceIndex(fileScope, functionScope, node.Arg.From)
			if err != nil {
				return nil, err
			}
			from = i
		}
		to := len(arr.Elements)
		if node.Arg.To != nil {
			i, err := e.enforceIndex(fileScope, functionScope, node.Arg.To)
			if err != nil {
				return nil, err
			}
			to = i
		}
		if from < 0 || to < from || to > len(arr.Elements) {
			return nil, errIndexOutOfRange("slice", fmt.Sprintf("%d..%d out of bounds for length %d", from, to, len(arr.Elements)))
		}
		sliced := make([]ResolvedValue, to-from)
		copy(sliced, arr.Elements[from:to])
		return ArrayValue{Elements: sliced}, nil
	}

	i, err := e.enforceIndex(fileScope, functionScope, node.Arg.Index)
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= len(arr.Elements) {
		return nil, errIndexOutOfRange("index", fmt.Sprintf("%d out of bounds for length %d", i, len(arr.Elements)))
	}
	return arr.Elements[i], nil
}

// enforceIndex evaluates expr and requires a U32 result with a
// statically extractable value: the word must be a compile-time
// constant (Constant), so a witness-only U32 fails NonIntegerIndex. The
// reference gadget.U32 always carries a value (HasValue reports true
// unconditionally), but the HasValue check is kept so a future Builder
// that does produce value-less U32s is still honored.
func (e *Evaluator) enforceIndex(fileScope, functionScope string, expr ast.Expression) (int, error) {
	resolved, err := e.evaluate(fileScope, functionScope, expr)
	if err != nil {
		return 0, err
	}
	u, ok := resolved.(U32Value)
	if !ok || !u.Word.HasValue() || !u.Word.Constant {
		return 0, errNonIntegerIndex(resolved)
	}
	return int(u.Word.Value), nil
}

// evalStruct builds a struct literal. Any arity mismatch between the
// declared fields and the provided members is a StructFieldMismatch,
// not just a shorter-prefix name mismatch.
func (e *Evaluator) evalStruct(fileScope, functionScope string, node *ast.StructExpression) (ResolvedValue, error) {
	looked, ok := e.symbols.GlobalLookup(fileScope, node.StructName)
	if !ok {
		return nil, errUnknownStruct(node.StructName)
	}
	def, ok := looked.(StructDefinitionValue)
	if !ok {
		return nil, errNotAStruct(node.StructName, looked.(ResolvedValue))
	}

	if len(def.Fields) != len(node.Members) {
		return nil, errStructFieldMismatch(node.StructName, fmt.Sprintf("declared %d fields, got %d members", len(def.Fields), len(node.Members)))
	}

	members := make([]StructMemberValue, len(node.Members))
	for i, provided := range node.Members {
		if provided.FieldName != def.Fields[i].Name {
			return nil, errStructFieldMismatch(node.StructName, fmt.Sprintf("position %d: declared %q, got %q", i, def.Fields[i].Name, provided.FieldName))
		}
		v, err := e.evaluate(fileScope, functionScope, provided.Value)
		if err != nil {
			return nil, err
		}
		members[i] = StructMemberValue{FieldName: provided.FieldName, Value: v}
	}
	return StructExpressionValue{StructName: node.StructName, Members: members}, nil
}

// evalStructMemberAccess implements dotted field access.
func (e *Evaluator) evalStructMemberAccess(fileScope, functionScope string, node *ast.StructMemberAccessExpression) (ResolvedValue, error) {
	resolved, err := e.evaluate(fileScope, functionScope, node.Struct)
	if err != nil {
		return nil, err
	}
	s, ok := resolved.(StructExpressionValue)
	if !ok {
		return nil, errNotAStruct("<expression>", resolved)
	}
	for _, m := range s.Members {
		if m.FieldName == node.Field {
			return m.Value, nil
		}
	}
	return nil, errUnknownStructMember(s.StructName, node.Field)
}
