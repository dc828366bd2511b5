package evaluator

import (
	"github.com/funvibe/r1csdsl/internal/ast"
	"github.com/funvibe/r1csdsl/internal/gadget"
)

// dispatchArithmetic is a cascading type-switch over (operator, leftKind,
// rightKind) rather than a literal map, since a map keyed on the 3-tuple
// would obscure the asymmetric Pow row — the same shape funxy's
// EvalInfixExpression takes for its own (much larger) dispatch.
func (e *Evaluator) dispatchArithmetic(op ast.BinaryOperator, left, right ResolvedValue) (ResolvedValue, error) {
	switch op {
	case ast.OpAdd, ast.OpSub, ast.OpMul, ast.OpDiv:
		return e.dispatchAddSubMulDiv(op, left, right)
	case ast.OpPow:
		return e.dispatchPow(left, right)
	default:
		return nil, errTypeMismatch(string(op), left, right)
	}
}

func (e *Evaluator) dispatchAddSubMulDiv(op ast.BinaryOperator, left, right ResolvedValue) (ResolvedValue, error) {
	lu, lok := left.(U32Value)
	ru, rok := right.(U32Value)
	if lok && rok {
		word, err := e.u32Gadget(op, lu.Word, ru.Word)
		if err != nil {
			return nil, err
		}
		return U32Value{Word: word}, nil
	}

	lf, lok := left.(FieldElementValue)
	rf, rok := right.(FieldElementValue)
	if lok && rok {
		elem, err := e.fieldGadget(op, lf.Elem, rf.Elem)
		if err != nil {
			return nil, err
		}
		return FieldElementValue{Elem: elem}, nil
	}

	return nil, errTypeMismatch(string(op), left, right)
}

func (e *Evaluator) u32Gadget(op ast.BinaryOperator, a, b gadget.U32) (gadget.U32, error) {
	switch op {
	case ast.OpAdd:
		return e.builder.EnforceU32Add(a, b)
	case ast.OpSub:
		return e.builder.EnforceU32Sub(a, b)
	case ast.OpMul:
		return e.builder.EnforceU32Mul(a, b)
	case ast.OpDiv:
		return e.builder.EnforceU32Div(a, b)
	default:
		panic("evaluator: unreachable u32 gadget op " + string(op))
	}
}

func (e *Evaluator) fieldGadget(op ast.BinaryOperator, a, b gadget.FieldElement) (gadget.FieldElement, error) {
	switch op {
	case ast.OpAdd:
		return e.builder.EnforceFieldAdd(a, b)
	case ast.OpSub:
		return e.builder.EnforceFieldSub(a, b)
	case ast.OpMul:
		return e.builder.EnforceFieldMul(a, b)
	case ast.OpDiv:
		return e.builder.EnforceFieldDiv(a, b)
	default:
		panic("evaluator: unreachable field gadget op " + string(op))
	}
}

// dispatchPow handles Pow's asymmetric row: (U32, U32) and
// (FieldElement, U32) are legal; a FieldElement exponent is always the
// deliberate NonIntegerExponent failure, regardless of the base's kind;
// every other pairing is TypeMismatch.
func (e *Evaluator) dispatchPow(left, right ResolvedValue) (ResolvedValue, error) {
	if lu, ok := left.(U32Value); ok {
		if ru, ok := right.(U32Value); ok {
			word, err := e.builder.EnforceU32Pow(lu.Word, ru.Word)
			if err != nil {
				return nil, err
			}
			return U32Value{Word: word}, nil
		}
		if _, ok := right.(FieldElementValue); ok {
			return nil, errNonIntegerExponent(right)
		}
		return nil, errTypeMismatch(string(ast.OpPow), left, right)
	}

	if lf, ok := left.(FieldElementValue); ok {
		if ru, ok := right.(U32Value); ok {
			elem, err := e.builder.EnforceFieldPow(lf.Elem, ru.Word)
			if err != nil {
				return nil, err
			}
			return FieldElementValue{Elem: elem}, nil
		}
		if _, ok := right.(FieldElementValue); ok {
			return nil, errNonIntegerExponent(right)
		}
		return nil, errTypeMismatch(string(ast.OpPow), left, right)
	}

	return nil, errTypeMismatch(string(ast.OpPow), left, right)
}

// dispatchEquality handles the evaluating-form equality dispatch:
// same-variant pairs across Boolean, U32, FieldElement produce a
// Boolean; everything else is TypeMismatch.
func (e *Evaluator) dispatchEquality(left, right ResolvedValue) (ResolvedValue, error) {
	switch l := left.(type) {
	case BooleanValue:
		r, ok := right.(BooleanValue)
		if !ok {
			return nil, errTypeMismatch(string(ast.OpEq), left, right)
		}
		return BooleanValue{Bool: e.builder.BooleanEq(l.Bool, r.Bool)}, nil
	case U32Value:
		r, ok := right.(U32Value)
		if !ok {
			return nil, errTypeMismatch(string(ast.OpEq), left, right)
		}
		return BooleanValue{Bool: e.builder.U32Eq(l.Word, r.Word)}, nil
	case FieldElementValue:
		r, ok := right.(FieldElementValue)
		if !ok {
			return nil, errTypeMismatch(string(ast.OpEq), left, right)
		}
		return BooleanValue{Bool: e.builder.FieldEq(l.Elem, r.Elem)}, nil
	default:
		return nil, errTypeMismatch(string(ast.OpEq), left, right)
	}
}
