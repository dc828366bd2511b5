package gadget

import (
	"fmt"
	"math/big"

	"github.com/rs/zerolog"
)

// Constraint is one entry of the append-only log a Builder accumulates.
// It exists so tests can snapshot-compare constraint-append order
// against golden output.
type Constraint struct {
	Op     string
	Inputs []string
	Output string
}

// Builder is the gadget-layer collaborator the evaluator drives. Every
// method name mirrors the operation it enforces directly.
type Builder interface {
	GetIntegerConstant(v uint32) U32
	GetBooleanConstant(v bool) Boolean

	EnforceU32Add(a, b U32) (U32, error)
	EnforceU32Sub(a, b U32) (U32, error)
	EnforceU32Mul(a, b U32) (U32, error)
	EnforceU32Div(a, b U32) (U32, error)
	EnforceU32Pow(a, b U32) (U32, error)

	EnforceFieldAdd(a, b FieldElement) (FieldElement, error)
	EnforceFieldSub(a, b FieldElement) (FieldElement, error)
	EnforceFieldMul(a, b FieldElement) (FieldElement, error)
	EnforceFieldDiv(a, b FieldElement) (FieldElement, error)
	EnforceFieldPow(base FieldElement, exp U32) (FieldElement, error)

	U32Eq(a, b U32) Boolean
	FieldEq(a, b FieldElement) Boolean
	BooleanEq(a, b Boolean) Boolean

	EnforceAnd(a, b Boolean) Boolean
	EnforceOr(a, b Boolean) Boolean
	EnforceNot(a Boolean) Boolean

	// Constraints returns the constraint log accumulated so far, in
	// append order. The returned slice must not be mutated by callers.
	Constraints() []Constraint
}

// R1CSBuilder is the reference Builder: every Enforce* call appends one
// Constraint to an in-memory log and immediately computes the result
// in the clear (there is no separate witness/proving phase — this
// stands in for the downstream prover, which is out of scope).
type R1CSBuilder struct {
	constraints []Constraint
	log         zerolog.Logger
	trace       bool
}

// NewR1CSBuilder returns a fresh builder. When trace is true, every
// appended constraint is also emitted as a structured debug log line
// through logger, giving the observable append order an audit trail
// independent of Constraints().
func NewR1CSBuilder(logger zerolog.Logger, trace bool) *R1CSBuilder {
	return &R1CSBuilder{log: logger, trace: trace}
}

func (b *R1CSBuilder) append(op string, inputs []string, output string) {
	c := Constraint{Op: op, Inputs: inputs, Output: output}
	b.constraints = append(b.constraints, c)
	if b.trace {
		b.log.Debug().
			Str("op", c.Op).
			Strs("inputs", c.Inputs).
			Str("output", c.Output).
			Int("seq", len(b.constraints)).
			Msg("constraint appended")
	}
}

func (b *R1CSBuilder) Constraints() []Constraint {
	return b.constraints
}

func (b *R1CSBuilder) GetIntegerConstant(v uint32) U32 {
	return U32{Value: v, Constant: true}
}

func (b *R1CSBuilder) GetBooleanConstant(v bool) Boolean {
	return Boolean{Value: v, Constant: true}
}

func u32Strs(a, b U32) []string {
	return []string{fmt.Sprintf("%d", a.Value), fmt.Sprintf("%d", b.Value)}
}

func (b *R1CSBuilder) EnforceU32Add(a, c U32) (U32, error) {
	res := U32{Value: a.Value + c.Value, Wire: true, Constant: a.Constant && c.Constant}
	b.append("u32.add", u32Strs(a, c), fmt.Sprintf("%d", res.Value))
	return res, nil
}

func (b *R1CSBuilder) EnforceU32Sub(a, c U32) (U32, error) {
	res := U32{Value: a.Value - c.Value, Wire: true, Constant: a.Constant && c.Constant}
	b.append("u32.sub", u32Strs(a, c), fmt.Sprintf("%d", res.Value))
	return res, nil
}

func (b *R1CSBuilder) EnforceU32Mul(a, c U32) (U32, error) {
	res := U32{Value: a.Value * c.Value, Wire: true, Constant: a.Constant && c.Constant}
	b.append("u32.mul", u32Strs(a, c), fmt.Sprintf("%d", res.Value))
	return res, nil
}

func (b *R1CSBuilder) EnforceU32Div(a, c U32) (U32, error) {
	if c.Value == 0 {
		return U32{}, fmt.Errorf("gadget: u32 division by zero")
	}
	res := U32{Value: a.Value / c.Value, Wire: true, Constant: a.Constant && c.Constant}
	b.append("u32.div", u32Strs(a, c), fmt.Sprintf("%d", res.Value))
	return res, nil
}

func (b *R1CSBuilder) EnforceU32Pow(a, c U32) (U32, error) {
	res := U32{Value: uint32(intPow(uint64(a.Value), uint64(c.Value))), Wire: true, Constant: a.Constant && c.Constant}
	b.append("u32.pow", u32Strs(a, c), fmt.Sprintf("%d", res.Value))
	return res, nil
}

func intPow(base, exp uint64) uint64 {
	result := uint64(1)
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}

func feStrs(a, c FieldElement) []string {
	return []string{a.Value.String(), c.Value.String()}
}

func (b *R1CSBuilder) EnforceFieldAdd(a, c FieldElement) (FieldElement, error) {
	var res FieldElement
	res.Value.Add(&a.Value, &c.Value)
	res.Wire = true
	res.Constant = a.Constant && c.Constant
	b.append("field.add", feStrs(a, c), res.Value.String())
	return res, nil
}

func (b *R1CSBuilder) EnforceFieldSub(a, c FieldElement) (FieldElement, error) {
	var res FieldElement
	res.Value.Sub(&a.Value, &c.Value)
	res.Wire = true
	res.Constant = a.Constant && c.Constant
	b.append("field.sub", feStrs(a, c), res.Value.String())
	return res, nil
}

func (b *R1CSBuilder) EnforceFieldMul(a, c FieldElement) (FieldElement, error) {
	var res FieldElement
	res.Value.Mul(&a.Value, &c.Value)
	res.Wire = true
	res.Constant = a.Constant && c.Constant
	b.append("field.mul", feStrs(a, c), res.Value.String())
	return res, nil
}

func (b *R1CSBuilder) EnforceFieldDiv(a, c FieldElement) (FieldElement, error) {
	if c.Value.IsZero() {
		return FieldElement{}, fmt.Errorf("gadget: field division by zero")
	}
	var res FieldElement
	res.Value.Div(&a.Value, &c.Value)
	res.Wire = true
	res.Constant = a.Constant && c.Constant
	b.append("field.div", feStrs(a, c), res.Value.String())
	return res, nil
}

func (b *R1CSBuilder) EnforceFieldPow(base FieldElement, exp U32) (FieldElement, error) {
	var res FieldElement
	k := new(big.Int).SetUint64(uint64(exp.Value))
	res.Value.Exp(base.Value, k)
	res.Wire = true
	res.Constant = base.Constant && exp.Constant
	b.append("field.pow", []string{base.Value.String(), fmt.Sprintf("%d", exp.Value)}, res.Value.String())
	return res, nil
}

func (b *R1CSBuilder) U32Eq(a, c U32) Boolean {
	res := Boolean{Value: a.Value == c.Value, Wire: true, Constant: a.Constant && c.Constant}
	b.append("u32.eq", u32Strs(a, c), fmt.Sprintf("%v", res.Value))
	return res
}

func (b *R1CSBuilder) FieldEq(a, c FieldElement) Boolean {
	res := Boolean{Value: a.Value.Equal(&c.Value), Wire: true, Constant: a.Constant && c.Constant}
	b.append("field.eq", feStrs(a, c), fmt.Sprintf("%v", res.Value))
	return res
}

func (b *R1CSBuilder) BooleanEq(a, c Boolean) Boolean {
	res := Boolean{Value: a.Value == c.Value, Wire: true, Constant: a.Constant && c.Constant}
	b.append("bool.eq", []string{fmt.Sprintf("%v", a.Value), fmt.Sprintf("%v", c.Value)}, fmt.Sprintf("%v", res.Value))
	return res
}

func (b *R1CSBuilder) EnforceAnd(a, c Boolean) Boolean {
	res := Boolean{Value: a.Value && c.Value, Wire: true, Constant: a.Constant && c.Constant}
	b.append("bool.and", []string{fmt.Sprintf("%v", a.Value), fmt.Sprintf("%v", c.Value)}, fmt.Sprintf("%v", res.Value))
	return res
}

func (b *R1CSBuilder) EnforceOr(a, c Boolean) Boolean {
	res := Boolean{Value: a.Value || c.Value, Wire: true, Constant: a.Constant && c.Constant}
	b.append("bool.or", []string{fmt.Sprintf("%v", a.Value), fmt.Sprintf("%v", c.Value)}, fmt.Sprintf("%v", res.Value))
	return res
}

func (b *R1CSBuilder) EnforceNot(a Boolean) Boolean {
	res := Boolean{Value: !a.Value, Wire: true, Constant: a.Constant}
	b.append("bool.not", []string{fmt.Sprintf("%v", a.Value)}, fmt.Sprintf("%v", res.Value))
	return res
}

// FieldElementFromString parses a decimal (or 0x-prefixed hex) literal
// into a field element, reducing modulo the field's prime as
// fr.Element.SetString already does. A literal is always Constant.
func FieldElementFromString(s string) (FieldElement, error) {
	var fe FieldElement
	if _, err := fe.Value.SetString(s); err != nil {
		return FieldElement{}, fmt.Errorf("gadget: invalid field element literal %q: %w", s, err)
	}
	fe.Constant = true
	return fe, nil
}
