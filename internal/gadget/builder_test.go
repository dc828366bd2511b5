package gadget

import (
	"io"
	"testing"

	"github.com/rs/zerolog"
)

func testLogger() zerolog.Logger { return zerolog.New(io.Discard) }

func TestEnforceU32Add(t *testing.T) {
	b := NewR1CSBuilder(testLogger(), false)
	a := b.GetIntegerConstant(2)
	c := b.GetIntegerConstant(3)

	res, err := b.EnforceU32Add(a, c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Value != 5 {
		t.Fatalf("expected 5, got %d", res.Value)
	}
	if len(b.Constraints()) != 1 || b.Constraints()[0].Op != "u32.add" {
		t.Fatalf("expected one u32.add constraint, got %+v", b.Constraints())
	}
}

func TestEnforceU32DivByZero(t *testing.T) {
	b := NewR1CSBuilder(testLogger(), false)
	a := b.GetIntegerConstant(10)
	zero := b.GetIntegerConstant(0)

	if _, err := b.EnforceU32Div(a, zero); err == nil {
		t.Fatalf("expected division-by-zero error")
	}
	if len(b.Constraints()) != 0 {
		t.Fatalf("expected no constraint appended on error, got %+v", b.Constraints())
	}
}

func TestEnforceU32Pow(t *testing.T) {
	b := NewR1CSBuilder(testLogger(), false)
	base := b.GetIntegerConstant(2)
	exp := b.GetIntegerConstant(10)

	res, err := b.EnforceU32Pow(base, exp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Value != 1024 {
		t.Fatalf("expected 1024, got %d", res.Value)
	}
}

func TestEnforceFieldMul(t *testing.T) {
	b := NewR1CSBuilder(testLogger(), false)
	a, err := FieldElementFromString("5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c, err := FieldElementFromString("7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	res, err := b.EnforceFieldMul(a, c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Value.String() != "35" {
		t.Fatalf("expected 35, got %s", res.Value.String())
	}
}

func TestEnforceFieldDivByZero(t *testing.T) {
	b := NewR1CSBuilder(testLogger(), false)
	a, _ := FieldElementFromString("5")
	zero, _ := FieldElementFromString("0")

	if _, err := b.EnforceFieldDiv(a, zero); err == nil {
		t.Fatalf("expected division-by-zero error")
	}
}

func TestU32EqAndBooleanGadgets(t *testing.T) {
	b := NewR1CSBuilder(testLogger(), false)
	a := b.GetIntegerConstant(4)
	c := b.GetIntegerConstant(4)

	if eq := b.U32Eq(a, c); !eq.Value {
		t.Fatalf("expected 4 == 4")
	}

	and := b.EnforceAnd(b.GetBooleanConstant(true), b.GetBooleanConstant(false))
	if and.Value {
		t.Fatalf("expected true && false == false")
	}

	not := b.EnforceNot(b.GetBooleanConstant(false))
	if !not.Value {
		t.Fatalf("expected !false == true")
	}
}

func TestConstantPropagatesThroughBooleanGadgets(t *testing.T) {
	b := NewR1CSBuilder(testLogger(), false)
	one := b.GetIntegerConstant(1)
	other := b.GetIntegerConstant(1)

	eq := b.U32Eq(one, other)
	if !eq.Wire {
		t.Fatalf("expected U32Eq result to be Wire, as every Enforce*/*Eq result is")
	}
	if !eq.Constant {
		t.Fatalf("expected U32Eq of two constants to itself be Constant")
	}

	and := b.EnforceAnd(b.GetBooleanConstant(true), b.GetBooleanConstant(true))
	if !and.Constant {
		t.Fatalf("expected EnforceAnd of two constants to itself be Constant")
	}

	witnessLike := one
	witnessLike.Constant = false
	mixed := b.U32Eq(witnessLike, other)
	if mixed.Constant {
		t.Fatalf("expected U32Eq with one non-constant operand to not be Constant")
	}
}

func TestConstraintOrderIsAppendOnly(t *testing.T) {
	b := NewR1CSBuilder(testLogger(), false)
	a := b.GetIntegerConstant(1)
	c := b.GetIntegerConstant(1)

	if _, err := b.EnforceU32Add(a, c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := b.EnforceU32Mul(a, c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cs := b.Constraints()
	if len(cs) != 2 || cs[0].Op != "u32.add" || cs[1].Op != "u32.mul" {
		t.Fatalf("expected [u32.add, u32.mul] in order, got %+v", cs)
	}
}
