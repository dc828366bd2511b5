// Package gadget is the constraint-system / gadget-layer collaborator:
// a real ConstraintSystem and its field-gadget primitives are explicitly
// out of scope for the evaluator this repository builds — but the
// evaluator still needs something concrete to call through, so this
// package provides one: a small, append-only R1CS-shaped builder over a
// real prime field.
//
// Shape grounded on okx-gnark's frontend.API (other_examples/
// 5b4e0014_okx-gnark__frontend-api.go.go): opaque Variable-like value
// types, arithmetic and assertion methods named after what they enforce.
// The field itself is github.com/consensys/gnark-crypto's bn254 scalar
// field, the same library gnark's own frontend sits on top of.
package gadget

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// U32 is a 32-bit word bound to the constraint system. A U32 produced by
// GetIntegerConstant carries its value and no wire; once it participates
// in an Enforce* call it is considered "bound" (Wire true) even though
// this reference implementation does not allocate real wire indices.
//
// Constant is independent of Wire: it tracks whether the value is known
// at circuit-compile time (derived only from literals), the way a real
// witness-carrying builder distinguishes a public/constant wire from a
// prover-only one even though both "have a value" once computed in the
// clear. Every Enforce* result's Constant is the AND of its operands'.
type U32 struct {
	Value    uint32
	Wire     bool
	Constant bool

	// bits holds a lazily computed little-endian bit decomposition, used
	// only by gadgets that need individual bits. Most arithmetic gadgets
	// never touch it.
	bits *bitset.BitSet
}

// HasValue reports whether the word carries a statically known value —
// true for every U32 this reference builder produces, since it has no
// notion of an unconstrained witness. Kept as a method (rather than
// always true) so callers like enforceIndex don't need to special-case
// the reference builder vs. a real one where some U32s are witness-only.
func (u U32) HasValue() bool { return true }

// Bits returns the little-endian bit decomposition, computing it on
// first use.
func (u *U32) Bits() *bitset.BitSet {
	if u.bits == nil {
		b := bitset.New(32)
		for i := uint(0); i < 32; i++ {
			if u.Value&(1<<i) != 0 {
				b.Set(i)
			}
		}
		u.bits = b
	}
	return u.bits
}

// FieldElement is a prime-field element bound to the constraint system.
// See U32's Constant field for what Constant tracks here.
type FieldElement struct {
	Value    fr.Element
	Wire     bool
	Constant bool
}

// Boolean is a constrained 0/1 field element. Constant is what an
// IfElse guard actually needs to check: a Boolean is safe to branch on
// only when it is foldable at compile time, regardless of whether the
// reference builder also happens to know its clear value (it always
// does — see U32.HasValue). Mirrors how a real boolean gadget (e.g. the
// Rust bellman/arkworks Boolean::Constant variant) propagates constness
// through and/or/not/eq instead of conflating it with "has a value".
type Boolean struct {
	Value    bool
	Wire     bool
	Constant bool
}
