package evaluator

import (
	"fmt"

	"golang.org/x/xerrors"
)

// ErrKind names one entry of the error taxonomy.
type ErrKind string

const (
	ErrUnknownName         ErrKind = "UnknownName"
	ErrUnknownFunction     ErrKind = "UnknownFunction"
	ErrUnknownStruct       ErrKind = "UnknownStruct"
	ErrUnknownStructMember ErrKind = "UnknownStructMember"
	ErrTypeMismatch        ErrKind = "TypeMismatch"
	ErrNonIntegerExponent  ErrKind = "NonIntegerExponent"
	ErrNonIntegerIndex     ErrKind = "NonIntegerIndex"
	ErrNotAStruct          ErrKind = "NotAStruct"
	ErrNotAFunction        ErrKind = "NotAFunction"
	ErrSpreadOfNonArray    ErrKind = "SpreadOfNonArray"
	ErrStructFieldMismatch ErrKind = "StructFieldMismatch"
	ErrIndexOutOfRange     ErrKind = "IndexOutOfRange"
	ErrMissingReturn       ErrKind = "MissingReturn"
	ErrUnimplemented       ErrKind = "Unimplemented"
)

// EvalError is the error type of every taxonomy entry above, carrying
// enough of the offending context (name, operator, variant summaries) to
// satisfy the diagnostic requirement. Errors returned by the gadget
// builder (e.g. division by zero) and by field-element literal parsing
// pass through evaluate as they are, not as an EvalError.
type EvalError struct {
	Kind    ErrKind
	Subject string // offending variable name, operator, or feature name
	Detail  string // additional context, e.g. operand variant summaries
}

func (e *EvalError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Subject)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Subject, e.Detail)
}

// newEvalError wraps an EvalError through xerrors so the usual %+v frame
// trace is available in development builds while errors.As still finds
// the concrete *EvalError, the same wrap-don't-lose-context idiom
// onflow-cadence uses x/xerrors for.
func newEvalError(kind ErrKind, subject, detail string) error {
	return xerrors.Errorf("evaluator: %w", &EvalError{Kind: kind, Subject: subject, Detail: detail})
}

func errUnknownName(name string) error {
	return newEvalError(ErrUnknownName, name, "")
}

func errUnknownFunction(name string) error {
	return newEvalError(ErrUnknownFunction, name, "")
}

func errUnknownStruct(name string) error {
	return newEvalError(ErrUnknownStruct, name, "")
}

func errUnknownStructMember(structName, field string) error {
	return newEvalError(ErrUnknownStructMember, field, "struct "+structName)
}

func errTypeMismatch(op string, left, right ResolvedValue) error {
	return newEvalError(ErrTypeMismatch, op, fmt.Sprintf("%s, %s", left.Kind(), right.Kind()))
}

func errNonIntegerExponent(right ResolvedValue) error {
	return newEvalError(ErrNonIntegerExponent, "**", fmt.Sprintf("exponent kind %s", right.Kind()))
}

func errNonIntegerIndex(v ResolvedValue) error {
	return newEvalError(ErrNonIntegerIndex, "index", fmt.Sprintf("index kind %s", v.Kind()))
}

func errNotAStruct(name string, v ResolvedValue) error {
	return newEvalError(ErrNotAStruct, name, fmt.Sprintf("got %s", v.Kind()))
}

func errNotAFunction(name string, v ResolvedValue) error {
	return newEvalError(ErrNotAFunction, name, fmt.Sprintf("got %s", v.Kind()))
}

func errSpreadOfNonArray(detail string) error {
	return newEvalError(ErrSpreadOfNonArray, "...", detail)
}

func errStructFieldMismatch(structName, detail string) error {
	return newEvalError(ErrStructFieldMismatch, structName, detail)
}

func errIndexOutOfRange(subject string, detail string) error {
	return newEvalError(ErrIndexOutOfRange, subject, detail)
}

func errMissingReturn(fn string, v ResolvedValue) error {
	return newEvalError(ErrMissingReturn, fn, fmt.Sprintf("got %s", v.Kind()))
}

func errUnimplemented(feature string) error {
	return newEvalError(ErrUnimplemented, feature, "")
}
