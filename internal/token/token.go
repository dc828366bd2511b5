// Package token carries source positions through the AST; every node
// reports its own through Pos(). The evaluator's EvalError does not
// include a position.
package token

import "fmt"

// Position is a single point in a source file. Line and Column are
// 1-indexed; a zero Position means "unknown" (e.g. a synthetic node built
// by a test).
type Position struct {
	File   string
	Line   int
	Column int
}

func (p Position) String() string {
	if p.Line == 0 {
		return "<unknown>"
	}
	if p.File == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

// IsZero reports whether the position carries no location information.
func (p Position) IsZero() bool {
	return p.Line == 0 && p.Column == 0 && p.File == ""
}
