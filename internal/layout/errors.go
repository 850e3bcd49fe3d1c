package layout

import (
	"fmt"

	"github.com/you-not-fish/pikgo/internal/syntax"
)

// An EvalError describes a failure to evaluate an expression: an undefined
// name, an operation on mismatched values, a division by zero.
type EvalError struct {
	Pos syntax.Pos
	Msg string
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

// A LayoutError describes a geometric failure: a reference to an object that
// is not placed yet, contradictory placement clauses, a failed assertion.
type LayoutError struct {
	Pos syntax.Pos
	Msg string
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

func evalErrorf(pos syntax.Pos, format string, args ...interface{}) error {
	return &EvalError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

func layoutErrorf(pos syntax.Pos, format string, args ...interface{}) error {
	return &LayoutError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}
