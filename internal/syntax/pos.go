package syntax

import "fmt"

// Pos represents a position in the diagram source.
// The zero value is an invalid position.
type Pos struct {
	line uint32 // 1-based line number
	col  uint32 // 1-based column number (rune count in line)
}

// NewPos creates a new Pos with the given line and column.
// Line and column numbers are 1-based.
func NewPos(line, col uint32) Pos {
	return Pos{line: line, col: col}
}

// String returns the position in the format "line:col".
func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.line, p.col)
}

// IsValid reports whether the position is valid.
// A position is valid if line > 0.
func (p Pos) IsValid() bool {
	return p.line > 0
}

// Line returns the 1-based line number.
func (p Pos) Line() uint32 {
	return p.line
}

// Col returns the 1-based column number.
func (p Pos) Col() uint32 {
	return p.col
}

// Before reports whether p comes strictly before q in the source.
// Invalid positions sort after every valid one.
func (p Pos) Before(q Pos) bool {
	switch {
	case !p.IsValid():
		return false
	case !q.IsValid():
		return true
	case p.line != q.line:
		return p.line < q.line
	}
	return p.col < q.col
}
