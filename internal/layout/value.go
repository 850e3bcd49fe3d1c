package layout

import (
	"fmt"

	"github.com/you-not-fish/pikgo/internal/geom"
	"github.com/you-not-fish/pikgo/internal/syntax"
)

// ValueKind describes what an evaluated expression denotes.
type ValueKind uint8

const (
	Scalar     ValueKind = iota // a length or plain number, in inches
	Point                       // a position or displacement
	ColorValue                  // a colour
)

var valueKinds = [...]string{
	Scalar:     "number",
	Point:      "point",
	ColorValue: "colour",
}

func (k ValueKind) String() string {
	if int(k) < len(valueKinds) {
		return valueKinds[k]
	}
	return fmt.Sprintf("ValueKind(%d)", k)
}

// A Value is the result of evaluating an expression.
type Value struct {
	Kind ValueKind
	Pos  syntax.Pos // position of the expression
	X, Y float64    // Scalar uses X only
	Col  Color      // ColorValue only

	// Obj is set when the expression designates an object as a whole,
	// such as "A" or "last box", so that lines can be chopped at its
	// boundary.
	Obj *Object
}

func (v *Value) setScalar(x float64) {
	v.Kind = Scalar
	v.X, v.Y = x, 0
	v.Obj = nil
}

func (v *Value) setPoint(p geom.Point) {
	v.Kind = Point
	v.X, v.Y = p.X, p.Y
	v.Obj = nil
}

func (v *Value) setColor(c Color) {
	v.Kind = ColorValue
	v.Col = c
	v.Obj = nil
}

// Pt returns the value as a point.
func (v Value) Pt() geom.Point {
	return geom.Pt(v.X, v.Y)
}

func (v Value) String() string {
	switch v.Kind {
	case Scalar:
		return fmt.Sprintf("%g", v.X)
	case Point:
		return v.Pt().String()
	case ColorValue:
		return v.Col.String()
	}
	return "invalid value"
}
