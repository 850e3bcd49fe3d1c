package layout

import (
	"strconv"

	"github.com/you-not-fish/pikgo/internal/geom"
	"github.com/you-not-fish/pikgo/internal/syntax"
)

// eval evaluates e in the current context.
func (c *Context) eval(e syntax.Expr) (Value, error) {
	v := Value{Pos: e.Pos()}
	switch e := e.(type) {
	case *syntax.NumberLit:
		k, ok := syntax.UnitScale(e.Unit)
		if !ok {
			return v, evalErrorf(e.Pos(), "unknown unit %q", e.Unit)
		}
		v.setScalar(e.Value * k)

	case *syntax.Name:
		return c.name(e)

	case *syntax.ParenExpr:
		x, err := c.eval(e.X)
		x.Pos = v.Pos
		return x, err

	case *syntax.PointLit:
		x, err := c.evalScalar(e.X)
		if err != nil {
			return v, err
		}
		y, err := c.evalScalar(e.Y)
		if err != nil {
			return v, err
		}
		v.setPoint(geom.Pt(x, y))

	case *syntax.Operation:
		return c.operation(e)

	case *syntax.ObjectRef, *syntax.Selector:
		return c.placeValue(e)

	case *syntax.Relative:
		dist, err := c.evalScalar(e.Dist)
		if err != nil {
			return v, err
		}
		of, err := c.evalPoint(e.Of)
		if err != nil {
			return v, err
		}
		v.setPoint(of.Pt().Add(dirVec(e.Dir).Mul(dist)))

	case *syntax.Between:
		f, err := c.evalScalar(e.Frac)
		if err != nil {
			return v, err
		}
		from, err := c.evalPoint(e.From)
		if err != nil {
			return v, err
		}
		to, err := c.evalPoint(e.To)
		if err != nil {
			return v, err
		}
		v.setPoint(from.Pt().Lerp(to.Pt(), f))

	case *syntax.Heading:
		dist, err := c.evalScalar(e.Dist)
		if err != nil {
			return v, err
		}
		angle, err := c.evalScalar(e.Angle)
		if err != nil {
			return v, err
		}
		from, err := c.evalPoint(e.From)
		if err != nil {
			return v, err
		}
		v.setPoint(from.Pt().Add(geom.Heading(angle).Mul(dist)))

	default:
		return v, evalErrorf(e.Pos(), "invalid expression %T", e)
	}
	return v, nil
}

func (c *Context) evalScalar(e syntax.Expr) (float64, error) {
	v, err := c.eval(e)
	if err != nil {
		return 0, err
	}
	if v.Kind != Scalar {
		return 0, evalErrorf(v.Pos, "expected a number, found %s %s", v.Kind, v)
	}
	return v.X, nil
}

// evalPoint evaluates a position. Obj is kept when e designates an object.
func (c *Context) evalPoint(e syntax.Expr) (Value, error) {
	v, err := c.eval(e)
	if err != nil {
		return v, err
	}
	if v.Kind != Point {
		return v, evalErrorf(v.Pos, "expected a position, found %s %s", v.Kind, v)
	}
	return v, nil
}

// evalColor evaluates a colour. Numbers are read as 0xRRGGBB.
func (c *Context) evalColor(e syntax.Expr) (Color, error) {
	v, err := c.eval(e)
	if err != nil {
		return 0, err
	}
	switch v.Kind {
	case ColorValue:
		return v.Col, nil
	case Scalar:
		return colorOf(v.X), nil
	}
	return 0, evalErrorf(v.Pos, "expected a colour, found %s %s", v.Kind, v)
}

// name resolves a bare word: a variable, a compass word or a colour name.
func (c *Context) name(e *syntax.Name) (Value, error) {
	v := Value{Pos: e.Pos()}
	if x, ok := c.vars[e.Value]; ok {
		v.setScalar(x)
		return v, nil
	}
	if u, ok := compass[e.Value]; ok {
		v.setPoint(u.Mul(c.dim("grid")))
		return v, nil
	}
	if col, ok := lookupColor(e.Value); ok {
		v.setColor(col)
		return v, nil
	}
	return v, evalErrorf(e.Pos(), "undefined variable %s", e.Value)
}

func (c *Context) operation(e *syntax.Operation) (Value, error) {
	v := Value{Pos: e.Pos()}
	x, err := c.eval(e.X)
	if err != nil {
		return v, err
	}

	if e.Y == nil {
		switch {
		case e.Op == syntax.Add && x.Kind != ColorValue:
			x.Obj = nil
			x.Pos = v.Pos
			return x, nil
		case e.Op == syntax.Sub && x.Kind == Scalar:
			v.setScalar(-x.X)
			return v, nil
		case e.Op == syntax.Sub && x.Kind == Point:
			v.setPoint(x.Pt().Mul(-1))
			return v, nil
		}
		return v, evalErrorf(e.Pos(), "invalid operation: %s%s", e.Op, x.Kind)
	}

	y, err := c.eval(e.Y)
	if err != nil {
		return v, err
	}
	switch {
	case e.Op == syntax.Add && x.Kind == Scalar && y.Kind == Scalar:
		v.setScalar(x.X + y.X)
	case e.Op == syntax.Add && x.Kind == Point && y.Kind == Point:
		v.setPoint(x.Pt().Add(y.Pt()))
	case e.Op == syntax.Sub && x.Kind == Scalar && y.Kind == Scalar:
		v.setScalar(x.X - y.X)
	case e.Op == syntax.Sub && x.Kind == Point && y.Kind == Point:
		v.setPoint(x.Pt().Sub(y.Pt()))
	case e.Op == syntax.Mul && x.Kind == Scalar && y.Kind == Scalar:
		v.setScalar(x.X * y.X)
	case e.Op == syntax.Mul && x.Kind == Point && y.Kind == Scalar:
		v.setPoint(x.Pt().Mul(y.X))
	case e.Op == syntax.Mul && x.Kind == Scalar && y.Kind == Point:
		v.setPoint(y.Pt().Mul(x.X))
	case e.Op == syntax.Div && y.Kind == Scalar && (x.Kind == Scalar || x.Kind == Point):
		if y.X == 0 {
			return v, evalErrorf(e.Y.Pos(), "division by zero")
		}
		if x.Kind == Scalar {
			v.setScalar(x.X / y.X)
		} else {
			v.setPoint(x.Pt().Mul(1 / y.X))
		}
	default:
		return v, evalErrorf(e.Pos(), "invalid operation: %s %s %s", x.Kind, e.Op, y.Kind)
	}
	return v, nil
}

// ----------------------------------------------------------------------------
// Objects and places

// objectOf returns the object designated by e, or nil if e does not
// designate an object: e is not a reference, a label selected from a
// block, or such an expression in parentheses.
func (c *Context) objectOf(e syntax.Expr) (*Object, error) {
	switch e := e.(type) {
	case *syntax.ParenExpr:
		return c.objectOf(e.X)

	case *syntax.ObjectRef:
		switch {
		case e.This:
			if c.this == nil {
				return nil, evalErrorf(e.Pos(), "this used outside an object")
			}
			return c.this, nil
		case e.Label != "":
			return c.lookupLabel(e.Label, e.Pos())
		}
		if o := c.lookupNth(e.Kind, e.Nth, e.FromEnd); o != nil {
			return o, nil
		}
		return nil, evalErrorf(e.Pos(), "no such object: %s", refString(e))

	case *syntax.Selector:
		if !isLabel(e.Sel) {
			return nil, nil
		}
		block, err := c.objectOf(e.X)
		if err != nil || block == nil {
			return nil, err
		}
		if block.scope == nil {
			return nil, evalErrorf(e.Pos(), "%s is not a block", objString(block))
		}
		if o := block.scope.Lookup(e.Sel); o != nil {
			return o, nil
		}
		return nil, evalErrorf(e.Pos(), "undefined object %s.%s", objString(block), e.Sel)
	}
	return nil, nil
}

// placeValue evaluates an object reference or a selector.
// A capitalized word that is not a visible label may be a colour name.
func (c *Context) placeValue(e syntax.Expr) (Value, error) {
	v := Value{Pos: e.Pos()}
	if r, ok := e.(*syntax.ObjectRef); ok && r.Label != "" {
		if o, _ := c.scope.LookupParent(r.Label); o == nil && !c.pendingLabel(r.Label, r.Pos()) {
			if col, ok := lookupColor(r.Label); ok {
				v.setColor(col)
				return v, nil
			}
		}
	}
	o, err := c.objectOf(e)
	if err != nil {
		return v, err
	}
	if o != nil {
		if o == c.this {
			return v, layoutErrorf(e.Pos(), "cyclic reference to this")
		}
		v.setPoint(o.Center)
		v.Obj = o
		return v, nil
	}

	sel := e.(*syntax.Selector)
	o, err = c.objectOf(sel.X)
	if err != nil {
		return v, err
	}
	if o == nil {
		x, err := c.eval(sel.X)
		if err != nil {
			return v, err
		}
		switch {
		case x.Kind == Point && sel.Sel == "x":
			v.setScalar(x.X)
		case x.Kind == Point && sel.Sel == "y":
			v.setScalar(x.Y)
		default:
			return v, evalErrorf(sel.Pos(), "invalid selector .%s on %s", sel.Sel, x.Kind)
		}
		return v, nil
	}

	if x, ok := property(o, sel.Sel); ok {
		v.setScalar(x)
		return v, nil
	}
	var p geom.Point
	switch sel.Sel {
	case "x", "y":
		p = o.Center
	default:
		edge, ok := LookupEdge(sel.Sel)
		if !ok {
			return v, evalErrorf(sel.Pos(), "unknown attribute .%s of %s", sel.Sel, objString(o))
		}
		if o == c.this {
			return v, layoutErrorf(sel.Pos(), "cyclic reference to this.%s", sel.Sel)
		}
		v.setPoint(o.Edge(edge))
		return v, nil
	}
	if o == c.this {
		return v, layoutErrorf(sel.Pos(), "cyclic reference to this.%s", sel.Sel)
	}
	if sel.Sel == "x" {
		v.setScalar(p.X)
	} else {
		v.setScalar(p.Y)
	}
	return v, nil
}

// property returns a size attribute of o.
func property(o *Object, name string) (float64, bool) {
	switch name {
	case "wid", "width":
		return o.Width, true
	case "ht", "height":
		return o.Height, true
	case "rad", "radius":
		return o.Radius, true
	case "diameter":
		return 2 * o.Radius, true
	case "thickness":
		return o.Thickness, true
	}
	return 0, false
}

// isLabel reports whether a selector names a label: labels start with an
// upper-case letter.
func isLabel(s string) bool {
	return s != "" && s[0] >= 'A' && s[0] <= 'Z'
}

func objString(o *Object) string {
	if o.Label != "" {
		return o.Label
	}
	return o.Kind.String()
}

func refString(r *syntax.ObjectRef) string {
	var s string
	switch {
	case r.FromEnd && r.Nth == 1:
		s = "last"
	case r.FromEnd:
		s = ordinal(r.Nth) + " last"
	case r.Nth == 1 && r.Kind != syntax.NoKind:
		s = "first"
	default:
		s = ordinal(r.Nth)
	}
	if r.Kind != syntax.NoKind {
		s += " " + r.Kind.String()
	}
	return s
}

func ordinal(n int) string {
	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}
	return strconv.Itoa(n) + suffix
}
