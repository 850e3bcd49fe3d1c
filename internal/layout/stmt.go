package layout

import (
	"fmt"
	"math"

	"github.com/you-not-fish/pikgo/internal/syntax"
)

func (c *Context) stmts(list []syntax.Stmt) error {
	for _, s := range list {
		if err := c.stmt(s); err != nil {
			return err
		}
	}
	return nil
}

func (c *Context) stmt(s syntax.Stmt) error {
	switch s := s.(type) {
	case *syntax.ObjectStmt:
		return c.object(s)
	case *syntax.DirStmt:
		c.setDir(s.Dir)
		return nil
	case *syntax.AssignStmt:
		return c.assign(s)
	case *syntax.PlaceStmt:
		return c.placeStmt(s)
	case *syntax.AssertStmt:
		return c.assert(s)
	}
	panic(fmt.Sprintf("layout: unexpected statement %T", s))
}

// setDir changes the default direction. The cursor moves to the edge of
// the previous object that faces the new direction, unless that object is
// a line.
func (c *Context) setDir(d syntax.Direction) {
	c.dir = d
	if o := c.lastObject(); o != nil && !o.Kind.IsLine() {
		c.cursor = o.Center.Add(kinds[o.Kind].offset(o, dirEdge(d)))
	}
}

func (c *Context) assign(s *syntax.AssignStmt) error {
	v, err := c.eval(s.Value)
	if err != nil {
		return err
	}
	var x float64
	switch v.Kind {
	case Scalar:
		x = v.X
	case ColorValue:
		x = float64(v.Col)
	default:
		return evalErrorf(s.Value.Pos(), "cannot assign %s to variable %s", v.Kind, s.Name)
	}

	if s.Op == syntax.Assign {
		c.vars[s.Name] = x
		return nil
	}
	old, ok := c.vars[s.Name]
	if !ok {
		return evalErrorf(s.Pos(), "undefined variable %s", s.Name)
	}
	switch s.Op {
	case syntax.AddAssign:
		old += x
	case syntax.SubAssign:
		old -= x
	case syntax.MulAssign:
		old *= x
	case syntax.DivAssign:
		if x == 0 {
			return evalErrorf(s.Value.Pos(), "division by zero")
		}
		old /= x
	}
	c.vars[s.Name] = old
	return nil
}

// placeStmt binds a label to a position.
func (c *Context) placeStmt(s *syntax.PlaceStmt) error {
	p, err := c.evalPoint(s.At)
	if err != nil {
		return err
	}
	c.scope.Insert(&Object{
		Kind:   syntax.NoKind,
		Label:  s.Label,
		Pos:    s.Pos(),
		State:  Resolved,
		Center: p.Pt(),
		Dir:    c.dir,
	})
	return nil
}

const assertEpsilon = 1e-6

func (c *Context) assert(s *syntax.AssertStmt) error {
	x, err := c.eval(s.X)
	if err != nil {
		return err
	}
	y, err := c.eval(s.Y)
	if err != nil {
		return err
	}
	ok := x.Kind == y.Kind
	if ok {
		switch x.Kind {
		case Scalar:
			ok = math.Abs(x.X-y.X) <= assertEpsilon
		case Point:
			ok = x.Pt().Near(y.Pt(), assertEpsilon)
		case ColorValue:
			ok = x.Col == y.Col
		}
	}
	if !ok {
		return layoutErrorf(s.Pos(), "assertion failed: %s != %s", x, y)
	}
	return nil
}

// object builds, places and commits one object.
func (c *Context) object(s *syntax.ObjectStmt) error {
	o := c.newObject(s)

	var inner frame
	if s.Kind == syntax.Block {
		comment := "block " + s.Label
		if s.Label == "" {
			comment = "block at " + s.Pos().String()
		}
		c.openBlock(comment)
		err := c.stmts(s.Body)
		inner = c.closeBlock()
		if err != nil {
			return err
		}
		o.Children = inner.objects
		o.scope = inner.scope
		o.Width, o.Height = inner.bbox.Width(), inner.bbox.Height()
	}

	prev := c.this
	c.this = o
	defer func() { c.this = prev }()

	b := newBuilder(c, o)
	for _, cl := range s.Clauses {
		if err := b.clause(cl); err != nil {
			return err
		}
	}
	if err := b.finish(); err != nil {
		return err
	}

	if s.Kind == syntax.Block && !inner.bbox.IsEmpty() {
		d := o.Center.Sub(inner.bbox.Center())
		for _, child := range o.Children {
			child.translate(d)
		}
		o.BBox = o.BBox.Union(inner.bbox.Translate(d))
	}

	c.commit(o)
	return nil
}

// newObject creates an object with the defaults of its kind.
func (c *Context) newObject(s *syntax.ObjectStmt) *Object {
	o := &Object{
		Kind:      s.Kind,
		Label:     s.Label,
		Pos:       s.Pos(),
		Dir:       c.dir,
		Thickness: c.dim("thickness"),
		Stroke:    colorOf(c.vars["color"]),
		Fill:      colorOf(c.vars["fill"]),
		ArrowHt:   c.dim("arrowht"),
		ArrowWid:  c.dim("arrowwid"),
	}
	kinds[o.Kind].init(o, c.vars)
	return o
}
