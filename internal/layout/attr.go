package layout

import (
	"github.com/you-not-fish/pikgo/internal/geom"
	"github.com/you-not-fish/pikgo/internal/syntax"
)

// A builder applies the clauses of one object statement, in order, and then
// fixes the object's geometry.
type builder struct {
	c *Context
	o *Object

	at      *Value // last "at" position
	with    Edge
	hasWith bool

	from   *Value
	to     bool       // a "to" clause was given
	fromTo syntax.Pos // first from or to clause

	texts   []*syntax.TextLit
	fit     bool
	sizedW  bool // width set explicitly after any "fit"
	sizedH  bool
	fillSet bool
	chop    bool

	path pathBuilder
}

func newBuilder(c *Context, o *Object) *builder {
	return &builder{c: c, o: o, path: pathBuilder{dir: o.Dir}}
}

// name describes the object in error messages.
func (b *builder) name() string {
	if b.o.Label != "" {
		return b.o.Label
	}
	return b.o.Kind.String()
}

func (b *builder) clause(cl *syntax.Clause) error {
	c, o := b.c, b.o
	switch cl.Kind {
	case syntax.ClauseText:
		b.texts = append(b.texts, cl.Text)

	case syntax.ClauseWidth, syntax.ClauseHeight, syntax.ClauseRadius, syntax.ClauseDiameter:
		return b.size(cl)

	case syntax.ClauseThickness:
		x, err := c.evalScalar(cl.X)
		if err != nil {
			return err
		}
		o.Thickness = x
	case syntax.ClauseThick:
		o.Thickness *= 1.5
	case syntax.ClauseThin:
		o.Thickness *= 2.0 / 3

	case syntax.ClauseColor:
		col, err := c.evalColor(cl.X)
		if err != nil {
			return err
		}
		o.Stroke = col
	case syntax.ClauseFill:
		col, err := c.evalColor(cl.X)
		if err != nil {
			return err
		}
		o.Fill = col
		b.fillSet = true

	case syntax.ClauseDashed, syntax.ClauseDotted:
		d := c.dim("dashwid")
		if cl.X != nil {
			x, err := c.evalScalar(cl.X)
			if err != nil {
				return err
			}
			d = x
		}
		o.Dashed, o.Dotted = 0, 0
		if cl.Kind == syntax.ClauseDashed {
			o.Dashed = d
		} else {
			o.Dotted = d
		}
	case syntax.ClauseSolid:
		o.Dashed, o.Dotted = 0, 0
	case syntax.ClauseInvisible:
		o.Invisible = true

	case syntax.ClauseArrowRight:
		o.ArrowStart, o.ArrowEnd = false, true
	case syntax.ClauseArrowLeft:
		o.ArrowStart, o.ArrowEnd = true, false
	case syntax.ClauseArrowBoth:
		o.ArrowStart, o.ArrowEnd = true, true

	case syntax.ClauseCW:
		o.CW = true
	case syntax.ClauseCCW:
		o.CW = false
	case syntax.ClauseClose:
		o.Closed = true
	case syntax.ClauseChop:
		b.chop = true
	case syntax.ClauseFit:
		b.fit = true
		b.sizedW, b.sizedH = false, false

	case syntax.ClauseAt:
		v, err := c.evalPoint(cl.X)
		if err != nil {
			return err
		}
		b.at = &v
	case syntax.ClauseWith:
		e, ok := LookupEdge(cl.Edge)
		if !ok {
			return evalErrorf(cl.Pos(), "unknown edge .%s", cl.Edge)
		}
		b.with, b.hasWith = e, true
		if cl.X != nil {
			v, err := c.evalPoint(cl.X)
			if err != nil {
				return err
			}
			b.at = &v
		}

	case syntax.ClauseSame:
		return b.same(cl)

	default:
		return b.pathClause(cl)
	}
	return nil
}

// size applies width, height, radius and diameter. A percentage scales the
// current value.
func (b *builder) size(cl *syntax.Clause) error {
	o := b.o
	x, err := b.c.evalScalar(cl.X)
	if err != nil {
		return err
	}
	if x < 0 {
		return layoutErrorf(cl.Pos(), "%s: negative size %g", b.name(), x)
	}
	round := o.Kind == syntax.Circle || o.Kind == syntax.Dot

	switch cl.Kind {
	case syntax.ClauseWidth, syntax.ClauseHeight:
		cur := o.Width
		if cl.Kind == syntax.ClauseHeight {
			cur = o.Height
		}
		if cl.Percent {
			x = cur * x / 100
		}
		switch {
		case round:
			o.Radius = x / 2
			o.Width, o.Height = x, x
			b.sizedW, b.sizedH = true, true
		case cl.Kind == syntax.ClauseWidth:
			o.Width = x
			b.sizedW = true
		default:
			o.Height = x
			b.sizedH = true
		}

	case syntax.ClauseRadius, syntax.ClauseDiameter:
		if cl.Kind == syntax.ClauseDiameter {
			if cl.Percent {
				x = 2 * o.Radius * x / 100
			}
			x /= 2
		} else if cl.Percent {
			x = o.Radius * x / 100
		}
		o.Radius = x
		if round {
			o.Width, o.Height = 2*x, 2*x
			b.sizedW, b.sizedH = true, true
		}
	}
	return nil
}

// same copies size and style from the previous object of the same kind,
// or from the object named in "same as".
func (b *builder) same(cl *syntax.Clause) error {
	c, o := b.c, b.o
	var src *Object
	if cl.X != nil {
		v, err := c.eval(cl.X)
		if err != nil {
			return err
		}
		if v.Obj == nil {
			return evalErrorf(cl.X.Pos(), "same as: %s is not an object", v)
		}
		src = v.Obj
	} else if src = c.lookupNth(o.Kind, 1, true); src == nil {
		return evalErrorf(cl.Pos(), "same: no previous %s", o.Kind)
	}

	o.Width, o.Height, o.Radius = src.Width, src.Height, src.Radius
	o.Thickness = src.Thickness
	o.Stroke, o.Fill = src.Stroke, src.Fill
	o.Dashed, o.Dotted = src.Dashed, src.Dotted
	o.Invisible = src.Invisible
	if o.Kind.IsLine() && src.Kind.IsLine() {
		o.ArrowStart, o.ArrowEnd = src.ArrowStart, src.ArrowEnd
		o.CW, o.Closed = src.CW, src.Closed
		b.path.copyShape(src.Path)
	}
	return nil
}

// finish fixes the geometry once all clauses are applied.
func (b *builder) finish() error {
	o := b.o
	if b.at != nil && (b.from != nil || b.to) {
		return layoutErrorf(o.Pos, "%s: at cannot be combined with from or to", b.name())
	}
	if o.Kind == syntax.Dot && !b.fillSet {
		o.Fill = o.Stroke
	}
	texts := b.c.measureTexts(b.texts)
	if o.Kind.IsLine() {
		return b.finishLine(texts)
	}
	if b.from != nil || b.to || len(b.path.segs) > 0 {
		return layoutErrorf(b.fromTo, "%s: path clauses apply to line-oriented objects only", b.name())
	}
	b.finishShape(texts)
	return nil
}

// finishShape sizes and places every kind that is not drawn along a path.
func (b *builder) finishShape(texts []measuredText) {
	c, o := b.c, b.o

	if len(texts) > 0 && (b.fit || o.Kind == syntax.Text) {
		w, h := textExtent(texts, c.dim("charht"))
		if o.Kind != syntax.Text {
			w += c.dim("charwid")
			h += 0.5 * c.dim("charht")
		}
		width, height, radius := o.Width, o.Height, o.Radius
		kinds[o.Kind].fit(o, w, h)
		if b.sizedW {
			o.Width = width
		}
		if b.sizedH {
			o.Height = height
		}
		if (b.sizedW || b.sizedH) && (o.Kind == syntax.Circle || o.Kind == syntax.Dot) {
			o.Width, o.Height, o.Radius = width, height, radius
		}
	}

	edge, anchor := EdgeC, geom.Point{}
	switch {
	case b.at != nil:
		anchor = b.at.Pt()
	case c.placed:
		anchor = c.cursor.Add(dirVec(o.Dir).Mul(c.dim("gap")))
		edge = EdgeStart
	}
	if b.hasWith {
		edge = b.with
	}
	o.Center = anchor.Sub(b.shapeOffset(edge))
	o.Exit = o.Center.Add(kinds[o.Kind].offset(o, dirEdge(o.Dir)))

	o.BBox = geom.RectOf(
		o.Center.Sub(geom.Pt(o.Width/2, o.Height/2)),
		o.Center.Add(geom.Pt(o.Width/2, o.Height/2)))
	if o.Kind != syntax.Text && o.Kind != syntax.Block {
		o.BBox = o.BBox.Expand(o.Thickness / 2)
	}
	o.BBox = o.BBox.Union(b.placeTexts(texts, o.Center, 0))
}

// shapeOffset is the offset of edge e from the center, with start and end
// meaning the entry and exit edges.
func (b *builder) shapeOffset(e Edge) geom.Point {
	o := b.o
	switch e {
	case EdgeStart:
		e = dirEdge(o.Dir.Reverse())
	case EdgeEnd:
		e = dirEdge(o.Dir)
	}
	return kinds[o.Kind].offset(o, e)
}
