package layout

import (
	"math"

	"github.com/you-not-fish/pikgo/internal/geom"
	"github.com/you-not-fish/pikgo/internal/syntax"
)

// A segment is one leg of a line: a displacement, or an absolute point
// given with "to".
type segment struct {
	p        geom.Point
	abs      bool
	axes     uint8 // axisH | axisV: directions already used in this leg
	dir      syntax.Direction
	cardinal bool // moves along dir only
}

const (
	axisH uint8 = 1 << iota
	axisV
)

// pathBuilder collects the legs of a line. Displacements stay relative until
// the start point is known, so "from" may appear anywhere in the statement.
type pathBuilder struct {
	segs []segment
	open bool             // the last leg accepts another direction
	dir  syntax.Direction // direction of a bare distance
	end  *Object          // object given as the final "to", for chop
}

// move adds dist along d, extending the current leg unless the leg already
// moves along the same axis.
func (pb *pathBuilder) move(d syntax.Direction, dist float64) {
	axis := axisV
	if d.IsHorizontal() {
		axis = axisH
	}
	n := len(pb.segs)
	if pb.open && n > 0 && !pb.segs[n-1].abs && pb.segs[n-1].axes&axis == 0 {
		s := &pb.segs[n-1]
		s.axes |= axis
		s.cardinal = false
		s.p = s.p.Add(dirVec(d).Mul(dist))
	} else {
		pb.segs = append(pb.segs, segment{
			p:        dirVec(d).Mul(dist),
			axes:     axis,
			dir:      d,
			cardinal: true,
		})
	}
	pb.open = true
	pb.dir = d
	pb.end = nil
}

// delta adds a leg with an arbitrary displacement.
func (pb *pathBuilder) delta(d geom.Point) {
	pb.segs = append(pb.segs, segment{p: d, axes: axisH | axisV})
	pb.open = false
	pb.end = nil
}

// point adds a leg ending at an absolute point.
func (pb *pathBuilder) point(p geom.Point, obj *Object) {
	pb.segs = append(pb.segs, segment{p: p, abs: true})
	pb.open = false
	pb.end = obj
}

// copyShape replaces the legs with the displacements of an existing path.
func (pb *pathBuilder) copyShape(path []geom.Point) {
	pb.segs = pb.segs[:0]
	for i := 1; i < len(path); i++ {
		pb.delta(path[i].Sub(path[i-1]))
	}
}

// points returns the vertices of the path starting at start.
func (pb *pathBuilder) points(start geom.Point) []geom.Point {
	pts := make([]geom.Point, 0, len(pb.segs)+1)
	pts = append(pts, start)
	p := start
	for _, s := range pb.segs {
		if s.abs {
			p = s.p
		} else {
			p = p.Add(s.p)
		}
		pts = append(pts, p)
	}
	return pts
}

// outDir returns the direction of the last leg if it is a single cardinal
// move.
func (pb *pathBuilder) outDir() (syntax.Direction, bool) {
	n := len(pb.segs)
	if n == 0 || pb.segs[n-1].abs || !pb.segs[n-1].cardinal {
		return 0, false
	}
	return pb.segs[n-1].dir, true
}

// defaultLength is the length of a leg when no distance is given.
func (b *builder) defaultLength(d syntax.Direction) float64 {
	switch {
	case b.o.Kind == syntax.Move:
		return b.c.dim("movewid")
	case b.o.Kind == syntax.Arc:
		return b.c.dim("arcrad")
	case d.IsHorizontal():
		return b.c.dim("linewid")
	}
	return b.c.dim("lineht")
}

// pathClause applies the clauses that shape a line.
func (b *builder) pathClause(cl *syntax.Clause) error {
	c := b.c
	if !b.fromTo.IsValid() {
		b.fromTo = cl.Pos()
	}
	switch cl.Kind {
	case syntax.ClauseDir:
		dist := b.defaultLength(cl.Dir)
		if cl.X != nil {
			x, err := c.evalScalar(cl.X)
			if err != nil {
				return err
			}
			if cl.Percent {
				dist *= x / 100
			} else {
				dist = x
			}
		}
		b.path.move(cl.Dir, dist)

	case syntax.ClauseDist:
		x, err := c.evalScalar(cl.X)
		if err != nil {
			return err
		}
		if cl.Percent {
			x *= b.defaultLength(b.path.dir) / 100
		}
		b.path.open = false
		b.path.move(b.path.dir, x)

	case syntax.ClauseHeading:
		dist := c.dim("linewid")
		if cl.X != nil {
			x, err := c.evalScalar(cl.X)
			if err != nil {
				return err
			}
			dist = x
		}
		angle, err := c.evalScalar(cl.Y)
		if err != nil {
			return err
		}
		b.path.delta(geom.Heading(angle).Mul(dist))

	case syntax.ClauseThen:
		b.path.open = false

	case syntax.ClauseFrom:
		v, err := c.evalPoint(cl.X)
		if err != nil {
			return err
		}
		b.from = &v

	case syntax.ClauseTo:
		v, err := c.evalPoint(cl.X)
		if err != nil {
			return err
		}
		b.path.point(v.Pt(), v.Obj)
		b.to = true
	}
	return nil
}

// finishLine builds the path of a line kind and places it.
func (b *builder) finishLine(texts []measuredText) error {
	c, o := b.c, b.o

	var start geom.Point
	switch {
	case b.from != nil:
		start = b.from.Pt()
	case c.placed:
		start = c.cursor.Add(dirVec(o.Dir).Mul(c.dim("gap")))
	}

	if len(b.path.segs) == 0 {
		if o.Kind == syntax.Arc {
			b.path.delta(b.arcDelta())
		} else {
			b.path.move(o.Dir, b.defaultLength(o.Dir))
		}
	}
	pts := b.path.points(start)
	if o.Kind == syntax.Arc && len(pts) > 2 {
		pts = []geom.Point{pts[0], pts[len(pts)-1]}
	}

	if b.chop && len(pts) > 1 {
		if b.from != nil && b.from.Obj != nil {
			from := b.from.Obj
			pts[0] = kinds[from.Kind].chop(from, pts[1])
		}
		if to := b.path.end; to != nil {
			n := len(pts)
			pts[n-1] = kinds[to.Kind].chop(to, pts[n-2])
		}
	}

	if b.at != nil {
		edge := EdgeC
		if b.hasWith {
			edge = b.with
		}
		d := b.at.Pt().Sub(pathEdge(pts, edge))
		for i := range pts {
			pts[i] = pts[i].Add(d)
		}
	}

	o.Path = pts
	bbox := pointsRect(pts)
	if o.Kind == syntax.Arc {
		center, r := arcCircle(pts[0], pts[len(pts)-1], o.CW)
		o.Radius = r
		bbox = bbox.AddPoint(arcMid(pts[0], pts[len(pts)-1], center, r))
	}
	o.Center = bbox.Center()
	o.Width, o.Height = bbox.Width(), bbox.Height()
	o.Exit = pts[len(pts)-1]

	var angle float64
	if n := len(pts); n > 1 {
		d := pts[n-1].Sub(pts[0])
		angle = math.Atan2(d.Y, d.X) * 180 / math.Pi
	}
	pad := o.Thickness / 2
	if o.ArrowStart || o.ArrowEnd {
		pad = math.Max(pad, o.ArrowWid/2)
	}
	o.BBox = bbox.Expand(pad).Union(b.placeTexts(texts, o.Center, angle))

	if d, ok := b.path.outDir(); ok {
		c.dir = d
	}
	return nil
}

// arcDelta is the displacement of a default arc: a quarter turn of radius
// arcrad that starts along the current direction.
func (b *builder) arcDelta() geom.Point {
	d := dirVec(b.o.Dir)
	perp := d.Perp()
	if b.o.CW {
		perp = perp.Mul(-1)
	}
	return d.Add(perp).Mul(b.c.dim("arcrad"))
}

// arcCircle returns the center and radius of the quarter circle from p to q,
// turning counter-clockwise unless cw is set.
func arcCircle(p, q geom.Point, cw bool) (geom.Point, float64) {
	chord := q.Sub(p)
	perp := chord.Perp()
	if cw {
		perp = perp.Mul(-1)
	}
	mid := p.Lerp(q, 0.5)
	return mid.Add(perp.Mul(0.5)), chord.Len() / math.Sqrt2
}

// arcMid returns the point halfway along the arc from p to q.
func arcMid(p, q, center geom.Point, r float64) geom.Point {
	mid := p.Lerp(q, 0.5)
	return center.Add(mid.Sub(center).Unit().Mul(r))
}

func pointsRect(pts []geom.Point) geom.Rect {
	var r geom.Rect
	for _, p := range pts {
		r = r.AddPoint(p)
	}
	return r
}

// pathEdge returns edge e of a path before it is attached to an object.
func pathEdge(pts []geom.Point, e Edge) geom.Point {
	switch e {
	case EdgeStart:
		return pts[0]
	case EdgeEnd:
		return pts[len(pts)-1]
	}
	r := pointsRect(pts)
	v := e.vec()
	return r.Center().Add(geom.Pt(v.X*r.Width()/2, v.Y*r.Height()/2))
}

// ArcCenter returns the center of the circle an arc is drawn on.
func (o *Object) ArcCenter() geom.Point {
	c, _ := arcCircle(o.Path[0], o.Path[len(o.Path)-1], o.CW)
	return c
}
