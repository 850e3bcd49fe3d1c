package layout

import (
	"math"

	"github.com/you-not-fish/pikgo/internal/geom"
	"github.com/you-not-fish/pikgo/internal/syntax"
)

// kindInfo holds the geometry of one object kind.
type kindInfo struct {
	// init sets the kind's default size and style from the variables.
	init func(o *Object, vars map[string]float64)
	// offset returns the position of edge e relative to the center.
	offset func(o *Object, e Edge) geom.Point
	// chop returns the point where the ray from the center toward p
	// leaves the outline.
	chop func(o *Object, p geom.Point) geom.Point
	// fit sizes the object to enclose a w×h text area.
	fit func(o *Object, w, h float64)
}

// kinds is indexed by syntax.ObjKind. It is filled by init so that its
// entries may call Object methods without an initialization cycle.
var kinds [syntax.NumKinds]kindInfo

func init() {
	line := func(f func(*Object, map[string]float64)) kindInfo {
		return kindInfo{init: f, offset: boxOffset, chop: centerChop, fit: noFit}
	}
	kinds = [syntax.NumKinds]kindInfo{
		syntax.NoKind:   {init: noInit, offset: centerOffset, chop: centerChop, fit: noFit},
		syntax.Arc:      line(noInit),
		syntax.Arrow:    line(arrowInit),
		syntax.Block:    {init: noInit, offset: boxOffset, chop: boxChop, fit: noFit},
		syntax.Box:      {init: boxInit, offset: boxOffset, chop: boxChop, fit: boxFit},
		syntax.Circle:   {init: circleInit, offset: circleOffset, chop: circleChop, fit: circleFit},
		syntax.Cylinder: {init: cylinderInit, offset: boxOffset, chop: boxChop, fit: cylinderFit},
		syntax.Diamond:  {init: diamondInit, offset: diamondOffset, chop: diamondChop, fit: diamondFit},
		syntax.Dot:      {init: dotInit, offset: circleOffset, chop: circleChop, fit: noFit},
		syntax.Ellipse:  {init: ellipseInit, offset: ellipseOffset, chop: ellipseChop, fit: ellipseFit},
		syntax.File:     {init: fileInit, offset: boxOffset, chop: boxChop, fit: boxFit},
		syntax.Line:     line(noInit),
		syntax.Move:     line(moveInit),
		syntax.Oval:     {init: ovalInit, offset: ovalOffset, chop: ovalChop, fit: ovalFit},
		syntax.Path:     line(pathInit),
		syntax.Spline:   line(noInit),
		syntax.Text:     {init: textInit, offset: boxOffset, chop: boxChop, fit: boxFit},
	}
}

func noInit(*Object, map[string]float64) {}

func noFit(*Object, float64, float64) {}

func arrowInit(o *Object, _ map[string]float64) { o.ArrowEnd = true }

func moveInit(o *Object, _ map[string]float64) { o.Invisible = true }

func pathInit(o *Object, _ map[string]float64) { o.Closed = true }

func boxInit(o *Object, v map[string]float64) {
	o.Width, o.Height, o.Radius = v["boxwid"], v["boxht"], v["boxrad"]
}

func circleInit(o *Object, v map[string]float64) {
	o.Radius = v["circlerad"]
	o.Width, o.Height = 2*o.Radius, 2*o.Radius
}

func cylinderInit(o *Object, v map[string]float64) {
	o.Width, o.Height, o.Radius = v["cylwid"], v["cylht"], v["cylrad"]
}

func diamondInit(o *Object, v map[string]float64) {
	o.Width, o.Height = v["diamondwid"], v["diamondht"]
}

func dotInit(o *Object, v map[string]float64) {
	o.Radius = v["dotrad"]
	o.Width, o.Height = 2*o.Radius, 2*o.Radius
}

func ellipseInit(o *Object, v map[string]float64) {
	o.Width, o.Height = v["ellipsewid"], v["ellipseht"]
}

func fileInit(o *Object, v map[string]float64) {
	o.Width, o.Height, o.Radius = v["filewid"], v["fileht"], v["filerad"]
}

func ovalInit(o *Object, v map[string]float64) {
	o.Width, o.Height = v["ovalwid"], v["ovalht"]
}

func textInit(o *Object, v map[string]float64) {
	o.Width, o.Height = v["textwid"], v["textht"]
}

// ----------------------------------------------------------------------------
// Edge offsets

func centerOffset(*Object, Edge) geom.Point { return geom.Point{} }

// boxOffset puts side midpoints and corners on the bounding rectangle.
func boxOffset(o *Object, e Edge) geom.Point {
	v := e.vec()
	return geom.Pt(v.X*o.Width/2, v.Y*o.Height/2)
}

func circleOffset(o *Object, e Edge) geom.Point {
	return e.vec().Unit().Mul(o.Radius)
}

func ellipseOffset(o *Object, e Edge) geom.Point {
	v := e.vec().Unit()
	return geom.Pt(v.X*o.Width/2, v.Y*o.Height/2)
}

// diamondOffset puts the cardinal edges on the vertices and the diagonal
// edges on the midpoints of the sides.
func diamondOffset(o *Object, e Edge) geom.Point {
	v := e.vec()
	if e.isDiagonal() {
		return geom.Pt(v.X*o.Width/4, v.Y*o.Height/4)
	}
	return geom.Pt(v.X*o.Width/2, v.Y*o.Height/2)
}

// ovalOffset puts the diagonal edges on the rounded ends.
func ovalOffset(o *Object, e Edge) geom.Point {
	if !e.isDiagonal() {
		return boxOffset(o, e)
	}
	v := e.vec()
	r := math.Min(o.Width, o.Height) / 2
	d := r - r/math.Sqrt2
	return geom.Pt(v.X*(o.Width/2-d), v.Y*(o.Height/2-d))
}

// ----------------------------------------------------------------------------
// Chopping

func centerChop(o *Object, _ geom.Point) geom.Point { return o.Center }

func boxChop(o *Object, p geom.Point) geom.Point {
	d := p.Sub(o.Center)
	t := math.Inf(1)
	if d.X != 0 {
		t = math.Min(t, o.Width/2/math.Abs(d.X))
	}
	if d.Y != 0 {
		t = math.Min(t, o.Height/2/math.Abs(d.Y))
	}
	if math.IsInf(t, 1) {
		return o.Center
	}
	return o.Center.Add(d.Mul(t))
}

func circleChop(o *Object, p geom.Point) geom.Point {
	return o.Center.Add(p.Sub(o.Center).Unit().Mul(o.Radius))
}

func ellipseChop(o *Object, p geom.Point) geom.Point {
	d := p.Sub(o.Center)
	a, b := o.Width/2, o.Height/2
	if (d.X == 0 && d.Y == 0) || a == 0 || b == 0 {
		return o.Center
	}
	t := 1 / math.Hypot(d.X/a, d.Y/b)
	return o.Center.Add(d.Mul(t))
}

func diamondChop(o *Object, p geom.Point) geom.Point {
	d := p.Sub(o.Center)
	a, b := o.Width/2, o.Height/2
	s := math.Abs(d.X)/a + math.Abs(d.Y)/b
	if s == 0 || a == 0 || b == 0 {
		return o.Center
	}
	return o.Center.Add(d.Mul(1 / s))
}

// ovalChop intersects with the flat sides first and falls back to the end
// circle when the hit lies on a rounded end.
func ovalChop(o *Object, p geom.Point) geom.Point {
	q := boxChop(o, p)
	r := math.Min(o.Width, o.Height) / 2
	rel := q.Sub(o.Center)
	var c geom.Point // center of the end circle, relative
	switch {
	case o.Width >= o.Height && math.Abs(rel.X) > o.Width/2-r:
		c = geom.Pt(math.Copysign(o.Width/2-r, rel.X), 0)
	case o.Width < o.Height && math.Abs(rel.Y) > o.Height/2-r:
		c = geom.Pt(0, math.Copysign(o.Height/2-r, rel.Y))
	default:
		return q
	}
	// Solve |t·d - c| = r for the far root.
	d := p.Sub(o.Center).Unit()
	dc := d.X*c.X + d.Y*c.Y
	disc := dc*dc - (c.X*c.X + c.Y*c.Y - r*r)
	if disc < 0 {
		return q
	}
	return o.Center.Add(d.Mul(dc + math.Sqrt(disc)))
}

// ----------------------------------------------------------------------------
// Fitting

func boxFit(o *Object, w, h float64) {
	o.Width, o.Height = w, h
}

func circleFit(o *Object, w, h float64) {
	o.Radius = math.Hypot(w, h) / 2
	o.Width, o.Height = 2*o.Radius, 2*o.Radius
}

func cylinderFit(o *Object, w, h float64) {
	o.Width, o.Height = w, h+2*o.Radius
}

func diamondFit(o *Object, w, h float64) {
	o.Width, o.Height = 2*w, 2*h
}

func ellipseFit(o *Object, w, h float64) {
	o.Width, o.Height = w*math.Sqrt2, h*math.Sqrt2
}

func ovalFit(o *Object, w, h float64) {
	o.Width, o.Height = w+h, h
}
