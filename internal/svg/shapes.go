package svg

import (
	"math"

	"github.com/you-not-fish/pikgo/internal/geom"
	"github.com/you-not-fish/pikgo/internal/layout"
	"github.com/you-not-fish/pikgo/internal/syntax"
)

// shapePath returns the outline of a closed shape, or "" for kinds that
// have none.
func shapePath(tr *transform, o *layout.Object) string {
	d := &pathData{tr: tr}
	c := o.Center
	hw, hh := o.Width/2, o.Height/2
	x0, x1 := c.X-hw, c.X+hw
	y0, y1 := c.Y-hh, c.Y+hh

	switch o.Kind {
	case syntax.Box:
		rad := math.Min(o.Radius, math.Min(hw, hh))
		if rad <= 0 {
			d.M(geom.Pt(x0, y0)).L(geom.Pt(x1, y0)).L(geom.Pt(x1, y1)).L(geom.Pt(x0, y1)).Z()
			break
		}
		d.M(geom.Pt(x0+rad, y0)).L(geom.Pt(x1-rad, y0)).
			A(rad, rad, false, false, geom.Pt(x1, y0+rad)).L(geom.Pt(x1, y1-rad)).
			A(rad, rad, false, false, geom.Pt(x1-rad, y1)).L(geom.Pt(x0+rad, y1)).
			A(rad, rad, false, false, geom.Pt(x0, y1-rad)).L(geom.Pt(x0, y0+rad)).
			A(rad, rad, false, false, geom.Pt(x0+rad, y0)).Z()

	case syntax.Circle, syntax.Dot:
		ellipse(d, c, o.Radius, o.Radius)

	case syntax.Ellipse:
		ellipse(d, c, hw, hh)

	case syntax.Oval:
		rad := math.Min(hw, hh)
		if o.Width >= o.Height {
			d.M(geom.Pt(x0+rad, y0)).L(geom.Pt(x1-rad, y0)).
				A(rad, rad, false, false, geom.Pt(x1-rad, y1)).L(geom.Pt(x0+rad, y1)).
				A(rad, rad, false, false, geom.Pt(x0+rad, y0)).Z()
		} else {
			d.M(geom.Pt(x1, y0+rad)).L(geom.Pt(x1, y1-rad)).
				A(rad, rad, false, false, geom.Pt(x0, y1-rad)).L(geom.Pt(x0, y0+rad)).
				A(rad, rad, false, false, geom.Pt(x1, y0+rad)).Z()
		}

	case syntax.Diamond:
		d.M(geom.Pt(x0, c.Y)).L(geom.Pt(c.X, y0)).L(geom.Pt(x1, c.Y)).L(geom.Pt(c.X, y1)).Z()

	case syntax.Cylinder:
		rad := math.Min(o.Radius, hh)
		d.M(geom.Pt(x0, y1-rad)).L(geom.Pt(x0, y0+rad)).
			A(hw, rad, false, false, geom.Pt(x1, y0+rad)).L(geom.Pt(x1, y1-rad)).
			A(hw, rad, false, false, geom.Pt(x0, y1-rad)).
			A(hw, rad, false, false, geom.Pt(x1, y1-rad))

	case syntax.File:
		rad := math.Min(o.Radius, math.Min(hw, hh))
		d.M(geom.Pt(x0, y0)).L(geom.Pt(x1, y0)).L(geom.Pt(x1, y1-rad)).
			L(geom.Pt(x1-rad, y1)).L(geom.Pt(x0, y1)).Z()

	default:
		return ""
	}
	return d.String()
}

// foldPath returns the folded corner drawn inside a file.
func foldPath(tr *transform, o *layout.Object) string {
	hw, hh := o.Width/2, o.Height/2
	rad := math.Min(o.Radius, math.Min(hw, hh))
	x1, y1 := o.Center.X+hw, o.Center.Y+hh
	d := &pathData{tr: tr}
	d.M(geom.Pt(x1-rad, y1)).L(geom.Pt(x1-rad, y1-rad)).L(geom.Pt(x1, y1-rad))
	return d.String()
}

// ellipse adds a closed ellipse made of two half arcs.
func ellipse(d *pathData, c geom.Point, rx, ry float64) {
	left, right := geom.Pt(c.X-rx, c.Y), geom.Pt(c.X+rx, c.Y)
	d.M(left).A(rx, ry, false, false, right).A(rx, ry, false, false, left).Z()
}
