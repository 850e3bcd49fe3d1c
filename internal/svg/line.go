package svg

import (
	"github.com/you-not-fish/pikgo/internal/geom"
	"github.com/you-not-fish/pikgo/internal/layout"
	"github.com/you-not-fish/pikgo/internal/syntax"
)

// line draws a line kind with its arrowheads.
func (r *renderer) line(o *layout.Object) {
	pts := append([]geom.Point(nil), o.Path...)
	n := len(pts)
	if n < 2 {
		return
	}

	// Arrowheads point along the direction of travel at each end.
	startDir, endDir := pts[0].Sub(pts[1]).Unit(), pts[n-1].Sub(pts[n-2]).Unit()
	if o.Kind == syntax.Arc {
		startDir, endDir = arcTangents(o)
	}
	startTip, endTip := pts[0], pts[n-1]

	// Pull the stroke back so it ends inside the head.
	if !o.Closed && o.Kind != syntax.Arc {
		if o.ArrowStart {
			pts[0] = pts[0].Sub(startDir.Mul(o.ArrowHt / 2))
		}
		if o.ArrowEnd {
			pts[n-1] = pts[n-1].Sub(endDir.Mul(o.ArrowHt / 2))
		}
	}

	fill := layout.NoColor
	if o.Closed {
		fill = o.Fill
	}
	r.canvas.Path(linePath(&r.tr, o, pts), r.style(o, fill))

	if o.ArrowStart {
		r.arrowhead(o, startTip, startDir)
	}
	if o.ArrowEnd {
		r.arrowhead(o, endTip, endDir)
	}
}

// linePath returns the path data of a line kind through pts.
func linePath(tr *transform, o *layout.Object, pts []geom.Point) string {
	d := &pathData{tr: tr}
	n := len(pts)
	d.M(pts[0])
	switch {
	case o.Kind == syntax.Arc:
		d.A(o.Radius, o.Radius, false, o.CW, pts[n-1])
	case o.Kind == syntax.Spline && n > 2:
		// Quadratic pieces through the segment midpoints, with the
		// vertices as control points.
		d.L(pts[0].Lerp(pts[1], 0.5))
		for i := 1; i < n-1; i++ {
			end := pts[i].Lerp(pts[i+1], 0.5)
			if i == n-2 {
				end = pts[n-1]
			}
			d.Q(pts[i], end)
		}
	default:
		for _, p := range pts[1:] {
			d.L(p)
		}
	}
	if o.Closed {
		d.Z()
	}
	return d.String()
}

// arcTangents returns the outward directions of an arc at its two ends.
func arcTangents(o *layout.Object) (start, end geom.Point) {
	c := o.ArcCenter()
	p, q := o.Path[0], o.Path[len(o.Path)-1]
	start = p.Sub(c).Perp().Mul(-1).Unit()
	end = q.Sub(c).Perp().Unit()
	if o.CW {
		start, end = start.Mul(-1), end.Mul(-1)
	}
	return start, end
}

// arrowhead draws a filled triangle with its tip at tip, pointing along dir.
func (r *renderer) arrowhead(o *layout.Object, tip, dir geom.Point) {
	if dir == (geom.Point{}) {
		return
	}
	base := tip.Sub(dir.Mul(o.ArrowHt))
	side := dir.Perp().Mul(o.ArrowWid / 2)
	d := &pathData{tr: &r.tr}
	d.M(tip).L(base.Add(side)).L(base.Sub(side)).Z()
	r.canvas.Path(d.String(), "fill:"+r.color(o.Stroke)+";")
}
