package svg

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/you-not-fish/pikgo/internal/geom"
)

// errWriter remembers the first write error and drops everything after it,
// so that rendering code can write freely and check once at the end.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	var n int
	n, e.err = e.w.Write(p)
	return n, e.err
}

// num formats a coordinate with at most three decimals.
func num(x float64) string {
	s := strconv.FormatFloat(math.Round(x*1000)/1000, 'f', -1, 64)
	if s == "-0" {
		return "0"
	}
	return s
}

// pathData builds the d attribute of a <path>, converting diagram
// coordinates to SVG user units.
type pathData struct {
	b  strings.Builder
	tr *transform
}

func (d *pathData) pt(p geom.Point) {
	q := d.tr.apply(p)
	d.b.WriteString(num(q.X))
	d.b.WriteByte(',')
	d.b.WriteString(num(q.Y))
}

func (d *pathData) M(p geom.Point) *pathData {
	d.b.WriteString("M")
	d.pt(p)
	return d
}

func (d *pathData) L(p geom.Point) *pathData {
	d.b.WriteString("L")
	d.pt(p)
	return d
}

func (d *pathData) Q(ctrl, p geom.Point) *pathData {
	d.b.WriteString("Q")
	d.pt(ctrl)
	d.b.WriteByte(' ')
	d.pt(p)
	return d
}

// A draws an elliptical arc to p. Radii are lengths in inches; sweep is
// true for a clockwise turn as seen on the page.
func (d *pathData) A(rx, ry float64, large, sweep bool, p geom.Point) *pathData {
	d.b.WriteString("A")
	d.b.WriteString(num(rx * d.tr.scale))
	d.b.WriteByte(' ')
	d.b.WriteString(num(ry * d.tr.scale))
	d.b.WriteString(" 0 ")
	d.b.WriteString(flag(large))
	d.b.WriteByte(' ')
	d.b.WriteString(flag(sweep))
	d.b.WriteByte(' ')
	d.pt(p)
	return d
}

func (d *pathData) Z() *pathData {
	d.b.WriteString("Z")
	return d
}

func (d *pathData) String() string {
	return d.b.String()
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// transform maps diagram coordinates, in inches with y up, to SVG user
// units with y down.
type transform struct {
	origin geom.Point // diagram point at the top-left corner
	scale  float64    // user units per inch
}

func (t *transform) apply(p geom.Point) geom.Point {
	return geom.Pt((p.X-t.origin.X)*t.scale, (t.origin.Y-p.Y)*t.scale)
}
