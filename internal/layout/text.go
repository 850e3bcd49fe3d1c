package layout

import (
	"math"

	"github.com/you-not-fish/pikgo/internal/geom"
	"github.com/you-not-fish/pikgo/internal/syntax"
	"github.com/you-not-fish/pikgo/internal/textmetrics"
)

// Relative font sizes of big and small text.
const (
	bigSize   = 1.25
	smallSize = 0.8
)

type measuredText struct {
	lit   *syntax.TextLit
	width float64
	size  float64
}

// measureTexts computes the rendered width of each string. One em is two
// character widths.
func (c *Context) measureTexts(lits []*syntax.TextLit) []measuredText {
	if len(lits) == 0 {
		return nil
	}
	em := 2 * c.dim("charwid")
	out := make([]measuredText, len(lits))
	for i, t := range lits {
		size := 1.0
		switch {
		case t.Flags&syntax.Big != 0:
			size = bigSize
		case t.Flags&syntax.Small != 0:
			size = smallSize
		}
		st := textmetrics.StyleOf(
			t.Flags&syntax.Bold != 0,
			t.Flags&syntax.Italic != 0,
			t.Flags&syntax.Mono != 0)
		out[i] = measuredText{
			lit:   t,
			width: c.measure.Width(t.Value, st) * em * size,
			size:  size,
		}
	}
	return out
}

// textExtent returns the size of the area taken by a stack of strings.
func textExtent(ts []measuredText, charht float64) (w, h float64) {
	for _, t := range ts {
		w = math.Max(w, t.width)
	}
	return w, float64(len(ts)) * charht
}

// placeTexts stacks the strings of b's object around center. Centered
// strings are spread evenly about the center line; "above" strings sit over
// them and "below" strings under them, one charht apart. Aligned strings
// follow angle, in degrees. It returns the extents of the text.
func (b *builder) placeTexts(ts []measuredText, center geom.Point, angle float64) geom.Rect {
	var bbox geom.Rect
	if len(ts) == 0 {
		return bbox
	}
	charht := b.c.dim("charht")

	var nc, na, nb int
	for _, t := range ts {
		switch {
		case t.lit.Flags&syntax.Above != 0:
			na++
		case t.lit.Flags&syntax.Below != 0:
			nb++
		default:
			nc++
		}
	}

	sin, cos := math.Sincos(angle * math.Pi / 180)
	var ic, ia, ib int
	b.o.Texts = make([]Text, 0, len(ts))
	for _, t := range ts {
		var y float64
		switch {
		case t.lit.Flags&syntax.Above != 0:
			y = (float64(nc)/2 + float64(na-ia) - 0.5) * charht
			ia++
		case t.lit.Flags&syntax.Below != 0:
			y = -(float64(nc)/2 + float64(ib) + 0.5) * charht
			ib++
		default:
			y = (float64(nc-1)/2 - float64(ic)) * charht
			ic++
		}

		txt := Text{
			Value: t.lit.Value,
			Flags: t.lit.Flags,
			Width: t.width,
			Size:  t.size,
			Color: b.o.Stroke,
		}
		off := geom.Pt(0, y)
		if t.lit.Flags&syntax.Aligned != 0 {
			off = geom.Pt(-y*sin, y*cos)
			txt.Angle = angle
		}
		txt.At = center.Add(off)
		b.o.Texts = append(b.o.Texts, txt)

		x0 := txt.At.X - t.width/2
		switch txt.Anchor() {
		case "start":
			x0 = txt.At.X
		case "end":
			x0 = txt.At.X - t.width
		}
		h := charht * t.size / 2
		bbox = bbox.Union(geom.RectOf(
			geom.Pt(x0, txt.At.Y-h),
			geom.Pt(x0+t.width, txt.At.Y+h)))
	}
	return bbox
}
