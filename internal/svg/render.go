// Package svg serializes a resolved diagram as SVG.
package svg

import (
	"fmt"
	"io"
	"strings"

	svgo "github.com/ajstarks/svgo"

	"github.com/you-not-fish/pikgo/internal/geom"
	"github.com/you-not-fish/pikgo/internal/layout"
	"github.com/you-not-fish/pikgo/internal/syntax"
)

// UnitsPerInch is the number of SVG user units in one inch.
const UnitsPerInch = 144

const svgNS = "http://www.w3.org/2000/svg"

// Options controls the output.
type Options struct {
	DarkMode    bool    // invert the lightness of every colour
	FixedWidth  float64 // width attribute; 0 means the natural width
	FixedHeight float64 // height attribute; 0 means the natural height
	Class       string  // class attribute of the <svg> element
}

// Size returns the natural width and height of doc in user units:
// its bounding box plus the margin on each side.
func Size(doc *layout.Document) (w, h float64) {
	w = (doc.BBox.Width() + 2*doc.Margin) * UnitsPerInch
	h = (doc.BBox.Height() + 2*doc.Margin) * UnitsPerInch
	return w, h
}

type renderer struct {
	canvas *svgo.SVG
	opts   *Options
	tr     transform
}

// Render writes doc to w. It does not modify doc; the only errors it
// returns are those of w.
func Render(w io.Writer, doc *layout.Document, opts *Options) error {
	if opts == nil {
		opts = &Options{}
	}
	ew := &errWriter{w: w}
	r := &renderer{
		canvas: svgo.New(ew),
		opts:   opts,
		tr: transform{
			origin: geom.Pt(doc.BBox.Min.X-doc.Margin, doc.BBox.Max.Y+doc.Margin),
			scale:  UnitsPerInch,
		},
	}

	width, height := Size(doc)
	attrs := []string{
		fmt.Sprintf(`viewBox="0 0 %s %s"`, num(width), num(height)),
	}
	if opts.Class != "" {
		attrs = append(attrs, fmt.Sprintf(`class="%s"`, escape(opts.Class)))
	}
	if opts.FixedWidth > 0 {
		width = opts.FixedWidth
	}
	if opts.FixedHeight > 0 {
		height = opts.FixedHeight
	}
	attrs = append(attrs,
		fmt.Sprintf(`width="%s"`, num(width)),
		fmt.Sprintf(`height="%s"`, num(height)))
	r.start(attrs)

	for _, o := range doc.Objects {
		r.object(o)
	}
	r.canvas.End()
	return ew.err
}

// start writes the root element. The canvas' own Start methods emit an XML
// declaration and a comment, which do not belong in markup meant to be
// embedded in HTML.
func (r *renderer) start(attrs []string) {
	fmt.Fprintf(r.canvas.Writer, "<svg xmlns=%q %s>\n", svgNS, strings.Join(attrs, " "))
}

// object draws o and then its text. Blocks draw their children.
func (r *renderer) object(o *layout.Object) {
	switch {
	case o.Kind == syntax.Block:
		for _, c := range o.Children {
			r.object(c)
		}
	case o.Invisible:
	case o.Kind.IsLine():
		r.line(o)
	default:
		if d := shapePath(&r.tr, o); d != "" {
			r.canvas.Path(d, r.style(o, o.Fill))
		}
		if o.Kind == syntax.File {
			r.canvas.Path(foldPath(&r.tr, o), r.style(o, layout.NoColor))
		}
	}
	for i := range o.Texts {
		r.text(&o.Texts[i])
	}
}

// style returns the style attribute for the outline of o.
func (r *renderer) style(o *layout.Object, fill layout.Color) string {
	var b strings.Builder
	fmt.Fprintf(&b, "fill:%s;", r.color(fill))
	fmt.Fprintf(&b, "stroke-width:%s;", num(o.Thickness*UnitsPerInch))
	fmt.Fprintf(&b, "stroke:%s;", r.color(o.Stroke))
	switch {
	case o.Dashed > 0:
		d := num(o.Dashed * UnitsPerInch)
		fmt.Fprintf(&b, "stroke-dasharray:%s,%s;", d, d)
	case o.Dotted > 0:
		fmt.Fprintf(&b, "stroke-dasharray:%s,%s;",
			num(o.Thickness*UnitsPerInch), num(o.Dotted*UnitsPerInch))
	}
	return b.String()
}
