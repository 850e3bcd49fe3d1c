package layout

import (
	"github.com/you-not-fish/pikgo/internal/geom"
	"github.com/you-not-fish/pikgo/internal/syntax"
)

// State tracks an object through the resolver.
type State uint8

const (
	Declared State = iota // created, clauses not evaluated yet
	Resolved              // geometry fixed; immutable from now on
)

func (s State) String() string {
	if s == Resolved {
		return "resolved"
	}
	return "declared"
}

// An Object is one drawn object, or a named place (Kind syntax.NoKind).
//
// Lengths are in inches; coordinates have y pointing up. For line kinds
// Path holds the absolute vertices and Center, Width and Height describe
// the bounding box of the path.
type Object struct {
	Kind  syntax.ObjKind
	Label string
	Pos   syntax.Pos
	State State

	Center        geom.Point
	Width, Height float64
	Radius        float64 // circles; corner radius for boxes, files, cylinders
	Dir           syntax.Direction

	Thickness float64
	Stroke    Color
	Fill      Color
	Dashed    float64 // dash length, 0 if not dashed
	Dotted    float64 // dot spacing, 0 if not dotted
	Invisible bool

	ArrowStart, ArrowEnd bool
	ArrowHt, ArrowWid    float64

	CW     bool // arcs turn clockwise
	Closed bool // the path is closed
	Path   []geom.Point

	Texts    []Text
	Children []*Object // blocks only, in source order

	BBox geom.Rect  // extents including stroke and text
	Exit geom.Point // where the next object is attached

	scope *Scope // labels inside a block
}

// A Text is one string of an object, placed.
type Text struct {
	Value string
	Flags syntax.TextFlags
	At    geom.Point // anchor: left end, center or right end of the baseline
	Width float64    // rendered width
	Size  float64    // relative font size: 1, or larger for big, smaller for small
	Angle float64    // counter-clockwise rotation in degrees
	Color Color
}

// Anchor returns the horizontal anchor of t: "start", "middle" or "end".
func (t *Text) Anchor() string {
	switch {
	case t.Flags&syntax.Ljust != 0:
		return "start"
	case t.Flags&syntax.Rjust != 0:
		return "end"
	}
	return "middle"
}

// Scope returns the labels declared inside a block, or nil.
func (o *Object) Scope() *Scope {
	return o.scope
}

// Edge returns the attachment point e of o.
func (o *Object) Edge(e Edge) geom.Point {
	switch e {
	case EdgeStart:
		return o.Start()
	case EdgeEnd:
		return o.End()
	}
	return o.Center.Add(kinds[o.Kind].offset(o, e))
}

// Start returns the first point of a line, or the entry edge of any other
// object.
func (o *Object) Start() geom.Point {
	if len(o.Path) > 0 {
		return o.Path[0]
	}
	return o.Center.Add(kinds[o.Kind].offset(o, dirEdge(o.Dir.Reverse())))
}

// End returns the last point of a line, or the exit edge of any other
// object.
func (o *Object) End() geom.Point {
	if n := len(o.Path); n > 0 {
		return o.Path[n-1]
	}
	return o.Center.Add(kinds[o.Kind].offset(o, dirEdge(o.Dir)))
}

// translate moves o and everything inside it by d.
func (o *Object) translate(d geom.Point) {
	o.Center = o.Center.Add(d)
	o.Exit = o.Exit.Add(d)
	o.BBox = o.BBox.Translate(d)
	for i := range o.Path {
		o.Path[i] = o.Path[i].Add(d)
	}
	for i := range o.Texts {
		o.Texts[i].At = o.Texts[i].At.Add(d)
	}
	for _, c := range o.Children {
		c.translate(d)
	}
}
