package layout

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-not-fish/pikgo/internal/geom"
	"github.com/you-not-fish/pikgo/internal/syntax"
	"github.com/you-not-fish/pikgo/internal/textmetrics"
)

// ----------------------------------------------------------------------------
// Test helpers

const eps = 1e-9

func resolve(t *testing.T, src string) *Document {
	t.Helper()
	d, err := syntax.Parse(src)
	require.NoError(t, err)
	doc, err := Resolve(d, nil)
	require.NoError(t, err)
	return doc
}

func resolveErr(t *testing.T, src string) error {
	t.Helper()
	d, err := syntax.Parse(src)
	require.NoError(t, err)
	_, err = Resolve(d, nil)
	require.Error(t, err)
	return err
}

func assertPt(t *testing.T, want, got geom.Point) {
	t.Helper()
	assert.True(t, want.Near(got, eps), "want %v, got %v", want, got)
}

func label(t *testing.T, doc *Document, name string) *Object {
	t.Helper()
	o := doc.Scope.Lookup(name)
	require.NotNil(t, o, "label %s", name)
	return o
}

// ----------------------------------------------------------------------------
// Placement

func TestDefaultBox(t *testing.T) {
	doc := resolve(t, "box")
	require.Len(t, doc.Objects, 1)
	b := doc.Objects[0]
	assert.Equal(t, syntax.Box, b.Kind)
	assertPt(t, geom.Pt(0, 0), b.Center)
	assert.InDelta(t, 0.75, b.Width, eps)
	assert.InDelta(t, 0.5, b.Height, eps)
	assertPt(t, geom.Pt(0.375, 0), b.Exit)
	assertPt(t, geom.Pt(-0.3825, -0.2575), doc.BBox.Min)
	assertPt(t, geom.Pt(0.3825, 0.2575), doc.BBox.Max)
	assert.Equal(t, Color(0), b.Stroke)
	assert.True(t, b.Fill.IsNone())
	assert.InDelta(t, 0.015, b.Thickness, eps)
}

func TestImplicitPlacement(t *testing.T) {
	tests := []struct {
		src  string
		want geom.Point // center of the last object
	}{
		{"box; circle", geom.Pt(0.625, 0)},
		{"gap = 0.1; box; box", geom.Pt(0.85, 0)},
		{"box; down; box", geom.Pt(0, -0.5)},
		{"left; box; box", geom.Pt(-0.75, 0)},
		{"up; circle; ellipse", geom.Pt(0, 0.5)},
		{"box; line; box", geom.Pt(1.25, 0)},
		{"line right 1 then down 1; box", geom.Pt(1, -1.25)},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			doc := resolve(t, tt.src)
			assertPt(t, tt.want, doc.Objects[len(doc.Objects)-1].Center)
		})
	}
}

func TestArrowBetweenBoxes(t *testing.T) {
	doc := resolve(t, `box "A"; arrow right; box "B"`)
	require.Len(t, doc.Objects, 3)
	a, arrow, b := doc.Objects[0], doc.Objects[1], doc.Objects[2]

	require.Len(t, arrow.Path, 2)
	assertPt(t, a.Edge(EdgeE), arrow.Path[0])
	assertPt(t, arrow.Path[0].Add(geom.Pt(0.5, 0)), arrow.Path[1])
	assert.True(t, arrow.ArrowEnd)
	assert.False(t, arrow.ArrowStart)
	assertPt(t, arrow.Path[1], b.Edge(EdgeW))
	assert.GreaterOrEqual(t, doc.BBox.Width(), a.Width+0.5+b.Width)
}

func TestEdges(t *testing.T) {
	r := 0.25 / math.Sqrt2
	tests := []struct {
		src  string
		edge Edge
		want geom.Point
	}{
		{"box wid 2 ht 1", EdgeN, geom.Pt(0, 0.5)},
		{"box wid 2 ht 1", EdgeNE, geom.Pt(1, 0.5)},
		{"box wid 2 ht 1", EdgeE, geom.Pt(1, 0)},
		{"box wid 2 ht 1", EdgeSE, geom.Pt(1, -0.5)},
		{"box wid 2 ht 1", EdgeS, geom.Pt(0, -0.5)},
		{"box wid 2 ht 1", EdgeSW, geom.Pt(-1, -0.5)},
		{"box wid 2 ht 1", EdgeW, geom.Pt(-1, 0)},
		{"box wid 2 ht 1", EdgeNW, geom.Pt(-1, 0.5)},
		{"box wid 2 ht 1", EdgeC, geom.Pt(0, 0)},
		{"box wid 2 ht 1", EdgeStart, geom.Pt(-1, 0)},
		{"box wid 2 ht 1", EdgeEnd, geom.Pt(1, 0)},
		{"circle", EdgeNE, geom.Pt(r, r)},
		{"circle", EdgeS, geom.Pt(0, -0.25)},
		{"diamond", EdgeN, geom.Pt(0, 0.375)},
		{"diamond", EdgeNE, geom.Pt(0.25, 0.1875)},
		{"ellipse", EdgeW, geom.Pt(-0.375, 0)},
		{"oval", EdgeE, geom.Pt(0.5, 0)},
		{"line right 1 then up 1", EdgeNE, geom.Pt(1, 1)},
		{"line right 1 then up 1", EdgeEnd, geom.Pt(1, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.src+"."+tt.edge.String(), func(t *testing.T) {
			doc := resolve(t, tt.src)
			assertPt(t, tt.want, doc.Objects[0].Edge(tt.edge))
		})
	}
}

func TestBoxEdgesEquidistant(t *testing.T) {
	for _, size := range [][2]float64{{1, 1}, {0.3, 2}, {5, 0.01}} {
		src := "box wid " + strconv.FormatFloat(size[0], 'g', -1, 64) +
			" ht " + strconv.FormatFloat(size[1], 'g', -1, 64)
		b := resolve(t, src).Objects[0]
		for _, e := range []Edge{EdgeN, EdgeS} {
			assert.InDelta(t, size[1]/2, math.Abs(b.Edge(e).Y-b.Center.Y), eps, src)
		}
		for _, e := range []Edge{EdgeE, EdgeW} {
			assert.InDelta(t, size[0]/2, math.Abs(b.Edge(e).X-b.Center.X), eps, src)
		}
	}
}

func TestWithAndAt(t *testing.T) {
	doc := resolve(t, "box with .nw at (0,0); P: (1,2); circle at P; line right 1 at (5,5)")
	assertPt(t, geom.Pt(0.375, -0.25), doc.Objects[0].Center)
	assertPt(t, geom.Pt(1, 2), doc.Objects[1].Center)
	line := doc.Objects[2]
	assertPt(t, geom.Pt(4.5, 5), line.Path[0])
	assertPt(t, geom.Pt(5.5, 5), line.Path[1])

	doc = resolve(t, "box at (1,1) at (2,2)")
	assertPt(t, geom.Pt(2, 2), doc.Objects[0].Center)

	doc = resolve(t, "box at (1,1) with .n at (2,2)")
	assertPt(t, geom.Pt(2, 1.75), doc.Objects[0].Center)
}

func TestBlock(t *testing.T) {
	doc := resolve(t, "box; A: [ B: box; box ]; P: A.B.w")
	require.Len(t, doc.Objects, 2)
	block := doc.Objects[1]
	assert.Equal(t, syntax.Block, block.Kind)
	require.Len(t, block.Children, 2)
	assert.InDelta(t, 1.515, block.Width, eps)
	assertPt(t, geom.Pt(1.1325, 0), block.Center)

	b := block.Scope().Lookup("B")
	require.NotNil(t, b)
	assertPt(t, geom.Pt(0.7575, 0), b.Center)
	assertPt(t, geom.Pt(0.3825, 0), label(t, doc, "P").Center)
	assert.Nil(t, doc.Scope.Lookup("B"), "inner labels stay inside the block")

	for _, o := range append([]*Object{block}, block.Children...) {
		assert.Equal(t, Resolved, o.State)
	}
}

func TestBlockSeesOuterLabels(t *testing.T) {
	doc := resolve(t, "A: box at (3,3); [ circle at A ] at A")
	assertPt(t, geom.Pt(3, 3), doc.Objects[1].Children[0].Center)

	// children keep their relative positions when the block moves
	doc = resolve(t, "A: box at (3,3); [ circle at A ]")
	assertPt(t, geom.Pt(3.6325, 3), doc.Objects[1].Children[0].Center)
}

// ----------------------------------------------------------------------------
// Lines

func TestLinePaths(t *testing.T) {
	tests := []struct {
		src  string
		want []geom.Point
	}{
		{"line", []geom.Point{geom.Pt(0, 0), geom.Pt(0.5, 0)}},
		{"down; line", []geom.Point{geom.Pt(0, 0), geom.Pt(0, -0.5)}},
		{"line right 1 then down 1", []geom.Point{geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(1, -1)}},
		{"line right 1 up 1", []geom.Point{geom.Pt(0, 0), geom.Pt(1, 1)}},
		{"line up 1 right 1 up 1", []geom.Point{geom.Pt(0, 0), geom.Pt(1, 1), geom.Pt(1, 2)}},
		{"line right 50%", []geom.Point{geom.Pt(0, 0), geom.Pt(0.25, 0)}},
		{"line 2", []geom.Point{geom.Pt(0, 0), geom.Pt(2, 0)}},
		{"line to (1,1) then to (2,0)", []geom.Point{geom.Pt(0, 0), geom.Pt(1, 1), geom.Pt(2, 0)}},
		{"line right 1 from (3,3)", []geom.Point{geom.Pt(3, 3), geom.Pt(4, 3)}},
		{"line from (3,3) right 1", []geom.Point{geom.Pt(3, 3), geom.Pt(4, 3)}},
		{"move", []geom.Point{geom.Pt(0, 0), geom.Pt(0.5, 0)}},
		{"line 1 heading 90", []geom.Point{geom.Pt(0, 0), geom.Pt(1, 0)}},
		{"line go up 1", []geom.Point{geom.Pt(0, 0), geom.Pt(0, 1)}},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			o := resolve(t, tt.src).Objects[0]
			require.Len(t, o.Path, len(tt.want))
			for i, p := range tt.want {
				assertPt(t, p, o.Path[i])
			}
		})
	}
}

func TestLineChangesDirection(t *testing.T) {
	doc := resolve(t, "line down 1; line")
	assertPt(t, geom.Pt(0, -1.5), doc.Objects[1].Path[1])

	// a line ending with "to" keeps the direction
	doc = resolve(t, "line to (1,1); line")
	assertPt(t, geom.Pt(1.5, 1), doc.Objects[1].Path[1])
}

func TestChop(t *testing.T) {
	doc := resolve(t, "A: box; B: circle at (3,0); line from A to B chop")
	line := doc.Objects[2]
	assertPt(t, geom.Pt(0.375, 0), line.Path[0])
	assertPt(t, geom.Pt(2.75, 0), line.Path[1])

	// only endpoints given as objects are chopped
	doc = resolve(t, "A: box; line from A.c to (3,0) chop")
	assertPt(t, geom.Pt(0, 0), doc.Objects[1].Path[0])
	assertPt(t, geom.Pt(3, 0), doc.Objects[1].Path[1])

	doc = resolve(t, "A: diamond; B: ellipse at (0,3); line from A to B chop")
	line = doc.Objects[2]
	assertPt(t, geom.Pt(0, 0.375), line.Path[0])
	assertPt(t, geom.Pt(0, 2.75), line.Path[1])
}

func TestArc(t *testing.T) {
	a := resolve(t, "arc").Objects[0]
	require.Len(t, a.Path, 2)
	assertPt(t, geom.Pt(0.25, 0.25), a.Path[1])
	assert.InDelta(t, 0.25, a.Radius, eps)
	assert.False(t, a.CW)

	a = resolve(t, "arc cw").Objects[0]
	assertPt(t, geom.Pt(0.25, -0.25), a.Path[1])
	assert.True(t, a.CW)

	// the bounding box includes the bulge of the arc
	a = resolve(t, "arc from (0,0) to (1,0)").Objects[0]
	assert.Less(t, a.BBox.Min.Y, -0.2)
}

func TestPathIsClosed(t *testing.T) {
	p := resolve(t, "path right 1 then up 1").Objects[0]
	assert.True(t, p.Closed)
	assert.False(t, resolve(t, "line right 1 then up 1").Objects[0].Closed)
	assert.True(t, resolve(t, "line right 1 then up 1 close").Objects[0].Closed)
}

// ----------------------------------------------------------------------------
// Attributes

func TestAttributes(t *testing.T) {
	doc := resolve(t, `box color red fill 0x00ff00 dashed thick
circle rad 1 dotted 0.1
box fill None invisible
line <->
dot color blue
box width 200%
circle diameter 1`)
	b := doc.Objects[0]
	assert.Equal(t, RGB(255, 0, 0), b.Stroke)
	assert.Equal(t, RGB(0, 255, 0), b.Fill)
	assert.InDelta(t, 0.05, b.Dashed, eps)
	assert.InDelta(t, 0.0225, b.Thickness, eps)

	c := doc.Objects[1]
	assert.InDelta(t, 1, c.Radius, eps)
	assert.InDelta(t, 2, c.Width, eps)
	assert.InDelta(t, 0.1, c.Dotted, eps)
	assert.Zero(t, c.Dashed)

	assert.True(t, doc.Objects[2].Fill.IsNone())
	assert.True(t, doc.Objects[2].Invisible)

	l := doc.Objects[3]
	assert.True(t, l.ArrowStart)
	assert.True(t, l.ArrowEnd)

	assert.Equal(t, RGB(0, 0, 255), doc.Objects[4].Fill, "dots are filled with their colour")
	assert.InDelta(t, 1.5, doc.Objects[5].Width, eps)
	assert.InDelta(t, 0.5, doc.Objects[6].Radius, eps)
}

func TestVariables(t *testing.T) {
	doc := resolve(t, "boxwid = 1; box; boxwid *= 2; box; color = blue; thickness = 0.05; circle")
	assert.InDelta(t, 1, doc.Objects[0].Width, eps)
	assert.InDelta(t, 2, doc.Objects[1].Width, eps)
	assert.Equal(t, RGB(0, 0, 255), doc.Objects[2].Stroke)
	assert.InDelta(t, 0.05, doc.Objects[2].Thickness, eps)
}

func TestScale(t *testing.T) {
	d, err := syntax.Parse("box; circle")
	require.NoError(t, err)
	doc, err := Resolve(d, &Config{Scale: 2})
	require.NoError(t, err)
	assert.InDelta(t, 1.5, doc.Objects[0].Width, eps)
	assert.InDelta(t, 0.5, doc.Objects[1].Radius, eps)
	assert.InDelta(t, 0.03, doc.Objects[0].Thickness, eps)
}

func TestSame(t *testing.T) {
	doc := resolve(t, "box wid 2 fill red; circle; box same; B: box ht 3; box same as B")
	assert.InDelta(t, 2, doc.Objects[2].Width, eps)
	assert.Equal(t, RGB(255, 0, 0), doc.Objects[2].Fill)
	assert.InDelta(t, 3, doc.Objects[4].Height, eps)

	doc = resolve(t, "line right 1 then up 1; line same")
	l := doc.Objects[1]
	require.Len(t, l.Path, 3)
	assertPt(t, l.Path[0].Add(geom.Pt(1, 1)), l.Path[2])

	// clauses after same win
	doc = resolve(t, "box wid 2; box same wid 1")
	assert.InDelta(t, 1, doc.Objects[1].Width, eps)
}

func TestThis(t *testing.T) {
	doc := resolve(t, "box ht 1 wid this.ht*2")
	assert.InDelta(t, 2, doc.Objects[0].Width, eps)
}

// ----------------------------------------------------------------------------
// Text

func TestTextFit(t *testing.T) {
	m := textmetrics.New()
	width := m.Width("hello", textmetrics.Regular) * 0.16

	doc := resolve(t, `box "hello" fit; "hello"; box "hello" fit wid 3; circle "hello" fit`)
	assert.InDelta(t, width+0.08, doc.Objects[0].Width, eps)
	assert.InDelta(t, 0.14+0.07, doc.Objects[0].Height, eps)

	txt := doc.Objects[1]
	assert.Equal(t, syntax.Text, txt.Kind)
	assert.InDelta(t, width, txt.Width, eps)
	assert.InDelta(t, 0.14, txt.Height, eps)

	assert.InDelta(t, 3, doc.Objects[2].Width, eps)
	assert.InDelta(t, math.Hypot(width+0.08, 0.21)/2, doc.Objects[3].Radius, eps)
}

func TestTextPlacement(t *testing.T) {
	doc := resolve(t, `box "a" "b"; box at (0,0) "x" above "y" below "c"; box at (0,0) "l" ljust bold big`)
	ts := doc.Objects[0].Texts
	require.Len(t, ts, 2)
	assert.InDelta(t, 0.07, ts[0].At.Y, eps)
	assert.InDelta(t, -0.07, ts[1].At.Y, eps)
	assert.Equal(t, "middle", ts[0].Anchor())

	ts = doc.Objects[1].Texts
	require.Len(t, ts, 3)
	assert.InDelta(t, 0.14, ts[0].At.Y, eps)
	assert.InDelta(t, -0.14, ts[1].At.Y, eps)
	assert.InDelta(t, 0, ts[2].At.Y, eps)

	l := doc.Objects[2].Texts[0]
	assert.Equal(t, "start", l.Anchor())
	assert.InDelta(t, 1.25, l.Size, eps)
}

func TestAlignedText(t *testing.T) {
	doc := resolve(t, `line up 1 "x" aligned above`)
	txt := doc.Objects[0].Texts[0]
	assert.InDelta(t, 90, txt.Angle, eps)
	assertPt(t, geom.Pt(-0.07, 0.5), txt.At)
}

// ----------------------------------------------------------------------------
// Expressions

func evalVar(t *testing.T, src string) float64 {
	t.Helper()
	d, err := syntax.Parse("x = " + src)
	require.NoError(t, err)
	c := newContext(&Config{})
	require.NoError(t, c.stmts(d.Stmts))
	return c.vars["x"]
}

func TestExpressions(t *testing.T) {
	tests := []struct {
		src  string
		want float64
	}{
		{"1 + 2*3", 7},
		{"(1 + 2)*3", 9},
		{"2.54cm", 1},
		{"72pt", 1},
		{"96px", 1},
		{"25.4mm", 1},
		{"6pc", 1},
		{"-(1,2).y", -2},
		{"((1,2) + (3,4)).x", 4},
		{"((1,2) * 2).y", 4},
		{"(2 * (1,2)).x", 2},
		{"((4,2) / 2).x", 2},
		{"((4,2) - (1,1)).y", 1},
		{"0xff", 255},
		{"red", 0xff0000},
		{"boxwid", 0.75},
		{"north.y", 0.5},
		{"(1/2 between (0,0) and (4,2)).x", 2},
		{"(0.25 of the way between (0,0) and (4,0)).x", 1},
		{"(0.5 <(0,0), (2,2)>).y", 1},
		{"(1 above (0,0)).y", 1},
		{"(1 left of (0,0)).x", -1},
		{"(1 on heading 180 from (0,0)).y", -1},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			assert.InDelta(t, tt.want, evalVar(t, tt.src), eps)
		})
	}
}

func TestPlaceExpressions(t *testing.T) {
	doc := resolve(t, `box; circle; box
P1: 1st box.c
P2: 2nd box.e
P3: last circle.n
P4: previous.w
P5: first box.ne + (1, 1)
P6: (2nd box.x, last circle.y)`)
	assertPt(t, geom.Pt(0, 0), label(t, doc, "P1").Center)
	assertPt(t, geom.Pt(1.625, 0), label(t, doc, "P2").Center)
	assertPt(t, geom.Pt(0.625, 0.25), label(t, doc, "P3").Center)
	assertPt(t, geom.Pt(0.875, 0), label(t, doc, "P4").Center)
	assertPt(t, geom.Pt(1.375, 1.25), label(t, doc, "P5").Center)
	assertPt(t, geom.Pt(1.25, 0), label(t, doc, "P6").Center)
}

func TestAtLastCircle(t *testing.T) {
	doc := resolve(t, "circle; circle at last circle.e + (1in,0)")
	require.Len(t, doc.Objects, 2)
	first, second := doc.Objects[0], doc.Objects[1]
	assertPt(t, first.Edge(EdgeE).Add(geom.Pt(1, 0)), second.Center)
	assertPt(t, geom.Pt(1.25, 0), second.Center)
}

func TestAssert(t *testing.T) {
	resolve(t, "box; assert(last box.wid == 0.75); assert(last box.e == (0.375, 0))")

	err := resolveErr(t, "assert(1 == 2)")
	var le *LayoutError
	require.True(t, errors.As(err, &le))
	assert.Contains(t, le.Msg, "assertion failed")
}

// ----------------------------------------------------------------------------
// Errors

func TestErrors(t *testing.T) {
	tests := []struct {
		src    string
		layout bool // LayoutError rather than EvalError
		pos    string
		msg    string
	}{
		{"box\nline from Z", false, "2:11", "undefined object Z"},
		{"line from A; A: box", true, "1:11", "object A referenced before it is placed"},
		{"circle at this.n", true, "1:11", "cyclic reference to this.n"},
		{"A: box; line from A at (1,1)", true, "1:9", "at cannot be combined with from or to"},
		{"x += 1", false, "1:1", "undefined variable x"},
		{"x = 1/0", false, "1:7", "division by zero"},
		{"x = (1,2) + 1", false, "1:5", "invalid operation"},
		{"x = (1,2)", false, "1:5", "cannot assign point"},
		{"box wid nosuch", false, "1:9", "undefined variable nosuch"},
		{"box fill (1,2)", false, "1:10", "expected a colour"},
		{"circle radius -1", true, "1:8", "circle: negative size -1"},
		{"box width -1", true, "1:5", "box: negative size -1"},
		{"B: box ht -2*boxht", true, "1:8", "B: negative size -1"},
		{"box fill Blue; Blue: box", true, "1:10", "object Blue referenced before it is placed"},
		{"Blue: box; box fill Blue", false, "1:21", "expected a colour"},
		{"box; circle at 3rd box", false, "1:16", "no such object: 3rd box"},
		{"box same", false, "1:5", "no previous box"},
		{"B: box; circle at B.C", false, "1:19", "B is not a block"},
		{"box; line from last box.nowhere", false, "1:16", "unknown attribute .nowhere"},
		{"box with .middle", false, "1:5", "unknown edge .middle"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			err := resolveErr(t, tt.src)
			var pos syntax.Pos
			var msg string
			if tt.layout {
				var le *LayoutError
				require.True(t, errors.As(err, &le), "got %T: %v", err, err)
				pos, msg = le.Pos, le.Msg
			} else {
				var ee *EvalError
				require.True(t, errors.As(err, &ee), "got %T: %v", err, err)
				pos, msg = ee.Pos, ee.Msg
			}
			assert.Equal(t, tt.pos, pos.String())
			assert.Contains(t, msg, tt.msg)
		})
	}
}

// ----------------------------------------------------------------------------
// Internals

func TestKindTable(t *testing.T) {
	for k := syntax.NoKind; k < syntax.NumKinds; k++ {
		info := kinds[k]
		assert.NotNil(t, info.init, "%s init", k)
		assert.NotNil(t, info.offset, "%s offset", k)
		assert.NotNil(t, info.chop, "%s chop", k)
		assert.NotNil(t, info.fit, "%s fit", k)
	}
}

func TestResolveTwicePanics(t *testing.T) {
	c := newContext(&Config{})
	o := &Object{Kind: syntax.Box}
	c.resolve(o)
	assert.Panics(t, func() { c.resolve(o) })
}

func TestDefaultsNotShared(t *testing.T) {
	resolve(t, "boxwid = 3")
	assert.Equal(t, 0.75, defaultVars["boxwid"])
	assert.InDelta(t, 0.75, resolve(t, "box").Objects[0].Width, eps)
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	d, err := syntax.Parse("A: box; circle")
	require.NoError(t, err)
	_, err = Resolve(d, &Config{Logger: logger})
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(buf.String(), "resolved object"))
	assert.Contains(t, buf.String(), "label=A")
	assert.Contains(t, buf.String(), "kind=circle")
	assert.Contains(t, buf.String(), "msg=scopes")
}

func TestScopeTree(t *testing.T) {
	doc := resolve(t, "A: box; B: [ C: circle; [ D: box ] ]")
	want := "diagram scope { A box, B block }\n" +
		"  block B scope { C circle }\n" +
		"    block at 1:25 scope { D box }\n"
	assert.Equal(t, want, doc.Scope.Tree())
	require.Len(t, doc.Scope.Children(), 1)
	assert.Same(t, label(t, doc, "B").Scope(), doc.Scope.Children()[0])
}

func TestLookupColor(t *testing.T) {
	c, ok := lookupColor("Red")
	assert.True(t, ok)
	assert.Equal(t, RGB(255, 0, 0), c)
	c, ok = lookupColor("off")
	assert.True(t, ok)
	assert.True(t, c.IsNone())
	_, ok = lookupColor("nosuchcolour")
	assert.False(t, ok)
	assert.Equal(t, "rgb(255,0,0)", RGB(255, 0, 0).String())
}
