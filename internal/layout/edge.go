package layout

import (
	"fmt"

	"github.com/you-not-fish/pikgo/internal/geom"
	"github.com/you-not-fish/pikgo/internal/syntax"
)

// Edge names an attachment point of an object.
type Edge uint8

const (
	EdgeC Edge = iota
	EdgeN
	EdgeNE
	EdgeE
	EdgeSE
	EdgeS
	EdgeSW
	EdgeW
	EdgeNW
	EdgeStart
	EdgeEnd
)

var edgeStrings = [...]string{
	EdgeC:     "c",
	EdgeN:     "n",
	EdgeNE:    "ne",
	EdgeE:     "e",
	EdgeSE:    "se",
	EdgeS:     "s",
	EdgeSW:    "sw",
	EdgeW:     "w",
	EdgeNW:    "nw",
	EdgeStart: "start",
	EdgeEnd:   "end",
}

func (e Edge) String() string {
	if int(e) < len(edgeStrings) {
		return edgeStrings[e]
	}
	return fmt.Sprintf("Edge(%d)", e)
}

// edgeNames maps every spelling accepted after '.' or "with" to an edge.
var edgeNames = map[string]Edge{
	"c": EdgeC, "center": EdgeC, "centre": EdgeC,
	"n": EdgeN, "north": EdgeN, "t": EdgeN, "top": EdgeN,
	"ne": EdgeNE, "northeast": EdgeNE,
	"e": EdgeE, "east": EdgeE, "right": EdgeE,
	"se": EdgeSE, "southeast": EdgeSE,
	"s": EdgeS, "south": EdgeS, "b": EdgeS, "bot": EdgeS, "bottom": EdgeS,
	"sw": EdgeSW, "southwest": EdgeSW,
	"w": EdgeW, "west": EdgeW, "left": EdgeW,
	"nw": EdgeNW, "northwest": EdgeNW,
	"start": EdgeStart,
	"end":   EdgeEnd,
}

// LookupEdge returns the edge spelled name.
func LookupEdge(name string) (Edge, bool) {
	e, ok := edgeNames[name]
	return e, ok
}

// vec returns the compass direction of e with components in {-1, 0, 1}.
func (e Edge) vec() geom.Point {
	switch e {
	case EdgeN:
		return geom.Pt(0, 1)
	case EdgeNE:
		return geom.Pt(1, 1)
	case EdgeE:
		return geom.Pt(1, 0)
	case EdgeSE:
		return geom.Pt(1, -1)
	case EdgeS:
		return geom.Pt(0, -1)
	case EdgeSW:
		return geom.Pt(-1, -1)
	case EdgeW:
		return geom.Pt(-1, 0)
	case EdgeNW:
		return geom.Pt(-1, 1)
	}
	return geom.Point{}
}

func (e Edge) isDiagonal() bool {
	switch e {
	case EdgeNE, EdgeSE, EdgeSW, EdgeNW:
		return true
	}
	return false
}

// dirEdge returns the edge an object leaves through when moving in d.
func dirEdge(d syntax.Direction) Edge {
	switch d {
	case syntax.Down:
		return EdgeS
	case syntax.Left:
		return EdgeW
	case syntax.Up:
		return EdgeN
	}
	return EdgeE
}

// dirVec returns the unit vector of d.
func dirVec(d syntax.Direction) geom.Point {
	return dirEdge(d).vec()
}
