package syntax

import "fmt"

// ObjKind identifies the kind of a drawn object.
type ObjKind uint8

const (
	NoKind ObjKind = iota // named places; "any kind" in references

	Arc
	Arrow
	Block
	Box
	Circle
	Cylinder
	Diamond
	Dot
	Ellipse
	File
	Line
	Move
	Oval
	Path
	Spline
	Text

	NumKinds
)

var kindNames = [...]string{
	NoKind:   "place",
	Arc:      "arc",
	Arrow:    "arrow",
	Block:    "block",
	Box:      "box",
	Circle:   "circle",
	Cylinder: "cylinder",
	Diamond:  "diamond",
	Dot:      "dot",
	Ellipse:  "ellipse",
	File:     "file",
	Line:     "line",
	Move:     "move",
	Oval:     "oval",
	Path:     "path",
	Spline:   "spline",
	Text:     "text",
}

func (k ObjKind) String() string {
	if k < NumKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("ObjKind(%d)", k)
}

// IsLine reports whether objects of kind k are drawn along a path.
func (k ObjKind) IsLine() bool {
	switch k {
	case Arc, Arrow, Line, Move, Path, Spline:
		return true
	}
	return false
}

// kindOf maps an object-kind keyword to its ObjKind.
func kindOf(tok Token) ObjKind {
	switch tok {
	case _Arc:
		return Arc
	case _Arrow:
		return Arrow
	case _Box:
		return Box
	case _Circle:
		return Circle
	case _Cylinder:
		return Cylinder
	case _Diamond:
		return Diamond
	case _DotShape:
		return Dot
	case _Ellipse:
		return Ellipse
	case _File:
		return File
	case _Line:
		return Line
	case _Move:
		return Move
	case _Oval:
		return Oval
	case _Path:
		return Path
	case _Spline:
		return Spline
	case _Text:
		return Text
	}
	return NoKind
}

// Direction is a layout direction.
type Direction uint8

const (
	Right Direction = iota
	Down
	Left
	Up
)

var dirNames = [...]string{Right: "right", Down: "down", Left: "left", Up: "up"}

func (d Direction) String() string {
	if int(d) < len(dirNames) {
		return dirNames[d]
	}
	return fmt.Sprintf("Direction(%d)", d)
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	return (d + 2) % 4
}

// IsHorizontal reports whether d is right or left.
func (d Direction) IsHorizontal() bool {
	return d == Right || d == Left
}

func dirOf(tok Token) Direction {
	return Direction(tok - _Right)
}

// TextFlags is the set of attributes attached to a string.
type TextFlags uint16

const (
	Above TextFlags = 1 << iota
	Below
	Ljust
	Rjust
	Center
	Bold
	Italic
	Big
	Small
	Mono
	Aligned
)

var textFlagNames = []struct {
	flag TextFlags
	name string
}{
	{Above, "above"},
	{Below, "below"},
	{Ljust, "ljust"},
	{Rjust, "rjust"},
	{Center, "center"},
	{Bold, "bold"},
	{Italic, "italic"},
	{Big, "big"},
	{Small, "small"},
	{Mono, "mono"},
	{Aligned, "aligned"},
}

// Names returns the names of the flags set in f, in declaration order.
func (f TextFlags) Names() []string {
	var names []string
	for _, n := range textFlagNames {
		if f&n.flag != 0 {
			names = append(names, n.name)
		}
	}
	return names
}

func textFlagOf(tok Token) TextFlags {
	switch tok {
	case _Above:
		return Above
	case _Below:
		return Below
	case _Ljust:
		return Ljust
	case _Rjust:
		return Rjust
	case _Center:
		return Center
	case _Bold:
		return Bold
	case _Italic:
		return Italic
	case _Big:
		return Big
	case _Small:
		return Small
	case _Mono:
		return Mono
	case _Aligned:
		return Aligned
	}
	return 0
}

// ClauseKind identifies an object attribute clause.
type ClauseKind uint8

const (
	ClauseText ClauseKind = iota
	ClauseDir
	ClauseWidth
	ClauseHeight
	ClauseRadius
	ClauseDiameter
	ClauseThickness
	ClauseThick
	ClauseThin
	ClauseColor
	ClauseFill
	ClauseDashed
	ClauseDotted
	ClauseSolid
	ClauseInvisible
	ClauseArrowRight // ->
	ClauseArrowLeft  // <-
	ClauseArrowBoth  // <->
	ClauseCW
	ClauseCCW
	ClauseClose
	ClauseChop
	ClauseFit
	ClauseFrom
	ClauseTo
	ClauseThen
	ClauseHeading
	ClauseDist
	ClauseAt
	ClauseWith
	ClauseSame
)

var clauseNames = [...]string{
	ClauseText:       "text",
	ClauseDir:        "direction",
	ClauseWidth:      "width",
	ClauseHeight:     "height",
	ClauseRadius:     "radius",
	ClauseDiameter:   "diameter",
	ClauseThickness:  "thickness",
	ClauseThick:      "thick",
	ClauseThin:       "thin",
	ClauseColor:      "color",
	ClauseFill:       "fill",
	ClauseDashed:     "dashed",
	ClauseDotted:     "dotted",
	ClauseSolid:      "solid",
	ClauseInvisible:  "invisible",
	ClauseArrowRight: "->",
	ClauseArrowLeft:  "<-",
	ClauseArrowBoth:  "<->",
	ClauseCW:         "cw",
	ClauseCCW:        "ccw",
	ClauseClose:      "close",
	ClauseChop:       "chop",
	ClauseFit:        "fit",
	ClauseFrom:       "from",
	ClauseTo:         "to",
	ClauseThen:       "then",
	ClauseHeading:    "heading",
	ClauseDist:       "distance",
	ClauseAt:         "at",
	ClauseWith:       "with",
	ClauseSame:       "same",
}

func (k ClauseKind) String() string {
	if int(k) < len(clauseNames) {
		return clauseNames[k]
	}
	return fmt.Sprintf("ClauseKind(%d)", k)
}

// simpleClauses maps argument-less attribute keywords to their clause.
var simpleClauses = map[Token]ClauseKind{
	_Thick:     ClauseThick,
	_Thin:      ClauseThin,
	_Solid:     ClauseSolid,
	_Invisible: ClauseInvisible,
	_RArrow:    ClauseArrowRight,
	_LArrow:    ClauseArrowLeft,
	_LRArrow:   ClauseArrowBoth,
	_CW:        ClauseCW,
	_CCW:       ClauseCCW,
	_Close:     ClauseClose,
	_Chop:      ClauseChop,
	_Fit:       ClauseFit,
	_Then:      ClauseThen,
}
