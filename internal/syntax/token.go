// Package syntax implements lexical analysis and parsing for the pikchr
// diagram language.
package syntax

import "fmt"

// Token represents the type of a lexical token.
type Token uint

const (
	// Special tokens
	_EOF Token = iota // end of input

	// Names and literals
	_Name    // variable or bare word: boxwid, $x, north, red
	_Place   // label: A, Main, Box1
	_Number  // 1, 2.5in, .5, 0xff
	_Ordinal // 1st, 2nd, 3rd
	_String  // "text"

	// Operators
	_Add       // +
	_Sub       // -
	_Mul       // *
	_Div       // /
	_Percent   // %
	_Assign    // =
	_AddAssign // +=
	_SubAssign // -=
	_MulAssign // *=
	_DivAssign // /=
	_Eql       // ==
	_Lss       // <
	_Gtr       // >
	_RArrow    // ->
	_LArrow    // <-
	_LRArrow   // <->

	// Delimiters
	_Lparen // (
	_Rparen // )
	_Lbrack // [
	_Rbrack // ]
	_Comma  // ,
	_Semi   // ; or newline
	_Colon  // :
	_Dot    // .

	// Keywords: object kinds
	_Arc
	_Arrow
	_Box
	_Circle
	_Cylinder
	_Diamond
	_DotShape
	_Ellipse
	_File
	_Line
	_Move
	_Oval
	_Path
	_Spline
	_Text

	// Keywords: directions
	_Right
	_Down
	_Left
	_Up

	// Keywords: attributes
	_As
	_At
	_CCW
	_CW
	_Chop
	_Close
	_Color
	_Dashed
	_Diameter
	_Dotted
	_Fill
	_Fit
	_From
	_Go
	_Heading
	_Height
	_Invisible
	_Radius
	_Same
	_Solid
	_Then
	_Thick
	_Thickness
	_Thin
	_To
	_Width
	_With

	// Keywords: text attributes
	_Above
	_Aligned
	_Below
	_Big
	_Bold
	_Center
	_Italic
	_Ljust
	_Mono
	_Rjust
	_Small

	// Keywords: references and positions
	_And
	_Between
	_First
	_Last
	_Of
	_On
	_Previous
	_The
	_This
	_Way

	// Keywords: statements
	_Assert

	tokenCount
)

// tokenNames maps tokens to their string representation.
var tokenNames = [...]string{
	_EOF: "EOF",

	_Name:    "NAME",
	_Place:   "PLACE",
	_Number:  "NUMBER",
	_Ordinal: "ORDINAL",
	_String:  "STRING",

	_Add:       "+",
	_Sub:       "-",
	_Mul:       "*",
	_Div:       "/",
	_Percent:   "%",
	_Assign:    "=",
	_AddAssign: "+=",
	_SubAssign: "-=",
	_MulAssign: "*=",
	_DivAssign: "/=",
	_Eql:       "==",
	_Lss:       "<",
	_Gtr:       ">",
	_RArrow:    "->",
	_LArrow:    "<-",
	_LRArrow:   "<->",

	_Lparen: "(",
	_Rparen: ")",
	_Lbrack: "[",
	_Rbrack: "]",
	_Comma:  ",",
	_Semi:   ";",
	_Colon:  ":",
	_Dot:    ".",

	_Arc:      "arc",
	_Arrow:    "arrow",
	_Box:      "box",
	_Circle:   "circle",
	_Cylinder: "cylinder",
	_Diamond:  "diamond",
	_DotShape: "dot",
	_Ellipse:  "ellipse",
	_File:     "file",
	_Line:     "line",
	_Move:     "move",
	_Oval:     "oval",
	_Path:     "path",
	_Spline:   "spline",
	_Text:     "text",

	_Right: "right",
	_Down:  "down",
	_Left:  "left",
	_Up:    "up",

	_As:        "as",
	_At:        "at",
	_CCW:       "ccw",
	_CW:        "cw",
	_Chop:      "chop",
	_Close:     "close",
	_Color:     "color",
	_Dashed:    "dashed",
	_Diameter:  "diameter",
	_Dotted:    "dotted",
	_Fill:      "fill",
	_Fit:       "fit",
	_From:      "from",
	_Go:        "go",
	_Heading:   "heading",
	_Height:    "height",
	_Invisible: "invisible",
	_Radius:    "radius",
	_Same:      "same",
	_Solid:     "solid",
	_Then:      "then",
	_Thick:     "thick",
	_Thickness: "thickness",
	_Thin:      "thin",
	_To:        "to",
	_Width:     "width",
	_With:      "with",

	_Above:   "above",
	_Aligned: "aligned",
	_Below:   "below",
	_Big:     "big",
	_Bold:    "bold",
	_Center:  "center",
	_Italic:  "italic",
	_Ljust:   "ljust",
	_Mono:    "mono",
	_Rjust:   "rjust",
	_Small:   "small",

	_And:      "and",
	_Between:  "between",
	_First:    "first",
	_Last:     "last",
	_Of:       "of",
	_On:       "on",
	_Previous: "previous",
	_The:      "the",
	_This:     "this",
	_Way:      "way",

	_Assert: "assert",
}

// String returns the string representation of the token.
func (t Token) String() string {
	if t < tokenCount {
		return tokenNames[t]
	}
	return fmt.Sprintf("token(%d)", t)
}

// Precedence returns the operator precedence for binary operators.
// Returns 0 for non-operators.
//
//	1: + -
//	2: * /
func (t Token) Precedence() int {
	switch t {
	case _Add, _Sub:
		return 1
	case _Mul, _Div:
		return 2
	}
	return 0
}

// IsEOF reports whether t marks the end of input.
func (t Token) IsEOF() bool {
	return t == _EOF
}

// IsKeyword reports whether t is a keyword token.
func (t Token) IsKeyword() bool {
	return t >= _Arc && t <= _Assert
}

// IsKind reports whether t names an object kind.
func (t Token) IsKind() bool {
	return t >= _Arc && t <= _Text
}

// IsDirection reports whether t is one of right, down, left, up.
func (t Token) IsDirection() bool {
	return t >= _Right && t <= _Up
}

// IsTextAttr reports whether t can follow a string as a text attribute.
func (t Token) IsTextAttr() bool {
	return t >= _Above && t <= _Small
}

// IsAssignOp reports whether t is = or one of the compound assignments.
func (t Token) IsAssignOp() bool {
	return t >= _Assign && t <= _DivAssign
}

// Exported operator tokens for the evaluator.
const (
	Add Token = _Add // +
	Sub Token = _Sub // -
	Mul Token = _Mul // *
	Div Token = _Div // /

	Assign    Token = _Assign    // =
	AddAssign Token = _AddAssign // +=
	SubAssign Token = _SubAssign // -=
	MulAssign Token = _MulAssign // *=
	DivAssign Token = _DivAssign // /=
)

// keywords maps keyword spellings, including abbreviations, to tokens.
// Colour names and compass words are not keywords: they scan as _Name
// and are resolved by the evaluator.
var keywords = map[string]Token{
	"arc":      _Arc,
	"arrow":    _Arrow,
	"box":      _Box,
	"circle":   _Circle,
	"cylinder": _Cylinder,
	"diamond":  _Diamond,
	"dot":      _DotShape,
	"ellipse":  _Ellipse,
	"file":     _File,
	"line":     _Line,
	"move":     _Move,
	"oval":     _Oval,
	"path":     _Path,
	"spline":   _Spline,
	"text":     _Text,

	"right": _Right,
	"down":  _Down,
	"left":  _Left,
	"up":    _Up,

	"as":        _As,
	"at":        _At,
	"ccw":       _CCW,
	"cw":        _CW,
	"chop":      _Chop,
	"close":     _Close,
	"color":     _Color,
	"colour":    _Color,
	"dashed":    _Dashed,
	"diameter":  _Diameter,
	"dotted":    _Dotted,
	"fill":      _Fill,
	"fit":       _Fit,
	"from":      _From,
	"go":        _Go,
	"heading":   _Heading,
	"height":    _Height,
	"ht":        _Height,
	"invisible": _Invisible,
	"invis":     _Invisible,
	"radius":    _Radius,
	"rad":       _Radius,
	"same":      _Same,
	"solid":     _Solid,
	"then":      _Then,
	"thick":     _Thick,
	"thickness": _Thickness,
	"thin":      _Thin,
	"to":        _To,
	"width":     _Width,
	"wid":       _Width,
	"with":      _With,

	"above":   _Above,
	"aligned": _Aligned,
	"below":   _Below,
	"big":     _Big,
	"bold":    _Bold,
	"center":  _Center,
	"italic":  _Italic,
	"ljust":   _Ljust,
	"mono":    _Mono,
	"rjust":   _Rjust,
	"small":   _Small,

	"and":      _And,
	"between":  _Between,
	"first":    _First,
	"last":     _Last,
	"of":       _Of,
	"on":       _On,
	"previous": _Previous,
	"the":      _The,
	"this":     _This,
	"way":      _Way,

	"assert": _Assert,
}

// LookupKeyword returns the token for the given identifier string.
// Identifiers that are not keywords are _Place when they start with an
// upper-case letter and _Name otherwise.
func LookupKeyword(ident string) Token {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	if ident != "" && isUpper(rune(ident[0])) {
		return _Place
	}
	return _Name
}

// units maps numeric unit suffixes to their size in inches.
var units = map[string]float64{
	"in": 1,
	"cm": 1 / 2.54,
	"mm": 1 / 25.4,
	"pt": 1.0 / 72,
	"px": 1.0 / 96,
	"pc": 1.0 / 6,
}

// UnitScale returns the number of inches in one unit, or false if the
// suffix is unknown. The empty suffix means inches.
func UnitScale(unit string) (float64, bool) {
	if unit == "" {
		return 1, true
	}
	f, ok := units[unit]
	return f, ok
}
