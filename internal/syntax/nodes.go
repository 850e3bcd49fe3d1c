package syntax

// ----------------------------------------------------------------------------
// Interfaces
//
// There are 2 main classes of nodes: Expressions and Statements.
// Clauses and text literals are plain nodes owned by an ObjectStmt.

// Node is the interface implemented by all AST nodes.
type Node interface {
	Pos() Pos // position of first character belonging to the node
	aNode()   // marker method to restrict implementations to this package
}

// Expr is the interface for all expression nodes. Positions are
// expressions too: they evaluate to points.
type Expr interface {
	Node
	aExpr()
}

// Stmt is the interface for all statement nodes.
type Stmt interface {
	Node
	aStmt()
}

// ----------------------------------------------------------------------------
// Base node types

// node is the base struct embedded in all AST nodes.
type node struct {
	pos Pos
}

func (n *node) Pos() Pos { return n.pos }
func (n *node) aNode()   {}

// expr is embedded in all expression nodes.
type expr struct{ node }

func (*expr) aExpr() {}

// stmt is embedded in all statement nodes.
type stmt struct{ node }

func (*stmt) aStmt() {}

// ----------------------------------------------------------------------------
// Diagram and statements

// Diagram is the root of a parsed source buffer.
type Diagram struct {
	node
	Stmts []Stmt
}

// ObjectStmt creates one object: [Label:] kind {clause}.
// Text objects have Kind Text and start with a ClauseText clause.
// Blocks have Kind Block and carry their inner statements in Body.
type ObjectStmt struct {
	stmt
	Label   string // "" when unlabeled
	Kind    ObjKind
	Body    []Stmt    // block statements, nil for other kinds
	Clauses []*Clause // in source order
}

// DirStmt changes the default layout direction: right | down | left | up.
type DirStmt struct {
	stmt
	Dir Direction
}

// AssignStmt represents: Name op Value, with op one of = += -= *= /=.
type AssignStmt struct {
	stmt
	Name  string
	Op    Token // _Assign, _AddAssign, ...
	Value Expr
}

// PlaceStmt names a position: Label: position.
type PlaceStmt struct {
	stmt
	Label string
	At    Expr
}

// AssertStmt represents: assert(X == Y).
type AssertStmt struct {
	stmt
	X, Y Expr
}

// ----------------------------------------------------------------------------
// Clauses

// Clause is one attribute of an object statement.
//
// Argument usage by kind:
//
//	ClauseText                  Text
//	ClauseDir                   Dir, X (optional distance), Percent
//	ClauseWidth ... Diameter    X, Percent
//	ClauseThickness, Color,
//	ClauseFill                  X
//	ClauseDashed, Dotted        X (optional)
//	ClauseFrom, To, At          X (position)
//	ClauseWith                  Edge, X (optional position)
//	ClauseHeading               X (optional distance), Y (angle)
//	ClauseDist                  X
//	ClauseSame                  X (optional object reference)
type Clause struct {
	node
	Kind    ClauseKind
	Dir     Direction
	X, Y    Expr
	Percent bool
	Edge    string
	Text    *TextLit
}

// TextLit is a string with its text attributes.
type TextLit struct {
	node
	Value string
	Flags TextFlags
}

// ----------------------------------------------------------------------------
// Expressions

// NumberLit is a number with an optional unit suffix.
type NumberLit struct {
	expr
	Value float64 // as written, before unit conversion
	Unit  string  // "in", "cm", ... or ""
	Raw   string  // source spelling
}

// PointLit represents (X, Y) or X, Y.
type PointLit struct {
	expr
	X, Y Expr
}

// Name is a variable, colour name or compass word.
type Name struct {
	expr
	Value string
}

// ObjectRef designates an object.
//
//	A            Label "A"
//	last box     Kind Box, Nth 1, FromEnd
//	2nd circle   Kind Circle, Nth 2
//	previous     Nth 1, FromEnd (any kind)
//	this         This
type ObjectRef struct {
	expr
	Label   string
	Kind    ObjKind // NoKind matches any kind
	Nth     int
	FromEnd bool
	This    bool
}

// Selector represents X.Sel: an edge point, a property, a coordinate or a
// label inside a block.
type Selector struct {
	expr
	X   Expr
	Sel string
}

// Operation represents a unary or binary operation.
// For unary operations, Y is nil.
type Operation struct {
	expr
	Op Token
	X  Expr
	Y  Expr
}

// ParenExpr represents (X).
type ParenExpr struct {
	expr
	X Expr
}

// Relative represents: Dist above|below|left of|right of Of.
type Relative struct {
	expr
	Dist Expr
	Dir  Direction
	Of   Expr
}

// Between represents: Frac [of the way] between From and To,
// or Frac <From, To>.
type Between struct {
	expr
	Frac     Expr
	From, To Expr
}

// Heading represents: Dist on heading Angle from From.
type Heading struct {
	expr
	Dist, Angle Expr
	From        Expr
}
