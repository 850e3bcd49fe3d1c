package syntax

import (
	"fmt"
	"strconv"
)

// LexError represents a lexical error.
type LexError struct {
	Pos Pos
	Msg string
}

func (e *LexError) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// ParseError represents a syntax error.
type ParseError struct {
	Pos Pos
	Msg string
}

func (e *ParseError) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// token is one scanned token as seen by the parser.
type token struct {
	tok  Token
	lit  string
	val  float64
	unit string
	pos  Pos
}

// Parser performs syntax analysis on diagram source.
// Parsing stops at the first lexical or syntax error.
type Parser struct {
	scanner *Scanner

	// The current token and a one-token lookahead, valid when peeked.
	token
	ahead  token
	peeked bool

	errh  func(err error)
	first error // first error encountered
	abort bool  // set once an error has been reported
}

// NewParser creates a new Parser for the given source.
// The errh function, if not nil, is called with the first error.
func NewParser(src string, errh func(err error)) *Parser {
	p := &Parser{errh: errh}
	p.scanner = NewScanner(src, func(line, col uint32, msg string) {
		p.report(&LexError{Pos: NewPos(line, col), Msg: msg})
	})
	p.next()
	return p
}

// Parse is a convenience wrapper: it parses src and returns the diagram
// or the first error.
func Parse(src string) (*Diagram, error) {
	p := NewParser(src, nil)
	d := p.Parse()
	if err := p.FirstError(); err != nil {
		return nil, err
	}
	return d, nil
}

// ----------------------------------------------------------------------------
// Token navigation

func (p *Parser) scan() token {
	s := p.scanner
	s.Next()
	return token{tok: s.Token(), lit: s.Literal(), val: s.Value(), unit: s.Unit(), pos: s.Pos()}
}

// next advances to the next token. After an error every token is EOF.
func (p *Parser) next() {
	if p.abort {
		p.tok = _EOF
		return
	}
	if p.peeked {
		p.token = p.ahead
		p.peeked = false
	} else {
		p.token = p.scan()
	}
	if p.abort {
		p.tok = _EOF
	}
}

// peek returns the token after the current one without consuming it.
func (p *Parser) peek() Token {
	if !p.peeked {
		p.ahead = p.scan()
		p.peeked = true
	}
	if p.abort {
		return _EOF
	}
	return p.ahead.tok
}

// got reports whether the current token is tok.
// If so, it consumes the token and returns true.
func (p *Parser) got(tok Token) bool {
	if p.tok == tok {
		p.next()
		return true
	}
	return false
}

// want consumes the current token if it matches tok.
// Otherwise, reports an error.
func (p *Parser) want(tok Token) {
	if !p.got(tok) {
		p.syntaxError("expected " + tok.String() + ", found " + p.tokDesc())
	}
}

// ----------------------------------------------------------------------------
// Error handling

func (p *Parser) syntaxError(msg string) {
	p.syntaxErrorAt(p.pos, msg)
}

func (p *Parser) syntaxErrorAt(pos Pos, msg string) {
	p.report(&ParseError{Pos: pos, Msg: msg})
}

func (p *Parser) report(err error) {
	if p.abort {
		return
	}
	p.first = err
	p.abort = true
	p.tok = _EOF
	if p.errh != nil {
		p.errh(err)
	}
}

// tokDesc describes the current token for error messages.
func (p *Parser) tokDesc() string {
	switch p.tok {
	case _EOF:
		return "EOF"
	case _Semi:
		if p.lit == "newline" || p.lit == "EOF" {
			return p.lit
		}
		return "';'"
	case _Name, _Place:
		return "name " + p.lit
	case _Number, _Ordinal:
		return "number " + p.lit
	case _String:
		return "string " + strconv.Quote(p.lit)
	}
	if p.tok.IsKeyword() {
		return "keyword " + p.lit
	}
	return "'" + p.tok.String() + "'"
}

// FirstError returns the first error encountered, or nil if none.
// The error is a *LexError or a *ParseError.
func (p *Parser) FirstError() error {
	return p.first
}

// ----------------------------------------------------------------------------
// Statements

// Parse parses the complete source and returns the AST.
func (p *Parser) Parse() *Diagram {
	d := &Diagram{}
	d.pos = p.pos
	d.Stmts = p.stmtList(_EOF)
	if p.tok != _EOF {
		p.syntaxError("unexpected " + p.tokDesc())
	}
	return d
}

// stmtList parses statements up to (not including) end.
func (p *Parser) stmtList(end Token) []Stmt {
	var list []Stmt
	for !p.abort && p.tok != end && p.tok != _EOF {
		if p.got(_Semi) {
			continue
		}
		if s := p.stmt(); s != nil {
			list = append(list, s)
		}
		if p.tok != end && p.tok != _EOF && !p.got(_Semi) {
			p.syntaxError("unexpected " + p.tokDesc() + " at end of statement")
		}
	}
	return list
}

func (p *Parser) stmt() Stmt {
	switch p.tok {
	case _Right, _Down, _Left, _Up:
		s := &DirStmt{Dir: dirOf(p.tok)}
		s.pos = p.pos
		p.next()
		return s

	case _Assert:
		return p.assertStmt()

	case _Name, _Color, _Fill, _Thickness:
		if p.peek().IsAssignOp() {
			return p.assignStmt()
		}
		if p.tok == _Name {
			p.syntaxError(fmt.Sprintf("unknown object type %q", p.lit))
			return nil
		}

	case _Place:
		if p.peek() == _Colon {
			return p.labeledStmt()
		}
		p.syntaxError(fmt.Sprintf("expected ':' after label %s", p.lit))
		return nil
	}
	return p.object("", p.pos)
}

// assignStmt parses: name op expr
func (p *Parser) assignStmt() Stmt {
	s := &AssignStmt{Name: p.lit}
	s.pos = p.pos
	if p.tok != _Name {
		s.Name = p.tok.String() // colour spelling and abbreviations
	}
	p.next()
	s.Op = p.tok
	p.next()
	s.Value = p.operand()
	return s
}

// assertStmt parses: assert ( position == position )
func (p *Parser) assertStmt() Stmt {
	s := &AssertStmt{}
	s.pos = p.pos
	p.next()
	p.want(_Lparen)
	s.X = p.position(false)
	p.want(_Eql)
	s.Y = p.position(false)
	p.want(_Rparen)
	return s
}

// labeledStmt parses: PLACE ':' (object | position)
func (p *Parser) labeledStmt() Stmt {
	pos, label := p.pos, p.lit
	p.next() // label
	p.next() // ':'
	if p.tok.IsKind() || p.tok == _String || p.tok == _Lbrack {
		return p.object(label, pos)
	}
	s := &PlaceStmt{Label: label}
	s.pos = pos
	s.At = p.position(true)
	return s
}

// object parses: (kind | STRING | '[' stmtlist ']') {clause}
func (p *Parser) object(label string, pos Pos) Stmt {
	s := &ObjectStmt{Label: label}
	s.pos = pos

	switch {
	case p.tok.IsKind():
		s.Kind = kindOf(p.tok)
		p.next()
	case p.tok == _String:
		s.Kind = Text
	case p.tok == _Lbrack:
		s.Kind = Block
		p.next()
		s.Body = p.stmtList(_Rbrack)
		p.want(_Rbrack)
	default:
		p.syntaxError("expected object, found " + p.tokDesc())
		return nil
	}

	for !p.abort && !p.atStmtEnd() {
		c := p.clause(s.Kind)
		if c == nil {
			break
		}
		s.Clauses = append(s.Clauses, c)
	}
	return s
}

func (p *Parser) atStmtEnd() bool {
	return p.tok == _Semi || p.tok == _EOF || p.tok == _Rbrack
}

// ----------------------------------------------------------------------------
// Clauses

func (p *Parser) clause(kind ObjKind) *Clause {
	c := &Clause{}
	c.pos = p.pos

	if ck, ok := simpleClauses[p.tok]; ok {
		c.Kind = ck
		p.next()
		return c
	}

	if p.got(_Go) {
		if !p.tok.IsDirection() && p.tok != _Heading && !canStartExpr(p.tok) {
			p.syntaxError("expected direction or distance after go, found " + p.tokDesc())
			return nil
		}
	}

	switch p.tok {
	case _String:
		c.Kind = ClauseText
		c.Text = p.text()

	case _Right, _Down, _Left, _Up:
		if !kind.IsLine() {
			p.syntaxError(fmt.Sprintf("%s: use with line-oriented objects only", p.lit))
			return nil
		}
		c.Kind = ClauseDir
		c.Dir = dirOf(p.tok)
		p.next()
		if canStartExpr(p.tok) {
			c.X = p.expr()
			c.Percent = p.got(_Percent)
		}

	case _Width, _Height, _Radius, _Diameter:
		c.Kind = map[Token]ClauseKind{
			_Width:    ClauseWidth,
			_Height:   ClauseHeight,
			_Radius:   ClauseRadius,
			_Diameter: ClauseDiameter,
		}[p.tok]
		p.next()
		c.X = p.operand()
		c.Percent = p.got(_Percent)

	case _Thickness, _Color, _Fill:
		c.Kind = map[Token]ClauseKind{
			_Thickness: ClauseThickness,
			_Color:     ClauseColor,
			_Fill:      ClauseFill,
		}[p.tok]
		p.next()
		c.X = p.operand()

	case _Dashed, _Dotted:
		c.Kind = ClauseDashed
		if p.tok == _Dotted {
			c.Kind = ClauseDotted
		}
		p.next()
		if canStartExpr(p.tok) {
			c.X = p.expr()
		}

	case _From, _To, _At:
		c.Kind = map[Token]ClauseKind{
			_From: ClauseFrom,
			_To:   ClauseTo,
			_At:   ClauseAt,
		}[p.tok]
		p.next()
		c.X = p.position(true)

	case _With:
		c.Kind = ClauseWith
		p.next()
		p.want(_Dot)
		c.Edge = p.selName()
		if p.got(_At) {
			c.X = p.position(true)
		}

	case _Same:
		c.Kind = ClauseSame
		p.next()
		if p.got(_As) {
			c.X = p.objectRef()
		}

	case _Heading:
		if !kind.IsLine() {
			p.syntaxError("heading: use with line-oriented objects only")
			return nil
		}
		c.Kind = ClauseHeading
		p.next()
		c.Y = p.operand()

	default:
		if !canStartExpr(p.tok) || !kind.IsLine() {
			p.syntaxError("unexpected " + p.tokDesc())
			return nil
		}
		c.X = p.expr()
		c.Kind = ClauseDist
		if p.got(_Heading) {
			c.Kind = ClauseHeading
			c.Y = p.operand()
		}
	}

	if p.abort {
		return nil
	}
	return c
}

// text parses: STRING {textattr}
func (p *Parser) text() *TextLit {
	t := &TextLit{Value: p.lit}
	t.pos = p.pos
	p.next()
	for p.tok.IsTextAttr() {
		t.Flags |= textFlagOf(p.tok)
		p.next()
	}
	return t
}

// selName parses the name after a '.': an edge, a property or a label.
// Keywords such as right or center are valid names here.
func (p *Parser) selName() string {
	if p.tok == _Name || p.tok == _Place || p.tok.IsKeyword() {
		s := p.lit
		p.next()
		return s
	}
	p.syntaxError("expected name after '.', found " + p.tokDesc())
	return ""
}

// ----------------------------------------------------------------------------
// Positions and expressions

// canStartExpr reports whether tok can begin an expression.
func canStartExpr(tok Token) bool {
	switch tok {
	case _Number, _Name, _Place, _Ordinal, _Lparen, _Add, _Sub,
		_Last, _Previous, _First, _This:
		return true
	}
	return false
}

// operand parses a required expression.
func (p *Parser) operand() Expr {
	if !canStartExpr(p.tok) {
		p.syntaxError("expected expression, found " + p.tokDesc())
		return badExpr(p.pos)
	}
	return p.expr()
}

func badExpr(pos Pos) Expr {
	n := &Name{Value: "_"}
	n.pos = pos
	return n
}

// position parses a point-valued phrase. The bare "x, y" form is only
// accepted when allowComma is set, so that positions can appear inside
// "<a, b>" and parenthesized pairs.
func (p *Parser) position(allowComma bool) Expr {
	x := p.expr()
	pos := x.Pos()

	switch p.tok {
	case _Comma:
		if !allowComma {
			return x
		}
		p.next()
		pt := &PointLit{X: x, Y: p.expr()}
		pt.pos = pos
		return pt

	case _Above, _Below:
		if !canStartExpr(p.peek()) {
			return x
		}
		r := &Relative{Dist: x, Dir: Up}
		if p.tok == _Below {
			r.Dir = Down
		}
		r.pos = pos
		p.next()
		r.Of = p.position(allowComma)
		return r

	case _Left, _Right:
		if p.peek() != _Of {
			return x
		}
		r := &Relative{Dist: x, Dir: dirOf(p.tok)}
		r.pos = pos
		p.next() // direction
		p.next() // of
		r.Of = p.position(allowComma)
		return r

	case _On:
		h := &Heading{Dist: x}
		h.pos = pos
		p.next()
		p.want(_Heading)
		h.Angle = p.operand()
		p.want(_From)
		h.From = p.position(allowComma)
		return h

	case _Of:
		p.next()
		p.want(_The)
		p.want(_Way)
		p.want(_Between)
		return p.between(x, pos)

	case _Between:
		p.next()
		return p.between(x, pos)

	case _Lss:
		b := &Between{Frac: x}
		b.pos = pos
		p.next()
		b.From = p.position(false)
		p.want(_Comma)
		b.To = p.position(false)
		p.want(_Gtr)
		return b
	}
	return x
}

func (p *Parser) between(frac Expr, pos Pos) Expr {
	b := &Between{Frac: frac}
	b.pos = pos
	b.From = p.position(true)
	p.want(_And)
	b.To = p.position(true)
	return b
}

// expr parses an arithmetic expression.
func (p *Parser) expr() Expr {
	return p.binaryExpr(0)
}

// binaryExpr parses a binary expression with minimum precedence prec.
func (p *Parser) binaryExpr(prec int) Expr {
	x := p.unaryExpr()
	for {
		oprec := p.tok.Precedence()
		if oprec <= prec {
			return x
		}
		op := &Operation{Op: p.tok, X: x}
		op.pos = x.Pos()
		p.next()
		op.Y = p.binaryExpr(oprec)
		x = op
	}
}

func (p *Parser) unaryExpr() Expr {
	switch p.tok {
	case _Sub, _Add:
		op := &Operation{Op: p.tok}
		op.pos = p.pos
		p.next()
		op.X = p.unaryExpr()
		return op
	}
	return p.postfixExpr()
}

// postfixExpr parses: primary {'.' name}
func (p *Parser) postfixExpr() Expr {
	x := p.primaryExpr()
	for !p.abort && p.tok == _Dot {
		p.next()
		sel := &Selector{X: x, Sel: p.selName()}
		sel.pos = x.Pos()
		x = sel
	}
	return x
}

func (p *Parser) primaryExpr() Expr {
	switch p.tok {
	case _Number:
		n := &NumberLit{Value: p.val, Unit: p.unit, Raw: p.lit}
		n.pos = p.pos
		p.next()
		return n

	case _Name:
		n := &Name{Value: p.lit}
		n.pos = p.pos
		p.next()
		return n

	case _Lparen:
		pos := p.pos
		p.next()
		x := p.position(false)
		if p.got(_Comma) {
			pt := &PointLit{X: x, Y: p.position(false)}
			pt.pos = pos
			p.want(_Rparen)
			return pt
		}
		p.want(_Rparen)
		px := &ParenExpr{X: x}
		px.pos = pos
		return px

	case _Place, _This, _Previous, _Last, _First, _Ordinal:
		return p.objectRef()
	}

	p.syntaxError("expected expression, found " + p.tokDesc())
	return badExpr(p.pos)
}

// objectRef parses: PLACE | this | previous | last [kind]
// | ORDINAL [last] kind | first kind
func (p *Parser) objectRef() Expr {
	r := &ObjectRef{}
	r.pos = p.pos

	switch p.tok {
	case _Place:
		r.Label = p.lit
		p.next()
	case _This:
		r.This = true
		p.next()
	case _Previous:
		r.Nth, r.FromEnd = 1, true
		p.next()
	case _Last:
		r.Nth, r.FromEnd = 1, true
		p.next()
		r.Kind = p.optKind()
	case _First:
		r.Nth = 1
		p.next()
		r.Kind = p.refKind()
	case _Ordinal:
		r.Nth = int(p.val)
		if r.Nth < 1 {
			p.syntaxError("ordinal must be at least 1st")
			return r
		}
		p.next()
		r.FromEnd = p.got(_Last)
		r.Kind = p.refKind()
	default:
		p.syntaxError("expected object reference, found " + p.tokDesc())
	}
	return r
}

// optKind parses an optional object kind; "[]" names blocks.
func (p *Parser) optKind() ObjKind {
	switch {
	case p.tok.IsKind():
		k := kindOf(p.tok)
		p.next()
		return k
	case p.tok == _Lbrack && p.peek() == _Rbrack:
		p.next()
		p.next()
		return Block
	}
	return NoKind
}

func (p *Parser) refKind() ObjKind {
	k := p.optKind()
	if k == NoKind {
		p.syntaxError("expected object type, found " + p.tokDesc())
	}
	return k
}
