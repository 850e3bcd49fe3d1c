package syntax

import (
	"fmt"
	"strconv"
	"strings"
)

// Scanner performs lexical analysis on diagram source.
// It is lazy: each call to Next scans exactly one token.
type Scanner struct {
	source // embedded character reader

	// Current token info
	tok    Token
	lit    string  // source spelling; decoded content for strings
	val    float64 // numeric value of _Number and _Ordinal
	unit   string  // unit suffix of _Number, "" for none
	tokPos Pos

	// nlsemi is set when a newline after the current token ends a statement.
	nlsemi bool

	litBuf strings.Builder
}

// NewScanner creates a new Scanner for the given source.
// The errh function is called for each lexical error; if nil, errors are silently ignored.
func NewScanner(src string, errh func(line, col uint32, msg string)) *Scanner {
	return &Scanner{source: *newSource(src, errh)}
}

// Next advances to the next token.
func (s *Scanner) Next() {
	nlsemi := s.nlsemi
	s.nlsemi = false
	s.val = 0
	s.unit = ""

redo:
	s.skipWhitespace()

	if nlsemi && (s.ch == '\n' || s.ch < 0) {
		s.tokPos = s.pos()
		s.tok = _Semi
		if s.ch == '\n' {
			s.lit = "newline"
			s.nextch()
		} else {
			s.lit = "EOF"
		}
		return
	}

	if s.ch == '\n' {
		s.nextch()
		goto redo
	}

	s.tokPos = s.pos()

	switch {
	case s.ch < 0:
		s.tok = _EOF
		s.lit = ""

	case isLetter(s.ch):
		s.scanIdent()

	case s.ch == '$' || s.ch == '@':
		s.scanVariable()

	case isDigit(s.ch), s.ch == '.' && isDigit(s.peek(1)):
		s.scanNumber()

	case s.ch == '"':
		s.scanString()

	case s.ch == '#':
		s.skipLineComment()
		goto redo

	case isOperatorStart(s.ch):
		if s.scanOperator() {
			goto redo
		}

	default:
		s.error(fmt.Sprintf("unexpected character %q", s.ch))
		s.nextch()
		goto redo
	}

	s.nlsemi = s.shouldInsertSemi()
}

// Token returns the current token type.
func (s *Scanner) Token() Token {
	return s.tok
}

// Literal returns the current token's literal value.
func (s *Scanner) Literal() string {
	return s.lit
}

// Value returns the numeric value of a _Number or _Ordinal token,
// not yet converted by its unit.
func (s *Scanner) Value() float64 {
	return s.val
}

// Unit returns the unit suffix of a _Number token.
func (s *Scanner) Unit() string {
	return s.unit
}

// Pos returns the current token's start position.
func (s *Scanner) Pos() Pos {
	return s.tokPos
}

// skipWhitespace skips blanks and backslash-newline line joins.
func (s *Scanner) skipWhitespace() {
	for {
		switch {
		case isWhitespace(s.ch):
			s.nextch()
		case s.ch == '\\' && s.peek(1) == '\n':
			s.nextch()
			s.nextch()
		case s.ch == '\\' && s.peek(1) == '\r' && s.peek(2) == '\n':
			s.nextch()
			s.nextch()
			s.nextch()
		default:
			return
		}
	}
}

// shouldInsertSemi reports whether a newline after the current token
// ends the statement.
func (s *Scanner) shouldInsertSemi() bool {
	switch s.tok {
	case _Name, _Place, _Number, _String:
		return true
	case _Rparen, _Rbrack, _Percent, _Gtr, _RArrow, _LArrow, _LRArrow:
		return true
	case _Then, _Go, _From, _To, _At, _With, _As, _Of, _The, _Way,
		_Between, _And, _On, _Heading, _Assert:
		return false
	}
	return s.tok.IsKeyword()
}

func (s *Scanner) startLit() {
	s.litBuf.Reset()
	s.litBuf.WriteRune(s.ch)
}

func (s *Scanner) continueLit() {
	s.litBuf.WriteRune(s.ch)
}

func (s *Scanner) stopLit() string {
	return s.litBuf.String()
}

// scanIdent scans a keyword, a label or a plain name.
func (s *Scanner) scanIdent() {
	s.startLit()
	s.nextch()
	for isLetter(s.ch) || isDigit(s.ch) {
		s.continueLit()
		s.nextch()
	}
	s.lit = s.stopLit()
	s.tok = LookupKeyword(s.lit)
}

// scanVariable scans a $name or @name variable. Sigil variables are never
// keywords.
func (s *Scanner) scanVariable() {
	s.startLit()
	s.nextch()
	if !isLetter(s.ch) {
		s.error(fmt.Sprintf("unexpected character %q", s.ch))
	}
	for isLetter(s.ch) || isDigit(s.ch) {
		s.continueLit()
		s.nextch()
	}
	s.lit = s.stopLit()
	s.tok = _Name
}

// scanNumber scans a decimal or hex number with an optional unit suffix,
// or an ordinal such as 2nd.
func (s *Scanner) scanNumber() {
	pos := s.tokPos
	s.litBuf.Reset()
	s.tok = _Number

	if s.ch == '0' && lower(s.peek(1)) == 'x' && isHexDigit(s.peek(2)) {
		s.continueLit()
		s.nextch()
		s.continueLit()
		s.nextch()
		for isHexDigit(s.ch) {
			s.continueLit()
			s.nextch()
		}
		s.lit = s.stopLit()
		v, err := strconv.ParseUint(s.lit[2:], 16, 64)
		if err != nil {
			s.errorAt(pos, "hex number out of range")
		}
		s.val = float64(v)
		return
	}

	integer := true
	s.scanDigits()
	if s.ch == '.' {
		integer = false
		s.continueLit()
		s.nextch()
		s.scanDigits()
	}
	if lower(s.ch) == 'e' && (isDigit(s.peek(1)) ||
		(s.peek(1) == '+' || s.peek(1) == '-') && isDigit(s.peek(2))) {
		integer = false
		s.continueLit()
		s.nextch()
		if s.ch == '+' || s.ch == '-' {
			s.continueLit()
			s.nextch()
		}
		s.scanDigits()
	}
	digits := s.stopLit()
	s.val, _ = strconv.ParseFloat(digits, 64)

	if !isLetter(s.ch) {
		s.lit = digits
		return
	}

	suffixPos := s.pos()
	var suffix strings.Builder
	for isLetter(s.ch) || isDigit(s.ch) {
		suffix.WriteRune(s.ch)
		s.nextch()
	}
	s.lit = digits + suffix.String()

	switch sfx := suffix.String(); {
	case integer && isOrdinalSuffix(sfx):
		s.tok = _Ordinal
	case units[sfx] != 0:
		s.unit = sfx
	default:
		s.errorAt(suffixPos, fmt.Sprintf("invalid numeric unit suffix %q", sfx))
	}
}

func (s *Scanner) scanDigits() {
	for isDigit(s.ch) {
		s.continueLit()
		s.nextch()
	}
}

func isOrdinalSuffix(sfx string) bool {
	switch sfx {
	case "st", "nd", "rd", "th":
		return true
	}
	return false
}

// scanString scans a double-quoted string. Only \" and \\ are decoded;
// any other backslash sequence is kept as written.
func (s *Scanner) scanString() {
	s.nextch() // skip opening "
	s.litBuf.Reset()
	s.tok = _String

	for {
		switch {
		case s.ch == '"':
			s.nextch()
			s.lit = s.stopLit()
			return

		case s.ch == '\\':
			s.nextch()
			switch s.ch {
			case '"', '\\':
				s.continueLit()
				s.nextch()
			default:
				s.litBuf.WriteByte('\\')
			}

		case s.ch == '\n' || s.ch < 0:
			s.errorAt(s.tokPos, "unterminated string")
			s.lit = s.stopLit()
			return

		default:
			s.continueLit()
			s.nextch()
		}
	}
}

// scanOperator scans an operator or delimiter.
// Returns true if a comment was skipped (caller should rescan).
func (s *Scanner) scanOperator() bool {
	ch := s.ch
	s.nextch()

	switch ch {
	case '+':
		s.tok, s.lit = s.assignOr(_Add, _AddAssign, "+")
	case '-':
		if s.ch == '>' {
			s.nextch()
			s.tok, s.lit = _RArrow, "->"
		} else {
			s.tok, s.lit = s.assignOr(_Sub, _SubAssign, "-")
		}
	case '*':
		s.tok, s.lit = s.assignOr(_Mul, _MulAssign, "*")
	case '/':
		switch s.ch {
		case '/':
			s.skipLineComment()
			return true
		case '*':
			s.skipBlockComment()
			return true
		}
		s.tok, s.lit = s.assignOr(_Div, _DivAssign, "/")
	case '%':
		s.tok, s.lit = _Percent, "%"
	case '<':
		if s.ch == '-' {
			s.nextch()
			if s.ch == '>' {
				s.nextch()
				s.tok, s.lit = _LRArrow, "<->"
			} else {
				s.tok, s.lit = _LArrow, "<-"
			}
		} else {
			s.tok, s.lit = _Lss, "<"
		}
	case '>':
		s.tok, s.lit = _Gtr, ">"
	case '=':
		if s.ch == '=' {
			s.nextch()
			s.tok, s.lit = _Eql, "=="
		} else {
			s.tok, s.lit = _Assign, "="
		}
	case ':':
		s.tok, s.lit = _Colon, ":"
	case '(':
		s.tok, s.lit = _Lparen, "("
	case ')':
		s.tok, s.lit = _Rparen, ")"
	case '[':
		s.tok, s.lit = _Lbrack, "["
	case ']':
		s.tok, s.lit = _Rbrack, "]"
	case ',':
		s.tok, s.lit = _Comma, ","
	case ';':
		s.tok, s.lit = _Semi, ";"
	case '.':
		s.tok, s.lit = _Dot, "."
	}

	return false
}

// assignOr returns the compound assignment token when the operator is
// followed by '='.
func (s *Scanner) assignOr(op, assign Token, lit string) (Token, string) {
	if s.ch == '=' {
		s.nextch()
		return assign, lit + "="
	}
	return op, lit
}

// skipLineComment skips to the end of the line. The newline itself is
// left for Next so that it can still end a statement.
func (s *Scanner) skipLineComment() {
	for s.ch != '\n' && s.ch >= 0 {
		s.nextch()
	}
}

// skipBlockComment skips a /* */ comment; the opening '/' is consumed
// and s.ch is '*'.
func (s *Scanner) skipBlockComment() {
	pos := s.pos()
	s.nextch()
	for s.ch >= 0 {
		if s.ch == '*' && s.peek(1) == '/' {
			s.nextch()
			s.nextch()
			return
		}
		s.nextch()
	}
	s.errorAt(NewPos(pos.line, pos.col-1), "comment not terminated")
}

func (s *Scanner) errorAt(pos Pos, msg string) {
	if s.errh != nil {
		s.errh(pos.line, pos.col, msg)
	}
}
