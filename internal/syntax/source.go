package syntax

import "unicode/utf8"

// source is a character reader with position tracking over an in-memory
// UTF-8 buffer. The buffer is never modified.
type source struct {
	buf string

	line uint32 // line of ch (1-based)
	col  uint32 // column of ch (1-based, counted in runes)

	ch   rune // current character, -1 for EOF
	offs int  // byte offset just past ch

	errh func(line, col uint32, msg string)
}

// newSource creates a source positioned on the first character of src.
// A leading byte order mark is skipped. The errh function is called for
// each error; if nil, errors are silently ignored.
func newSource(src string, errh func(line, col uint32, msg string)) *source {
	s := &source{
		buf:  src,
		line: 1,
		ch:   -1, // before first char: the first nextch only moves col to 1
		errh: errh,
	}
	if len(s.buf) >= 3 && s.buf[:3] == "\ufeff" {
		s.offs = 3
	}
	s.nextch()
	return s
}

// nextch reads the next character and updates the position.
// (line, col) always refers to s.ch after nextch returns.
func (s *source) nextch() {
	if s.ch == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}

	if s.offs >= len(s.buf) {
		s.ch = -1
		return
	}

	r, width := utf8.DecodeRuneInString(s.buf[s.offs:])
	if r == utf8.RuneError && width == 1 {
		s.error("invalid UTF-8 encoding")
	}
	s.ch = r
	s.offs += width
}

// peek returns the n-th character after s.ch without consuming anything.
// peek(1) is the character that the next nextch will load.
func (s *source) peek(n int) rune {
	offs := s.offs
	var r rune = -1
	for ; n > 0; n-- {
		if offs >= len(s.buf) {
			return -1
		}
		var width int
		r, width = utf8.DecodeRuneInString(s.buf[offs:])
		offs += width
	}
	return r
}

// pos returns the position of the current character.
func (s *source) pos() Pos {
	return NewPos(s.line, s.col)
}

// error reports a lexical error at the current position.
func (s *source) error(msg string) {
	if s.errh != nil {
		s.errh(s.line, s.col, msg)
	}
}

func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || r == '_'
}

func isUpper(r rune) bool {
	return 'A' <= r && r <= 'Z'
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isHexDigit(r rune) bool {
	return isDigit(r) || 'a' <= lower(r) && lower(r) <= 'f'
}

// lower returns the lowercase version of r if r is an ASCII letter.
// ('a' - 'A') is 0x20; OR-ing it in only changes upper-case ASCII letters.
func lower(r rune) rune {
	return ('a' - 'A') | r
}

// isWhitespace reports whether r is blank. Newline is not included
// because it may end a statement.
func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\f' || r == '\v'
}

func isOperatorStart(r rune) bool {
	switch r {
	case '+', '-', '*', '/', '%', '<', '>', '=', ':',
		'(', ')', '[', ']', ',', ';', '.':
		return true
	}
	return false
}
