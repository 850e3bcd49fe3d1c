package pikgo

import (
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/you-not-fish/pikgo/internal/layout"
	"github.com/you-not-fish/pikgo/internal/syntax"
)

// ErrorKind classifies a rendering failure by the stage that detected it.
type ErrorKind int

const (
	LexError    ErrorKind = iota // malformed token
	ParseError                   // unexpected token
	EvalError                    // undefined name, bad operand, division by zero
	LayoutError                  // unplaced reference, conflicting placement, failed assertion
)

var kindNames = [...]string{
	LexError:    "lex error",
	ParseError:  "parse error",
	EvalError:   "eval error",
	LayoutError: "layout error",
}

func (k ErrorKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// An Error is the first failure met while rendering a diagram.
// Line and Col are 1-based and refer to the input text.
type Error struct {
	Kind ErrorKind
	Msg  string
	Line int
	Col  int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s: %s", e.Line, e.Col, e.Kind, e.Msg)
}

// htmlContext is the number of source lines shown before the failing one.
const htmlContext = 4

// HTML formats e for display in a web page: the source lines leading up to
// the failure, a caret under the failing column and the message, inside
// <div><pre>. src must be the text that was rendered.
func (e *Error) HTML(src string) string {
	var b strings.Builder
	b.WriteString("<div><pre>\n")
	lines := strings.Split(src, "\n")
	last := min(e.Line, len(lines))
	for n := max(1, last-htmlContext); n <= last; n++ {
		fmt.Fprintf(&b, "%4d:  %s\n", n, html.EscapeString(lines[n-1]))
	}
	if e.Line >= 1 && e.Line <= len(lines) {
		fmt.Fprintf(&b, "%s^\n", strings.Repeat(" ", 7+max(e.Col-1, 0)))
	}
	fmt.Fprintf(&b, "ERROR: %s: %s\n", e.Kind, html.EscapeString(e.Msg))
	b.WriteString("</pre></div>\n")
	return b.String()
}

// newError converts an error of one of the internal stages into an *Error.
// Errors of any other type are returned unchanged.
func newError(err error) error {
	var (
		lexErr    *syntax.LexError
		parseErr  *syntax.ParseError
		evalErr   *layout.EvalError
		layoutErr *layout.LayoutError
	)
	switch {
	case errors.As(err, &lexErr):
		return posError(LexError, lexErr.Pos, lexErr.Msg)
	case errors.As(err, &parseErr):
		return posError(ParseError, parseErr.Pos, parseErr.Msg)
	case errors.As(err, &evalErr):
		return posError(EvalError, evalErr.Pos, evalErr.Msg)
	case errors.As(err, &layoutErr):
		return posError(LayoutError, layoutErr.Pos, layoutErr.Msg)
	}
	return err
}

func posError(kind ErrorKind, pos syntax.Pos, msg string) *Error {
	return &Error{Kind: kind, Msg: msg, Line: int(pos.Line()), Col: int(pos.Col())}
}
