package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/you-not-fish/pikgo/internal/syntax"
)

// emitTokens writes the token stream of src as a table. It reports whether
// the input scanned without errors.
func emitTokens(w io.Writer, filename, src string) bool {
	var errs []string
	errh := func(line, col uint32, msg string) {
		errs = append(errs, fmt.Sprintf("%s:%d:%d: %s", filename, line, col, msg))
	}
	s := syntax.NewScanner(src, errh)

	fmt.Fprintf(w, "%-12s %-12s %s\n", "POSITION", "TOKEN", "LITERAL")
	fmt.Fprintf(w, "%-12s %-12s %s\n", strings.Repeat("-", 12), strings.Repeat("-", 12), strings.Repeat("-", 20))
	for {
		s.Next()
		tok := s.Token()
		fmt.Fprintf(w, "%-12s %-12s %s\n", s.Pos(), tok, formatLiteral(s.Literal()))
		if tok.IsEOF() {
			break
		}
	}

	if len(errs) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Errors:")
		for _, e := range errs {
			fmt.Fprintf(w, "  %s\n", e)
		}
		return false
	}
	return true
}

// emitAST parses src and writes its syntax tree as text or, if format is
// "json", as JSON.
func emitAST(w io.Writer, src, format string) error {
	d, err := syntax.Parse(src)
	if err != nil {
		return err
	}
	if format == "json" {
		return syntax.FprintJSON(w, d)
	}
	syntax.Fprint(w, d)
	return nil
}

// formatLiteral quotes lit with special characters escaped.
func formatLiteral(lit string) string {
	if lit == "" {
		return `""`
	}
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range lit {
		switch r {
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
