package syntax

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Fprint writes a textual representation of the AST to w.
func Fprint(w io.Writer, node Node) {
	p := &printer{w: w}
	p.print(node)
}

type printer struct {
	w      io.Writer
	indent int
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

// field prints a labelled child node one level deeper.
func (p *printer) field(name string, n Node) {
	p.printf("%s:\n", name)
	p.indent++
	p.print(n)
	p.indent--
}

func (p *printer) print(node Node) {
	if node == nil {
		return
	}

	switch n := node.(type) {
	case *Diagram:
		p.printf("Diagram %s\n", n.pos)
		p.indent++
		for _, s := range n.Stmts {
			p.print(s)
		}
		p.indent--

	case *ObjectStmt:
		if n.Label != "" {
			p.printf("ObjectStmt %s %s %s\n", n.pos, n.Kind, n.Label)
		} else {
			p.printf("ObjectStmt %s %s\n", n.pos, n.Kind)
		}
		p.indent++
		if len(n.Body) > 0 {
			p.printf("Body:\n")
			p.indent++
			for _, s := range n.Body {
				p.print(s)
			}
			p.indent--
		}
		for _, c := range n.Clauses {
			p.print(c)
		}
		p.indent--

	case *DirStmt:
		p.printf("DirStmt %s %s\n", n.pos, n.Dir)

	case *AssignStmt:
		p.printf("AssignStmt %s %s %s\n", n.pos, n.Name, n.Op)
		p.indent++
		p.print(n.Value)
		p.indent--

	case *PlaceStmt:
		p.printf("PlaceStmt %s %s\n", n.pos, n.Label)
		p.indent++
		p.print(n.At)
		p.indent--

	case *AssertStmt:
		p.printf("AssertStmt %s\n", n.pos)
		p.indent++
		p.print(n.X)
		p.print(n.Y)
		p.indent--

	case *Clause:
		p.printf("Clause %s %s%s\n", n.pos, n.Kind, clauseSuffix(n))
		p.indent++
		if n.Text != nil {
			p.print(n.Text)
		}
		if n.X != nil {
			p.print(n.X)
		}
		if n.Y != nil {
			p.print(n.Y)
		}
		p.indent--

	case *TextLit:
		if flags := n.Flags.Names(); len(flags) > 0 {
			p.printf("TextLit %s %s [%s]\n", n.pos, strconv.Quote(n.Value), strings.Join(flags, " "))
		} else {
			p.printf("TextLit %s %s\n", n.pos, strconv.Quote(n.Value))
		}

	case *NumberLit:
		p.printf("NumberLit %s %s\n", n.pos, n.Raw)

	case *PointLit:
		p.printf("PointLit %s\n", n.pos)
		p.indent++
		p.print(n.X)
		p.print(n.Y)
		p.indent--

	case *Name:
		p.printf("Name %s %s\n", n.pos, n.Value)

	case *ObjectRef:
		p.printf("ObjectRef %s %s\n", n.pos, refString(n))

	case *Selector:
		p.printf("Selector %s .%s\n", n.pos, n.Sel)
		p.indent++
		p.print(n.X)
		p.indent--

	case *Operation:
		p.printf("Operation %s %s\n", n.pos, n.Op)
		p.indent++
		p.print(n.X)
		if n.Y != nil {
			p.print(n.Y)
		}
		p.indent--

	case *ParenExpr:
		p.printf("ParenExpr %s\n", n.pos)
		p.indent++
		p.print(n.X)
		p.indent--

	case *Relative:
		p.printf("Relative %s %s\n", n.pos, n.Dir)
		p.indent++
		p.field("Dist", n.Dist)
		p.field("Of", n.Of)
		p.indent--

	case *Between:
		p.printf("Between %s\n", n.pos)
		p.indent++
		p.field("Frac", n.Frac)
		p.field("From", n.From)
		p.field("To", n.To)
		p.indent--

	case *Heading:
		p.printf("Heading %s\n", n.pos)
		p.indent++
		p.field("Dist", n.Dist)
		p.field("Angle", n.Angle)
		p.field("From", n.From)
		p.indent--

	default:
		p.printf("<%T>\n", node)
	}
}

func clauseSuffix(c *Clause) string {
	var b strings.Builder
	if c.Kind == ClauseDir {
		b.WriteString(" " + c.Dir.String())
	}
	if c.Edge != "" {
		b.WriteString(" ." + c.Edge)
	}
	if c.Percent {
		b.WriteString(" %")
	}
	return b.String()
}

// refString renders an object reference the way it was written.
func refString(r *ObjectRef) string {
	switch {
	case r.Label != "":
		return r.Label
	case r.This:
		return "this"
	}
	var parts []string
	switch {
	case r.FromEnd && r.Nth == 1:
		parts = append(parts, "last")
	case r.FromEnd:
		parts = append(parts, ordinal(r.Nth), "last")
	default:
		parts = append(parts, ordinal(r.Nth))
	}
	if r.Kind != NoKind {
		parts = append(parts, r.Kind.String())
	}
	return strings.Join(parts, " ")
}

func ordinal(n int) string {
	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}
	return strconv.Itoa(n) + suffix
}
