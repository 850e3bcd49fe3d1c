package svg

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/you-not-fish/pikgo/internal/layout"
	"github.com/you-not-fish/pikgo/internal/syntax"
)

// text writes one string. The canvas has no float-positioned text, so the
// element is written directly to its writer.
func (r *renderer) text(t *layout.Text) {
	at := r.tr.apply(t.At)
	x, y := num(at.X), num(at.Y)

	var b strings.Builder
	fmt.Fprintf(&b, `<text x="%s" y="%s" text-anchor="%s" fill="%s"`, x, y, t.Anchor(), r.color(t.Color))
	if t.Flags&syntax.Bold != 0 {
		b.WriteString(` font-weight="bold"`)
	}
	if t.Flags&syntax.Italic != 0 {
		b.WriteString(` font-style="italic"`)
	}
	if t.Flags&syntax.Mono != 0 {
		b.WriteString(` font-family="monospace"`)
	}
	if t.Size != 1 {
		fmt.Fprintf(&b, ` font-size="%s%%"`, num(t.Size*100))
	}
	if t.Angle != 0 {
		fmt.Fprintf(&b, ` transform="rotate(%s %s,%s)"`, num(-t.Angle), x, y)
	}
	fmt.Fprintf(&b, ` dominant-baseline="central">%s</text>`+"\n", escape(t.Value))
	fmt.Fprint(r.canvas.Writer, b.String())
}

// escape returns s with XML special characters replaced.
func escape(s string) string {
	var b bytes.Buffer
	xml.EscapeText(&b, []byte(s))
	return b.String()
}
