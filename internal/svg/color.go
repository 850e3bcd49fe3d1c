package svg

import (
	"fmt"

	"github.com/you-not-fish/pikgo/internal/layout"
)

// invertLightness maps a colour to the one with the same hue and
// saturation and opposite lightness, so that black becomes white.
func invertLightness(c layout.Color) layout.Color {
	if c.IsNone() {
		return c
	}
	r, g, b := c.RGB()
	hi := max(r, g, b)
	lo := min(r, g, b)
	shift := 255 - int(hi) - int(lo)
	return layout.RGB(
		uint8(int(r)+shift),
		uint8(int(g)+shift),
		uint8(int(b)+shift))
}

// color returns the CSS spelling of c, adjusted for dark mode.
func (r *renderer) color(c layout.Color) string {
	if c.IsNone() {
		return "none"
	}
	if r.opts.DarkMode {
		c = invertLightness(c)
	}
	cr, cg, cb := c.RGB()
	return fmt.Sprintf("rgb(%d,%d,%d)", cr, cg, cb)
}
