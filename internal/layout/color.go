package layout

import "fmt"

// Color is a 24-bit RGB colour packed as 0xRRGGBB.
// Negative values mean no colour at all.
type Color int32

// NoColor is the value of "none" and "off", and the default fill.
const NoColor Color = -1

// RGB packs three components into a Color.
func RGB(r, g, b uint8) Color {
	return Color(r)<<16 | Color(g)<<8 | Color(b)
}

// IsNone reports whether c means "do not paint".
func (c Color) IsNone() bool {
	return c < 0
}

// RGB returns the components of c. It must not be called on NoColor.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

func (c Color) String() string {
	if c.IsNone() {
		return "none"
	}
	r, g, b := c.RGB()
	return fmt.Sprintf("rgb(%d,%d,%d)", r, g, b)
}

// colorOf converts a number used as a colour. Values outside the 24-bit
// range, including the -1 stored for "none", mean no colour.
func colorOf(x float64) Color {
	if x < 0 || x > 0xffffff {
		return NoColor
	}
	return Color(int32(x))
}
