package layout

import (
	"strings"

	"golang.org/x/image/colornames"

	"github.com/you-not-fish/pikgo/internal/geom"
)

// defaultVars holds the predefined variables, lengths in inches.
// It is never written after package initialization: each Context
// starts from a scaled copy.
var defaultVars = map[string]float64{
	"arcrad":     0.25,
	"arrowht":    0.08,
	"arrowwid":   0.06,
	"boxht":      0.5,
	"boxrad":     0,
	"boxwid":     0.75,
	"charht":     0.14,
	"charwid":    0.08,
	"circlerad":  0.25,
	"color":      0,
	"cylht":      0.5,
	"cylrad":     0.075,
	"cylwid":     0.75,
	"dashwid":    0.05,
	"diamondht":  0.75,
	"diamondwid": 1.0,
	"dotrad":     0.015,
	"ellipseht":  0.5,
	"ellipsewid": 0.75,
	"fileht":     0.75,
	"filerad":    0.15,
	"filewid":    0.5,
	"fill":       -1,
	"gap":        0,
	"grid":       0.5,
	"lineht":     0.5,
	"linewid":    0.5,
	"margin":     0,
	"movewid":    0.5,
	"ovalht":     0.5,
	"ovalwid":    1.0,
	"textht":     0.5,
	"textwid":    0.75,
	"thickness":  0.015,
}

// unscaledVars lists the variables that are not lengths.
var unscaledVars = map[string]bool{
	"color": true,
	"fill":  true,
}

// newVars returns a fresh variable table with every length multiplied
// by scale.
func newVars(scale float64) map[string]float64 {
	vars := make(map[string]float64, len(defaultVars))
	for name, v := range defaultVars {
		if !unscaledVars[name] {
			v *= scale
		}
		vars[name] = v
	}
	return vars
}

// compass maps the bare compass words to unit vectors. Diagonals are
// normalized.
var compass = map[string]geom.Point{
	"north":     geom.Pt(0, 1),
	"south":     geom.Pt(0, -1),
	"east":      geom.Pt(1, 0),
	"west":      geom.Pt(-1, 0),
	"northeast": geom.Pt(1, 1).Unit(),
	"northwest": geom.Pt(-1, 1).Unit(),
	"southeast": geom.Pt(1, -1).Unit(),
	"southwest": geom.Pt(-1, -1).Unit(),
}

// lookupColor resolves an SVG colour name, ignoring case.
// "none" and "off" name the absence of colour.
func lookupColor(name string) (Color, bool) {
	name = strings.ToLower(name)
	switch name {
	case "none", "off":
		return NoColor, true
	}
	c, ok := colornames.Map[name]
	if !ok {
		return 0, false
	}
	return RGB(c.R, c.G, c.B), true
}
