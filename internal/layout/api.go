// Package layout evaluates a parsed diagram and fixes the position and size
// of every object.
package layout

import (
	"io"
	"log/slog"

	"github.com/you-not-fish/pikgo/internal/geom"
	"github.com/you-not-fish/pikgo/internal/syntax"
)

// Config specifies the configuration for a layout pass.
type Config struct {
	// Scale multiplies every default length. Zero means 1.
	Scale float64

	// Logger receives a debug record for each resolved object.
	// If nil, nothing is logged.
	Logger *slog.Logger
}

// A Document is a fully resolved diagram.
type Document struct {
	Objects []*Object // top-level objects in source order
	BBox    geom.Rect // extents of all objects
	Margin  float64   // final value of the margin variable
	Scope   *Scope    // top-level labels
}

// Resolve lays out d. It returns the first error encountered, which is
// an *EvalError or a *LayoutError.
func Resolve(d *syntax.Diagram, conf *Config) (*Document, error) {
	if conf == nil {
		conf = &Config{}
	}
	c := newContext(conf)
	c.collectLabels(d)
	if err := c.stmts(d.Stmts); err != nil {
		return nil, err
	}
	c.log.Debug("scopes", "tree", c.scope.Tree())
	return &Document{
		Objects: c.objects,
		BBox:    c.bbox,
		Margin:  c.vars["margin"],
		Scope:   c.scope,
	}, nil
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))
