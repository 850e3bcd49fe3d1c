// Package pikgo renders diagrams written in a small line-oriented picture
// language as SVG.
//
// A diagram is a sequence of statements. Each one places an object (box,
// circle, arrow, text and the rest), changes the layout direction, assigns a
// variable or asserts that two expressions are equal:
//
//	A: box "request"
//	arrow
//	circle "server" fit
//	arrow from A.s down 0.5
//
// Objects flow in the current direction unless told otherwise. Positions are
// in inches with y growing upward; the output has 144 user units per inch.
//
// Render is safe for concurrent use. Every call works on its own state and
// identical inputs produce identical bytes.
package pikgo

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/you-not-fish/pikgo/internal/layout"
	"github.com/you-not-fish/pikgo/internal/svg"
	"github.com/you-not-fish/pikgo/internal/syntax"
)

// Options controls a single call to Render. The zero value renders at
// natural size in light mode.
type Options struct {
	// DarkMode inverts the lightness of every colour so the diagram reads
	// on a dark background.
	DarkMode bool

	// Scale multiplies every default length. Zero means 1.
	Scale float64

	// FixedWidth and FixedHeight override the width and height attributes
	// of the <svg> element. Zero keeps the natural size; the viewBox is
	// never changed.
	FixedWidth  float64
	FixedHeight float64

	// Class, if not empty, is emitted as the class attribute of <svg>.
	Class string

	// Logger receives debug records from the layout pass. Nil disables
	// logging.
	Logger *slog.Logger
}

// A Result is a rendered diagram.
type Result struct {
	SVG    string
	Width  float64 // width attribute of the <svg> element
	Height float64 // height attribute of the <svg> element
}

// Render parses src, lays it out and serializes it. On failure it returns
// an *Error describing the first problem and no partial output.
func Render(src string, opts *Options) (*Result, error) {
	if opts == nil {
		opts = &Options{}
	}
	d, err := syntax.Parse(src)
	if err != nil {
		return nil, newError(err)
	}
	doc, err := layout.Resolve(d, &layout.Config{Scale: opts.Scale, Logger: opts.Logger})
	if err != nil {
		return nil, newError(err)
	}

	sopts := &svg.Options{
		DarkMode:    opts.DarkMode,
		FixedWidth:  opts.FixedWidth,
		FixedHeight: opts.FixedHeight,
		Class:       opts.Class,
	}
	var buf bytes.Buffer
	if err := svg.Render(&buf, doc, sopts); err != nil {
		return nil, fmt.Errorf("pikgo: write svg: %w", err)
	}

	w, h := svg.Size(doc)
	if opts.FixedWidth > 0 {
		w = opts.FixedWidth
	}
	if opts.FixedHeight > 0 {
		h = opts.FixedHeight
	}
	return &Result{SVG: buf.String(), Width: w, Height: h}, nil
}
