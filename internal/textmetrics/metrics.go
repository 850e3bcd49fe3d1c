// Package textmetrics measures strings using the Go font family.
//
// Fonts are parsed once per process and never modified afterwards. A
// Measurer carries the scratch buffer sfnt needs, so each rendering call
// owns its own Measurer.
package textmetrics

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/width"
)

// Style selects a face of the font family.
type Style uint8

const (
	Regular Style = iota
	Bold
	Italic
	BoldItalic
	Mono
	numStyles
)

// StyleOf combines the bold, italic and monospace text attributes into a
// face. Monospace wins over weight and slant.
func StyleOf(bold, italic, mono bool) Style {
	switch {
	case mono:
		return Mono
	case bold && italic:
		return BoldItalic
	case bold:
		return Bold
	case italic:
		return Italic
	}
	return Regular
}

var fontData = [numStyles][]byte{
	Regular:    goregular.TTF,
	Bold:       gobold.TTF,
	Italic:     goitalic.TTF,
	BoldItalic: gobolditalic.TTF,
	Mono:       gomono.TTF,
}

// faces holds the parsed fonts; a nil entry failed to parse and is
// measured with fallback widths.
var faces = sync.OnceValue(func() [numStyles]*sfnt.Font {
	var fs [numStyles]*sfnt.Font
	for i, data := range fontData {
		if f, err := sfnt.Parse(data); err == nil {
			fs[i] = f
		}
	}
	return fs
})

// Measurer computes advance widths. It is not safe for concurrent use.
type Measurer struct {
	buf sfnt.Buffer
}

// New returns a Measurer.
func New() *Measurer {
	return &Measurer{}
}

// Width returns the advance width of s in ems.
func (m *Measurer) Width(s string, st Style) float64 {
	if st >= numStyles {
		st = Regular
	}
	f := faces()[st]
	if f == nil {
		var w float64
		for _, r := range s {
			w += missingWidth(r)
		}
		return w
	}

	upem := f.UnitsPerEm()
	ppem := fixed.I(int(upem)) // one pixel per font unit
	var w float64
	for _, r := range s {
		idx, err := f.GlyphIndex(&m.buf, r)
		if err != nil || idx == 0 {
			w += missingWidth(r)
			continue
		}
		adv, err := f.GlyphAdvance(&m.buf, idx, ppem, font.HintingNone)
		if err != nil {
			w += missingWidth(r)
			continue
		}
		w += float64(adv) / 64 / float64(upem)
	}
	return w
}

// missingWidth estimates runes the font has no glyph for.
func missingWidth(r rune) float64 {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 1
	}
	return 0.6
}
