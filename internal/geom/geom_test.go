package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointArithmetic(t *testing.T) {
	p, q := Pt(1, 2), Pt(3, -1)
	assert.Equal(t, Pt(4, 1), p.Add(q))
	assert.Equal(t, Pt(-2, 3), p.Sub(q))
	assert.Equal(t, Pt(2, 4), p.Mul(2))
	assert.Equal(t, Pt(-2, 1), p.Perp())
	assert.Equal(t, Pt(2, 0.5), p.Lerp(q, 0.5))
	assert.InDelta(t, 5, Pt(3, 4).Len(), 1e-12)
	assert.Equal(t, Point{}, Point{}.Unit())
	assert.True(t, Pt(0.6, 0.8).Near(Pt(3, 4).Unit(), 1e-12))
}

func TestHeading(t *testing.T) {
	tests := []struct {
		deg  float64
		want Point
	}{
		{0, Pt(0, 1)},
		{90, Pt(1, 0)},
		{180, Pt(0, -1)},
		{270, Pt(-1, 0)},
		{45, Pt(math.Sqrt2/2, math.Sqrt2/2)},
	}
	for _, tt := range tests {
		got := Heading(tt.deg)
		assert.True(t, got.Near(tt.want, 1e-9), "Heading(%v) = %v, want %v", tt.deg, got, tt.want)
	}
}

func TestRect(t *testing.T) {
	var r Rect
	assert.True(t, r.IsEmpty())
	assert.Equal(t, 0.0, r.Width())
	assert.True(t, r.Expand(1).IsEmpty())

	r = r.AddPoint(Pt(1, 1)).AddPoint(Pt(-1, 3))
	assert.False(t, r.IsEmpty())
	assert.Equal(t, Pt(-1, 1), r.Min)
	assert.Equal(t, Pt(1, 3), r.Max)
	assert.Equal(t, 2.0, r.Width())
	assert.Equal(t, 2.0, r.Height())
	assert.Equal(t, Pt(0, 2), r.Center())

	u := r.Union(RectOf(Pt(5, 0), Pt(4, -2)))
	assert.Equal(t, Pt(-1, -2), u.Min)
	assert.Equal(t, Pt(5, 3), u.Max)
	assert.Equal(t, r, r.Union(Rect{}))

	e := r.Expand(0.5).Translate(Pt(1, 0))
	assert.Equal(t, Pt(-0.5, 0.5), e.Min)
	assert.Equal(t, Pt(2.5, 3.5), e.Max)
}
