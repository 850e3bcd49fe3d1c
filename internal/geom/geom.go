// Package geom holds the plane geometry shared by layout and rendering.
// Coordinates are in inches with y pointing up.
package geom

import (
	"fmt"
	"math"
)

// Point is a position or a displacement.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{x, y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

func (p Point) Mul(k float64) Point { return Point{p.X * k, p.Y * k} }

// Len returns the Euclidean length of p.
func (p Point) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// Unit returns p scaled to length 1. The zero vector is returned unchanged.
func (p Point) Unit() Point {
	l := p.Len()
	if l == 0 {
		return p
	}
	return Point{p.X / l, p.Y / l}
}

// Perp returns p rotated by 90 degrees counter-clockwise.
func (p Point) Perp() Point {
	return Point{-p.Y, p.X}
}

// Lerp returns the point a fraction t of the way from p to q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{p.X + (q.X-p.X)*t, p.Y + (q.Y-p.Y)*t}
}

// Near reports whether p and q differ by at most eps in each coordinate.
func (p Point) Near(q Point, eps float64) bool {
	return math.Abs(p.X-q.X) <= eps && math.Abs(p.Y-q.Y) <= eps
}

// Heading returns the unit vector for a compass heading in degrees:
// 0 is north (up) and angles grow clockwise.
func Heading(deg float64) Point {
	rad := deg * math.Pi / 180
	return Point{math.Sin(rad), math.Cos(rad)}
}

// Rect is an axis-aligned bounding box. The zero value is empty.
type Rect struct {
	Min, Max Point
	set      bool
}

// RectOf returns the box with the given corners in any order.
func RectOf(a, b Point) Rect {
	return Rect{}.AddPoint(a).AddPoint(b)
}

// IsEmpty reports whether r contains no points.
func (r Rect) IsEmpty() bool {
	return !r.set
}

// AddPoint returns the smallest box containing r and p.
func (r Rect) AddPoint(p Point) Rect {
	if !r.set {
		return Rect{Min: p, Max: p, set: true}
	}
	r.Min.X = math.Min(r.Min.X, p.X)
	r.Min.Y = math.Min(r.Min.Y, p.Y)
	r.Max.X = math.Max(r.Max.X, p.X)
	r.Max.Y = math.Max(r.Max.Y, p.Y)
	return r
}

// Union returns the smallest box containing r and s.
func (r Rect) Union(s Rect) Rect {
	if !s.set {
		return r
	}
	return r.AddPoint(s.Min).AddPoint(s.Max)
}

// Expand grows r by d on every side. An empty box stays empty.
func (r Rect) Expand(d float64) Rect {
	if !r.set {
		return r
	}
	r.Min = r.Min.Sub(Point{d, d})
	r.Max = r.Max.Add(Point{d, d})
	return r
}

// Translate moves r by d.
func (r Rect) Translate(d Point) Rect {
	if !r.set {
		return r
	}
	r.Min = r.Min.Add(d)
	r.Max = r.Max.Add(d)
	return r
}

func (r Rect) Width() float64 {
	if !r.set {
		return 0
	}
	return r.Max.X - r.Min.X
}

func (r Rect) Height() float64 {
	if !r.set {
		return 0
	}
	return r.Max.Y - r.Min.Y
}

// Center returns the middle of r, or the origin for an empty box.
func (r Rect) Center() Point {
	if !r.set {
		return Point{}
	}
	return r.Min.Lerp(r.Max, 0.5)
}
