package toothgeom

import (
	"iter"
	"math"
	"slices"
)

// Rect is an axis-aligned rectangle from (X0, Y0) to (X1, Y1).
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

var _ ClosedShape = Rect{}

// NewRect returns the rectangle with origin (x, y) and size w×h, the way a
// canvas rect(x, y, w, h) call describes it.
func NewRect(x, y, w, h float64) Rect {
	return Rect{x, y, x + w, y + h}
}

// Abs returns a new rectangle with the same extents as r, but ensuring that width and
// height are non-negative.
func (r Rect) Abs() Rect {
	return Rect{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// Center returns the center point of r.
func (r Rect) Center() Point {
	return Point{
		X: 0.5 * (r.X0 + r.X1),
		Y: 0.5 * (r.Y0 + r.Y1),
	}
}

// Contains reports whether pt lies within r. The right and bottom edges are
// exclusive.
func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.X0 && pt.X < r.X1 && pt.Y >= r.Y0 && pt.Y < r.Y1
}

// Union returns the smallest rectangle enclosing both rectangles.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// UnionPoint computes the union of r and the rectangle [pt, pt].
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// Scale multiplies the rectangle's coordinates by independent axis factors.
func (r Rect) Scale(s Vec2) Rect {
	return Rect{r.X0 * s.X, r.Y0 * s.Y, r.X1 * s.X, r.Y1 * s.Y}
}

// Inflate grows the rectangle by width on the left and right and by height on
// the top and bottom.
func (r Rect) Inflate(width, height float64) Rect {
	r = r.Abs()
	return Rect{r.X0 - width, r.Y0 - height, r.X1 + width, r.Y1 + height}
}

func (r Rect) BoundingBox() Rect {
	return r.Abs()
}

func (r Rect) IsNaN() bool {
	return math.IsNaN(r.X0) || math.IsNaN(r.Y0) || math.IsNaN(r.X1) || math.IsNaN(r.Y1)
}

// PathElements traces the rectangle clockwise from its origin.
func (r Rect) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		_ = yield(MoveTo(Pt(r.X0, r.Y0))) &&
			yield(LineTo(Pt(r.X1, r.Y0))) &&
			yield(LineTo(Pt(r.X1, r.Y1))) &&
			yield(LineTo(Pt(r.X0, r.Y1))) &&
			yield(ClosePath())
	}
}

// RoundedRect is a rectangle whose four corners are replaced by quadratic
// quarter-curves of the same radius.
//
// The radius is not clamped. A radius larger than half the shorter side makes
// neighbouring corners overlap and the outline cross itself; callers are
// expected to stay within min(width, height)/2.
type RoundedRect struct {
	Rect
	Radius float64
}

var _ ClosedShape = RoundedRect{}

// NewRoundedRect returns the rounded rectangle with origin (x, y), size w×h and
// corner radius.
func NewRoundedRect(x, y, w, h, radius float64) RoundedRect {
	return RoundedRect{
		Rect:   NewRect(x, y, w, h),
		Radius: radius,
	}
}

// PathElements starts at the end of the top-left corner and runs clockwise.
// The path is left open at the start point, the way a canvas trace leaves it;
// the caller decides when to close it.
func (r RoundedRect) PathElements(tolerance float64) iter.Seq[PathElement] {
	x0, y0, x1, y1 := r.X0, r.Y0, r.X1, r.Y1
	rad := r.Radius
	return func(yield func(PathElement) bool) {
		_ = yield(MoveTo(Pt(x0+rad, y0))) &&
			yield(LineTo(Pt(x1-rad, y0))) &&
			yield(QuadTo(Pt(x1, y0), Pt(x1, y0+rad))) &&
			yield(LineTo(Pt(x1, y1-rad))) &&
			yield(QuadTo(Pt(x1, y1), Pt(x1-rad, y1))) &&
			yield(LineTo(Pt(x0+rad, y1))) &&
			yield(QuadTo(Pt(x0, y1), Pt(x0, y1-rad))) &&
			yield(LineTo(Pt(x0, y0+rad))) &&
			yield(QuadTo(Pt(x0, y0), Pt(x0+rad, y0)))
	}
}

// Contains reports whether pt is inside the rounded outline.
func (r RoundedRect) Contains(pt Point) bool {
	return BezPath(slices.Collect(r.PathElements(DefaultTolerance))).Contains(pt)
}

func (r RoundedRect) IsNaN() bool {
	return r.Rect.IsNaN() || math.IsNaN(r.Radius)
}
