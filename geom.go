package toothgeom

import (
	"fmt"
	"math"
)

// Point is a position, either in a recipe's reference frame or on the
// drawing target.
type Point struct {
	X, Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (pt Point) String() string { return fmt.Sprintf("(%g, %g)", pt.X, pt.Y) }

// Translate moves pt by v.
func (pt Point) Translate(v Vec2) Point {
	return Point{pt.X + v.X, pt.Y + v.Y}
}

// Scale multiplies the coordinates by independent factors, taking a
// reference-frame point onto a target.
func (pt Point) Scale(s Vec2) Point {
	return Point{pt.X * s.X, pt.Y * s.Y}
}

func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.N0*pt.X + aff.N2*pt.Y + aff.N4,
		Y: aff.N1*pt.X + aff.N3*pt.Y + aff.N5,
	}
}

// Sub returns the vector from o to pt.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{pt.X - o.X, pt.Y - o.Y}
}

func (pt Point) IsNaN() bool { return math.IsNaN(pt.X) || math.IsNaN(pt.Y) }

// Vec2 is a displacement or a pair of per-axis factors.
type Vec2 struct {
	X, Y float64
}

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) String() string { return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y) }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Mul(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }

func (v Vec2) Negate() Vec2 { return Vec2{-v.X, -v.Y} }

func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// Cross returns the z component of the cross product. It is positive when o
// is clockwise from v on a y-down canvas.
func (v Vec2) Cross(o Vec2) float64 { return v.X*o.Y - v.Y*o.X }

// Hypot returns the length of v.
func (v Vec2) Hypot() float64 { return math.Hypot(v.X, v.Y) }

// Hypot2 returns the squared length of v.
func (v Vec2) Hypot2() float64 { return v.X*v.X + v.Y*v.Y }

func (v Vec2) IsNaN() bool { return math.IsNaN(v.X) || math.IsNaN(v.Y) }

// Size is the extent of a drawing target or of a reference frame.
type Size struct {
	Width, Height float64
}

// Sz returns the size w×h.
func Sz(w, h float64) Size { return Size{Width: w, Height: h} }

func (sz Size) String() string { return fmt.Sprintf("%g×%g", sz.Width, sz.Height) }

// ScaleTo returns the per-axis factors that stretch sz onto target. The
// aspect ratio of sz is not preserved.
func (sz Size) ScaleTo(target Size) Vec2 {
	return Vec2{target.Width / sz.Width, target.Height / sz.Height}
}

// IsEmpty reports whether either side is zero, negative or NaN.
func (sz Size) IsEmpty() bool {
	return !(sz.Width > 0) || !(sz.Height > 0)
}
