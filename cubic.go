package toothgeom

import (
	"iter"
	"math"
)

// CubicBez is a cubic Bézier segment. Like QuadBez it only serves Flatten.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3.0)
	cc := Vec2(c.P2).Mul(mt * 3.0)
	d := Vec2(c.P3)
	return Point(a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t)))
}

// deriv returns the derivative at t.
func (c CubicBez) deriv(t float64) Vec2 {
	d := QuadBez{
		Point(c.P1.Sub(c.P0).Mul(3)),
		Point(c.P2.Sub(c.P1).Mul(3)),
		Point(c.P3.Sub(c.P2).Mul(3)),
	}
	return Vec2(d.Eval(t))
}

// Subsegment returns the part of the curve between t0 and t1.
func (c CubicBez) Subsegment(t0, t1 float64) CubicBez {
	p0 := c.Eval(t0)
	p3 := c.Eval(t1)
	scale := (t1 - t0) * (1.0 / 3.0)
	p1 := p0.Translate(c.deriv(t0).Mul(scale))
	p2 := p3.Translate(c.deriv(t1).Mul(scale).Negate())
	return CubicBez{p0, p1, p2, p3}
}

// Quadratics splits the cubic evenly in t and approximates each piece with a
// quadratic within accuracy. It yields at least one quadratic.
func (c CubicBez) Quadratics(accuracy float64) iter.Seq[QuadBez] {
	return func(yield func(QuadBez) bool) {
		// The error is proportional to the third derivative, which is
		// constant, and falls with the cube of the number of pieces.
		// 432 is (36 / sqrt(3))².
		maxHypot2 := 432.0 * accuracy * accuracy
		p1x2 := Vec2(c.P1).Mul(3).Sub(Vec2(c.P0))
		p2x2 := Vec2(c.P2).Mul(3).Sub(Vec2(c.P3))
		err := p2x2.Sub(p1x2).Hypot2()
		n := max(int(math.Ceil(math.Sqrt(math.Cbrt(err/maxHypot2)))), 1)

		for i := range n {
			seg := c.Subsegment(float64(i)/float64(n), float64(i+1)/float64(n))
			p1x2 := Vec2(seg.P1).Mul(3).Sub(Vec2(seg.P0))
			p2x2 := Vec2(seg.P2).Mul(3).Sub(Vec2(seg.P3))
			if !yield(QuadBez{seg.P0, Point(p1x2.Add(p2x2).Mul(1.0 / 4.0)), seg.P3}) {
				return
			}
		}
	}
}
