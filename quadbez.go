package toothgeom

import "math"

// QuadBez is a quadratic Bézier segment. It only exists to flatten paths.
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(q.P0).Mul(mt * mt)
	b := Vec2(q.P1).Mul(mt * 2.0)
	c := Vec2(q.P2).Mul(t)
	return Point(a.Add(b.Add(c).Mul(t)))
}

// An approximation to $\int (1 + 4x^2) ^ -0.25 dx$.
func approxParabolaIntegral(x float64) float64 {
	const d = 0.67
	return x / (1.0 - d + math.Sqrt(math.Sqrt(math.Pow(d, 4)+0.25*x*x)))
}

// An approximation to the inverse parabola integral.
func approxParabolaInvIntegral(x float64) float64 {
	const b = 0.39
	return x * (1.0 - b + math.Sqrt(b*b+0.25*x*x))
}

// determineSubdivT maps x in 0..1, a fraction of the segment's subdivision
// budget, to the curve parameter t.
func (q QuadBez) determineSubdivT(params *flattenParams, x float64) float64 {
	a := params.a0 + (params.a2-params.a0)*x
	u := approxParabolaInvIntegral(a)
	return (u - params.u0) * params.uscale
}

// estimateSubdiv maps the segment onto the parabola y = x² and measures
// how many subdivisions it needs.
func (q QuadBez) estimateSubdiv(sqrtTol float64) flattenParams {
	d01 := q.P1.Sub(q.P0)
	d12 := q.P2.Sub(q.P1)
	dd := d01.Sub(d12)
	cross := q.P2.Sub(q.P0).Cross(dd)
	x0 := d01.Dot(dd) * (1.0 / cross)
	x2 := d12.Dot(dd) * (1.0 / cross)
	scale := math.Abs(cross / (dd.Hypot() * (x2 - x0)))

	a0 := approxParabolaIntegral(x0)
	a2 := approxParabolaIntegral(x2)
	var val float64
	if !math.IsInf(scale, 0) {
		da := math.Abs(a2 - a0)
		sqrtScale := math.Sqrt(scale)
		if math.Signbit(x0) == math.Signbit(x2) {
			val = da * sqrtScale
		} else {
			// The segment contains the curvature maximum.
			xmin := sqrtTol / sqrtScale
			val = sqrtTol * da / approxParabolaIntegral(xmin)
		}
	}
	if math.IsNaN(val) {
		// Straight segments map onto no parabola.
		val = 0
	}
	u0 := approxParabolaInvIntegral(a0)
	u2 := approxParabolaInvIntegral(a2)
	return flattenParams{
		a0:     a0,
		a2:     a2,
		u0:     u0,
		uscale: 1.0 / (u2 - u0),
		val:    val,
	}
}

type flattenParams struct {
	a0     float64
	a2     float64
	u0     float64
	uscale float64
	// The number of subdivisions * 2 * sqrtTol.
	val float64
}
