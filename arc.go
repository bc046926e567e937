package toothgeom

import (
	"iter"
	"math"
)

// Arc is a section of a possibly tilted ellipse. Angles are in radians and
// grow clockwise on screen.
type Arc struct {
	Center     Point
	Radii      Vec2
	StartAngle float64
	SweepAngle float64
	XRotation  float64
}

// at returns the offset from the center of the point at angle th.
func (a Arc) at(th float64) Vec2 {
	sin, cos := math.Sincos(th)
	return rotateVec(Vec(a.Radii.X*cos, a.Radii.Y*sin), a.XRotation)
}

// PathElements emits a MoveTo to the start of the arc followed by cubic
// segments. The arc is left open.
//
// A full turn takes at least four segments; more are used when the radii
// are large compared to tolerance.
func (a Arc) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		r := max(math.Abs(a.Radii.X), math.Abs(a.Radii.Y))
		perTurn := max(math.Pow(1.1163*r/tolerance, 1.0/6.0), 3.999_999)
		n := int(math.Ceil(perTurn * math.Abs(a.SweepAngle) / (2 * math.Pi)))
		step := a.SweepAngle / float64(n)
		// Handle length of a cubic approximating step radians of a circle.
		k := math.Copysign(4.0/3.0*math.Tan(math.Abs(step)/4), step)

		th := a.StartAngle
		p0 := a.at(th)
		if !yield(MoveTo(a.Center.Translate(p0))) {
			return
		}
		for range n {
			p3 := a.at(th + step)
			c1 := p0.Add(a.at(th + math.Pi/2).Mul(k))
			c2 := p3.Sub(a.at(th + step + math.Pi/2).Mul(k))
			if !yield(CubicTo(
				a.Center.Translate(c1),
				a.Center.Translate(c2),
				a.Center.Translate(p3),
			)) {
				return
			}
			th += step
			p0 = p3
		}
	}
}

func rotateVec(v Vec2, th float64) Vec2 {
	sin, cos := math.Sincos(th)
	return Vec2{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// closed appends a ClosePath to seq.
func closed(seq iter.Seq[PathElement]) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		for el := range seq {
			if !yield(el) {
				return
			}
		}
		yield(ClosePath())
	}
}
