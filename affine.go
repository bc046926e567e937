package toothgeom

import (
	"math"
)

// Affine is a 2D affine map with coefficients (a, b, c, d, e, f), standing
// for the matrix
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// Products compose like the transform stack of a canvas: A.Mul(B) applies B
// first. A target that is translated by v and then scaled by s maps points
// through Translate(v).PreScale(s, s).
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

var (
	Identity = Affine{1, 0, 0, 1, 0, 0}
	// FlipX mirrors across the y axis.
	FlipX = Affine{-1, 0, 0, 1, 0, 0}
	// FlipY mirrors across the x axis.
	FlipY = Affine{1, 0, 0, -1, 0, 0}
)

// Scale stretches by x horizontally and y vertically.
func Scale(x, y float64) Affine { return Affine{x, 0, 0, y, 0, 0} }

// Translate moves by v.
func Translate(v Vec2) Affine { return Affine{1, 0, 0, 1, v.X, v.Y} }

// Rotate turns by th radians. Positive angles turn +x towards +y, which is
// clockwise on screen.
func Rotate(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

// RotateAbout turns by th radians about center.
func RotateAbout(th float64, center Point) Affine {
	c := Vec2(center)
	return Translate(c).Mul(Rotate(th)).Mul(Translate(c.Negate()))
}

// Coefficients returns a through f.
func (aff Affine) Coefficients() [6]float64 {
	return [6]float64{aff.N0, aff.N1, aff.N2, aff.N3, aff.N4, aff.N5}
}

// Mul returns the map that applies o, then aff.
func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		N0: aff.N0*o.N0 + aff.N2*o.N1,
		N1: aff.N1*o.N0 + aff.N3*o.N1,
		N2: aff.N0*o.N2 + aff.N2*o.N3,
		N3: aff.N1*o.N2 + aff.N3*o.N3,
		N4: aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		N5: aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// PreScale is aff.Mul(Scale(x, y)), the effect of a canvas scale call.
func (aff Affine) PreScale(x, y float64) Affine { return aff.Mul(Scale(x, y)) }

// PreTranslate is aff.Mul(Translate(v)), the effect of a canvas translate
// call.
func (aff Affine) PreTranslate(v Vec2) Affine { return aff.Mul(Translate(v)) }

func (aff Affine) Determinant() float64 {
	return aff.N0*aff.N3 - aff.N1*aff.N2
}

// Invert returns the inverse map. A singular map yields NaN or infinite
// coefficients.
func (aff Affine) Invert() Affine {
	k := 1 / aff.Determinant()
	return Affine{
		N0: k * aff.N3,
		N1: -k * aff.N1,
		N2: -k * aff.N2,
		N3: k * aff.N0,
		N4: k * (aff.N2*aff.N5 - aff.N3*aff.N4),
		N5: k * (aff.N1*aff.N4 - aff.N0*aff.N5),
	}
}

// Translation returns e and f.
func (aff Affine) Translation() Vec2 { return Vec2{aff.N4, aff.N5} }

// svd returns the singular values of the linear part of aff, largest first,
// and the angle of the left rotation. For the image of a unit circle these
// are its radii and tilt; the right rotation only spins the circle in place.
func (aff Affine) svd() (scale Vec2, th float64) {
	a, b, c, d := aff.N0, aff.N1, aff.N2, aff.N3
	p := a*a - b*b + c*c - d*d
	q := a*b + c*d
	sum := a*a + b*b + c*c + d*d
	diff := math.Hypot(p, 2*q)
	return Vec2{
		X: math.Sqrt(0.5 * (sum + diff)),
		Y: math.Sqrt(0.5 * max(sum-diff, 0)),
	}, 0.5 * math.Atan2(2*q, p)
}
