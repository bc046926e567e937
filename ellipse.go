package toothgeom

import (
	"iter"
	"math"
)

// Ellipse is stored as the affine image of the unit circle. The class 4
// lesion markers of anterior teeth are ellipses, some of them tilted.
type Ellipse struct {
	inner Affine
}

var _ ClosedShape = Ellipse{}

// NewEllipse returns the ellipse with the given center and radii, tilted by
// xRotation radians about its center. Positive tilts are clockwise on
// screen, like a canvas ellipse call. The signs of the radii are ignored.
func NewEllipse(center Point, radii Vec2, xRotation float64) Ellipse {
	return Ellipse{
		inner: Translate(Vec2(center)).
			Mul(Rotate(xRotation)).
			Mul(Scale(math.Abs(radii.X), math.Abs(radii.Y))),
	}
}

func (e Ellipse) Contains(pt Point) bool {
	return Vec2(pt.Transform(e.inner.Invert())).Hypot2() < 1
}

// BoundingBox returns the tight bounds of the tilted ellipse. The half
// extents are the lengths of the rows of the linear part of the map.
func (e Ellipse) BoundingBox() Rect {
	m := e.inner
	hw := math.Hypot(m.N0, m.N2)
	hh := math.Hypot(m.N1, m.N3)
	return Rect{m.N4 - hw, m.N5 - hh, m.N4 + hw, m.N5 + hh}
}

// PathElements emits the full ellipse as a closed sequence of cubic arcs,
// starting at the end of the first radius.
func (e Ellipse) PathElements(tolerance float64) iter.Seq[PathElement] {
	radii, tilt := e.inner.svd()
	return closed(Arc{
		Center:     e.Center(),
		Radii:      radii,
		SweepAngle: 2 * math.Pi,
		XRotation:  tilt,
	}.PathElements(tolerance))
}

func (e Ellipse) Center() Point { return Point(e.inner.Translation()) }

// Radii returns the radii of the ellipse, larger first.
func (e Ellipse) Radii() Vec2 {
	radii, _ := e.inner.svd()
	return radii
}

// Rotation returns the tilt of the larger radius, in radians.
func (e Ellipse) Rotation() float64 {
	_, rot := e.inner.svd()
	return rot
}

// Transform returns the image of e under aff.
func (e Ellipse) Transform(aff Affine) Ellipse {
	return Ellipse{inner: aff.Mul(e.inner)}
}
