package toothgeom

import (
	"iter"
	"math"
)

// Circle is used for point markers, such as the mesial and distal contact
// points in frontal views.
type Circle struct {
	Center Point
	Radius float64
}

var _ ClosedShape = Circle{}

func (c Circle) Contains(pt Point) bool {
	return pt.Sub(c.Center).Hypot2() < c.Radius*c.Radius
}

// PathElements starts at angle zero, to the right of the center, and makes a
// full clockwise turn of cubic arcs before closing. A negative radius starts
// on the left instead.
func (c Circle) PathElements(tolerance float64) iter.Seq[PathElement] {
	return closed(Arc{
		Center:     c.Center,
		Radii:      Vec(c.Radius, c.Radius),
		SweepAngle: 2 * math.Pi,
	}.PathElements(tolerance))
}

func (c Circle) BoundingBox() Rect {
	r := math.Abs(c.Radius)
	return Rect{c.Center.X - r, c.Center.Y - r, c.Center.X + r, c.Center.Y + r}
}
