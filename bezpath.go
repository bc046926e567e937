package toothgeom

import (
	"fmt"
	"io"
	"iter"
	"slices"
)

// PathElementKind is the drawing command of a PathElement.
type PathElementKind int

// The commands match those of a 2D canvas path.
const (
	MoveToKind PathElementKind = iota + 1
	LineToKind
	QuadToKind
	CubicToKind
	ClosePathKind
)

func (k PathElementKind) String() string {
	switch k {
	case MoveToKind:
		return "MoveTo"
	case LineToKind:
		return "LineTo"
	case QuadToKind:
		return "QuadTo"
	case CubicToKind:
		return "CubicTo"
	case ClosePathKind:
		return "ClosePath"
	default:
		return fmt.Sprintf("PathElementKind(%d)", int(k))
	}
}

// PathElement is a single drawing command.
//
// Only the points used by Kind are meaningful: one for MoveTo and LineTo, two
// for QuadTo, three for CubicTo and none for ClosePath. The last of them is
// the end point.
type PathElement struct {
	Kind       PathElementKind
	P0, P1, P2 Point
}

func (el PathElement) String() string {
	return fmt.Sprintf("%s(%s, %s, %s)", el.Kind, el.P0, el.P1, el.P2)
}

// Transform maps the points of el through aff.
func (el PathElement) Transform(aff Affine) PathElement {
	switch el.Kind {
	case CubicToKind:
		el.P2 = el.P2.Transform(aff)
		fallthrough
	case QuadToKind:
		el.P1 = el.P1.Transform(aff)
		fallthrough
	case MoveToKind, LineToKind:
		el.P0 = el.P0.Transform(aff)
	}
	return el
}

// points returns the points used by el.
func (el PathElement) points() []Point {
	switch el.Kind {
	case MoveToKind, LineToKind:
		return []Point{el.P0}
	case QuadToKind:
		return []Point{el.P0, el.P1}
	case CubicToKind:
		return []Point{el.P0, el.P1, el.P2}
	default:
		return nil
	}
}

// EndPoint returns the point el ends on. ClosePath has none.
func (el PathElement) EndPoint() (Point, bool) {
	pts := el.points()
	if len(pts) == 0 {
		return Point{}, false
	}
	return pts[len(pts)-1], true
}

func (el PathElement) IsNaN() bool {
	return slices.ContainsFunc(el.points(), Point.IsNaN)
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func QuadTo(p0, p1 Point) PathElement {
	return PathElement{Kind: QuadToKind, P0: p0, P1: p1}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

// Shape describes geometry that can express itself as path elements.
type Shape interface {
	// PathElements returns an iterator over path elements that express the
	// shape as a series of "move to", "line to", "quadratic Bézier to",
	// "cubic Bézier to", and "close path" commands.
	//
	// The tolerance parameter controls the accuracy of conversion of curved
	// primitives to Béziers. For drawing tooth surfaces, 0.1 is plenty.
	PathElements(tolerance float64) iter.Seq[PathElement]

	// BoundingBox returns a rectangle that encloses the shape.
	BoundingBox() Rect
}

// ClosedShape describes shapes with a well-defined interior.
type ClosedShape interface {
	Shape
	Contains(pt Point) bool
}

// BezPath is a Bézier path: the emitted geometry of a tooth surface.
type BezPath []PathElement

var _ ClosedShape = BezPath{}

func (p BezPath) PathElements(tolerance float64) iter.Seq[PathElement] {
	return slices.Values([]PathElement(p))
}

// Transform returns a new path with an affine transformation applied.
func (p BezPath) Transform(aff Affine) BezPath {
	if p == nil {
		return nil
	}
	els := make([]PathElement, len(p))
	for i := range p {
		els[i] = p[i].Transform(aff)
	}
	return els
}

// Push adds an element to the path.
func (p *BezPath) Push(el PathElement) {
	*p = append(*p, el)
}

// Extend appends all elements of seq.
func (p *BezPath) Extend(seq iter.Seq[PathElement]) {
	for el := range seq {
		p.Push(el)
	}
}

// MoveTo pushes a "move to" element onto the path.
func (p *BezPath) MoveTo(pt Point) { p.Push(MoveTo(pt)) }

// LineTo pushes a "line to" element onto the path.
func (p *BezPath) LineTo(pt Point) { p.Push(LineTo(pt)) }

// QuadTo pushes a "quad to" element onto the path.
func (p *BezPath) QuadTo(p1, p2 Point) { p.Push(QuadTo(p1, p2)) }

// CubicTo pushes a "curve to" element onto the path.
func (p *BezPath) CubicTo(p1, p2, p3 Point) { p.Push(CubicTo(p1, p2, p3)) }

// ClosePath pushes a "close path" element onto the path.
func (p *BezPath) ClosePath() { p.Push(ClosePath()) }

// Elements returns an iterator over the path's elements.
func (p BezPath) Elements() iter.Seq[PathElement] { return slices.Values(p) }

// IsEmpty reports whether the path has no elements at all.
func (p BezPath) IsEmpty() bool { return len(p) == 0 }

// IsClosed reports whether the last element closes the path.
func (p BezPath) IsClosed() bool {
	return len(p) > 0 && p[len(p)-1].Kind == ClosePathKind
}

// HasSegments reports whether the path draws anything. MoveTo and ClosePath
// alone draw nothing.
func (p BezPath) HasSegments() bool {
	return slices.ContainsFunc(p, func(el PathElement) bool {
		return el.Kind != MoveToKind && el.Kind != ClosePathKind
	})
}

// FirstPoint returns the point the path starts on.
func (p BezPath) FirstPoint() (Point, bool) {
	for _, el := range p {
		if pt, ok := el.EndPoint(); ok {
			return pt, true
		}
	}
	return Point{}, false
}

func (p BezPath) IsNaN() bool {
	return slices.ContainsFunc(p, PathElement.IsNaN)
}

// ControlBox returns the bounds of all points of the path, control points
// included. It encloses the path but is not tight around curves.
func (p BezPath) ControlBox() Rect {
	var box Rect
	first := true
	for _, el := range p {
		for _, pt := range el.points() {
			if first {
				box = Rect{pt.X, pt.Y, pt.X, pt.Y}
				first = false
			} else {
				box = box.UnionPoint(pt)
			}
		}
	}
	return box
}

// BoundingBox implements Shape. It is the bounding box of the flattened
// path, which is tight to within [DefaultTolerance].
func (p BezPath) BoundingBox() Rect {
	return BezPath(slices.Collect(p.Flatten(DefaultTolerance))).ControlBox()
}

// SVG converts the path to an SVG path data string.
func (p BezPath) SVG(opts SVGOptions) string {
	return SVG(p.Elements(), opts)
}

func (p BezPath) WriteSVG(w io.Writer, opts SVGOptions) error {
	return WriteSVG(w, p.Elements(), opts)
}
